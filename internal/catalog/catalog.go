// Package catalog defines the tool descriptor model for leaf-mcp: the
// declarative mapping from a named, schema-typed MCP tool to one Leaf REST
// endpoint, plus the generic dispatch handler that executes it.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// Parameter locations.
const (
	InPath  = "path"
	InQuery = "query"
	InBody  = "body"
)

// Parameter types.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
)

// allowedMethods is the whitelist of HTTP methods for catalogue tools.
var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

// placeholderRe matches {placeholder} segments in a path template.
var placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

// Param describes one parameter of a tool: its JSON type, where it binds in
// the HTTP request (path placeholder, query parameter, or request body),
// and optional constraints enforced before any upstream call.
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
	In          string
	Format      string   // "uuid" enables identifier validation
	Min         *float64 // inclusive lower bound for numbers
	Max         *float64 // inclusive upper bound for numbers
}

// ToolDef is one immutable tool descriptor: a name unique within the
// catalogue, a human-readable description, the endpoint binding (method +
// path template), and the parameter schema.
type ToolDef struct {
	Name        string
	Description string
	Method      string
	Path        string
	Params      []Param
}

// Catalog is the ordered, read-only collection of tool descriptors. It is
// built once at startup and never mutated while serving.
type Catalog struct {
	defs   []ToolDef
	byName map[string]ToolDef
}

// New builds a catalogue from descriptor groups, preserving order. Every
// descriptor is validated, and a duplicate name is a construction error
// rather than silent last-wins shadowing.
func New(groups ...[]ToolDef) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]ToolDef)}
	for _, defs := range groups {
		for _, def := range defs {
			if err := validateDef(def); err != nil {
				return nil, err
			}
			if _, exists := c.byName[def.Name]; exists {
				return nil, fmt.Errorf("duplicate tool name %q", def.Name)
			}
			c.byName[def.Name] = def
			c.defs = append(c.defs, def)
		}
	}
	return c, nil
}

// Tools returns the descriptors in registration order.
func (c *Catalog) Tools() []ToolDef {
	result := make([]ToolDef, len(c.defs))
	copy(result, c.defs)
	return result
}

// Get looks up a descriptor by name.
func (c *Catalog) Get(name string) (ToolDef, bool) {
	def, ok := c.byName[name]
	return def, ok
}

// Len returns the number of registered descriptors.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// validateDef checks a single descriptor: method whitelist, non-empty name
// and path, and the placeholder invariant — every {placeholder} in the path
// template must correspond to a required path param, and vice versa.
func validateDef(def ToolDef) error {
	if def.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if !allowedMethods[strings.ToUpper(def.Method)] {
		return fmt.Errorf("tool %q has unsupported method %q", def.Name, def.Method)
	}
	if def.Path == "" {
		return fmt.Errorf("tool %q has empty path", def.Name)
	}
	if strings.Contains(def.Path, "..") {
		return fmt.Errorf("tool %q has invalid path %q (contains ..)", def.Name, def.Path)
	}

	pathParams := make(map[string]Param)
	seen := make(map[string]bool)
	bodyCount := 0
	for _, p := range def.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q has a param with empty name", def.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("tool %q has duplicate param %q", def.Name, p.Name)
		}
		seen[p.Name] = true
		switch p.In {
		case InPath:
			pathParams[p.Name] = p
		case InQuery:
		case InBody:
			bodyCount++
		default:
			return fmt.Errorf("tool %q param %q has invalid location %q", def.Name, p.Name, p.In)
		}
	}
	if bodyCount > 1 {
		return fmt.Errorf("tool %q declares %d body params (at most one allowed)", def.Name, bodyCount)
	}

	matched := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(def.Path, -1) {
		name := m[1]
		p, ok := pathParams[name]
		if !ok {
			return fmt.Errorf("tool %q path placeholder {%s} has no matching path param", def.Name, name)
		}
		if !p.Required {
			return fmt.Errorf("tool %q path param %q must be required", def.Name, name)
		}
		matched[name] = true
	}
	for name := range pathParams {
		if !matched[name] {
			return fmt.Errorf("tool %q path param %q does not appear in path template %q", def.Name, name, def.Path)
		}
	}

	return nil
}
