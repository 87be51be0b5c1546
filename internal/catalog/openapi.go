package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// methodOrder fixes the derivation order of operations within one path, so
// the derived catalogue is deterministic.
var methodOrder = []string{"get", "post", "put", "patch", "delete"}

type openapiDoc struct {
	Paths map[string]map[string]json.RawMessage `json:"paths"`
}

type openapiOperation struct {
	OperationID string             `json:"operationId"`
	Summary     string             `json:"summary"`
	Description string             `json:"description"`
	Parameters  []openapiParameter `json:"parameters"`
	RequestBody *openapiBody       `json:"requestBody"`
}

type openapiParameter struct {
	Name     string         `json:"name"`
	In       string         `json:"in"`
	Required bool           `json:"required"`
	Schema   *openapiSchema `json:"schema"`
}

type openapiSchema struct {
	Type    string   `json:"type"`
	Format  string   `json:"format"`
	Minimum *float64 `json:"minimum"`
	Maximum *float64 `json:"maximum"`
}

type openapiBody struct {
	Required bool                       `json:"required"`
	Content  map[string]json.RawMessage `json:"content"`
}

// DeriveFromOpenAPI derives tool descriptors from an OpenAPI document: one
// tool per (path, method) pair. The tool name comes from the operation's
// operationId when present, otherwise it is synthesized from the method and
// path. Duplicate derived names are a construction error — the catalogue
// never silently shadows one tool with another.
func DeriveFromOpenAPI(doc []byte) ([]ToolDef, error) {
	var parsed openapiDoc
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	if len(parsed.Paths) == 0 {
		return nil, fmt.Errorf("OpenAPI document declares no paths")
	}

	paths := make([]string, 0, len(parsed.Paths))
	for p := range parsed.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var defs []ToolDef
	seen := make(map[string]string) // name -> "METHOD path" that produced it
	for _, path := range paths {
		item := parsed.Paths[path]
		for _, method := range methodOrder {
			raw, ok := item[method]
			if !ok {
				continue
			}

			var op openapiOperation
			if err := json.Unmarshal(raw, &op); err != nil {
				return nil, fmt.Errorf("failed to parse operation %s %s: %w", strings.ToUpper(method), path, err)
			}

			def, err := deriveTool(method, path, op)
			if err != nil {
				return nil, err
			}

			if origin, dup := seen[def.Name]; dup {
				return nil, fmt.Errorf("derived tool name %q for %s %s collides with %s", def.Name, strings.ToUpper(method), path, origin)
			}
			seen[def.Name] = strings.ToUpper(method) + " " + path

			defs = append(defs, def)
		}
	}

	return defs, nil
}

// deriveTool builds one descriptor from an OpenAPI operation.
func deriveTool(method, path string, op openapiOperation) (ToolDef, error) {
	name := op.OperationID
	if name == "" {
		name = synthesizeName(method, path)
	}

	description := op.Description
	if description == "" {
		description = op.Summary
	}
	if description == "" {
		description = fmt.Sprintf("%s %s", strings.ToUpper(method), path)
	}

	def := ToolDef{
		Name:        name,
		Description: description,
		Method:      strings.ToUpper(method),
		// Leaf path templates are relative to the base URL.
		Path: strings.TrimPrefix(path, "/"),
	}

	for _, p := range op.Parameters {
		switch p.In {
		case "path", "query":
		default:
			// Header and cookie parameters are out of scope for tools.
			continue
		}

		param := Param{
			Name:     p.Name,
			Type:     TypeString,
			In:       p.In,
			Required: p.Required,
		}
		if p.In == "path" {
			// OpenAPI mandates required:true for path params; enforce it so
			// the placeholder invariant holds.
			param.Required = true
		}
		if p.Schema != nil {
			param.Type = schemaType(p.Schema.Type)
			if p.Schema.Format == "uuid" {
				param.Format = "uuid"
			}
			param.Min = p.Schema.Minimum
			param.Max = p.Schema.Maximum
		}
		def.Params = append(def.Params, param)
	}

	if op.RequestBody != nil {
		if _, ok := op.RequestBody.Content["application/json"]; ok {
			def.Params = append(def.Params, Param{
				Name:        "body",
				Type:        TypeObject,
				Description: "JSON request body",
				Required:    op.RequestBody.Required,
				In:          InBody,
			})
		}
	}

	return def, nil
}

// schemaType maps an OpenAPI schema type to a param type.
func schemaType(t string) string {
	switch t {
	case "integer", "number":
		return TypeNumber
	case "boolean":
		return TypeBoolean
	case "object":
		return TypeObject
	default:
		return TypeString
	}
}

// synthesizeName derives a tool name from a method and path template:
// separators and placeholder braces become underscores, runs collapse to
// one, and leading/trailing underscores are trimmed. GET /fields/api/fields
// becomes get_fields_api_fields.
func synthesizeName(method, path string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	b.WriteByte('_')
	for _, r := range path {
		switch r {
		case '/', '{', '}', ',', '-', '.':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	name := b.String()
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.Trim(name, "_")
}
