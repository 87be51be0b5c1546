package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gbstox/leaf-mcp/internal/common"
	"github.com/gbstox/leaf-mcp/internal/leaf"
)

// textResult wraps a string as a successful MCP tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// errorResult wraps a message as a failed MCP tool result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// Handler creates the dispatch handler for one descriptor: it validates
// arguments against the parameter schema, binds them to the path template,
// query string, or request body, performs the upstream call, and returns
// the normalized response text. Argument failures never reach the network.
func Handler(client *leaf.Client, def ToolDef, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.NewString())
		args := r.GetArguments()

		path := def.Path
		query := url.Values{}
		var body interface{}

		for _, p := range def.Params {
			raw, present := args[p.Name]
			if !present || raw == nil {
				if p.Required {
					return errorResult(fmt.Sprintf("invalid argument: %s is required", p.Name)), nil
				}
				continue
			}

			value, err := coerce(p, raw)
			if err != nil {
				return errorResult(fmt.Sprintf("invalid argument: %v", err)), nil
			}

			switch p.In {
			case InPath:
				str := stringify(value)
				if str == "" {
					return errorResult(fmt.Sprintf("invalid argument: %s must not be empty", p.Name)), nil
				}
				path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(str))
			case InQuery:
				if str := stringify(value); str != "" {
					query.Set(p.Name, str)
				}
			case InBody:
				body = value
			}
		}

		if m := placeholderRe.FindString(path); m != "" {
			return errorResult(fmt.Sprintf("invalid argument: unresolved path placeholder %s", m)), nil
		}

		log.Debug().Str("tool", def.Name).Str("method", def.Method).Str("path", path).Msg("dispatching tool call")

		resp, err := client.Do(ctx, strings.ToUpper(def.Method), path, query, body)
		if err != nil {
			log.Warn().Str("tool", def.Name).Str("error", err.Error()).Msg("tool call failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		// Upstream error statuses pass through as normal text: the proxy is
		// transparent to whatever error shape the Leaf API returns.
		return textResult(leaf.Normalize(resp.Body)), nil
	}
}

// coerce validates a raw argument against the param schema and returns the
// value in its canonical Go form.
func coerce(p Param, raw interface{}) (interface{}, error) {
	switch p.Type {
	case TypeNumber:
		num, ok := asFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%s must be a number", p.Name)
		}
		if p.Min != nil && num < *p.Min {
			return nil, fmt.Errorf("%s must be >= %s", p.Name, formatNumber(*p.Min))
		}
		if p.Max != nil && num > *p.Max {
			return nil, fmt.Errorf("%s must be <= %s", p.Name, formatNumber(*p.Max))
		}
		return num, nil

	case TypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("%s must be a boolean", p.Name)
		}
		return b, nil

	case TypeObject:
		switch v := raw.(type) {
		case map[string]interface{}:
			return v, nil
		case string:
			// Clients frequently pass JSON bodies as text.
			var decoded map[string]interface{}
			if err := json.Unmarshal([]byte(v), &decoded); err != nil {
				return nil, fmt.Errorf("%s must be a JSON object", p.Name)
			}
			return decoded, nil
		default:
			return nil, fmt.Errorf("%s must be a JSON object", p.Name)
		}

	default: // string
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string", p.Name)
		}
		if p.Format == "uuid" {
			if _, err := uuid.Parse(s); err != nil {
				return nil, fmt.Errorf("%s must be a valid UUID", p.Name)
			}
		}
		return s, nil
	}
}

// asFloat accepts the numeric shapes a JSON decoder may produce.
func asFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// stringify renders a validated value for URL use. Integral numbers render
// without a decimal point so that page=0 serializes as "0".
func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	default:
		return fmt.Sprint(v)
	}
}

// formatNumber renders a float64 without a trailing ".0" for whole values.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
