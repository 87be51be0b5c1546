package catalog

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gbstox/leaf-mcp/internal/common"
	"github.com/gbstox/leaf-mcp/internal/leaf"
)

// BuildMCPTool converts a ToolDef into an mcp.Tool with the appropriate schema.
func BuildMCPTool(def ToolDef) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, p := range def.Params {
		opts = append(opts, paramOption(p))
	}
	return mcp.NewTool(def.Name, opts...)
}

// paramOption maps a Param to the appropriate mcp-go tool option.
func paramOption(p Param) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case TypeNumber:
		return mcp.WithNumber(p.Name, opts...)
	case TypeBoolean:
		return mcp.WithBoolean(p.Name, opts...)
	case TypeObject:
		return mcp.WithObject(p.Name, opts...)
	default:
		return mcp.WithString(p.Name, opts...)
	}
}

// Register adds every catalogue tool to the MCP server, each dispatched
// through the generic handler. Registration order follows catalogue order.
func Register(s *server.MCPServer, client *leaf.Client, c *Catalog, logger *common.Logger) int {
	for _, def := range c.Tools() {
		s.AddTool(BuildMCPTool(def), Handler(client, def, logger))
	}
	return c.Len()
}
