// Package mcpsrv assembles the MCP server: it builds the tool catalogue,
// registers every tool with the mcp-go runtime, and adapts the server to
// the stdio or streamable HTTP transport.
package mcpsrv

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gbstox/leaf-mcp/internal/catalog"
	"github.com/gbstox/leaf-mcp/internal/common"
	"github.com/gbstox/leaf-mcp/internal/config"
	"github.com/gbstox/leaf-mcp/internal/docs"
	"github.com/gbstox/leaf-mcp/internal/leaf"
)

// ToolInfo is one entry of the diagnostic tool listing.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Build constructs the MCP server with every tool registered: the Leaf
// catalogue (static, or derived from an OpenAPI document when configured)
// followed by the documentation tools. It returns the registration-order
// listing for the diagnostic mode. No network calls happen here.
func Build(cfg *config.Config, logger *common.Logger) (*server.MCPServer, []ToolInfo, error) {
	client := leaf.NewClient(cfg.Leaf.BaseURL, cfg.Leaf.APIKey, cfg.Leaf.GetTimeout(), logger)

	var defs []catalog.ToolDef
	if cfg.Catalog.OpenAPISpec != "" {
		data, err := os.ReadFile(cfg.Catalog.OpenAPISpec)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read OpenAPI spec %s: %w", cfg.Catalog.OpenAPISpec, err)
		}
		defs, err = catalog.DeriveFromOpenAPI(data)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("spec", cfg.Catalog.OpenAPISpec).Int("tools", len(defs)).Msg("derived tool catalogue from OpenAPI document")
	} else {
		defs = catalog.Static()
	}

	cat, err := catalog.New(defs)
	if err != nil {
		return nil, nil, err
	}

	srv := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	catalog.Register(srv, client, cat, logger)

	store, err := docs.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load embedded docs: %w", err)
	}
	docs.Register(srv, store)

	listing := make([]ToolInfo, 0, cat.Len()+2)
	for _, def := range cat.Tools() {
		listing = append(listing, ToolInfo{Name: def.Name, Description: def.Description})
	}
	listTool, getTool := docs.ListTool(), docs.GetTool()
	listing = append(listing,
		ToolInfo{Name: listTool.Name, Description: listTool.Description},
		ToolInfo{Name: getTool.Name, Description: getTool.Description},
	)

	logger.Info().Int("tools", len(listing)).Str("base_url", client.BaseURL()).Msg("MCP server initialized")

	return srv, listing, nil
}

// WriteListing prints the tool catalogue (name and description only) as a
// single JSON document, in registration order.
func WriteListing(w io.Writer, listing []ToolInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listing)
}
