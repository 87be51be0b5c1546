// Package docs serves the embedded Leaf platform documentation as two
// ancillary MCP tools: list_docs and get_doc.
package docs

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

//go:embed content
var content embed.FS

// Store is the immutable slug -> document mapping, built once at startup.
type Store struct {
	slugs  []string
	bySlug map[string]string
}

// Load walks the embedded content tree and builds the store. Slugs are the
// file paths relative to the content root with the extension stripped.
// fs.WalkDir visits entries in lexical order, so the slug list is stable.
func Load() (*Store, error) {
	s := &Store{bySlug: make(map[string]string)}

	err := fs.WalkDir(content, "content", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := content.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read embedded doc %s: %w", p, err)
		}

		slug := strings.TrimPrefix(p, "content/")
		slug = strings.TrimSuffix(slug, path.Ext(slug))
		s.slugs = append(s.slugs, slug)
		s.bySlug[slug] = string(data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Slugs returns all document slugs in lexical order.
func (s *Store) Slugs() []string {
	result := make([]string, len(s.slugs))
	copy(result, s.slugs)
	return result
}

// Get returns the full text of a document by slug.
func (s *Store) Get(slug string) (string, bool) {
	text, ok := s.bySlug[slug]
	return text, ok
}

// ListTool describes the list_docs tool.
func ListTool() mcp.Tool {
	return mcp.NewTool("list_docs",
		mcp.WithDescription("List the available Leaf platform documentation pages by slug. Use get_doc to fetch one."),
	)
}

// GetTool describes the get_doc tool.
func GetTool() mcp.Tool {
	return mcp.NewTool("get_doc",
		mcp.WithDescription("Get the full text of a Leaf platform documentation page by slug."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Document slug, as returned by list_docs"),
		),
	)
}

// ListHandler handles list_docs calls.
func (s *Store) ListHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := json.Marshal(s.Slugs())
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(string(out)), nil
	}
}

// GetHandler handles get_doc calls.
func (s *Store) GetHandler() server.ToolHandlerFunc {
	return func(_ context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slug, err := r.RequireString("slug")
		if err != nil || slug == "" {
			return errorResult("Error: slug parameter is required"), nil
		}

		text, ok := s.Get(slug)
		if !ok {
			return errorResult(fmt.Sprintf("Error: no document with slug %q (use list_docs for available slugs)", slug)), nil
		}
		return textResult(text), nil
	}
}

// Register adds the documentation tools to the MCP server.
func Register(srv *server.MCPServer, s *Store) {
	srv.AddTool(ListTool(), s.ListHandler())
	srv.AddTool(GetTool(), s.GetHandler())
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
