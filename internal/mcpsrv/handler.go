package mcpsrv

import (
	"encoding/json"
	"net/http"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gbstox/leaf-mcp/internal/common"
	"github.com/gbstox/leaf-mcp/internal/leaf"
)

// Handler is the HTTP handler for the multi-tenant MCP endpoint. It wraps
// mcp-go's StreamableHTTPServer and runs the authentication hook on every
// inbound request: the caller's bearer token is extracted into the request
// context before any tool executes, and requests without one are rejected
// with 401 — no upstream call is ever attempted for them.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
}

// NewHandler wraps an MCP server for the streamable HTTP transport.
func NewHandler(srv *mcpserver.MCPServer, logger *common.Logger) *Handler {
	streamable := mcpserver.NewStreamableHTTPServer(srv,
		mcpserver.WithStateLess(true),
	)
	return &Handler{
		streamable: streamable,
		logger:     logger,
	}
}

// ServeHTTP authenticates the request and delegates to the streamable server.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		h.logger.Warn().Str("remote", r.RemoteAddr).Msg("rejecting unauthenticated MCP request")
		w.Header().Set("WWW-Authenticate", "Bearer")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"error":             "unauthorized",
			"error_description": "A bearer token is required to access the MCP endpoint",
		})
		return
	}

	r = r.WithContext(leaf.WithSessionToken(r.Context(), token))
	h.streamable.ServeHTTP(w, r)
}

// bearerToken extracts the bearer token from the Authorization header.
// Returns an empty string for an absent or malformed header.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}
