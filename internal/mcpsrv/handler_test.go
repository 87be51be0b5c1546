package mcpsrv

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gbstox/leaf-mcp/internal/common"
)

func testHandler(t *testing.T) *Handler {
	t.Helper()
	srv := mcpserver.NewMCPServer("leaf-mcp-test", "0.0.0", mcpserver.WithToolCapabilities(true))
	return NewHandler(srv, common.NewSilentLogger())
}

func TestServeHTTP_NoBearerRejected(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
		t.Errorf("expected WWW-Authenticate: Bearer, got %q", got)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("401 body is not JSON: %v", err)
	}
	if body["error"] != "unauthorized" {
		t.Errorf("unexpected 401 body: %v", body)
	}
}

func TestServeHTTP_MalformedAuthorizationRejected(t *testing.T) {
	h := testHandler(t)

	for _, header := range []string{"Basic dXNlcjpwYXNz", "bearer lowercase", "Bearer "} {
		req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{}`))
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestServeHTTP_BearerTokenAccepted(t *testing.T) {
	h := testHandler(t)

	// A tools/list round trip proves the request cleared authentication and
	// reached the streamable server.
	body := `{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer session-token")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code == http.StatusUnauthorized {
		t.Fatal("authenticated request must not be rejected")
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"Bearer   padded  ", "padded"},
		{"", ""},
		{"Basic dXNlcjpwYXNz", ""},
		{"bearer abc123", ""},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
		if c.header != "" {
			req.Header.Set("Authorization", c.header)
		}
		if got := bearerToken(req); got != c.want {
			t.Errorf("bearerToken(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}
