package leaf

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned when no bearer token is available for a call:
// the request context carries no session token and no process-wide API key
// is configured. No upstream request is attempted in that case.
var ErrUnauthorized = errors.New("unauthorized: no bearer token available")

// sessionTokenKey is the context key for the per-request bearer token.
type sessionTokenKey struct{}

// WithSessionToken returns a new context carrying a session-scoped bearer
// token. The HTTP transport attaches one per inbound request after the
// authentication handshake.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

// SessionToken extracts the session-scoped bearer token from the context,
// if present.
func SessionToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenKey{}).(string)
	return token, ok && token != ""
}

// resolveAuthorization produces the Authorization header value for a call.
// A session token attached to the context takes precedence over the
// process-wide API key; with neither, the call fails before any network
// activity.
func (c *Client) resolveAuthorization(ctx context.Context) (string, error) {
	if token, ok := SessionToken(ctx); ok {
		return "Bearer " + token, nil
	}
	if c.apiKey != "" {
		return "Bearer " + c.apiKey, nil
	}
	return "", ErrUnauthorized
}
