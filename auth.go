package nlmkit

import (
	"context"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// AuthService manages the server's NotebookLM authentication state.
type AuthService struct {
	caller ToolCaller
}

// Refresh reloads auth tokens from disk or runs headless
// re-authentication on the server side.
func (a *AuthService) Refresh(ctx context.Context) (map[string]any, error) {
	return a.caller.CallTool(ctx, nlmcontract.ToolRefreshAuth, map[string]any{})
}

// SaveTokensParams are the optional arguments for SaveTokens.
type SaveTokensParams struct {
	CSRFToken   string
	SessionID   string
	RequestBody string
	RequestURL  string
}

// SaveTokens saves NotebookLM cookies captured from a browser. This is
// the fallback path; prefer nlm login.
func (a *AuthService) SaveTokens(ctx context.Context, cookies string, params SaveTokensParams) (map[string]any, error) {
	if isBlank(cookies) {
		return nil, newValidationError("cookies cannot be empty")
	}
	return a.caller.CallTool(ctx, nlmcontract.ToolSaveAuthTokens, map[string]any{
		"cookies":      cookies,
		"csrf_token":   nilIfEmpty(params.CSRFToken),
		"session_id":   nilIfEmpty(params.SessionID),
		"request_body": nilIfEmpty(params.RequestBody),
		"request_url":  nilIfEmpty(params.RequestURL),
	})
}
