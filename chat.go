package nlmkit

import (
	"context"
	"time"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// ChatService asks questions about notebook sources and configures the
// notebook's chat behavior.
type ChatService struct {
	caller ToolCaller
}

// AskOption configures Ask.
type AskOption func(*askOptions)

type askOptions struct {
	sourceIDs      []string
	conversationID string
	timeout        time.Duration
}

// WithAskSources scopes the query to specific sources.
func WithAskSources(sourceIDs ...string) AskOption {
	return func(o *askOptions) { o.sourceIDs = sourceIDs }
}

// WithConversation continues an existing conversation.
func WithConversation(conversationID string) AskOption {
	return func(o *askOptions) { o.conversationID = conversationID }
}

// WithAskTimeout sets a server-side timeout for the query.
func WithAskTimeout(d time.Duration) AskOption {
	return func(o *askOptions) { o.timeout = d }
}

// Ask asks a question about the existing sources in the notebook.
func (c *ChatService) Ask(ctx context.Context, notebookID, query string, opts ...AskOption) (*ChatResponse, error) {
	var o askOptions
	for _, opt := range opts {
		opt(&o)
	}

	args := map[string]any{
		"notebook_id":     notebookID,
		"query":           query,
		"source_ids":      nilIfEmptySlice(o.sourceIDs),
		"conversation_id": nilIfEmpty(o.conversationID),
	}
	if o.timeout > 0 {
		args["timeout"] = o.timeout.Seconds()
	}
	data, err := c.caller.CallTool(ctx, nlmcontract.ToolNotebookQuery, args)
	if err != nil {
		return nil, err
	}

	var response ChatResponse
	if err := decodeInto(nlmcontract.ToolNotebookQuery, aliasKeys(data, map[string]string{"response": "answer"}), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// ChatConfig are the notebook chat settings for Configure.
type ChatConfig struct {
	// Goal is one of default, learning_guide, custom.
	Goal string

	// CustomPrompt is the system prompt when Goal is custom.
	CustomPrompt string

	// ResponseLength is one of default, longer, shorter.
	ResponseLength string
}

// Configure updates the notebook's chat settings. Zero-valued fields
// fall back to the server defaults.
func (c *ChatService) Configure(ctx context.Context, notebookID string, cfg ChatConfig) (map[string]any, error) {
	goal := cfg.Goal
	if goal == "" {
		goal = "default"
	}
	length := cfg.ResponseLength
	if length == "" {
		length = "default"
	}
	return c.caller.CallTool(ctx, nlmcontract.ToolChatConfigure, map[string]any{
		"notebook_id":     notebookID,
		"goal":            goal,
		"custom_prompt":   nilIfEmpty(cfg.CustomPrompt),
		"response_length": length,
	})
}
