package nlmkit

import (
	"context"
	"log/slog"
	"time"
)

// Version identifies this client in the MCP handshake.
const Version = "0.3.0"

// Client is a typed NotebookLM client over a notebooklm-mcp stdio
// session. Services share one Session; the subprocess is spawned
// lazily on the first call and released by Close. Callers needing
// isolation (separate profiles or credential homes) create separate
// Clients.
type Client struct {
	session *Session
	logger  *slog.Logger

	pollInterval    time.Duration
	maxWait         time.Duration
	startRetries    int
	startRetryDelay time.Duration
	sessionOpts     []SessionOption

	Notebook *NotebookService
	Source   *SourceService
	Chat     *ChatService
	Research *ResearchService
	Studio   *StudioService
	Share    *ShareService
	Download *DownloadService
	Note     *NoteService
	Auth     *AuthService
	Export   *ExportService
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithSessionOptions forwards options to the underlying Session
// (command, profile, home dir, env).
func WithSessionOptions(opts ...SessionOption) ClientOption {
	return func(c *Client) { c.sessionOpts = append(c.sessionOpts, opts...) }
}

// WithClientLogger sets the slog logger for the client and its
// session.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithResearchDefaults sets the default poll interval and deadline for
// research status polling.
func WithResearchDefaults(pollInterval, maxWait time.Duration) ClientOption {
	return func(c *Client) {
		if pollInterval > 0 {
			c.pollInterval = pollInterval
		}
		if maxWait > 0 {
			c.maxWait = maxWait
		}
	}
}

// WithStartRetryDefaults sets the default retry budget for the
// transient research-start failure mode.
func WithStartRetryDefaults(retries int, delay time.Duration) ClientOption {
	return func(c *Client) {
		if retries >= 0 {
			c.startRetries = retries
		}
		if delay > 0 {
			c.startRetryDelay = delay
		}
	}
}

// New creates a Client. No subprocess is started until the first call;
// release with Close.
//
//	client := nlmkit.New(nlmkit.WithSessionOptions(nlmkit.WithProfile("work")))
//	defer client.Close()
//	notebooks, err := client.Notebook.List(ctx, 0)
func New(opts ...ClientOption) *Client {
	c := &Client{
		logger:          slog.Default(),
		pollInterval:    DefaultPollInterval,
		maxWait:         DefaultMaxWait,
		startRetryDelay: DefaultStartRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	sessionOpts := append([]SessionOption{WithLogger(c.logger)}, c.sessionOpts...)
	c.session = NewSession(sessionOpts...)
	c.bindServices(c.session)
	return c
}

// NewWithCaller creates a Client over an arbitrary ToolCaller instead
// of a subprocess session. Useful for tests with a MockCaller.
func NewWithCaller(caller ToolCaller, opts ...ClientOption) *Client {
	c := &Client{
		logger:          slog.Default(),
		pollInterval:    DefaultPollInterval,
		maxWait:         DefaultMaxWait,
		startRetryDelay: DefaultStartRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bindServices(caller)
	return c
}

func (c *Client) bindServices(caller ToolCaller) {
	research := newResearchService(caller, c.logger)
	research.pollInterval = c.pollInterval
	research.maxWait = c.maxWait
	research.startRetries = c.startRetries
	research.startRetryDelay = c.startRetryDelay

	c.Notebook = &NotebookService{caller: caller}
	c.Source = &SourceService{caller: caller}
	c.Chat = &ChatService{caller: caller}
	c.Research = research
	c.Studio = &StudioService{caller: caller}
	c.Share = &ShareService{caller: caller}
	c.Download = &DownloadService{caller: caller}
	c.Note = &NoteService{caller: caller}
	c.Auth = &AuthService{caller: caller}
	c.Export = &ExportService{caller: caller}
}

// Session returns the underlying Session, or nil when the client was
// built with NewWithCaller.
func (c *Client) Session() *Session { return c.session }

// Connect eagerly establishes the MCP session. Optional: the first
// tool call connects lazily.
func (c *Client) Connect(ctx context.Context) error {
	if c.session == nil {
		return nil
	}
	return c.session.Connect(ctx)
}

// Close releases the MCP session and its subprocess. Idempotent and
// safe on a never-connected client.
func (c *Client) Close() error {
	if c.session == nil {
		return nil
	}
	return c.session.Disconnect()
}
