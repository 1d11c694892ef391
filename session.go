package nlmkit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"reflect"
	"sync"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// ToolCaller is the single capability resource services consume: call
// a named remote tool with an argument mapping and get back the parsed
// result or a typed error.
type ToolCaller interface {
	CallTool(ctx context.Context, name string, args map[string]any) (map[string]any, error)
}

// mcpSession is the slice of the MCP client the session uses.
// *client.Client satisfies it; tests substitute fakes.
type mcpSession interface {
	Initialize(ctx context.Context, request mcp.InitializeRequest) (*mcp.InitializeResult, error)
	CallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
	Close() error
}

// Session owns the notebooklm-mcp subprocess and the MCP stdio session
// over its stdin/stdout. The subprocess is spawned lazily on the first
// tool call and exclusively owned by this Session; all calls are
// serialized because the transport is a single duplex stream that must
// not be pipelined.
type Session struct {
	command  string
	args     []string
	profile  string
	homeDir  string
	extraEnv map[string]string
	logger   *slog.Logger

	// spawn starts the subprocess and performs the MCP handshake.
	// Replaced in tests.
	spawn func(ctx context.Context) (mcpSession, error)

	mu   sync.Mutex
	sess mcpSession
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithCommand sets the server executable. Relative names are resolved
// via PATH at spawn time, falling back to the bare name.
func WithCommand(command string, args ...string) SessionOption {
	return func(s *Session) {
		s.command = command
		s.args = args
	}
}

// WithProfile selects a named NotebookLM profile for the server.
func WithProfile(profile string) SessionOption {
	return func(s *Session) { s.profile = profile }
}

// WithHomeDir overrides HOME for the server process so its persisted
// credentials live under homeDir/.notebooklm-mcp-cli. Use one home per
// logical user or tenant.
func WithHomeDir(dir string) SessionOption {
	return func(s *Session) { s.homeDir = dir }
}

// WithEnv adds environment variables to the server process.
func WithEnv(env map[string]string) SessionOption {
	return func(s *Session) {
		if s.extraEnv == nil {
			s.extraEnv = make(map[string]string)
		}
		for k, v := range env {
			s.extraEnv[k] = v
		}
	}
}

// WithLogger sets the slog logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a Session. No subprocess is started until Connect
// or the first CallTool.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		command: nlmcontract.DefaultCommand,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawn = s.spawnStdio
	return s
}

// Profile returns the configured profile name, if any.
func (s *Session) Profile() string { return s.profile }

// Connect spawns the server and performs the protocol handshake.
// Idempotent: if already connected it does nothing.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.connectLocked(ctx)
	return err
}

func (s *Session) connectLocked(ctx context.Context) (mcpSession, error) {
	if s.sess != nil {
		return s.sess, nil
	}
	sess, err := s.spawn(ctx)
	if err != nil {
		return nil, err
	}
	s.sess = sess
	return sess, nil
}

// spawnStdio starts the server subprocess over stdio and initializes
// the MCP session.
func (s *Session) spawnStdio(ctx context.Context) (mcpSession, error) {
	env := make([]string, 0, len(s.extraEnv)+2)
	if s.profile != "" {
		env = append(env, nlmcontract.EnvProfile+"="+s.profile)
	}
	if s.homeDir != "" {
		env = append(env, nlmcontract.EnvHome+"="+s.homeDir)
	}
	for k, v := range s.extraEnv {
		env = append(env, k+"="+v)
	}

	command := resolveCommand(s.command)
	s.logger.Debug("starting MCP server", "command", command, "profile", s.profile)

	cli, err := mcpclient.NewStdioMCPClient(command, env, s.args...)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", s.command, err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "nlmkit",
		Version: Version,
	}
	if _, err := cli.Initialize(ctx, initReq); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("initialize MCP session: %w", err)
	}
	return cli, nil
}

// resolveCommand locates the executable on PATH, falling back to the
// bare name so exec can report a meaningful error.
func resolveCommand(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if path, err := exec.LookPath(name); err == nil {
		return path
	}
	return name
}

// Disconnect closes the MCP session and the subprocess transport, in
// that order. Safe to call when never connected and safe to call
// twice.
func (s *Session) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil
	}
	err := s.sess.Close()
	s.sess = nil
	if err != nil {
		return fmt.Errorf("close MCP session: %w", err)
	}
	s.logger.Debug("MCP session closed")
	return nil
}

// CallTool invokes a remote tool, connecting first if needed.
// Argument entries with nil values are stripped before transmission:
// the server distinguishes "not provided" from "explicitly null".
// Errors are classified into typed kinds with the tool name preserved
// in the message.
func (s *Session) CallTool(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.connectLocked(ctx)
	if err != nil {
		return nil, err
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = stripNullArgs(args)

	s.logger.Debug("calling tool", "tool", name)
	result, err := sess.CallTool(ctx, req)
	if err != nil {
		return nil, classifyError(name, err.Error())
	}

	if result.IsError {
		return nil, classifyError(name, firstText(result.Content))
	}

	data := parseToolResult(result)

	// The server also reports application errors inside an otherwise
	// successful payload.
	if status, _ := data["status"].(string); status == "error" {
		msg := firstNonEmpty(stringify(data["error"]), stringify(data["message"]), "Unknown error")
		return nil, classifyError(name, msg)
	}
	if errVal, ok := data["error"]; ok && !isEmptyValue(errVal) {
		return nil, classifyError(name, stringify(errVal))
	}

	return data, nil
}

// stripNullArgs removes entries whose value is nil, including typed
// nils (pointers, slices, maps).
func stripNullArgs(args map[string]any) map[string]any {
	filtered := make(map[string]any, len(args))
	for k, v := range args {
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				continue
			}
		}
		filtered[k] = v
	}
	return filtered
}

// parseToolResult decodes a tool result into a map. Pre-parsed
// structured content wins; otherwise the first non-empty text block is
// parsed as JSON; unparseable text is wrapped under "raw".
func parseToolResult(result *mcp.CallToolResult) map[string]any {
	if structured, ok := result.StructuredContent.(map[string]any); ok && structured != nil {
		return structured
	}
	for _, block := range result.Content {
		text, ok := mcp.AsTextContent(block)
		if !ok || text.Text == "" {
			continue
		}
		var data map[string]any
		if err := json.Unmarshal([]byte(text.Text), &data); err != nil {
			return map[string]any{"raw": text.Text}
		}
		return data
	}
	return map[string]any{}
}

// firstText returns the first text block's content, or "".
func firstText(content []mcp.Content) string {
	for _, block := range content {
		if text, ok := mcp.AsTextContent(block); ok {
			return text.Text
		}
	}
	return ""
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// isEmptyValue mirrors the server contract's notion of a falsy error
// field: nil, "", false, or zero.
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	default:
		return false
	}
}
