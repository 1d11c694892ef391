package nlmkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// Credential errors.
var (
	// ErrCredentialsNotFound indicates no credentials file was found.
	ErrCredentialsNotFound = errors.New("credentials file not found")

	// ErrCredentialsInvalid indicates the credentials file is malformed.
	ErrCredentialsInvalid = errors.New("invalid credentials format")
)

// Credentials are the NotebookLM cookies the MCP server persists under
// $HOME/.notebooklm-mcp-cli. The server writes this file after nlm
// login or save_auth_tokens; loading it is useful for diagnostics and
// for copying credentials into isolated homes.
type Credentials struct {
	// Cookies is the raw cookie string captured from the browser.
	Cookies string `json:"cookies"`

	// CSRFToken accompanies write operations.
	CSRFToken string `json:"csrf_token,omitempty"`

	// SessionID is the NotebookLM web session ID.
	SessionID string `json:"session_id,omitempty"`

	// Profile names the profile that owns these credentials.
	Profile string `json:"profile,omitempty"`

	// SavedAt is the Unix timestamp (milliseconds) when the
	// credentials were persisted.
	SavedAt int64 `json:"saved_at,omitempty"`
}

// DefaultCredentialPath returns the credentials path under the current
// user's home, or "" if the home cannot be determined.
func DefaultCredentialPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return CredentialPathInHome(home)
}

// CredentialPathInHome returns the server's credentials path under a
// specific home directory (matching WithHomeDir isolation).
func CredentialPathInHome(home string) string {
	return filepath.Join(home, nlmcontract.CredentialDirName, nlmcontract.CredentialFileName)
}

// LoadCredentials loads persisted credentials from path. An empty path
// uses DefaultCredentialPath().
func LoadCredentials(path string) (*Credentials, error) {
	if path == "" {
		path = DefaultCredentialPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCredentialsNotFound, path)
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentialsInvalid, err)
	}
	return &creds, nil
}

// WriteCredentials writes credentials to path with restrictive
// permissions, creating the directory if needed.
func WriteCredentials(path string, creds *Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// SavedTime returns when the credentials were persisted.
func (c *Credentials) SavedTime() time.Time {
	return time.UnixMilli(c.SavedAt)
}

// IsStale reports whether the credentials were persisted longer than
// maxAge ago. A zero SavedAt is always stale.
func (c *Credentials) IsStale(maxAge time.Duration) bool {
	if c.SavedAt == 0 {
		return true
	}
	return time.Since(c.SavedTime()) > maxAge
}

// WatchCredentials watches the credentials file at path and sends a
// snapshot whenever the server rewrites it (for example after a
// headless re-authentication). The channel is closed when the context
// is cancelled. The parent directory must exist.
func WatchCredentials(ctx context.Context, path string) (<-chan Credentials, error) {
	if path == "" {
		path = DefaultCredentialPath()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: more reliable than watching the file
	// directly across atomic rewrites.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	ch := make(chan Credentials, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()

		baseName := filepath.Base(path)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != baseName {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				creds, err := LoadCredentials(path)
				if err != nil {
					// Partial write; the next event delivers it.
					continue
				}
				select {
				case ch <- *creds:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return ch, nil
}
