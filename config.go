package nlmkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// Duration wraps time.Duration with text-based decoding ("30s",
// "5m") for TOML, YAML, and JSON config files.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler (used by TOML).
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds configuration for a Client. Zero values use sensible
// defaults where noted.
type Config struct {
	// Profile selects a NotebookLM profile (from nlm login).
	// Optional.
	Profile string `json:"profile" yaml:"profile" toml:"profile"`

	// HomeDir overrides HOME for the server process, isolating
	// persisted credentials per logical user. Optional.
	HomeDir string `json:"home_dir" yaml:"home_dir" toml:"home_dir"`

	// Command is the server executable. Default: "notebooklm-mcp"
	// (found via PATH).
	Command string `json:"command" yaml:"command" toml:"command"`

	// Args are extra arguments for the server process.
	Args []string `json:"args" yaml:"args" toml:"args"`

	// Env provides additional environment variables for the server.
	Env map[string]string `json:"env" yaml:"env" toml:"env"`

	// PollInterval is the suspend time between research status polls.
	// Default: 30s.
	PollInterval Duration `json:"poll_interval" yaml:"poll_interval" toml:"poll_interval"`

	// MaxWait is the research polling deadline. Default: 5m.
	MaxWait Duration `json:"max_wait" yaml:"max_wait" toml:"max_wait"`

	// StartRetries is how many transient research-start failures are
	// retried. Default: 0.
	StartRetries int `json:"start_retries" yaml:"start_retries" toml:"start_retries"`

	// StartRetryDelay is the initial delay between start retries,
	// doubling each attempt. Default: 10s.
	StartRetryDelay Duration `json:"start_retry_delay" yaml:"start_retry_delay" toml:"start_retry_delay"`
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() Config {
	return Config{
		Command:         nlmcontract.DefaultCommand,
		PollInterval:    Duration(DefaultPollInterval),
		MaxWait:         Duration(DefaultMaxWait),
		StartRetryDelay: Duration(DefaultStartRetryDelay),
	}
}

// LoadFromEnv populates config fields from NOTEBOOKLM_* environment
// variables, which take precedence over existing values.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("NOTEBOOKLM_PROFILE"); v != "" {
		c.Profile = v
	}
	if v := os.Getenv("NOTEBOOKLM_HOME_DIR"); v != "" {
		c.HomeDir = v
	}
	if v := os.Getenv("NOTEBOOKLM_MCP_PATH"); v != "" {
		c.Command = v
	}
	if v := os.Getenv("NOTEBOOKLM_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.PollInterval = Duration(d)
		}
	}
	if v := os.Getenv("NOTEBOOKLM_MAX_WAIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.MaxWait = Duration(d)
		}
	}
	if v := os.Getenv("NOTEBOOKLM_START_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.StartRetries = n
		}
	}
	if v := os.Getenv("NOTEBOOKLM_START_RETRY_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.StartRetryDelay = Duration(d)
		}
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// LoadConfigFile loads a Config from a TOML, YAML, or JSON file,
// picked by extension, layered over the defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse TOML config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse JSON config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Command == "" {
		return fmt.Errorf("command is required")
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("poll_interval must be >= 0, got %v", c.PollInterval.Std())
	}
	if c.MaxWait < 0 {
		return fmt.Errorf("max_wait must be >= 0, got %v", c.MaxWait.Std())
	}
	if c.StartRetries < 0 {
		return fmt.Errorf("start_retries must be >= 0, got %d", c.StartRetries)
	}
	if c.StartRetryDelay < 0 {
		return fmt.Errorf("start_retry_delay must be >= 0, got %v", c.StartRetryDelay.Std())
	}
	return nil
}

// ToOptions converts the config to client options. This enables mixing
// Config with additional options.
func (c *Config) ToOptions() []ClientOption {
	var sessionOpts []SessionOption
	if c.Command != "" {
		sessionOpts = append(sessionOpts, WithCommand(c.Command, c.Args...))
	}
	if c.Profile != "" {
		sessionOpts = append(sessionOpts, WithProfile(c.Profile))
	}
	if c.HomeDir != "" {
		sessionOpts = append(sessionOpts, WithHomeDir(c.HomeDir))
	}
	if len(c.Env) > 0 {
		sessionOpts = append(sessionOpts, WithEnv(c.Env))
	}

	opts := []ClientOption{WithSessionOptions(sessionOpts...)}
	if c.PollInterval > 0 || c.MaxWait > 0 {
		opts = append(opts, WithResearchDefaults(c.PollInterval.Std(), c.MaxWait.Std()))
	}
	if c.StartRetries > 0 || c.StartRetryDelay > 0 {
		opts = append(opts, WithStartRetryDefaults(c.StartRetries, c.StartRetryDelay.Std()))
	}
	return opts
}

// NewFromConfig creates a Client from a Config.
func NewFromConfig(cfg Config) *Client {
	return New(cfg.ToOptions()...)
}
