package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"webterm/internal/errors"
	"webterm/pkg/types"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines session defaults, the catalog source, the SSH server and logging.
type Config struct {
	Session struct {
		User         string `yaml:"user"`          // User name shown in the prompt
		Host         string `yaml:"host"`          // Host name shown in the prompt
		Theme        string `yaml:"theme"`         // Theme every session starts with
		HistoryLimit int    `yaml:"history_limit"` // Max retained history entries (0 = unlimited)
	} `yaml:"session"`
	Catalog struct {
		Path  string `yaml:"path"`  // Optional YAML catalog; built-in tree when empty
		Watch bool   `yaml:"watch"` // Reload the catalog file when it changes
	} `yaml:"catalog"`
	Server struct {
		Host         string   `yaml:"host"`          // Address to bind
		Port         int      `yaml:"port"`          // Port to listen on
		HostKeyPath  string   `yaml:"host_key_path"` // SSH host key, generated if missing
		AllowedUsers []string `yaml:"allowed_users"` // Glob patterns of accepted user names
		IdleTimeout  int      `yaml:"idle_timeout"`  // Idle timeout in seconds (0 = none)
		MaxSessions  int      `yaml:"max_sessions"`  // Concurrent session limit (0 = unlimited)
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`  // debug, info, warn, error
		Format string `yaml:"format"` // text or json
		File   string `yaml:"file"`   // Log file; stderr when empty
	} `yaml:"logging"`
}

// DefaultPath returns the default config location
// (~/.config/webterm/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "webterm", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "error reading config file")
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.Wrap(err, "error parsing config file")
	}

	if tempCfg.Session.User != "" {
		cfg.Session.User = tempCfg.Session.User
	}
	if tempCfg.Session.Host != "" {
		cfg.Session.Host = tempCfg.Session.Host
	}
	if tempCfg.Session.Theme != "" {
		cfg.Session.Theme = tempCfg.Session.Theme
	}
	cfg.Session.HistoryLimit = tempCfg.Session.HistoryLimit

	cfg.Catalog.Path = tempCfg.Catalog.Path
	cfg.Catalog.Watch = tempCfg.Catalog.Watch

	if tempCfg.Server.Host != "" {
		cfg.Server.Host = tempCfg.Server.Host
	}
	if tempCfg.Server.Port != 0 {
		cfg.Server.Port = tempCfg.Server.Port
	}
	if tempCfg.Server.HostKeyPath != "" {
		cfg.Server.HostKeyPath = tempCfg.Server.HostKeyPath
	}
	if tempCfg.Server.AllowedUsers != nil {
		cfg.Server.AllowedUsers = tempCfg.Server.AllowedUsers
	}
	if tempCfg.Server.IdleTimeout != 0 {
		cfg.Server.IdleTimeout = tempCfg.Server.IdleTimeout
	}
	cfg.Server.MaxSessions = tempCfg.Server.MaxSessions

	if tempCfg.Logging.Level != "" {
		cfg.Logging.Level = tempCfg.Logging.Level
	}
	if tempCfg.Logging.Format != "" {
		cfg.Logging.Format = tempCfg.Logging.Format
	}
	cfg.Logging.File = tempCfg.Logging.File

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Session.User = "guest"
	cfg.Session.Host = "webterm"
	cfg.Session.Theme = types.ThemeDark.String()
	cfg.Session.HistoryLimit = 0

	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 2222
	cfg.Server.HostKeyPath = filepath.Join(".ssh", "webterm_ed25519")
	cfg.Server.AllowedUsers = []string{"*"}
	cfg.Server.IdleTimeout = 600 // 10 minutes
	cfg.Server.MaxSessions = 0

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if _, ok := types.ParseTheme(c.Session.Theme); !ok {
		return errors.NewConfigError("unknown theme (one of "+types.ThemeKeywords()+")", c.Session.Theme, errors.InvalidConfig, nil)
	}
	if c.Session.HistoryLimit < 0 {
		return errors.NewConfigError("history limit must be >= 0", "session.history_limit", errors.InvalidConfig, nil)
	}

	if c.Catalog.Watch && c.Catalog.Path == "" {
		return errors.NewConfigError("catalog watch requires a catalog path", "catalog.watch", errors.InvalidConfig, nil)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.NewConfigError("port out of range", strconv.Itoa(c.Server.Port), errors.InvalidConfig, nil)
	}
	if c.Server.IdleTimeout < 0 {
		return errors.NewConfigError("idle timeout must be >= 0 seconds", "server.idle_timeout", errors.InvalidConfig, nil)
	}
	if c.Server.MaxSessions < 0 {
		return errors.NewConfigError("max sessions must be >= 0", "server.max_sessions", errors.InvalidConfig, nil)
	}
	for _, pattern := range c.Server.AllowedUsers {
		if pattern == "" {
			return errors.NewConfigError("empty allowed user pattern", "server.allowed_users", errors.InvalidConfig, nil)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid allowed user pattern", pattern, errors.InvalidConfig, err)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return errors.NewConfigError("invalid log level", c.Logging.Level, errors.InvalidConfig, nil)
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Logging.Format] {
		return errors.NewConfigError("invalid log format", c.Logging.Format, errors.InvalidConfig, nil)
	}

	return nil
}

// SessionTheme returns the configured starting theme
func (c *Config) SessionTheme() types.Theme {
	t, _ := types.ParseTheme(c.Session.Theme)
	return t
}

// Address returns the server listen address
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// IdleTimeout returns the server idle timeout as a duration
func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeout) * time.Second
}
