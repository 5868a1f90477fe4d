// Package config loads the hookgate configuration from
// ~/.hookgate/config.yaml. A missing file yields the built-in
// defaults; hooks never require a config file to run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir  = ".hookgate"
	DefaultConfigFile = "config.yaml"
	DefaultAuditFile  = "audit.jsonl"
)

// Config is the on-disk configuration.
type Config struct {
	// AuditLog is the JSONL decision log path. Empty disables
	// audit logging.
	AuditLog string `yaml:"audit_log"`

	// Allowlist is the default allowlist pattern file for guard,
	// used when no positional argument is given.
	Allowlist string `yaml:"allowlist"`

	// SensitivePatterns is the default extra-pattern file for
	// protect, used when no positional argument is given.
	SensitivePatterns string `yaml:"sensitive_patterns"`

	// TimeoutSeconds bounds collaborator subprocesses.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Formatters maps file extensions to formatter argument
	// vectors; the file path is appended.
	Formatters map[string][]string `yaml:"formatters"`

	// TypeCheckers maps file extensions to type-checker argument
	// vectors; the file path is appended.
	TypeCheckers map[string][]string `yaml:"type_checkers"`

	// ConfigDir is where hookgate state lives. Not serialized.
	ConfigDir string `yaml:"-"`
}

// Timeout returns the collaborator subprocess bound as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TimeoutSeconds: 30,
		Formatters: map[string][]string{
			".js":   {"prettier", "--write"},
			".jsx":  {"prettier", "--write"},
			".ts":   {"prettier", "--write"},
			".tsx":  {"prettier", "--write"},
			".json": {"prettier", "--write"},
			".md":   {"prettier", "--write"},
			".css":  {"prettier", "--write"},
			".html": {"prettier", "--write"},
			".py":   {"black"},
			".go":   {"gofmt", "-w"},
		},
		TypeCheckers: map[string][]string{
			".ts":  {"tsc", "--noEmit"},
			".tsx": {"tsc", "--noEmit"},
			".py":  {"mypy"},
		},
	}
}

// Load reads the config file at path, or the default location when
// path is empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		cfg.ConfigDir = filepath.Join(homeDir, DefaultConfigDir)
		cfg.AuditLog = filepath.Join(cfg.ConfigDir, DefaultAuditFile)
	}

	if path == "" {
		if cfg.ConfigDir == "" {
			return cfg, nil
		}
		path = filepath.Join(cfg.ConfigDir, DefaultConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = Default().TimeoutSeconds
	}

	return cfg, nil
}

// EnsureConfigDir creates the state directory if needed.
func (c *Config) EnsureConfigDir() error {
	if c.ConfigDir == "" {
		return nil
	}
	return os.MkdirAll(c.ConfigDir, 0700)
}
