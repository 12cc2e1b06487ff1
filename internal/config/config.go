// Package config resolves mindwell configuration from an optional YAML file
// and a ranked list of environment variables. A missing credential is a
// supported state (offline mode), never an error: the application must come
// up and degrade gracefully without one.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mindwell/internal/logging"
	"mindwell/internal/wellness"
)

// Default model identifiers. Fast is used for latency-sensitive structured
// calls (security check, emotion, actions, gift); Deep for the
// high-capability calls (chat, risk).
const (
	DefaultFastModel = "gemini-3-flash-preview"
	DefaultDeepModel = "gemini-3-pro-preview"
)

// credentialEnvVars is the ranked list of configuration sources for the API
// key. The first non-empty, non-placeholder value wins.
var credentialEnvVars = []string{
	"MINDWELL_API_KEY",
	"GEMINI_API_KEY",
	"VITE_API_KEY",
	"API_KEY",
}

// Config is the full application configuration.
type Config struct {
	Model    ModelSettings   `yaml:"model"`
	Storage  StorageSettings `yaml:"storage"`
	Logging  LoggingSettings `yaml:"logging"`
	Timeouts Timeouts        `yaml:"timeouts"`
}

// ModelSettings configures the generative backend.
type ModelSettings struct {
	APIKey    string `yaml:"api_key"`
	FastModel string `yaml:"fast_model"`
	DeepModel string `yaml:"deep_model"`
}

// StorageSettings configures the persistence collaborator.
type StorageSettings struct {
	Path string `yaml:"path"`
}

// LoggingSettings configures log output.
type LoggingSettings struct {
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Model: ModelSettings{
			FastModel: DefaultFastModel,
			DeepModel: DefaultDeepModel,
		},
		Storage: StorageSettings{
			Path: defaultStoragePath(),
		},
		Timeouts: DefaultTimeouts(),
	}
}

// Load reads the config file at path (if it exists), fills defaults, and
// applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
			logging.Boot("config loaded from %s", path)
		case os.IsNotExist(err):
			logging.BootWarn("config file %s not found, using defaults", path)
		default:
			return nil, err
		}
	}

	cfg.fillDefaults()
	cfg.applyEnvOverrides()
	return cfg, nil
}

// DefaultConfigPath returns the default location of the config file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mindwell.yaml"
	}
	return filepath.Join(home, ".mindwell", "config.yaml")
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mindwell.db"
	}
	return filepath.Join(home, ".mindwell", "mindwell.db")
}

func (c *Config) fillDefaults() {
	if c.Model.FastModel == "" {
		c.Model.FastModel = DefaultFastModel
	}
	if c.Model.DeepModel == "" {
		c.Model.DeepModel = DefaultDeepModel
	}
	if c.Storage.Path == "" {
		c.Storage.Path = defaultStoragePath()
	}
	c.Timeouts.fillDefaults()
}

// applyEnvOverrides walks the ranked credential sources. A key already set in
// the config file has highest priority; otherwise the first usable
// environment value wins.
func (c *Config) applyEnvOverrides() {
	if isPlaceholder(c.Model.APIKey) {
		c.Model.APIKey = ""
		for _, name := range credentialEnvVars {
			if v := os.Getenv(name); !isPlaceholder(v) {
				c.Model.APIKey = strings.TrimSpace(v)
				logging.Boot("credential resolved from %s", name)
				break
			}
		}
	}
	if v := os.Getenv("MINDWELL_FAST_MODEL"); v != "" {
		c.Model.FastModel = v
	}
	if v := os.Getenv("MINDWELL_DEEP_MODEL"); v != "" {
		c.Model.DeepModel = v
	}
	if os.Getenv("MINDWELL_DEBUG") == "1" {
		c.Logging.Debug = true
	}
}

// isPlaceholder reports whether a configured value should be treated as
// absent. Bundler templates leave literal "undefined" behind, and sample
// configs ship with obvious stand-ins.
func isPlaceholder(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "undefined", "null", "changeme", "your-api-key", "your_api_key_here":
		return true
	}
	return false
}

// ModelConfig returns the immutable resolved model configuration.
func (c *Config) ModelConfig() wellness.ModelConfig {
	return wellness.ModelConfig{
		APIKey:    c.Model.APIKey,
		FastModel: c.Model.FastModel,
		DeepModel: c.Model.DeepModel,
	}
}

// Offline reports whether no usable credential was resolved.
func (c *Config) Offline() bool {
	return c.Model.APIKey == ""
}
