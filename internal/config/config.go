// Package config handles promptarchitect configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/HartBrook/promptarchitect/internal/catalog"
	"github.com/HartBrook/promptarchitect/internal/errors"
	"github.com/HartBrook/promptarchitect/internal/improve"
	"github.com/HartBrook/promptarchitect/internal/prompt"
)

// DefaultsConfig seeds every new session.
type DefaultsConfig struct {
	Tone        string `yaml:"tone,omitempty"`
	Format      string `yaml:"format,omitempty"`
	DetailLevel int    `yaml:"detail_level,omitempty"`
	Language    string `yaml:"language,omitempty"`
	AIEngine    string `yaml:"ai_engine,omitempty"`
	Style       string `yaml:"style,omitempty"` // "integrated" or "category"
}

// ImproveConfig contains settings for the AI improvement client.
type ImproveConfig struct {
	BaseURL           string  `yaml:"base_url,omitempty"`
	Model             string  `yaml:"model,omitempty"`
	Timeout           string  `yaml:"timeout,omitempty"` // e.g., "10s"
	MaxTokens         int     `yaml:"max_tokens,omitempty"`
	Temperature       float64 `yaml:"temperature,omitempty"` // 0 selects the default
	RequestsPerMinute int     `yaml:"requests_per_minute,omitempty"`
}

// ExportConfig contains export settings.
type ExportConfig struct {
	Dir string `yaml:"dir,omitempty"` // empty writes to the working directory
}

// Config represents the promptarchitect configuration file.
type Config struct {
	Version int `yaml:"version"`

	Defaults DefaultsConfig `yaml:"defaults"`
	Improve  ImproveConfig  `yaml:"improve"`
	Export   ExportConfig   `yaml:"export,omitempty"`
}

// Default values.
const (
	DefaultVersion           = 1
	DefaultStyle             = "integrated"
	DefaultRequestsPerMinute = 30
)

// Load reads and validates config from the default location.
func Load() (*Config, error) {
	paths := NewPaths()
	return LoadFrom(paths.ConfigFile)
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault reads config from path, falling back to defaults when the file
// does not exist. Invalid files are still reported.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadFrom(path)
	if errors.Is(err, errors.ErrConfigNotFound) {
		return NewDefaultConfig(), nil
	}
	return cfg, err
}

// NewDefaultConfig returns a config with every default applied.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks config values against the option catalog.
func (c *Config) Validate() error {
	cat := catalog.Default()
	d := c.Defaults

	if d.Tone != "" && !cat.HasTone(d.Tone) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown defaults.tone %q", d.Tone))
	}
	if d.Format != "" && !cat.HasFormat(d.Format) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown defaults.format %q", d.Format))
	}
	if d.Language != "" && !cat.HasLanguage(d.Language) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown defaults.language %q", d.Language))
	}
	if d.AIEngine != "" {
		if _, ok := cat.Engine(d.AIEngine); !ok {
			return errors.ConfigInvalid(fmt.Sprintf("unknown defaults.ai_engine %q", d.AIEngine))
		}
	}
	if d.DetailLevel < prompt.MinDetailLevel || d.DetailLevel > prompt.MaxDetailLevel {
		return errors.ConfigInvalid(fmt.Sprintf("defaults.detail_level must be between %d and %d", prompt.MinDetailLevel, prompt.MaxDetailLevel))
	}
	if _, err := prompt.ParseStyle(d.Style); err != nil {
		return errors.ConfigInvalid(err.Error())
	}

	if c.Improve.Timeout != "" {
		if _, err := time.ParseDuration(c.Improve.Timeout); err != nil {
			return errors.ConfigInvalid("invalid improve.timeout format, use Go duration format (e.g., 10s)")
		}
	}
	if c.Improve.Temperature < 0 || c.Improve.Temperature > 2 {
		return errors.ConfigInvalid("improve.temperature must be between 0 and 2")
	}
	if c.Improve.MaxTokens < 0 {
		return errors.ConfigInvalid("improve.max_tokens cannot be negative")
	}
	if c.Improve.RequestsPerMinute < 0 {
		return errors.ConfigInvalid("improve.requests_per_minute cannot be negative")
	}

	return nil
}

// applyDefaults sets default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}

	d := &c.Defaults
	if d.Tone == "" {
		d.Tone = prompt.DefaultTone
	}
	if d.Format == "" {
		d.Format = prompt.DefaultFormat
	}
	if d.DetailLevel == 0 {
		d.DetailLevel = prompt.DefaultDetailLevel
	}
	if d.Language == "" {
		d.Language = prompt.DefaultLanguage
	}
	if d.AIEngine == "" {
		d.AIEngine = prompt.DefaultEngine
	}
	if d.Style == "" {
		d.Style = DefaultStyle
	}

	i := &c.Improve
	if i.BaseURL == "" {
		i.BaseURL = improve.DefaultBaseURL
	}
	if i.Model == "" {
		i.Model = improve.DefaultModel
	}
	if i.Timeout == "" {
		i.Timeout = improve.DefaultTimeout.String()
	}
	if i.MaxTokens == 0 {
		i.MaxTokens = improve.DefaultMaxTokens
	}
	if i.Temperature == 0 {
		i.Temperature = improve.DefaultTemperature
	}
	if i.RequestsPerMinute == 0 {
		i.RequestsPerMinute = DefaultRequestsPerMinute
	}
}

// Configuration returns the session defaults as a prompt configuration.
func (c *Config) Configuration() prompt.Configuration {
	cfg := prompt.DefaultConfiguration()
	if c.Defaults.Tone != "" {
		cfg.Tone = c.Defaults.Tone
	}
	if c.Defaults.Format != "" {
		cfg.Format = c.Defaults.Format
	}
	if c.Defaults.DetailLevel != 0 {
		cfg.DetailLevel = prompt.ClampDetailLevel(c.Defaults.DetailLevel)
	}
	if c.Defaults.Language != "" {
		cfg.Language = c.Defaults.Language
	}
	if c.Defaults.AIEngine != "" {
		cfg.AIEngine = c.Defaults.AIEngine
	}
	return cfg
}

// Style returns the configured render style, or the integrated style when the
// value is not recognized.
func (c *Config) Style() prompt.Style {
	style, err := prompt.ParseStyle(c.Defaults.Style)
	if err != nil {
		return prompt.StyleIntegrated
	}
	return style
}

// TimeoutDuration returns the improve timeout as a time.Duration.
func (c *ImproveConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return improve.DefaultTimeout
	}
	return d
}

// ClientOptions returns the improve client options this config describes.
func (c *ImproveConfig) ClientOptions() []improve.ClientOption {
	return []improve.ClientOption{
		improve.WithBaseURL(c.BaseURL),
		improve.WithModel(c.Model),
		improve.WithMaxTokens(c.MaxTokens),
		improve.WithTemperature(c.Temperature),
		improve.WithRateLimit(c.RequestsPerMinute),
	}
}

// Exists checks if a config file exists at the default location.
func Exists() bool {
	paths := NewPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// LoadSecrets loads .env files from the working directory and the config
// directory into the process environment. Variables that are already set win.
// It returns the files that were loaded.
func LoadSecrets(paths *Paths) ([]string, error) {
	var loaded []string
	for _, file := range []string{".env", paths.EnvFile} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return loaded, errors.Wrap(errors.ErrConfigInvalid, "failed to load "+file, "Check the .env syntax", err)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}
