// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Environment variables that override file values.
const (
	EnvServerURL    = "RESUME_SERVER_URL"
	EnvStore        = "RESUME_STORE"
	EnvChromePath   = "CHROME_PATH"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvPort         = "PORT"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Gateway
	ServerURL string `json:"server_url,omitempty" validate:"omitempty,url"`
	Store     string `json:"store,omitempty"`
	Port      int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	RateLimit bool   `json:"rate_limit,omitempty"`

	// Presentation
	Font     string `json:"font,omitempty" validate:"omitempty,oneof='Segoe UI' Roboto Georgia"`
	Theme    string `json:"theme,omitempty" validate:"omitempty,oneof=Light Dark Modern"`
	DarkMode bool   `json:"dark_mode,omitempty"`

	// Files
	Document string `json:"document,omitempty"`
	OutDir   string `json:"out_dir,omitempty"`

	// Rendering
	ChromePath   string `json:"chrome_path,omitempty"`
	PrintCommand string `json:"print_command,omitempty"`

	// Behavior
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	Verbose      bool   `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ServerURL:    "http://localhost:8000",
		Port:         8000,
		Font:         "Segoe UI",
		Theme:        "Light",
		OutDir:       ".",
		PrintCommand: "lp",
	}
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' is invalid (%s)", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ServerURL == "" {
		result.ServerURL = defaults.ServerURL
	}
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.Font == "" {
		result.Font = defaults.Font
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.PrintCommand == "" {
		result.PrintCommand = defaults.PrintCommand
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvServerURL); v != "" {
		c.ServerURL = v
	}
	if v := getenv(EnvStore); v != "" {
		c.Store = v
	}
	if v := getenv(EnvChromePath); v != "" {
		c.ChromePath = v
	}
	if v := getenv(EnvGeminiAPIKey); v != "" {
		c.GeminiAPIKey = v
	}
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be a number: %w", EnvPort, err)
		}
		c.Port = port
	}
	return nil
}

// Load reads path (optional), applies environment overrides and defaults,
// and validates the result.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return Config{}, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
