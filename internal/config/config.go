// Package config reads and writes the application's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/daftar-app/daftar/internal/constants"
)

// Config is the main configuration for daftar.
type Config struct {
	// DataPath is the storage location: a directory for the file
	// provider, or a path ending in .db for the SQLite provider.
	DataPath string `toml:"data_path"`
	// Timezone is an IANA timezone name, or "Local" for the system zone.
	Timezone string        `toml:"timezone"`
	Advisor  AdvisorConfig `toml:"advisor"`
	Notify   NotifyConfig  `toml:"notify"`
}

// AdvisorConfig configures the generative-AI service used for calorie
// estimates, vitamin advice, henna recipes and diet plans. The API key
// is never stored here; it lives in the OS keyring or the
// DAFTAR_ADVISOR_API_KEY environment variable.
type AdvisorConfig struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// NotifyConfig controls habit reminders.
type NotifyConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns a Config with the stock values rooted at baseDir.
func Default(baseDir string) *Config {
	return &Config{
		DataPath: filepath.Join(baseDir, "data"),
		Timezone: "Local",
		Advisor: AdvisorConfig{
			BaseURL: "https://openrouter.ai/api/v1",
			Model:   "google/gemini-2.0-flash-001",
		},
	}
}

// DefaultBaseDir returns the per-user config directory for the app.
func DefaultBaseDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(dir, constants.AppName), nil
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Load returns the config at path, or defaults rooted next to it when
// the file does not exist. A present-but-broken file is an error.
func Load(path string) (*Config, error) {
	cfg, err := ReadFromFile(path)
	if err == nil {
		applyFallbacks(cfg, filepath.Dir(path))
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Default(filepath.Dir(path)), nil
	}
	return nil, err
}

func applyFallbacks(cfg *Config, baseDir string) {
	def := Default(baseDir)
	if cfg.DataPath == "" {
		cfg.DataPath = def.DataPath
	}
	if cfg.Timezone == "" {
		cfg.Timezone = def.Timezone
	}
	if cfg.Advisor.BaseURL == "" {
		cfg.Advisor.BaseURL = def.Advisor.BaseURL
	}
	if cfg.Advisor.Model == "" {
		cfg.Advisor.Model = def.Advisor.Model
	}
}

func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
