package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// HomeEnv overrides the circle home directory.
const HomeEnv = "CIRCLE_HOME"

const fileName = "config.json"

// Config represents the flat circle configuration
type Config struct {
	Version      string   `json:"version"`
	SoundPath    string   `json:"sound_path,omitempty"`    // Replaces the bundled alert sound
	AudioCommand string   `json:"audio_command,omitempty"` // e.g. "afplay", "paplay"; empty rings the terminal bell
	ShareCommand string   `json:"share_command,omitempty"` // Receives the share text on stdin; empty copies to clipboard
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	LogLevel     string   `json:"log_level,omitempty"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentVersion,
		LogLevel: "info",
	}
}

// HasLocation reports whether fixed coordinates are configured.
func (c *Config) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// Validate checks the fields that have a closed set of values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if (c.Latitude == nil) != (c.Longitude == nil) {
		return fmt.Errorf("latitude and longitude must be set together")
	}
	if c.Latitude != nil && (*c.Latitude < -90 || *c.Latitude > 90) {
		return fmt.Errorf("latitude %v out of range [-90, 90]", *c.Latitude)
	}
	if c.Longitude != nil && (*c.Longitude < -180 || *c.Longitude > 180) {
		return fmt.Errorf("longitude %v out of range [-180, 180]", *c.Longitude)
	}
	return nil
}

// HomeDir returns the circle home: $CIRCLE_HOME, or ~/.circle.
func HomeDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".circle"), nil
}

// LoadConfig reads config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault reads config.json, falling back to DefaultConfig when the file is missing.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, fileName)
}
