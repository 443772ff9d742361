package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"anypick/internal/fuzzy"
)

// Config represents the application configuration
type Config struct {
	Version int `toml:"version"`

	// Match holds the fuzzy scoring weights.
	Match fuzzy.Weights `toml:"match"`

	// NameMatchBonus is the flat bonus a candidate gets when the
	// pattern matches its short name rather than only the full name.
	NameMatchBonus int `toml:"name_match_bonus"`

	// MaxResults is how many ranked results are shown and navigable.
	MaxResults int `toml:"max_results"`

	// ShowScores renders raw scores next to each result.
	ShowScores bool `toml:"show_scores"`

	// Editor overrides $EDITOR for the open action.
	Editor string `toml:"editor"`

	// Bookmarks maps a short name to a directory path; each entry
	// becomes a candidate in the picker.
	Bookmarks map[string]string `toml:"bookmarks"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	anypickDir := filepath.Join(configDir, "anypick")
	os.MkdirAll(anypickDir, 0755)

	return &configService{
		filePath: filepath.Join(anypickDir, "config.toml"),
	}
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Bookmarks == nil {
		cfg.Bookmarks = make(map[string]string)
	}
	if cfg.MaxResults < 1 {
		cfg.MaxResults = DefaultConfig().MaxResults
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		Match:          fuzzy.DefaultWeights(),
		NameMatchBonus: 15,
		MaxResults:     10,
		Bookmarks:      make(map[string]string),
	}
}
