package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config represents the client configuration.
type Config struct {
	// BaseURL is the backend API endpoint.
	BaseURL string `json:"base_url"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: "http://localhost:8000",
	}
}

// globalConfigDir returns the global config directory path (~/.staffboard)
func globalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".staffboard"), nil
}

// globalConfigPath returns the global config file path (~/.staffboard/config.json)
func globalConfigPath() (string, error) {
	dir, err := globalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// projectConfigPath returns the project-level config path (.staffboard/config.json in cwd)
func projectConfigPath() string {
	return filepath.Join(".staffboard", "config.json")
}

// Load reads the config, checking project config first, then global, then
// defaults. The STAFFBOARD_API_URL environment variable overrides the file
// value either way.
func Load() (*Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}

	if url := os.Getenv("STAFFBOARD_API_URL"); url != "" {
		cfg.BaseURL = url
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}

	return cfg, nil
}

func loadFile() (*Config, error) {
	// Try project config first (.staffboard/config.json in current directory)
	if data, err := os.ReadFile(projectConfigPath()); err == nil {
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// Fall back to global config (~/.staffboard/config.json)
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(globalPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config exists, return default (don't auto-create)
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to the global location (~/.staffboard/config.json)
func Save(cfg *Config) error {
	dir, err := globalConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := globalConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
