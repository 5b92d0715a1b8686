package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/nybbler/internal/constants"
	"github.com/julianstephens/nybbler/internal/models"
)

// Config is the optional YAML file. Keys that are absent keep their defaults.
type Config struct {
	DataDir string       `yaml:"data_dir,omitempty"`
	Store   string       `yaml:"store"`
	Debug   bool         `yaml:"debug"`
	Rules   models.Rules `yaml:"rules"`
}

func DefaultConfig() *Config {
	return &Config{
		Store: constants.StoreJSON,
		Rules: models.DefaultRules(),
	}
}

// Load reads the config at path. A missing file yields the defaults;
// a malformed one is an error so that a typo never silently resets the policy.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Store {
	case constants.StoreJSON, constants.StoreSQLite:
	default:
		return fmt.Errorf("store must be %q or %q, got %q", constants.StoreJSON, constants.StoreSQLite, c.Store)
	}
	return c.Rules.Validate()
}
