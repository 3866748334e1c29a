package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when PHONEFORM_CONFIG is not set and the file exists.
const DefaultPath = "./phoneform.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is PHONEFORM_CONFIG, falling back to DefaultPath. A
// missing file is only an error when the path was set explicitly.
func Load() (*Config, error) {
	path := os.Getenv("PHONEFORM_CONFIG")
	return LoadPath(path)
}

// LoadPath behaves like Load with an explicit file path. An empty path tries
// DefaultPath and otherwise reads ENV + defaults only.
func LoadPath(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
