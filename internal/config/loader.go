package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "config.yaml"
)

// Load builds the server configuration. Values come from the YAML file
// named by CONFIG_PATH, or ./config.yaml when present, overlaid by the
// environment; env-default tags fill the rest. The result is validated.
func Load() (*Config, error) {
	path, err := locate()
	if err != nil {
		return nil, err
	}

	var cfg Config
	source := path
	if path == "" {
		source = "environment"
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", source, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// locate returns the YAML file to read, or "" to use the environment
// alone. A CONFIG_PATH that cannot be opened is an error; a missing
// default file is not.
func locate() (string, error) {
	if p := os.Getenv(pathEnv); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config: %s: %w", pathEnv, err)
		}
		return p, nil
	}
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath, nil
	}
	return "", nil
}
