package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the optional TOML configuration file:
//
//	salt       = "this is my salt"
//	alphabet   = "0123456789abcdef"
//	min_length = 8
//
// Every field is optional; flags override file values, and a missing salt
// falls back to the HASHID_SALT environment variable.
type fileConfig struct {
	Salt      string `toml:"salt"`
	Alphabet  string `toml:"alphabet"`
	MinLength int    `toml:"min_length"`
}

// loadConfig reads and parses the TOML file at path.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &fileConfig{MinLength: -1}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}
