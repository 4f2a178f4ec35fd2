package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/zwtext/errors"
)

// Load reads and validates a configuration file. A missing file yields the
// defaults. The format follows the extension; files without a known
// extension are tried as TOML, then YAML, then JSON.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.IO(errors.PhaseConfig, path, err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return errors.ParseFailed(errors.PhaseConfig, path, "TOML", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errors.ParseFailed(errors.PhaseConfig, path, "YAML", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return errors.ParseFailed(errors.PhaseConfig, path, "JSON", err)
		}
	default:
		return autoDetect(path, data, cfg)
	}
	return nil
}

// autoDetect decodes each attempt into fresh defaults.
func autoDetect(path string, data []byte, cfg *Config) error {
	attempts := []func(*Config) error{
		func(c *Config) error { _, err := toml.Decode(string(data), c); return err },
		func(c *Config) error { return yaml.Unmarshal(data, c) },
		func(c *Config) error { return json.Unmarshal(data, c) },
	}
	for _, try := range attempts {
		scratch := DefaultConfig()
		if err := try(scratch); err == nil {
			*cfg = *scratch
			return nil
		}
	}
	return errors.InvalidData(errors.PhaseConfig, path, "unable to parse config file (tried TOML, YAML, JSON)", nil)
}
