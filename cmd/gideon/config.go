package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const configEnvVar = "GIDEON_CONFIG"

// config holds defaults for flags. A flag set on the command line takes precedence over the
// config file.
//
//	format = "yaml"
//	color = false
//	probe_errors = true
type config struct {
	Format      string `toml:"format"`
	Color       *bool  `toml:"color"`
	ProbeErrors bool   `toml:"probe_errors"`
}

func loadConfig(path string) (*config, error) {
	c := &config{}
	if path == "" {
		return c, nil
	}

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("Cannot read the config file %s: %w", path, err)
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse the config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("Unknown keys in the config file %s: %v", path, undecoded)
	}
	if c.Format != "" {
		if err := validateFormat(c.Format); err != nil {
			return nil, fmt.Errorf("Invalid config file %s: %w", path, err)
		}
	}

	return c, nil
}
