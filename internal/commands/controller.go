// Package commands contains the CLI commands for the application
package commands

import (
	"github.com/crono/wsdl2phpgenerator-cli/internal/config"
)

// Flags are command-line overrides applied on top of the config file
type Flags struct {
	ConfigPath string
	InputFile  string
	OutputDir  string
	Verbose    bool
}

type Controller struct {
	Flags *Flags
}

// loadConfig resolves the effective configuration: an explicit config path,
// a discovered wsdl2php.json, or flags alone.
func (c *Controller) loadConfig() (*config.Config, error) {
	var cfg *config.Config

	switch {
	case c.Flags.ConfigPath != "":
		loaded, err := config.LoadConfigFromPath(c.Flags.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		loaded, _, err := config.LoadConfig()
		if err != nil {
			// No config file is fine when flags carry the input.
			if c.Flags.InputFile == "" {
				return nil, err
			}
			loaded = &config.Config{}
			loaded.ApplyDefaults()
		}
		cfg = loaded
	}

	if c.Flags.InputFile != "" {
		cfg.InputFile = c.Flags.InputFile
	}
	if c.Flags.OutputDir != "" {
		cfg.OutputDir = c.Flags.OutputDir
	}
	if c.Flags.Verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
