package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is searched for in the working directory and its parents.
const ConfigFileName = "wsdl2php.json"

// Config represents the wsdl2php.json configuration file
type Config struct {
	// InputFile is the WSDL path or URL to generate from
	InputFile string `json:"inputFile"`

	// OutputDir is where generated files are written
	OutputDir string `json:"outputDir"`

	// Prefix and Suffix decorate every generated class name
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`

	// OneFilePerService merges the service and all types into a single file;
	// when false each type gets its own file
	OneFilePerService bool `json:"oneFilePerService"`

	// NamespaceName is declared at the top of each generated file when set
	NamespaceName string `json:"namespaceName"`

	// ClassNames restricts which generated classes are written; empty = all
	ClassNames []string `json:"classNames"`

	// ClassExists wraps each class in a guard so already loaded definitions
	// are not redeclared
	ClassExists bool `json:"classExists"`

	// NoTypeConstructor omits the member-assigning constructor on data types
	NoTypeConstructor bool `json:"noTypeConstructor"`

	// Verbose enables debug logging
	Verbose bool `json:"verbose"`

	// OptionFeatures are SOAP feature flag names combined bitwise-OR in
	// declaration order into the client's default 'features' option
	OptionFeatures []string `json:"optionFeatures"`

	// WsdlCache is the WSDL_CACHE_* constant name for the 'cache_wsdl' option
	WsdlCache string `json:"wsdlCache"`

	// Compression is the expression for the 'compression' option, e.g.
	// "SOAP_COMPRESSION_ACCEPT | SOAP_COMPRESSION_GZIP"
	Compression string `json:"compression"`
}

// ClassAllowed reports whether a generated class passes the allow-list
// filter. An empty list allows everything.
func (c *Config) ClassAllowed(name string) bool {
	if len(c.ClassNames) == 0 {
		return true
	}
	for _, allowed := range c.ClassNames {
		if allowed == name {
			return true
		}
	}
	return false
}

// LoadConfig loads wsdl2php.json from the current directory or a parent
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads the configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.ApplyDefaults()
	return &config, nil
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "./generated"
	}
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("inputFile is required")
	}
	return nil
}

// loadConfigFromDir searches for wsdl2php.json in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("no %s found in %s or any parent directory", ConfigFileName, startDir)
}
