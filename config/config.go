package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats accepted in the configuration file.
var validOutputs = map[string]bool{ //nolint:gochecknoglobals // fixed lookup table
	"text": true,
	"json": true,
	"yaml": true,
}

// Config is the top-level configuration for upgradeselect.
type Config struct {
	PackagesFile string `yaml:"packages_file"` // Path written by the version resolver
	Output       string `yaml:"output"`        // "text", "json" or "yaml"
	NoColor      bool   `yaml:"no_color"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{Output: "text"}
}

// Load reads and parses a configuration file, expanding environment variables
// in the packages file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.PackagesFile = expandEnv(cfg.PackagesFile)
	if cfg.Output == "" {
		cfg.Output = "text"
	}

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// LoadOrDefault loads path, or the first file FindConfigFile locates when path
// is empty. Without any config file the defaults are returned.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return Default(), nil
	}

	logger.Debugf("Using config file: %s", found)
	return Load(found)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".upgradeselect.yaml",
		".upgradeselect.yml",
		"upgradeselect.yaml",
		"upgradeselect.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv expands environment variable references (${VAR}).
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks the configuration values.
func validate(cfg *Config) error {
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("output %q is not supported (use text, json or yaml)", cfg.Output)
	}
	return nil
}
