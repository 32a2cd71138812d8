package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration structure
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Download DownloadConfig `yaml:"download"`
}

// RegistryConfig points the CLI at an Exchange-compatible registry
type RegistryConfig struct {
	BaseURL string `yaml:"baseUrl"`
	WebURL  string `yaml:"webUrl"`
}

// DownloadConfig contains settings for archive downloads
type DownloadConfig struct {
	Directory string `yaml:"directory"`
}

// LoadConfig loads the configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Expand environment variables in the file
	expandedData := expandEnvInYaml(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// expandEnvInYaml expands ${VAR} style environment variables in YAML content
func expandEnvInYaml(content string) string {
	return os.Expand(content, func(key string) string {
		return os.Getenv(key)
	})
}

// validateConfig performs basic validation on the configuration
func validateConfig(config *Config) error {
	if config.Registry.BaseURL != "" && !strings.HasPrefix(config.Registry.BaseURL, "http") {
		return fmt.Errorf("registry baseUrl must be an http(s) URL, got %q", config.Registry.BaseURL)
	}
	if config.Registry.WebURL != "" && !strings.HasPrefix(config.Registry.WebURL, "http") {
		return fmt.Errorf("registry webUrl must be an http(s) URL, got %q", config.Registry.WebURL)
	}
	return nil
}
