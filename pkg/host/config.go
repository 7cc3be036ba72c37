package host

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of a host.
type Config struct {
	Locale   string       `yaml:"locale" json:"locale"`
	Theme    string       `yaml:"theme" json:"theme"`
	Variant  string       `yaml:"variant" json:"variant"`
	LogLevel string       `yaml:"log_level" json:"logLevel"`
	Server   ServerConfig `yaml:"server" json:"server"`
	// Catalog holds inline translations keyed by locale then message key.
	Catalog map[string]map[string]string `yaml:"catalog" json:"catalog,omitempty"`
}

// ServerConfig configures the HTTP preview surface.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Locale:   "en",
		LogLevel: "info",
		Server:   ServerConfig{Addr: ":8080"},
	}
}

// LoadConfig reads and parses a YAML config file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("host: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML over DefaultConfig. Empty input yields the
// defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("host: parse config: %w", err)
	}
	cfg.Locale = strings.TrimSpace(cfg.Locale)
	cfg.Theme = strings.TrimSpace(cfg.Theme)
	cfg.Variant = strings.TrimSpace(cfg.Variant)
	return cfg, nil
}
