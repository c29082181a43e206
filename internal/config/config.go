package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Endpoint           string `yaml:"endpoint"`
	CategoriesEndpoint string `yaml:"categories_endpoint"`
	StateDir           string `yaml:"state_dir"`
	Log                struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log"`
	Defaults struct {
		Amount       int    `yaml:"amount"`
		Category     string `yaml:"category"`
		Difficulty   string `yaml:"difficulty"`
		Type         string `yaml:"type"`
		TimerSeconds int    `yaml:"timer_seconds"`
	} `yaml:"defaults"`
	CategoryCacheTTL string `yaml:"category_cache_ttl"`
}

// Load reads YAML config from path. A missing file yields the zero config
// so the built-in defaults apply.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or invalid.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
