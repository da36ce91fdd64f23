package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".blockkit.yml"

const (
	// EnvRedisURL overrides redis.url.
	EnvRedisURL = "BLOCKKIT_REDIS_URL"
	// EnvNamespace overrides namespace.
	EnvNamespace = "BLOCKKIT_NAMESPACE"
)

const (
	defaultNamespace = "default"
	defaultRedisURL  = "redis://localhost:6379/0"
)

// Config represents the top-level .blockkit.yml configuration
type Config struct {
	Version    string            `yaml:"version"`
	Namespace  string            `yaml:"namespace,omitempty"`
	Redis      *RedisConfig      `yaml:"redis,omitempty"`
	Validation *ValidationConfig `yaml:"validation,omitempty"`
}

// RedisConfig locates the template store
type RedisConfig struct {
	URL string `yaml:"url"`
}

// ValidationConfig tunes the validate command
type ValidationConfig struct {
	Strict     bool `yaml:"strict,omitempty"`      // Advisory limit warnings fail validation
	SkipSchema bool `yaml:"skip_schema,omitempty"` // Skip the structural JSON Schema pass
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:    "1.0",
		Namespace:  defaultNamespace,
		Redis:      &RedisConfig{URL: defaultRedisURL},
		Validation: &ValidationConfig{},
	}
}

// Validate performs strict validation on the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Namespace == "" {
		c.Namespace = defaultNamespace
	}
	if strings.ContainsAny(c.Namespace, ": \t\n") {
		return fmt.Errorf("invalid namespace %q: must not contain ':' or whitespace", c.Namespace)
	}

	if c.Redis == nil {
		c.Redis = &RedisConfig{}
	}
	if c.Redis.URL == "" {
		c.Redis.URL = defaultRedisURL
	}
	if _, err := redis.ParseURL(c.Redis.URL); err != nil {
		return fmt.Errorf("invalid redis.url: %w", err)
	}

	if c.Validation == nil {
		c.Validation = &ValidationConfig{}
	}

	return nil
}

// RedisOptions converts redis.url into client options.
func (c *Config) RedisOptions() (*redis.Options, error) {
	return redis.ParseURL(c.Redis.URL)
}

// Load reads .blockkit.yml from path, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.applyEnv(os.Getenv)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault behaves like Load but falls back to Default when path doesn't exist.
func LoadOrDefault(path string) (*Config, error) {
	config, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		config = Default()
		config.applyEnv(os.Getenv)
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return config, nil
	}
	return config, err
}

// LoadDotEnv loads KEY=value pairs from the given files into the process environment.
// Missing files are ignored and variables already set are never overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if url := strings.TrimSpace(getenv(EnvRedisURL)); url != "" {
		if c.Redis == nil {
			c.Redis = &RedisConfig{}
		}
		c.Redis.URL = url
	}
	if ns := strings.TrimSpace(getenv(EnvNamespace)); ns != "" {
		c.Namespace = ns
	}
}
