package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the service configuration
type Config struct {
	Server ServerConfig `koanf:"server"`
	Log    LogConfig    `koanf:"log"`
	OpenAI OpenAIConfig `koanf:"openai"`
	Cache  CacheConfig  `koanf:"cache"`
}

type ServerConfig struct {
	Port        string `koanf:"port"`
	Env         string `koanf:"env"`
	CORSOrigins string `koanf:"cors_origins"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// OpenAIConfig configures the chat-completions model. An empty APIKey
// disables the model and every chat request uses the fallback responder.
type OpenAIConfig struct {
	APIKey     string        `koanf:"api_key"`
	BaseURL    string        `koanf:"base_url"`
	Model      string        `koanf:"model"`
	MaxTokens  int           `koanf:"max_tokens"`
	Timeout    time.Duration `koanf:"timeout"`
	MaxRetries int           `koanf:"max_retries"`
}

// CacheConfig configures the redis reply cache. An empty URL disables it.
type CacheConfig struct {
	RedisURL string        `koanf:"redis_url"`
	TTL      time.Duration `koanf:"ttl"`
}

// envKeys maps environment variables onto config paths
var envKeys = map[string]string{
	"PORT":               "server.port",
	"GO_ENV":             "server.env",
	"CORS_ORIGINS":       "server.cors_origins",
	"LOG_LEVEL":          "log.level",
	"LOG_FORMAT":         "log.format",
	"OPENAI_API_KEY":     "openai.api_key",
	"OPENAI_BASE_URL":    "openai.base_url",
	"OPENAI_MODEL":       "openai.model",
	"OPENAI_MAX_TOKENS":  "openai.max_tokens",
	"OPENAI_TIMEOUT":     "openai.timeout",
	"OPENAI_MAX_RETRIES": "openai.max_retries",
	"REDIS_URL":          "cache.redis_url",
	"CACHE_TTL":          "cache.ttl",
}

// defaults form the lowest layer, so an explicit zero from the file or the
// environment (OPENAI_MAX_RETRIES=0) is kept.
var defaults = map[string]any{
	"server.port":         "8080",
	"server.env":          "development",
	"server.cors_origins": "*",
	"log.level":           "info",
	"openai.base_url":     "https://api.openai.com",
	"openai.model":        "gpt-5",
	"openai.max_tokens":   500,
	"openai.timeout":      "30s",
	"openai.max_retries":  2,
	"cache.ttl":           "10m",
}

// Load reads .env, the optional YAML file named by CONFIG_FILE (default
// config.yaml) and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	return LoadFrom(path)
}

// LoadFrom is Load without the .env step. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("config: failed to load defaults: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: failed to read environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// envKey maps a variable onto its config path. Unknown and empty variables
// map to "", which koanf skips, so they never shadow a lower layer.
func envKey(name, value string) (string, any) {
	if value == "" {
		return "", nil
	}
	return envKeys[name], value
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Format == "" {
		if cfg.Server.Env == "production" {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	cfg.OpenAI.APIKey = strings.TrimSpace(cfg.OpenAI.APIKey)
	cfg.OpenAI.BaseURL = strings.TrimRight(cfg.OpenAI.BaseURL, "/")
}

// Validate rejects values the service cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port must be set"))
	}
	if c.ModelEnabled() && c.OpenAI.BaseURL == "" {
		errs = append(errs, errors.New("openai.base_url must be set when openai.api_key is"))
	}
	if c.OpenAI.MaxTokens <= 0 {
		errs = append(errs, errors.New("openai.max_tokens must be positive"))
	}
	if c.OpenAI.Timeout < 0 {
		errs = append(errs, errors.New("openai.timeout must not be negative"))
	}
	if c.OpenAI.MaxRetries < 0 {
		errs = append(errs, errors.New("openai.max_retries must not be negative"))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, errors.New("cache.ttl must not be negative"))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be json or console", c.Log.Format))
	}
	return errors.Join(errs...)
}

// ModelEnabled reports whether a model credential is configured
func (c *Config) ModelEnabled() bool {
	return c.OpenAI.APIKey != ""
}
