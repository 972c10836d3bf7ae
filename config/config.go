package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Content assistant specifics
	Redis     RedisConfig
	Gemini    GeminiConfig
	Websearch WebsearchConfig
	Session   SessionConfig
	Pending   PendingConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RedisConfig struct {
	URL          string
	ReadTimeout  int
	WriteTimeout int
	DialTimeout  int
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type WebsearchConfig struct {
	APIKey   string
	EngineID string
}

type SessionConfig struct {
	TTLMinutes        int
	HistoryTokenLimit int
}

type PendingConfig struct {
	TTLMinutes  int
	LockSeconds int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Redis
	cfg.Redis.URL = viper.GetString("redis.url")
	cfg.Redis.ReadTimeout = viper.GetInt("redis.read_timeout")
	cfg.Redis.WriteTimeout = viper.GetInt("redis.write_timeout")
	cfg.Redis.DialTimeout = viper.GetInt("redis.dial_timeout")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.BaseURL = viper.GetString("gemini.base_url")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Websearch (Google Custom Search)
	cfg.Websearch.APIKey = viper.GetString("websearch.api_key")
	cfg.Websearch.EngineID = viper.GetString("websearch.engine_id")
	if wsKey := viper.GetString("websearch_api_key"); wsKey != "" {
		cfg.Websearch.APIKey = wsKey
	}
	if wsEngine := viper.GetString("websearch_engine_id"); wsEngine != "" {
		cfg.Websearch.EngineID = wsEngine
	}

	// Session & pending state
	cfg.Session.TTLMinutes = viper.GetInt("session.ttl_minutes")
	cfg.Session.HistoryTokenLimit = viper.GetInt("session.history_token_limit")
	cfg.Pending.TTLMinutes = viper.GetInt("pending.ttl_minutes")
	cfg.Pending.LockSeconds = viper.GetInt("pending.lock_seconds")

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required - set GEMINI_API_KEY or gemini.api_key")
	}
	if cfg.Redis.URL == "" {
		return nil, fmt.Errorf("redis url is required - set REDIS_URL or redis.url")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("redis.read_timeout", 3)
	viper.SetDefault("redis.write_timeout", 3)
	viper.SetDefault("redis.dial_timeout", 5)

	viper.SetDefault("gemini.model", "gemini-2.5-flash")

	viper.SetDefault("session.ttl_minutes", 60)
	viper.SetDefault("session.history_token_limit", 2000)
	viper.SetDefault("pending.ttl_minutes", 5)
	viper.SetDefault("pending.lock_seconds", 10)
	viper.SetDefault("rate_limit.requests_per_min", 60)
}
