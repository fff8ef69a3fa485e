package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Sessions
	Auth AuthConfig

	// AI providers
	Gemini   GeminiConfig
	Deepseek DeepseekConfig

	Chat ChatConfig
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

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

type AuthConfig struct {
	JWTSecret string
	// AdminKey signs in as the built-in admin. Empty disables admin login.
	AdminKey string
	TokenTTL time.Duration
}

type GeminiConfig struct {
	// APIKey is appended to the stored key pool when not already present.
	APIKey      string
	Model       string
	APIURL      string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
	Retry       RetryConfig
}

// RetryConfig tunes the key rotation client.
type RetryConfig struct {
	MinInterval   time.Duration
	BackoffBase   time.Duration
	BackoffMax    time.Duration
	EvictionDelay time.Duration
	RetryDelay    time.Duration
	MaxAttempts   int
}

type DeepseekConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

type ChatConfig struct {
	RateLimitPerMin int
	RateLimitBurst  int
	HistorySize     int
	HistoryUsers    int
	HistoryTTL      time.Duration
	PersonaTemplate string
	DevInfoTemplate string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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

	// Postgres
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.ConnectTimeout = viper.GetDuration("postgres.connect_timeout")

	// Auth
	cfg.Auth.JWTSecret = expandEnvVar(viper.GetString("auth.jwt_secret"))
	cfg.Auth.AdminKey = expandEnvVar(viper.GetString("auth.admin_key"))
	if adminKey := viper.GetString("admin_key"); adminKey != "" {
		cfg.Auth.AdminKey = adminKey
	}
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	cfg.Gemini.Temperature = viper.GetFloat64("gemini.temperature")
	cfg.Gemini.MaxTokens = viper.GetInt("gemini.max_tokens")
	cfg.Gemini.Retry.MinInterval = viper.GetDuration("gemini.retry.min_interval")
	cfg.Gemini.Retry.BackoffBase = viper.GetDuration("gemini.retry.backoff_base")
	cfg.Gemini.Retry.BackoffMax = viper.GetDuration("gemini.retry.backoff_max")
	cfg.Gemini.Retry.EvictionDelay = viper.GetDuration("gemini.retry.eviction_delay")
	cfg.Gemini.Retry.RetryDelay = viper.GetDuration("gemini.retry.retry_delay")
	cfg.Gemini.Retry.MaxAttempts = viper.GetInt("gemini.retry.max_attempts")

	// DeepSeek. The key itself lives in the admin-managed app config.
	cfg.Deepseek.BaseURL = viper.GetString("deepseek.base_url")
	cfg.Deepseek.Model = viper.GetString("deepseek.model")
	cfg.Deepseek.Timeout = viper.GetDuration("deepseek.timeout")

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.RateLimitBurst = viper.GetInt("chat.rate_limit_burst")
	cfg.Chat.HistorySize = viper.GetInt("chat.history_size")
	cfg.Chat.HistoryUsers = viper.GetInt("chat.history_users")
	cfg.Chat.HistoryTTL = viper.GetDuration("chat.history_ttl")
	cfg.Chat.PersonaTemplate = viper.GetString("chat.persona_template")
	cfg.Chat.DevInfoTemplate = viper.GetString("chat.dev_info_template")

	if err := validate(cfg); err != nil {
		return nil, err
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

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("postgres.connect_timeout", "30s")

	viper.SetDefault("auth.token_ttl", "168h")

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.timeout", "60s")
	viper.SetDefault("gemini.temperature", 0.7)
	viper.SetDefault("gemini.max_tokens", 4000)
	viper.SetDefault("gemini.retry.min_interval", "1s")
	viper.SetDefault("gemini.retry.backoff_base", "1s")
	viper.SetDefault("gemini.retry.backoff_max", "5s")
	viper.SetDefault("gemini.retry.eviction_delay", "1s")
	viper.SetDefault("gemini.retry.retry_delay", "2s")
	viper.SetDefault("gemini.retry.max_attempts", 5)

	viper.SetDefault("deepseek.base_url", "https://api.deepseek.com")
	viper.SetDefault("deepseek.model", "deepseek-chat")
	viper.SetDefault("deepseek.timeout", "60s")

	viper.SetDefault("chat.rate_limit_per_min", 20)
	viper.SetDefault("chat.rate_limit_burst", 5)
	viper.SetDefault("chat.history_size", 50)
	viper.SetDefault("chat.history_users", 1000)
	viper.SetDefault("chat.history_ttl", "24h")
}

func validate(cfg *Config) error {
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required (or set DATABASE_URL)")
	}
	if len(cfg.Auth.JWTSecret) < 16 {
		return fmt.Errorf("auth.jwt_secret must be at least 16 characters")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	if cfg.Gemini.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("gemini.retry.max_attempts must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
