package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	pkgRetry "github.com/agrisense/farm-backend/internal/pkg/retry"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8000"`

	// External service configurations
	GroqConnectorCfg    GroqConnectorConfig    `envPrefix:"GROQ_"`
	WeatherConnectorCfg WeatherConnectorConfig `envPrefix:"WEATHER_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GroqConnectorConfig configures the chat-completions connector.
type GroqConnectorConfig struct {
	HTTPClientConfig
	Model                   string `env:"MODEL" envDefault:"meta-llama/llama-4-scout-17b-16e-instruct"`
	ChatCompletionsEndpoint string `env:"CHAT_COMPLETIONS_ENDPOINT" envDefault:"/openai/v1/chat/completions"`
}

// WeatherConnectorConfig configures the weatherapi.com connector.
type WeatherConnectorConfig struct {
	HTTPClientConfig
	ForecastEndpoint string               `env:"FORECAST_ENDPOINT" envDefault:"/v1/forecast.json"`
	ForecastCacheTTL time.Duration        `env:"FORECAST_CACHE_TTL" envDefault:"30m"`
	Retry            pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"90s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"90s"`
	Token                 string        `env:"API_KEY"`
	Url                   string        `env:"SERVICE_URL"`
}

const (
	defaultGroqURL    = "https://api.groq.com"
	defaultWeatherURL = "https://api.weatherapi.com"
)

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if cfg.GroqConnectorCfg.Url == "" {
		cfg.GroqConnectorCfg.Url = defaultGroqURL
	}
	if cfg.WeatherConnectorCfg.Url == "" {
		cfg.WeatherConnectorCfg.Url = defaultWeatherURL
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel))
	}

	if cfg.WeatherConnectorCfg.Retry.Attempts < 1 || cfg.WeatherConnectorCfg.Retry.Attempts > 10 {
		errors = append(errors, fmt.Sprintf("WEATHER_RETRY_ATTEMPTS must be between 1 and 10, got %d", cfg.WeatherConnectorCfg.Retry.Attempts))
	}

	if cfg.WeatherConnectorCfg.ForecastCacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("WEATHER_FORECAST_CACHE_TTL must not be negative, got %s", cfg.WeatherConnectorCfg.ForecastCacheTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
