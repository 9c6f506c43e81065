package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Upstream  UpstreamConfig
	Auth      AuthConfig
	Session   SessionConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// UpstreamConfig holds the base URLs of the remote services this process
// fronts. All durable state lives behind them.
type UpstreamConfig struct {
	SalesURL     string
	CatalogURL   string
	DirectoryURL string
	Timeout      time.Duration
}

type AuthConfig struct {
	JWTSecret string
}

type SessionConfig struct {
	CartTTL       time.Duration
	SweepInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-terminal")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("SALES_SERVICE_URL", "http://localhost:8081")
	viper.SetDefault("CATALOG_SERVICE_URL", "http://localhost:8082")
	viper.SetDefault("DIRECTORY_SERVICE_URL", "http://localhost:8083")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("CART_TTL_MINUTES", 120)
	viper.SetDefault("CART_SWEEP_MINUTES", 10)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Upstream: UpstreamConfig{
			SalesURL:     viper.GetString("SALES_SERVICE_URL"),
			CatalogURL:   viper.GetString("CATALOG_SERVICE_URL"),
			DirectoryURL: viper.GetString("DIRECTORY_SERVICE_URL"),
			Timeout:      time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
		},
		Session: SessionConfig{
			CartTTL:       time.Duration(viper.GetInt("CART_TTL_MINUTES")) * time.Minute,
			SweepInterval: time.Duration(viper.GetInt("CART_SWEEP_MINUTES")) * time.Minute,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
