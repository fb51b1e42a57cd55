package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	LogLevel        string
	JWTSecret       string
	JWTIssuer       string
	APIVersion      string
	MigrationsPath  string
	ShutdownTimeout time.Duration

	// CORSAllowedOrigins lists the front-end origins allowed to call the API.
	CORSAllowedOrigins []string
	// RateLimit uses the ulule limiter formatted rate, e.g. "300-M".
	RateLimit string
	// CatalogCacheSize bounds the in-process resource cache. Zero disables it.
	CatalogCacheSize int
}

// Env returns the logger environment name derived from IsProduction.
func (c *Config) Env() string {
	if c.IsProduction {
		return "production"
	}
	return "development"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "invoicing-app")
	v.SetDefault("API_VERSION", "v1.0.0")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CATALOG_CACHE_SIZE", 512)

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdown, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdown <= 0 {
		shutdown = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdown)
	}
	cfg.ShutdownTimeout = shutdown

	cfg.CatalogCacheSize = v.GetInt("CATALOG_CACHE_SIZE")
	if cfg.CatalogCacheSize < 0 {
		log.Printf("Warning: CATALOG_CACHE_SIZE must not be negative (%d). Disabling cache.\n", cfg.CatalogCacheSize)
		cfg.CatalogCacheSize = 0
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = v.GetString("LOG_LEVEL")
	cfg.APIVersion = v.GetString("API_VERSION")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
