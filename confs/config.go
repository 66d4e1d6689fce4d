package confs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the runtime settings of the server, sourced from the
// environment (optionally via a .env file).
type Config struct {
	Port      string
	Env       string
	JWTSecret string
	JWTTTL    time.Duration
}

func (c *Config) IsDev() bool { return c.Env == EnvDevelopment }

// LoadConfig loads environment variables from a .env file if present and
// builds the typed configuration, validating essential settings.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		Env:       getEnv("APP_ENV", EnvDevelopment),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    24 * time.Hour,
	}

	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %w", raw, err)
		}
		cfg.JWTTTL = ttl
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == EnvProduction {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-change-me"
		log.Println("warning: JWT_SECRET not set, using insecure development default")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
