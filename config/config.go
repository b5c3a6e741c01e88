package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ServerAddr    string
	DatabasePath  string
	JWTSecret     []byte
	TokenTTL      time.Duration
	PublicBaseURL string
}

// Load reads an optional .env file and then the environment. JWT_SECRET is
// mandatory; everything else has a development default.
func Load() (*Config, error) {
	// .env is a convenience for local runs; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "notes.db"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET must be set")
	}

	ttl := getEnv("TOKEN_TTL", "24h")
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
	}
	if d <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %q", ttl)
	}
	cfg.TokenTTL = d

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
