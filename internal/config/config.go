// Package config loads server configuration from the environment.
//
// CONFIGURATION STRATEGY:
// Everything comes from environment variables, with a `.env` file as an
// optional convenience for local development (loaded via joho/godotenv —
// real environment variables always win over the file). This keeps secrets
// out of the repository and matches how the service is deployed: the
// orchestrator injects env vars, no config files to mount.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Port      int           // HTTP listen port (PORT, default 5000)
	DBPath    string        // SQLite database file (DB_PATH, default data/identity.db)
	JWTSecret string        // HMAC signing secret (JWT_SECRET, required, min 16 chars)
	TokenTTL  time.Duration // access-token lifetime (TOKEN_TTL, default 1h)
	LogLevel  string        // slog level: debug|info|warn|error (LOG_LEVEL, default info)
}

// Load reads configuration from the environment, consulting a .env file in
// the working directory if one exists.
//
// It fails fast on anything malformed or missing: a server that boots with a
// blank signing secret would mint tokens anyone can forge, so refusing to
// start is the only safe behaviour.
func Load() (Config, error) {
	// Missing .env is fine — it's a local-dev convenience, not a requirement.
	_ = godotenv.Load()

	cfg := Config{
		Port:     5000,
		DBPath:   "data/identity.db",
		TokenTTL: time.Hour,
		LogLevel: "info",
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if len(cfg.JWTSecret) < 16 {
		return Config{}, fmt.Errorf("config: JWT_SECRET must be set to at least 16 characters")
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid TOKEN_TTL %q: %w", v, err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("config: TOKEN_TTL must be positive, got %q", v)
		}
		cfg.TokenTTL = ttl
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
