// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds everything main needs to start the server.
type Config struct {
	Host           string
	Port           int
	Backend        string
	SqliteDSN      string
	SeedFile       string
	AllowedOrigins []string
	LogLevel       slog.Level
	LogFormat      string
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads HOST, PORT, STORE_BACKEND, SQLITE_DSN, SEED_FILE,
// ALLOWED_ORIGINS, LOG_LEVEL and LOG_FORMAT.
func Load() (Config, error) {
	c := Config{
		Host:      env("HOST", "0.0.0.0"),
		Backend:   env("STORE_BACKEND", "memory"),
		SqliteDSN: env("SQLITE_DSN", ""),
		SeedFile:  env("SEED_FILE", ""),
		LogFormat: env("LOG_FORMAT", "text"),
	}

	port, err := strconv.Atoi(env("PORT", "3000"))
	if err != nil || port < 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	c.Port = port

	if err := c.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q (supported: text, json)", c.LogFormat)
	}

	for _, o := range strings.Split(env("ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			c.AllowedOrigins = append(c.AllowedOrigins, o)
		}
	}
	return c, nil
}

// NewLogger builds the process logger described by c.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
