package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the application
type Config struct {
	AppEnv           string
	Port             string
	DBPath           string
	APIPrefix        string
	CORSAllowOrigins []string
	LogLevel         string
	LogFilePath      string
	LogMaxSize       int // MB
	LogMaxBackups    int
	LogMaxAge        int // Days
	LogCompress      bool
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
}

// IsDevelopment reports whether the app runs in a local or development environment
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "local" || c.AppEnv == "development"
}

// Load reads configuration from .env files and environment variables.
// A missing .env file is not an error; variables already set in the
// environment always win over file values.
func Load() (*Config, error) {
	appEnv := getEnv("APP_ENV", "local")

	for _, name := range []string{".env." + appEnv, ".env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "local"),
		Port:             getEnv("PORT", "3001"),
		DBPath:           getEnv("DB_PATH", "logentries.db"),
		APIPrefix:        strings.TrimRight(getEnv("API_PREFIX", "/api"), "/"),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFilePath:      getEnv("LOG_FILE_PATH", ""),
		LogMaxSize:       getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups:    getEnvAsInt("LOG_MAX_BACKUPS", 5),
		LogMaxAge:        getEnvAsInt("LOG_MAX_AGE", 30),
		LogCompress:      getEnvAsBool("LOG_COMPRESS", false),
		RequestTimeout:   time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 60)) * time.Second,
		ShutdownTimeout:  time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values for obvious mistakes
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}

	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}

	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}

	// go-chi/cors treats an empty origin list as "*"
	if len(c.CORSAllowOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOW_ORIGINS must list at least one origin")
	}

	return nil
}

// getEnv returns the env var or a fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

// splitList turns "a, b,,c" into [a b c]
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
