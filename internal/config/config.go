package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	SecretKey    string
	AppEnv       string
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is read first, if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("SECRET_KEY must be set")
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./tasks.db"),
		SecretKey:    secret,
		AppEnv:       getEnv("APP_ENV", "development"),
	}, nil
}

// Debug reports whether the app is running in development mode.
func (c *Config) Debug() bool {
	return c.AppEnv == "development"
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
