// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultNamespace is the storage namespace the mobile client persists under.
const DefaultNamespace = "creditgo-storage"

// Config holds application configuration
type Config struct {
	DataDir          string // Directory holding the app-state database (always absolute)
	LogLevel         string
	StorageNamespace string
	CleanupSchedule  string        // Cron expression for the expired-state cleanup job
	StateTTL         time.Duration // Zero keeps stored state forever
	Port             int
	DevMode          bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("CREDITGO_DATA_DIR", "./data")
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:          absDataDir,
		Port:             getEnvAsInt("PORT", 8080),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		StorageNamespace: getEnv("STORAGE_NAMESPACE", DefaultNamespace),
		CleanupSchedule:  getEnv("CLEANUP_SCHEDULE", "0 0 3 * * *"), // 03:00 daily
		StateTTL:         time.Duration(getEnvAsInt("STATE_TTL_HOURS", 0)) * time.Hour,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabasePath returns the location of the app-state database file
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "app_state.db")
}

// Validate checks that the loaded values are usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if strings.TrimSpace(c.StorageNamespace) == "" {
		return fmt.Errorf("storage namespace must not be empty")
	}
	if c.StateTTL < 0 {
		return fmt.Errorf("state TTL must not be negative: %s", c.StateTTL)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
