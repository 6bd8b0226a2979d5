package config

import (
	"os"
)

type Config struct {
	DatabasePath string
	LockPath     string
	LogLevel     string
}

func Load() *Config {
	dbPath := getEnv("WARDROBE_DB", "wardrobe.db")
	cfg := &Config{
		DatabasePath: dbPath,
		LockPath:     getEnv("WARDROBE_LOCK", dbPath+".lock"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
