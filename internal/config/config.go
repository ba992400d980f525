package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Runtime settings, read from the environment (optionally seeded from a .env file).
type Config struct {
	Port        string
	DBDriver    string // "sqlite" or "postgres"
	DBPath      string
	DatabaseURL string
	RedisAddr   string // empty disables the order cache
	SeedPath    string // empty disables seeding
	LogMode     string
}

// LoadDotEnv loads .env into the process environment if present.
// It reports whether a file was loaded.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

func Load() Config {
	return Config{
		Port:        Get("PORT", "8080"),
		DBDriver:    strings.ToLower(Get("DB_DRIVER", "sqlite")),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		SeedPath:    os.Getenv("SEED_PATH"),
		LogMode:     Get("LOG_MODE", "dev"),
	}
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
