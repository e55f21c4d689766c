package config

import (
	"os"
	"time"
)

type Config struct {
	Addr          string
	DBUrl         string
	JWTSecret     string
	IndexCacheTTL time.Duration
}

// LoadConfig reads the environment. Call godotenv.Load first.
func LoadConfig() *Config {
	cfg := &Config{
		Addr:          os.Getenv("ADDR"),
		DBUrl:         os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		IndexCacheTTL: 20 * time.Second,
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if raw := os.Getenv("INDEX_CACHE_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil {
			cfg.IndexCacheTTL = ttl
		}
	}
	return cfg
}
