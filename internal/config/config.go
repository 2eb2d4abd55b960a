package config

import (
	"fmt"
	"log"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends
const (
	StoreRedis  = "redis"
	StoreSQL    = "sql"
	StoreMemory = "memory"
)

// Config holds the server settings read from the environment
type Config struct {
	HTTPAddr string
	GinMode  string

	// Store selects the game repository: redis, sql or memory
	Store string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// DatabaseDSN is a Postgres connection string for the sql store
	DatabaseDSN string

	UpsertOnUpdate bool
	StrictDelete   bool
}

func newViper() *viper.Viper {
	v := viper.New()

	// defaults
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("STORE", StoreRedis)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", "0")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("UPSERT_ON_UPDATE", "false")
	v.SetDefault("STRICT_DELETE", "false")

	// keys are read from the environment; empty variables keep the default
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. A .env file in the working directory is
// loaded first when present; real environment variables take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	v := newViper()

	redisDB, err := strconv.Atoi(v.GetString("REDIS_DB"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	upsert, err := strconv.ParseBool(v.GetString("UPSERT_ON_UPDATE"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse UPSERT_ON_UPDATE: %w", err)
	}

	strict, err := strconv.ParseBool(v.GetString("STRICT_DELETE"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse STRICT_DELETE: %w", err)
	}

	cfg := &Config{
		HTTPAddr:       v.GetString("HTTP_ADDR"),
		GinMode:        v.GetString("GIN_MODE"),
		Store:          v.GetString("STORE"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		UpsertOnUpdate: upsert,
		StrictDelete:   strict,
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unknown GIN_MODE %q", cfg.GinMode)
	}

	switch cfg.Store {
	case StoreRedis, StoreMemory:
	case StoreSQL:
		if cfg.DatabaseDSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for the %s store", StoreSQL)
		}
	default:
		return nil, fmt.Errorf("unknown STORE %q", cfg.Store)
	}

	return cfg, nil
}
