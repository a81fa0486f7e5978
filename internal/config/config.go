// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. Fine for local
// development, never for a deployment.
const DefaultJWTSecret = "unimarket-dev-secret"

type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// DatabaseURL switches storage to Postgres when set.
	DatabaseURL string
	// SQLitePath locates the embedded store used when DatabaseURL is empty.
	SQLitePath string
	// JWTSecret signs session tokens.
	JWTSecret string
	// Seed controls insertion of the initial demo data on an empty store.
	Seed bool
	// SimulateChat enables canned auto-replies to messages sent to sellers.
	SimulateChat bool
	// ImportFile, when set, points at a browser localStorage listing dump
	// to ingest at startup.
	ImportFile string
}

// Load reads configuration, applying defaults for anything unset. A missing
// .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:         ":" + getenv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   getenv("SQLITE_PATH", "data/unimarket.db"),
		JWTSecret:    getenv("JWT_SECRET", DefaultJWTSecret),
		Seed:         getbool("SEED_DATA", true),
		SimulateChat: getbool("SIMULATE_CHAT", true),
		ImportFile:   os.Getenv("IMPORT_FILE"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
