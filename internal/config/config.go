package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DatabaseURL selects the postgres store; empty means in-memory.
	DatabaseURL string

	// DictionaryAPIURL overrides the word-lookup endpoint, mainly for tests.
	DictionaryAPIURL string

	// CORSOrigin is the allowed browser origin; "*" by default.
	CORSOrigin string
}

// Load reads .env if present, then the environment. Every field has a
// workable default so a bare `go run` comes up on the memory store.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env")
	}

	return Config{
		Port:             getenv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DictionaryAPIURL: os.Getenv("DICTIONARY_API_URL"),
		CORSOrigin:       getenv("CORS_ORIGIN", "*"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
