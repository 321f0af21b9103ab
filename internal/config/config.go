package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config is everything the process reads from the environment, loaded once
// at startup and injected into constructors.
type Config struct {
	Port            string
	DatabaseURL     string
	VerifyToken     string
	PageAccessToken string
	GraphAPIBaseURL string
	OpenAIAPIKey    string
	OpenAIModel     string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getenv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		VerifyToken:     os.Getenv("FB_VERIFY_TOKEN"),
		PageAccessToken: os.Getenv("FB_PAGE_ACCESS_TOKEN"),
		GraphAPIBaseURL: getenv("GRAPH_API_BASE_URL", "https://graph.facebook.com/v19.0"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     os.Getenv("OPENAI_MODEL"),
	}

	// Missing tokens fail the individual attempts that need them; only the
	// database is required to start at all.
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
