package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	DBPath         string
	ImageLookupURL string // optional page scraped for plant imagery, %s = plant name
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "5000"),
		DBPath:         get("DB_PATH", "garden.db"),
		ImageLookupURL: get("IMAGE_LOOKUP_URL", ""),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
