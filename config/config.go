package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	StageConfigPath string
	GuideDomains    string // comma-separated allow-list for URL ingest
	GuideMaxBytes   int
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
	mb := 1500000
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "Europe/Berlin"),
		DBPath:          get("DB_PATH", "growbro.db"),
		StageConfigPath: get("STAGE_CONFIG", "./StageConfig.csv"),
		GuideDomains:    get("GUIDES_ALLOWED_DOMAINS", ""),
		GuideMaxBytes:   mb,
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
