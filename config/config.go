package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Env             string
	DBPath          string
	SessionSecret   string
	SessionTTL      time.Duration
	FertilizerTable string
	CropModel       string
	StaticDir       string
	LogLevel        string
	LogFormat       string
	DefaultLang     string

	// EnvFileErr is set when no .env could be loaded; callers decide whether to log it.
	EnvFileErr error
}

func Load() AppConfig {
	envErr := godotenv.Load()

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	ttl, err := time.ParseDuration(get("SESSION_TTL", "24h"))
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return AppConfig{
		Port:            get("PORT", "3000"),
		Env:             get("ENV", "development"),
		DBPath:          get("DB_PATH", "users.db"),
		SessionSecret:   get("SESSION_SECRET", ""),
		SessionTTL:      ttl,
		FertilizerTable: get("FERTILIZER_TABLE", "data/fertilizer.csv"),
		CropModel:       get("CROP_MODEL", "data/crop_model.json"),
		StaticDir:       get("STATIC_DIR", ""),
		LogLevel:        get("LOG_LEVEL", "info"),
		LogFormat:       get("LOG_FORMAT", "console"),
		DefaultLang:     get("DEFAULT_LANG", "English"),
		EnvFileErr:      envErr,
	}
}

func (c AppConfig) IsProduction() bool { return c.Env == "production" }

// Redacted returns a copy that is safe to log.
func (c AppConfig) Redacted() AppConfig {
	if c.SessionSecret != "" {
		c.SessionSecret = "***"
	}
	return c
}
