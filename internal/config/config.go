package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	GoogleAi GoogleAiConfig
	ImageApi ImageApiConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

// GoogleAiConfig points at the Gemini generateContent endpoint. Model is
// the default used when a request does not name one.
type GoogleAiConfig struct {
	BaseURL string
	Model   string
	APIKey  string
}

type ImageApiConfig struct {
	URL          string
	RapidAPIHost string
	RapidAPIKey  string
}

type EventsConfig struct {
	AuditTopicName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		GoogleAi: GoogleAiConfig{
			BaseURL: getEnv("GOOGLE_AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
			Model:   getEnv("GOOGLE_AI_MODEL", "gemini-1.5-flash"),
			APIKey:  getEnv("GOOGLE_AI_API_KEY", ""),
		},
		ImageApi: ImageApiConfig{
			URL:          getEnv("IMAGE_API_URL", ""),
			RapidAPIHost: getEnv("RAPIDAPI_HOST", ""),
			RapidAPIKey:  getEnv("RAPIDAPI_KEY", ""),
		},
		Events: EventsConfig{
			AuditTopicName: getEnv("AUDIT_EVENTS_TOPIC_NAME", "AUDIT_EVENTS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
