package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Services ServiceConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type ServiceConfig struct {
	OCRBaseURL       string
	AnswerBaseURL    string
	RequestTimeoutSc int // seconds, applied to both boundary clients
}

type ChatConfig struct {
	SessionTTLMinutes int // idle sessions are evicted after this long
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Services: ServiceConfig{
			OCRBaseURL:       getEnv("OCR_SERVICE_URL", "http://localhost:8090"),
			AnswerBaseURL:    getEnv("ANSWER_SERVICE_URL", "http://localhost:8091"),
			RequestTimeoutSc: getEnvAsInt("SERVICE_REQUEST_TIMEOUT", 60),
		},
		Chat: ChatConfig{
			SessionTTLMinutes: getEnvAsInt("CHAT_SESSION_TTL_MINUTES", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
