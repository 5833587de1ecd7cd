package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI          string
	DBName            string
	JWTSecret         string
	AdminEmails       []string
	ServerPort        string
	Environment       string
	RazorpayKeyID     string
	RazorpayKeySecret string
	CloudinaryURL     string
	SendgridAPIKey    string
	MailFromName      string
	MailFromAddress   string
}

var AppConfig *Config

func Load() error {
	// .env file is optional, continue without it
	_ = godotenv.Load()

	AppConfig = &Config{
		MongoURI:          getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		DBName:            getEnv("DB_NAME", "shopnest"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		AdminEmails:       getEnvJSONList("ADMIN_EMAILS"),
		ServerPort:        getEnv("PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		RazorpayKeyID:     getEnv("RZR_ID", ""),
		RazorpayKeySecret: getEnv("RZR_SECRET", ""),
		CloudinaryURL:     getEnv("CLOUDINARY_URL", ""),
		SendgridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		MailFromName:      getEnv("MAIL_FROM_NAME", "Shopnest"),
		MailFromAddress:   getEnv("MAIL_FROM_ADDRESS", "no-reply@shopnest.dev"),
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvJSONList reads a JSON string array, e.g. ADMIN_EMAILS=["a@b.com"].
func getEnvJSONList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		log.Printf("config: ignoring malformed %s: %v", key, err)
		return nil
	}
	return values
}
