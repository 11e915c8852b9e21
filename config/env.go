package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	MongoURL       string
	DBName         string
	JWTSecret      string
	JWTExpiry      string
	RazorpayKey    string
	RazorpaySecret string
	AdminEmail     string
	ClientURL      string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", getEnv("PORT", "8080")),
		MongoURL:       getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "rahaa"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		JWTExpiry:      getEnv("JWT_EXPIRY", "168h"),
		RazorpayKey:    os.Getenv("RAZORPAY_API_KEY"),
		RazorpaySecret: os.Getenv("RAZORPAY_API_SECRET"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		ClientURL:      getEnv("CLIENT_URL", "http://localhost:3000"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
