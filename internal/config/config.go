package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	// StoreBackend selects the backing table: "sheets", "mongo" or "memory".
	StoreBackend             string
	SpreadsheetID            string
	SheetName                string
	GoogleServiceAccountPath string
	MongoURI                 string
	MongoDB                  string
	StoreTimeout             time.Duration

	AdminCode                  string
	AdminAuthMode              string
	JWTSecret                  string
	JWTExpireHours             int
	FirebaseServiceAccountPath string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPSender   string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string

	FrontendURL     string
	SubmitRateLimit int
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StoreBackend:             getEnv("STORE_BACKEND", "sheets"),
		SpreadsheetID:            getEnv("SPREADSHEET_ID", ""),
		SheetName:                getEnv("SHEET_NAME", "Sheet1"),
		GoogleServiceAccountPath: getEnv("GOOGLE_SERVICE_ACCOUNT_PATH", "service-account.json"),
		MongoURI:                 getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:                  getEnv("MONGO_DB", "dropwatch"),
		StoreTimeout:             time.Duration(getEnvInt("STORE_TIMEOUT_SECONDS", 10)) * time.Second,

		AdminCode:                  getEnv("ADMIN_CODE", ""),
		AdminAuthMode:              getEnv("ADMIN_AUTH_MODE", "passcode"),
		JWTSecret:                  getEnv("JWT_SECRET", "secret"),
		JWTExpireHours:             getEnvInt("JWT_EXPIRE_HOURS", 12),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "2525"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPSender:   getEnv("SMTP_SENDER", "leak-reporter@municipality.org"),

		CloudinaryCloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:       getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret:    getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "dropwatch"),

		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		SubmitRateLimit: getEnvInt("SUBMIT_RATE_LIMIT", 20),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
