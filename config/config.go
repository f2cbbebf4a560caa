package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string
	JWTKey string

	DBMaxOpenConns int
	DBMaxIdleConns int

	CronSecret string // shared secret checked by the scheduled-job trigger endpoint

	MailProvider   string // smtp | sendgrid | console
	EmailSender    string
	EmailPassword  string // SMTP password
	SendgridApiKey string

	OpsWebhookURL string // optional; tick summaries are POSTed here when set
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		DBName: getEnv("DB_NAME", "certtrack"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		CronSecret: getEnv("CRON_SECRET", ""),

		MailProvider:   getEnv("MAIL_PROVIDER", "console"),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@certtrack.io"),
		EmailPassword:  getEnv("EMAIL_PASSWORD", ""),
		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),

		OpsWebhookURL: getEnv("OPS_WEBHOOK_URL", ""),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.CronSecret == "" {
		log.Println("Warning: CRON_SECRET is not set. The job trigger endpoint is unauthenticated.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
