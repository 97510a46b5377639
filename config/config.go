package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	UploadDir   string
	// Record store (Turso/libSQL). Required in production.
	StoreURL     string
	StoreAuthKey string
	LocalDBPath  string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Other
	AllowedOrigins []string
	AppURL         string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       environment,
		UploadDir:         getEnv("UPLOAD_DIR", "static/uploads"),
		StoreURL:          getEnv("TURSO_DATABASE_URL", ""),
		StoreAuthKey:      getEnv("TURSO_AUTH_TOKEN", ""),
		LocalDBPath:       getEnv("DB_PATH", "db/app.db"),
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		EmailFrom:         getEnv("EMAIL_FROM", "noreply@lexcrm.app"),
		EmailFromName:     getEnv("EMAIL_FROM_NAME", "LexCRM"),
		EmailTestMode:     getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:            getEnv("APP_URL", "http://localhost:8080"),
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),
	}

	ValidateStoreConfig(cfg)

	return cfg
}

// ValidateStoreConfig enforces the record store credentials. The hosted
// store URL and auth token are mandatory in production; development falls
// back to the local database file so the app never silently degrades.
func ValidateStoreConfig(cfg *Config) {
	if cfg.StoreURL != "" && cfg.StoreAuthKey != "" {
		return
	}

	if cfg.Environment == "production" {
		if cfg.StoreURL == "" {
			log.Fatal("[CRITICAL] TURSO_DATABASE_URL is required in production. Set it to your record store endpoint URL.")
		}
		log.Fatal("[CRITICAL] TURSO_AUTH_TOKEN is required in production. Generate one with: turso db tokens create <database>")
	}

	log.Printf("[WARNING] Record store credentials not set, falling back to local database at %s. This is acceptable only in development.", cfg.LocalDBPath)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
