// backend/src/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
// The values are loaded from environment variables.
type AppConfig struct {
	// Core settings
	Port     string
	LogLevel string

	// Upload limits
	MaxUploadSizeBytes int64
	MaxFilesPerUpload  int

	// Anthropic API settings
	AnthropicAPIKey    string
	ExtractionModel    string
	AssistantModel     string
	ExtractionMaxChars int // statement text sent to the model, per file
	AssistantMaxTokens int64
	ExtractionTimeout  time.Duration

	// Session settings
	SessionTTL time.Duration

	// CORS
	AllowedOrigins []string
}

// Cfg is a global instance of the AppConfig.
var Cfg *AppConfig

// LoadConfig loads configuration from environment variables or a .env file.
// It centralizes all configuration logic for the application.
func LoadConfig() {
	// 1. Try loading from the current directory (standard behavior)
	errEnv := godotenv.Load()

	// 2. If not found, try loading from the parent directory (common when running from /backend)
	if errEnv != nil {
		errEnv = godotenv.Load("../.env")
	}

	if errEnv != nil {
		if os.IsNotExist(errEnv) {
			log.Println("Info: No .env file found in current or parent directory. Relying on OS environment variables (expected in production).")
		} else {
			log.Printf("Warning: Error loading .env file: %v. Relying on OS environment variables.", errEnv)
		}
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	// The Anthropic key is deliberately not required at startup: without it the
	// pipeline still works, falling back to the sample dataset.
	anthropicKey := getEnv("ANTHROPIC_API_KEY", "")
	if anthropicKey == "" {
		log.Println("WARNING: ANTHROPIC_API_KEY not set. Extraction and chat will fall back to sample data / canned replies.")
	}

	maxUploadSizeBytesStr := getEnv("MAX_UPLOAD_SIZE_BYTES", "10485760") // 10MB default
	maxUploadSizeBytes, err := strconv.ParseInt(maxUploadSizeBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_UPLOAD_SIZE_BYTES format '%s'. Using default 10MB. Error: %v", maxUploadSizeBytesStr, err)
		maxUploadSizeBytes = 10 * 1024 * 1024
	}

	Cfg = &AppConfig{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		MaxUploadSizeBytes: maxUploadSizeBytes,
		MaxFilesPerUpload:  getEnvAsInt("MAX_FILES_PER_UPLOAD", 5),

		AnthropicAPIKey:    anthropicKey,
		ExtractionModel:    getEnv("EXTRACTION_MODEL", "claude-sonnet-4-20250514"),
		AssistantModel:     getEnv("ASSISTANT_MODEL", "claude-sonnet-4-20250514"),
		ExtractionMaxChars: getEnvAsInt("EXTRACTION_MAX_CHARS", 5000),
		AssistantMaxTokens: int64(getEnvAsInt("ASSISTANT_MAX_TOKENS", 1000)),
		ExtractionTimeout:  getEnvAsDuration("EXTRACTION_TIMEOUT", 90*time.Second),

		SessionTTL: getEnvAsDuration("SESSION_TTL", 4*time.Hour),

		AllowedOrigins: getList("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, ExtractionModel=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.ExtractionModel)
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer or returns a fallback.
func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or returns a fallback.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}

// getList retrieves and parses a comma-separated list.
func getList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	if raw == "" {
		return []string{}
	}
	items := strings.Split(raw, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}
