package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// OpenAI-compatible completion endpoint used for resume extraction
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	// File storage root for saved resumes
	UploadDir string
	// Tenant scoping: fallback organization when the request carries none
	DefaultOrganizationID string
	// Resume pipeline thresholds. Heuristic constants carried from the
	// original flow; overridable instead of compiled in.
	ResumeMinTextChars       int
	ResumePromptMaxChars     int
	DocConvertTimeoutSeconds int
	FrontendURL              string
	// Redis/Upstash Configuration (rate limiting)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitUploadThreshold int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),

		OpenAIAPIKey:  getEnv("AI_INTEGRATIONS_OPENAI_API_KEY", getEnv("OPENAI_API_KEY", "")),
		OpenAIBaseURL: strings.TrimRight(getEnv("AI_INTEGRATIONS_OPENAI_BASE_URL", ""), "/"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		DefaultOrganizationID: getEnv("DEFAULT_ORGANIZATION_ID", ""),

		ResumeMinTextChars:       getEnvInt("RESUME_MIN_TEXT_CHARS", 50),
		ResumePromptMaxChars:     getEnvInt("RESUME_PROMPT_MAX_CHARS", 15000),
		DocConvertTimeoutSeconds: getEnvInt("DOC_CONVERT_TIMEOUT_SECONDS", 60),

		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	// Basic validation to avoid confusing failures later
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("WARNING: AI_INTEGRATIONS_OPENAI_API_KEY not configured. Resume parsing will be unavailable.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
