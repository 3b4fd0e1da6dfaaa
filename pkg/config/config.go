package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LLM providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port        string
	DatabaseURL string

	LogLevel  string
	LogFormat string

	LLMProvider    string
	LLMModel       string
	LLMTemperature *float32
	// LLMHTTPTimeout is zero unless LLM_HTTP_TIMEOUT is set.
	LLMHTTPTimeout time.Duration

	GoogleAPIKey        string
	GoogleCloudProject  string
	GoogleCloudLocation string
	GoogleUseVertexAI   bool

	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OpenAIAppTitle string
	OpenAIReferer  string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	MaxUploadBytes int64
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// .env is optional
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		LLMProvider:    strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		LLMModel:       os.Getenv("LLM_MODEL"),
		LLMTemperature: getEnvFloat32("LLM_TEMPERATURE"),
		LLMHTTPTimeout: getEnvDuration("LLM_HTTP_TIMEOUT", 0),

		GoogleAPIKey:        firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY"),
		GoogleCloudProject:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GoogleCloudLocation: os.Getenv("GOOGLE_CLOUD_LOCATION"),
		GoogleUseVertexAI:   getEnvBool("GOOGLE_GENAI_USE_VERTEXAI", false),

		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		OpenAIAppTitle: getEnv("OPENAI_APP_TITLE", "MediAid AI"),
		OpenAIReferer:  os.Getenv("OPENAI_REFERER"),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "mediaid"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return def
}

// getEnvFloat32 returns nil when the variable is unset or malformed so the
// provider default applies.
func getEnvFloat32(key string) *float32 {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return nil
	}
	t := float32(f)
	return &t
}
