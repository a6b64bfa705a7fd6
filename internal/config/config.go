package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Gemini  GeminiConfig
	Parsing ParsingConfig
	Session SessionConfig
	Redis   RedisConfig
}

type AppConfig struct {
	AppName        string
	Environment    string
	HTTPPort       string
	MaxUploadBytes int64
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

type ParsingConfig struct {
	LlamaCloudAPIKey string
}

type SessionConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

const (
	defaultModel           = "gemini-1.5-flash-002"
	defaultMaxUploadBytes  = 5 << 20
	defaultSessionExpiry   = 30 * time.Minute
	defaultRedisTTL        = 30 * time.Minute
	defaultMaxOutputTokens = 8192
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:        opt("APP_NAME", "resume-insights"),
		Environment:    opt("APP_ENV", "development"),
		HTTPPort:       req("HTTP_PORT"),
		MaxUploadBytes: optInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}

	cfg.Gemini = GeminiConfig{
		APIKey:          req("GEMINI_API_KEY"),
		Model:           opt("GEMINI_MODEL", defaultModel),
		Temperature:     optFloat32("GEMINI_TEMPERATURE", 1),
		TopP:            optFloat32("GEMINI_TOP_P", 0.95),
		TopK:            optFloat32("GEMINI_TOP_K", 40),
		MaxOutputTokens: int32(optInt64("GEMINI_MAX_OUTPUT_TOKENS", defaultMaxOutputTokens)),
	}

	cfg.Parsing = ParsingConfig{
		LlamaCloudAPIKey: opt("LLAMA_CLOUD_API_KEY", ""),
	}

	cfg.Session = SessionConfig{
		Secret:    req("SESSION_SECRET"),
		ExpiresIn: optDuration("SESSION_EXPIRES_IN", defaultSessionExpiry),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		TTL:      optDuration("REDIS_TTL", defaultRedisTTL),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadGemini loads only the Gemini settings, for tools that do not run the
// HTTP server.
func LoadGemini() (GeminiConfig, error) {
	_ = godotenv.Load()

	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return GeminiConfig{}, fmt.Errorf("%w: GEMINI_API_KEY", errMissingRequiredEnv)
	}

	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	return GeminiConfig{
		APIKey:          apiKey,
		Model:           opt("GEMINI_MODEL", defaultModel),
		Temperature:     optFloat32("GEMINI_TEMPERATURE", 1),
		TopP:            optFloat32("GEMINI_TOP_P", 0.95),
		TopK:            optFloat32("GEMINI_TOP_K", 40),
		MaxOutputTokens: int32(optInt64("GEMINI_MAX_OUTPUT_TOKENS", defaultMaxOutputTokens)),
	}, nil
}

func optInt64(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func optFloat32(key string, fallback float32) float32 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil || v < 0 {
		return fallback
	}
	return float32(v)
}

func optDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if v, err := time.ParseDuration(raw); err == nil && v > 0 {
		return v
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
