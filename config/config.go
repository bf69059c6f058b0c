package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Default configuration values
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultRedisAddr       = "localhost:6379"
	DefaultCohereModel     = "command-r-08-2024"
	DefaultFetchTimeout    = 15 * time.Second
	DefaultAITimeout       = 30 * time.Second
	DefaultAnalyzeDeadline = 45 * time.Second
	DefaultMaxBodyBytes    = 10 << 20 // 10MB response cap
	DefaultMaxRedirects    = 5
	DefaultMaxURLLength    = 2048
	DefaultMaxContentChars = 50000
	DefaultMemoryCacheSize = 1000

	DefaultExtractTTL = time.Hour
	DefaultAnalyzeTTL = 30 * time.Minute
	DefaultAITTL      = 15 * time.Minute
	DefaultCompareTTL = 30 * time.Minute
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	Port     string
	LogLevel string
	Version  string

	RedisAddr string
	RedisPass string
	RedisDB   int

	CohereAPIKey string
	CohereModel  string

	FetchTimeout    time.Duration
	AITimeout       time.Duration
	AnalyzeDeadline time.Duration
	MaxBodyBytes    int64
	MaxRedirects    int
	MaxURLLength    int
	MaxContentChars int

	MemoryCacheSize int

	ExtractTTL time.Duration
	AnalyzeTTL time.Duration
	AITTL      time.Duration
	CompareTTL time.Duration

	// BlockedURLPatterns are comma-separated substrings/regex fragments that
	// reject a target URL outright, on top of the built-in SSRF checks.
	BlockedURLPatterns []string
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	cfg := Config{
		Port:            envStr("PORT", DefaultPort),
		LogLevel:        envStr("LOG_LEVEL", DefaultLogLevel),
		Version:         envStr("APP_VERSION", "1.0.0"),
		RedisAddr:       envStr("REDIS_ADDR", DefaultRedisAddr),
		RedisPass:       os.Getenv("REDIS_PASS"),
		RedisDB:         envInt("REDIS_DB", 0),
		CohereAPIKey:    os.Getenv("COHERE_API_KEY"),
		CohereModel:     envStr("COHERE_MODEL", DefaultCohereModel),
		FetchTimeout:    envSeconds("FETCH_TIMEOUT_SECONDS", DefaultFetchTimeout),
		AITimeout:       envSeconds("AI_TIMEOUT_SECONDS", DefaultAITimeout),
		AnalyzeDeadline: envSeconds("ANALYZE_DEADLINE_SECONDS", DefaultAnalyzeDeadline),
		MaxBodyBytes:    int64(envInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		MaxRedirects:    envInt("MAX_REDIRECTS", DefaultMaxRedirects),
		MaxURLLength:    envInt("MAX_URL_LENGTH", DefaultMaxURLLength),
		MaxContentChars: envInt("MAX_CONTENT_CHARS", DefaultMaxContentChars),
		MemoryCacheSize: envInt("MEMORY_CACHE_SIZE", DefaultMemoryCacheSize),
		ExtractTTL:      envSeconds("CACHE_TTL_EXTRACT_SECONDS", DefaultExtractTTL),
		AnalyzeTTL:      envSeconds("CACHE_TTL_ANALYZE_SECONDS", DefaultAnalyzeTTL),
		AITTL:           envSeconds("CACHE_TTL_AI_SECONDS", DefaultAITTL),
		CompareTTL:      envSeconds("CACHE_TTL_COMPARE_SECONDS", DefaultCompareTTL),
	}

	if raw := os.Getenv("BLOCKED_URL_PATTERNS"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.BlockedURLPatterns = append(cfg.BlockedURLPatterns, p)
			}
		}
	}

	return cfg
}

func envStr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
