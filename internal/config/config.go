package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	AIProvider      string
	OllamaURL       string
	OllamaModel     string
	OpenAIKey       string
	OpenAIModel     string
	OpenAIURL       string
	AITimeout       time.Duration
	AIRetryAttempts int

	CacheType string // none | memory | redis
	CacheTTL  time.Duration
	RedisAddr string

	RateLimitRPS   int
	RateLimitBurst int

	MessageLang   string
	MessageStrict bool
}

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set win over the file.
func Load() (*Config, error) {

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	timeout, err := getEnvInt("AI_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	attempts, err := getEnvInt("AI_RETRY_ATTEMPTS", 1)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvInt("CACHE_TTL_SECONDS", 3600)
	if err != nil {
		return nil, err
	}
	rps, err := getEnvInt("RATE_LIMIT_RPS", 5)
	if err != nil {
		return nil, err
	}
	burst, err := getEnvInt("RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, err
	}
	strict, err := getEnvBool("MESSAGE_STRICT", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AIProvider:      getEnv("AI_PROVIDER", "ollama"), // ollama | openai
		OllamaURL:       getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:     getEnv("OLLAMA_MODEL", "llama3.2"),
		OpenAIKey:       getEnv("OPENAI_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIURL:       getEnv("OPENAI_URL", "https://api.openai.com"),
		AITimeout:       time.Duration(timeout) * time.Second,
		AIRetryAttempts: attempts,
		CacheType:       getEnv("CACHE_TYPE", "none"),
		CacheTTL:        time.Duration(cacheTTL) * time.Second,
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RateLimitRPS:    rps,
		RateLimitBurst:  burst,
		MessageLang:     getEnv("MESSAGE_LANG", "en"),
		MessageStrict:   strict,
	}, nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid env %s: %w", key, err)
	}
	return i, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid env %s: %w", key, err)
	}
	return b, nil
}
