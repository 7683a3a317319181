package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env              string
	Port             string
	CORSOrigins      []string
	LogLevel         slog.Level
	RateLimitMax     int
	RateLimitWindow  time.Duration
	TrustProxyHops   int
	BodyLimitBytes   int64
	RedisURL         string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	CacheTTLSeconds  int
	MetricsAddr      string
	BrevoAPIKey      string
	BrevoSenderEmail string
	BrevoSenderName  string
	BrevoSandbox     bool
	NotifyEmail      string
}

// ServerAddr is the listen address derived from Port.
func (c *Config) ServerAddr() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load(".env")

	env := getEnv("APP_ENV", getEnv("NODE_ENV", EnvDevelopment))

	port := getEnv("PORT", "3001")
	if _, err := strconv.Atoi(port); err != nil {
		return nil, &InvalidValueError{Key: "PORT", Value: port}
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	trustHops := getEnvInt("TRUST_PROXY_HOPS", 0)
	if trustHops < 0 {
		return nil, &InvalidValueError{Key: "TRUST_PROXY_HOPS", Value: os.Getenv("TRUST_PROXY_HOPS")}
	}

	cfg := &Config{
		Env:              env,
		Port:             port,
		CORSOrigins:      parseOrigins(getEnv("CORS_ORIGIN", "*")),
		LogLevel:         level,
		RateLimitMax:     getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:  time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SEC", 15*60)) * time.Second,
		TrustProxyHops:   trustHops,
		BodyLimitBytes:   int64(getEnvInt("BODY_LIMIT_BYTES", 100*1024)),
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds:  getEnvInt("CACHE_TTL_SECONDS", 300),
		MetricsAddr:      getEnv("METRICS_ADDR", ""),
		BrevoAPIKey:      getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail: getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:  getEnv("BREVO_SENDER_NAME", "NeuraLink AI"),
		BrevoSandbox:     getEnv("BREVO_SANDBOX", "false") == "true",
		NotifyEmail:      getEnv("NOTIFY_EMAIL", ""),
	}

	return cfg, nil
}

// parseOrigins splits a comma-separated allow-list. "*" anywhere in the list
// collapses it to the wildcard.
func parseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		if origin == "*" {
			return []string{"*"}
		}
		origins = append(origins, origin)
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, &InvalidValueError{Key: "LOG_LEVEL", Value: raw}
	}
	return level, nil
}

type InvalidValueError struct {
	Key   string
	Value string
}

func (e *InvalidValueError) Error() string {
	return "config: invalid value for " + e.Key + ": " + strconv.Quote(e.Value)
}
