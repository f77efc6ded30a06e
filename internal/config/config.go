package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	DATABASE_URL      string
	RedisAddr         string
	KafkaBrokers      string
	PublicBaseURL     string
	HTTPPort          string
	HTTPAddr          string
	ServiceName       string
	MetricsEnabled    bool
	TracingEnabled    bool
	JaegerURL         string
	RateLimitRequests int
	RateLimitWindow   string
}

func Load() *Config {
	return &Config{
		DATABASE_URL:      mustEnv("DATABASE_URL"),
		RedisAddr:         mustEnv("REDIS_ADDR"),
		KafkaBrokers:      mustEnv("KAFKA_BROKERS"),
		PublicBaseURL:     mustEnv("PUBLIC_BASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8090"),
		ServiceName:       getEnv("SERVICE_NAME", "techfolio"),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", false),
		TracingEnabled:    getEnvBool("TRACING_ENABLED", false),
		JaegerURL:         getEnv("JAEGER_URL", "http://localhost:14268/api/traces"),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 10),
		RateLimitWindow:   getEnv("RATE_LIMIT_WINDOW", "1m"),
	}
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v == "true"
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}

func getEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}
