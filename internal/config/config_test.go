package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/techfolio")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("PUBLIC_BASE_URL", "https://folio.example.com")
	t.Setenv("RATE_LIMIT_REQUESTS", "25")
	t.Setenv("TRACING_ENABLED", "true")

	cfg := Load()

	if cfg.DATABASE_URL != "postgres://localhost/techfolio" {
		t.Errorf("DATABASE_URL = %q", cfg.DATABASE_URL)
	}
	if cfg.PublicBaseURL != "https://folio.example.com" {
		t.Errorf("PublicBaseURL = %q", cfg.PublicBaseURL)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("default HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.ServiceName != "techfolio" {
		t.Errorf("default ServiceName = %q", cfg.ServiceName)
	}
	if cfg.RateLimitRequests != 25 {
		t.Errorf("RateLimitRequests = %d", cfg.RateLimitRequests)
	}
	if !cfg.TracingEnabled {
		t.Error("TracingEnabled = false")
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled default should be false")
	}
}

func TestGetEnvInt_BadValueFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "lots")
	if got := getEnvInt("RATE_LIMIT_REQUESTS", 10); got != 10 {
		t.Errorf("getEnvInt = %d, want fallback 10", got)
	}
}
