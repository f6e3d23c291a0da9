package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SIGNING_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.Port != "8080" || cfg.LogLevel != "info" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.TokenStore != "memory" || cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.MockLatencyScale != 1 {
		t.Fatalf("latency scale=%g", cfg.MockLatencyScale)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:8081" {
		t.Fatalf("cors=%v", cfg.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SIGNING_KEY", "test-key")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("TOKEN_STORE", "file")
	t.Setenv("TOKEN_STORE_PATH", "/tmp/tokens.json")
	t.Setenv("MOCK_LATENCY_SCALE", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.Port != "9000" || cfg.LogLevel != "debug" || cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.TokenStore != "file" || cfg.TokenStorePath != "/tmp/tokens.json" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.MockLatencyScale != 0 {
		t.Fatalf("latency scale=%g", cfg.MockLatencyScale)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("cors=%v", cfg.CORSOrigins)
	}
}

func TestLoad_MissingSigningKey(t *testing.T) {
	t.Setenv("SESSION_SIGNING_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"LOG_LEVEL":          "verbose",
		"TOKEN_STORE":        "redis",
		"MOCK_LATENCY_SCALE": "-1",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("SESSION_SIGNING_KEY", "test-key")
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("%s=%q accepted", key, value)
			}
		})
	}
}
