package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("BIND_ADDR", "")
	t.Setenv("TOKEN_TTL_DAYS", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BindAddr != ":8080" {
		t.Fatalf("unexpected bind addr %q", cfg.BindAddr)
	}
	if cfg.TokenTTL != 7*24*time.Hour {
		t.Fatalf("token TTL should default to 7 days, got %v", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected CORS origins %v", cfg.CORSOrigins)
	}
}

func TestLoad_UnparseableTTLFallsBackToDefault(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	for _, bad := range []string{"abc", "-1", "0"} {
		t.Setenv("TOKEN_TTL_DAYS", bad)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load error for %q: %v", bad, err)
		}
		if cfg.TokenTTL != 7*24*time.Hour {
			t.Fatalf("TOKEN_TTL_DAYS=%q should fall back to 7 days, got %v", bad, cfg.TokenTTL)
		}
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL_DAYS", "1")
	t.Setenv("CORS_ORIGINS", "https://ddsolutions.in, https://app.ddsolutions.in")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected TTL %v", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://app.ddsolutions.in" {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
}
