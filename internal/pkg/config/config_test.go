package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "secret",
	}))
	if err != nil {
		t.Fatalf("LoadWith error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != time.Hour || cfg.Auth.ClockSkew != 2*time.Minute || cfg.Auth.BcryptCost != 10 {
		t.Fatalf("unexpected auth defaults: %+v", cfg.Auth)
	}
	want := []string{"/api/auth/", "/swagger/", "/health", "/health/", "/metrics"}
	if len(cfg.HTTP.PublicPaths) != len(want) {
		t.Fatalf("unexpected public paths: %v", cfg.HTTP.PublicPaths)
	}
	for i, p := range want {
		if cfg.HTTP.PublicPaths[i] != p {
			t.Fatalf("public path %d: got %q want %q", i, cfg.HTTP.PublicPaths[i], p)
		}
	}
	if cfg.Mongo.Database != "facetime" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected store defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "secret",
		"JWT_TTL":      "15m",
		"ENV":          "production",
		"PUBLIC_PATHS": "/api/auth/,/docs/",
	}))
	if err != nil {
		t.Fatalf("LoadWith error: %v", err)
	}
	if cfg.Auth.TokenTTL != 15*time.Minute {
		t.Fatalf("expected 15m ttl, got %v", cfg.Auth.TokenTTL)
	}
	if len(cfg.HTTP.PublicPaths) != 2 || cfg.HTTP.PublicPaths[1] != "/docs/" {
		t.Fatalf("unexpected public paths: %v", cfg.HTTP.PublicPaths)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production env")
	}
}

func TestLoadWith_MissingSecret(t *testing.T) {
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error when JWT_SECRET is missing")
	}
}
