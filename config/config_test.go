package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logger.Level)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("expected redis disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Redis.TTL != 24*time.Hour {
		t.Errorf("expected default redis ttl 24h, got %s", cfg.Redis.TTL)
	}
	if cfg.RateLimit.Requests != 5 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.Cache.LRUSize != 1024 {
		t.Errorf("expected default lru size 1024, got %d", cfg.Cache.LRUSize)
	}
}
