package config

import (
	"errors"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "career-navigator")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Catalog.Source != CatalogSourceBuiltin {
		t.Fatalf("expected builtin catalog, got %s", cfg.Catalog.Source)
	}
	if cfg.Cache.TTL != 600*time.Second {
		t.Fatalf("expected default ttl, got %s", cfg.Cache.TTL)
	}
	if cfg.News.RefreshInterval != 30*time.Minute {
		t.Fatalf("expected default refresh interval, got %s", cfg.News.RefreshInterval)
	}
	if cfg.Database.Configured() {
		t.Fatalf("expected database not configured")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
}

func TestLoad_PostgresCatalogNeedsDatabase(t *testing.T) {
	setRequired(t)
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DB_HOST", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)
	t.Setenv("CATALOG_SOURCE", "s3")
	t.Setenv("REDIS_DB", "zero")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
}

func TestLoad_NewsFeeds(t *testing.T) {
	setRequired(t)
	t.Setenv("NEWS_FEED_URLS", " https://a.example.com/news , ,https://b.example.com ")
	t.Setenv("NEWS_REFRESH_INTERVAL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cfg.News.FeedURLs) != 2 || cfg.News.FeedURLs[1] != "https://b.example.com" {
		t.Fatalf("unexpected feeds: %v", cfg.News.FeedURLs)
	}
	if cfg.News.RefreshInterval != 5*time.Minute {
		t.Fatalf("unexpected interval: %s", cfg.News.RefreshInterval)
	}
}
