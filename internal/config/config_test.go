package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address != ":8080" {
		t.Errorf("expected default address :8080, got %s", cfg.Server.Address)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.Dev {
		t.Errorf("expected dev mode off by default")
	}
	if cfg.Content.Dir != "content" {
		t.Errorf("expected default content dir, got %s", cfg.Content.Dir)
	}
	if cfg.Content.CacheTTL != defaultCacheTTL {
		t.Errorf("unexpected cache ttl: %s", cfg.Content.CacheTTL)
	}
	if cfg.Site.PostsLimit != 21 {
		t.Errorf("expected posts limit 21, got %d", cfg.Site.PostsLimit)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected info log level, got %s", cfg.Log.Level)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"FOLIO_HTTP_ADDR":           "127.0.0.1:9000",
		"FOLIO_SERVER_READ_TIMEOUT": "20s",
		"FOLIO_CONTENT_DIR":         " /srv/content ",
		"FOLIO_CONTENT_CACHE_TTL":   "30s",
		"FOLIO_CMS_BASE_URL":        "https://cms.example.com/",
		"FOLIO_POSTS_LIMIT":         "10",
		"FOLIO_DEV":                 "yes",
		"FOLIO_SITE_TITLE":          "notes",
		"LOG_LEVEL":                 "DEBUG",
	}

	cfg, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address != "127.0.0.1:9000" {
		t.Errorf("unexpected address: %s", cfg.Server.Address)
	}
	if cfg.Server.ReadTimeout != 20*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if !cfg.Server.Dev {
		t.Errorf("expected dev mode on")
	}
	if cfg.Content.Dir != "/srv/content" {
		t.Errorf("expected trimmed content dir, got %q", cfg.Content.Dir)
	}
	if cfg.Content.CacheTTL != 30*time.Second {
		t.Errorf("unexpected cache ttl: %s", cfg.Content.CacheTTL)
	}
	if cfg.Content.CMSBaseURL != "https://cms.example.com" {
		t.Errorf("expected trailing slash stripped, got %s", cfg.Content.CMSBaseURL)
	}
	if cfg.Site.PostsLimit != 10 {
		t.Errorf("unexpected posts limit: %d", cfg.Site.PostsLimit)
	}
	if cfg.Site.Title != "notes" {
		t.Errorf("unexpected site title: %s", cfg.Site.Title)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected lower-cased level, got %s", cfg.Log.Level)
	}
}

func TestLoadFallsBackToPort(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{"PORT": "3000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Address != ":3000" {
		t.Errorf("expected :3000, got %s", cfg.Server.Address)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	env := map[string]string{
		"FOLIO_POSTS_LIMIT":       "0",
		"FOLIO_CONTENT_CACHE_TTL": "-1m",
	}

	_, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	fields := vErr.Fields()
	if len(fields) != 2 || fields[0] != "Content.CacheTTL" || fields[1] != "Site.PostsLimit" {
		t.Errorf("unexpected invalid fields: %v", fields)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	body := "# local overrides\nexport FOLIO_SITE_TITLE=\"dotenv title\"\nFOLIO_POSTS_LIMIT=5\nbroken-line\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(context.Background(),
		WithEnvMap(map[string]string{"FOLIO_POSTS_LIMIT": "7"}),
		WithoutSystemEnv(),
		WithEnvFile(path),
	)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Title != "dotenv title" {
		t.Errorf("expected title from .env, got %q", cfg.Site.Title)
	}
	if cfg.Site.PostsLimit != 7 {
		t.Errorf("expected env map to win over .env, got %d", cfg.Site.PostsLimit)
	}
}
