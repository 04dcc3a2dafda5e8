package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile       = ".env"
	defaultAddress       = ":8080"
	defaultReadTimeout   = 15 * time.Second
	defaultWriteTimeout  = 30 * time.Second
	defaultIdleTimeout   = 120 * time.Second
	defaultContentDir    = "content"
	defaultCacheTTL      = 5 * time.Minute
	defaultPostsLimit    = 21
	defaultSiteTitle     = "folio"
	defaultLogLevel      = "info"
	defaultShutdownGrace = 10 * time.Second
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Content ContentConfig
	Site    SiteConfig
	Log     LogConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Address       string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration
	ShutdownGrace time.Duration
	Dev           bool
}

// ContentConfig controls where posts and snippets come from.
type ContentConfig struct {
	Dir        string
	CacheTTL   time.Duration
	CMSBaseURL string
}

// SiteConfig holds presentation settings.
type SiteConfig struct {
	Title string
	// PostsLimit caps how many posts take part in the listing. The default of 21 is kept
	// as-is even though the page reads as "latest 20".
	PostsLimit int
}

// LogConfig selects the zap level.
type LogConfig struct {
	Level string
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the application configuration by combining defaults, .env overrides
// and environment variables.
func Load(_ context.Context, opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	address := stringWithDefault(lookup, "FOLIO_HTTP_ADDR", "")
	if address == "" {
		// Cloud Run style PORT is honoured when no explicit address is set.
		if port := stringWithDefault(lookup, "PORT", ""); port != "" {
			address = ":" + strings.TrimPrefix(port, ":")
		} else {
			address = defaultAddress
		}
	}

	cfg := Config{
		Server: ServerConfig{
			Address:       address,
			ReadTimeout:   durationWithDefault(lookup, "FOLIO_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:  durationWithDefault(lookup, "FOLIO_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:   durationWithDefault(lookup, "FOLIO_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownGrace: durationWithDefault(lookup, "FOLIO_SERVER_SHUTDOWN_GRACE", defaultShutdownGrace),
			Dev:           boolWithDefault(lookup, "FOLIO_DEV", false),
		},
		Content: ContentConfig{
			Dir:        strings.TrimSpace(stringWithDefault(lookup, "FOLIO_CONTENT_DIR", defaultContentDir)),
			CacheTTL:   durationWithDefault(lookup, "FOLIO_CONTENT_CACHE_TTL", defaultCacheTTL),
			CMSBaseURL: strings.TrimRight(strings.TrimSpace(stringWithDefault(lookup, "FOLIO_CMS_BASE_URL", "")), "/"),
		},
		Site: SiteConfig{
			Title:      stringWithDefault(lookup, "FOLIO_SITE_TITLE", defaultSiteTitle),
			PostsLimit: intWithDefault(lookup, "FOLIO_POSTS_LIMIT", defaultPostsLimit),
		},
		Log: LogConfig{
			Level: strings.ToLower(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel)),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var fields []string
	if strings.TrimSpace(cfg.Server.Address) == "" {
		fields = append(fields, "Server.Address")
	}
	if cfg.Content.Dir == "" {
		fields = append(fields, "Content.Dir")
	}
	if cfg.Content.CacheTTL < 0 {
		fields = append(fields, "Content.CacheTTL")
	}
	if cfg.Site.PostsLimit < 1 {
		fields = append(fields, "Site.PostsLimit")
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
