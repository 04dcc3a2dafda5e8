package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/folio/internal/content"
	custommw "finitefield.org/folio/internal/httpserver/middleware"
	"finitefield.org/folio/internal/markup"
	"finitefield.org/folio/internal/observability"
	"finitefield.org/folio/internal/posts"
	"finitefield.org/folio/public"
)

const requestTimeout = 60 * time.Second

// Config holds runtime options for the site HTTP server.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	SiteTitle  string
	PostsLimit int
	Store      content.Store
	Logger     *zap.Logger
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	router, err := NewRouter(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  durationOr(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout: durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:  durationOr(cfg.IdleTimeout, 120*time.Second),
	}, nil
}

// NewRouter builds the routing tree. It is split from New so tests can mount it on httptest.
func NewRouter(cfg Config) (chi.Router, error) {
	if cfg.Store == nil {
		return nil, errors.New("httpserver: content store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLoggerMiddleware(logger))
	router.Use(observability.RequestLoggerMiddleware)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Compress(5, "text/html", "text/css"))
	router.Use(chimw.Timeout(requestTimeout))
	router.Use(custommw.HTMX())

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("httpserver: embed static: %w", err)
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))

	h := &Handlers{
		store:     cfg.Store,
		grouper:   posts.New(cfg.PostsLimit),
		markup:    markup.NewRenderer(),
		siteTitle: cfg.SiteTitle,
	}
	mountRoutes(router, h)
	return router, nil
}

func mountRoutes(router chi.Router, h *Handlers) {
	router.Get("/healthz", h.Health)
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/posts", http.StatusFound)
	})
	router.NotFound(h.NotFound)

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", h.PostsIndex)
		r.Get("/{slug}", h.PostDetail)
	})
	router.Route("/snippets", func(r chi.Router) {
		r.Get("/", h.SnippetsIndex)
		r.Get("/{slug}", h.SnippetPage)
		RegisterFragment(r, "/{slug}/tabs", h.SnippetTabs)
	})
}

// RegisterFragment registers a GET handler intended for htmx fragment rendering.
func RegisterFragment(r chi.Router, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX()).Get(pattern, handler)
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
