package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"finitefield.org/folio/internal/config"
	"finitefield.org/folio/internal/content"
)

const cmsRequestTimeout = 5 * time.Second

// buildStore returns the file store, and the CMS-backed store in front of it when a base URL is set.
func buildStore(cfg config.ContentConfig, logger *zap.Logger) (*content.FileStore, content.Store) {
	files := content.NewFileStore(cfg.Dir,
		content.WithCacheTTL(cfg.CacheTTL),
		content.WithLogger(logger.Named("content")),
	)
	if cfg.CMSBaseURL == "" {
		return files, files
	}
	logger.Info("cms content enabled", zap.String("base_url", cfg.CMSBaseURL))
	client := &http.Client{Timeout: cmsRequestTimeout}
	return files, content.NewRemoteStore(cfg.CMSBaseURL, files, client, logger.Named("cms"))
}
