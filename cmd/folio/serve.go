package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/folio/internal/config"
	"finitefield.org/folio/internal/httpserver"
	"finitefield.org/folio/internal/observability"
)

type serveFlags struct {
	addr       string
	contentDir string
	dev        bool
}

func newServeCommand(envFile *string) *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context(), config.WithEnvFile(*envFile))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyServeFlags(cmd, &cfg, flags)
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (overrides FOLIO_HTTP_ADDR)")
	cmd.Flags().StringVar(&flags.contentDir, "content", "", "content directory (overrides FOLIO_CONTENT_DIR)")
	cmd.Flags().BoolVar(&flags.dev, "dev", false, "reload content when files change")
	return cmd
}

func applyServeFlags(cmd *cobra.Command, cfg *config.Config, flags serveFlags) {
	if cmd.Flags().Changed("addr") {
		cfg.Server.Address = flags.addr
	}
	if cmd.Flags().Changed("content") {
		cfg.Content.Dir = flags.contentDir
	}
	if cmd.Flags().Changed("dev") {
		cfg.Server.Dev = flags.dev
	}
}

func runServe(parent context.Context, cfg config.Config) error {
	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	files, store := buildStore(cfg.Content, logger)
	if cfg.Server.Dev {
		if err := files.Watch(ctx); err != nil {
			logger.Warn("content watcher disabled", zap.Error(err))
		}
	}

	srv, err := httpserver.New(httpserver.Config{
		Address:      cfg.Server.Address,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		SiteTitle:    cfg.Site.Title,
		PostsLimit:   cfg.Site.PostsLimit,
		Store:        store,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("folio server listening",
		zap.String("addr", cfg.Server.Address),
		zap.String("content_dir", cfg.Content.Dir),
		zap.Bool("dev", cfg.Server.Dev),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("folio server stopped")
	return nil
}
