package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"erpviews-backend/internal/config"
)

// Start listens on cfg.HTTPPort and serves until ctx is cancelled.
func Start(ctx context.Context, cfg config.Config, router http.Handler, log *slog.Logger) error {
	ln, err := net.Listen("tcp", ":"+cfg.HTTPPort)
	if err != nil {
		return err
	}
	return Serve(ctx, cfg, ln, router, log)
}

// Serve runs the API on ln and drains in-flight requests once ctx is done.
func Serve(ctx context.Context, cfg config.Config, ln net.Listener, router http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("erp views api listening", "addr", ln.Addr().String(), "dataSource", cfg.DataSource)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	log.Info("erp views api draining", "timeout", cfg.ShutdownTimeout)
	return srv.Shutdown(shutdownCtx)
}
