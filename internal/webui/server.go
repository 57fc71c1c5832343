// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package webui serves the prediction form over HTTP. It is a thin
// presentation adapter: all validation lives in internal/form and all
// computation in internal/predictor.
package webui

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"

	"github.com/pdiddy/pace-engine/pkg/types"
)

// Serve runs the web UI until SIGINT or SIGTERM, then shuts down
// gracefully within cfg.ShutdownTimeout.
func Serve(logger hclog.Logger, cfg types.ServerConfig) error {
	handler := NewHandler(logger)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     logger.StandardLogger(&hclog.StandardLoggerOptions{}),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("got signal, shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
