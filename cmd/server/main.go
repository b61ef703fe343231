// Copyright 2026 The OpenTrusty Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opentrusty/oidc-discovery/internal/audit"
	"github.com/opentrusty/oidc-discovery/internal/config"
	"github.com/opentrusty/oidc-discovery/internal/observability/logger"
	"github.com/opentrusty/oidc-discovery/internal/observability/metrics"
	"github.com/opentrusty/oidc-discovery/internal/observability/tracing"
	"github.com/opentrusty/oidc-discovery/internal/oidc"
	"github.com/opentrusty/oidc-discovery/internal/store/postgres"
	transportHTTP "github.com/opentrusty/oidc-discovery/internal/transport/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.InitLogger(logger.Config{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
		OTELEnabled: cfg.Observability.OTELEnabled,
	})
	slog.Info("starting oidc discovery server", logger.Issuer(cfg.Issuer))

	ctx := context.Background()

	// Initialize tracer
	tracer, err := tracing.New(ctx, tracing.Config{
		Enabled:        cfg.Observability.OTELEnabled,
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		SamplingRate:   1.0,
	})
	if err != nil {
		slog.Error("failed to initialize tracer", logger.Error(err))
		os.Exit(1)
	}
	defer tracer.Shutdown(ctx)

	// Initialize meter
	instruments, err := metrics.NewInstruments(metrics.New(metrics.Config{
		Enabled:     cfg.Observability.OTELEnabled,
		ServiceName: cfg.Observability.ServiceName,
	}))
	if err != nil {
		slog.Error("failed to initialize meter", logger.Error(err))
		os.Exit(1)
	}

	// Load additional published keys
	var keyRepo oidc.KeyRepository
	if cfg.KeyStore.Enabled() {
		db, err := openKeyStore(ctx, cfg.KeyStore)
		if err != nil {
			slog.Error("failed to connect to key store", logger.Error(err))
			os.Exit(1)
		}
		keyRepo = postgres.NewKeyRepository(db)
		defer db.Close()
	}

	// Build both documents before the listener opens
	auditLogger := audit.NewSlogLogger()
	provider, err := newProvider(ctx, cfg, keyRepo, auditLogger)
	if err != nil {
		slog.Error("failed to build discovery documents", logger.Error(err))
		os.Exit(1)
	}
	instruments.RecordPublishedKeys(ctx, len(provider.JWKSet().Keys))

	handler := transportHTTP.NewHandler(provider, cfg.Observability.ServiceName)
	router := transportHTTP.NewRouter(handler, transportHTTP.RouterConfig{
		RequestTimeout: cfg.Server.WriteTimeout,
		Instruments:    instruments,
	})

	// Create HTTP server
	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Bind before serving so an unusable address fails startup
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("failed to bind listener", logger.Error(err))
		os.Exit(1)
	}

	// Start server
	go func() {
		slog.Info("starting http server", logger.Component("server"), logger.Operation("listen"))
		slog.Info(fmt.Sprintf("listening on %s", addr))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", logger.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", logger.Error(err))
	}

	slog.Info("server stopped")
}

func openKeyStore(ctx context.Context, cfg config.KeyStoreConfig) (*postgres.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer cancel()

	return postgres.New(ctx, postgres.Config{
		DSN:      cfg.DSN,
		MaxConns: cfg.MaxConns,
	})
}
