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

// Command migrate applies the published key store schema.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/opentrusty/oidc-discovery/internal/config"
	"github.com/opentrusty/oidc-discovery/internal/observability/logger"
	"github.com/opentrusty/oidc-discovery/internal/store/postgres"
	"github.com/spf13/viper"
)

func main() {
	logger.InitLogger(logger.Config{Level: "info", Format: "text", ServiceName: "oidc-discovery-migrate"})

	v := viper.New()
	if len(os.Args) > 1 {
		v.Set("key_store.dsn", os.Args[1])
	}

	cfg, err := config.LoadKeyStore(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.New(ctx, postgres.Config{DSN: cfg.DSN, MaxConns: 1})
	if err != nil {
		slog.Error("failed to connect to key store", logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("applying schema", logger.Component("migrate"))
	if err := db.Migrate(ctx, postgres.InitialSchema); err != nil {
		slog.Error("migration failed", logger.Error(err))
		os.Exit(1)
	}
	slog.Info("migration successful", logger.Component("migrate"))
}
