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
	"fmt"
	"log/slog"

	"github.com/opentrusty/oidc-discovery/internal/audit"
	"github.com/opentrusty/oidc-discovery/internal/config"
	"github.com/opentrusty/oidc-discovery/internal/observability/logger"
	"github.com/opentrusty/oidc-discovery/internal/oidc"
)

// newProvider builds the published documents from the configured key and,
// when repo is non-nil, the unexpired keys it lists. Every key that ends up
// in the key set is recorded on the audit log.
func newProvider(ctx context.Context, cfg *config.Config, repo oidc.KeyRepository, auditLogger audit.Logger) (*oidc.Provider, error) {
	var published []*oidc.PublishedKey
	if repo != nil {
		loadCtx, cancel := context.WithTimeout(ctx, cfg.KeyStore.LoadTimeout)
		defer cancel()

		keys, err := repo.ListPublishedKeys(loadCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to load published keys: %w", err)
		}
		published = keys

		auditLogger.Log(ctx, audit.Event{
			Type:     audit.TypeKeyStoreLoaded,
			ActorID:  "system",
			Resource: "published_keys",
			Metadata: map[string]any{"key_count": len(keys)},
		})
	}

	provider, err := oidc.NewProvider(cfg.Issuer, cfg.PublicKey, published...)
	if err != nil {
		return nil, err
	}

	for i, k := range provider.JWKSet().Keys {
		source := audit.SourceKeyStore
		if i == 0 {
			source = audit.SourceConfig
		}
		slog.InfoContext(ctx, "publishing verification key",
			logger.KeyID(k.Kid),
			logger.KeySource(source),
		)
		audit.KeyPublished(ctx, auditLogger, k.Kid, source)
	}

	configuration := provider.Configuration()
	audit.DiscoveryPublished(ctx, auditLogger, configuration.Issuer, configuration.JWKSURI)

	return provider, nil
}
