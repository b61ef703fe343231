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

package audit

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Event types
const (
	TypeKeyPublished       = "key_published"
	TypeDiscoveryPublished = "discovery_published"
	TypeKeyStoreLoaded     = "key_store_loaded"
)

// Key sources recorded on TypeKeyPublished events.
const (
	SourceConfig   = "config"
	SourceKeyStore = "key_store"
)

// Event represents an auditable action
type Event struct {
	Type      string
	ActorID   string
	Resource  string
	Metadata  map[string]any
	Timestamp time.Time
}

// Logger defines the interface for audit logging
type Logger interface {
	Log(ctx context.Context, event Event)
}

// SlogLogger implements Logger using slog
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates an audit logger writing to the slog default.
func NewSlogLogger() *SlogLogger {
	return &SlogLogger{}
}

// NewSlogLoggerWith creates an audit logger writing to l.
func NewSlogLoggerWith(l *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: l}
}

// Log records an audit event
func (l *SlogLogger) Log(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	attrs := []any{
		slog.String("audit_type", event.Type),
		slog.String("resource", event.Resource),
		slog.Time("timestamp", event.Timestamp),
	}
	if event.ActorID != "" {
		attrs = append(attrs, slog.String("actor_id", event.ActorID))
	}

	if len(event.Metadata) > 0 {
		group := []any{}
		for k, v := range event.Metadata {
			if isSecret(k) {
				v = "[REDACTED]"
			}
			group = append(group, slog.Any(k, v))
		}
		attrs = append(attrs, slog.Group("metadata", group...))
	}
	attrs = append(attrs, slog.String("component", "audit"))

	logger := l.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "AUDIT_EVENT", attrs...)
}

// KeyPublished records that a verification key was added to the key set.
func KeyPublished(ctx context.Context, l Logger, kid, source string) {
	l.Log(ctx, Event{
		Type:     TypeKeyPublished,
		ActorID:  "system",
		Resource: kid,
		Metadata: map[string]any{"source": source},
	})
}

// DiscoveryPublished records the discovery document the process serves.
func DiscoveryPublished(ctx context.Context, l Logger, issuer, jwksURI string) {
	l.Log(ctx, Event{
		Type:     TypeDiscoveryPublished,
		ActorID:  "system",
		Resource: issuer,
		Metadata: map[string]any{"jwks_uri": jwksURI},
	})
}

var secretMarkers = []string{
	"password", "secret", "token", "credential", "authorization",
	"private_key", "api_key", "hash", "dsn",
}

// isSecret checks if a metadata key likely holds a secret
func isSecret(key string) bool {
	k := strings.ToLower(key)
	for _, s := range secretMarkers {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}
