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

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opentrusty/oidc-discovery/internal/oidc"
)

// KeyRepository implements oidc.KeyRepository
type KeyRepository struct {
	db  *DB
	now func() time.Time
}

var _ oidc.KeyRepository = (*KeyRepository)(nil)

// NewKeyRepository creates a new key repository
func NewKeyRepository(db *DB) *KeyRepository {
	return &KeyRepository{db: db, now: time.Now}
}

// Create stores a key to be published on the next start
func (r *KeyRepository) Create(ctx context.Context, key *oidc.PublishedKey) error {
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO published_keys (id, public_key, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, key.ID, key.PublicKey, key.CreatedAt, key.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create published key: %w", err)
	}
	return nil
}

// ListPublishedKeys retrieves keys that have not expired, newest first
func (r *KeyRepository) ListPublishedKeys(ctx context.Context) ([]*oidc.PublishedKey, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, public_key, created_at, expires_at
		FROM published_keys
		WHERE expires_at IS NULL OR expires_at > $1
		ORDER BY created_at DESC, id
	`, r.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list published keys: %w", err)
	}

	keys, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*oidc.PublishedKey, error) {
		var key oidc.PublishedKey
		if err := row.Scan(&key.ID, &key.PublicKey, &key.CreatedAt, &key.ExpiresAt); err != nil {
			return nil, err
		}
		return &key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan published key: %w", err)
	}

	return keys, nil
}

// Delete removes a published key
func (r *KeyRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.pool.Exec(ctx, `DELETE FROM published_keys WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete published key: %w", err)
	}
	return nil
}
