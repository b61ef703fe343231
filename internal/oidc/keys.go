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

package oidc

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"
	"time"
)

const pemTypePublicKey = "PUBLIC KEY"

// PublishedKey is an extra verification key kept in the key store,
// typically the previous signing key during a rotation overlap.
type PublishedKey struct {
	ID        string
	PublicKey string // PEM encoded SubjectPublicKeyInfo
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// KeyRepository lists additional keys to publish next to the configured one.
type KeyRepository interface {
	// ListPublishedKeys returns keys that have not expired, newest first.
	ListPublishedKeys(ctx context.Context) ([]*PublishedKey, error)
}

// ParsePublicKey decodes a PEM encoded SubjectPublicKeyInfo holding an RSA key.
func ParsePublicKey(pemData string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(pemData)))
	if block == nil {
		return nil, newKeyParseError(ErrNoPEMBlock, nil)
	}
	if block.Type != pemTypePublicKey {
		return nil, newKeyParseError(ErrNotPublicKey, fmt.Errorf("got block type %q", block.Type))
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, newKeyParseError(ErrNotPublicKey, err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, newKeyParseError(ErrNotRSA, fmt.Errorf("got %T", parsed))
	}
	if pub.N == nil || pub.N.Sign() <= 0 {
		return nil, newKeyParseError(ErrInvalidModulus, nil)
	}
	if pub.E <= 0 {
		return nil, newKeyParseError(ErrInvalidExponent, nil)
	}

	return pub, nil
}

// canonicalPEM re-encodes the key as PKIX PEM with LF line endings.
func canonicalPEM(pub *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypePublicKey, Bytes: der}), nil
}
