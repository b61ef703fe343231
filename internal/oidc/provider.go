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
	"encoding/json"
	"fmt"
	"slices"
)

// Provider holds the discovery document and key set of one issuer.
// Both are built once by NewProvider and never change afterwards, so a
// Provider is safe for concurrent use without locking.
type Provider struct {
	configuration     OpenIDConfiguration
	keySet            JWKSet
	configurationJSON []byte
	keySetJSON        []byte
}

// NewProvider builds the published documents for issuer. publicKeyPEM is the
// configured signing key and is always listed first; published keys follow
// in the order given.
func NewProvider(issuer, publicKeyPEM string, published ...*PublishedKey) (*Provider, error) {
	primary, err := jwkFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("configured public key: %w", err)
	}

	keys := []JWK{primary}
	for _, pk := range published {
		k, err := jwkFromPEM(pk.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("published key %s: %w", pk.ID, err)
		}
		keys = append(keys, k)
	}

	keySet, err := NewJWKSet(keys...)
	if err != nil {
		return nil, err
	}
	configuration := NewOpenIDConfiguration(issuer)

	keySetJSON, err := json.Marshal(keySet)
	if err != nil {
		return nil, fmt.Errorf("failed to encode key set: %w", err)
	}
	configurationJSON, err := json.Marshal(configuration)
	if err != nil {
		return nil, fmt.Errorf("failed to encode discovery document: %w", err)
	}

	return &Provider{
		configuration:     configuration,
		keySet:            keySet,
		configurationJSON: configurationJSON,
		keySetJSON:        keySetJSON,
	}, nil
}

func jwkFromPEM(pemData string) (JWK, error) {
	pub, err := ParsePublicKey(pemData)
	if err != nil {
		return JWK{}, err
	}
	return NewJWK(pub)
}

// Configuration returns the discovery document.
func (p *Provider) Configuration() OpenIDConfiguration {
	return p.configuration
}

// JWKSet returns the published key set.
func (p *Provider) JWKSet() JWKSet {
	return JWKSet{Keys: slices.Clone(p.keySet.Keys)}
}

// ConfigurationJSON returns the encoded discovery document. Callers must not
// modify the returned slice.
func (p *Provider) ConfigurationJSON() []byte {
	return p.configurationJSON
}

// JWKSetJSON returns the encoded key set. Callers must not modify the
// returned slice.
func (p *Provider) JWKSetJSON() []byte {
	return p.keySetJSON
}
