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

// JWKSet represents a JSON Web Key Set (RFC 7517 Section 5)
type JWKSet struct {
	Keys []JWK `json:"keys"`
}

// NewJWKSet wraps keys in construction order. Every kid must be unique.
func NewJWKSet(keys ...JWK) (JWKSet, error) {
	if len(keys) == 0 {
		return JWKSet{}, ErrEmptyKeySet
	}

	seen := make(map[string]struct{}, len(keys))
	set := make([]JWK, 0, len(keys))
	for _, k := range keys {
		if _, dup := seen[k.Kid]; dup {
			return JWKSet{}, &DuplicateKeyIDError{KeyID: k.Kid}
		}
		seen[k.Kid] = struct{}{}
		set = append(set, k)
	}

	return JWKSet{Keys: set}, nil
}

// lookup returns the key with the given kid.
func (s JWKSet) lookup(kid string) (JWK, bool) {
	for _, k := range s.Keys {
		if k.Kid == kid {
			return k, true
		}
	}
	return JWK{}, false
}
