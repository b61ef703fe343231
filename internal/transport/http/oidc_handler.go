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

package http

import (
	"net/http"
)

// Discovery returns the OpenID Connect metadata (OIDC Discovery Section 4)
// @Summary OIDC Discovery
// @Description Returns OpenID Connect configuration metadata
// @Tags OIDC
// @Produce json
// @Success 200 {object} oidc.OpenIDConfiguration
// @Router /.well-known/openid-configuration [get]
func (h *Handler) Discovery(w http.ResponseWriter, r *http.Request) {
	// OIDC Discovery Section 4.2: Content-Type MUST be application/json
	respondRaw(w, http.StatusOK, h.configurationJSON)
}

// JWKS returns the JSON Web Key Set (RFC 7517)
// @Summary JWKS
// @Description Returns the JSON Web Key Set for verifying ID token signatures
// @Tags OIDC
// @Produce json
// @Success 200 {object} oidc.JWKSet
// @Router /.well-known/jwks [get]
func (h *Handler) JWKS(w http.ResponseWriter, r *http.Request) {
	// RFC 7517 Section 8.1: Content-Type SHOULD be application/jwk-set+json
	// but OIDC clients often expect application/json.
	respondRaw(w, http.StatusOK, h.keySetJSON)
}
