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

// Well-known paths served by this issuer.
const (
	DiscoveryPath = "/.well-known/openid-configuration"
	JWKSPath      = "/.well-known/jwks"
)

// OpenIDConfiguration represents OIDC Discovery metadata (OIDC Discovery Section 3)
type OpenIDConfiguration struct {
	Issuer                           string   `json:"issuer"`
	JWKSURI                          string   `json:"jwks_uri"`
	SubjectTypesSupported            []string `json:"subject_types_supported"`
	ResponseTypesSupported           []string `json:"response_types_supported"`
	ClaimsSupported                  []string `json:"claims_supported"`
	IDTokenSigningAlgValuesSupported []string `json:"id_token_signing_alg_values_supported"`
	ScopesSupported                  []string `json:"scopes_supported"`
}

// NewOpenIDConfiguration builds the discovery document for issuer.
// jwks_uri is issuer followed by JWKSPath; the issuer is used as given.
func NewOpenIDConfiguration(issuer string) OpenIDConfiguration {
	return OpenIDConfiguration{
		Issuer:                           issuer,
		JWKSURI:                          issuer + JWKSPath,
		SubjectTypesSupported:            Supported(CapabilitySubjectTypes),
		ResponseTypesSupported:           Supported(CapabilityResponseTypes),
		ClaimsSupported:                  Supported(CapabilityClaims),
		IDTokenSigningAlgValuesSupported: Supported(CapabilitySigningAlgorithms),
		ScopesSupported:                  Supported(CapabilityScopes),
	}
}
