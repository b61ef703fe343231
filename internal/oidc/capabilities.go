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

// Capability names a "*_supported" list of the discovery document.
type Capability string

const (
	CapabilitySubjectTypes      Capability = "subject_types_supported"
	CapabilityResponseTypes     Capability = "response_types_supported"
	CapabilityClaims            Capability = "claims_supported"
	CapabilitySigningAlgorithms Capability = "id_token_signing_alg_values_supported"
	CapabilityScopes            Capability = "scopes_supported"
)

// Claims carried by issued ID tokens. The workload claims identify the
// pipeline step that requested the token.
const (
	ClaimSubject                   = "sub"
	ClaimAudience                  = "aud"
	ClaimExpiry                    = "exp"
	ClaimIssuedAt                  = "iat"
	ClaimIssuer                    = "iss"
	ClaimBranchName                = "branchName"
	ClaimCompliant                 = "compliant"
	ClaimDeploymentEnvironmentUUID = "deploymentEnvironmentUuid"
	ClaimPipelineUUID              = "pipelineUuid"
	ClaimRepositoryUUID            = "repositoryUuid"
	ClaimStepUUID                  = "stepUuid"
	ClaimWorkspaceUUID             = "workspaceUuid"
)

// capabilities is the only place the advertised feature set is declared.
// Never list something the issuer does not do.
var capabilities = map[Capability][]string{
	CapabilitySubjectTypes:      {"public"},
	CapabilityResponseTypes:     {"id_token"},
	CapabilitySigningAlgorithms: {string(AlgorithmRS256)},
	CapabilityScopes:            {"openid"},
	CapabilityClaims: {
		ClaimSubject,
		ClaimAudience,
		ClaimExpiry,
		ClaimIssuedAt,
		ClaimIssuer,
		ClaimBranchName,
		ClaimCompliant,
		ClaimDeploymentEnvironmentUUID,
		ClaimPipelineUUID,
		ClaimRepositoryUUID,
		ClaimStepUUID,
		ClaimWorkspaceUUID,
	},
}

// Supported returns a copy of the values declared for a capability.
func Supported(c Capability) []string {
	values := capabilities[c]
	out := make([]string, len(values))
	copy(out, values)
	return out
}
