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
	"crypto/rsa"
	"encoding/base64"
	"math/big"

	"github.com/google/uuid"
)

// KeyType represents the JWK "kty" parameter (RFC 7518 Section 6.1)
type KeyType string

const (
	KeyTypeRSA KeyType = "RSA"
)

// Algorithm represents the JWS "alg" parameter (RFC 7518 Section 3.1)
type Algorithm string

const (
	AlgorithmRS256 Algorithm = "RS256"
)

// keyIDNamespace seeds the name-based UUID used as kid.
var keyIDNamespace = uuid.NameSpaceOID

// JWK represents a JSON Web Key (RFC 7517) for an RSA verification key.
// Field order is the serialised order.
type JWK struct {
	Kid string    `json:"kid"`
	Kty KeyType   `json:"kty"`
	Alg Algorithm `json:"alg"`
	E   string    `json:"e"`
	N   string    `json:"n"`
}

// NewJWK converts an RSA public key into its published JWK form.
func NewJWK(pub *rsa.PublicKey) (JWK, error) {
	kid, err := KeyID(pub)
	if err != nil {
		return JWK{}, err
	}

	return JWK{
		Kid: kid,
		Kty: KeyTypeRSA,
		Alg: AlgorithmRS256,
		E:   encodeUint(big.NewInt(int64(pub.E))),
		N:   encodeUint(pub.N),
	}, nil
}

// KeyID derives a stable kid: a SHA-1 name-based UUID over the canonical
// PEM encoding of the key. Formatting differences in the configured PEM do
// not change the result.
func KeyID(pub *rsa.PublicKey) (string, error) {
	canonical, err := canonicalPEM(pub)
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(keyIDNamespace, canonical).String(), nil
}

// encodeUint renders x as unpadded base64url over its minimal big-endian
// bytes (RFC 7518 Section 2, Base64urlUInt). Zero encodes as a single 0x00.
func encodeUint(x *big.Int) string {
	b := x.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// decodeUint is the inverse of encodeUint.
func decodeUint(s string) (*big.Int, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// PublicKey reconstructs the RSA key the JWK was built from.
func (k JWK) PublicKey() (*rsa.PublicKey, error) {
	n, err := decodeUint(k.N)
	if err != nil {
		return nil, newKeyParseError(ErrInvalidModulus, err)
	}
	e, err := decodeUint(k.E)
	if err != nil {
		return nil, newKeyParseError(ErrInvalidExponent, err)
	}
	if n.Sign() <= 0 {
		return nil, newKeyParseError(ErrInvalidModulus, nil)
	}
	if !e.IsInt64() || e.Sign() <= 0 || e.Int64() > int64(^uint32(0)>>1) {
		return nil, newKeyParseError(ErrInvalidExponent, nil)
	}
	return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil
}
