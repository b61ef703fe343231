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
	"errors"
	"fmt"
)

// Key parse failure reasons. Match them with errors.Is on a *KeyParseError.
var (
	ErrNoPEMBlock      = errors.New("no PEM block found")
	ErrNotPublicKey    = errors.New("PEM block is not a public key")
	ErrNotRSA          = errors.New("public key is not RSA")
	ErrInvalidModulus  = errors.New("RSA modulus must be positive")
	ErrInvalidExponent = errors.New("RSA exponent must be positive")
)

// ErrEmptyKeySet is returned when a key set would be published without keys.
var ErrEmptyKeySet = errors.New("key set must contain at least one key")

// KeyParseError reports public key material that cannot be published.
type KeyParseError struct {
	Reason error
	Err    error
}

func (e *KeyParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("key parse error: %v: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("key parse error: %v", e.Reason)
}

// Unwrap exposes both the reason sentinel and the underlying decoder error.
func (e *KeyParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Reason, e.Err}
	}
	return []error{e.Reason}
}

func newKeyParseError(reason, err error) *KeyParseError {
	return &KeyParseError{Reason: reason, Err: err}
}

// DuplicateKeyIDError is returned when two keys in one set share a kid.
type DuplicateKeyIDError struct {
	KeyID string
}

func (e *DuplicateKeyIDError) Error() string {
	return fmt.Sprintf("duplicate key id %q in key set", e.KeyID)
}
