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
	"testing"
)

func BenchmarkKeyID(b *testing.B) {
	pub, err := ParsePublicKey(testKeyA)
	if err != nil {
		b.Fatalf("failed to parse key: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := KeyID(pub); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewProvider(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := NewProvider("https://auth.example.com", testKeyA); err != nil {
			b.Fatal(err)
		}
	}
}
