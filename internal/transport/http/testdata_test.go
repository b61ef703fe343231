package http

import (
	"testing"

	"github.com/opentrusty/oidc-discovery/internal/oidc"
)

const testIssuer = "https://oidc.example.com"

const testPublicKey = `-----BEGIN PUBLIC KEY-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEA344PKpR+uDJOCiRo+6p3
6zfS+WzCvFKCdVY/vNTLU3QTB1cJhIoh6S/xm8QjzwSEH/Q+m9FFh092U4JTmnIM
MM1uDIdlfmEN2wg5FVMDk90ASz4x7uZx59mpGUkc6RgWtG0aj/3WJdS/NzmFQKv8
dDL1z05Mlx88kppVCQak25CalvZY6nhMeo7UBE0hJxMLqqz4zgoTiH6qKz18dzfc
PpmmzPO89/LEMcf0muzaDUXKKtBQB7CGLmEcvas9CFFa566mK34cWWWjCvlab0S6
jEdrS2cg4wCiCzYds3iBFeSXDj0AD/QDKXtuJpPdtS5fAjXe8FczvKcQgt00z35g
eQIDAQAB
-----END PUBLIC KEY-----
`

// kid of testPublicKey.
const testKeyID = "9e3a22d1-ec38-555b-a446-6c1f69b237c1"

func newTestProvider(t testing.TB) *oidc.Provider {
	t.Helper()
	p, err := oidc.NewProvider(testIssuer, testPublicKey)
	if err != nil {
		t.Fatalf("failed to build provider: %v", err)
	}
	return p
}
