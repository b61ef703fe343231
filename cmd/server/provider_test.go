package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opentrusty/oidc-discovery/internal/audit"
	"github.com/opentrusty/oidc-discovery/internal/config"
	"github.com/opentrusty/oidc-discovery/internal/oidc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	configuredKey = `-----BEGIN PUBLIC KEY-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEA344PKpR+uDJOCiRo+6p3
6zfS+WzCvFKCdVY/vNTLU3QTB1cJhIoh6S/xm8QjzwSEH/Q+m9FFh092U4JTmnIM
MM1uDIdlfmEN2wg5FVMDk90ASz4x7uZx59mpGUkc6RgWtG0aj/3WJdS/NzmFQKv8
dDL1z05Mlx88kppVCQak25CalvZY6nhMeo7UBE0hJxMLqqz4zgoTiH6qKz18dzfc
PpmmzPO89/LEMcf0muzaDUXKKtBQB7CGLmEcvas9CFFa566mK34cWWWjCvlab0S6
jEdrS2cg4wCiCzYds3iBFeSXDj0AD/QDKXtuJpPdtS5fAjXe8FczvKcQgt00z35g
eQIDAQAB
-----END PUBLIC KEY-----
`

	rotatedKey = `-----BEGIN PUBLIC KEY-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEArjroI6H8Nz7fmZRhw0yR
3idJIHdw0Zu5BrqRbIlLmB21JUHGHaOlyPQ4vSKt9oP8Ob/Ef3ZlUTs1BdPxl1ih
XnCXB5TiUbcgSH6yTm6nM5HZwxiWftypvpczkzgfsW0wSxA4Czx869uU5/l25vsL
ouQiuYUoxG9a0Ct9QgxGlxWRyH5DaXUAKjn1y3E8g4EEjVeL0PoY49Ezr1V1O2Rc
tbBxWWnjI0EdbhXsKk2Y102kFNAdtBJxOim8LMurwauWn1UsIBsYfNAQuMxJ1Xky
TsP824lI6HHX88Thh05F+wpgc1xV1LF53vbsxu3XpHKf72BisHJ7U0w/dTdyoPdV
XwIDAQAB
-----END PUBLIC KEY-----
`

	configuredKid = "9e3a22d1-ec38-555b-a446-6c1f69b237c1"
	rotatedKid    = "1651d0a6-0d3c-515b-8dae-5955ef0e4535"
)

type recordingAuditLogger struct {
	events []audit.Event
}

func (l *recordingAuditLogger) Log(_ context.Context, e audit.Event) {
	l.events = append(l.events, e)
}

func (l *recordingAuditLogger) ofType(typ string) []audit.Event {
	var out []audit.Event
	for _, e := range l.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

type stubKeyRepo struct {
	keys []*oidc.PublishedKey
	err  error
}

func (r *stubKeyRepo) ListPublishedKeys(ctx context.Context) ([]*oidc.PublishedKey, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("expected a load deadline")
	}
	return r.keys, r.err
}

func testConfig() *config.Config {
	return &config.Config{
		Issuer:    "https://issuer.example.com",
		PublicKey: configuredKey,
		KeyStore:  config.KeyStoreConfig{LoadTimeout: 10 * time.Second},
	}
}

func TestNewProvider_ConfiguredKeyOnly(t *testing.T) {
	auditLog := &recordingAuditLogger{}

	provider, err := newProvider(context.Background(), testConfig(), nil, auditLog)
	require.NoError(t, err)

	keys := provider.JWKSet().Keys
	require.Len(t, keys, 1)
	assert.Equal(t, configuredKid, keys[0].Kid)

	published := auditLog.ofType(audit.TypeKeyPublished)
	require.Len(t, published, 1)
	assert.Equal(t, configuredKid, published[0].Resource)
	assert.Equal(t, audit.SourceConfig, published[0].Metadata["source"])

	discovery := auditLog.ofType(audit.TypeDiscoveryPublished)
	require.Len(t, discovery, 1)
	assert.Equal(t, "https://issuer.example.com/.well-known/jwks", discovery[0].Metadata["jwks_uri"])

	assert.Empty(t, auditLog.ofType(audit.TypeKeyStoreLoaded))
}

func TestNewProvider_WithKeyStore(t *testing.T) {
	auditLog := &recordingAuditLogger{}
	repo := &stubKeyRepo{keys: []*oidc.PublishedKey{{ID: "previous", PublicKey: rotatedKey}}}

	provider, err := newProvider(context.Background(), testConfig(), repo, auditLog)
	require.NoError(t, err)

	keys := provider.JWKSet().Keys
	require.Len(t, keys, 2)
	assert.Equal(t, configuredKid, keys[0].Kid)
	assert.Equal(t, rotatedKid, keys[1].Kid)

	published := auditLog.ofType(audit.TypeKeyPublished)
	require.Len(t, published, 2)
	assert.Equal(t, audit.SourceKeyStore, published[1].Metadata["source"])
	assert.Len(t, auditLog.ofType(audit.TypeKeyStoreLoaded), 1)
}

func TestNewProvider_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
		repo   oidc.KeyRepository
		target error
	}{
		{
			name:   "empty key",
			mutate: func(c *config.Config) { c.PublicKey = "" },
			target: oidc.ErrNoPEMBlock,
		},
		{
			name: "store error",
			repo: &stubKeyRepo{err: errors.New("connection refused")},
		},
		{
			name: "store repeats configured key",
			repo: &stubKeyRepo{keys: []*oidc.PublishedKey{{ID: "dup", PublicKey: configuredKey}}},
		},
		{
			name:   "store key is garbage",
			repo:   &stubKeyRepo{keys: []*oidc.PublishedKey{{ID: "bad", PublicKey: "not a key"}}},
			target: oidc.ErrNoPEMBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			auditLog := &recordingAuditLogger{}

			provider, err := newProvider(context.Background(), cfg, tt.repo, auditLog)
			require.Error(t, err)
			assert.Nil(t, provider)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			assert.Empty(t, auditLog.ofType(audit.TypeKeyPublished))
		})
	}
}

func TestNewProvider_DuplicateKeyID(t *testing.T) {
	repo := &stubKeyRepo{keys: []*oidc.PublishedKey{{ID: "dup", PublicKey: configuredKey}}}

	_, err := newProvider(context.Background(), testConfig(), repo, &recordingAuditLogger{})

	var dupErr *oidc.DuplicateKeyIDError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, configuredKid, dupErr.KeyID)
}
