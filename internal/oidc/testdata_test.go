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

// Fixture keys generated with openssl. Golden values below were computed
// independently of this package.
const (
	testKeyA = `-----BEGIN PUBLIC KEY-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEA344PKpR+uDJOCiRo+6p3
6zfS+WzCvFKCdVY/vNTLU3QTB1cJhIoh6S/xm8QjzwSEH/Q+m9FFh092U4JTmnIM
MM1uDIdlfmEN2wg5FVMDk90ASz4x7uZx59mpGUkc6RgWtG0aj/3WJdS/NzmFQKv8
dDL1z05Mlx88kppVCQak25CalvZY6nhMeo7UBE0hJxMLqqz4zgoTiH6qKz18dzfc
PpmmzPO89/LEMcf0muzaDUXKKtBQB7CGLmEcvas9CFFa566mK34cWWWjCvlab0S6
jEdrS2cg4wCiCzYds3iBFeSXDj0AD/QDKXtuJpPdtS5fAjXe8FczvKcQgt00z35g
eQIDAQAB
-----END PUBLIC KEY-----
`
	testKeyB = `-----BEGIN PUBLIC KEY-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEArjroI6H8Nz7fmZRhw0yR
3idJIHdw0Zu5BrqRbIlLmB21JUHGHaOlyPQ4vSKt9oP8Ob/Ef3ZlUTs1BdPxl1ih
XnCXB5TiUbcgSH6yTm6nM5HZwxiWftypvpczkzgfsW0wSxA4Czx869uU5/l25vsL
ouQiuYUoxG9a0Ct9QgxGlxWRyH5DaXUAKjn1y3E8g4EEjVeL0PoY49Ezr1V1O2Rc
tbBxWWnjI0EdbhXsKk2Y102kFNAdtBJxOim8LMurwauWn1UsIBsYfNAQuMxJ1Xky
TsP824lI6HHX88Thh05F+wpgc1xV1LF53vbsxu3XpHKf72BisHJ7U0w/dTdyoPdV
XwIDAQAB
-----END PUBLIC KEY-----
`
	testKeySmallExponent = `-----BEGIN PUBLIC KEY-----
MIGdMA0GCSqGSIb3DQEBAQUAA4GLADCBhwKBgQDCK6aSImKcNDh22Ta6ooLhpw45
FABTjjiMKdCSnRhfH2iKgqcRa5FvjZo0IUKQiJXuI8DynBALh6Dxa0uCqU/I4bOy
4DTJXIzAXcmBbmviE3ELJAQJ9L0zDDC9+nMdzp7sEypCSGLHtWHjz+i0nmNymH37
OjQb1XOeVdcNc17A0wIBAw==
-----END PUBLIC KEY-----
`
	testKeyEC = `-----BEGIN PUBLIC KEY-----
MFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAEkIUUcOp7lvZRH5V8itz1hwGNzwp6
eM7Bmelpk4UAkPya8qHq2fZb+hQwy7FuOUAFXeUR6yit1Zia1DuVANqa2Q==
-----END PUBLIC KEY-----
`
	testKeyPKCS1 = `-----BEGIN RSA PUBLIC KEY-----
MIIBCgKCAQEA344PKpR+uDJOCiRo+6p36zfS+WzCvFKCdVY/vNTLU3QTB1cJhIoh
6S/xm8QjzwSEH/Q+m9FFh092U4JTmnIMMM1uDIdlfmEN2wg5FVMDk90ASz4x7uZx
59mpGUkc6RgWtG0aj/3WJdS/NzmFQKv8dDL1z05Mlx88kppVCQak25CalvZY6nhM
eo7UBE0hJxMLqqz4zgoTiH6qKz18dzfcPpmmzPO89/LEMcf0muzaDUXKKtBQB7CG
LmEcvas9CFFa566mK34cWWWjCvlab0S6jEdrS2cg4wCiCzYds3iBFeSXDj0AD/QD
KXtuJpPdtS5fAjXe8FczvKcQgt00z35geQIDAQAB
-----END RSA PUBLIC KEY-----
`

	// testKeyAModulusHex is the modulus of testKeyA as printed by openssl.
	testKeyAModulusHex = "DF8E0F2A947EB8324E0A2468FBAA77EB37D2F96CC2BC528275563FBCD4CB537413075709848A21E92FF19BC423CF04841FF43E9BD145874F765382539A720C30CD6E0C87657E610DDB083915530393DD004B3E31EEE671E7D9A919491CE91816B46D1A8FFDD625D4BF37398540ABFC7432F5CF4E4C971F3C929A550906A4DB909A96F658EA784C7A8ED4044D2127130BAAACF8CE0A13887EAA2B3D7C7737DC3E99A6CCF3BCF7F2C431C7F49AECDA0D45CA2AD05007B0862E611CBDAB3D08515AE7AEA62B7E1C5965A30AF95A6F44BA8C476B4B6720E300A20B361DB3788115E4970E3D000FF403297B6E2693DDB52E5F0235DEF05733BCA71082DD34CF7E6079"
	testKeyAExponent   = 65537
	testKeyAN          = "344PKpR-uDJOCiRo-6p36zfS-WzCvFKCdVY_vNTLU3QTB1cJhIoh6S_xm8QjzwSEH_Q-m9FFh092U4JTmnIMMM1uDIdlfmEN2wg5FVMDk90ASz4x7uZx59mpGUkc6RgWtG0aj_3WJdS_NzmFQKv8dDL1z05Mlx88kppVCQak25CalvZY6nhMeo7UBE0hJxMLqqz4zgoTiH6qKz18dzfcPpmmzPO89_LEMcf0muzaDUXKKtBQB7CGLmEcvas9CFFa566mK34cWWWjCvlab0S6jEdrS2cg4wCiCzYds3iBFeSXDj0AD_QDKXtuJpPdtS5fAjXe8FczvKcQgt00z35geQ"
	testKeyAE          = "AQAB"
	testKeyAKid        = "9e3a22d1-ec38-555b-a446-6c1f69b237c1"
	testKeyBKid        = "1651d0a6-0d3c-515b-8dae-5955ef0e4535"
	testKeySmallExpKid = "a6772725-7ba6-5eea-b4ef-237904676e41"
)
