/*
Copyright 2025 Gravitational, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package opensshv1

import (
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitational/osshkeys/internal/ossherr"
	"github.com/gravitational/osshkeys/internal/sshkey"
)

func genRSA(t *testing.T) *sshkey.KeyPair {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return &sshkey.KeyPair{Algorithm: sshkey.AlgorithmRSA, RSA: priv, RSAHash: sshkey.RSAHashSHA256}
}

func genDSA(t *testing.T) *sshkey.KeyPair {
	t.Helper()
	var params dsa.Parameters
	require.NoError(t, dsa.GenerateParameters(&params, rand.Reader, dsa.L1024N160))
	var priv dsa.PrivateKey
	priv.Parameters = params
	require.NoError(t, dsa.GenerateKey(&priv, rand.Reader))
	return &sshkey.KeyPair{Algorithm: sshkey.AlgorithmDSA, DSA: &priv}
}

func genECDSA(t *testing.T, curve elliptic.Curve, c sshkey.Curve) *sshkey.KeyPair {
	t.Helper()
	priv, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return &sshkey.KeyPair{Algorithm: sshkey.AlgorithmECDSA, ECDSA: priv, Curve: c}
}

func genEd25519(t *testing.T) *sshkey.KeyPair {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return &sshkey.KeyPair{Algorithm: sshkey.AlgorithmEd25519, Ed25519: priv}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := map[string]func(t *testing.T) *sshkey.KeyPair{
		"rsa":     genRSA,
		"dsa":     genDSA,
		"ecdsaP256": func(t *testing.T) *sshkey.KeyPair { return genECDSA(t, elliptic.P256(), sshkey.CurveP256) },
		"ecdsaP384": func(t *testing.T) *sshkey.KeyPair { return genECDSA(t, elliptic.P384(), sshkey.CurveP384) },
		"ecdsaP521": func(t *testing.T) *sshkey.KeyPair { return genECDSA(t, elliptic.P521(), sshkey.CurveP521) },
		"ed25519":   genEd25519,
	}

	for name, gen := range cases {
		t.Run(name+"/unencrypted", func(t *testing.T) {
			kp := gen(t)
			kp.SetComment("test@example.com")

			blob, err := Encode(kp, nil, EncodeOptions{CipherName: "aes256-ctr", KDFRounds: 8, SaltLength: 16})
			require.NoError(t, err)

			got, err := Decode(blob, nil)
			require.NoError(t, err)
			require.Equal(t, "test@example.com", got.Comment())
			require.Equal(t, kp.Algorithm, got.Algorithm)
		})

		t.Run(name+"/encrypted", func(t *testing.T) {
			kp := gen(t)
			kp.SetComment("secret@example.com")

			blob, err := Encode(kp, []byte("hunter2"), EncodeOptions{CipherName: "aes256-ctr", KDFRounds: 8, SaltLength: 16})
			require.NoError(t, err)

			_, err = Decode(blob, nil)
			require.Error(t, err)
			require.True(t, ossherr.Is(err, ossherr.KindIncorrectPass))

			got, err := Decode(blob, []byte("hunter2"))
			require.NoError(t, err)
			require.Equal(t, "secret@example.com", got.Comment())
		})
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode([]byte("not-an-openssh-key"), nil)
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindInvalidKeyFormat))
}

func TestDecodeRejectsMultipleKeys(t *testing.T) {
	kp := genEd25519(t)
	blob, err := Encode(kp, nil, EncodeOptions{CipherName: "aes256-ctr", KDFRounds: 8, SaltLength: 16})
	require.NoError(t, err)

	// Flip n_keys (the uint32 right after the kdf blob's empty string) from
	// 1 to 2; easiest anchor is the fixed four-byte pattern 0,0,0,1 that
	// follows "none"+"none"+empty-kdf-blob for an unencrypted container.
	marker := []byte{0, 0, 0, 1}
	idx := indexOf(blob, marker)
	require.GreaterOrEqual(t, idx, 0)
	corrupted := append([]byte(nil), blob...)
	corrupted[idx+3] = 2

	_, err = Decode(corrupted, nil)
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindInvalidKeyFormat))
}

func indexOf(haystack, needle []byte) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
