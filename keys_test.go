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

package osshkeys

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// verifyKeyPair mirrors original_source's tests/keyfiles.rs verify_key: the
// fingerprint of a private key and of its derived public key must agree
// under both hash kinds.
func verifyKeyPair(t *testing.T, kp *KeyPair) {
	t.Helper()
	pub := kp.Public()

	md5Priv, err := kp.Fingerprint(FingerprintMD5)
	require.NoError(t, err)
	md5Pub, err := pub.Fingerprint(FingerprintMD5)
	require.NoError(t, err)
	require.Equal(t, md5Pub, md5Priv)

	sha256Priv, err := kp.Fingerprint(FingerprintSHA256)
	require.NoError(t, err)
	sha256Pub, err := pub.Fingerprint(FingerprintSHA256)
	require.NoError(t, err)
	require.Equal(t, sha256Pub, sha256Priv)
}

func TestGenerateKeyPairFingerprintAgreement(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmRSA, AlgorithmDSA, AlgorithmECDSA, AlgorithmEd25519} {
		t.Run(alg.String(), func(t *testing.T) {
			kp, err := GenerateKeyPair(alg, 2048)
			require.NoError(t, err)
			verifyKeyPair(t, kp)
		})
	}
}

func TestGenerateKeyPairRejectsUndersizedRSA(t *testing.T) {
	_, err := GenerateKeyPair(AlgorithmRSA, 512)
	require.Error(t, err)
	require.True(t, Is(err, KindInvalidKeySize))
}

func TestMarshalParsePrivateKeyRoundTrip(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmRSA, AlgorithmDSA, AlgorithmECDSA, AlgorithmEd25519} {
		t.Run(alg.String(), func(t *testing.T) {
			kp, err := GenerateKeyPair(alg, 2048)
			require.NoError(t, err)
			kp.SetComment("round-trip@example.com")

			pem, err := MarshalPrivateKey(kp, []byte("s3cret"), WithKDFRounds(4), WithSaltLength(8))
			require.NoError(t, err)

			got, err := ParsePrivateKey(pem, []byte("s3cret"))
			require.NoError(t, err)
			require.Equal(t, "round-trip@example.com", got.Comment())
			verifyKeyPair(t, got)

			_, err = ParsePrivateKey(pem, []byte("wrong"))
			require.Error(t, err)
			require.True(t, Is(err, KindIncorrectPass))
		})
	}
}

func TestMarshalParsePrivateKeyUnencrypted(t *testing.T) {
	kp, err := GenerateKeyPair(AlgorithmEd25519, 0)
	require.NoError(t, err)

	pem, err := MarshalPrivateKey(kp, nil)
	require.NoError(t, err)

	got, err := ParsePrivateKey(pem, nil)
	require.NoError(t, err)
	require.Equal(t, kp.Ed25519, got.Ed25519)
}

func TestSignVerifyEd25519(t *testing.T) {
	kp, err := GenerateKeyPair(AlgorithmEd25519, 0)
	require.NoError(t, err)

	sig, err := kp.Sign([]byte("8Kn9PPQV"))
	require.NoError(t, err)
	require.Len(t, sig, 64)

	ok, err := kp.Public().Verify([]byte("8Kn9PPQV"), sig)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = kp.Public().Verify([]byte("tampered"), sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSignVerifyRSAHashVariants(t *testing.T) {
	for _, hash := range []RSAHash{RSAHashSHA1, RSAHashSHA256, RSAHashSHA512} {
		kp, err := GenerateKeyPair(AlgorithmRSA, 2048)
		require.NoError(t, err)
		kp.RSAHash = hash

		sig, err := kp.Sign([]byte("payload"))
		require.NoError(t, err)

		pub := kp.Public()
		pub.RSAHash = hash
		ok, err := pub.Verify([]byte("payload"), sig)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestParsePrivateKeyRejectsGarbage(t *testing.T) {
	_, err := ParsePrivateKey([]byte("not a pem file at all"), nil)
	require.Error(t, err)
	require.True(t, Is(err, KindInvalidPemFormat))
}

func TestKeyPairPublicStructuralEquality(t *testing.T) {
	kp, err := GenerateKeyPair(AlgorithmECDSA, 384)
	require.NoError(t, err)
	pub := kp.Public()

	if diff := cmp.Diff(pub.Curve, CurveP384); diff != "" {
		t.Fatalf("unexpected curve (-got +want):\n%s", diff)
	}
}
