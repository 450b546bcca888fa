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

package cipher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitational/osshkeys/internal/ossherr"
)

func TestSealOpenRoundTrip(t *testing.T) {
	for _, name := range []string{
		"aes128-cbc", "aes192-cbc", "aes256-cbc",
		"rijndael-cbc@lysator.liu.se",
		"aes128-ctr", "aes192-ctr", "aes256-ctr",
		"3des-cbc",
	} {
		t.Run(name, func(t *testing.T) {
			plaintext := []byte("the quick brown fox jumps over the lazy dog")
			kdfName, kdfBlob, ciphertext, err := Seal(name, 8, 16, []byte("correct horse battery staple"), plaintext)
			require.NoError(t, err)
			require.Equal(t, "bcrypt", kdfName)

			got, err := Open(name, kdfName, kdfBlob, []byte("correct horse battery staple"), ciphertext)
			require.NoError(t, err)
			require.Equal(t, PadTo(plaintext, mustSpec(t, name).BlockSize), got)
		})
	}
}

func TestSealOpenRoundTripNone(t *testing.T) {
	plaintext := []byte("unencrypted body")
	kdfName, kdfBlob, ciphertext, err := Seal("none", 8, 16, nil, plaintext)
	require.NoError(t, err)
	require.Equal(t, "none", kdfName)
	require.Empty(t, kdfBlob)

	got, err := Open("none", "none", nil, nil, ciphertext)
	require.NoError(t, err)
	require.Equal(t, PadTo(plaintext, 8), got)
}

func TestOpenWrongPassphraseStillDecryptsToGarbage(t *testing.T) {
	// Wrong-passphrase detection is the caller's job (the inner checksum
	// pair), not the cipher's: a wrong key still "succeeds" at decrypting,
	// it just produces garbage plaintext.
	plaintext := []byte("0123456789abcdef")
	_, kdfBlob, ciphertext, err := Seal("aes256-ctr", 4, 16, []byte("right"), plaintext)
	require.NoError(t, err)

	got, err := Open("aes256-ctr", "bcrypt", kdfBlob, []byte("wrong"), ciphertext)
	require.NoError(t, err)
	require.NotEqual(t, PadTo(plaintext, 16), got)
}

func TestOpenRequiresPassphraseWhenEncrypted(t *testing.T) {
	_, kdfBlob, ciphertext, err := Seal("aes256-ctr", 4, 16, []byte("pw"), []byte("secret material"))
	require.NoError(t, err)

	_, err = Open("aes256-ctr", "bcrypt", kdfBlob, nil, ciphertext)
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindIncorrectPass))
}

func TestOpenRejectsUnsupportedCipher(t *testing.T) {
	_, err := Open("rot13", "none", nil, nil, []byte("12345678"))
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindUnsupportCipher))
}

func TestOpenRejectsBadCiphertextLength(t *testing.T) {
	_, err := Open("aes256-cbc", "bcrypt", nil, []byte("pw"), []byte("short"))
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindInvalidKeyFormat))
}

func TestOpenRejectsEmptyCiphertext(t *testing.T) {
	_, err := Open("none", "none", nil, nil, nil)
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindInvalidKeyFormat))
}

func TestOpenRejectsBcryptWithNoneCipher(t *testing.T) {
	// Redesign flag: cipher "none" paired with kdf "bcrypt" is always
	// rejected rather than running the KDF unnecessarily.
	_, err := Open("none", "bcrypt", []byte{0, 0, 0, 1, 's', 0, 0, 0, 4}, nil, []byte("12345678"))
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindInvalidKeyFormat))
}

func TestOpenRejectsNoneKdfWithRealCipher(t *testing.T) {
	_, err := Open("aes256-cbc", "none", nil, []byte("pw"), make([]byte, 16))
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindInvalidKeyFormat))
}

func TestOpenRejectsUnknownKDF(t *testing.T) {
	_, err := Open("aes256-cbc", "pbkdf2", nil, []byte("pw"), make([]byte, 16))
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindUnsupportCipher))
}

func TestPadToAndCheckPadding(t *testing.T) {
	body := []byte{1, 2, 3}
	padded := PadTo(body, 8)
	require.Len(t, padded, 8)
	require.NoError(t, CheckPadding(padded[len(body):]))

	padded[7] = 0xff
	require.Error(t, CheckPadding(padded[len(body):]))
}

func TestPadToNoOpWhenAligned(t *testing.T) {
	body := make([]byte, 16)
	require.Equal(t, body, PadTo(body, 16))
}

func mustSpec(t *testing.T, name string) Spec {
	t.Helper()
	s, err := Lookup(name)
	require.NoError(t, err)
	return s
}
