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
	stdcipher "crypto/cipher"
	"crypto/rand"

	"github.com/gravitational/osshkeys/internal/bcryptpbkdf"
	"github.com/gravitational/osshkeys/internal/ossherr"
	"github.com/gravitational/osshkeys/internal/sshwire"
)

// wipe overwrites b with zero; used on every exit path once a derived
// key/IV buffer is no longer needed.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// checkKDFCompatibility enforces the only two valid (cipher, kdf) pairings:
// the identity cipher with no derivation, or a real cipher with bcrypt.
// Redesign flag: cipher "none" paired with kdf "bcrypt" is rejected outright
// rather than running the KDF unnecessarily and discarding its output, which
// is what the source's check ordering otherwise falls into. This must run
// before any cipher == "none" early-return in Open, since that's exactly the
// combination it has to catch.
func checkKDFCompatibility(spec Spec, kdfName string) error {
	switch kdfName {
	case "bcrypt":
		if spec.IsNone() {
			return ossherr.New(ossherr.KindInvalidKeyFormat)
		}
	case "none":
		if !spec.IsNone() {
			return ossherr.New(ossherr.KindInvalidKeyFormat)
		}
	default:
		return ossherr.Newf(ossherr.KindUnsupportCipher, "unsupported kdf %q", kdfName)
	}
	return nil
}

// deriveKeyIV runs bcrypt_pbkdf against the KDF blob to produce key||iv.
// Callers must wipe the returned slice once they've split and consumed it.
// Only reachable once checkKDFCompatibility has confirmed kdfName ==
// "bcrypt" paired with a non-identity cipher.
func deriveKeyIV(spec Spec, kdfBlob []byte, passphrase []byte) ([]byte, error) {
	r := sshwire.NewReader(kdfBlob)
	salt, err := r.StringZeroizing()
	if err != nil {
		return nil, err
	}
	defer salt.Release()
	rounds, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	return bcryptpbkdf.Derive(passphrase, salt, rounds, spec.KeyLen+spec.IVLen)
}

// Open validates and decrypts an openssh-key-v1 ciphertext blob, returning
// the inner plaintext. passphrase may be empty only when cipherName is
// "none".
func Open(cipherName, kdfName string, kdfBlob, passphrase, ciphertext []byte) ([]byte, error) {
	spec, err := Lookup(cipherName)
	if err != nil {
		return nil, err
	}

	if err := checkKDFCompatibility(spec, kdfName); err != nil {
		return nil, err
	}

	if !spec.IsNone() && len(passphrase) == 0 {
		return nil, ossherr.New(ossherr.KindIncorrectPass)
	}

	blockSize := spec.BlockSize
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, ossherr.Newf(ossherr.KindInvalidKeyFormat, "ciphertext length %d is not a positive multiple of block size %d", len(ciphertext), blockSize)
	}

	if spec.IsNone() {
		out := make([]byte, len(ciphertext))
		copy(out, ciphertext)
		return out, nil
	}

	keyIV, err := deriveKeyIV(spec, kdfBlob, passphrase)
	if err != nil {
		return nil, err
	}
	defer wipe(keyIV)

	key := keyIV[:spec.KeyLen]
	iv := keyIV[spec.KeyLen:]

	plaintext := make([]byte, len(ciphertext))
	if err := crypt(spec, key, iv, ciphertext, plaintext, false); err != nil {
		return nil, err
	}
	return plaintext, nil
}

// Seal pads plaintext to a multiple of cipherName's block size using the
// inner padding scheme (pad[i] = (i+1) & 0xff), derives a fresh key/IV via
// bcrypt_pbkdf with a freshly generated salt of saltLen bytes, and encrypts.
// It returns the kdf blob to store alongside the container and the
// ciphertext. cipherName "none" skips derivation and encryption entirely;
// kdfName is then forced to "none" and kdfBlob is empty.
func Seal(cipherName string, rounds uint32, saltLen int, passphrase, plaintext []byte) (kdfName string, kdfBlob, ciphertext []byte, err error) {
	spec, err := Lookup(cipherName)
	if err != nil {
		return "", nil, nil, err
	}

	padded := PadTo(plaintext, spec.BlockSize)

	if spec.IsNone() {
		out := make([]byte, len(padded))
		copy(out, padded)
		return "none", nil, out, nil
	}

	if len(passphrase) == 0 {
		return "", nil, nil, ossherr.New(ossherr.KindIncorrectPass)
	}

	salt := make([]byte, saltLen)
	if _, rErr := rand.Read(salt); rErr != nil {
		return "", nil, nil, ossherr.Wrap(ossherr.KindIO, rErr)
	}

	keyIV, dErr := bcryptpbkdf.Derive(passphrase, salt, rounds, spec.KeyLen+spec.IVLen)
	if dErr != nil {
		return "", nil, nil, dErr
	}
	defer wipe(keyIV)

	key := keyIV[:spec.KeyLen]
	iv := keyIV[spec.KeyLen:]

	out := make([]byte, len(padded))
	if cErr := crypt(spec, key, iv, padded, out, true); cErr != nil {
		return "", nil, nil, cErr
	}

	w := sshwire.NewWriter()
	w.String(salt)
	w.Uint32(rounds)
	return "bcrypt", w.Bytes(), out, nil
}

// crypt runs spec's cipher over src into dst, with no library-side padding
// (the caller handles framing via PadTo/the decoder's padding check).
func crypt(spec Spec, key, iv, src, dst []byte, encrypt bool) error {
	switch {
	case spec.cbc:
		block, err := spec.newBlock(key)
		if err != nil {
			return ossherr.Wrap(ossherr.KindInvalidKeyIvLength, err)
		}
		var mode stdcipher.BlockMode
		if encrypt {
			mode = stdcipher.NewCBCEncrypter(block, iv)
		} else {
			mode = stdcipher.NewCBCDecrypter(block, iv)
		}
		mode.CryptBlocks(dst, src)
		return nil
	case spec.newStream != nil:
		stream, err := spec.newStream(key, iv, !encrypt)
		if err != nil {
			return ossherr.Wrap(ossherr.KindInvalidKeyIvLength, err)
		}
		stream.XORKeyStream(dst, src)
		return nil
	default:
		return ossherr.Newf(ossherr.KindUnsupportCipher, "cipher %q has no implementation", spec.Name)
	}
}

// PadTo extends body with the inner padding scheme (byte i, 0-based, is
// (i+1) & 0xff) until its length is a multiple of blockSize.
func PadTo(body []byte, blockSize int) []byte {
	rem := len(body) % blockSize
	if rem == 0 {
		return body
	}
	padLen := blockSize - rem
	out := make([]byte, len(body)+padLen)
	copy(out, body)
	for i := 0; i < padLen; i++ {
		out[len(body)+i] = byte((i + 1) & 0xff)
	}
	return out
}

// CheckPadding verifies that tail satisfies pad[i] == (i+1) & 0xff for every
// 0-based index i.
func CheckPadding(tail []byte) error {
	for i, b := range tail {
		if b != byte((i+1)&0xff) {
			return ossherr.Newf(ossherr.KindInvalidKeyFormat, "invalid padding byte at offset %d", i)
		}
	}
	return nil
}
