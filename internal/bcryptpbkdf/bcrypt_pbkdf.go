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

// Package bcryptpbkdf implements OpenBSD's bcrypt_pbkdf(3), the
// password-based key derivation function OpenSSH uses to turn a passphrase
// and a KDF-blob salt into the key and IV for the openssh-key-v1 symmetric
// envelope (internal/cipher). It is unrelated, in framing and purpose, to
// golang.org/x/crypto/bcrypt's cost-factor password hash — the name overlap
// is historical (both build on the same Blowfish-derived mixing function).
//
// This is a fresh implementation, not an import, because the equivalent
// golang.org/x/crypto/ssh/internal/bcrypt_pbkdf package is unexported; it is
// nonetheless this package's direct structural precedent — same SHA-512
// pre-hash, same Blowfish expand-key loop, same output interleave — and the
// OpenBSD reference vector in bcrypt_pbkdf_test.go is what pins the two
// implementations to the same bytes.
package bcryptpbkdf

import (
	"crypto/sha512"

	"golang.org/x/crypto/blowfish"

	"github.com/gravitational/osshkeys/internal/ossherr"
)

// blockSize is the width, in bytes, of a single bcrypt_hash output block.
const blockSize = 32

// magic is the fixed 32-byte plaintext bcrypt_hash repeatedly encrypts;
// it spells "OxychromaticBlowfishSwatDynamite" and comes directly from the
// OpenBSD reference implementation.
var magic = []byte("OxychromaticBlowfishSwatDynamite")

// Derive runs bcrypt_pbkdf(password, salt, rounds) and writes outputLen
// bytes of derived key material. password and salt must be non-empty,
// rounds must be at least 1, and outputLen must be in [1, 1024].
func Derive(password, salt []byte, rounds uint32, outputLen int) ([]byte, error) {
	if len(password) == 0 {
		return nil, ossherr.Newf(ossherr.KindInvalidArgument, "bcrypt_pbkdf: empty password")
	}
	if len(salt) == 0 {
		return nil, ossherr.Newf(ossherr.KindInvalidArgument, "bcrypt_pbkdf: empty salt")
	}
	if rounds == 0 {
		return nil, ossherr.Newf(ossherr.KindInvalidArgument, "bcrypt_pbkdf: rounds must be >= 1")
	}
	if outputLen < 1 || outputLen > 1024 {
		return nil, ossherr.Newf(ossherr.KindInvalidArgument, "bcrypt_pbkdf: output length %d out of range [1, 1024]", outputLen)
	}

	// stride is the number of blocks needed to cover outputLen bytes; each
	// block b's hashed output interleaves into every stride-th output byte
	// starting at offset b, per the OpenBSD reference's striping scheme.
	stride := (outputLen + blockSize - 1) / blockSize
	out := make([]byte, stride*blockSize)

	h := sha512.New()
	h.Write(password)
	shapass := h.Sum(nil)

	var counter [4]byte
	block := make([]byte, blockSize)
	for b := 0; b < stride; b++ {
		h.Reset()
		h.Write(salt)
		n := b + 1
		counter[0] = byte(n >> 24)
		counter[1] = byte(n >> 16)
		counter[2] = byte(n >> 8)
		counter[3] = byte(n)
		h.Write(counter[:])
		shasalt := h.Sum(nil)

		bcryptHash(shapass, shasalt, block)
		accum := make([]byte, blockSize)
		copy(accum, block)

		for round := uint32(2); round <= rounds; round++ {
			h.Reset()
			h.Write(block)
			shasalt = h.Sum(nil)
			bcryptHash(shapass, shasalt, block)
			for i := range accum {
				accum[i] ^= block[i]
			}
		}

		for i, v := range accum {
			out[i*stride+b] = v
		}
	}

	return out[:outputLen], nil
}

// bcryptHash is the Blowfish-derived mixing function: it key-schedules a
// Blowfish cipher from (sha2pass, sha2salt) via 64 rounds of Eksblowfish
// expand-key, then encrypts the fixed magic plaintext 64 times per 8-byte
// sub-block, writing the 32-byte result into out.
func bcryptHash(sha2pass, sha2salt, out []byte) {
	c, err := blowfish.NewSaltedCipher(sha2pass, sha2salt)
	if err != nil {
		// sha2pass/sha2salt are always 64 bytes of SHA-512 output; a
		// non-empty key and salt can never make NewSaltedCipher fail.
		panic(err)
	}
	for i := 0; i < 64; i++ {
		blowfish.ExpandKey(sha2salt, c)
		blowfish.ExpandKey(sha2pass, c)
	}

	ciphertext := append([]byte(nil), magic...)
	for i := 0; i < len(ciphertext); i += 8 {
		block := ciphertext[i : i+8]
		for j := 0; j < 64; j++ {
			c.Encrypt(block, block)
		}
	}

	// The reference copies each 32-bit word out little-endian.
	for i := 0; i < len(ciphertext); i += 4 {
		ciphertext[i], ciphertext[i+1], ciphertext[i+2], ciphertext[i+3] = ciphertext[i+3], ciphertext[i+2], ciphertext[i+1], ciphertext[i]
	}

	copy(out, ciphertext)
}
