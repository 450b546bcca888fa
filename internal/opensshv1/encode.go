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
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/ssh"

	"github.com/gravitational/osshkeys/internal/cipher"
	"github.com/gravitational/osshkeys/internal/ossherr"
	"github.com/gravitational/osshkeys/internal/sshkey"
	"github.com/gravitational/osshkeys/internal/sshwire"
)

// EncodeOptions controls the symmetric envelope an Encode call produces.
// There is no package-level default rounds/salt constant exposed here; the
// root package's functional options (WithKDFRounds, WithSaltLength) set
// these, defaulting to the values spec calls "typical" (16 rounds, 16-byte
// salt).
type EncodeOptions struct {
	CipherName string
	KDFRounds  uint32
	SaltLength int
}

// Encode is the inverse of Decode: it assembles the inner plaintext, pads
// it, encrypts it per opts (or leaves it unencrypted if passphrase is
// empty), and frames the result as an openssh-key-v1 container.
func Encode(kp *sshkey.KeyPair, passphrase []byte, opts EncodeOptions) ([]byte, error) {
	cipherName := opts.CipherName
	if len(passphrase) == 0 {
		cipherName = "none"
	}

	keyName, err := sshkey.KeyName(kp.Algorithm, kp.RSAHash, kp.Curve)
	if err != nil {
		return nil, err
	}

	check, err := randomUint32()
	if err != nil {
		return nil, err
	}

	inner := sshwire.NewWriter()
	inner.Uint32(check)
	inner.Uint32(check)
	inner.UTF8(keyName)

	if err := encodeKeyMaterial(inner, kp); err != nil {
		return nil, err
	}
	inner.UTF8(kp.Comment())

	publicBlob, err := publicKeyBlob(kp.Public())
	if err != nil {
		return nil, err
	}

	kdfName, kdfBlob, ciphertext, err := cipher.Seal(cipherName, opts.KDFRounds, opts.SaltLength, passphrase, inner.Bytes())
	if err != nil {
		return nil, err
	}

	hdr := sshwire.NewWriter()
	hdr.UTF8(cipherName)
	hdr.UTF8(kdfName)
	hdr.String(kdfBlob)
	hdr.Uint32(1)
	hdr.String(publicBlob)
	hdr.String(ciphertext)

	out := make([]byte, 0, len(Magic)+len(hdr.Bytes()))
	out = append(out, []byte(Magic)...)
	out = append(out, hdr.Bytes()...)
	return out, nil
}

func encodeKeyMaterial(w *sshwire.Writer, kp *sshkey.KeyPair) error {
	switch kp.Algorithm {
	case sshkey.AlgorithmRSA:
		if err := w.MPInt(kp.RSA.N); err != nil {
			return err
		}
		if err := w.MPInt(big.NewInt(int64(kp.RSA.E))); err != nil {
			return err
		}
		if err := w.MPInt(kp.RSA.D); err != nil {
			return err
		}
		p, q := kp.RSA.Primes[0], kp.RSA.Primes[1]
		iqmp := new(big.Int).ModInverse(q, p)
		if iqmp == nil {
			return ossherr.New(ossherr.KindInvalidKey)
		}
		if err := w.MPInt(iqmp); err != nil {
			return err
		}
		if err := w.MPInt(p); err != nil {
			return err
		}
		if err := w.MPInt(q); err != nil {
			return err
		}
	case sshkey.AlgorithmDSA:
		if err := w.MPInt(kp.DSA.P); err != nil {
			return err
		}
		if err := w.MPInt(kp.DSA.Q); err != nil {
			return err
		}
		if err := w.MPInt(kp.DSA.G); err != nil {
			return err
		}
		if err := w.MPInt(kp.DSA.Y); err != nil {
			return err
		}
		if err := w.MPInt(kp.DSA.X); err != nil {
			return err
		}
	case sshkey.AlgorithmECDSA:
		curveName, err := sshkey.CurveWireName(kp.Curve)
		if err != nil {
			return err
		}
		w.UTF8(curveName)
		w.String(elliptic.Marshal(kp.ECDSA.Curve, kp.ECDSA.X, kp.ECDSA.Y))
		if err := w.MPInt(kp.ECDSA.D); err != nil {
			return err
		}
	case sshkey.AlgorithmEd25519:
		pub := kp.Ed25519.Public().(ed25519.PublicKey)
		w.String(pub)
		w.String(kp.Ed25519)
	default:
		return ossherr.Newf(ossherr.KindUnsupportType, "unsupported algorithm %v", kp.Algorithm)
	}
	return nil
}

// randomUint32 draws a fresh 32-bit value for the inner checksum pair.
func randomUint32() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, ossherr.Wrap(ossherr.KindIO, err)
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// publicKeyBlob builds the RFC 4253 wire-format public key the container's
// header stores. The decoder never inspects these bytes beyond a
// length-skip, but real OpenSSH tooling expects a faithful one.
func publicKeyBlob(pub *sshkey.PublicKey) ([]byte, error) {
	sshPub, err := ssh.NewPublicKey(pub.SSHKeyMaterial())
	if err != nil {
		return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
	}
	return sshPub.Marshal(), nil
}
