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
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/gravitational/osshkeys/internal/opensshv1"
	"github.com/gravitational/osshkeys/internal/ossherr"
)

const openSSHPEMType = "OPENSSH PRIVATE KEY"

// ParsePrivateKey is the single top-level entry point a provisioning tool
// calls: it PEM-decodes data, and if the block type is "OPENSSH PRIVATE
// KEY" hands the body to internal/opensshv1 (this module's core); for any
// other legacy PEM block type (PKCS#1 RSA, EC, or PKCS#8) it delegates to
// the standard library's own ASN.1/DER decoder, matching spec's "PEM
// parsing of legacy private keys — delegated to a third-party PEM/ASN.1
// decoder" (x509 is that decoder; pulling in a second ASN.1 stack would
// duplicate its job). passphrase is ignored for legacy PEM types, which
// this module does not decrypt.
func ParsePrivateKey(data []byte, passphrase []byte) (*KeyPair, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ossherr.New(ossherr.KindInvalidPemFormat)
	}

	if block.Type == openSSHPEMType {
		return opensshv1.Decode(block.Bytes, passphrase)
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
		}
		return &KeyPair{Algorithm: AlgorithmRSA, RSA: priv, RSAHash: RSAHashSHA256}, nil

	case "EC PRIVATE KEY":
		priv, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
		}
		curve, err := curveFromStdlib(priv.Curve.Params().Name)
		if err != nil {
			return nil, err
		}
		return &KeyPair{Algorithm: AlgorithmECDSA, ECDSA: priv, Curve: curve}, nil

	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
		}
		return keyPairFromStdlib(parsed)

	default:
		return nil, ossherr.Newf(ossherr.KindInvalidPemFormat, "unsupported PEM block type %q", block.Type)
	}
}

func keyPairFromStdlib(key any) (*KeyPair, error) {
	switch priv := key.(type) {
	case *rsa.PrivateKey:
		return &KeyPair{Algorithm: AlgorithmRSA, RSA: priv, RSAHash: RSAHashSHA256}, nil
	case *ecdsa.PrivateKey:
		curve, err := curveFromStdlib(priv.Curve.Params().Name)
		if err != nil {
			return nil, err
		}
		return &KeyPair{Algorithm: AlgorithmECDSA, ECDSA: priv, Curve: curve}, nil
	case ed25519.PrivateKey:
		return &KeyPair{Algorithm: AlgorithmEd25519, Ed25519: priv}, nil
	default:
		return nil, ossherr.New(ossherr.KindUnsupportType)
	}
}

func curveFromStdlib(name string) (Curve, error) {
	switch name {
	case "P-256":
		return CurveP256, nil
	case "P-384":
		return CurveP384, nil
	case "P-521":
		return CurveP521, nil
	default:
		return CurveUnknown, ossherr.Newf(ossherr.KindUnsupportCurve, "unsupported curve %q", name)
	}
}

// EncodeOption configures MarshalPrivateKey's symmetric envelope.
type EncodeOption func(*opensshv1.EncodeOptions)

// WithCipherName overrides the default cipher (aes256-ctr) the envelope
// uses when passphrase is non-empty.
func WithCipherName(name string) EncodeOption {
	return func(o *opensshv1.EncodeOptions) { o.CipherName = name }
}

// WithKDFRounds overrides the default bcrypt_pbkdf round count (16, per
// spec's "typical default 16").
func WithKDFRounds(rounds uint32) EncodeOption {
	return func(o *opensshv1.EncodeOptions) { o.KDFRounds = rounds }
}

// WithSaltLength overrides the default KDF salt length (16 bytes, per
// spec's "typically 16 bytes").
func WithSaltLength(n int) EncodeOption {
	return func(o *opensshv1.EncodeOptions) { o.SaltLength = n }
}

func defaultEncodeOptions() opensshv1.EncodeOptions {
	return opensshv1.EncodeOptions{CipherName: "aes256-ctr", KDFRounds: 16, SaltLength: 16}
}

// MarshalPrivateKey serializes kp as an openssh-key-v1 container (encrypted
// under passphrase unless passphrase is empty) and wraps it in PEM armor,
// matching spec's note that "the armor layer is an external collaborator"
// and original_source's to_keystr, which always emits the armored form.
func MarshalPrivateKey(kp *KeyPair, passphrase []byte, opts ...EncodeOption) ([]byte, error) {
	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	body, err := opensshv1.Encode(kp, passphrase, o)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: openSSHPEMType, Bytes: body}), nil
}
