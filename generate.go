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
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"

	"github.com/gravitational/osshkeys/internal/ossherr"
)

// GenerateKeyPair builds a fresh KeyPair for alg. bits is consulted only
// for RSA (minimum 2048); DSA always uses L1024N160 per FIPS 186-3's
// smallest approved parameter set (OpenSSH only ever speaks this one),
// ECDSA uses it only to pick the curve (see curveForBits), and Ed25519
// ignores it entirely. A freshly generated KeyPair round-trips through MarshalPrivateKey
// and ParsePrivateKey exactly like a decoded one.
func GenerateKeyPair(alg Algorithm, bits int) (*KeyPair, error) {
	switch alg {
	case AlgorithmRSA:
		if bits < 2048 {
			return nil, ossherr.Newf(ossherr.KindInvalidKeySize, "RSA key size must be >= 2048, got %d", bits)
		}
		priv, err := rsa.GenerateKey(rand.Reader, bits)
		if err != nil {
			return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
		}
		return &KeyPair{Algorithm: AlgorithmRSA, RSA: priv, RSAHash: RSAHashSHA256}, nil

	case AlgorithmDSA:
		var params dsa.Parameters
		if err := dsa.GenerateParameters(&params, rand.Reader, dsa.L1024N160); err != nil {
			return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
		}
		priv := &dsa.PrivateKey{Parameters: params}
		if err := dsa.GenerateKey(priv, rand.Reader); err != nil {
			return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
		}
		return &KeyPair{Algorithm: AlgorithmDSA, DSA: priv}, nil

	case AlgorithmECDSA:
		curve, curveTag := curveForBits(bits)
		priv, err := ecdsa.GenerateKey(curve, rand.Reader)
		if err != nil {
			return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
		}
		return &KeyPair{Algorithm: AlgorithmECDSA, ECDSA: priv, Curve: curveTag}, nil

	case AlgorithmEd25519:
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
		}
		return &KeyPair{Algorithm: AlgorithmEd25519, Ed25519: priv}, nil

	default:
		return nil, ossherr.Newf(ossherr.KindUnsupportType, "unsupported algorithm %v", alg)
	}
}

// curveForBits maps a requested bit size to a NIST curve this module
// supports: exactly 384 selects P-384 and exactly 521 selects P-521; 0 or
// any other size defaults to P-256, matching
// ssh-keygen's own default for "-t ecdsa".
func curveForBits(bits int) (elliptic.Curve, Curve) {
	switch bits {
	case 384:
		return elliptic.P384(), CurveP384
	case 521:
		return elliptic.P521(), CurveP521
	default:
		return elliptic.P256(), CurveP256
	}
}
