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

package sshkey

import "github.com/gravitational/osshkeys/internal/ossherr"

// Wire key_name constants, matching spec's algorithm name constants
// verbatim.
const (
	NameRSA        = "ssh-rsa"
	NameRSASHA256  = "rsa-sha2-256"
	NameRSASHA512  = "rsa-sha2-512"
	NameDSA        = "ssh-dss"
	NameECDSA256   = "ecdsa-sha2-nistp256"
	NameECDSA384   = "ecdsa-sha2-nistp384"
	NameECDSA521   = "ecdsa-sha2-nistp521"
	NameEd25519    = "ssh-ed25519"
	curveNistp256  = "nistp256"
	curveNistp384  = "nistp384"
	curveNistp521  = "nistp521"
)

// KeyName returns the wire key_name for (algorithm, hash, curve). hash is
// only consulted for RSA; curve only for ECDSA.
func KeyName(alg Algorithm, hash RSAHash, curve Curve) (string, error) {
	switch alg {
	case AlgorithmRSA:
		switch hash {
		case RSAHashSHA1:
			return NameRSA, nil
		case RSAHashSHA256:
			return NameRSASHA256, nil
		case RSAHashSHA512:
			return NameRSASHA512, nil
		}
	case AlgorithmDSA:
		return NameDSA, nil
	case AlgorithmECDSA:
		switch curve {
		case CurveP256:
			return NameECDSA256, nil
		case CurveP384:
			return NameECDSA384, nil
		case CurveP521:
			return NameECDSA521, nil
		}
	case AlgorithmEd25519:
		return NameEd25519, nil
	}
	return "", ossherr.Newf(ossherr.KindUnsupportType, "no wire name for algorithm %v", alg)
}

// ParseKeyName dispatches a wire key_name to its (Algorithm, RSAHash, Curve)
// triple. Unknown names fail with UnsupportType, matching spec's decoder
// step 7.
func ParseKeyName(name string) (Algorithm, RSAHash, Curve, error) {
	switch name {
	case NameRSA:
		return AlgorithmRSA, RSAHashSHA1, CurveUnknown, nil
	case NameRSASHA256:
		return AlgorithmRSA, RSAHashSHA256, CurveUnknown, nil
	case NameRSASHA512:
		return AlgorithmRSA, RSAHashSHA512, CurveUnknown, nil
	case NameDSA:
		return AlgorithmDSA, 0, CurveUnknown, nil
	case NameECDSA256:
		return AlgorithmECDSA, 0, CurveP256, nil
	case NameECDSA384:
		return AlgorithmECDSA, 0, CurveP384, nil
	case NameECDSA521:
		return AlgorithmECDSA, 0, CurveP521, nil
	case NameEd25519:
		return AlgorithmEd25519, 0, CurveUnknown, nil
	default:
		return AlgorithmUnknown, 0, CurveUnknown, ossherr.Newf(ossherr.KindUnsupportType, "unsupported key type %q", name)
	}
}

// CurveWireName returns the RFC 5656 curve identifier embedded in an ECDSA
// private key blob (distinct from the key_name, which is
// "ecdsa-sha2-<curve>").
func CurveWireName(c Curve) (string, error) {
	switch c {
	case CurveP256:
		return curveNistp256, nil
	case CurveP384:
		return curveNistp384, nil
	case CurveP521:
		return curveNistp521, nil
	default:
		return "", ossherr.Newf(ossherr.KindUnsupportCurve, "unsupported curve %v", c)
	}
}
