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

import (
	"golang.org/x/crypto/ssh"

	"github.com/gravitational/osshkeys/internal/ossherr"
)

// FingerprintHash selects the digest that fingerprints a public key.
//
// This (and Sign/Verify in sign.go) live here rather than in the root
// package: Go only allows new methods on a type alias from the package
// that actually defines the underlying type, and KeyPair/PublicKey are
// aliased into the root package for API ergonomics. The root package's
// fingerprint.go and sign.go re-export the types and constants; the
// methods below are what callers actually invoke through the alias.
type FingerprintHash int

const (
	// FingerprintMD5 is OpenSSH's legacy "aa:bb:cc:..." hex-colon form.
	FingerprintMD5 FingerprintHash = iota
	// FingerprintSHA256 is OpenSSH's default "SHA256:base64" form.
	FingerprintSHA256
)

// Fingerprint hashes the RFC 4253 wire-format encoding of p, matching
// spec's "Public/private agreement" testable property: the same hash of a
// KeyPair's derived PublicKey and of the corresponding standalone public
// key file must agree.
func (p *PublicKey) Fingerprint(hash FingerprintHash) (string, error) {
	sshPub, err := ssh.NewPublicKey(p.SSHKeyMaterial())
	if err != nil {
		return "", ossherr.Wrap(ossherr.KindOpenSSL, err)
	}
	switch hash {
	case FingerprintMD5:
		return ssh.FingerprintLegacyMD5(sshPub), nil
	case FingerprintSHA256:
		return ssh.FingerprintSHA256(sshPub), nil
	default:
		return "", ossherr.Newf(ossherr.KindInvalidArgument, "unknown fingerprint hash %d", hash)
	}
}

// Fingerprint is shorthand for k.Public().Fingerprint(hash).
func (k *KeyPair) Fingerprint(hash FingerprintHash) (string, error) {
	return k.Public().Fingerprint(hash)
}
