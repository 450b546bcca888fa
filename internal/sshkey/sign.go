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
	"crypto/rand"

	"golang.org/x/crypto/ssh"

	"github.com/gravitational/osshkeys/internal/ossherr"
)

// rsaAlgorithm maps an RSAHash to the signature algorithm name
// golang.org/x/crypto/ssh.AlgorithmSigner expects; RSAHashSHA1 means "use
// the signer's default", i.e. ssh-rsa.
func rsaAlgorithm(h RSAHash) string {
	switch h {
	case RSAHashSHA256:
		return ssh.SigAlgoRSASHA2256
	case RSAHashSHA512:
		return ssh.SigAlgoRSASHA2512
	default:
		return ssh.SigAlgoRSA
	}
}

// Sign produces an SSH wire-format signature over data using k's private
// material, matching spec's declared "signature/verification wrappers"
// external collaborator over golang.org/x/crypto/ssh. The returned bytes
// are the signature's Blob field; the scenario in spec.md §8 (signing
// "8Kn9PPQV" with a decoded Ed25519 key) checks exactly these bytes.
func (k *KeyPair) Sign(data []byte) ([]byte, error) {
	signer, err := ssh.NewSignerFromKey(k.SSHKeyMaterial())
	if err != nil {
		return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
	}

	var sig *ssh.Signature
	if k.Algorithm == AlgorithmRSA {
		algSigner, ok := signer.(ssh.AlgorithmSigner)
		if !ok {
			return nil, ossherr.New(ossherr.KindOpenSSL)
		}
		sig, err = algSigner.SignWithAlgorithm(rand.Reader, data, rsaAlgorithm(k.RSAHash))
	} else {
		sig, err = signer.Sign(rand.Reader, data)
	}
	if err != nil {
		return nil, ossherr.Wrap(ossherr.KindOpenSSL, err)
	}
	return sig.Blob, nil
}

// Verify checks sig against data using p's public material. The signature
// format is assumed to match p's default wire key type (ssh-rsa for
// RSAHashSHA1, rsa-sha2-256/512 for the other RSA hashes, ssh-dss,
// ecdsa-sha2-nistp{256,384,521}, or ssh-ed25519), mirroring what Sign
// produces for the equivalent KeyPair.
func (p *PublicKey) Verify(data, sig []byte) (bool, error) {
	sshPub, err := ssh.NewPublicKey(p.SSHKeyMaterial())
	if err != nil {
		return false, ossherr.Wrap(ossherr.KindOpenSSL, err)
	}
	format := sshPub.Type()
	if p.Algorithm == AlgorithmRSA {
		format = rsaAlgorithm(p.RSAHash)
	}
	err = sshPub.Verify(data, &ssh.Signature{Format: format, Blob: sig})
	if err != nil {
		return false, nil
	}
	return true, nil
}
