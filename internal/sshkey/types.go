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

// Package sshkey holds the KeyPair/PublicKey data model shared by the root
// osshkeys package and internal/opensshv1. It is split out from the root
// package purely to break an import cycle: opensshv1 needs to construct and
// return these types, and the root package needs to call into opensshv1, so
// the types themselves cannot live in a package that imports opensshv1.
// The root package re-exports Algorithm, KeyPair, and PublicKey as type
// aliases, so callers never see this package's import path.
package sshkey

import (
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
)

// Algorithm is the closed set of key algorithms this library understands.
type Algorithm int

const (
	AlgorithmUnknown Algorithm = iota
	AlgorithmRSA
	AlgorithmDSA
	AlgorithmECDSA
	AlgorithmEd25519
)

// String names the algorithm for diagnostics; it is not the wire key_name
// (see KeyName in algorithm.go, which also needs the RSA hash / curve).
func (a Algorithm) String() string {
	switch a {
	case AlgorithmRSA:
		return "RSA"
	case AlgorithmDSA:
		return "DSA"
	case AlgorithmECDSA:
		return "ECDSA"
	case AlgorithmEd25519:
		return "Ed25519"
	default:
		return "Unknown"
	}
}

// RSAHash selects which SHA variant an RSA KeyPair signs with, matching the
// three RSA key_name wire tags (ssh-rsa/rsa-sha2-256/rsa-sha2-512).
type RSAHash int

const (
	RSAHashSHA1 RSAHash = iota
	RSAHashSHA256
	RSAHashSHA512
)

// Curve is the closed set of NIST curves ECDSA keys in this library use.
type Curve int

const (
	CurveUnknown Curve = iota
	CurveP256
	CurveP384
	CurveP521
)

// KeyPair is a tagged union over the four supported private key algorithms,
// plus a mutable comment. Exactly one of the algorithm-specific fields is
// populated, selected by Algorithm. Construct one via internal/opensshv1's
// decoder, osshkeys.GenerateKeyPair, or osshkeys.ParsePrivateKey; mutate the
// comment only through SetComment; call Zero before discarding one built
// from sensitive material, since Go has no destructors to do it implicitly.
type KeyPair struct {
	Algorithm Algorithm
	comment   string

	RSA     *rsa.PrivateKey
	RSAHash RSAHash

	DSA *dsa.PrivateKey

	ECDSA *ecdsa.PrivateKey
	Curve Curve

	// Ed25519 is the 64-byte expanded keypair (seed||public), matching the
	// stdlib's own ed25519.PrivateKey representation and the wire format's
	// "private" string for ssh-ed25519.
	Ed25519 ed25519.PrivateKey
}

// Comment returns the key's current comment.
func (k *KeyPair) Comment() string { return k.comment }

// SetComment is the only sanctioned way to mutate a KeyPair after
// construction.
func (k *KeyPair) SetComment(c string) { k.comment = c }

// Zero overwrites every private-material buffer this KeyPair owns. It must
// be called on every exit path once the KeyPair is no longer needed,
// including error paths that discard a partially built one.
func (k *KeyPair) Zero() {
	if k == nil {
		return
	}
	if k.RSA != nil {
		k.RSA.D.SetInt64(0)
		for _, p := range k.RSA.Primes {
			p.SetInt64(0)
		}
		if k.RSA.Precomputed.Dp != nil {
			k.RSA.Precomputed.Dp.SetInt64(0)
		}
		if k.RSA.Precomputed.Dq != nil {
			k.RSA.Precomputed.Dq.SetInt64(0)
		}
		if k.RSA.Precomputed.Qinv != nil {
			k.RSA.Precomputed.Qinv.SetInt64(0)
		}
	}
	if k.DSA != nil {
		k.DSA.X.SetInt64(0)
	}
	if k.ECDSA != nil {
		k.ECDSA.D.SetInt64(0)
	}
	for i := range k.Ed25519 {
		k.Ed25519[i] = 0
	}
}

// PublicKey is the public-component counterpart of KeyPair, carrying the
// same tag set.
type PublicKey struct {
	Algorithm Algorithm
	Comment   string

	RSA     *rsa.PublicKey
	RSAHash RSAHash

	DSA *dsa.PublicKey

	ECDSA *ecdsa.PublicKey
	Curve Curve

	Ed25519 ed25519.PublicKey
}

// Public derives the PublicKey view of k.
func (k *KeyPair) Public() *PublicKey {
	p := &PublicKey{Algorithm: k.Algorithm, Comment: k.comment, RSAHash: k.RSAHash, Curve: k.Curve}
	switch k.Algorithm {
	case AlgorithmRSA:
		p.RSA = &k.RSA.PublicKey
	case AlgorithmDSA:
		p.DSA = &k.DSA.PublicKey
	case AlgorithmECDSA:
		p.ECDSA = &k.ECDSA.PublicKey
	case AlgorithmEd25519:
		p.Ed25519 = k.Ed25519.Public().(ed25519.PublicKey)
	}
	return p
}

// SSHKeyMaterial returns the concrete stdlib private-key value matching k's
// Algorithm (*rsa.PrivateKey, *dsa.PrivateKey, *ecdsa.PrivateKey, or
// ed25519.PrivateKey), suitable for golang.org/x/crypto/ssh.NewSignerFromKey
// and similar external-collaborator adapters spec's §1 describes this
// library as a thin layer over.
func (k *KeyPair) SSHKeyMaterial() any {
	switch k.Algorithm {
	case AlgorithmRSA:
		return k.RSA
	case AlgorithmDSA:
		return k.DSA
	case AlgorithmECDSA:
		return k.ECDSA
	case AlgorithmEd25519:
		return k.Ed25519
	default:
		return nil
	}
}

// SSHKeyMaterial returns the concrete stdlib public-key value matching p's
// Algorithm, suitable for golang.org/x/crypto/ssh.NewPublicKey.
func (p *PublicKey) SSHKeyMaterial() any {
	switch p.Algorithm {
	case AlgorithmRSA:
		return p.RSA
	case AlgorithmDSA:
		return p.DSA
	case AlgorithmECDSA:
		return p.ECDSA
	case AlgorithmEd25519:
		return p.Ed25519
	default:
		return nil
	}
}
