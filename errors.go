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

// Package osshkeys parses, generates, and serializes the SSH key material
// used by OpenSSH: the bit-exact openssh-key-v1 private key container
// (magic check, symmetric envelope, bcrypt_pbkdf, per-algorithm private
// material for RSA/DSA/ECDSA/Ed25519), plus the external-collaborator
// surface a provisioning tool actually calls — parsing legacy PEM, PEM
// armoring the container, fingerprinting, and signing.
package osshkeys

import "github.com/gravitational/osshkeys/internal/ossherr"

// Kind identifies the category of a failed operation. See the Kind*
// constants for the complete taxonomy.
type Kind = ossherr.Kind

const (
	KindUnknown            = ossherr.KindUnknown
	KindOpenSSL            = ossherr.KindOpenSSL
	KindEd25519            = ossherr.KindEd25519
	KindIO                 = ossherr.KindIO
	KindFmt                = ossherr.KindFmt
	KindBase64             = ossherr.KindBase64
	KindInvalidArgument    = ossherr.KindInvalidArgument
	KindInvalidKeyFormat   = ossherr.KindInvalidKeyFormat
	KindInvalidFormat      = ossherr.KindInvalidFormat
	KindInvalidKey         = ossherr.KindInvalidKey
	KindInvalidKeySize     = ossherr.KindInvalidKeySize
	KindInvalidLength      = ossherr.KindInvalidLength
	KindUnsupportCurve     = ossherr.KindUnsupportCurve
	KindUnsupportCipher    = ossherr.KindUnsupportCipher
	KindIncorrectPass      = ossherr.KindIncorrectPass
	KindTypeNotMatch       = ossherr.KindTypeNotMatch
	KindUnsupportType      = ossherr.KindUnsupportType
	KindInvalidPemFormat   = ossherr.KindInvalidPemFormat
	KindInvalidKeyIvLength = ossherr.KindInvalidKeyIvLength
)

// Error is the concrete error type every fallible operation in this module
// returns, wrapped by github.com/gravitational/trace for stack-trace
// capture. Use Is/KindOf rather than type-asserting directly.
type Error = ossherr.Error

// Is reports whether err (or something it wraps) carries the given Kind.
func Is(err error, kind Kind) bool { return ossherr.Is(err, kind) }

// KindOf returns the Kind carried by err, or KindUnknown if err was not
// produced by this module.
func KindOf(err error) Kind { return ossherr.KindOf(err) }
