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

import "github.com/gravitational/osshkeys/internal/sshkey"

// Algorithm is the closed set of key algorithms this module understands.
type Algorithm = sshkey.Algorithm

const (
	AlgorithmUnknown = sshkey.AlgorithmUnknown
	AlgorithmRSA     = sshkey.AlgorithmRSA
	AlgorithmDSA     = sshkey.AlgorithmDSA
	AlgorithmECDSA   = sshkey.AlgorithmECDSA
	AlgorithmEd25519 = sshkey.AlgorithmEd25519
)

// RSAHash selects which SHA variant an RSA KeyPair uses on the wire
// (ssh-rsa/rsa-sha2-256/rsa-sha2-512) and when signing.
type RSAHash = sshkey.RSAHash

const (
	RSAHashSHA1   = sshkey.RSAHashSHA1
	RSAHashSHA256 = sshkey.RSAHashSHA256
	RSAHashSHA512 = sshkey.RSAHashSHA512
)

// Curve is the closed set of NIST curves this module's ECDSA keys use.
type Curve = sshkey.Curve

const (
	CurveUnknown = sshkey.CurveUnknown
	CurveP256    = sshkey.CurveP256
	CurveP384    = sshkey.CurveP384
	CurveP521    = sshkey.CurveP521
)
