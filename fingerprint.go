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

// FingerprintHash selects the digest that KeyPair.Fingerprint and
// PublicKey.Fingerprint hash the public key with.
type FingerprintHash = sshkey.FingerprintHash

const (
	// FingerprintMD5 is OpenSSH's legacy "aa:bb:cc:..." hex-colon form.
	FingerprintMD5 = sshkey.FingerprintMD5
	// FingerprintSHA256 is OpenSSH's default "SHA256:base64" form.
	FingerprintSHA256 = sshkey.FingerprintSHA256
)

// KeyPair.Fingerprint and PublicKey.Fingerprint are defined on
// internal/sshkey.KeyPair/PublicKey (see that package's fingerprint.go):
// Go only lets a type's own defining package add methods to it, and these
// types are aliased here rather than redeclared, so the methods ride along
// through the alias automatically.
