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

// KeyPair is a tagged union over RSA, DSA, ECDSA and Ed25519 private key
// material, plus a mutable comment. Construct one via ParsePrivateKey or
// GenerateKeyPair; call Zero before discarding one built from sensitive
// material, since Go has no destructors to do it implicitly.
type KeyPair = sshkey.KeyPair
