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

// Comment mutation is exposed directly on KeyPair (itself a
// internal/sshkey.KeyPair alias): KeyPair.Comment reads it, KeyPair.SetComment
// is the only sanctioned way to mutate it after construction, per spec's
// §3 lifecycle note ("mutated only through comment_mut"). No wrapper is
// needed here; this file exists so the comment-mutation component named in
// SPEC_FULL.md's component table has a file of its own, matching teleport's
// convention of one concern per file even when the concern is a one-liner.
