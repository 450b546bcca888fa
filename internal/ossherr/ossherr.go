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

// Package ossherr implements the kinded error taxonomy shared by every
// osshkeys subsystem. It is a thin layer over github.com/gravitational/trace:
// trace supplies stack-trace capture and cause wrapping, this package adds
// the closed set of kinds the key codec needs to distinguish (a bad
// passphrase from a malformed container from an unsupported cipher).
//
// It lives under internal/ so that the sshwire, bcryptpbkdf, cipher and
// opensshv1 packages can all depend on it without creating an import cycle
// back to the root osshkeys package, which re-exports Kind and Error as
// aliases for its public API.
package ossherr

import (
	"errors"
	"fmt"

	"github.com/gravitational/trace"
)

// Kind identifies the category of failure, matching spec's taxonomy.
type Kind int

const (
	KindUnknown Kind = iota
	KindOpenSSL
	KindEd25519
	KindIO
	KindFmt
	KindBase64
	KindInvalidArgument
	KindInvalidKeyFormat
	KindInvalidFormat
	KindInvalidKey
	KindInvalidKeySize
	KindInvalidLength
	KindUnsupportCurve
	KindUnsupportCipher
	KindIncorrectPass
	KindTypeNotMatch
	KindUnsupportType
	KindInvalidPemFormat
	KindInvalidKeyIvLength
)

var kindNames = map[Kind]string{
	KindUnknown:            "Unknown Error",
	KindOpenSSL:            "OpenSSL Error",
	KindEd25519:            "Ed25519 Error",
	KindIO:                 "I/O Error",
	KindFmt:                "Formatter Error",
	KindBase64:             "Base64 Error",
	KindInvalidArgument:    "Invalid Argument",
	KindInvalidKeyFormat:   "Invalid Key Format",
	KindInvalidFormat:      "Invalid Format",
	KindInvalidKey:         "Invalid Key",
	KindInvalidKeySize:     "Invalid Key Size",
	KindInvalidLength:      "Invalid Length",
	KindUnsupportCurve:     "Unsupported Elliptic Curve",
	KindUnsupportCipher:    "Unsupported Cipher",
	KindIncorrectPass:      "Incorrect Passphrase",
	KindTypeNotMatch:       "Key Type Not Match",
	KindUnsupportType:      "Unsupported Key Type",
	KindInvalidPemFormat:   "Invalid PEM Format",
	KindInvalidKeyIvLength: "Invalid Key/IV Length",
}

// String returns the kind's human-readable name, e.g. "Incorrect Passphrase".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is the concrete error type carried through the codec. Construct it
// with the package-level helpers below rather than directly; they attach a
// trace.Wrap stack trace at the call site the way teleport wraps every
// returned error.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// Error renders "<kind>[: msg][; Caused by: <inner>]".
func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.cause != nil:
		return fmt.Sprintf("%s: %s; Caused by: %s", e.kind, e.msg, e.cause)
	case e.msg != "":
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	case e.cause != nil:
		return fmt.Sprintf("%s; Caused by: %s", e.kind, e.cause)
	default:
		return e.kind.String()
	}
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As and trace.Unwrap.
func (e *Error) Unwrap() error { return e.cause }

// Kind returns the error's category.
func (e *Error) Kind() Kind { return e.kind }

// New builds a kinded error with no formatted message and no cause.
func New(kind Kind) error {
	return trace.Wrap(&Error{kind: kind})
}

// Newf builds a kinded error carrying a formatted message, no cause.
func Newf(kind Kind, format string, args ...any) error {
	return trace.Wrap(&Error{kind: kind, msg: fmt.Sprintf(format, args...)})
}

// Wrap builds a kinded error around a lower-level cause (I/O, the stdlib
// crypto libraries, a base64 decode, a signature library, a PEM parser).
func Wrap(kind Kind, cause error) error {
	if cause == nil {
		return New(kind)
	}
	return trace.Wrap(&Error{kind: kind, cause: cause})
}

// Is reports whether err (or something it wraps) is an *Error of kind.
func Is(err error, kind Kind) bool {
	var oe *Error
	if !errors.As(err, &oe) {
		return false
	}
	return oe.kind == kind
}

// KindOf returns the Kind carried by err, or KindUnknown if err does not
// wrap an *Error.
func KindOf(err error) Kind {
	var oe *Error
	if !errors.As(err, &oe) {
		return KindUnknown
	}
	return oe.kind
}
