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

// Package sshwire reads and writes the primitive data representations
// defined in RFC 4251 section 5 (byte, boolean, uint32, uint64, string,
// mpint, name-list), on top of an in-memory byte cursor rather than a
// network connection — the OpenSSH v1 container and its inner plaintext are
// always decoded from, and encoded to, a fully-buffered []byte.
//
// The uint32, string, UTF-8 string and mpint reads have two forms: the plain
// form returns an ordinarily-owned buffer, and the Zeroizing form returns a
// buffer that the caller must explicitly Release() once done with it,
// overwriting it with zeroes first. Byte, Bool, Uint64 and NameList have only
// the plain form.
// Go has no destructors, so unlike the Rust original this wiping is never
// automatic — callers parsing sensitive material (internal/opensshv1's
// inner-plaintext walk) are responsible for releasing every zeroizing value
// on every exit path, including error paths.
package sshwire

import (
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/gravitational/osshkeys/internal/ossherr"
)

// Reader decodes RFC 4251 primitives from a fixed byte slice.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps data for sequential decoding. data is not copied; callers
// must not mutate it while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// Remaining returns the unread tail of the buffer without consuming it.
func (r *Reader) Remaining() []byte { return r.buf[r.pos:] }

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.Len() {
		return nil, ossherr.Newf(ossherr.KindInvalidFormat, "short read: need %d bytes, have %d", n, r.Len())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Byte reads a single octet.
func (r *Reader) Byte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Bool reads one octet: zero is false, any other value is true.
func (r *Reader) Bool() (bool, error) {
	b, err := r.Byte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// Uint32 reads a big-endian 32-bit unsigned integer.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// Uint32Zeroizing reads a uint32 into a value the caller must Release().
// Used for the inner-plaintext checksum words, which are meaningless once
// validated but still count as material read from the sensitive decrypted
// blob.
func (r *Reader) Uint32Zeroizing() (*ZeroizingUint32, error) {
	v, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	return &ZeroizingUint32{v: v}, nil
}

// Uint64 reads a big-endian 64-bit unsigned integer.
func (r *Reader) Uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// String reads a uint32 length prefix followed by exactly that many bytes
// of arbitrary binary data.
func (r *Reader) String() ([]byte, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	b, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// StringZeroizing is String, but the returned buffer must be Release()d.
func (r *Reader) StringZeroizing() (ZeroizingBytes, error) {
	b, err := r.String()
	if err != nil {
		return nil, err
	}
	return ZeroizingBytes(b), nil
}

// UTF8 reads a string and validates that its body decodes as UTF-8.
func (r *Reader) UTF8() (string, error) {
	b, err := r.String()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ossherr.Newf(ossherr.KindInvalidFormat, "field is not valid UTF-8")
	}
	return string(b), nil
}

// UTF8Zeroizing is UTF8, but the returned value must be Release()d.
func (r *Reader) UTF8Zeroizing() (ZeroizingString, error) {
	s, err := r.UTF8()
	if err != nil {
		return ZeroizingString{}, err
	}
	return ZeroizingString{b: []byte(s)}, nil
}

// MPInt reads a uint32 length prefix followed by a two's-complement,
// big-endian, minimal-sign-preserving encoding of a nonnegative integer (a
// leading 0x00 byte is present iff the high bit of the first magnitude byte
// is set). This library never produces negative integers; an mpint whose
// first byte has the sign bit set is rejected with InvalidFormat.
func (r *Reader) MPInt() (*big.Int, error) {
	b, err := r.String()
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0]&0x80 != 0 {
		return nil, ossherr.Newf(ossherr.KindInvalidFormat, "mpint has sign bit set; negative mpints are unsupported")
	}
	return new(big.Int).SetBytes(trimLeadingZero(b)), nil
}

// MPIntZeroizing is MPInt, but the raw magnitude bytes backing the integer
// must be Release()d once the caller is done constructing key material from
// them. Used for the private-exponent and scalar fields of the inner
// plaintext (RSA d/p/q, DSA x, ECDSA scalar).
func (r *Reader) MPIntZeroizing() (*ZeroizingMPInt, error) {
	b, err := r.String()
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0]&0x80 != 0 {
		return nil, ossherr.Newf(ossherr.KindInvalidFormat, "mpint has sign bit set; negative mpints are unsupported")
	}
	return &ZeroizingMPInt{raw: b}, nil
}

// NameList reads a string whose body is a comma-separated ASCII list.
func (r *Reader) NameList() ([]string, error) {
	b, err := r.String()
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	return strings.Split(string(b), ","), nil
}

func trimLeadingZero(b []byte) []byte {
	if len(b) > 1 && b[0] == 0 {
		return b[1:]
	}
	return b
}

// ZeroizingBytes is a byte buffer that callers must explicitly wipe once
// finished with it.
type ZeroizingBytes []byte

// Release overwrites the buffer with zero. It is idempotent and safe to call
// on a nil or already-released slice.
func (z ZeroizingBytes) Release() {
	for i := range z {
		z[i] = 0
	}
}

// ZeroizingString is a string-backed value that overwrites its storage on
// Release. The string itself is immutable in Go, so this additionally holds
// the original byte buffer the string was built from.
type ZeroizingString struct {
	b []byte
}

// String returns the decoded value.
func (z ZeroizingString) String() string { return string(z.b) }

// Release overwrites the backing buffer with zero.
func (z ZeroizingString) Release() {
	for i := range z.b {
		z.b[i] = 0
	}
}

// ZeroizingUint32 wraps a uint32 read from sensitive material.
type ZeroizingUint32 struct {
	v uint32
}

// Value returns the decoded integer.
func (z *ZeroizingUint32) Value() uint32 { return z.v }

// Release zeroes the stored value.
func (z *ZeroizingUint32) Release() { z.v = 0 }

// ZeroizingMPInt wraps an mpint magnitude read from sensitive material. Big
// returns a derived *big.Int for use by the stdlib key constructors; Release
// zeroes the original raw bytes (it does not, and cannot, reach into the
// big.Int's own internal words — constructors are expected to have already
// consumed the value before Release is called).
type ZeroizingMPInt struct {
	raw []byte
}

// Big returns the integer value.
func (z *ZeroizingMPInt) Big() *big.Int {
	return new(big.Int).SetBytes(trimLeadingZero(z.raw))
}

// Bytes returns the raw two's-complement-framed magnitude, leading
// zero-pad byte included if present.
func (z *ZeroizingMPInt) Bytes() []byte { return z.raw }

// Release overwrites the raw bytes with zero.
func (z *ZeroizingMPInt) Release() {
	for i := range z.raw {
		z.raw[i] = 0
	}
}
