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

package sshwire

import (
	"math/big"
	"strings"

	"github.com/gravitational/osshkeys/internal/ossherr"
)

// Writer builds a byte stream out of RFC 4251 primitives. It is the
// encoder's mirror of Reader.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte { return w.buf }

// Byte appends a single octet.
func (w *Writer) Byte(b byte) { w.buf = append(w.buf, b) }

// Bool appends one octet: 1 for true, 0 for false.
func (w *Writer) Bool(v bool) {
	if v {
		w.Byte(1)
	} else {
		w.Byte(0)
	}
}

// Uint32 appends a big-endian 32-bit unsigned integer.
func (w *Writer) Uint32(v uint32) {
	w.buf = append(w.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// Uint64 appends a big-endian 64-bit unsigned integer.
func (w *Writer) Uint64(v uint64) {
	for shift := 56; shift >= 0; shift -= 8 {
		w.buf = append(w.buf, byte(v>>uint(shift)))
	}
}

// String appends a uint32 length prefix followed by b.
func (w *Writer) String(b []byte) {
	w.Uint32(uint32(len(b)))
	w.buf = append(w.buf, b...)
}

// UTF8 appends s framed identically to String.
func (w *Writer) UTF8(s string) { w.String([]byte(s)) }

// MPInt appends n as a two's-complement, big-endian, minimal-sign-preserving
// mpint. n must be nonnegative: this library never writes negative mpints.
// Zero is encoded as an empty string.
func (w *Writer) MPInt(n *big.Int) error {
	if n.Sign() < 0 {
		return ossherr.Newf(ossherr.KindInvalidArgument, "mpint must be nonnegative")
	}
	if n.Sign() == 0 {
		w.String(nil)
		return nil
	}
	b := n.Bytes()
	if b[0]&0x80 != 0 {
		padded := make([]byte, len(b)+1)
		copy(padded[1:], b)
		b = padded
	}
	w.String(b)
	return nil
}

// NameList appends names as a comma-separated string.
func (w *Writer) NameList(names []string) { w.UTF8(strings.Join(names, ",")) }
