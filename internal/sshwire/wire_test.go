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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitational/osshkeys/internal/ossherr"
)

func TestStringRoundTrip(t *testing.T) {
	for _, tc := range [][]byte{
		nil,
		{},
		[]byte("hello"),
		make([]byte, 4096),
	} {
		w := NewWriter()
		w.String(tc)
		r := NewReader(w.Bytes())
		got, err := r.String()
		require.NoError(t, err)
		// A decoded string is always a non-nil slice; nil and empty
		// inputs encode identically.
		want := append([]byte{}, tc...)
		require.Equal(t, want, got)
		require.Zero(t, r.Len())
	}
}

func TestMPIntRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 127, 128, 255, 256, 1 << 20, 1<<31 - 1} {
		w := NewWriter()
		require.NoError(t, w.MPInt(big.NewInt(n)))
		r := NewReader(w.Bytes())
		got, err := r.MPInt()
		require.NoError(t, err)
		require.Equal(t, big.NewInt(n), got)
	}
}

func TestMPIntWriteRejectsNegative(t *testing.T) {
	w := NewWriter()
	err := w.MPInt(big.NewInt(-1))
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindInvalidArgument))
}

func TestMPIntHighBitGetsZeroPad(t *testing.T) {
	// 0x80 has its high bit set, so the wire encoding must carry a leading
	// 0x00 pad byte to keep the value nonnegative.
	w := NewWriter()
	require.NoError(t, w.MPInt(big.NewInt(0x80)))
	b := w.Bytes()
	require.Equal(t, []byte{0, 0, 0, 2, 0x00, 0x80}, b)
}

func TestUTF8RejectsInvalidBytes(t *testing.T) {
	w := NewWriter()
	w.String([]byte{0xff, 0xfe, 0xfd})
	r := NewReader(w.Bytes())
	_, err := r.UTF8()
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindInvalidFormat))
}

func TestShortReadFails(t *testing.T) {
	r := NewReader([]byte{0, 0, 0, 10, 1, 2, 3})
	_, err := r.String()
	require.Error(t, err)
	require.True(t, ossherr.Is(err, ossherr.KindInvalidFormat))
}

func TestNameListRoundTrip(t *testing.T) {
	w := NewWriter()
	w.NameList([]string{"aes256-ctr", "aes256-cbc", "none"})
	r := NewReader(w.Bytes())
	got, err := r.NameList()
	require.NoError(t, err)
	require.Equal(t, []string{"aes256-ctr", "aes256-cbc", "none"}, got)
}

func TestZeroizingBytesReleaseWipesBuffer(t *testing.T) {
	w := NewWriter()
	w.String([]byte("sensitive"))
	r := NewReader(w.Bytes())
	z, err := r.StringZeroizing()
	require.NoError(t, err)
	require.Equal(t, "sensitive", string(z))
	z.Release()
	for _, b := range z {
		require.Zero(t, b)
	}
}

func TestZeroizingUint32Release(t *testing.T) {
	w := NewWriter()
	w.Uint32(0xdeadbeef)
	r := NewReader(w.Bytes())
	z, err := r.Uint32Zeroizing()
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), z.Value())
	z.Release()
	require.Zero(t, z.Value())
}

func TestBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		w := NewWriter()
		w.Bool(v)
		r := NewReader(w.Bytes())
		got, err := r.Bool()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestUint64RoundTrip(t *testing.T) {
	w := NewWriter()
	w.Uint64(0x0102030405060708)
	r := NewReader(w.Bytes())
	got, err := r.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), got)
}
