// Copyright (c) 2025 sha256fhe contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:fhecircuits/sha256fhe/internal/word/word_test.go

package word_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhecircuits/sha256fhe/internal/gate"
	"github.com/fhecircuits/sha256fhe/internal/word"
)

func keys(t *testing.T) (*gate.ClientKey, *gate.ServerKey) {
	t.Helper()
	ck, sk, err := gate.GenerateKeys()
	require.NoError(t, err)
	return ck, sk
}

func Test_EncryptDecryptRoundTrip(t *testing.T) {
	ck, _ := keys(t)
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 64; i++ {
		x := r.Uint32()
		got, err := word.Decrypt(word.Encrypt(x, ck), ck)
		require.NoError(t, err)
		require.Equal(t, x, got)
	}
}

func Test_TrivialEncryptDecryptRoundTrip(t *testing.T) {
	ck, sk := keys(t)
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 64; i++ {
		x := r.Uint32()
		got, err := word.Decrypt(word.TrivialEncrypt(x, sk), ck)
		require.NoError(t, err)
		require.Equal(t, x, got)
	}
}

func Test_BitwiseLaws(t *testing.T) {
	ck, sk := keys(t)
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 64; i++ {
		a := r.Uint32()
		b := r.Uint32()
		wa := word.Encrypt(a, ck)
		wb := word.Encrypt(b, ck)

		xorW, err := word.Xor(wa, wb, sk)
		require.NoError(t, err)
		got, err := word.Decrypt(xorW, ck)
		require.NoError(t, err)
		require.Equal(t, a^b, got)

		andW, err := word.And(wa, wb, sk)
		require.NoError(t, err)
		got, err = word.Decrypt(andW, ck)
		require.NoError(t, err)
		require.Equal(t, a&b, got)

		orW, err := word.Or(wa, wb, sk)
		require.NoError(t, err)
		got, err = word.Decrypt(orW, ck)
		require.NoError(t, err)
		require.Equal(t, a|b, got)

		notW := word.Not(wa, sk)
		got, err = word.Decrypt(notW, ck)
		require.NoError(t, err)
		require.Equal(t, ^a, got)
	}
}

func Test_RotateRight(t *testing.T) {
	ck, _ := keys(t)
	r := rand.New(rand.NewSource(4))

	for i := 0; i < 64; i++ {
		x := r.Uint32()
		n := uint(r.Intn(32))
		w := word.Encrypt(x, ck)

		got, err := word.Decrypt(word.RotateRight(w, n), ck)
		require.NoError(t, err)
		require.Equal(t, bits.RotateLeft32(x, -int(n)), got)
	}
}

func Test_ShiftRight(t *testing.T) {
	ck, sk := keys(t)
	r := rand.New(rand.NewSource(5))

	for i := 0; i < 64; i++ {
		x := r.Uint32()
		n := uint(r.Intn(32))
		w := word.Encrypt(x, ck)

		shifted, err := word.ShiftRight(w, n, sk)
		require.NoError(t, err)
		got, err := word.Decrypt(shifted, ck)
		require.NoError(t, err)
		require.Equal(t, x>>n, got)
	}

	w := word.Encrypt(1, ck)
	_, err := word.ShiftRight(w, 32, sk)
	require.Error(t, err)
	_, err = word.ShiftRight(w, 33, sk)
	require.Error(t, err)
}

func Test_Add(t *testing.T) {
	ck, sk := keys(t)
	r := rand.New(rand.NewSource(6))

	for i := 0; i < 64; i++ {
		a := r.Uint32()
		b := r.Uint32()
		sum, err := word.Add(word.Encrypt(a, ck), word.Encrypt(b, ck), sk)
		require.NoError(t, err)
		got, err := word.Decrypt(sum, ck)
		require.NoError(t, err)
		require.Equal(t, a+b, got)
	}
}
