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
// github.com:fhecircuits/sha256fhe/internal/gate/gate_test.go

package gate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhecircuits/sha256fhe/internal/gate"
)

func Test_EncryptDecryptRoundTrip(t *testing.T) {
	ck, _, err := gate.GenerateKeys()
	require.NoError(t, err)

	for _, bit := range []bool{true, false} {
		ct := gate.Encrypt(bit, ck)
		got, err := gate.Decrypt(ct, ck)
		require.NoError(t, err)
		require.Equal(t, bit, got)
	}
}

func Test_TrivialEncryptDecrypt(t *testing.T) {
	ck, sk, err := gate.GenerateKeys()
	require.NoError(t, err)

	for _, bit := range []bool{true, false} {
		ct := gate.TrivialEncrypt(bit, sk)
		got, err := gate.Decrypt(ct, ck)
		require.NoError(t, err)
		require.Equal(t, bit, got)
	}
}

func Test_Gates(t *testing.T) {
	ck, sk, err := gate.GenerateKeys()
	require.NoError(t, err)

	tests := []struct {
		name string
		a, b bool
	}{
		{"00", false, false},
		{"01", false, true},
		{"10", true, false},
		{"11", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := gate.Encrypt(tt.a, ck)
			b := gate.Encrypt(tt.b, ck)

			and, err := gate.And(a, b, sk)
			require.NoError(t, err)
			got, err := gate.Decrypt(and, ck)
			require.NoError(t, err)
			require.Equal(t, tt.a && tt.b, got)

			or, err := gate.Or(a, b, sk)
			require.NoError(t, err)
			got, err = gate.Decrypt(or, ck)
			require.NoError(t, err)
			require.Equal(t, tt.a || tt.b, got)

			xor, err := gate.Xor(a, b, sk)
			require.NoError(t, err)
			got, err = gate.Decrypt(xor, ck)
			require.NoError(t, err)
			require.Equal(t, tt.a != tt.b, got)

			not := gate.Not(a, sk)
			got, err = gate.Decrypt(not, ck)
			require.NoError(t, err)
			require.Equal(t, !tt.a, got)
		})
	}
}

func Test_KeyMismatch(t *testing.T) {
	ck1, sk1, err := gate.GenerateKeys()
	require.NoError(t, err)
	_, sk2, err := gate.GenerateKeys()
	require.NoError(t, err)

	a := gate.Encrypt(true, ck1)
	b := gate.Encrypt(false, ck1)

	_, err = gate.And(a, b, sk2)
	require.ErrorIs(t, err, gate.ErrKeyMismatch)

	_, err = gate.Decrypt(gate.TrivialEncrypt(true, sk2), ck1)
	require.ErrorIs(t, err, gate.ErrKeyMismatch)
}

func Test_MarshalUnmarshalRoundTrip(t *testing.T) {
	ck, _, err := gate.GenerateKeys()
	require.NoError(t, err)

	ct := gate.Encrypt(true, ck)
	data, err := ct.MarshalBinary()
	require.NoError(t, err)

	var got gate.Ciphertext
	require.NoError(t, got.UnmarshalBinary(data))

	bit, err := gate.Decrypt(got, ck)
	require.NoError(t, err)
	require.True(t, bit)
}
