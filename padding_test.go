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
// github.com:fhecircuits/sha256fhe/padding_test.go

package sha256fhe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhecircuits/sha256fhe"
)

func Test_PadEmpty(t *testing.T) {
	padded := sha256fhe.Pad(nil)
	require.Len(t, padded, 64)

	want := make([]byte, 64)
	want[0] = 0x80
	require.Equal(t, want, padded)
}

func Test_PadHelloWorld(t *testing.T) {
	padded := sha256fhe.Pad([]byte("hello world"))
	require.Len(t, padded, 64)
	require.Equal(t,
		[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x58},
		padded[len(padded)-8:])
}

func Test_PadLengthIsMultipleOf64(t *testing.T) {
	for _, n := range []int{0, 1, 55, 56, 57, 63, 64, 65, 111, 112, 200} {
		padded := sha256fhe.Pad(make([]byte, n))
		require.Equal(t, 0, len(padded)%64, "n=%d", n)
		require.True(t, len(padded) >= n+9, "n=%d", n)
	}
}
