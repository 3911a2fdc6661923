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
// github.com:fhecircuits/sha256fhe/padding.go

package sha256fhe

import "encoding/binary"

// Pad applies FIPS 180-4 padding to message in the clear: append 0x80,
// zero-fill to 56 bytes modulo 64, then append the bit length of message
// as a big-endian 64-bit integer. The result's length is always a
// positive multiple of 64 bytes. Padding runs on plaintext and therefore
// leaks the input length; callers who need to hide it must pad to a fixed
// maximum length themselves before calling EncryptInput.
func Pad(message []byte) []byte {
	bitLen := uint64(len(message)) * 8

	padded := make([]byte, len(message), len(message)+1+64)
	copy(padded, message)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0x00)
	}

	var lenBytes [8]byte
	binary.BigEndian.PutUint64(lenBytes[:], bitLen)
	return append(padded, lenBytes[:]...)
}
