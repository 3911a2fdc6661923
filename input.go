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
// github.com:fhecircuits/sha256fhe/input.go

package sha256fhe

import (
	"encoding/binary"

	"github.com/fhecircuits/sha256fhe/internal/gate"
	"github.com/fhecircuits/sha256fhe/internal/word"
)

// EncryptInput pads message per FIPS 180-4 and encrypts it word by word
// under ck, producing a PaddedInput ready for SHA256. Padding and
// encryption are a single call here, even though Pad is also exported on
// its own for standalone testing.
func EncryptInput(message []byte, ck *gate.ClientKey) (*PaddedInput, error) {
	padded := Pad(message)
	words := make([]word.Word, len(padded)/4)
	for i := range words {
		v := binary.BigEndian.Uint32(padded[i*4 : i*4+4])
		words[i] = word.Encrypt(v, ck)
	}
	return &PaddedInput{Words: words}, nil
}

// TrivialEncryptInput is EncryptInput's counterpart using only the server
// key's trivial-encrypt: it pads message and lifts the plaintext words
// into the circuit without any secret. The resulting PaddedInput is
// structurally identical to one produced by EncryptInput and exercises
// the same evaluator; it exists for testing and for inputs with no
// confidentiality requirement.
func TrivialEncryptInput(message []byte, sk *gate.ServerKey) (*PaddedInput, error) {
	padded := Pad(message)
	words := make([]word.Word, len(padded)/4)
	for i := range words {
		v := binary.BigEndian.Uint32(padded[i*4 : i*4+4])
		words[i] = word.TrivialEncrypt(v, sk)
	}
	return &PaddedInput{Words: words}, nil
}
