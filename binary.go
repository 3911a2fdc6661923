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
// github.com:fhecircuits/sha256fhe/binary.go

package sha256fhe

import (
	"fmt"

	"github.com/fhecircuits/sha256fhe/internal/gate"
	"github.com/fhecircuits/sha256fhe/internal/word"
)

// ciphertextEncodedLen is the fixed size of a gate.Ciphertext's
// MarshalBinary encoding (see internal/gate.Ciphertext.MarshalBinary).
const ciphertextEncodedLen = 9

// wordEncodedLen is the fixed size of a word.Word's binary encoding: 32
// concatenated ciphertext encodings, bit 0 first.
const wordEncodedLen = word.Bits * ciphertextEncodedLen

func marshalWord(w word.Word) ([]byte, error) {
	out := make([]byte, 0, wordEncodedLen)
	for i, bit := range w {
		enc, err := bit.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("binary: marshaling bit %d: %w", i, err)
		}
		out = append(out, enc...)
	}
	return out, nil
}

func unmarshalWord(data []byte) (word.Word, error) {
	if len(data) != wordEncodedLen {
		return word.Word{}, fmt.Errorf("binary: word encoding length mismatch: want %d bytes, got %d", wordEncodedLen, len(data))
	}
	var w word.Word
	for i := 0; i < word.Bits; i++ {
		var bit gate.Ciphertext
		if err := bit.UnmarshalBinary(data[i*ciphertextEncodedLen : (i+1)*ciphertextEncodedLen]); err != nil {
			return word.Word{}, fmt.Errorf("binary: unmarshaling bit %d: %w", i, err)
		}
		w[i] = bit
	}
	return w, nil
}
