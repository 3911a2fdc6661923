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
// github.com:fhecircuits/sha256fhe/types.go

package sha256fhe

import (
	"encoding/binary"
	"fmt"

	"github.com/fhecircuits/sha256fhe/internal/word"
)

// PaddedInput (PI) is an ordered sequence of encrypted 32-bit words
// representing a SHA-256-padded message, big-endian 4-byte chunking.
// EncryptInput and TrivialEncryptInput always produce a positive multiple
// of 16 words (one 512-bit block each); SHA256 rejects any other length.
type PaddedInput struct {
	Words []word.Word
}

// wordsPerBlock is the number of 32-bit words in one 512-bit SHA-256 block.
const wordsPerBlock = 16

// Blocks reports how many 512-bit blocks pi contains.
func (pi *PaddedInput) Blocks() int {
	return len(pi.Words) / wordsPerBlock
}

// Digest (D) is the 8-word SHA-256 chaining state produced by the
// evaluator, in h0..h7 order.
type Digest struct {
	Words [8]word.Word
}

// MarshalBinary encodes pi as a 4-byte big-endian word count followed by
// each word's ciphertext encoding, so an encrypted input can be shipped to
// a remote evaluator (spec's Persistence contract: round-trip decryption
// equality, not a standardized wire format).
func (pi *PaddedInput) MarshalBinary() ([]byte, error) {
	out := make([]byte, 4, 4+len(pi.Words)*wordEncodedLen)
	binary.BigEndian.PutUint32(out, uint32(len(pi.Words)))
	for _, w := range pi.Words {
		enc, err := marshalWord(w)
		if err != nil {
			return nil, fmt.Errorf("sha256fhe: marshaling padded input: %w", err)
		}
		out = append(out, enc...)
	}
	return out, nil
}

// UnmarshalBinary decodes a blob produced by MarshalBinary.
func (pi *PaddedInput) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("sha256fhe: padded input encoding too short: %d bytes", len(data))
	}
	n := int(binary.BigEndian.Uint32(data[:4]))
	data = data[4:]
	if len(data) != n*wordEncodedLen {
		return fmt.Errorf("sha256fhe: padded input encoding length mismatch: want %d words (%d bytes), got %d bytes", n, n*wordEncodedLen, len(data))
	}
	words := make([]word.Word, n)
	for i := 0; i < n; i++ {
		w, err := unmarshalWord(data[i*wordEncodedLen : (i+1)*wordEncodedLen])
		if err != nil {
			return fmt.Errorf("sha256fhe: unmarshaling padded input word %d: %w", i, err)
		}
		words[i] = w
	}
	pi.Words = words
	return nil
}

// MarshalBinary encodes d as the concatenation of its 8 words' ciphertext
// encodings, in h0..h7 order.
func (d *Digest) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 8*wordEncodedLen)
	for i, w := range d.Words {
		enc, err := marshalWord(w)
		if err != nil {
			return nil, fmt.Errorf("sha256fhe: marshaling digest word %d: %w", i, err)
		}
		out = append(out, enc...)
	}
	return out, nil
}

// UnmarshalBinary decodes a blob produced by Digest.MarshalBinary.
func (d *Digest) UnmarshalBinary(data []byte) error {
	if len(data) != 8*wordEncodedLen {
		return fmt.Errorf("sha256fhe: digest encoding length mismatch: want %d bytes, got %d", 8*wordEncodedLen, len(data))
	}
	for i := 0; i < 8; i++ {
		w, err := unmarshalWord(data[i*wordEncodedLen : (i+1)*wordEncodedLen])
		if err != nil {
			return fmt.Errorf("sha256fhe: unmarshaling digest word %d: %w", i, err)
		}
		d.Words[i] = w
	}
	return nil
}
