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
// github.com:fhecircuits/sha256fhe/sha256.go

// Package sha256fhe evaluates SHA-256 homomorphically: a client encrypts a
// byte stream under its secret key, a server computes the digest under
// only the evaluation key without ever observing a plaintext bit, and the
// client decrypts the result to recover exactly what SHA-256 over the
// plaintext would have produced.
package sha256fhe

import (
	"fmt"

	"github.com/fhecircuits/sha256fhe/internal/gate"
	"github.com/fhecircuits/sha256fhe/internal/word"
)

// SHA256 evaluates the compression function over pi's blocks and returns
// the resulting digest. pi's word count must be a positive multiple of
// wordsPerBlock (16); anything else returns ErrInvalidPaddedInputLength.
func SHA256(pi *PaddedInput, sk *gate.ServerKey) (*Digest, error) {
	n := len(pi.Words)
	if n == 0 || n%wordsPerBlock != 0 {
		return nil, ErrInvalidPaddedInputLength
	}

	var state [8]word.Word
	for i, h := range initHash {
		state[i] = word.TrivialEncrypt(h, sk)
	}
	var k [64]word.Word
	for i, c := range roundConstants {
		k[i] = word.TrivialEncrypt(c, sk)
	}

	blocks := n / wordsPerBlock
	for b := 0; b < blocks; b++ {
		a := alphabet{state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]}

		var w [wordsPerBlock]word.Word
		offset := b * wordsPerBlock

		for i := 0; i < wordsPerBlock; i++ {
			w[i] = pi.Words[offset+i]
			kArg, err := word.Add(k[i], w[i], sk)
			if err != nil {
				return nil, fmt.Errorf("sha256fhe: block %d round %d k_arg: %w", b, i, err)
			}
			a, err = round(a, kArg, sk)
			if err != nil {
				return nil, fmt.Errorf("sha256fhe: block %d round %d: %w", b, i, err)
			}
		}

		for i := wordsPerBlock; i < 64; i++ {
			j := i % wordsPerBlock

			s0, err := sigma0(w[(i+1)%wordsPerBlock], sk)
			if err != nil {
				return nil, fmt.Errorf("sha256fhe: block %d round %d sigma0: %w", b, i, err)
			}
			s1, err := sigma1(w[(i+14)%wordsPerBlock], sk)
			if err != nil {
				return nil, fmt.Errorf("sha256fhe: block %d round %d sigma1: %w", b, i, err)
			}

			next, err := word.Add(w[j], s0, sk)
			if err != nil {
				return nil, fmt.Errorf("sha256fhe: block %d round %d schedule +sigma0: %w", b, i, err)
			}
			next, err = word.Add(next, s1, sk)
			if err != nil {
				return nil, fmt.Errorf("sha256fhe: block %d round %d schedule +sigma1: %w", b, i, err)
			}
			next, err = word.Add(next, w[(i+9)%wordsPerBlock], sk)
			if err != nil {
				return nil, fmt.Errorf("sha256fhe: block %d round %d schedule +W[i-7]: %w", b, i, err)
			}
			w[j] = next

			kArg, err := word.Add(w[j], k[i], sk)
			if err != nil {
				return nil, fmt.Errorf("sha256fhe: block %d round %d k_arg: %w", b, i, err)
			}
			a, err = round(a, kArg, sk)
			if err != nil {
				return nil, fmt.Errorf("sha256fhe: block %d round %d: %w", b, i, err)
			}
		}

		for i := 0; i < 8; i++ {
			sum, err := word.Add(state[i], a[i], sk)
			if err != nil {
				return nil, fmt.Errorf("sha256fhe: block %d chaining add %d: %w", b, i, err)
			}
			state[i] = sum
		}
	}

	return &Digest{Words: state}, nil
}
