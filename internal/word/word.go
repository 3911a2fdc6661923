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
// github.com:fhecircuits/sha256fhe/internal/word/word.go

// Package word implements the encrypted word layer: a 32-bit integer
// represented as 32 independent bit ciphertexts, and the arithmetic and
// logical operations a SHA-256 compression round needs over it.
//
// Bit 0 of a Word is the integer's least-significant bit. This is the
// single fact in this package most likely to bite a careless port: because
// storage is LSB-first, a *right*-rotation of the integer is a *left*-
// rotation of the underlying slot array. RotateRight below rotates the
// array in the direction that produces the correct integer semantics;
// do not "fix" its index arithmetic without re-deriving it from this
// comment.
package word

import (
	"fmt"

	"github.com/fhecircuits/sha256fhe/internal/gate"
)

// Bits is the width of a Word in bits.
const Bits = 32

// Word is an encrypted 32-bit unsigned integer: 32 single-bit ciphertexts,
// index 0 holding the least-significant bit.
type Word [Bits]gate.Ciphertext

// Encrypt encrypts v bit by bit under ck.
func Encrypt(v uint32, ck *gate.ClientKey) Word {
	var w Word
	for i := 0; i < Bits; i++ {
		w[i] = gate.Encrypt((v>>uint(i))&1 == 1, ck)
	}
	return w
}

// TrivialEncrypt lifts the known plaintext v into a Word, without using any
// secret. Used for the SHA-256 H/K constants.
func TrivialEncrypt(v uint32, sk *gate.ServerKey) Word {
	var w Word
	for i := 0; i < Bits; i++ {
		w[i] = gate.TrivialEncrypt((v>>uint(i))&1 == 1, sk)
	}
	return w
}

// Decrypt recovers the plaintext uint32 value of w under ck.
func Decrypt(w Word, ck *gate.ClientKey) (uint32, error) {
	var v uint32
	for i := 0; i < Bits; i++ {
		bit, err := gate.Decrypt(w[i], ck)
		if err != nil {
			return 0, fmt.Errorf("word: decrypting bit %d: %w", i, err)
		}
		if bit {
			v |= 1 << uint(i)
		}
	}
	return v, nil
}

// Xor computes the bitwise XOR of a and b.
func Xor(a, b Word, sk *gate.ServerKey) (Word, error) {
	var out Word
	for i := 0; i < Bits; i++ {
		bit, err := gate.Xor(a[i], b[i], sk)
		if err != nil {
			return Word{}, fmt.Errorf("word: xor bit %d: %w", i, err)
		}
		out[i] = bit
	}
	return out, nil
}

// And computes the bitwise AND of a and b.
func And(a, b Word, sk *gate.ServerKey) (Word, error) {
	var out Word
	for i := 0; i < Bits; i++ {
		bit, err := gate.And(a[i], b[i], sk)
		if err != nil {
			return Word{}, fmt.Errorf("word: and bit %d: %w", i, err)
		}
		out[i] = bit
	}
	return out, nil
}

// Or computes the bitwise OR of a and b.
func Or(a, b Word, sk *gate.ServerKey) (Word, error) {
	var out Word
	for i := 0; i < Bits; i++ {
		bit, err := gate.Or(a[i], b[i], sk)
		if err != nil {
			return Word{}, fmt.Errorf("word: or bit %d: %w", i, err)
		}
		out[i] = bit
	}
	return out, nil
}

// Not computes the bitwise NOT of a. Never fails: see gate.Not.
func Not(a Word, sk *gate.ServerKey) Word {
	var out Word
	for i := 0; i < Bits; i++ {
		out[i] = gate.Not(a[i], sk)
	}
	return out
}

// RotateRight rotates w right by n bits (0..31), as an integer operation.
// Because index 0 is the least-significant bit, this is implemented as a
// left-rotation of the slot array: out[i] = w[(i+n) % 32]. It is a pure
// index permutation with no gate evaluation, so unlike the other word
// operations it takes no ServerKey.
func RotateRight(w Word, n uint) Word {
	n %= Bits
	var out Word
	for i := 0; i < Bits; i++ {
		out[i] = w[(uint(i)+n)%Bits].Clone()
	}
	return out
}

// ShiftRight performs a logical right shift of w by shift bits (0..32).
// It uses the same index permutation as RotateRight, except the top
// `shift` slots (the new high-order bits) are overwritten with
// trivial_encrypt(false) instead of wrapping the low-order bits around.
// shift >= Bits is a caller error.
func ShiftRight(w Word, shift uint, sk *gate.ServerKey) (Word, error) {
	if shift >= Bits {
		return Word{}, fmt.Errorf("word: shift %d out of range [0, %d)", shift, Bits)
	}
	var out Word
	for i := 0; i < Bits; i++ {
		if uint(i) >= Bits-shift {
			out[i] = gate.TrivialEncrypt(false, sk)
			continue
		}
		out[i] = w[uint(i)+shift].Clone()
	}
	return out, nil
}

// fullAdder computes sum = a xor b xor cin and cout = (a xor b) and cin or
// (a and b), the textbook single-bit ripple-carry adder cell.
func fullAdder(a, b, cin gate.Ciphertext, sk *gate.ServerKey) (sum, cout gate.Ciphertext, err error) {
	aXorB, err := gate.Xor(a, b, sk)
	if err != nil {
		return gate.Ciphertext{}, gate.Ciphertext{}, fmt.Errorf("word: full adder a^b: %w", err)
	}
	sum, err = gate.Xor(aXorB, cin, sk)
	if err != nil {
		return gate.Ciphertext{}, gate.Ciphertext{}, fmt.Errorf("word: full adder sum: %w", err)
	}
	left, err := gate.And(aXorB, cin, sk)
	if err != nil {
		return gate.Ciphertext{}, gate.Ciphertext{}, fmt.Errorf("word: full adder (a^b)&cin: %w", err)
	}
	right, err := gate.And(a, b, sk)
	if err != nil {
		return gate.Ciphertext{}, gate.Ciphertext{}, fmt.Errorf("word: full adder a&b: %w", err)
	}
	cout, err = gate.Or(left, right, sk)
	if err != nil {
		return gate.Ciphertext{}, gate.Ciphertext{}, fmt.Errorf("word: full adder carry out: %w", err)
	}
	return sum, cout, nil
}

// Add computes (a + b) mod 2^32 via a serial ripple-carry chain over the
// 32 bit-lanes, carry-in 0 at bit 0 and the final carry-out discarded.
func Add(a, b Word, sk *gate.ServerKey) (Word, error) {
	var out Word
	carry := gate.TrivialEncrypt(false, sk)
	for i := 0; i < Bits; i++ {
		sum, cout, err := fullAdder(a[i], b[i], carry, sk)
		if err != nil {
			return Word{}, fmt.Errorf("word: add bit %d: %w", i, err)
		}
		out[i] = sum
		carry = cout
	}
	return out, nil
}
