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
// github.com:fhecircuits/sha256fhe/mix.go

package sha256fhe

import (
	"fmt"

	"github.com/fhecircuits/sha256fhe/internal/gate"
	"github.com/fhecircuits/sha256fhe/internal/word"
)

// sigma0 is the SHA-256 message-schedule mixer:
// ROTR(x,7) xor ROTR(x,18) xor SHR(x,3).
func sigma0(x word.Word, sk *gate.ServerKey) (word.Word, error) {
	a := word.RotateRight(x, 7)
	b := word.RotateRight(x, 18)
	c, err := word.ShiftRight(x, 3, sk)
	if err != nil {
		return word.Word{}, fmt.Errorf("mix: sigma0 shift: %w", err)
	}
	return xor3(a, b, c, sk)
}

// sigma1 is ROTR(x,17) xor ROTR(x,19) xor SHR(x,10).
func sigma1(x word.Word, sk *gate.ServerKey) (word.Word, error) {
	a := word.RotateRight(x, 17)
	b := word.RotateRight(x, 19)
	c, err := word.ShiftRight(x, 10, sk)
	if err != nil {
		return word.Word{}, fmt.Errorf("mix: sigma1 shift: %w", err)
	}
	return xor3(a, b, c, sk)
}

// capSigma0 is the SHA-256 compression mixer ROTR(x,2) xor ROTR(x,13) xor
// ROTR(x,22).
func capSigma0(x word.Word, sk *gate.ServerKey) (word.Word, error) {
	a := word.RotateRight(x, 2)
	b := word.RotateRight(x, 13)
	c := word.RotateRight(x, 22)
	return xor3(a, b, c, sk)
}

// capSigma1 is ROTR(x,6) xor ROTR(x,11) xor ROTR(x,25).
func capSigma1(x word.Word, sk *gate.ServerKey) (word.Word, error) {
	a := word.RotateRight(x, 6)
	b := word.RotateRight(x, 11)
	c := word.RotateRight(x, 25)
	return xor3(a, b, c, sk)
}

// ch is the SHA-256 "choose" function: (x AND y) xor ((NOT x) AND z).
func ch(x, y, z word.Word, sk *gate.ServerKey) (word.Word, error) {
	xy, err := word.And(x, y, sk)
	if err != nil {
		return word.Word{}, fmt.Errorf("mix: ch x&y: %w", err)
	}
	notXZ, err := word.And(word.Not(x, sk), z, sk)
	if err != nil {
		return word.Word{}, fmt.Errorf("mix: ch ~x&z: %w", err)
	}
	out, err := word.Xor(xy, notXZ, sk)
	if err != nil {
		return word.Word{}, fmt.Errorf("mix: ch xor: %w", err)
	}
	return out, nil
}

// maj is the SHA-256 "majority" function:
// (x AND y) xor (x AND z) xor (y AND z).
func maj(x, y, z word.Word, sk *gate.ServerKey) (word.Word, error) {
	xy, err := word.And(x, y, sk)
	if err != nil {
		return word.Word{}, fmt.Errorf("mix: maj x&y: %w", err)
	}
	xz, err := word.And(x, z, sk)
	if err != nil {
		return word.Word{}, fmt.Errorf("mix: maj x&z: %w", err)
	}
	yz, err := word.And(y, z, sk)
	if err != nil {
		return word.Word{}, fmt.Errorf("mix: maj y&z: %w", err)
	}
	return xor3(xy, xz, yz, sk)
}

func xor3(a, b, c word.Word, sk *gate.ServerKey) (word.Word, error) {
	ab, err := word.Xor(a, b, sk)
	if err != nil {
		return word.Word{}, fmt.Errorf("mix: xor3 a^b: %w", err)
	}
	out, err := word.Xor(ab, c, sk)
	if err != nil {
		return word.Word{}, fmt.Errorf("mix: xor3 ^c: %w", err)
	}
	return out, nil
}
