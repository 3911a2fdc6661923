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
// github.com:fhecircuits/sha256fhe/round.go

package sha256fhe

import (
	"fmt"

	"github.com/fhecircuits/sha256fhe/internal/fanout"
	"github.com/fhecircuits/sha256fhe/internal/gate"
	"github.com/fhecircuits/sha256fhe/internal/word"
)

// alphabet is the 8-word SHA-256 compression working state [a,b,c,d,e,f,g,h].
type alphabet [8]word.Word

// round performs one compression-function step on A with the given
// round-key argument, then rotates the alphabet right by one position, so
// the returned value is already [h',a,b,c,d',e,f,g] — the state the next
// round starts from. This folds the two steps the reference derivation
// lists separately (computing d'/h' and then rotating) into one function,
// since no caller ever wants the unrotated intermediate.
//
// Sigma1(e), Ch(e,f,g), Sigma0(a) and Maj(a,b,c) have no data dependency
// on one another; they run concurrently via internal/fanout.
func round(a alphabet, kArg word.Word, sk *gate.ServerKey) (alphabet, error) {
	var sig1e, cheFG, sig0a, majABC word.Word
	err := fanout.Run(
		func() (err error) { sig1e, err = capSigma1(a[4], sk); return },
		func() (err error) { cheFG, err = ch(a[4], a[5], a[6], sk); return },
		func() (err error) { sig0a, err = capSigma0(a[0], sk); return },
		func() (err error) { majABC, err = maj(a[0], a[1], a[2], sk); return },
	)
	if err != nil {
		return alphabet{}, fmt.Errorf("round: computing subexpressions: %w", err)
	}

	t1, err := word.Add(a[7], sig1e, sk)
	if err != nil {
		return alphabet{}, fmt.Errorf("round: t1 h+Sigma1(e): %w", err)
	}
	t1, err = word.Add(t1, cheFG, sk)
	if err != nil {
		return alphabet{}, fmt.Errorf("round: t1 +Ch(e,f,g): %w", err)
	}
	t1, err = word.Add(t1, kArg, sk)
	if err != nil {
		return alphabet{}, fmt.Errorf("round: t1 +k_arg: %w", err)
	}

	t2, err := word.Add(sig0a, majABC, sk)
	if err != nil {
		return alphabet{}, fmt.Errorf("round: t2 Sigma0(a)+Maj(a,b,c): %w", err)
	}

	dPrime, err := word.Add(a[3], t1, sk)
	if err != nil {
		return alphabet{}, fmt.Errorf("round: d' = d+t1: %w", err)
	}
	hPrime, err := word.Add(t1, t2, sk)
	if err != nil {
		return alphabet{}, fmt.Errorf("round: h' = t1+t2: %w", err)
	}

	return alphabet{hPrime, a[0], a[1], a[2], dPrime, a[4], a[5], a[6]}, nil
}
