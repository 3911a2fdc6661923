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
// github.com:fhecircuits/sha256fhe/internal/fanout/fanout.go

// Package fanout runs independent gate-circuit subexpressions concurrently
// and fans their results back in. It exists because a SHA-256 compression
// round has several subexpressions with no data dependency between them
// (Sigma1(e), Ch(e,f,g), Sigma0(a), Maj(a,b,c)); evaluating them in
// parallel is an optional optimization, not a requirement of the circuit.
package fanout

// Run executes each of fns in its own goroutine and blocks until all have
// returned. It returns the first non-nil error encountered, if any; every
// fn still runs to completion regardless of another fn's failure, since
// gate operations in this module have no side effects to abort.
func Run(fns ...func() error) error {
	if len(fns) == 0 {
		return nil
	}
	results := make(chan error, len(fns))
	for _, fn := range fns {
		fn := fn
		go func() {
			results <- fn()
		}()
	}
	var first error
	for range fns {
		if err := <-results; err != nil && first == nil {
			first = err
		}
	}
	return first
}
