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
// github.com:fhecircuits/sha256fhe/errors.go

package sha256fhe

import "errors"

// ErrInvalidPaddedInputLength is returned when a PaddedInput's word count
// is not a positive multiple of 16 (one 512-bit block). Feeding the
// evaluator an un-padded or truncated input is a caller error; this module
// reports it rather than panicking, matching the gate layer's own
// mismatch-as-error policy (internal/gate.ErrKeyMismatch).
var ErrInvalidPaddedInputLength = errors.New("sha256fhe: padded input length must be a positive multiple of 16 words")
