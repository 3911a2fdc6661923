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
// github.com:fhecircuits/sha256fhe/digest.go

package sha256fhe

import (
	"encoding/binary"
	"fmt"

	"github.com/fhecircuits/sha256fhe/internal/gate"
	"github.com/fhecircuits/sha256fhe/internal/word"
)

// DecryptDigest decrypts each of d's 8 words under ck and serializes them
// big-endian into a 32-byte SHA-256 digest.
func DecryptDigest(d *Digest, ck *gate.ClientKey) ([32]byte, error) {
	var out [32]byte
	for i, w := range d.Words {
		v, err := word.Decrypt(w, ck)
		if err != nil {
			return [32]byte{}, fmt.Errorf("sha256fhe: decrypting digest word %d: %w", i, err)
		}
		binary.BigEndian.PutUint32(out[i*4:i*4+4], v)
	}
	return out, nil
}
