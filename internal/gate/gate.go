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
// github.com:fhecircuits/sha256fhe/internal/gate/gate.go

// Package gate is the bit gate layer: a single-bit ciphertext type plus the
// capability set {encrypt, trivial-encrypt, decrypt, AND, OR, XOR, NOT}
// that every higher layer in this module is built on.
//
// In a production deployment this package's interface is satisfied by an
// underlying bootstrapped TFHE backend: NOT never fails because real TFHE
// negation is a free linear operation, while AND/OR/XOR can fail because
// they involve a bootstrap. This package ships a reference implementation
// instead of binding to one, so the circuit layers built on top of it can
// be developed and tested independently of any particular scheme's
// parameter and key-generation machinery. The reference backend below
// makes no cryptographic secrecy claim — Ciphertext carries its plaintext
// bit directly — but it does enforce the same key-compatibility contract a
// real backend would, so the circuit layers built on top of this package
// are fully exercised and swapping in a real backend later is a matter of
// satisfying the same function signatures.
package gate

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrKeyMismatch is returned when a gate operation is given ciphertexts or
// keys that were not generated from the same GenerateKeys call.
var ErrKeyMismatch = errors.New("gate: ciphertext and key belong to different scheme instances")

// keyID identifies which GenerateKeys call produced a key or ciphertext.
// Real FHE schemes don't need this (scheme incompatibility shows up as
// garbage plaintexts or a failed bootstrap); the reference backend adds it
// purely so mixing ciphertexts from different key instances — a programmer
// error, not a runtime condition — is caught deterministically instead of
// silently producing nonsense.
type keyID uint64

// ClientKey is held by the party that can encrypt and decrypt. It is never
// shared with the evaluator.
type ClientKey struct {
	id keyID
}

// ServerKey is held by the party that evaluates gates. It cannot decrypt.
type ServerKey struct {
	id keyID
}

// GenerateKeys produces a fresh, mutually compatible (ClientKey, ServerKey)
// pair. Real FHE key generation — parameter selection, bootstrapping keys,
// and the rest of a scheme's setup — is out of scope for this package; this
// is the minimal stand-in needed to exercise the rest of the stack end to
// end.
func GenerateKeys() (*ClientKey, *ServerKey, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, nil, fmt.Errorf("gate: generating key id: %w", err)
	}
	id := keyID(binary.BigEndian.Uint64(buf[:]))
	return &ClientKey{id: id}, &ServerKey{id: id}, nil
}

// Ciphertext is an opaque token representing a single encrypted bit. It is
// a value type: assigning or passing it by value already yields an
// independent token with the same plaintext, so Clone is a no-op kept only
// to spell out that intent at call sites.
type Ciphertext struct {
	id  keyID
	bit bool
}

// Clone returns an independent ciphertext with the same plaintext.
func (c Ciphertext) Clone() Ciphertext {
	return c
}

// Encrypt produces a ciphertext of bit under the given client key.
func Encrypt(bit bool, ck *ClientKey) Ciphertext {
	return Ciphertext{id: ck.id, bit: bit}
}

// TrivialEncrypt lifts a known plaintext bit into a ciphertext compatible
// with homomorphic gates, without using any secret. Used to embed the
// SHA-256 constants and the zero bits introduced by logical shifts.
func TrivialEncrypt(bit bool, sk *ServerKey) Ciphertext {
	return Ciphertext{id: sk.id, bit: bit}
}

// Decrypt recovers the plaintext bit of c under the given client key.
func Decrypt(c Ciphertext, ck *ClientKey) (bool, error) {
	if c.id != ck.id {
		return false, ErrKeyMismatch
	}
	return c.bit, nil
}

func checkKeys(sk *ServerKey, ids ...keyID) error {
	for _, id := range ids {
		if id != sk.id {
			return ErrKeyMismatch
		}
	}
	return nil
}

// And computes the homomorphic AND of a and b.
func And(a, b Ciphertext, sk *ServerKey) (Ciphertext, error) {
	if err := checkKeys(sk, a.id, b.id); err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{id: sk.id, bit: a.bit && b.bit}, nil
}

// Or computes the homomorphic OR of a and b.
func Or(a, b Ciphertext, sk *ServerKey) (Ciphertext, error) {
	if err := checkKeys(sk, a.id, b.id); err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{id: sk.id, bit: a.bit || b.bit}, nil
}

// Xor computes the homomorphic XOR of a and b.
func Xor(a, b Ciphertext, sk *ServerKey) (Ciphertext, error) {
	if err := checkKeys(sk, a.id, b.id); err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{id: sk.id, bit: a.bit != b.bit}, nil
}

// Not computes the homomorphic NOT of a. Unlike AND/OR/XOR this never
// bootstraps in a real TFHE scheme (negation is a free linear operation on
// the ciphertext), so it cannot fail. No key check is made; the result
// carries the ServerKey's key identifier.
func Not(a Ciphertext, sk *ServerKey) Ciphertext {
	return Ciphertext{id: sk.id, bit: !a.bit}
}

// MarshalBinary encodes c as an 9-byte opaque blob (8-byte key id, 1-byte
// bit), satisfying encoding.BinaryMarshaler so higher layers can ship
// encrypted values across a wire to a remote evaluator.
func (c Ciphertext) MarshalBinary() ([]byte, error) {
	out := make([]byte, 9)
	binary.BigEndian.PutUint64(out[:8], uint64(c.id))
	if c.bit {
		out[8] = 1
	}
	return out, nil
}

// UnmarshalBinary decodes a blob produced by MarshalBinary.
func (c *Ciphertext) UnmarshalBinary(data []byte) error {
	if len(data) != 9 {
		return fmt.Errorf("gate: invalid ciphertext encoding: want 9 bytes, got %d", len(data))
	}
	c.id = keyID(binary.BigEndian.Uint64(data[:8]))
	c.bit = data[8] != 0
	return nil
}
