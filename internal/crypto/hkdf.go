// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

// HashLen is the output size of the underlying hash function (SHA-256).
const HashLen = sha256.Size

// MaxOutputLength is the largest amount of keying material a single Expand
// call can produce: 255 blocks of HashLen bytes (RFC 5869 §2.3).
const MaxOutputLength = 255 * HashLen

// Extract implements the HKDF-Extract step (RFC 5869 §2.2). It concentrates
// the entropy of ikm into a fixed-length pseudorandom key:
//
//	PRK = HMAC-SHA256(key = salt, message = ikm)
//
// A nil or empty salt is replaced with HashLen zero bytes, as the RFC
// prescribes. Extract never fails; ikm may be any length including zero.
func Extract(salt, ikm []byte) []byte {
	if len(salt) == 0 {
		salt = make([]byte, HashLen)
	}

	mac := hmac.New(sha256.New, salt)
	mac.Write(ikm)
	return mac.Sum(nil)
}

// Expand implements the HKDF-Expand step (RFC 5869 §2.3). It stretches prk
// into length bytes of output keying material bound to the context string
// info, using the iterated construction:
//
//	T(0) = empty
//	T(i) = HMAC-SHA256(key = prk, message = T(i-1) || info || byte(i))
//
// The single-byte block counter limits the output to MaxOutputLength (8160)
// bytes; requests outside 1..MaxOutputLength return ErrInvalidOutputLength.
//
// A prk shorter than HashLen is accepted: RFC 5869 does not mandate a
// minimum key length for Expand, and HMAC handles short keys by definition.
// Output is deterministic and, for fixed inputs, a byte-prefix of any longer
// request.
func Expand(prk, info []byte, length int) ([]byte, error) {
	if length <= 0 || length > MaxOutputLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOutputLength, length)
	}

	blocks := (length + HashLen - 1) / HashLen

	okm := make([]byte, 0, blocks*HashLen)
	var prev []byte
	for i := 1; i <= blocks; i++ {
		mac := hmac.New(sha256.New, prk)
		mac.Write(prev)
		mac.Write(info)
		mac.Write([]byte{byte(i)})
		prev = mac.Sum(nil)
		okm = append(okm, prev...)
	}

	return okm[:length], nil
}

// Derive runs Extract followed by Expand in one call:
//
//	OKM = Expand(Extract(salt, ikm), info, length)
//
// The intermediate PRK lives only inside this call.
func Derive(salt, ikm, info []byte, length int) ([]byte, error) {
	return Expand(Extract(salt, ikm), info, length)
}
