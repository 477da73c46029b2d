// Package hmac implements HMAC over any hash.Hash.
package hmac

import "github.com/redeaux-corp/literate-crypto/hash"

const (
	ipad = 0x36
	opad = 0x5c
)

// Sum computes HMAC(key, msg) using h as the underlying hash:
//
//  1. K' = key right-padded with zeros to h's block size, or H(key)
//     (right-padded) if key is longer than the block size.
//  2. inner = H((K' xor ipad) || msg)
//  3. tag = H((K' xor opad) || inner)
func Sum(h hash.Hash, key, msg []byte) []byte {
	k := derivedKey(h, key)

	innerPad := xorPad(k, ipad)
	inner := h.Sum(append(innerPad, msg...))

	outerPad := xorPad(k, opad)
	return h.Sum(append(outerPad, inner...))
}

// derivedKey implements K' of step 1.
func derivedKey(h hash.Hash, key []byte) []byte {
	blockSize := h.BlockSize()
	k := make([]byte, blockSize)
	if len(key) > blockSize {
		copy(k, h.Sum(key))
	} else {
		copy(k, key)
	}
	return k
}

func xorPad(k []byte, pad byte) []byte {
	out := make([]byte, len(k))
	for i, b := range k {
		out[i] = b ^ pad
	}
	return out
}
