// Package onetimepad implements the XOR keystream primitive that
// cipher/block/modes.CTR applies over an AES keystream.
package onetimepad

import "github.com/redeaux-corp/literate-crypto"

// Apply XORs data against key byte-for-byte. Encrypt and decrypt are the
// same operation. It returns literate.ErrKeyTooShort if key is exhausted
// before data.
func Apply(data, key []byte) ([]byte, error) {
	if len(key) < len(data) {
		return nil, literate.ErrKeyTooShort
	}
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i]
	}
	return out, nil
}
