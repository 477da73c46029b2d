// Package sha1 implements SHACAL-1 and instantiates SHA-1
// by running it through the Davies-Meyer adapter and the
// Merkle-Damgård driver.
package sha1

import "encoding/binary"

// BlockSize is SHACAL-1's key size in bytes: the 512-bit Merkle-Damgård
// message block.
const BlockSize = 64

// encrypt implements the 80-round SHA-1 round function as a block cipher:
// state (5x32-bit) is the "plaintext", key (the 64-byte message block) is
// the "key". Used only through DaviesMeyer: SHACAL-1 is
// never exposed as a standalone cipher.
func encrypt(state []uint32, key []byte) []uint32 {
	var w [16]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i : 4*i+4])
	}

	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]

	for t := 0; t < 80; t++ {
		f, k := roundFunc(t, b, c, d)
		T := rotl(a, 5) + f + e + k + w[0]

		e = d
		d = c
		c = rotl(b, 30)
		b = a
		a = T

		next := rotl(w[13]^w[8]^w[2]^w[0], 1)
		for i := 0; i < 15; i++ {
			w[i] = w[i+1]
		}
		w[15] = next
	}

	return []uint32{a, b, c, d, e}
}

// roundFunc returns f_t(b,c,d) and the round constant K_t per FIPS-180-4
// §4.1.1 / §4.2.1. Both t in [20,39] and t in [60,79] use Parity (b^c^d);
// they are handled as separate cases below rather than folded into one
// default, so a future edit to one range can't silently affect the other.
func roundFunc(t int, b, c, d uint32) (f, k uint32) {
	switch {
	case t < 20:
		return (b & c) | (^b & d), 0x5A827999
	case t < 40:
		return b ^ c ^ d, 0x6ED9EBA1
	case t < 60:
		return (b & c) | (b & d) | (c & d), 0x8F1BBCDC
	default: // t in [60, 79]
		return b ^ c ^ d, 0xCA62C1D6
	}
}

func rotl(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}
