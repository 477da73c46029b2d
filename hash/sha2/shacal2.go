// Package sha2 implements SHACAL-2 and instantiates SHA-256
// and SHA-224 through the Davies-Meyer adapter and the
// Merkle-Damgård driver.
package sha2

import "encoding/binary"

// BlockSize is SHACAL-2's key size in bytes: the 512-bit message block.
const BlockSize = 64

// k256 is the FIPS-180-4 §4.2.2 round-constant table K_t^{256}.
var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// encrypt implements the 64-round SHA-2 round function as a block cipher:
// state (8x32-bit) is the "plaintext", key (the 64-byte message block) is
// the "key". Used only through DaviesMeyer; SHACAL-2 is never exposed as
// a standalone cipher.
func encrypt(state []uint32, key []byte) []uint32 {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i : 4*i+4])
	}
	for t := 16; t < 64; t++ {
		w[t] = sigmaLower1(w[t-2]) + w[t-7] + sigmaLower0(w[t-15]) + w[t-16]
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for t := 0; t < 64; t++ {
		t1 := h + sigmaUpper1(e) + ch(e, f, g) + k256[t] + w[t]
		t2 := sigmaUpper0(a) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return []uint32{a, b, c, d, e, f, g, h}
}

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func rotr(x uint32, n uint) uint32 { return (x >> n) | (x << (32 - n)) }

func sigmaUpper0(x uint32) uint32 { return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22) }
func sigmaUpper1(x uint32) uint32 { return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25) }
func sigmaLower0(x uint32) uint32 { return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3) }
func sigmaLower1(x uint32) uint32 { return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10) }
