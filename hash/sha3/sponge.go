package sha3

import "encoding/binary"

// domainSeparator is the SHA-3 (as opposed to SHAKE) pad10*1 domain
// separation byte of FIPS-202 §B.2 ('01' suffix bit-reversed into the
// byte-oriented representation used here).
const domainSeparator = 0x06

// Sponge implements the absorb/squeeze sponge construction over the
// Keccak-p[1600,24] permutation, for one fixed (rate, digest size) pair.
type Sponge struct {
	Rate       int // bytes per block absorbed/squeezed per permutation call
	DigestSize int // output length in bytes; DigestSize <= Rate for SHA-3
}

// Sum absorbs the padded preimage and returns the first DigestSize bytes
// of the resulting state.
func (sp Sponge) Sum(preimage []byte) []byte {
	var state State

	for _, block := range sp.pad(preimage) {
		absorb(&state, block, sp.Rate)
		Permute(&state)
	}

	return squeeze(&state, sp.DigestSize)
}

// pad implements pad10*1 with the SHA-3 domain separator: the first
// padding byte carries 0x06, the last carries 0x80; when a single byte of
// padding covers both, they are OR-combined into 0x86.
func (sp Sponge) pad(data []byte) [][]byte {
	padded := make([]byte, len(data), len(data)+sp.Rate)
	copy(padded, data)
	padded = append(padded, domainSeparator)
	for len(padded)%sp.Rate != 0 {
		padded = append(padded, 0x00)
	}
	padded[len(padded)-1] |= 0x80

	blocks := make([][]byte, len(padded)/sp.Rate)
	for i := range blocks {
		blocks[i] = padded[i*sp.Rate : (i+1)*sp.Rate]
	}
	return blocks
}

// absorb XORs the first rate bytes of the state's little-endian lane
// serialisation with block.
func absorb(s *State, block []byte, rate int) {
	for i := 0; i < rate; i += 8 {
		x, y := laneCoord(i / 8)
		n := 8
		if i+n > rate {
			n = rate - i
		}
		var lane [8]byte
		binary.LittleEndian.PutUint64(lane[:], s[x][y])
		for j := 0; j < n; j++ {
			lane[j] ^= block[i+j]
		}
		s[x][y] = binary.LittleEndian.Uint64(lane[:])
	}
}

// squeeze reads the first n bytes of the state's lane serialisation. No
// additional permutation call is needed while n <= rate, the case for
// every SHA-3 variant.
func squeeze(s *State, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i += 8 {
		x, y := laneCoord(i / 8)
		var lane [8]byte
		binary.LittleEndian.PutUint64(lane[:], s[x][y])
		copy(out[i:], lane[:min(8, n-i)])
	}
	return out
}

// laneCoord maps a flat lane index (as in the 200-byte serialisation,
// lane = x + 5y) back to (x, y).
func laneCoord(lane int) (x, y int) {
	return lane % 5, lane / 5
}
