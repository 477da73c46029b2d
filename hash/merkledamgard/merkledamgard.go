// Package merkledamgard implements the Merkle-Damgård hash-construction
// template: length padding plus folding a compression function over
// fixed-size message blocks.
package merkledamgard

import "encoding/binary"

// CompressFunc advances a Merkle-Damgård state by one message block. Both
// SHA-1/SHA-256's Davies-Meyer-over-SHACAL compression functions
// (hash/sha1, hash/sha2) implement this signature.
type CompressFunc func(state []uint32, block []byte) []uint32

// Driver folds Compress over the length-padded blocks of a preimage,
// starting from IV, and serialises the first DigestWords words of the
// final state as big-endian bytes (FIPS-180-4 §6).
type Driver struct {
	IV            []uint32
	MsgBlockSize  int // bytes per message block, 64 for SHA-1/SHA-2
	Compress      CompressFunc
	DigestWords   int // <= len(IV); lets SHA-224 reuse SHA-256's state but truncate
}

// Sum computes the digest of preimage.
func (d Driver) Sum(preimage []byte) []byte {
	state := append([]uint32(nil), d.IV...)
	for _, block := range LengthPad(preimage, d.MsgBlockSize) {
		state = d.Compress(state, block)
	}

	out := make([]byte, d.DigestWords*4)
	for i := 0; i < d.DigestWords; i++ {
		binary.BigEndian.PutUint32(out[i*4:i*4+4], state[i])
	}
	return out
}

// BlockSize and Size let Driver satisfy hash.Hash directly.
func (d Driver) BlockSize() int { return d.MsgBlockSize }
func (d Driver) Size() int      { return d.DigestWords * 4 }

// LengthPad implements FIPS-180-4 §5.1.1: append 0x80, then zero bytes,
// then the 64-bit big-endian bit length, so the total length is a multiple
// of blockSize. If 0x80 plus the length field would not fit in the current
// block, an extra full block of zero padding is used.
//
// The original message is always a prefix of the result; messages of equal
// length pad to equal length; messages of unequal length produce distinct
// final blocks, since the length field at the very end differs.
func LengthPad(data []byte, blockSize int) [][]byte {
	bitLen := uint64(len(data)) * 8

	padded := make([]byte, len(data), len(data)+2*blockSize)
	copy(padded, data)
	padded = append(padded, 0x80)

	for len(padded)%blockSize != blockSize-8 {
		padded = append(padded, 0x00)
	}

	var lengthField [8]byte
	binary.BigEndian.PutUint64(lengthField[:], bitLen)
	padded = append(padded, lengthField[:]...)

	blocks := make([][]byte, len(padded)/blockSize)
	for i := range blocks {
		blocks[i] = padded[i*blockSize : (i+1)*blockSize]
	}
	return blocks
}
