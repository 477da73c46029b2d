package sha1

import "github.com/redeaux-corp/literate-crypto/hash/merkledamgard"

// iv holds the SHA-1 initial hash value from FIPS-180-4 §5.3.1.
var iv = []uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

// Hash is SHA-1: Merkle-Damgård driven by the Davies-Meyer compression of
// SHACAL-1. SHA-1 is vulnerable to length-extension; this is a documented
// property of the construction, not a bug.
type Hash struct {
	driver merkledamgard.Driver
}

// New builds a SHA-1 hash.
func New() Hash {
	return Hash{driver: merkledamgard.Driver{
		IV:           iv,
		MsgBlockSize: BlockSize,
		Compress:     merkledamgard.DaviesMeyer(encrypt, merkledamgard.AddWords),
		DigestWords:  5,
	}}
}

func (h Hash) Sum(preimage []byte) []byte { return h.driver.Sum(preimage) }
func (h Hash) BlockSize() int             { return h.driver.BlockSize() }
func (h Hash) Size() int                  { return h.driver.Size() }

// Sum160 is a convenience wrapper returning SHA-1("preimage") directly.
func Sum160(preimage []byte) [20]byte {
	var out [20]byte
	copy(out[:], New().Sum(preimage))
	return out
}
