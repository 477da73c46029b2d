package sha2

import "github.com/redeaux-corp/literate-crypto/hash/merkledamgard"

// sha256IV is the FIPS-180-4 §5.3.3 initial hash value.
var sha256IV = []uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// sha224IV is the FIPS-180-4 §5.3.2 initial hash value; SHA-224 is
// SHA-256's construction with a different IV and a truncated digest.
var sha224IV = []uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

// SHA256 is SHA-256: Merkle-Damgård driven by the Davies-Meyer compression
// of SHACAL-2.
type SHA256 struct{ driver merkledamgard.Driver }

func NewSHA256() SHA256 {
	return SHA256{driver: merkledamgard.Driver{
		IV:           sha256IV,
		MsgBlockSize: BlockSize,
		Compress:     merkledamgard.DaviesMeyer(encrypt, merkledamgard.AddWords),
		DigestWords:  8,
	}}
}

func (h SHA256) Sum(preimage []byte) []byte { return h.driver.Sum(preimage) }
func (h SHA256) BlockSize() int             { return h.driver.BlockSize() }
func (h SHA256) Size() int                  { return h.driver.Size() }

// SHA224 shares SHA-256's compression function with a distinct IV and a
// digest truncated to the first 28 bytes.
type SHA224 struct{ driver merkledamgard.Driver }

func NewSHA224() SHA224 {
	return SHA224{driver: merkledamgard.Driver{
		IV:           sha224IV,
		MsgBlockSize: BlockSize,
		Compress:     merkledamgard.DaviesMeyer(encrypt, merkledamgard.AddWords),
		DigestWords:  7,
	}}
}

func (h SHA224) Sum(preimage []byte) []byte { return h.driver.Sum(preimage) }
func (h SHA224) BlockSize() int             { return h.driver.BlockSize() }
func (h SHA224) Size() int                  { return h.driver.Size() }
