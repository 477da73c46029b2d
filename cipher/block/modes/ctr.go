package modes

import (
	"encoding/binary"

	"github.com/redeaux-corp/literate-crypto"
	"github.com/redeaux-corp/literate-crypto/cipher/block"
	"github.com/redeaux-corp/literate-crypto/cipher/onetimepad"
)

// CTR turns a block.Cipher into a keystream generator: an 8-byte
// little-endian counter, zero-padded to the block size, is repeatedly
// encrypted and XORed into the data. Encrypt and Decrypt are the same
// operation.
type CTR struct {
	cipher  block.Cipher
	counter uint64
}

// NewCTR builds a CTR-mode cipher with its counter initialised to nonce.
// It returns literate.ErrBlockSizeTooSmall if c's block size is under 8
// bytes, since the counter would not fit.
func NewCTR(c block.Cipher, nonce uint64) (*CTR, error) {
	if c.BlockSize() < 8 {
		return nil, literate.ErrBlockSizeTooSmall
	}
	return &CTR{cipher: c, counter: nonce}, nil
}

// Encrypt XORs data against the keystream, starting from the current
// counter value and advancing it (with wraparound) by one per block-sized
// chunk consumed. The final partial block is truncated to the length of
// data.
func (x *CTR) Encrypt(data []byte) []byte {
	bs := x.cipher.BlockSize()
	out := make([]byte, len(data))
	counterBlock := make([]byte, bs)
	keystream := make([]byte, bs)

	for i := 0; i < len(data); i += bs {
		for j := range counterBlock {
			counterBlock[j] = 0
		}
		binary.LittleEndian.PutUint64(counterBlock[:8], x.counter)
		x.cipher.Encrypt(keystream, counterBlock)
		x.counter++

		n := bs
		if i+n > len(data) {
			n = len(data) - i
		}
		chunk, err := onetimepad.Apply(data[i:i+n], keystream)
		if err != nil {
			panic(err)
		}
		copy(out[i:i+n], chunk)
	}
	return out
}

// Decrypt is identical to Encrypt: CTR is a one-time-pad keystream cipher.
func (x *CTR) Decrypt(data []byte) []byte {
	return x.Encrypt(data)
}
