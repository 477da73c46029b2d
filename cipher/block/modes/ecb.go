// Package modes implements block-cipher modes of operation — ECB, CBC,
// and CTR — each turning a block.Cipher into a cipher over
// arbitrary-length data.
package modes

import (
	"github.com/redeaux-corp/literate-crypto/cipher/block"
	"github.com/redeaux-corp/literate-crypto/cipher/block/padding"
)

// ECBEncrypt pads data to a multiple of c's block size and encrypts each
// block independently. ECB is known-insecure (identical plaintext blocks
// produce identical ciphertext blocks) and is provided for completeness.
func ECBEncrypt(c block.Cipher, data []byte) []byte {
	bs := c.BlockSize()
	padded := padding.Pad(data, bs)
	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += bs {
		c.Encrypt(out[i:i+bs], padded[i:i+bs])
	}
	return out
}

// ECBDecrypt reverses ECBEncrypt, returning literate.ErrInvalidPadding if
// unpadding the result fails.
func ECBDecrypt(c block.Cipher, ciphertext []byte) ([]byte, error) {
	bs := c.BlockSize()
	if len(ciphertext)%bs != 0 {
		panic("literate/cipher/block/modes: ciphertext not a multiple of the block size")
	}
	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += bs {
		c.Decrypt(out[i:i+bs], ciphertext[i:i+bs])
	}
	return padding.Unpad(out, bs)
}
