package modes

import (
	"github.com/redeaux-corp/literate-crypto/cipher/block"
	"github.com/redeaux-corp/literate-crypto/cipher/block/padding"
)

// CBCEncrypt pads data and chains blocks under iv: C_i = E_K(P_i XOR
// C_{i-1}), C_0 = iv. iv must be exactly one block long; a mismatch is a
// programming error and panics.
func CBCEncrypt(c block.Cipher, data, iv []byte) []byte {
	bs := c.BlockSize()
	if len(iv) != bs {
		panic("literate/cipher/block/modes: IV length must equal the block size")
	}
	padded := padding.Pad(data, bs)
	out := make([]byte, len(padded))

	prev := make([]byte, bs)
	copy(prev, iv)
	block2 := make([]byte, bs)
	for i := 0; i < len(padded); i += bs {
		xorBytes(block2, padded[i:i+bs], prev)
		c.Encrypt(out[i:i+bs], block2)
		prev = out[i : i+bs]
	}
	return out
}

// CBCDecrypt reverses CBCEncrypt: P_i = D_K(C_i) XOR C_{i-1}. It returns
// literate.ErrInvalidPadding if the recovered plaintext does not unpad.
func CBCDecrypt(c block.Cipher, ciphertext, iv []byte) ([]byte, error) {
	bs := c.BlockSize()
	if len(iv) != bs {
		panic("literate/cipher/block/modes: IV length must equal the block size")
	}
	if len(ciphertext)%bs != 0 {
		panic("literate/cipher/block/modes: ciphertext not a multiple of the block size")
	}
	out := make([]byte, len(ciphertext))
	prev := make([]byte, bs)
	copy(prev, iv)

	decrypted := make([]byte, bs)
	for i := 0; i < len(ciphertext); i += bs {
		c.Decrypt(decrypted, ciphertext[i:i+bs])
		xorBytes(out[i:i+bs], decrypted, prev)
		prev = ciphertext[i : i+bs]
	}
	return padding.Unpad(out, bs)
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
