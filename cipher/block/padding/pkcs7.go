// Package padding implements PKCS#7 block-alignment padding.
package padding

import "github.com/redeaux-corp/literate-crypto"

// Pad appends m = blockSize - (len(data) % blockSize) bytes of value m to
// data; if data is already a multiple of blockSize, a full block of value
// blockSize is appended. blockSize must be in [1, 255]; sizes >= 256 panic
// because the padding byte cannot be encoded in a single byte.
func Pad(data []byte, blockSize int) []byte {
	if blockSize <= 0 || blockSize >= 256 {
		panic("literate/cipher/block/padding: block size out of range")
	}
	m := blockSize - (len(data) % blockSize)
	out := make([]byte, len(data)+m)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(m)
	}
	return out
}

// Unpad reverses Pad, returning literate.ErrInvalidPadding if the last byte
// is 0 or greater than blockSize, if the trailing m bytes are not all equal
// to m, or if data is empty.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize >= 256 {
		panic("literate/cipher/block/padding: block size out of range")
	}
	if len(data) == 0 {
		return nil, literate.ErrInvalidPadding
	}
	m := int(data[len(data)-1])
	if m == 0 || m > blockSize || m > len(data) {
		return nil, literate.ErrInvalidPadding
	}
	for _, b := range data[len(data)-m:] {
		if int(b) != m {
			return nil, literate.ErrInvalidPadding
		}
	}
	return data[:len(data)-m], nil
}
