package merkledamgard

// WideCipher is a block cipher whose "plaintext" is a Merkle-Damgård state
// and whose "key" is a message block — the shape SHACAL-1/2 take. It
// operates on word slices rather than byte blocks because its block width
// (160/256 bits) does not correspond to any fixed byte array already in
// this module.
type WideCipher func(state []uint32, block []byte) []uint32

// Step combines the cipher's output with the pre-encryption state; the
// SHA family uses word-wise modular addition, which is what AddWords
// below implements.
type Step func(state, encrypted []uint32) []uint32

// DaviesMeyer builds a CompressFunc out of a WideCipher and a Step:
// compress(state, block) = step(state, E_block(state)). The state acts as
// plaintext; the message block acts as key.
func DaviesMeyer(cipher WideCipher, step Step) CompressFunc {
	return func(state []uint32, block []byte) []uint32 {
		encrypted := cipher(state, block)
		return step(state, encrypted)
	}
}

// AddWords is the SHA-family step function: word-wise addition modulo
// 2^32, applied element-wise between the pre-cipher state and the
// cipher's output.
func AddWords(state, encrypted []uint32) []uint32 {
	out := make([]uint32, len(state))
	for i := range out {
		out[i] = state[i] + encrypted[i]
	}
	return out
}
