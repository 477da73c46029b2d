// Package hash defines the one-shot digest contract shared by every concrete hash in this
// module and consumed generically by mac/hmac and prng/fortuna.
package hash

// Hash is a one-shot cryptographic hash function: Sum computes the digest
// of an entire preimage in one call. BlockSize is the hash's internal
// message-block size (used by HMAC's key-padding rule); Size is the
// digest length in bytes.
type Hash interface {
	Sum(preimage []byte) []byte
	BlockSize() int
	Size() int
}
