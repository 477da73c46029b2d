// Package literate is the root of a from-first-principles cryptography
// library: block ciphers, modes, hash constructions, MACs, an elliptic
// curve signature stack, and a CSPRNG, wired together through small
// interfaces defined in their own packages (cipher/block, hash, mac/hmac,
// pubkey/ecc).
//
// The root package itself holds only the error values shared across those
// packages. Invalid input that a caller can recover from is returned as
// one of the sentinel errors below; length/structural mismatches that
// cannot occur when the typed APIs are used correctly panic instead.
package literate

import "errors"

// Invalid-input errors. Callers can recover from these by supplying
// different arguments; they are never produced by a library-internal bug.
var (
	// ErrInvalidPadding is returned by padding.Unpad and by any block
	// mode's Decrypt when the padding on the decrypted plaintext does not
	// validate.
	ErrInvalidPadding = errors.New("literate: invalid padding")

	// ErrKeyTooShort is returned by onetimepad.Apply when the key stream is
	// exhausted before the data.
	ErrKeyTooShort = errors.New("literate: key too short")

	// ErrBlockSizeTooSmall is returned when constructing a CTR-mode cipher
	// over a block cipher whose block size is smaller than the 8-byte
	// counter it needs to encode.
	ErrBlockSizeTooSmall = errors.New("literate: block size too small")

	// ErrInvalidPoint is returned when constructing a curve point from
	// coordinates that do not satisfy the curve equation.
	ErrInvalidPoint = errors.New("literate: point not on curve")

	// ErrInvalidPrivateKey is returned when a scalar does not satisfy
	// 0 < k < N for the curve order N.
	ErrInvalidPrivateKey = errors.New("literate: invalid private key")

	// ErrInvalidPublicKey is returned when a point at infinity is used
	// where a public key is required.
	ErrInvalidPublicKey = errors.New("literate: invalid public key")

	// ErrInvalidSignature is returned by any Verify function on mismatch.
	ErrInvalidSignature = errors.New("literate: invalid signature")

	// ErrInvalidSchnorrRandomness is returned during multisig nonce
	// aggregation when the summed commitment R is the point at infinity;
	// the caller must retry the round with fresh nonces.
	ErrInvalidSchnorrRandomness = errors.New("literate: invalid schnorr randomness")
)
