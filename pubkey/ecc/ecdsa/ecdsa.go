// Package ecdsa implements ECDSA sign/verify over the secp256k1 group
// defined in pubkey/ecc, generic over any hash.Hash.
package ecdsa

import (
	literate "github.com/redeaux-corp/literate-crypto"
	"github.com/redeaux-corp/literate-crypto/hash"
	"github.com/redeaux-corp/literate-crypto/pubkey/ecc"
)

// Signature is an ECDSA signature pair.
type Signature struct {
	R, S ecc.Num
}

// fieldBytes is the byte width of the curve's scalar field.
const fieldBytes = 32

// digestToNum implements the FIPS 186 leftmost-bits truncation: a digest
// wider than the field is truncated to its first fieldBytes bytes; a
// narrower one would be left as-is (the library's hashes are all >=32
// bytes, so this path is never exercised).
func digestToNum(digest []byte) ecc.Num {
	if len(digest) > fieldBytes {
		digest = digest[:fieldBytes]
	}
	padded := make([]byte, fieldBytes)
	copy(padded[fieldBytes-len(digest):], digest)
	return ecc.NumFromBytes(padded)
}

// Sign produces a deterministic ECDSA signature over msg under priv. h's
// digest size must be at least fieldBytes; callers passing a narrower
// hash receive a panic rather than a silently weakened signature.
func Sign(h hash.Hash, priv ecc.Num, msg []byte) (Signature, error) {
	if h.Size() < fieldBytes {
		panic("literate/pubkey/ecc/ecdsa: digest size smaller than the curve field")
	}
	if priv.IsZero() || priv.Cmp(ecc.N) >= 0 {
		return Signature{}, literate.ErrInvalidPrivateKey
	}
	e := digestToNum(h.Sum(msg))

	privBytes := priv.Bytes()
	seed := append(append([]byte{}, msg...), privBytes[:]...)
	k := digestToNum(h.Sum(seed))
	rehash := func(k ecc.Num) ecc.Num {
		kb := k.Bytes()
		return digestToNum(h.Sum(kb[:]))
	}

	for {
		if k.IsZero() || k.Cmp(ecc.N) >= 0 {
			k = rehash(k)
			continue
		}

		R := ecc.G.Mul(k)
		if R.IsInfinity() {
			k = rehash(k)
			continue
		}
		r := R.X.Mod(ecc.N)
		if r.IsZero() {
			k = rehash(k)
			continue
		}

		kInv, ok := k.Inv(ecc.N)
		if !ok {
			k = rehash(k)
			continue
		}
		s := kInv.ModMul(e.ModAdd(r.ModMul(priv, ecc.N), ecc.N), ecc.N)
		if s.IsZero() {
			k = rehash(k)
			continue
		}
		return Signature{R: r, S: s}, nil
	}
}

// Verify checks sig against msg under the public key pub. It returns
// literate.ErrInvalidSignature on any mismatch or degenerate point.
func Verify(h hash.Hash, pub ecc.Point, msg []byte, sig Signature) error {
	if h.Size() < fieldBytes {
		panic("literate/pubkey/ecc/ecdsa: digest size smaller than the curve field")
	}
	if pub.IsInfinity() {
		return literate.ErrInvalidPublicKey
	}
	if sig.R.IsZero() || sig.R.Cmp(ecc.N) >= 0 || sig.S.IsZero() || sig.S.Cmp(ecc.N) >= 0 {
		return literate.ErrInvalidSignature
	}

	e := digestToNum(h.Sum(msg))
	sInv, ok := sig.S.Inv(ecc.N)
	if !ok {
		return literate.ErrInvalidSignature
	}
	u := e.ModMul(sInv, ecc.N)
	v := sig.R.ModMul(sInv, ecc.N)

	Q := ecc.G.Mul(u).Add(pub.Mul(v))
	if Q.IsInfinity() {
		return literate.ErrInvalidSignature
	}
	if Q.X.Mod(ecc.N).Cmp(sig.R) != 0 {
		return literate.ErrInvalidSignature
	}
	return nil
}
