// Package schnorr implements single-signer and MuSig-style multisig
// Schnorr signatures over the secp256k1 group defined in pubkey/ecc.
package schnorr

import (
	literate "github.com/redeaux-corp/literate-crypto"
	"github.com/redeaux-corp/literate-crypto/hash"
	"github.com/redeaux-corp/literate-crypto/pubkey/ecc"
)

// Signature is a Schnorr signature pair.
type Signature struct {
	S, E ecc.Num
}

// challenge computes H(Px ∥ r ∥ m) mod N, the Fiat-Shamir challenge shared
// by signing and verification.
func challenge(h hash.Hash, px, r ecc.Num, msg []byte) ecc.Num {
	pxB, rB := px.Bytes(), r.Bytes()
	buf := make([]byte, 0, len(pxB)+len(rB)+len(msg))
	buf = append(buf, pxB[:]...)
	buf = append(buf, rB[:]...)
	buf = append(buf, msg...)
	return ecc.NumFromBytes(pad32(h.Sum(buf))).Mod(ecc.N)
}

func pad32(digest []byte) []byte {
	if len(digest) > 32 {
		digest = digest[:32]
	}
	out := make([]byte, 32)
	copy(out[32-len(digest):], digest)
	return out
}

// Sign produces a Schnorr signature over msg under priv, drawing nonces
// from nextNonce until R = kG lands off infinity (astronomically unlikely
// in practice, but the retry keeps the contract total).
func Sign(h hash.Hash, priv ecc.Num, msg []byte, nextNonce func() ecc.Num) Signature {
	pub := ecc.G.Mul(priv)
	for {
		k := nextNonce()
		R := ecc.G.Mul(k)
		if R.IsInfinity() {
			continue
		}
		e := challenge(h, pub.X, R.X, msg)
		s := k.ModSub(priv.ModMul(e, ecc.N), ecc.N)
		return Signature{S: s, E: e}
	}
}

// Verify checks sig against msg under the public key pub.
func Verify(h hash.Hash, pub ecc.Point, msg []byte, sig Signature) error {
	if pub.IsInfinity() {
		return literate.ErrInvalidPublicKey
	}
	Q :=ecc.G.Mul(sig.S).Add(pub.Mul(sig.E))
	if Q.IsInfinity() {
		return literate.ErrInvalidSignature
	}
	want := challenge(h, pub.X, Q.X, msg)
	if want.Cmp(sig.E) != 0 {
		return literate.ErrInvalidSignature
	}
	return nil
}
