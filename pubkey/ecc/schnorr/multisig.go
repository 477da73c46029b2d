package schnorr

import (
	"bytes"

	literate "github.com/redeaux-corp/literate-crypto"
	"github.com/redeaux-corp/literate-crypto/hash"
	"github.com/redeaux-corp/literate-crypto/pubkey/ecc"
)

func pointBytes(pt ecc.Point) []byte {
	x, y := pt.X.Bytes(), pt.Y.Bytes()
	out := make([]byte, 0, len(x)+len(y))
	out = append(out, x[:]...)
	out = append(out, y[:]...)
	return out
}

// Commit computes the round-1 commitment t_i = H(R_i) a signer publishes
// before revealing its actual nonce point.
func Commit(h hash.Hash, Ri ecc.Point) []byte {
	return h.Sum(pointBytes(Ri))
}

// AggregateR verifies every revealed nonce point against its round-1
// commitment, then sums them into the session's combined R. It returns
// literate.ErrInvalidSignature if a commitment does not match, and
// literate.ErrInvalidSchnorrRandomness if the sum lands on infinity — the
// caller must restart the round with fresh nonces in that case.
func AggregateR(h hash.Hash, nonces []ecc.Point, commitments [][]byte) (ecc.Point, error) {
	if len(nonces) != len(commitments) {
		panic("literate/pubkey/ecc/schnorr: nonce and commitment counts differ")
	}
	R := ecc.Infinity
	for i, Ri := range nonces {
		if !bytes.Equal(Commit(h, Ri), commitments[i]) {
			return ecc.Infinity, literate.ErrInvalidSignature
		}
		R = R.Add(Ri)
	}
	if R.IsInfinity() {
		return ecc.Infinity, literate.ErrInvalidSchnorrRandomness
	}
	return R, nil
}

// encode builds ⟨L⟩, the canonical multiset encoding: the sum of every
// pubkey's affine x-coordinate, reduced mod N. A sum is already invariant
// under any permutation of pubkeys, so no separate sort is needed. Each
// x-coordinate is reduced mod N before folding it in, since x lives in the
// field mod P (P > N) and ModAdd's single-correction reduction is only
// valid for operands already below the modulus.
func encode(pubkeys []ecc.Point) ecc.Num {
	sum := ecc.Zero
	for _, p := range pubkeys {
		sum = sum.ModAdd(p.X.Mod(ecc.N), ecc.N)
	}
	return sum
}

// AggregateCoefficient computes a_i = H_agg(⟨L⟩ ∥ P_i.x) mod N for one
// signer's pubkey against the full set of participant pubkeys.
func AggregateCoefficient(h hash.Hash, pubkeys []ecc.Point, pi ecc.Point) ecc.Num {
	L := encode(pubkeys).Bytes()
	piX := pi.X.Bytes()
	buf := append(append([]byte{}, L[:]...), piX[:]...)
	return ecc.NumFromBytes(pad32(h.Sum(buf))).Mod(ecc.N)
}

// AggregatePubkey computes P̃ = Σ a_i·P_i, returning the aggregate pubkey
// and each signer's coefficient in the same order as pubkeys.
func AggregatePubkey(h hash.Hash, pubkeys []ecc.Point) (ecc.Point, []ecc.Num) {
	coeffs := make([]ecc.Num, len(pubkeys))
	agg := ecc.Infinity
	for i, p := range pubkeys {
		coeffs[i] = AggregateCoefficient(h, pubkeys, p)
		agg = agg.Add(p.Mul(coeffs[i]))
	}
	return agg, coeffs
}

// PartialSign computes signer i's contribution s_i = r_i - p_i*c_i mod N,
// where c_i = a_i*e and e is the session challenge H_sig(P̃.x ∥ R.x ∥ m).
// It also returns e so callers can verify every signer derived the same
// challenge before summing partial signatures.
func PartialSign(h hash.Hash, priv, ri, ai ecc.Num, aggregatePub, R ecc.Point, msg []byte) (si, e ecc.Num) {
	e = challenge(h, aggregatePub.X, R.X, msg)
	ci := ai.ModMul(e, ecc.N)
	si = ri.ModSub(priv.ModMul(ci, ecc.N), ecc.N)
	return si, e
}

// AggregateSignatures sums the signers' partial signatures into the final
// Schnorr signature, verifiable against the aggregate pubkey by Verify.
func AggregateSignatures(partials []ecc.Num, e ecc.Num) Signature {
	s := ecc.Zero
	for _, si := range partials {
		s = s.ModAdd(si, ecc.N)
	}
	return Signature{S: s, E: e}
}
