package schnorr

import (
	"encoding/hex"
	"testing"

	"github.com/redeaux-corp/literate-crypto/hash/sha3"
	"github.com/redeaux-corp/literate-crypto/pubkey/ecc"
)

func fixedNonce(k ecc.Num) func() ecc.Num {
	return func() ecc.Num { return k }
}

func TestSignVerifyRoundTrip(t *testing.T) {
	priv := ecc.NumFromUint64(42)
	pub := ecc.G.Mul(priv)
	msg := []byte("attack at dawn")

	sig := Sign(sha3.New256(), priv, msg, fixedNonce(ecc.NumFromUint64(7)))
	if err := Verify(sha3.New256(), pub, msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	priv := ecc.NumFromUint64(42)
	pub := ecc.G.Mul(priv)
	sig := Sign(sha3.New256(), priv, []byte("original"), fixedNonce(ecc.NumFromUint64(7)))
	if err := Verify(sha3.New256(), pub, []byte("tampered"), sig); err == nil {
		t.Fatal("Verify accepted a tampered message")
	}
}

func TestMultisigTwoSigners(t *testing.T) {
	h := sha3.New256()
	msg := []byte("two signer multisig")

	priv1, priv2 := ecc.NumFromUint64(11), ecc.NumFromUint64(22)
	pub1, pub2 := ecc.G.Mul(priv1), ecc.G.Mul(priv2)
	pubkeys := []ecc.Point{pub1, pub2}

	r1, r2 := ecc.NumFromUint64(101), ecc.NumFromUint64(202)
	R1, R2 := ecc.G.Mul(r1), ecc.G.Mul(r2)

	t1, t2 := Commit(h, R1), Commit(h, R2)

	R, err := AggregateR(h, []ecc.Point{R1, R2}, [][]byte{t1, t2})
	if err != nil {
		t.Fatalf("AggregateR: %v", err)
	}

	aggPub, coeffs := AggregatePubkey(h, pubkeys)

	s1, e1 := PartialSign(h, priv1, r1, coeffs[0], aggPub, R, msg)
	s2, e2 := PartialSign(h, priv2, r2, coeffs[1], aggPub, R, msg)
	if e1.Cmp(e2) != 0 {
		t.Fatal("signers derived different challenges")
	}

	sig := AggregateSignatures([]ecc.Num{s1, s2}, e1)
	if err := Verify(h, aggPub, msg, sig); err != nil {
		t.Fatalf("Verify against aggregate pubkey: %v", err)
	}
}

// hexNum parses a 64-hex-digit big-endian literal into a Num, panicking on
// malformed input (these are compile-time-fixed test vectors, never
// user-supplied).
func hexNum(s string) ecc.Num {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		panic("literate/pubkey/ecc/schnorr: bad test vector literal")
	}
	return ecc.NumFromBytes(b)
}

// TestAggregationMatchesSumOfXCoordinates checks the canonical multiset
// encoding and per-signer coefficients for privkeys 11 and 22 against
// values computed independently (outside this codebase) from the same
// sum-of-x-coordinates-mod-N construction: ⟨L⟩ = (P1.x + P2.x) mod N, and
// a_i = H(⟨L⟩ ∥ P_i.x) mod N. This is the scheme an encoding built from
// full-point concatenation would not reproduce.
func TestAggregationMatchesSumOfXCoordinates(t *testing.T) {
	h := sha3.New256()
	priv1, priv2 := ecc.NumFromUint64(11), ecc.NumFromUint64(22)
	pub1, pub2 := ecc.G.Mul(priv1), ecc.G.Mul(priv2)
	pubkeys := []ecc.Point{pub1, pub2}

	wantL := hexNum("b96a47c1fab9a662bb8b22248cd278db7a7b0c285832b3dd55c9e2baccd1f2c7")
	if got := encode(pubkeys); got.Cmp(wantL) != 0 {
		t.Fatalf("encode(pubkeys) = %x, want %x", got.Bytes(), wantL.Bytes())
	}

	wantA1 := hexNum("6531152904a485ecd29c78643e93ddbc661c498abe34ca03acc66eb361391a82")
	wantA2 := hexNum("2d690b183025f7f313cc12d453f1802bb40146e7e96e97a5a16341dc5f842ca6")

	a1 := AggregateCoefficient(h, pubkeys, pub1)
	a2 := AggregateCoefficient(h, pubkeys, pub2)
	if a1.Cmp(wantA1) != 0 {
		t.Fatalf("AggregateCoefficient(pub1) = %x, want %x", a1.Bytes(), wantA1.Bytes())
	}
	if a2.Cmp(wantA2) != 0 {
		t.Fatalf("AggregateCoefficient(pub2) = %x, want %x", a2.Bytes(), wantA2.Bytes())
	}

	wantAggX := hexNum("b64a2d45d0eeecf8148cb45d3d4a5e742a10ad26d664838fea20282a6c529943")
	aggPub, coeffs := AggregatePubkey(h, pubkeys)
	if aggPub.X.Cmp(wantAggX) != 0 {
		t.Fatalf("AggregatePubkey().X = %x, want %x", aggPub.X.Bytes(), wantAggX.Bytes())
	}
	if coeffs[0].Cmp(a1) != 0 || coeffs[1].Cmp(a2) != 0 {
		t.Fatal("AggregatePubkey coefficients disagree with AggregateCoefficient")
	}
}

func TestVerifyRejectsPerturbedS(t *testing.T) {
	priv := ecc.NumFromUint64(42)
	pub := ecc.G.Mul(priv)
	msg := []byte("attack at dawn")
	sig := Sign(sha3.New256(), priv, msg, fixedNonce(ecc.NumFromUint64(7)))

	perturbed := Signature{S: sig.S.ModAdd(ecc.One, ecc.N), E: sig.E}
	if err := Verify(sha3.New256(), pub, msg, perturbed); err == nil {
		t.Fatal("Verify accepted a signature with s perturbed by 1")
	}
}

func TestVerifyRejectsPerturbedE(t *testing.T) {
	priv := ecc.NumFromUint64(42)
	pub := ecc.G.Mul(priv)
	msg := []byte("attack at dawn")
	sig := Sign(sha3.New256(), priv, msg, fixedNonce(ecc.NumFromUint64(7)))

	perturbed := Signature{S: sig.S, E: sig.E.ModAdd(ecc.One, ecc.N)}
	if err := Verify(sha3.New256(), pub, msg, perturbed); err == nil {
		t.Fatal("Verify accepted a signature with e perturbed by 1")
	}
}

func TestAggregateRRejectsBadCommitment(t *testing.T) {
	h := sha3.New256()
	R1 := ecc.G.Mul(ecc.NumFromUint64(1))
	R2 := ecc.G.Mul(ecc.NumFromUint64(2))
	wrongCommit := Commit(h, R2)

	_, err := AggregateR(h, []ecc.Point{R1, R2}, [][]byte{wrongCommit, wrongCommit})
	if err == nil {
		t.Fatal("AggregateR accepted a mismatched commitment")
	}
}
