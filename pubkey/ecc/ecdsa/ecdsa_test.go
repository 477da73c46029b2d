package ecdsa

import (
	"testing"

	"github.com/redeaux-corp/literate-crypto/hash/sha3"
	"github.com/redeaux-corp/literate-crypto/pubkey/ecc"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	priv := ecc.NumFromUint64(0xdeadbeef)
	pub := ecc.G.Mul(priv)
	msg := []byte("attack at dawn")

	sig, err := Sign(sha3.New256(), priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(sha3.New256(), pub, msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	priv := ecc.NumFromUint64(12345)
	pub := ecc.G.Mul(priv)
	sig, err := Sign(sha3.New256(), priv, []byte("original"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(sha3.New256(), pub, []byte("tampered"), sig); err == nil {
		t.Fatal("Verify accepted a tampered message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	priv := ecc.NumFromUint64(1)
	other := ecc.G.Mul(ecc.NumFromUint64(2))
	msg := []byte("hello")
	sig, err := Sign(sha3.New256(), priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(sha3.New256(), other, msg, sig); err == nil {
		t.Fatal("Verify accepted a signature under the wrong public key")
	}
}

func TestVerifyRejectsPerturbedS(t *testing.T) {
	priv := ecc.NumFromUint64(777)
	pub := ecc.G.Mul(priv)
	msg := []byte("attack at dawn")
	sig, err := Sign(sha3.New256(), priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	perturbed := Signature{R: sig.R, S: sig.S.ModAdd(ecc.One, ecc.N)}
	if err := Verify(sha3.New256(), pub, msg, perturbed); err == nil {
		t.Fatal("Verify accepted a signature with s perturbed by 1")
	}
}

func TestVerifyRejectsPerturbedR(t *testing.T) {
	priv := ecc.NumFromUint64(777)
	pub := ecc.G.Mul(priv)
	msg := []byte("attack at dawn")
	sig, err := Sign(sha3.New256(), priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	perturbed := Signature{R: sig.R.ModAdd(ecc.One, ecc.N), S: sig.S}
	if err := Verify(sha3.New256(), pub, msg, perturbed); err == nil {
		t.Fatal("Verify accepted a signature with r perturbed by 1")
	}
}

func TestSignDeterministic(t *testing.T) {
	priv := ecc.NumFromUint64(999)
	msg := []byte("deterministic")
	a, err := Sign(sha3.New256(), priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	b, err := Sign(sha3.New256(), priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if a.R.Cmp(b.R) != 0 || a.S.Cmp(b.S) != 0 {
		t.Fatal("Sign is not deterministic for identical inputs")
	}
}
