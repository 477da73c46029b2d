package onetimepad

import (
	"bytes"
	"testing"

	"github.com/redeaux-corp/literate-crypto"
)

func TestApplyRoundTrip(t *testing.T) {
	data := []byte("attack at dawn")
	key := []byte("xxxxxxxxxxxxxxxxxx")

	ct, err := Apply(data, key)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	pt, err := Apply(ct, key)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(pt, data) {
		t.Fatalf("got %q, want %q", pt, data)
	}
}

func TestApplyKeyTooShort(t *testing.T) {
	_, err := Apply([]byte("abc"), []byte("a"))
	if err != literate.ErrKeyTooShort {
		t.Fatalf("err = %v, want ErrKeyTooShort", err)
	}
}
