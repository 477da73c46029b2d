package padding

import (
	"bytes"
	"testing"

	"github.com/redeaux-corp/literate-crypto"
)

func TestPadUnpadRoundTrip(t *testing.T) {
	for n := 0; n < 40; n++ {
		data := bytes.Repeat([]byte{0xAB}, n)
		padded := Pad(data, 16)
		if len(padded)%16 != 0 {
			t.Fatalf("len(pad(%d)) = %d, not a multiple of 16", n, len(padded))
		}
		got, err := Unpad(padded, 16)
		if err != nil {
			t.Fatalf("unpad(pad(%d)): %v", n, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("unpad(pad(%d)) = %x, want %x", n, got, data)
		}
	}
}

func TestPadFullBlockWhenAligned(t *testing.T) {
	data := bytes.Repeat([]byte{1}, 16)
	padded := Pad(data, 16)
	if len(padded) != 32 {
		t.Fatalf("len = %d, want 32", len(padded))
	}
	for _, b := range padded[16:] {
		if b != 16 {
			t.Fatalf("padding byte = %d, want 16", b)
		}
	}
}

func TestUnpadRejectsBadPadding(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		bytes.Repeat([]byte{0x00}, 16),
		append(bytes.Repeat([]byte{1}, 15), 17), // m > blockSize
		{1, 2, 3, 4},                            // trailing bytes not all == m
	}
	for i, c := range cases {
		if _, err := Unpad(c, 16); err != literate.ErrInvalidPadding {
			t.Fatalf("case %d: err = %v, want ErrInvalidPadding", i, err)
		}
	}
}
