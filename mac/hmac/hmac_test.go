package hmac

import (
	stdhmac "crypto/hmac"
	"encoding/hex"
	"testing"

	xsha3 "golang.org/x/crypto/sha3"

	"github.com/redeaux-corp/literate-crypto/hash/sha1"
	"github.com/redeaux-corp/literate-crypto/hash/sha2"
	"github.com/redeaux-corp/literate-crypto/hash/sha3"
)

// TestHMACSHA1RFC2202 checks HMAC-SHA1 known-answer values: a widely
// published "quick brown fox" vector and RFC 2202 test case 2.
func TestHMACSHA1RFC2202(t *testing.T) {
	cases := []struct {
		key, msg, want string
	}{
		{
			"key",
			"The quick brown fox jumps over the lazy dog",
			"de7c9b85b8b78aa6bc8a7a36f70a90701c9db4d9",
		},
		{
			"Jefe",
			"what do ya want for nothing?",
			"effcdf6ae5eb2fa2d27416d5f184df9c259a7c79",
		},
	}
	for _, c := range cases {
		got := hex.EncodeToString(Sum(sha1.New(), []byte(c.key), []byte(c.msg)))
		if got != c.want {
			t.Fatalf("HMAC-SHA1(%q, %q) = %s, want %s", c.key, c.msg, got, c.want)
		}
	}
}

// TestHMACSHA1LongKey checks RFC 2202 test case 6: an 80-byte key, longer
// than SHA-1's 64-byte block, which HMAC must hash down first.
func TestHMACSHA1LongKey(t *testing.T) {
	key := make([]byte, 80)
	for i := range key {
		key[i] = 0xaa
	}
	want := "aa4ae5e15272d00e95705637ce8a3b55ed402112"
	got := hex.EncodeToString(Sum(sha1.New(), key, []byte("Test Using Larger Than Block-Size Key - Hash Key First")))
	if got != want {
		t.Fatalf("HMAC-SHA1 = %s, want %s", got, want)
	}
}

func TestHMACSHA256(t *testing.T) {
	want := "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8"
	got := hex.EncodeToString(Sum(sha2.NewSHA256(), []byte("key"), []byte("The quick brown fox jumps over the lazy dog")))
	if got != want {
		t.Fatalf("HMAC-SHA256 = %s, want %s", got, want)
	}
}

// TestHMACSHA3 cross-checks the generic Sum against golang.org/x/crypto/sha3's
// own HMAC construction (via the standard library's crypto/hmac, which
// accepts any hash.New func), the same independent-oracle pattern used for
// the Keccak-p permutation itself.
func TestHMACSHA3(t *testing.T) {
	cases := []struct{ key, msg string }{
		{"key", "The quick brown fox jumps over the lazy dog"},
		{"", ""},
		{"a very long key that exceeds the sha3-256 block size of 136 bytes by quite a margin indeed, long enough that HMAC must first hash it down to the digest size and then zero-pad it out to the block", "short message"},
	}
	for _, c := range cases {
		got := Sum(sha3.New256(), []byte(c.key), []byte(c.msg))

		oracle := stdhmac.New(xsha3.New256, []byte(c.key))
		oracle.Write([]byte(c.msg))
		want := oracle.Sum(nil)

		if hex.EncodeToString(got) != hex.EncodeToString(want) {
			t.Fatalf("HMAC-SHA3-256(%q, %q) = %x, want %x", c.key, c.msg, got, want)
		}
	}
}

func TestHMACDeterministic(t *testing.T) {
	h := sha1.New()
	a := Sum(h, []byte("k"), []byte("m"))
	b := Sum(h, []byte("k"), []byte("m"))
	if hex.EncodeToString(a) != hex.EncodeToString(b) {
		t.Fatal("HMAC is not deterministic")
	}
}
