// Package fortuna implements the Fortuna CSPRNG: an entropy-seeded
// generator that produces an infinite byte stream by encrypting zeros
// under AES-CTR, rekeying from the entropy source at a fixed interval.
package fortuna

import (
	"github.com/redeaux-corp/literate-crypto/cipher/block"
	"github.com/redeaux-corp/literate-crypto/cipher/block/modes"
	"github.com/redeaux-corp/literate-crypto/hash"
)

// SeedSize is the number of entropy bytes pulled from the source at every reseed.
const SeedSize = 32

// ReseedInterval is the number of keystream bytes produced per key. The
// generator rekeys once all of them have been handed out; bytes not yet
// consumed stay in the pool across Read calls until then.
const ReseedInterval = 2048

// EntropySource supplies fresh, unpredictable bytes on demand.
type EntropySource interface {
	Read(n int) []byte
}

// Generator is a Fortuna-style CSPRNG. The zero value is not usable; build
// one with New.
type Generator struct {
	source EntropySource
	hash   hash.Hash
	key    []byte
	pool   []byte
}

// New builds a Generator over source, using h to derive successive keys.
// h's digest size becomes the AES key size used internally, so h must
// produce a 16, 24, or 32-byte digest.
func New(source EntropySource, h hash.Hash) *Generator {
	return &Generator{
		source: source,
		hash:   h,
		key:    make([]byte, h.Size()),
	}
}

// reseed pulls SeedSize bytes of fresh entropy, derives a new key as
// H(old_key || seed), and fills the pool with ReseedInterval bytes of
// AES-CTR keystream under that key, counter restarted at zero.
func (g *Generator) reseed() {
	seed := g.source.Read(SeedSize)
	g.key = g.hash.Sum(append(append([]byte{}, g.key...), seed...))

	cipher := block.NewAES(g.key)
	ctr, err := modes.NewCTR(cipher, 0)
	if err != nil {
		panic(err)
	}
	g.pool = ctr.Encrypt(make([]byte, ReseedInterval))
}

// Read returns n pseudorandom bytes, reseeding as many times as needed to
// satisfy the request.
func (g *Generator) Read(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		if len(g.pool) == 0 {
			g.reseed()
		}
		take := n - len(out)
		if take > len(g.pool) {
			take = len(g.pool)
		}
		out = append(out, g.pool[:take]...)
		g.pool = g.pool[take:]
	}
	return out
}
