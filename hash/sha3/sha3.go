package sha3

// Sponge rate/digest pairs for the four SHA-3 variants, per FIPS-202
// Table 3: for a d-bit digest the capacity is 2d bits, so the rate is
// (1600 - 2d)/8 bytes.
const (
	rate224, digest224 = 144, 28
	rate256, digest256 = 136, 32
	rate384, digest384 = 104, 48
	rate512, digest512 = 72, 64
)

// Hash224, Hash256, Hash384, Hash512 are the four SHA-3 digest sizes,
// each a Sponge over Keccak-p[1600,24].
type (
	Hash224 struct{ sp Sponge }
	Hash256 struct{ sp Sponge }
	Hash384 struct{ sp Sponge }
	Hash512 struct{ sp Sponge }
)

func New224() Hash224 { return Hash224{Sponge{Rate: rate224, DigestSize: digest224}} }
func New256() Hash256 { return Hash256{Sponge{Rate: rate256, DigestSize: digest256}} }
func New384() Hash384 { return Hash384{Sponge{Rate: rate384, DigestSize: digest384}} }
func New512() Hash512 { return Hash512{Sponge{Rate: rate512, DigestSize: digest512}} }

func (h Hash224) Sum(preimage []byte) []byte { return h.sp.Sum(preimage) }
func (h Hash224) BlockSize() int             { return h.sp.Rate }
func (h Hash224) Size() int                  { return h.sp.DigestSize }

func (h Hash256) Sum(preimage []byte) []byte { return h.sp.Sum(preimage) }
func (h Hash256) BlockSize() int             { return h.sp.Rate }
func (h Hash256) Size() int                  { return h.sp.DigestSize }

func (h Hash384) Sum(preimage []byte) []byte { return h.sp.Sum(preimage) }
func (h Hash384) BlockSize() int             { return h.sp.Rate }
func (h Hash384) Size() int                  { return h.sp.DigestSize }

func (h Hash512) Sum(preimage []byte) []byte { return h.sp.Sum(preimage) }
func (h Hash512) BlockSize() int             { return h.sp.Rate }
func (h Hash512) Size() int                  { return h.sp.DigestSize }
