// Package ecc implements a 256-bit modular integer engine and the
// secp256k1 elliptic curve group built on top of it.
package ecc

import "encoding/binary"

// Num is a 256-bit unsigned integer held as four 64-bit little-endian
// words: Words[0] is the least significant word.
type Num struct {
	Words [4]uint64
}

// Zero is the additive identity. It has no multiplicative inverse.
var Zero = Num{}

// One is the multiplicative identity.
var One = Num{Words: [4]uint64{1, 0, 0, 0}}

// NumFromUint64 builds a Num from a single machine word.
func NumFromUint64(v uint64) Num {
	return Num{Words: [4]uint64{v, 0, 0, 0}}
}

// NumFromBytes parses a 32-byte big-endian encoding into a Num.
func NumFromBytes(b []byte) Num {
	if len(b) != 32 {
		panic("literate/pubkey/ecc: Num requires exactly 32 bytes")
	}
	var n Num
	for i := 0; i < 4; i++ {
		n.Words[i] = binary.BigEndian.Uint64(b[32-8*(i+1) : 32-8*i])
	}
	return n
}

// Bytes serialises n as 32 big-endian bytes, the wire encoding used for
// private keys and signature components.
func (n Num) Bytes() [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint64(out[32-8*(i+1):32-8*i], n.Words[i])
	}
	return out
}

// IsZero reports whether n == 0.
func (n Num) IsZero() bool {
	return n == Zero
}

// Cmp returns -1, 0, or 1 as n is less than, equal to, or greater than m,
// comparing most-significant word first.
func (n Num) Cmp(m Num) int {
	for i := 3; i >= 0; i-- {
		if n.Words[i] != m.Words[i] {
			if n.Words[i] < m.Words[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// GetBit returns bit i (0 = least significant) of n.
func (n Num) GetBit(i uint) uint64 {
	return (n.Words[i/64] >> (i % 64)) & 1
}

// SetBit returns n with bit i set to 1.
func (n Num) SetBit(i uint) Num {
	n.Words[i/64] |= 1 << (i % 64)
	return n
}

// Shl1 returns n shifted left by one bit, discarding the overflow.
func (n Num) Shl1() Num {
	var out Num
	var carry uint64
	for i := 0; i < 4; i++ {
		out.Words[i] = (n.Words[i] << 1) | carry
		carry = n.Words[i] >> 63
	}
	return out
}

// Add returns n+m with carry propagation across the four words, ignoring
// any final overflow: arithmetic here is fixed-width modulo 2^256.
func (n Num) Add(m Num) Num {
	var out Num
	var carry uint64
	for i := 0; i < 4; i++ {
		sum := n.Words[i] + m.Words[i]
		c1 := boolToU64(sum < n.Words[i])
		sum2 := sum + carry
		c2 := boolToU64(sum2 < sum)
		out.Words[i] = sum2
		carry = c1 + c2
	}
	return out
}

// Sub returns n-m with borrow propagation, wrapping on underflow.
func (n Num) Sub(m Num) Num {
	var out Num
	var borrow uint64
	for i := 0; i < 4; i++ {
		d := n.Words[i] - m.Words[i]
		b1 := boolToU64(n.Words[i] < m.Words[i])
		d2 := d - borrow
		b2 := boolToU64(d < borrow)
		out.Words[i] = d2
		borrow = b1 + b2
	}
	return out
}

func boolToU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Mul returns the full 512-bit product of n and m as an 8-word
// little-endian schoolbook multiplication.
func (n Num) Mul(m Num) [8]uint64 {
	var product [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits64Mul(n.Words[i], m.Words[j])
			lo, c1 := addWithCarry(lo, product[i+j], 0)
			lo, c2 := addWithCarry(lo, carry, 0)
			product[i+j] = lo
			carry = hi + c1 + c2
		}
		product[i+4] += carry
	}
	return product
}

func bits64Mul(a, b uint64) (hi, lo uint64) {
	const mask = 0xffffffff
	aLo, aHi := a&mask, a>>32
	bLo, bHi := b&mask, b>>32

	t := aLo * bLo
	w0 := t & mask
	k := t >> 32

	t = aHi*bLo + k
	w1 := t & mask
	w2 := t >> 32

	t = aLo*bHi + w1
	k = t >> 32

	lo = (t << 32) | w0
	hi = aHi*bHi + w2 + k
	return hi, lo
}

func addWithCarry(a, b, carryIn uint64) (sum, carryOut uint64) {
	sum = a + b
	c1 := boolToU64(sum < a)
	sum2 := sum + carryIn
	c2 := boolToU64(sum2 < sum)
	return sum2, c1 + c2
}

// DivMod performs bit-by-bit long division, returning (quotient,
// remainder) such that n = quotient*d + remainder. d must be non-zero.
func (n Num) DivMod(d Num) (quotient, remainder Num) {
	if d.IsZero() {
		panic("literate/pubkey/ecc: division by zero")
	}
	for i := 255; i >= 0; i-- {
		overflow := remainder.Words[3] >> 63
		remainder = remainder.Shl1()
		if n.GetBit(uint(i)) == 1 {
			remainder.Words[0] |= 1
		}
		if overflow == 1 || remainder.Cmp(d) >= 0 {
			remainder = remainder.Sub(d)
			quotient = quotient.SetBit(uint(i))
		}
	}
	return quotient, remainder
}

// Mod reduces n modulo m.
func (n Num) Mod(m Num) Num {
	_, r := n.DivMod(m)
	return r
}

// ModAdd, ModSub, and ModMul perform the corresponding operation and
// reduce the result modulo m. Inputs are assumed already reduced mod m.
func (n Num) ModAdd(m, modulus Num) Num {
	sum := n.Add(m)
	if sum.Cmp(modulus) >= 0 || overflowed(n, m, sum) {
		sum = sum.Sub(modulus)
	}
	return sum
}

// overflowed detects the rare case where n+m wrapped the fixed 256-bit
// width before the modulus-based reduction above would otherwise catch it.
func overflowed(n, m, sum Num) bool {
	return sum.Cmp(n) < 0 && sum.Cmp(m) < 0
}

func (n Num) ModSub(m, modulus Num) Num {
	if n.Cmp(m) >= 0 {
		return n.Sub(m)
	}
	return n.Add(modulus).Sub(m)
}

func (n Num) ModMul(m, modulus Num) Num {
	product := n.Mul(m)
	return reduceWide(product, modulus)
}

// reduceWide reduces an 8-word product modulo a 4-word modulus by
// bit-by-bit long division over the full 512-bit width.
func reduceWide(product [8]uint64, modulus Num) Num {
	var remainder Num
	for i := 511; i >= 0; i-- {
		overflow := remainder.Words[3] >> 63
		remainder = remainder.Shl1()
		word := product[i/64]
		bit := (word >> (uint(i) % 64)) & 1
		if bit == 1 {
			remainder.Words[0] |= 1
		}
		if overflow == 1 || remainder.Cmp(modulus) >= 0 {
			remainder = remainder.Sub(modulus)
		}
	}
	return remainder
}

// Inv computes the modular inverse of n modulo p via the binary extended
// Euclidean algorithm, returning (inverse, true), or (Zero, false)
// exactly when n is Zero.
func (n Num) Inv(p Num) (Num, bool) {
	if n.IsZero() {
		return Zero, false
	}

	u, v := n.Mod(p), p
	x1, x2 := One, Zero

	for u.Cmp(One) != 0 && v.Cmp(One) != 0 {
		for u.Words[0]&1 == 0 {
			u = u.shr1()
			if x1.Words[0]&1 == 0 {
				x1 = x1.shr1()
			} else {
				sum := x1.Add(p)
				carry := sum.Cmp(p) < 0
				x1 = sum.shr1()
				if carry {
					x1.Words[3] |= 1 << 63
				}
			}
		}
		for v.Words[0]&1 == 0 {
			v = v.shr1()
			if x2.Words[0]&1 == 0 {
				x2 = x2.shr1()
			} else {
				sum := x2.Add(p)
				carry := sum.Cmp(p) < 0
				x2 = sum.shr1()
				if carry {
					x2.Words[3] |= 1 << 63
				}
			}
		}
		if u.Cmp(v) >= 0 {
			u = u.Sub(v)
			x1 = x1.ModSub(x2, p)
		} else {
			v = v.Sub(u)
			x2 = x2.ModSub(x1, p)
		}
	}

	if u.Cmp(One) == 0 {
		return x1.Mod(p), true
	}
	return x2.Mod(p), true
}

// shr1 is a right shift by one bit. Inv's extended Euclidean algorithm
// only calls it on values already known to be even.
func (n Num) shr1() Num {
	var out Num
	var borrow uint64
	for i := 3; i >= 0; i-- {
		out.Words[i] = (n.Words[i] >> 1) | (borrow << 63)
		borrow = n.Words[i] & 1
	}
	return out
}
