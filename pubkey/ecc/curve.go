package ecc

import literate "github.com/redeaux-corp/literate-crypto"

// Point is a point on the secp256k1 curve in affine coordinates. The zero
// value is not a valid point; use Infinity for the identity element.
type Point struct {
	X, Y     Num
	infinity bool
}

// Infinity is the identity element of the curve group.
var Infinity = Point{infinity: true}

// Curve parameters from SEC 2 §2.4.1.
var (
	// P is the field prime.
	P = NumFromBytes([]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xfe, 0xff, 0xff, 0xfc, 0x2f,
	})

	// N is the order of the base point G.
	N = NumFromBytes([]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
		0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
		0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x41,
	})

	// B is the curve coefficient; A is 0 and omitted from the arithmetic below.
	B = NumFromUint64(7)

	// G is the base point.
	G = Point{
		X: NumFromBytes([]byte{
			0x79, 0xbe, 0x66, 0x7e, 0xf9, 0xdc, 0xbb, 0xac,
			0x55, 0xa0, 0x62, 0x95, 0xce, 0x87, 0x0b, 0x07,
			0x02, 0x9b, 0xfc, 0xdb, 0x2d, 0xce, 0x28, 0xd9,
			0x59, 0xf2, 0x81, 0x5b, 0x16, 0xf8, 0x17, 0x98,
		}),
		Y: NumFromBytes([]byte{
			0x48, 0x3a, 0xda, 0x77, 0x26, 0xa3, 0xc4, 0x65,
			0x5d, 0xa4, 0xfb, 0xfc, 0x0e, 0x11, 0x08, 0xa8,
			0xfd, 0x17, 0xb4, 0x48, 0xa6, 0x85, 0x54, 0x19,
			0x9c, 0x47, 0xd0, 0x8f, 0xfb, 0x10, 0xd4, 0xb8,
		}),
	}
)

// NewPoint validates that (x, y) lies on the curve before returning a
// Point, so callers parsing untrusted coordinates never hold an invalid one.
func NewPoint(x, y Num) (Point, error) {
	pt := Point{X: x, Y: y}
	if !pt.OnCurve() {
		return Point{}, literate.ErrInvalidPoint
	}
	return pt, nil
}

// IsInfinity reports whether pt is the identity element.
func (pt Point) IsInfinity() bool { return pt.infinity }

// Cmp reports whether pt and other are the same point. Infinity equals
// only itself; two finite points are equal iff their coordinates match.
func (pt Point) Cmp(other Point) int {
	if pt.infinity != other.infinity {
		return 1
	}
	if pt.infinity {
		return 0
	}
	if c := pt.X.Cmp(other.X); c != 0 {
		return c
	}
	return pt.Y.Cmp(other.Y)
}

// OnCurve reports whether pt satisfies y² = x³ + 7 (mod P).
func (pt Point) OnCurve() bool {
	if pt.infinity {
		return true
	}
	y2 := pt.Y.ModMul(pt.Y, P)
	x3 := pt.X.ModMul(pt.X, P).ModMul(pt.X, P)
	rhs := x3.ModAdd(B, P)
	return y2.Cmp(rhs) == 0
}

// Neg returns -pt: the point with Y negated modulo P.
func (pt Point) Neg() Point {
	if pt.infinity {
		return pt
	}
	return Point{X: pt.X, Y: Zero.ModSub(pt.Y, P)}
}

// Add returns pt+other per the standard affine addition/doubling formulas,
// reducing every intermediate value modulo P. Degenerate denominators
// (same X, opposite Y; or doubling a point with Y=0) collapse to Infinity.
func (pt Point) Add(other Point) Point {
	if pt.infinity {
		return other
	}
	if other.infinity {
		return pt
	}

	if pt.X.Cmp(other.X) == 0 {
		if pt.Y.Cmp(other.Y) != 0 || pt.Y.IsZero() {
			return Infinity
		}
		return pt.double()
	}

	num := other.Y.ModSub(pt.Y, P)
	den := other.X.ModSub(pt.X, P)
	denInv, ok := den.Inv(P)
	if !ok {
		return Infinity
	}
	lambda := num.ModMul(denInv, P)

	x3 := lambda.ModMul(lambda, P).ModSub(pt.X, P).ModSub(other.X, P)
	y3 := lambda.ModMul(pt.X.ModSub(x3, P), P).ModSub(pt.Y, P)
	return Point{X: x3, Y: y3}
}

// double implements point doubling: λ = 3x²/2y, a=0 so there is no +a term.
func (pt Point) double() Point {
	if pt.Y.IsZero() {
		return Infinity
	}
	three := NumFromUint64(3)
	two := NumFromUint64(2)

	num := three.ModMul(pt.X.ModMul(pt.X, P), P)
	den := two.ModMul(pt.Y, P)
	denInv, ok := den.Inv(P)
	if !ok {
		return Infinity
	}
	lambda := num.ModMul(denInv, P)

	x3 := lambda.ModMul(lambda, P).ModSub(pt.X, P).ModSub(pt.X, P)
	y3 := lambda.ModMul(pt.X.ModSub(x3, P), P).ModSub(pt.Y, P)
	return Point{X: x3, Y: y3}
}

// Mul computes scalar*pt by double-and-add over the 256 bits of scalar,
// least-significant bit first, adding the running double of pt whenever
// the bit is set.
func (pt Point) Mul(scalar Num) Point {
	result := Infinity
	addend := pt
	for i := uint(0); i < 256; i++ {
		if scalar.GetBit(i) == 1 {
			result = result.Add(addend)
		}
		addend = addend.double()
	}
	return result
}
