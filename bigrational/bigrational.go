// Package bigrational implements an immutable, arbitrary-precision exact
// rational number: a normalized (numerator, denominator) pair over
// math/big.Int. Every operation returns a fresh value; there is no
// floating-point anywhere in this package.
package bigrational

import (
	"hash/fnv"
	"math/big"
	"strings"
)

// Rational is an immutable p/q with q > 0 and gcd(|p|, q) == 1. The zero
// value is NOT a valid Rational; use Zero() or New(0, 1).
type Rational struct {
	num big.Int
	den big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Zero returns the rational 0/1.
func Zero() Rational {
	return Rational{num: *big.NewInt(0), den: *big.NewInt(1)}
}

// One returns the rational 1/1.
func One() Rational {
	return Rational{num: *big.NewInt(1), den: *big.NewInt(1)}
}

// FromInt64 returns num/1 for an int64 numerator.
func FromInt64(n int64) Rational {
	return Rational{num: *big.NewInt(n), den: *big.NewInt(1)}
}

// FromBigInt returns num/1, copying num.
func FromBigInt(num *big.Int) Rational {
	return Rational{num: *new(big.Int).Set(num), den: *big.NewInt(1)}
}

// New constructs num/den, normalized: if den == 0 this fails with
// ErrArithmeticFault. Otherwise the fraction is reduced by its gcd and the
// denominator is forced positive; a zero numerator always collapses to 0/1.
func New(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrArithmeticFault
	}
	if num.Sign() == 0 {
		return Zero(), nil
	}

	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(bigOne) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return Rational{num: *n, den: *d}, nil
}

// MustNew is New but panics on a zero denominator; for use with
// known-nonzero literals.
func MustNew(num, den int64) Rational {
	r, err := New(big.NewInt(num), big.NewInt(den))
	if err != nil {
		panic(err)
	}
	return r
}

// Numerator returns a copy of the numerator.
func (r Rational) Numerator() *big.Int { return new(big.Int).Set(&r.num) }

// Denominator returns a copy of the denominator.
func (r Rational) Denominator() *big.Int { return new(big.Int).Set(&r.den) }

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	n := new(big.Int).Mul(&r.num, &o.den)
	n.Add(n, new(big.Int).Mul(&o.num, &r.den))
	d := new(big.Int).Mul(&r.den, &o.den)
	v, _ := New(n, d)
	return v
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	n := new(big.Int).Mul(&r.num, &o.den)
	n.Sub(n, new(big.Int).Mul(&o.num, &r.den))
	d := new(big.Int).Mul(&r.den, &o.den)
	v, _ := New(n, d)
	return v
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	n := new(big.Int).Mul(&r.num, &o.num)
	d := new(big.Int).Mul(&r.den, &o.den)
	v, _ := New(n, d)
	return v
}

// Div returns r / o. Fails with ErrArithmeticFault if o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, ErrArithmeticFault
	}
	n := new(big.Int).Mul(&r.num, &o.den)
	d := new(big.Int).Mul(&r.den, &o.num)
	return New(n, d)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: *new(big.Int).Neg(&r.num), den: *new(big.Int).Set(&r.den)}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return Rational{num: *new(big.Int).Abs(&r.num), den: *new(big.Int).Set(&r.den)}
}

// Sign returns -1, 0 or +1 according to the sign of r.
func (r Rational) Sign() int { return r.num.Sign() }

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.num.Sign() == 0 }

// Compare returns -1, 0 or +1 as r <, ==, > o, computed by
// cross-multiplication (no division, so no rounding).
func (r Rational) Compare(o Rational) int {
	lhs := new(big.Int).Mul(&r.num, &o.den)
	rhs := new(big.Int).Mul(&o.num, &r.den)
	return lhs.Cmp(rhs)
}

// Equals reports whether r and o are the same canonical value.
func (r Rational) Equals(o Rational) bool {
	return r.num.Cmp(&o.num) == 0 && r.den.Cmp(&o.den) == 0
}

// Less reports whether r < o.
func (r Rational) Less(o Rational) bool { return r.Compare(o) < 0 }

// Hash returns a stable hash of the canonical (num, den) pair: equal
// values hash equally.
func (r Rational) Hash() uint64 {
	h := fnv.New64a()
	h.Write(r.num.Bytes())
	h.Write([]byte{0})
	if r.num.Sign() < 0 {
		h.Write([]byte{1})
	}
	h.Write(r.den.Bytes())
	return h.Sum64()
}

// String renders r as "p" when the denominator is 1, else "p/q".
func (r Rational) String() string {
	if r.den.Cmp(bigOne) == 0 {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

// Parse accepts "a" or "a/b", with whitespace tolerated around the value
// and around the slash.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, ErrParseFault
	}
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		numStr := strings.TrimSpace(s[:idx])
		denStr := strings.TrimSpace(s[idx+1:])
		num, ok := new(big.Int).SetString(numStr, 10)
		if !ok {
			return Rational{}, ErrParseFault
		}
		den, ok := new(big.Int).SetString(denStr, 10)
		if !ok {
			return Rational{}, ErrParseFault
		}
		v, err := New(num, den)
		if err != nil {
			return Rational{}, err
		}
		return v, nil
	}
	num, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Rational{}, ErrParseFault
	}
	return FromBigInt(num), nil
}

// CanonicalizeIntegerRay rescales v to the unique integer vector that is a
// positive multiple of v with coprime entries: it clears denominators by
// the lcm of v's denominators, divides out the gcd of the resulting
// integers, and flips sign so the first nonzero entry is positive. A
// direction and its canonical form represent the same ray; two directions
// that agree up to a positive scalar canonicalize identically.
func CanonicalizeIntegerRay(v []Rational) []Rational {
	lcm := big.NewInt(1)
	for _, c := range v {
		d := &c.den
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}

	ints := make([]*big.Int, len(v))
	for i, c := range v {
		factor := new(big.Int).Quo(lcm, &c.den)
		ints[i] = new(big.Int).Mul(&c.num, factor)
	}

	g := big.NewInt(0)
	for _, n := range ints {
		if n.Sign() != 0 {
			g.GCD(nil, nil, g, new(big.Int).Abs(n))
		}
	}
	if g.Sign() == 0 {
		g = bigOne
	}

	out := make([]Rational, len(v))
	for i, n := range ints {
		q := new(big.Int).Quo(n, g)
		out[i] = FromBigInt(q)
	}

	for _, c := range out {
		if !c.IsZero() {
			if c.Sign() < 0 {
				for i := range out {
					out[i] = out[i].Neg()
				}
			}
			break
		}
	}
	return out
}
