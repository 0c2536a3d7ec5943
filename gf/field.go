// Package gf implements arithmetic over finite fields GF(p^m) and dense
// matrices with entries in such fields.
//
// Field elements are uint64 codes in [0, q).  For prime fields the code is
// the residue itself.  For extension fields the code is the base-p encoding
// of the element's coefficient vector, so that addition is digit-wise
// arithmetic modulo p while multiplication goes through discrete log/exp
// tables built from a primitive polynomial.  All tables are computed once
// at construction; a Field is immutable afterwards.
package gf

import (
	"fmt"
)

// Field stores the precomputed constants and tables of a finite
// field GF(p^m).
type Field struct {
	// Char is the characteristic p.
	Char uint64

	// Degree is the extension degree m.
	Degree int

	// Order is the field order q = p^m.
	Order uint64

	primitive uint64 // generator of the multiplicative group

	// Discrete log/exp tables: exp[k] = primitive^k for k in [0, q-1),
	// log[x] is its inverse on [1, q).
	exp []uint64
	log []int
}

// primitivePolys maps a prime-power order q = p^m with m > 1 to the low
// coefficients (constant term first) of a monic degree-m primitive
// polynomial over GF(p).  Covers every non-prime prime power up to 256.
var primitivePolys = map[uint64][]uint64{
	4:   {1, 1},                   // x^2 + x + 1
	8:   {1, 1, 0},                // x^3 + x + 1
	9:   {2, 2},                   // x^2 + 2x + 2
	16:  {1, 1, 0, 0},             // x^4 + x + 1
	25:  {2, 4},                   // x^2 + 4x + 2
	27:  {1, 2, 0},                // x^3 + 2x + 1
	32:  {1, 0, 1, 0, 0},          // x^5 + x^2 + 1
	49:  {3, 6},                   // x^2 + 6x + 3
	64:  {1, 1, 0, 0, 0, 0},       // x^6 + x + 1
	81:  {2, 0, 0, 2},             // x^4 + 2x^3 + 2
	121: {2, 7},                   // x^2 + 7x + 2
	125: {3, 3, 0},                // x^3 + 3x + 3
	128: {1, 1, 0, 0, 0, 0, 0},    // x^7 + x + 1
	169: {2, 12},                  // x^2 + 12x + 2
	243: {1, 2, 0, 0, 0},          // x^5 + 2x + 1
	256: {1, 0, 1, 1, 1, 0, 0, 0}, // x^8 + x^4 + x^3 + x^2 + 1
}

// NewField creates a new [Field] of order q.
// An error is returned if q is not a prime power, or if q is an extension
// order without an entry in the primitive polynomial table.
func NewField(q int) (f *Field, err error) {

	if q < 2 {
		return nil, fmt.Errorf("invalid field order %d: must be at least 2", q)
	}

	p, m := factorPrimePower(uint64(q))
	if p == 0 {
		return nil, fmt.Errorf("invalid field order %d: not a prime power", q)
	}

	f = &Field{
		Char:   p,
		Degree: m,
		Order:  uint64(q),
	}

	if m == 1 {
		f.primitive, err = primitiveRoot(p)
		if err != nil {
			return nil, err
		}
	} else {
		if _, ok := primitivePolys[f.Order]; !ok {
			return nil, fmt.Errorf("unsupported extension field order %d: no primitive polynomial registered", q)
		}
		// The registered polynomials are primitive, so the class of x
		// generates the multiplicative group.
		f.primitive = p
	}

	f.genTables()

	return f, nil
}

// genTables fills the discrete log/exp tables by iterating powers of the
// primitive element.
func (f *Field) genTables() {
	f.exp = make([]uint64, f.Order-1)
	f.log = make([]int, f.Order)

	x := uint64(1)
	for i := range f.exp {
		f.exp[i] = x
		f.log[x] = i
		x = f.mulSingle(x, f.primitive)
	}
}

// mulSingle multiplies two elements without the log/exp tables, used only
// during table generation.  For extension fields b must be either a prime
// subfield constant or the class of x.
func (f *Field) mulSingle(a, b uint64) uint64 {
	if f.Degree == 1 {
		return (a * b) % f.Char
	}
	if b == f.Char { // the class of x
		return f.mulX(a)
	}
	return f.scaleDigits(a, b%f.Char)
}

// mulX multiplies an element by the class of x, reducing by the primitive
// polynomial.
func (f *Field) mulX(a uint64) uint64 {
	w := a * f.Char
	d := w / f.Order
	w %= f.Order
	if d != 0 {
		// Subtract d times the low part of the primitive polynomial.
		poly := primitivePolys[f.Order]
		pk := uint64(1)
		for _, c := range poly {
			w = f.addDigit(w, pk, (f.Char-(c*d)%f.Char)%f.Char)
			pk *= f.Char
		}
	}
	return w
}

// addDigit adds the constant c to the digit of a at position weight pk.
func (f *Field) addDigit(a, pk, c uint64) uint64 {
	digit := (a / pk) % f.Char
	return a - digit*pk + ((digit+c)%f.Char)*pk
}

// addDigits adds two elements digit-wise modulo the characteristic.
func (f *Field) addDigits(a, b uint64) uint64 {
	if f.Degree == 1 {
		return (a + b) % f.Char
	}
	var out, pk uint64 = 0, 1
	for i := 0; i < f.Degree; i++ {
		da := (a / pk) % f.Char
		db := (b / pk) % f.Char
		out += ((da + db) % f.Char) * pk
		pk *= f.Char
	}
	return out
}

// scaleDigits multiplies every digit of a by the prime subfield constant c.
func (f *Field) scaleDigits(a, c uint64) uint64 {
	if f.Degree == 1 {
		return (a * c) % f.Char
	}
	var out, pk uint64 = 0, 1
	for i := 0; i < f.Degree; i++ {
		da := (a / pk) % f.Char
		out += ((da * c) % f.Char) * pk
		pk *= f.Char
	}
	return out
}

// check panics if a is not a valid element code of the field.
func (f *Field) check(a uint64) {
	if a >= f.Order {
		panic(fmt.Errorf("invalid element code %d for %s", a, f))
	}
}

// Add returns a + b.
func (f *Field) Add(a, b uint64) uint64 {
	f.check(a)
	f.check(b)
	return f.addDigits(a, b)
}

// Neg returns -a.
func (f *Field) Neg(a uint64) uint64 {
	f.check(a)
	if f.Degree == 1 {
		return (f.Char - a) % f.Char
	}
	var out, pk uint64 = 0, 1
	for i := 0; i < f.Degree; i++ {
		da := (a / pk) % f.Char
		out += ((f.Char - da) % f.Char) * pk
		pk *= f.Char
	}
	return out
}

// Sub returns a - b.
func (f *Field) Sub(a, b uint64) uint64 {
	return f.Add(a, f.Neg(b))
}

// Mul returns a * b.
func (f *Field) Mul(a, b uint64) uint64 {
	f.check(a)
	f.check(b)
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(f.log[a]+f.log[b])%int(f.Order-1)]
}

// Inv returns the multiplicative inverse of a.
// Panics if a is zero.
func (f *Field) Inv(a uint64) uint64 {
	f.check(a)
	if a == 0 {
		panic(fmt.Errorf("zero element of %s has no inverse", f))
	}
	return f.exp[(int(f.Order-1)-f.log[a])%int(f.Order-1)]
}

// Exp returns a^n, with 0^0 = 1.  Negative exponents invert a first and
// therefore panic on a zero base.
func (f *Field) Exp(a uint64, n int) uint64 {
	f.check(a)
	if n < 0 {
		a = f.Inv(a)
		n = -n
	}
	if a == 0 {
		if n == 0 {
			return 1
		}
		return 0
	}
	return f.exp[(f.log[a]*(n%int(f.Order-1)))%int(f.Order-1)]
}

// FromInt promotes an arbitrary integer into the prime subfield, reducing
// it modulo the characteristic.
func (f *Field) FromInt(v int) uint64 {
	r := v % int(f.Char)
	if r < 0 {
		r += int(f.Char)
	}
	return uint64(r)
}

// PrimitiveElement returns a fixed generator of the multiplicative group:
// the smallest primitive root for prime fields, the class of x for
// extension fields.
func (f *Field) PrimitiveElement() uint64 {
	return f.primitive
}

// Elements returns all element codes of the field in canonical order.
func (f *Field) Elements() []uint64 {
	out := make([]uint64, f.Order)
	for i := range out {
		out[i] = uint64(i)
	}
	return out
}

// Equal returns whether the two fields have the same order.
func (f *Field) Equal(other *Field) bool {
	return other != nil && f.Order == other.Order
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(%d)", f.Order)
}
