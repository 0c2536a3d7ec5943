package abstract

import (
	"fmt"
	"slices"
	"strings"

	"github.com/qldpc/groupalg/gf"
)

// Element is an element of the group algebra of a [Group] over its base
// field F_q: a finite formal sum x = sum_g x_g g with coefficients x_g in
// F_q.  The support is stored sparsely; members absent from the map carry
// an implicit zero coefficient, and zero coefficients are never stored.
//
// All operations are copy-on-write and return new Elements.
type Element struct {
	group *Group
	vec   map[string]term
}

type term struct {
	member GroupMember
	coeff  uint64
}

// NewElement returns the sum of the given members with unit coefficients.
// With no members it returns the zero element.
func NewElement(group *Group, members ...GroupMember) *Element {
	e := &Element{group: group, vec: map[string]term{}}
	for _, m := range members {
		e.accumulate(m, 1)
	}
	return e
}

// accumulate adds c times the given member in place.  Only used on fresh
// Elements before they escape.
func (e *Element) accumulate(m GroupMember, c uint64) {
	t, ok := e.vec[m.key()]
	if !ok {
		t = term{member: m}
	}
	t.coeff = e.group.field.Add(t.coeff, c)
	if t.coeff == 0 {
		delete(e.vec, m.key())
		return
	}
	e.vec[m.key()] = t
}

// Group returns the base group of the algebra.
func (e *Element) Group() *Group {
	return e.group
}

// Field returns the base field of the algebra.
func (e *Element) Field() *gf.Field {
	return e.group.field
}

// Zero returns the additive identity of the algebra.
func (e *Element) Zero() *Element {
	return NewElement(e.group)
}

// One returns the multiplicative identity: the identity member with unit
// coefficient.
func (e *Element) One() *Element {
	return NewElement(e.group, e.group.Identity())
}

// Copy returns a deep copy of the element.
func (e *Element) Copy() *Element {
	out := e.Zero()
	for _, t := range e.vec {
		out.vec[t.member.key()] = term{member: t.member.Clone(), coeff: t.coeff}
	}
	return out
}

// Coeff returns the coefficient of the given member.
func (e *Element) Coeff(m GroupMember) uint64 {
	return e.vec[m.key()].coeff
}

// Support returns the members with nonzero coefficients, in canonical
// order.
func (e *Element) Support() []GroupMember {
	out := make([]GroupMember, 0, len(e.vec))
	for _, t := range e.vec {
		out = append(out, t.member)
	}
	slices.SortFunc(out, GroupMember.Compare)
	return out
}

// Add returns e + other.
func (e *Element) Add(other *Element) *Element {
	out := e.Copy()
	for _, t := range other.vec {
		out.accumulate(t.member, t.coeff)
	}
	return out
}

// AddMember returns e + m, i.e. e with a unit coefficient added to m.
func (e *Element) AddMember(m GroupMember) *Element {
	out := e.Copy()
	out.accumulate(m, 1)
	return out
}

// Sub returns e - other.
func (e *Element) Sub(other *Element) *Element {
	return e.Add(other.Neg())
}

// Neg returns -e.
func (e *Element) Neg() *Element {
	return e.ScalarMul(e.group.field.Neg(1))
}

// ScalarMul returns c * e for a field element c.
func (e *Element) ScalarMul(c uint64) *Element {
	out := e.Zero()
	for _, t := range e.vec {
		out.accumulate(t.member, e.group.field.Mul(c, t.coeff))
	}
	return out
}

// MulInt returns n * e for an integer n, promoted into the prime subfield.
func (e *Element) MulInt(n int) *Element {
	return e.ScalarMul(e.group.field.FromInt(n))
}

// MulMember returns e * m: every basis member is shifted by
// right-multiplication with m, coefficients unchanged.
func (e *Element) MulMember(m GroupMember) *Element {
	out := e.Zero()
	for _, t := range e.vec {
		out.accumulate(t.member.Mul(m), t.coeff)
	}
	return out
}

// LeftMulMember returns m * e: every basis member is shifted by
// left-multiplication with m.
func (e *Element) LeftMulMember(m GroupMember) *Element {
	out := e.Zero()
	for _, t := range e.vec {
		out.accumulate(m.Mul(t.member), t.coeff)
	}
	return out
}

// Mul returns the convolution product e * other, collecting the products
// of every pair of terms.  Cost is O(|support(e)| * |support(other)|)
// member products.
func (e *Element) Mul(other *Element) *Element {
	out := e.Zero()
	for _, a := range e.vec {
		for _, b := range other.vec {
			out.accumulate(a.member.Mul(b.member), e.group.field.Mul(a.coeff, b.coeff))
		}
	}
	return out
}

// Pow returns e raised to a non-negative integer power, by repeated
// convolution starting from [Element.One].  Panics on a negative power.
func (e *Element) Pow(n int) *Element {
	if n < 0 {
		panic(fmt.Errorf("negative power %d of a group-algebra element", n))
	}
	out := e.One()
	for i := 0; i < n; i++ {
		out = out.Mul(e)
	}
	return out
}

// Lift returns the representation of the element: the sum of
// coefficient * Lift(member) over the support, seeded at the zero
// matrix of the group's lift dimension.
func (e *Element) Lift() *gf.Matrix {
	d := e.group.LiftDim()
	out := gf.NewMatrix(e.group.field, d, d)
	for _, t := range e.vec {
		out = out.Add(e.group.Lift(t.member).ScalarMul(t.coeff))
	}
	return out
}

// T returns the transpose of the element: every basis member is mapped to
// its group inverse, coefficients unchanged.  For the orthogonal lifts
// supported by this package this equals the algebraic transpose, i.e.
// e.T().Lift() is the transpose of e.Lift().
func (e *Element) T() *Element {
	out := e.Zero()
	for _, t := range e.vec {
		out.accumulate(t.member.Inverse(), t.coeff)
	}
	return out
}

// Equal compares the coefficients over the union of both supports, and
// requires the elements to belong to compatible groups: same field order
// and the same generator list.  Equal reconstructions of a group compare
// equal; the same group generated from a different generator set does not.
func (e *Element) Equal(other *Element) bool {
	if other == nil || !equalGroups(e.group, other.group) {
		return false
	}
	for k, t := range e.vec {
		if other.vec[k].coeff != t.coeff {
			return false
		}
	}
	for k, t := range other.vec {
		if e.vec[k].coeff != t.coeff {
			return false
		}
	}
	return true
}

// IsZero returns whether the element has empty support.
func (e *Element) IsZero() bool {
	return len(e.vec) == 0
}

func (e *Element) String() string {
	if e.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, m := range e.Support() {
		if i > 0 {
			b.WriteString(" + ")
		}
		if c := e.Coeff(m); c != 1 {
			fmt.Fprintf(&b, "%d*", c)
		}
		b.WriteString(m.String())
	}
	return b.String()
}
