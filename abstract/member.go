// Package abstract implements the algebraic substrate used to construct
// quantum error-correcting codes: finite permutation groups equipped with
// matrix representations ("lifts") over finite fields, elements of the
// associated group algebras, and protographs (matrices of group-algebra
// elements) that lift to parity-check matrices.
//
// Conventions.  Matrices act on objects from the left by standard
// convention, but permutations here are right-acting: the product p*q
// applied to an index i is q(p(i)).  To preserve the order of products
// under lifting, so that Lift(p*q) = Lift(p) * Lift(q), representations
// are likewise right-acting: a permutation matrix M moves a row vector v
// as v -> v*M.  In practice this means lift matrices are the transpose of
// the left-acting convention.
//
// Only orthogonal representations over finite fields are supported.  The
// restriction is not fundamental, but it identifies the "transpose" of a
// group member p, the member whose lift is Lift(p) transposed, with the
// group inverse of p.  [Element.T] relies on this identification.
package abstract

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
)

// GroupMember is a permutation of {0, ..., n-1} in array form: m[i] is the
// image of i.  Indices at or beyond len(m) are fixed points, so two members
// that differ only by trailing fixed points denote the same permutation.
// A GroupMember is an immutable value type; operations return new members.
type GroupMember []int

// NewGroupMember builds a member from its array form.
// Panics if the image is not a permutation.
func NewGroupMember(image ...int) GroupMember {
	seen := make([]bool, len(image))
	for _, v := range image {
		if v < 0 || v >= len(image) || seen[v] {
			panic(fmt.Errorf("invalid permutation %v", image))
		}
		seen[v] = true
	}
	return GroupMember(image)
}

// Identity returns the identity permutation on n points.
func Identity(n int) GroupMember {
	m := make(GroupMember, n)
	for i := range m {
		m[i] = i
	}
	return m
}

// FromCycles builds a member of the given size from 0-indexed disjoint
// cycles, the format delivered by group-catalog collaborators.
// An error is returned on out-of-range indices or overlapping cycles.
func FromCycles(size int, cycles [][]int) (GroupMember, error) {
	m := Identity(size)
	moved := make([]bool, size)
	for _, cycle := range cycles {
		for i, v := range cycle {
			if v < 0 || v >= size {
				return nil, fmt.Errorf("cycle index %d out of range [0, %d)", v, size)
			}
			if moved[v] {
				return nil, fmt.Errorf("cycles are not disjoint: index %d repeated", v)
			}
			if len(cycle) > 1 {
				moved[v] = true
			}
			m[v] = cycle[(i+1)%len(cycle)]
		}
	}
	return m, nil
}

// Size returns the length of the array form.
func (m GroupMember) Size() int {
	return len(m)
}

// Apply returns the image of i, treating indices beyond the array form as
// fixed points.
func (m GroupMember) Apply(i int) int {
	if i < len(m) {
		return m[i]
	}
	return i
}

// Mul returns the right-acting composition p*q: first apply the receiver,
// then other.
func (m GroupMember) Mul(other GroupMember) GroupMember {
	size := max(len(m), len(other))
	out := make(GroupMember, size)
	for i := range out {
		out[i] = other.Apply(m.Apply(i))
	}
	return out
}

// Inverse returns the inverse permutation.
func (m GroupMember) Inverse() GroupMember {
	out := make(GroupMember, len(m))
	for i, v := range m {
		out[v] = i
	}
	return out
}

// Tensor concatenates the action domains of the receiver and other: the
// result acts as the receiver on [0, m.Size()) and as other, offset by
// m.Size(), above.  Used to build direct-product generators.
func (m GroupMember) Tensor(other GroupMember) GroupMember {
	out := make(GroupMember, 0, len(m)+len(other))
	out = append(out, m...)
	for _, v := range other {
		out = append(out, v+len(m))
	}
	return out
}

// Equal compares members by their underlying mapping, ignoring trailing
// fixed points.
func (m GroupMember) Equal(other GroupMember) bool {
	return m.Compare(other) == 0
}

// IsIdentity returns whether the member fixes every point.
func (m GroupMember) IsIdentity() bool {
	for i, v := range m {
		if v != i {
			return false
		}
	}
	return true
}

// Compare orders members by their canonical rank: lexicographic order of
// the array forms, extended with fixed points to a common size.  It
// returns -1, 0 or 1.
func (m GroupMember) Compare(other GroupMember) int {
	size := max(len(m), len(other))
	for i := 0; i < size; i++ {
		if c := cmpInt(m.Apply(i), other.Apply(i)); c != 0 {
			return c
		}
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Clone returns a copy of the member.
func (m GroupMember) Clone() GroupMember {
	return slices.Clone(m)
}

// key returns a canonical map key for the permutation, invariant under
// trailing fixed points.
func (m GroupMember) key() string {
	n := len(m)
	for n > 0 && m[n-1] == n-1 {
		n--
	}
	buf := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(buf[4*i:], uint32(m[i]))
	}
	return string(buf)
}

// String renders the member in cycle notation.
func (m GroupMember) String() string {
	var b strings.Builder
	seen := make([]bool, len(m))
	for i := range m {
		if seen[i] || m[i] == i {
			continue
		}
		b.WriteByte('(')
		for j := i; !seen[j]; j = m[j] {
			if j != i {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", j)
			seen[j] = true
		}
		b.WriteByte(')')
	}
	if b.Len() == 0 {
		return "()"
	}
	return b.String()
}
