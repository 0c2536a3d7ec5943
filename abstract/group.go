package abstract

import (
	"encoding/binary"
	"fmt"
	"iter"
	"slices"

	"github.com/qldpc/groupalg/gf"
	"github.com/qldpc/groupalg/utils/sampling"
)

// DefaultFieldOrder is the field order used when a constructor is called
// with a field argument of 0.
const DefaultFieldOrder = 2

// Lift maps a group member to a raw integer matrix.  [Group.Lift] promotes
// the entries into the group's base field, so a Lift may return entries
// outside [0, q), e.g. -1.
//
// A valid Lift is a homomorphism into invertible matrices of a fixed
// dimension: Lift(p*q) = Lift(p) * Lift(q).  Wherever [Element.T] is used,
// the lift must additionally be orthogonal: Lift(p^-1) = Lift(p)
// transposed.
type Lift func(GroupMember) [][]int

// IntegerLift maps a member's index in a multiplication table to a raw
// integer matrix.
type IntegerLift func(int) [][]int

// Group is a finite permutation group over a base field, equipped with a
// lift.  A Group is constructed once and is read-only afterwards, aside
// from two derived properties (lift dimension, Cayley table) cached on
// first access.  Distinct Group instances share no mutable state.
type Group struct {
	field      *gf.Field
	degree     int
	generators []GroupMember
	lift       Lift
	name       string

	// Cached derived properties.
	liftDim int
	members []GroupMember
	index   map[string]int
	table   [][]int
}

// permutationLift is the default lift: the right-acting permutation-matrix
// representation lift(p)[i][p(i)] = 1 on the given domain size.
func permutationLift(degree int) Lift {
	return func(m GroupMember) [][]int {
		mat := make([][]int, degree)
		for i := range mat {
			mat[i] = make([]int, degree)
			mat[i][m.Apply(i)] = 1
		}
		return mat
	}
}

// FromGenerators constructs the closure of the given members, with the
// permutation-matrix representation as the lift.
// A field argument of 0 selects [DefaultFieldOrder].
func FromGenerators(field int, generators ...GroupMember) (*Group, error) {

	if len(generators) == 0 {
		return nil, fmt.Errorf("cannot construct a group from an empty generator list")
	}

	if field == 0 {
		field = DefaultFieldOrder
	}

	f, err := gf.NewField(field)
	if err != nil {
		return nil, err
	}

	// Degree 1 floor keeps the trivial group's lift one-dimensional.
	degree := 1
	for _, g := range generators {
		degree = max(degree, g.Size())
	}

	gens := make([]GroupMember, len(generators))
	for i, g := range generators {
		gens[i] = g.Clone()
	}

	return &Group{
		field:      f,
		degree:     degree,
		generators: gens,
		lift:       permutationLift(degree),
	}, nil
}

// FromTable constructs a group from a multiplication (Cayley) table, whose
// rows are identified with the members' array forms.  An optional
// integer-indexed lift may be supplied; if lift is nil the permutation
// matrices of the rows are used.
func FromTable(table [][]int, field int, lift IntegerLift) (*Group, error) {

	rows := make([]GroupMember, len(table))
	for i, row := range table {
		if len(row) != len(table) {
			return nil, fmt.Errorf("multiplication table is not square: row %d has %d entries, want %d", i, len(row), len(table))
		}
		rows[i] = GroupMember(slices.Clone(row))
	}

	g, err := FromGenerators(field, rows...)
	if err != nil {
		return nil, err
	}

	if lift == nil {
		return g, nil
	}

	index := make(map[string]int, len(rows))
	for i, row := range rows {
		index[row.key()] = i
	}

	g.lift = func(m GroupMember) [][]int {
		i, ok := index[m.key()]
		if !ok {
			panic(fmt.Errorf("member %v is not a row of the multiplication table", m))
		}
		return lift(i)
	}

	return g, nil
}

// FromPermutationMats constructs a group from generating matrices acting on
// an enumerated space of distinct vectors: each matrix permutes the space
// index set by left-multiplication.  An error is returned if a generator
// maps a space vector outside the space.
func FromPermutationMats(generators []*gf.Matrix, space [][]uint64, field int) (*Group, error) {
	return fromMatrixAction(generators, space, nil, field)
}

// fromMatrixAction realizes matrix generators as permutations of an
// enumerated space.  The optional canon function maps an image vector to
// its representative in the space, as needed for projective spaces.
func fromMatrixAction(generators []*gf.Matrix, space [][]uint64, canon func([]uint64) []uint64, field int) (*Group, error) {

	if len(space) == 0 {
		return nil, fmt.Errorf("cannot construct a group action on an empty space")
	}

	index := make(map[string]int, len(space))
	for i, vec := range space {
		index[vecKey(vec)] = i
	}

	perms := make([]GroupMember, len(generators))
	for k, mat := range generators {
		perm := make(GroupMember, len(space))
		for i, vec := range space {
			next := mat.MulVec(vec)
			if canon != nil {
				next = canon(next)
			}
			j, ok := index[vecKey(next)]
			if !ok {
				return nil, fmt.Errorf("generator %d maps vector %v outside the enumerated space", k, vec)
			}
			perm[i] = j
		}
		perms[k] = perm
	}

	return FromGenerators(field, perms...)
}

func vecKey(vec []uint64) string {
	buf := make([]byte, 8*len(vec))
	for i, v := range vec {
		binary.BigEndian.PutUint64(buf[8*i:], v)
	}
	return string(buf)
}

// WithLift returns a shallow handle on the same group with the lift
// replaced.  The lift-dimension and Cayley-table caches are reset.
func (g *Group) WithLift(lift Lift) *Group {
	out := *g
	out.lift = lift
	out.liftDim = 0
	return &out
}

// WithName returns a shallow handle on the same group carrying the given
// instance-local label.
func (g *Group) WithName(name string) *Group {
	out := *g
	out.name = name
	return &out
}

// Name returns the optional label attached at construction time.
func (g *Group) Name() string {
	return g.name
}

// Field returns the base field of the group's lift.
func (g *Group) Field() *gf.Field {
	return g.field
}

// Degree returns the size of the permutation domain.
func (g *Group) Degree() int {
	return g.degree
}

// Generators returns a copy of the group's generator list.
func (g *Group) Generators() []GroupMember {
	out := make([]GroupMember, len(g.generators))
	for i, gen := range g.generators {
		out[i] = gen.Clone()
	}
	return out
}

// Identity returns the identity member of the group.
func (g *Group) Identity() GroupMember {
	return Identity(g.degree)
}

// enumerate returns all members in the deterministic breadth-first closure
// order, with the identity first.  It reuses the Cayley-table cache when
// present but does not populate it.
func (g *Group) enumerate() []GroupMember {
	if g.members != nil {
		return g.members
	}

	id := g.Identity()
	order := []GroupMember{id}
	seen := map[string]bool{id.key(): true}

	for i := 0; i < len(order); i++ {
		for _, gen := range g.generators {
			next := order[i].Mul(gen)
			if k := next.key(); !seen[k] {
				seen[k] = true
				order = append(order, next)
			}
		}
	}

	return order
}

// Generate iterates over all group members lazily, in a deterministic
// breadth-first order starting from the identity.  The sequence is
// restartable: each call re-enumerates the closure.
func (g *Group) Generate() iter.Seq[GroupMember] {
	return func(yield func(GroupMember) bool) {

		if g.members != nil {
			for _, m := range g.members {
				if !yield(m) {
					return
				}
			}
			return
		}

		id := g.Identity()
		if !yield(id) {
			return
		}
		order := []GroupMember{id}
		seen := map[string]bool{id.key(): true}

		for i := 0; i < len(order); i++ {
			for _, gen := range g.generators {
				next := order[i].Mul(gen)
				if k := next.key(); !seen[k] {
					seen[k] = true
					order = append(order, next)
					if !yield(next) {
						return
					}
				}
			}
		}
	}
}

// Order returns the number of members of the group.
func (g *Group) Order() int {
	return len(g.enumerate())
}

// Contains reports whether the given member belongs to the group.
func (g *Group) Contains(m GroupMember) bool {
	key := m.key()
	for _, member := range g.enumerate() {
		if member.key() == key {
			return true
		}
	}
	return false
}

// Lift applies the group's lift to a member and promotes the raw integer
// matrix into base-field elements.
func (g *Group) Lift(m GroupMember) *gf.Matrix {
	return gf.FromInts(g.field, g.lift(m))
}

// LiftDim returns the dimension of the group's representation, computed
// once from the lift of the first generator.
func (g *Group) LiftDim() int {
	if g.liftDim == 0 {
		g.liftDim = len(g.lift(g.generators[0]))
	}
	return g.liftDim
}

// Table returns the order x order multiplication (Cayley) table of the
// group: Table()[i][j] is the enumeration index of members[i] * members[j]
// under the [Group.Generate] order.  The table is computed once and cached
// for the life of the Group.
func (g *Group) Table() [][]int {
	if g.table != nil {
		return g.table
	}

	g.members = g.enumerate()
	g.index = make(map[string]int, len(g.members))
	for i, m := range g.members {
		g.index[m.key()] = i
	}

	g.table = make([][]int, len(g.members))
	for i, a := range g.members {
		row := make([]int, len(g.members))
		for j, b := range g.members {
			k, ok := g.index[a.Mul(b).key()]
			if !ok {
				// Sanity check: the closure is closed under Mul.
				panic(fmt.Errorf("product %v * %v escapes the group", a, b))
			}
			row[j] = k
		}
		g.table[i] = row
	}

	return g.table
}

// Mul returns the direct product of the two groups: the permutation
// domains are concatenated and the product lift is the Kronecker product
// of the input lifts.  An error is returned if the groups are defined over
// different field orders.
func (g *Group) Mul(other *Group) (*Group, error) {

	if !g.field.Equal(other.field) {
		return nil, fmt.Errorf("cannot multiply groups with lifts defined over different fields: %s and %s", g.field, other.field)
	}

	d1, d2 := g.degree, other.degree

	var gens []GroupMember
	for _, a := range g.generators {
		gens = append(gens, a.Tensor(Identity(d2)))
	}
	for _, b := range other.generators {
		gens = append(gens, Identity(d1).Tensor(b))
	}

	left, right := g.lift, other.lift
	lift := func(m GroupMember) [][]int {
		a := make(GroupMember, d1)
		for i := range a {
			a[i] = m.Apply(i)
		}
		b := make(GroupMember, d2)
		for i := range b {
			b[i] = m.Apply(d1+i) - d1
		}
		return kronInts(left(a), right(b))
	}

	product, err := FromGenerators(int(g.field.Order), gens...)
	if err != nil {
		return nil, err
	}
	return product.WithLift(lift), nil
}

// Product returns the direct product of the given groups, reduced left to
// right.
func Product(groups ...*Group) (*Group, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("cannot take the product of zero groups")
	}
	out := groups[0]
	for _, g := range groups[1:] {
		var err error
		if out, err = out.Mul(g); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// kronInts returns the Kronecker product of two raw integer matrices.
func kronInts(a, b [][]int) [][]int {
	ra, ca := len(a), len(a[0])
	rb, cb := len(b), len(b[0])
	out := make([][]int, ra*rb)
	for i := range out {
		out[i] = make([]int, ca*cb)
	}
	for i1 := 0; i1 < ra; i1++ {
		for j1 := 0; j1 < ca; j1++ {
			if a[i1][j1] == 0 {
				continue
			}
			for i2 := 0; i2 < rb; i2++ {
				for j2 := 0; j2 < cb; j2++ {
					out[i1*rb+i2][j1*cb+j2] = a[i1][j1] * b[i2][j2]
				}
			}
		}
	}
	return out
}

// Random draws one uniformly random member of the group from the given
// source.
func (g *Group) Random(source *sampling.Source) GroupMember {
	members := g.enumerate()
	return members[source.IntN(len(members))]
}

// RandomSymmetricSubset draws a subset of exactly size members closed
// under inversion, by rejection sampling: self-inverse members ("singles")
// and inverse-closed pairs ("doubles") are accumulated until the target
// size is met, trimming any overshoot by whole pairs and then by at most
// one single.  The subset is sufficiently random rather than uniformly
// random.  An error is returned if size is outside (0, order].
//
// WARNING: not every group has symmetric subsets of every size.  For an
// infeasible (group, size) pair this method never terminates; this is an
// inherent property of the sampling approach and is deliberately not
// masked by a retry limit.
func (g *Group) RandomSymmetricSubset(source *sampling.Source, size int, excludeIdentity bool) ([]GroupMember, error) {

	members := g.enumerate()

	if size <= 0 || size > len(members) {
		return nil, fmt.Errorf("a random symmetric subset of this group must have a size between 1 and %d (provided: %d)", len(members), size)
	}

	singles := map[string]GroupMember{} // members equal to their own inverse
	doubles := map[string]GroupMember{} // members paired with a distinct inverse

	for {
		member := members[source.IntN(len(members))]
		if excludeIdentity && member.IsIdentity() {
			continue
		}

		// Always keep the members we find.
		inverse := member.Inverse()
		if member.Equal(inverse) {
			singles[member.key()] = member
		} else {
			doubles[member.key()] = member
			doubles[inverse.key()] = inverse
		}

		extra := len(singles) + len(doubles) - size

		if extra == 0 {
			return sortedUnion(singles, doubles), nil
		}

		if extra > 0 && len(singles) > 0 {
			// Overshot: discard whole inverse-pairs, then one single if the
			// remaining excess is odd.  Trimming in canonical member order
			// keeps equal seeds giving identical subsets.
			for i := 0; i < extra/2; i++ {
				member := doubles[firstKey(doubles)]
				delete(doubles, member.key())
				delete(doubles, member.Inverse().key())
			}
			if extra%2 == 1 {
				delete(singles, firstKey(singles))
			}
			return sortedUnion(singles, doubles), nil
		}
	}
}

// firstKey returns the smallest key of a non-empty map.  The identity
// member's canonical key is the empty string, so absence is tracked with an
// explicit flag rather than a sentinel value.
func firstKey[V any](m map[string]V) string {
	first, found := "", false
	for k := range m {
		if !found || k < first {
			first, found = k, true
		}
	}
	return first
}

func sortedUnion(a, b map[string]GroupMember) []GroupMember {
	out := make([]GroupMember, 0, len(a)+len(b))
	for _, m := range a {
		out = append(out, m)
	}
	for _, m := range b {
		out = append(out, m)
	}
	slices.SortFunc(out, GroupMember.Compare)
	return out
}

// equalGroups reports whether two groups have the same field order and the
// same generator list.  Used as a sanity notion of algebra compatibility.
func equalGroups(a, b *Group) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || !a.field.Equal(b.field) || len(a.generators) != len(b.generators) {
		return false
	}
	for i := range a.generators {
		if !a.generators[i].Equal(b.generators[i]) {
			return false
		}
	}
	return true
}

func (g *Group) String() string {
	if g.name != "" {
		return g.name
	}
	return fmt.Sprintf("group of degree %d over %s", g.degree, g.field)
}
