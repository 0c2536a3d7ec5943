package abstract

import (
	"fmt"
	"testing"

	"github.com/qldpc/groupalg/gf"
	"github.com/qldpc/groupalg/utils/sampling"
	"github.com/stretchr/testify/require"
)

// requireHomomorphism checks Lift(a*b) = Lift(a) * Lift(b) over all pairs.
func requireHomomorphism(t *testing.T, g *Group) {
	t.Helper()
	members := g.enumerate()
	for _, a := range members {
		for _, b := range members {
			require.True(t, g.Lift(a.Mul(b)).Equal(g.Lift(a).Mul(g.Lift(b))),
				"lift is not a homomorphism at %v * %v", a, b)
		}
	}
}

// requireOrthogonal checks Lift(p) * Lift(p)^T = I over all members.
func requireOrthogonal(t *testing.T, g *Group) {
	t.Helper()
	eye := gf.Identity(g.Field(), g.LiftDim())
	for m := range g.Generate() {
		require.True(t, g.Lift(m).Mul(g.Lift(m).Transpose()).Equal(eye),
			"lift of %v is not orthogonal", m)
	}
}

func TestCyclicGroupEnumeration(t *testing.T) {
	g, err := CyclicGroup(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.Order())

	var members []GroupMember
	for m := range g.Generate() {
		members = append(members, m)
	}
	require.Len(t, members, 4)
	for i, a := range members {
		for j, b := range members {
			if i != j {
				require.False(t, a.Equal(b))
			}
		}
	}

	// Generate is restartable and deterministic.
	var again []GroupMember
	for m := range g.Generate() {
		again = append(again, m)
	}
	require.Equal(t, members, again)
}

func TestCyclicGroupTable(t *testing.T) {
	g, err := CyclicGroup(4)
	require.NoError(t, err)

	table := g.Table()
	require.Len(t, table, 4)

	// Latin square: every row and column is a permutation of 0..3.
	for i := 0; i < 4; i++ {
		rowSeen := make([]bool, 4)
		colSeen := make([]bool, 4)
		for j := 0; j < 4; j++ {
			require.False(t, rowSeen[table[i][j]])
			rowSeen[table[i][j]] = true
			require.False(t, colSeen[table[j][i]])
			colSeen[table[j][i]] = true
		}
	}

	// Row and column of the identity equal the enumeration order itself.
	for j := 0; j < 4; j++ {
		require.Equal(t, j, table[0][j])
		require.Equal(t, j, table[j][0])
	}
}

func TestCayleyTableConsistency(t *testing.T) {
	for _, order := range []int{3, 6} {
		t.Run(fmt.Sprintf("D%d", order), func(t *testing.T) {
			g, err := DihedralGroup(order)
			require.NoError(t, err)

			table := g.Table()
			members := g.enumerate()
			index := map[string]int{}
			for i, m := range members {
				index[m.key()] = i
			}
			for i, a := range members {
				for j, b := range members {
					require.Equal(t, index[a.Mul(b).key()], table[i][j])
				}
			}
		})
	}
}

func TestPermutationLiftProperties(t *testing.T) {
	for _, tc := range []struct {
		name  string
		build func() (*Group, error)
	}{
		{"C5", func() (*Group, error) { return CyclicGroup(5) }},
		{"D4", func() (*Group, error) { return DihedralGroup(4) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.build()
			require.NoError(t, err)
			requireHomomorphism(t, g)
			requireOrthogonal(t, g)
		})
	}
}

func TestLiftDim(t *testing.T) {
	g, err := CyclicGroup(6)
	require.NoError(t, err)
	require.Equal(t, 6, g.LiftDim())

	// The cyclic shift matrix: lift(g)[i][(i+1) mod n] = 1.
	shift := g.Lift(g.Generators()[0])
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := uint64(0)
			if j == (i+1)%6 {
				want = 1
			}
			require.Equal(t, want, shift.At(i, j))
		}
	}
}

func TestFromGenerators(t *testing.T) {
	// S3 from a transposition and a 3-cycle.
	g, err := FromGenerators(2, NewGroupMember(1, 0, 2), NewGroupMember(1, 2, 0))
	require.NoError(t, err)
	require.Equal(t, 6, g.Order())
	require.True(t, g.Contains(NewGroupMember(2, 1, 0)))
	require.False(t, g.Contains(NewGroupMember(0, 1, 2, 4, 3)))

	_, err = FromGenerators(2)
	require.Error(t, err)

	_, err = FromGenerators(6, NewGroupMember(1, 0))
	require.Error(t, err)
}

func TestFromTable(t *testing.T) {
	table := [][]int{
		{0, 1, 2},
		{1, 2, 0},
		{2, 0, 1},
	}
	g, err := FromTable(table, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 3, g.Order())
	require.Equal(t, table, g.Table())

	_, err = FromTable([][]int{{0, 1}, {1}}, 0, nil)
	require.Error(t, err)
}

func TestFromPermutationMats(t *testing.T) {
	f, err := gf.NewField(2)
	require.NoError(t, err)

	// The swap matrix acting on the three nonzero vectors of GF(2)^2.
	swap := gf.FromInts(f, [][]int{{0, 1}, {1, 0}})
	space := [][]uint64{{0, 1}, {1, 0}, {1, 1}}

	g, err := FromPermutationMats([]*gf.Matrix{swap}, space, 2)
	require.NoError(t, err)
	require.Equal(t, 2, g.Order())
	require.True(t, g.Contains(NewGroupMember(1, 0, 2)))

	// A generator mapping vectors outside the space is rejected.
	_, err = FromPermutationMats([]*gf.Matrix{swap}, [][]uint64{{0, 1}, {1, 1}}, 2)
	require.Error(t, err)
}

func TestDirectProduct(t *testing.T) {
	c2, err := CyclicGroup(2)
	require.NoError(t, err)
	c3, err := CyclicGroup(3)
	require.NoError(t, err)

	g, err := c2.Mul(c3)
	require.NoError(t, err)
	require.Equal(t, 6, g.Order())
	require.Equal(t, c2.LiftDim()*c3.LiftDim(), g.LiftDim())
	requireHomomorphism(t, g)
	requireOrthogonal(t, g)

	// Mismatched field orders are rejected.
	q8, err := QuaternionGroup()
	require.NoError(t, err)
	_, err = c2.Mul(q8)
	require.Error(t, err)

	product, err := Product(c2, c2, c3)
	require.NoError(t, err)
	require.Equal(t, 12, product.Order())
	require.Equal(t, 12, product.LiftDim())
}

func TestRandomIsReproducible(t *testing.T) {
	g, err := DihedralGroup(4)
	require.NoError(t, err)

	seed := sampling.Seed{1}
	a := g.Random(sampling.NewSource(seed))
	b := g.Random(sampling.NewSource(seed))
	require.True(t, a.Equal(b))
	require.True(t, g.Contains(a))

	// Draws on one source do not disturb an independently seeded source.
	src1 := sampling.NewSource(seed)
	src2 := sampling.NewSource(seed)
	g.Random(src2)
	first := g.Random(src1)
	require.True(t, first.Equal(a))
}

func TestRandomSymmetricSubset(t *testing.T) {
	g, err := CyclicGroup(6)
	require.NoError(t, err)

	subset, err := g.RandomSymmetricSubset(sampling.NewSource(sampling.Seed{}), 4, false)
	require.NoError(t, err)
	require.Len(t, subset, 4)

	// Closed under inversion.
	for _, m := range subset {
		inv := m.Inverse()
		found := false
		for _, n := range subset {
			if n.Equal(inv) {
				found = true
				break
			}
		}
		require.True(t, found, "inverse of %v missing from subset", m)
	}

	// Equal seeds reproduce the same subset.
	again, err := g.RandomSymmetricSubset(sampling.NewSource(sampling.Seed{}), 4, false)
	require.NoError(t, err)
	require.Equal(t, subset, again)
}

func TestFirstKey(t *testing.T) {
	// The identity member's canonical key is the empty string, which must
	// still win as the smallest key on every call.
	m := map[string]int{"": 0, "a": 1, "b": 2}
	for i := 0; i < 100; i++ {
		require.Equal(t, "", firstKey(m))
	}
	require.Equal(t, "a", firstKey(map[string]int{"b": 0, "a": 1}))
}

func TestRandomSymmetricSubsetTrimIsDeterministic(t *testing.T) {
	// D4 has six self-inverse members (among them the identity) and one
	// inverse pair, so drawing four members frequently overshoots by one
	// and exercises the trimming path.
	g, err := DihedralGroup(4)
	require.NoError(t, err)

	for seed := byte(0); seed < 32; seed++ {
		for _, exclude := range []bool{false, true} {
			t.Run(fmt.Sprintf("seed=%d/excludeIdentity=%v", seed, exclude), func(t *testing.T) {
				subset, err := g.RandomSymmetricSubset(sampling.NewSource(sampling.Seed{seed}), 4, exclude)
				require.NoError(t, err)
				require.Len(t, subset, 4)

				again, err := g.RandomSymmetricSubset(sampling.NewSource(sampling.Seed{seed}), 4, exclude)
				require.NoError(t, err)
				require.Equal(t, subset, again)
			})
		}
	}
}

func TestRandomSymmetricSubsetExcludeIdentity(t *testing.T) {
	g, err := DihedralGroup(3)
	require.NoError(t, err)

	subset, err := g.RandomSymmetricSubset(sampling.NewSource(sampling.Seed{7}), 3, true)
	require.NoError(t, err)
	require.Len(t, subset, 3)
	for _, m := range subset {
		require.False(t, m.IsIdentity())
	}
}

func TestRandomSymmetricSubsetSizeValidation(t *testing.T) {
	g, err := CyclicGroup(6)
	require.NoError(t, err)

	src := sampling.NewSource(sampling.Seed{})
	_, err = g.RandomSymmetricSubset(src, 0, false)
	require.Error(t, err)
	_, err = g.RandomSymmetricSubset(src, 7, false)
	require.Error(t, err)

	// The full group is always a valid symmetric subset.
	subset, err := g.RandomSymmetricSubset(src, 6, false)
	require.NoError(t, err)
	require.Len(t, subset, 6)
}

func TestGroupName(t *testing.T) {
	g, err := CyclicGroup(4)
	require.NoError(t, err)
	require.Equal(t, "C4", g.Name())

	renamed := g.WithName("shift")
	require.Equal(t, "shift", renamed.Name())
	require.Equal(t, "C4", g.Name())
}
