package abstract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrivialGroup(t *testing.T) {
	g, err := TrivialGroup(2)
	require.NoError(t, err)
	require.Equal(t, 1, g.Order())
	require.Equal(t, 1, g.LiftDim())
	require.Equal(t, uint64(1), g.Lift(g.Identity()).At(0, 0))

	_, err = TrivialGroup(6)
	require.Error(t, err)
}

func TestCyclicGroupOrders(t *testing.T) {
	for _, order := range []int{1, 2, 3, 5, 8} {
		t.Run(fmt.Sprintf("order=%d", order), func(t *testing.T) {
			g, err := CyclicGroup(order)
			require.NoError(t, err)
			require.Equal(t, order, g.Order())
		})
	}

	_, err := CyclicGroup(0)
	require.Error(t, err)
}

func TestDihedralGroupOrders(t *testing.T) {
	for _, tc := range []struct{ degree, order int }{
		{1, 2},
		{2, 4},
		{3, 6},
		{4, 8},
		{6, 12},
	} {
		t.Run(fmt.Sprintf("degree=%d", tc.degree), func(t *testing.T) {
			g, err := DihedralGroup(tc.degree)
			require.NoError(t, err)
			require.Equal(t, tc.order, g.Order())
		})
	}

	_, err := DihedralGroup(0)
	require.Error(t, err)
}

func TestQuaternionGroup(t *testing.T) {
	g, err := QuaternionGroup()
	require.NoError(t, err)
	require.Equal(t, 8, g.Order())
	require.Equal(t, uint64(3), g.Field().Order)
	require.Equal(t, 4, g.LiftDim())

	// The enumeration preserves the table's row order 1, i, j, k, -1, ...
	members := g.enumerate()
	require.Len(t, members, 8)
	for i, m := range members {
		require.Equal(t, GroupMember(quaternionTable[i]), m)
	}

	// Squaring the lift of i gives the lift of -1.
	i, minusOne := members[1], members[4]
	liftI := g.Lift(i)
	require.True(t, liftI.Mul(liftI).Equal(g.Lift(minusOne)))

	// i * j = +/- k and i^4 = 1 at the member level.
	require.Equal(t, 8, len(g.Table()))
	require.True(t, i.Mul(i).Mul(i).Mul(i).IsIdentity())

	requireHomomorphism(t, g)
}

func TestQuaternionLiftOrthogonality(t *testing.T) {
	g, err := QuaternionGroup()
	require.NoError(t, err)

	// The 2x2-block representation over GF(3) is orthogonal, which is what
	// entitles Element.T to map members to inverses.
	requireOrthogonal(t, g)

	members := g.enumerate()
	x := NewElement(g, members[1], members[3])
	require.True(t, x.T().Lift().Equal(x.Lift().Transpose()))
}
