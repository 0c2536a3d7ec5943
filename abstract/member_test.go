package abstract

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGroupMember(t *testing.T) {
	m := NewGroupMember(1, 2, 0)
	require.Equal(t, 3, m.Size())
	require.Equal(t, 1, m.Apply(0))
	require.Equal(t, 0, m.Apply(2))
	require.Equal(t, 5, m.Apply(5)) // beyond the array form: fixed point

	require.Panics(t, func() { NewGroupMember(0, 0, 1) })
	require.Panics(t, func() { NewGroupMember(0, 3) })
	require.Panics(t, func() { NewGroupMember(-1, 0) })
}

func TestMemberMulIsRightActing(t *testing.T) {
	p := NewGroupMember(1, 2, 0)
	q := NewGroupMember(0, 2, 1)

	// (p*q)(i) = q(p(i)).
	pq := p.Mul(q)
	for i := 0; i < 3; i++ {
		require.Equal(t, q.Apply(p.Apply(i)), pq.Apply(i))
	}

	// Mismatched sizes extend with fixed points.
	r := NewGroupMember(1, 0)
	pr := p.Mul(r)
	require.Equal(t, 3, pr.Size())
	require.Equal(t, 0, pr.Apply(0))
	require.Equal(t, 2, pr.Apply(1))
	require.Equal(t, 1, pr.Apply(2))
}

func TestMemberInverse(t *testing.T) {
	p := NewGroupMember(2, 0, 3, 1)
	require.True(t, p.Mul(p.Inverse()).IsIdentity())
	require.True(t, p.Inverse().Mul(p).IsIdentity())
}

func TestMemberTensor(t *testing.T) {
	p := NewGroupMember(1, 0)
	q := NewGroupMember(1, 2, 0)

	pq := p.Tensor(q)
	require.Equal(t, 5, pq.Size())
	require.Equal(t, GroupMember{1, 0, 3, 4, 2}, pq)

	// The tensor of identities is the identity.
	require.True(t, Identity(2).Tensor(Identity(3)).IsIdentity())
}

func TestMemberEqualIgnoresTrailingFixedPoints(t *testing.T) {
	require.True(t, NewGroupMember(1, 0, 2).Equal(NewGroupMember(1, 0)))
	require.True(t, Identity(4).Equal(Identity(0)))
	require.False(t, NewGroupMember(1, 0).Equal(NewGroupMember(0, 2, 1)))
}

func TestMemberCompare(t *testing.T) {
	members := []GroupMember{
		NewGroupMember(2, 1, 0),
		NewGroupMember(0, 2, 1),
		Identity(3),
		NewGroupMember(1, 0),
	}
	slices.SortFunc(members, GroupMember.Compare)
	require.True(t, members[0].IsIdentity())
	require.Equal(t, GroupMember{0, 2, 1}, members[1])
	require.Equal(t, GroupMember{1, 0}, members[2])
	require.Equal(t, GroupMember{2, 1, 0}, members[3])
}

func TestFromCycles(t *testing.T) {
	m, err := FromCycles(5, [][]int{{0, 1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, GroupMember{1, 2, 0, 4, 3}, m)

	_, err = FromCycles(3, [][]int{{0, 5}})
	require.Error(t, err)

	_, err = FromCycles(4, [][]int{{0, 1}, {1, 2}})
	require.Error(t, err)
}

func TestMemberString(t *testing.T) {
	require.Equal(t, "()", Identity(3).String())
	require.Equal(t, "(0 1 2)", NewGroupMember(1, 2, 0).String())
	require.Equal(t, "(0 1)(2 3)", NewGroupMember(1, 0, 3, 2).String())
}
