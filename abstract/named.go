package abstract

import (
	"fmt"
)

// TrivialGroup returns the group with one member, the identity, with a
// one-dimensional identity lift.
func TrivialGroup(field int) (*Group, error) {
	g, err := FromGenerators(field, Identity(0))
	if err != nil {
		return nil, err
	}
	return g.WithName("trivial"), nil
}

// CyclicGroup returns the cyclic group of the given order.
//
// All members are powers g^p of the single generator g.  Under the default
// permutation lift, g^p is represented by the order x order shift matrix:
// the identity with all columns shifted right by p, so that a standard
// basis row vector <i| moves as <i| L(g^p) = <i+p mod order|.
func CyclicGroup(order int) (*Group, error) {
	if order < 1 {
		return nil, fmt.Errorf("invalid cyclic group order %d", order)
	}
	gen := make(GroupMember, order)
	for i := range gen {
		gen[i] = (i + 1) % order
	}
	g, err := FromGenerators(0, gen)
	if err != nil {
		return nil, err
	}
	return g.WithName(fmt.Sprintf("C%d", order)), nil
}

// DihedralGroup returns the dihedral group of symmetries of a degree-gon,
// of order 2*degree.  Degrees 1 and 2 degenerate to the cyclic group of
// order 2 and the Klein four-group.
func DihedralGroup(degree int) (*Group, error) {
	if degree < 1 {
		return nil, fmt.Errorf("invalid dihedral group degree %d", degree)
	}

	var gens []GroupMember
	switch degree {
	case 1:
		gens = []GroupMember{{1, 0}}
	case 2:
		gens = []GroupMember{{1, 0, 2, 3}, {0, 1, 3, 2}}
	default:
		rotation := make(GroupMember, degree)
		reflection := make(GroupMember, degree)
		for i := 0; i < degree; i++ {
			rotation[i] = (i + 1) % degree
			reflection[i] = degree - 1 - i
		}
		gens = []GroupMember{rotation, reflection}
	}

	g, err := FromGenerators(0, gens...)
	if err != nil {
		return nil, err
	}
	return g.WithName(fmt.Sprintf("D%d", degree)), nil
}

// quaternionTable is the multiplication table of the quaternion group over
// the member order 1, i, j, k, -1, -i, -j, -k.
var quaternionTable = [][]int{
	{0, 1, 2, 3, 4, 5, 6, 7},
	{1, 4, 3, 6, 5, 0, 7, 2},
	{2, 7, 4, 1, 6, 3, 0, 5},
	{3, 2, 5, 4, 7, 6, 1, 0},
	{4, 5, 6, 7, 0, 1, 2, 3},
	{5, 0, 7, 2, 1, 4, 3, 6},
	{6, 3, 0, 5, 2, 7, 4, 1},
	{7, 6, 1, 0, 3, 2, 5, 4},
}

// QuaternionGroup returns the quaternion group {1, i, j, k, -1, -i, -j, -k}
// with its 4-dimensional orthogonal representation over GF(3): sign times
// one of the 2x2-block matrices of the standard real representation,
// transposed for the right-acting convention.
func QuaternionGroup() (*Group, error) {
	g, err := FromTable(quaternionTable, 3, quaternionLift)
	if err != nil {
		return nil, err
	}
	return g.WithName("Q8"), nil
}

func quaternionLift(member int) [][]int {
	if member < 0 || member >= 8 {
		panic(fmt.Errorf("invalid quaternion member index %d", member))
	}

	sign := 1
	if member >= 4 {
		sign = -1
	}

	zero := [][]int{{0, 0}, {0, 0}}
	unit := [][]int{{1, 0}, {0, 1}}
	imag := [][]int{{0, -1}, {1, 0}}

	var blocks [2][2][][]int
	switch member % 4 {
	case 0: // +/- 1
		blocks = [2][2][][]int{{unit, zero}, {zero, unit}}
	case 1: // +/- i
		blocks = [2][2][][]int{{imag, zero}, {zero, negInts(imag)}}
	case 2: // +/- j
		blocks = [2][2][][]int{{zero, negInts(unit)}, {unit, zero}}
	case 3: // +/- k
		blocks = [2][2][][]int{{zero, negInts(imag)}, {negInts(imag), zero}}
	}

	// Assemble the 4x4 matrix and transpose it, scaling by the sign.
	out := make([][]int, 4)
	for i := range out {
		out[i] = make([]int, 4)
	}
	for bi := 0; bi < 2; bi++ {
		for bj := 0; bj < 2; bj++ {
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					out[2*bj+j][2*bi+i] = sign * blocks[bi][bj][i][j]
				}
			}
		}
	}
	return out
}

func negInts(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = make([]int, len(row))
		for j, v := range row {
			out[i][j] = -v
		}
	}
	return out
}
