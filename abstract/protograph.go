package abstract

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/qldpc/groupalg/gf"
)

// Protograph is a matrix with [Element] entries, all sharing one group.
// Its shape is fixed at construction; lifting every entry and assembling
// the blocks yields the parity-check template consumed by code
// constructions.
type Protograph struct {
	entries [][]*Element
}

// NewProtograph wraps a rectangular, non-empty matrix of Elements.
// Panics on empty or ragged input.
func NewProtograph(entries [][]*Element) *Protograph {
	if len(entries) == 0 || len(entries[0]) == 0 {
		panic(fmt.Errorf("empty protograph"))
	}
	out := make([][]*Element, len(entries))
	for i, row := range entries {
		if len(row) != len(entries[0]) {
			panic(fmt.Errorf("ragged protograph: row %d has %d entries, want %d", i, len(row), len(entries[0])))
		}
		out[i] = make([]*Element, len(row))
		copy(out[i], row)
	}
	return &Protograph{entries: out}
}

// Build constructs a protograph from a group and a matrix of members.
// Each member is elevated to the corresponding basis element of the group
// algebra; nil members are read as zeros of the algebra.
func Build(group *Group, matrix [][]GroupMember) *Protograph {
	entries := make([][]*Element, len(matrix))
	for i, row := range matrix {
		entries[i] = make([]*Element, len(row))
		for j, member := range row {
			if member == nil {
				entries[i][j] = NewElement(group)
			} else {
				entries[i][j] = NewElement(group, member)
			}
		}
	}
	return NewProtograph(entries)
}

// TrivialProtograph converts an integer matrix into a protograph over the
// trivial group: entry v becomes v times the unit element, so the lift
// reproduces the matrix over the field.
func TrivialProtograph(matrix [][]int, field int) (*Protograph, error) {
	group, err := TrivialGroup(field)
	if err != nil {
		return nil, err
	}
	unit := NewElement(group, group.Identity())
	entries := make([][]*Element, len(matrix))
	for i, row := range matrix {
		entries[i] = make([]*Element, len(row))
		for j, v := range row {
			if v == 0 {
				entries[i][j] = NewElement(group)
			} else {
				entries[i][j] = unit.MulInt(v)
			}
		}
	}
	return NewProtograph(entries), nil
}

// Rows returns the number of protograph rows.
func (p *Protograph) Rows() int {
	return len(p.entries)
}

// Cols returns the number of protograph columns.
func (p *Protograph) Cols() int {
	return len(p.entries[0])
}

// At returns the entry at row i, column j.
func (p *Protograph) At(i, j int) *Element {
	return p.entries[i][j]
}

// Group returns the group shared by the protograph's entries.
func (p *Protograph) Group() *Group {
	return p.entries[0][0].Group()
}

// Field returns the base field of the protograph.
func (p *Protograph) Field() *gf.Field {
	return p.Group().Field()
}

// ScalarMulInt returns n * p, scaling every entry.
func (p *Protograph) ScalarMulInt(n int) *Protograph {
	out := make([][]*Element, p.Rows())
	for i, row := range p.entries {
		out[i] = make([]*Element, len(row))
		for j, e := range row {
			out[i][j] = e.MulInt(n)
		}
	}
	return NewProtograph(out)
}

// T returns the transpose of the protograph: the grid of cells is
// transposed and every cell is transposed independently, so that the lift
// of the transpose equals the transpose of the lift.
func (p *Protograph) T() *Protograph {
	out := make([][]*Element, p.Cols())
	for j := range out {
		out[j] = make([]*Element, p.Rows())
		for i := range out[j] {
			out[j][i] = p.entries[i][j].T()
		}
	}
	return NewProtograph(out)
}

// Lift returns the block matrix obtained by lifting every entry: for a
// k x l protograph over a group with lift dimension d, the result is
// (k*d) x (l*d), with block (r, c) equal to the lift of cell (r, c).
// Blocks are laid out by cell position, not interleaved.
func (p *Protograph) Lift() *gf.Matrix {
	group := p.Group()
	d := group.LiftDim()
	out := gf.NewMatrix(group.Field(), p.Rows()*d, p.Cols()*d)
	for r, row := range p.entries {
		for c, e := range row {
			block := e.Lift()
			for i := 0; i < d; i++ {
				for j := 0; j < d; j++ {
					out.Set(r*d+i, c*d+j, block.At(i, j))
				}
			}
		}
	}
	return out
}

// Equal compares shapes and entries.
func (p *Protograph) Equal(other *Protograph) bool {
	if other == nil {
		return false
	}
	return cmp.Equal(p.entries, other.entries)
}
