package abstract

import (
	"fmt"

	"github.com/qldpc/groupalg/gf"
	"github.com/qldpc/groupalg/utils"
)

// bruteForceLimit bounds the number of candidate matrices the brute-force
// enumerator is willing to inspect.
const bruteForceLimit = uint64(1) << 32

// SpecialLinearGeneratorMats returns the two generator matrices of
// SL(dimension, field): a companion-like cyclic-shift matrix and a
// near-identity matrix, adjusted by the field's primitive element when the
// field order exceeds 3.  This construction follows
// https://arxiv.org/abs/2201.09155.
func SpecialLinearGeneratorMats(dimension, field int) (*gf.Matrix, *gf.Matrix, error) {

	if dimension < 2 {
		return nil, nil, fmt.Errorf("invalid special linear group dimension %d", dimension)
	}
	if field == 0 {
		field = DefaultFieldOrder
	}

	f, err := gf.NewField(field)
	if err != nil {
		return nil, nil, err
	}

	A := gf.Identity(f, dimension)

	W := gf.NewMatrix(f, dimension, dimension)
	for i := 0; i < dimension; i++ {
		W.Set(i, (i-1+dimension)%dimension, f.Neg(1))
	}
	W.Set(0, dimension-1, 1)

	if f.Order > 3 {
		gamma := f.PrimitiveElement()
		A.Set(0, 0, gamma)
		A.Set(1, 1, f.Inv(gamma))
		W.Set(0, 0, f.Neg(1))
	} else {
		A.Set(0, 1, 1)
	}

	return A, W, nil
}

// SpecialLinearGroup returns SL(dimension, field), the group of dimension
// x dimension matrices over GF(field) with determinant 1, realized as the
// permutations of the nonzero vectors of the underlying vector space
// induced by the generator matrices.
func SpecialLinearGroup(dimension, field int) (*Group, error) {

	A, W, err := SpecialLinearGeneratorMats(dimension, field)
	if err != nil {
		return nil, err
	}
	f := A.Field()

	space := linearSpace(f, dimension)
	g, err := FromPermutationMats([]*gf.Matrix{A, W}, space, int(f.Order))
	if err != nil {
		return nil, err
	}
	return g.WithName(fmt.Sprintf("SL(%d,%d)", dimension, f.Order)), nil
}

// ProjectiveGeneratorMats returns the four expanding generator matrices of
// PSL(2, field), from https://arxiv.org/abs/1807.03879.
func ProjectiveGeneratorMats(field int) ([]*gf.Matrix, error) {
	f, err := gf.NewField(field)
	if err != nil {
		return nil, err
	}
	minusOne := f.Neg(1)

	A := gf.Identity(f, 2)
	A.Set(0, 1, 1)
	B := gf.Identity(f, 2)
	B.Set(0, 1, minusOne)
	C := gf.Identity(f, 2)
	C.Set(1, 0, 1)
	D := gf.Identity(f, 2)
	D.Set(1, 0, minusOne)

	return []*gf.Matrix{A, B, C, D}, nil
}

// ProjectiveSpecialLinearGroup returns PSL(dimension, field), the quotient
// of SL(dimension, field) by its scalar matrices.  Over GF(2) the quotient
// is trivial and the group equals SL(dimension, 2).  For dimension 2 the
// group is realized by the expanding generators acting on the projective
// space, with vectors normalized so that the first nonzero coordinate
// is 1.  Dimension and field order both greater than 2 are not supported.
func ProjectiveSpecialLinearGroup(dimension, field int) (*Group, error) {

	if field == 0 {
		field = DefaultFieldOrder
	}

	if field == 2 {
		g, err := SpecialLinearGroup(dimension, 2)
		if err != nil {
			return nil, err
		}
		return g.WithName(fmt.Sprintf("PSL(%d,2)", dimension)), nil
	}

	if dimension != 2 {
		return nil, fmt.Errorf("projective special linear groups with both dimension and field greater than 2 are not supported")
	}

	mats, err := ProjectiveGeneratorMats(field)
	if err != nil {
		return nil, err
	}
	f := mats[0].Field()

	space := projectiveSpace(f, dimension)
	g, err := fromMatrixAction(mats, space, projectiveCanon(f), int(f.Order))
	if err != nil {
		return nil, err
	}
	return g.WithName(fmt.Sprintf("PSL(%d,%d)", dimension, f.Order)), nil
}

// linearSpace enumerates the nonzero vectors of GF(q)^dimension, in
// lexicographic order with the first coordinate most significant.
func linearSpace(f *gf.Field, dimension int) [][]uint64 {
	total := utils.Pow(f.Order, dimension)
	space := make([][]uint64, 0, total-1)
	for idx := uint64(1); idx < total; idx++ {
		space = append(space, decodeVector(f, idx, dimension))
	}
	return space
}

// projectiveSpace enumerates one representative per projective point of
// GF(q)^dimension: the vectors whose first nonzero coordinate is 1.
func projectiveSpace(f *gf.Field, dimension int) [][]uint64 {
	total := utils.Pow(f.Order, dimension)
	var space [][]uint64
	for idx := uint64(1); idx < total; idx++ {
		vec := decodeVector(f, idx, dimension)
		if vec[firstNonzero(vec)] == 1 {
			space = append(space, vec)
		}
	}
	return space
}

// projectiveCanon maps a nonzero vector to its projective representative
// by scaling the first nonzero coordinate to 1.
func projectiveCanon(f *gf.Field) func([]uint64) []uint64 {
	return func(vec []uint64) []uint64 {
		c := vec[firstNonzero(vec)]
		if c == 1 {
			return vec
		}
		inv := f.Inv(c)
		out := make([]uint64, len(vec))
		for i, v := range vec {
			out[i] = f.Mul(inv, v)
		}
		return out
	}
}

func firstNonzero(vec []uint64) int {
	for i, v := range vec {
		if v != 0 {
			return i
		}
	}
	return 0
}

// decodeVector expands an index into its base-q digit vector, first
// coordinate most significant.
func decodeVector(f *gf.Field, idx uint64, dimension int) []uint64 {
	vec := make([]uint64, dimension)
	for j := dimension - 1; j >= 0; j-- {
		vec[j] = idx % f.Order
		idx /= f.Order
	}
	return vec
}

// SpecialLinearMatrices enumerates every member of SL(dimension, field)
// and one representative per +/- pair for PSL(dimension, field), by brute
// force: all q^(dimension^2) candidate matrices are generated and filtered
// by determinant 1, and PSL representatives are chosen by the canonical
// sign convention on the first nonzero entry.
//
// WARNING: the cost is exponential in dimension^2.  This is a verification
// utility for small cases only and is never invoked by the construction
// paths; an error is returned when the candidate count is intractable.
func SpecialLinearMatrices(dimension, field int) (sl, psl []*gf.Matrix, err error) {

	if dimension < 1 {
		return nil, nil, fmt.Errorf("invalid special linear group dimension %d", dimension)
	}
	if field == 0 {
		field = DefaultFieldOrder
	}

	f, err := gf.NewField(field)
	if err != nil {
		return nil, nil, err
	}

	n := dimension * dimension

	total := uint64(1)
	for i := 0; i < n; i++ {
		if total > bruteForceLimit/f.Order {
			return nil, nil, fmt.Errorf("brute-force enumeration of %d^%d matrices is not tractable", field, n)
		}
		total *= f.Order
	}

	for idx := uint64(1); idx < total; idx++ {
		digits := decodeVector(f, idx, n)

		mat := gf.NewMatrix(f, dimension, dimension)
		for i := 0; i < dimension; i++ {
			for j := 0; j < dimension; j++ {
				mat.Set(i, j, digits[i*dimension+j])
			}
		}

		if mat.Det() != 1 {
			continue
		}
		sl = append(sl, mat)

		// Quotient by -I: of each +/- pair, keep the matrix whose first
		// nonzero entry has the smaller code.
		if c := digits[firstNonzero(digits)]; c <= f.Neg(c) {
			psl = append(psl, mat)
		}
	}

	return sl, psl, nil
}
