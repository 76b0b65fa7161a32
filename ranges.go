package fp

import (
	"math"
)

// SparseScalarRange returns a curated list of values that exercise the edges
// of the kind: the extremes of the normal and subnormal ranges, signed zeros,
// and a handful of ordinary values, in ascending order.
func (t *Traits) SparseScalarRange() []float64 {
	c := &t.c
	return []float64{
		-c.Max, -10, -1, -0.125,
		-c.MinNormal, -c.SubnormalMax, -c.SubnormalMin,
		math.Copysign(0, -1), 0,
		c.SubnormalMin, c.SubnormalMax, c.MinNormal,
		0.125, 1, 10, c.Max,
	}
}

// ScalarRangeCounts sets how many values ScalarRange draws from each part of
// the finite range.
type ScalarRangeCounts struct {
	NegNormal    int
	NegSubnormal int
	PosSubnormal int
	PosNormal    int
}

// DefaultScalarRangeCounts is used by ScalarRange when passed the zero
// ScalarRangeCounts.
var DefaultScalarRangeCounts = ScalarRangeCounts{
	NegNormal:    100,
	NegSubnormal: 10,
	PosSubnormal: 10,
	PosNormal:    100,
}

// ScalarRange returns a dense, ascending sweep of the kind's finite values:
// evenly spaced bit patterns across the negative normals, the negative
// subnormals, both zeros, the positive subnormals and the positive normals.
func (t *Traits) ScalarRange(counts ScalarRangeCounts) []float64 {
	if counts == (ScalarRangeCounts{}) {
		counts = DefaultScalarRangeCounts
	}

	c := &t.c
	neg := func(x float64) uint64 { return t.p.toBits(-x) }
	pos := func(x float64) uint64 { return t.p.toBits(x) }

	var bs []uint64
	bs = append(bs, linearBits(neg(c.Max), neg(c.MinNormal), counts.NegNormal)...)
	bs = append(bs, linearBits(neg(c.SubnormalMax), neg(c.SubnormalMin), counts.NegSubnormal)...)
	bs = append(bs, neg(0), pos(0))
	bs = append(bs, linearBits(pos(c.SubnormalMin), pos(c.SubnormalMax), counts.PosSubnormal)...)
	bs = append(bs, linearBits(pos(c.MinNormal), pos(c.Max), counts.PosNormal)...)

	out := make([]float64, len(bs))
	for i, b := range bs {
		out[i] = t.p.fromBits(b)
	}
	return out
}

// VectorRange returns vectors of dim components that place each
// SparseScalarRange value in every position, with the other positions
// holding 1, 2, 3 or -1, -2, -3.
func (t *Traits) VectorRange(dim int) [][]float64 {
	checkDim(dim)
	var out [][]float64
	for _, f := range t.SparseScalarRange() {
		for _, sign := range []float64{1, -1} {
			for pos := 0; pos < dim; pos++ {
				v := make([]float64, dim)
				fill := 1.0
				for i := range v {
					if i == pos {
						v[i] = f
						continue
					}
					v[i] = sign * fill
					fill++
				}
				out = append(out, v)
			}
		}
	}
	return out
}

// SparseVectorRange returns one vector per SparseScalarRange value. The
// value sits at position idx % dim; the other components hold idx at even
// positions and -idx at odd ones, so the vectors stay distinct.
func (t *Traits) SparseVectorRange(dim int) [][]float64 {
	checkDim(dim)
	sparse := t.SparseScalarRange()
	out := make([][]float64, len(sparse))
	for idx, f := range sparse {
		v := make([]float64, dim)
		for j := range v {
			v[j] = sparseFill(f, idx, j, dim)
		}
		out[idx] = v
	}
	return out
}

// SparseMatrixRange returns one cols x rows matrix per SparseScalarRange
// value, filled like SparseVectorRange over the column-major element index.
func (t *Traits) SparseMatrixRange(cols, rows int) [][][]float64 {
	checkDim(cols)
	checkDim(rows)
	sparse := t.SparseScalarRange()
	out := make([][][]float64, len(sparse))
	for idx, f := range sparse {
		m := make([][]float64, cols)
		for c := range m {
			m[c] = make([]float64, rows)
			for r := range m[c] {
				m[c][r] = sparseFill(f, idx, c*rows+r, cols*rows)
			}
		}
		out[idx] = m
	}
	return out
}

func sparseFill(f float64, idx, pos, n int) float64 {
	switch {
	case idx%n == pos:
		return f
	case pos%2 == 0:
		return float64(idx)
	default:
		return float64(-idx)
	}
}

func checkDim(n int) {
	if n < 2 || n > 4 {
		panic("fp: dimension must be 2, 3 or 4")
	}
}

// LinearRange returns n values evenly spaced from a to b inclusive.
func LinearRange(a, b float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{a}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lerp(a, b, float64(i)/float64(n-1))
	}
	return out
}

// BiasedRange returns n values from a to b inclusive, spaced quadratically
// so that they cluster near a.
func BiasedRange(a, b float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{a}
	}
	out := make([]float64, n)
	for i := range out {
		s := float64(i) / float64(n-1)
		out[i] = lerp(a, b, s*s)
	}
	return out
}
