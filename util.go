package fp

import (
	"math"
	"math/bits"
)

// uniqueFloats removes repeated values, preserving first occurrence order.
// Zero and negative zero compare equal, so only the first survives.
func uniqueFloats(vs []float64) []float64 {
	out := vs[:0]
outer:
	for _, v := range vs {
		for _, o := range out {
			if o == v {
				continue outer
			}
		}
		out = append(out, v)
	}
	return out
}

// cartesianProduct returns every combination that takes one element from
// each input set, with the last set varying fastest. Any empty set makes the
// product empty.
func cartesianProduct(sets [][]float64) [][]float64 {
	if len(sets) == 0 {
		return nil
	}
	n := 1
	for _, s := range sets {
		n *= len(s)
	}
	if n == 0 {
		return nil
	}

	out := make([][]float64, 0, n)
	idx := make([]int, len(sets))
	for {
		row := make([]float64, len(sets))
		for i, s := range sets {
			row[i] = s[idx[i]]
		}
		out = append(out, row)

		i := len(sets) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(sets[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}

// maxPermutationItems bounds permutations. Four terms give 24 orderings;
// nothing in the library sums more.
const maxPermutationItems = 4

// permutations returns every ordering of items, in lexicographic order of
// the input positions.
func permutations(items []Interval) [][]Interval {
	if len(items) > maxPermutationItems {
		panic("fp: too many items to permute")
	}
	if len(items) == 0 {
		return nil
	}
	if len(items) == 1 {
		return [][]Interval{{items[0]}}
	}

	var out [][]Interval
	for i := range items {
		rest := make([]Interval, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]Interval{items[i]}, p...))
		}
	}
	return out
}

// linearBits returns n bit patterns evenly spread from a to b inclusive,
// in that order. The interpolation is done in 128 bits so that full 64-bit
// patterns do not overflow.
func linearBits(a, b uint64, n int) []uint64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []uint64{a}
	}

	out := make([]uint64, n)
	steps := uint64(n - 1)
	for i := 0; i < n; i++ {
		if a <= b {
			hi, lo := bits.Mul64(b-a, uint64(i))
			q, _ := bits.Div64(hi, lo, steps)
			out[i] = a + q
		} else {
			hi, lo := bits.Mul64(a-b, uint64(i))
			q, _ := bits.Div64(hi, lo, steps)
			out[i] = a - q
		}
	}
	return out
}

// lerp interpolates between a and b by t, exactly returning a at 0 and b at
// 1 and never overshooting b.
func lerp(a, b, t float64) float64 {
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	if (a <= 0 && b >= 0) || (a >= 0 && b <= 0) {
		return t*b + (1-t)*a
	}
	if t == 1 {
		return b
	}
	x := a + t*(b-a)
	if (t > 1) == (b > a) {
		return math.Max(b, x)
	}
	return math.Min(b, x)
}
