package fp

import (
	"math"
)

// ScalarToIntervalOp describes a builtin of one scalar operand.
type ScalarToIntervalOp struct {
	// Impl returns the acceptance interval for a representable operand.
	Impl func(x float64) Interval

	// Domain, if not empty, holds the operand values the result is defined
	// for. A rounding candidate outside every domain interval makes the
	// result unbounded.
	Domain []Interval

	// Extrema, if set, rewrites the operand interval before its endpoints
	// are evaluated, to account for discontinuities between them.
	Extrema func(x Interval) Interval
}

// PairDomain restricts each operand of a two operand builtin. An empty list
// leaves that operand unrestricted.
type PairDomain struct {
	X, Y []Interval
}

// ScalarPairToIntervalOp describes a builtin of two scalar operands.
type ScalarPairToIntervalOp struct {
	Impl    func(x, y float64) Interval
	Domain  *PairDomain
	Extrema func(x, y Interval) (Interval, Interval)
}

// ScalarTripleToIntervalOp describes a builtin of three scalar operands.
type ScalarTripleToIntervalOp struct {
	Impl func(x, y, z float64) Interval
}

// VectorToIntervalOp describes a builtin reducing a vector to a scalar.
type VectorToIntervalOp struct {
	Impl func(x []float64) Interval
}

// VectorPairToIntervalOp describes a builtin reducing two vectors to a scalar.
type VectorPairToIntervalOp struct {
	Impl func(x, y []float64) Interval
}

// VectorToVectorOp describes a builtin mapping a vector to a vector.
type VectorToVectorOp struct {
	Impl func(x []float64) Vector
}

// VectorPairToVectorOp describes a builtin mapping two vectors to a vector.
type VectorPairToVectorOp struct {
	Impl func(x, y []float64) Vector
}

func inDomain(domain []Interval, xs []float64) bool {
	if len(domain) == 0 {
		return true
	}
outer:
	for _, x := range xs {
		for _, d := range domain {
			if d.Contains(x) {
				continue outer
			}
		}
		return false
	}
	return true
}

// candidates returns the values an implementation may use in place of x:
// its correctly rounded values, plus zero if one of those may be flushed.
func (t *Traits) candidates(x float64) []float64 {
	if math.IsNaN(x) {
		panic("fp: NaN operand")
	}
	return t.AddFlushedIfNeeded(t.CorrectlyRounded(x))
}

func (t *Traits) candidateSets(xs []float64) [][]float64 {
	sets := make([][]float64, len(xs))
	for i, x := range xs {
		sets[i] = t.candidates(x)
	}
	return sets
}

func (t *Traits) finiteOrUnbounded(i Interval) Interval {
	if !i.IsFinite() {
		return t.unbounded
	}
	return i
}

func (t *Traits) roundAndFlushScalarToInterval(x float64, op ScalarToIntervalOp) Interval {
	xs := t.candidates(x)
	if !inDomain(op.Domain, xs) {
		return t.unbounded
	}
	results := make([]Interval, len(xs))
	for i, c := range xs {
		results[i] = op.Impl(c)
	}
	return Span(results...)
}

func (t *Traits) roundAndFlushScalarPairToInterval(x, y float64, op ScalarPairToIntervalOp) Interval {
	xs, ys := t.candidates(x), t.candidates(y)
	if op.Domain != nil && (!inDomain(op.Domain.X, xs) || !inDomain(op.Domain.Y, ys)) {
		return t.unbounded
	}
	results := make([]Interval, 0, len(xs)*len(ys))
	for _, cx := range xs {
		for _, cy := range ys {
			results = append(results, op.Impl(cx, cy))
		}
	}
	return Span(results...)
}

func (t *Traits) roundAndFlushScalarTripleToInterval(x, y, z float64, op ScalarTripleToIntervalOp) Interval {
	combos := cartesianProduct(t.candidateSets([]float64{x, y, z}))
	results := make([]Interval, len(combos))
	for i, c := range combos {
		results[i] = op.Impl(c[0], c[1], c[2])
	}
	return Span(results...)
}

func (t *Traits) roundAndFlushVectorToInterval(xs []float64, op VectorToIntervalOp) Interval {
	combos := cartesianProduct(t.candidateSets(xs))
	results := make([]Interval, len(combos))
	for i, c := range combos {
		results[i] = op.Impl(c)
	}
	return Span(results...)
}

func (t *Traits) roundAndFlushVectorPairToInterval(xs, ys []float64, op VectorPairToIntervalOp) Interval {
	combos := cartesianProduct(t.candidateSets(concatFloats(xs, ys)))
	results := make([]Interval, len(combos))
	for i, c := range combos {
		results[i] = op.Impl(c[:len(xs)], c[len(xs):])
	}
	return Span(results...)
}

func (t *Traits) roundAndFlushVectorToVector(xs []float64, op VectorToVectorOp) Vector {
	combos := cartesianProduct(t.candidateSets(xs))
	results := make([]Vector, len(combos))
	for i, c := range combos {
		results[i] = op.Impl(c)
	}
	return SpanVectors(results...)
}

func (t *Traits) roundAndFlushVectorPairToVector(xs, ys []float64, op VectorPairToVectorOp) Vector {
	combos := cartesianProduct(t.candidateSets(concatFloats(xs, ys)))
	results := make([]Vector, len(combos))
	for i, c := range combos {
		results[i] = op.Impl(c[:len(xs)], c[len(xs):])
	}
	return SpanVectors(results...)
}

// RunScalarToIntervalOp evaluates op over every value of x.
//
// A non-finite operand gives the unbounded interval. Otherwise Extrema is
// applied, each endpoint is rounded and evaluated, and the results are
// spanned. A result that is not finite widens to unbounded.
func (t *Traits) RunScalarToIntervalOp(x Interval, op ScalarToIntervalOp) Interval {
	x = t.ToInterval(x)
	if !x.IsFinite() {
		return t.unbounded
	}
	if op.Extrema != nil {
		x = op.Extrema(x)
	}

	bounds := x.Bounds()
	results := make([]Interval, len(bounds))
	for i, b := range bounds {
		results[i] = t.roundAndFlushScalarToInterval(b, op)
	}
	return t.finiteOrUnbounded(Span(results...))
}

// RunScalarPairToIntervalOp is RunScalarToIntervalOp for two operands. Every
// combination of the operands' endpoints is evaluated.
func (t *Traits) RunScalarPairToIntervalOp(x, y Interval, op ScalarPairToIntervalOp) Interval {
	x, y = t.ToInterval(x), t.ToInterval(y)
	if !x.IsFinite() || !y.IsFinite() {
		return t.unbounded
	}
	if op.Extrema != nil {
		x, y = op.Extrema(x, y)
	}

	var results []Interval
	for _, bx := range x.Bounds() {
		for _, by := range y.Bounds() {
			results = append(results, t.roundAndFlushScalarPairToInterval(bx, by, op))
		}
	}
	return t.finiteOrUnbounded(Span(results...))
}

// RunScalarTripleToIntervalOp is RunScalarToIntervalOp for three operands.
func (t *Traits) RunScalarTripleToIntervalOp(x, y, z Interval, op ScalarTripleToIntervalOp) Interval {
	x, y, z = t.ToInterval(x), t.ToInterval(y), t.ToInterval(z)
	if !x.IsFinite() || !y.IsFinite() || !z.IsFinite() {
		return t.unbounded
	}

	combos := cartesianProduct([][]float64{x.Bounds(), y.Bounds(), z.Bounds()})
	results := make([]Interval, len(combos))
	for i, c := range combos {
		results[i] = t.roundAndFlushScalarTripleToInterval(c[0], c[1], c[2], op)
	}
	return t.finiteOrUnbounded(Span(results...))
}

// RunVectorToIntervalOp evaluates op at every combination of the
// components' endpoints. Components are expanded together rather than one at
// a time, since the reduction couples them.
func (t *Traits) RunVectorToIntervalOp(x Vector, op VectorToIntervalOp) Interval {
	x = t.ToVector(x)
	if !x.IsFinite() {
		return t.unbounded
	}

	combos := cartesianProduct(vectorBounds(x))
	results := make([]Interval, len(combos))
	for i, c := range combos {
		results[i] = t.roundAndFlushVectorToInterval(c, op)
	}
	return t.finiteOrUnbounded(Span(results...))
}

// RunVectorPairToIntervalOp is RunVectorToIntervalOp for two vectors.
func (t *Traits) RunVectorPairToIntervalOp(x, y Vector, op VectorPairToIntervalOp) Interval {
	x, y = t.ToVector(x), t.ToVector(y)
	if !x.IsFinite() || !y.IsFinite() {
		return t.unbounded
	}

	combos := cartesianProduct(append(vectorBounds(x), vectorBounds(y)...))
	results := make([]Interval, len(combos))
	for i, c := range combos {
		results[i] = t.roundAndFlushVectorPairToInterval(c[:len(x)], c[len(x):], op)
	}
	return t.finiteOrUnbounded(Span(results...))
}

// RunVectorToVectorOp is RunVectorToIntervalOp for a vector result. If any
// component of the result is not finite, every component is unbounded.
func (t *Traits) RunVectorToVectorOp(x Vector, op VectorToVectorOp) Vector {
	x = t.ToVector(x)
	if !x.IsFinite() {
		return t.UnboundedVector(len(x))
	}

	combos := cartesianProduct(vectorBounds(x))
	results := make([]Vector, len(combos))
	for i, c := range combos {
		results[i] = t.roundAndFlushVectorToVector(c, op)
	}
	out := SpanVectors(results...)
	if !out.IsFinite() {
		return t.UnboundedVector(len(out))
	}
	return out
}

// RunVectorPairToVectorOp is RunVectorToVectorOp for two vectors.
func (t *Traits) RunVectorPairToVectorOp(x, y Vector, op VectorPairToVectorOp) Vector {
	x, y = t.ToVector(x), t.ToVector(y)
	if !x.IsFinite() || !y.IsFinite() {
		return t.UnboundedVector(len(x))
	}

	combos := cartesianProduct(append(vectorBounds(x), vectorBounds(y)...))
	results := make([]Vector, len(combos))
	for i, c := range combos {
		results[i] = t.roundAndFlushVectorPairToVector(c[:len(x)], c[len(x):], op)
	}
	out := SpanVectors(results...)
	if !out.IsFinite() {
		return t.UnboundedVector(len(out))
	}
	return out
}

// ScalarToVector applies fn to each component of x. If any component of the
// result is not finite, every component is unbounded.
func (t *Traits) ScalarToVector(x Vector, fn ScalarToInterval) Vector {
	out := make(Vector, len(x))
	for i := range x {
		out[i] = fn(x[i])
		if !out[i].IsFinite() {
			return t.UnboundedVector(len(x))
		}
	}
	return out
}

// ScalarPairToVector applies fn to each pair of components of x and y. It
// panics if the vectors differ in length.
func (t *Traits) ScalarPairToVector(x, y Vector, fn ScalarPairToInterval) Vector {
	if len(x) != len(y) {
		panic("fp: vectors of different lengths")
	}
	out := make(Vector, len(x))
	for i := range x {
		out[i] = fn(x[i], y[i])
		if !out[i].IsFinite() {
			return t.UnboundedVector(len(x))
		}
	}
	return out
}

// ScalarToMatrix applies fn to each element of m. If any element of the
// result is not finite, every element is unbounded.
func (t *Traits) ScalarToMatrix(m Matrix, fn ScalarToInterval) Matrix {
	out := make(Matrix, len(m))
	for c := range m {
		out[c] = make([]Interval, len(m[c]))
		for r := range m[c] {
			out[c][r] = fn(m[c][r])
			if !out[c][r].IsFinite() {
				return t.UnboundedMatrix(m.Cols(), m.Rows())
			}
		}
	}
	return out
}

// ScalarPairToMatrix applies fn to each pair of elements of x and y. It
// panics if the matrices differ in shape.
func (t *Traits) ScalarPairToMatrix(x, y Matrix, fn ScalarPairToInterval) Matrix {
	if x.Cols() != y.Cols() || x.Rows() != y.Rows() {
		panic("fp: matrices of different shapes")
	}
	out := make(Matrix, len(x))
	for c := range x {
		out[c] = make([]Interval, len(x[c]))
		for r := range x[c] {
			out[c][r] = fn(x[c][r], y[c][r])
			if !out[c][r].IsFinite() {
				return t.UnboundedMatrix(x.Cols(), x.Rows())
			}
		}
	}
	return out
}

func vectorBounds(v Vector) [][]float64 {
	out := make([][]float64, len(v))
	for i, c := range v {
		out[i] = c.Bounds()
	}
	return out
}

func concatFloats(xs, ys []float64) []float64 {
	out := make([]float64, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}
