package fp

import (
	"math"
	"strconv"
	"strings"
)

// Interval is a closed range of acceptable values for one Kind.
//
// The unbounded interval [-Inf, +Inf] stands for "no constraint". A point
// interval has equal endpoints. Intervals are created through a *Traits so
// that the kind is always set; the zero value is not a usable Interval.
type Interval struct {
	kind       Kind
	begin, end float64
}

func newInterval(kind Kind, begin, end float64) Interval {
	if math.IsNaN(begin) || math.IsNaN(end) {
		panic("fp: interval endpoint is NaN")
	}
	if begin > end {
		panic("fp: interval begin is greater than end")
	}
	return Interval{kind: kind, begin: begin, end: end}
}

func (i Interval) Kind() Kind     { return i.kind }
func (i Interval) Begin() float64 { return i.begin }
func (i Interval) End() float64   { return i.end }
func (i Interval) IsPoint() bool  { return i.begin == i.end }

func (i Interval) isUnbounded() bool {
	return math.IsInf(i.begin, -1) && math.IsInf(i.end, 1)
}

// Bounds returns the distinct endpoints: one value for a point, two otherwise.
func (i Interval) Bounds() []float64 {
	if i.IsPoint() {
		return []float64{i.begin}
	}
	return []float64{i.begin, i.end}
}

// IsFinite reports whether both endpoints are inside the finite range of the
// interval's kind.
func (i Interval) IsFinite() bool {
	t := For(i.kind)
	return t.IsFinite(i.begin) && t.IsFinite(i.end)
}

// Contains reports whether x lies inside the interval. NaN is only contained
// by the unbounded interval.
func (i Interval) Contains(x float64) bool {
	if math.IsNaN(x) {
		return i.isUnbounded()
	}
	return i.begin <= x && x <= i.end
}

// ContainsInterval reports whether every value of o lies inside i.
func (i Interval) ContainsInterval(o Interval) bool {
	if i.isUnbounded() {
		return true
	}
	return i.begin <= o.begin && o.end <= i.end
}

// ContainsZeroOrSubnormals reports whether the interval reaches zero or any
// subnormal value of its kind.
func (i Interval) ContainsZeroOrSubnormals() bool {
	c := &For(i.kind).c
	return i.begin <= c.SubnormalMax && i.end >= -c.SubnormalMax
}

// Equal reports whether i and o have the same kind and endpoints.
func (i Interval) Equal(o Interval) bool {
	return i.kind == o.kind && i.begin == o.begin && i.end == o.end
}

// String formats the interval as "kind:[begin, end]", or "kind:[x]" for a
// point.
func (i Interval) String() string {
	var sb strings.Builder
	sb.WriteString(i.kind.String())
	sb.WriteString(":[")
	sb.WriteString(formatFloat(i.begin))
	if !i.IsPoint() {
		sb.WriteString(", ")
		sb.WriteString(formatFloat(i.end))
	}
	sb.WriteString("]")
	return sb.String()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Span returns the tightest interval covering every input. It panics if no
// intervals are passed or if their kinds differ.
func Span(intervals ...Interval) Interval {
	if len(intervals) == 0 {
		panic("fp: span of no intervals")
	}
	out := intervals[0]
	for _, i := range intervals[1:] {
		if i.kind != out.kind {
			panic("fp: span of intervals of different kinds")
		}
		if i.begin < out.begin {
			out.begin = i.begin
		}
		if i.end > out.end {
			out.end = i.end
		}
	}
	return out
}

// Vector is a fixed-length tuple of intervals, one per component.
type Vector []Interval

// IsFinite reports whether every component is finite.
func (v Vector) IsFinite() bool {
	for _, i := range v {
		if !i.IsFinite() {
			return false
		}
	}
	return true
}

// Equal reports whether v and o hold equal components.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for n := range v {
		if !v[n].Equal(o[n]) {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	parts := make([]string, len(v))
	for n, i := range v {
		parts[n] = i.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// SpanVectors spans the vectors component by component. It panics if no
// vectors are passed or their lengths differ.
func SpanVectors(vs ...Vector) Vector {
	if len(vs) == 0 {
		panic("fp: span of no vectors")
	}
	out := make(Vector, len(vs[0]))
	copy(out, vs[0])
	for _, v := range vs[1:] {
		if len(v) != len(out) {
			panic("fp: span of vectors of different lengths")
		}
		for n := range out {
			out[n] = Span(out[n], v[n])
		}
	}
	return out
}

// Matrix is a column-major grid of intervals: m[col][row].
type Matrix [][]Interval

func (m Matrix) Cols() int { return len(m) }

func (m Matrix) Rows() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsFinite reports whether every element is finite.
func (m Matrix) IsFinite() bool {
	for _, c := range m {
		if !Vector(c).IsFinite() {
			return false
		}
	}
	return true
}

// Equal reports whether m and o hold equal elements.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for n := range m {
		if !Vector(m[n]).Equal(Vector(o[n])) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	parts := make([]string, len(m))
	for n, c := range m {
		parts[n] = Vector(c).String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// SpanMatrices spans the matrices element by element. It panics if no
// matrices are passed or their shapes differ.
func SpanMatrices(ms ...Matrix) Matrix {
	if len(ms) == 0 {
		panic("fp: span of no matrices")
	}
	cols, rows := ms[0].Cols(), ms[0].Rows()
	out := make(Matrix, cols)
	for c := range out {
		out[c] = make([]Interval, rows)
		copy(out[c], ms[0][c])
	}
	for _, m := range ms[1:] {
		if m.Cols() != cols || m.Rows() != rows {
			panic("fp: span of matrices of different shapes")
		}
		for c := range out {
			for r := range out[c] {
				out[c][r] = Span(out[c][r], m[c][r])
			}
		}
	}
	return out
}

// Point returns the interval holding only x. The value is not rounded.
func (t *Traits) Point(x float64) Interval {
	return newInterval(t.kind, x, x)
}

// Range returns the interval [begin, end]. It panics if begin > end or either
// is NaN.
func (t *Traits) Range(begin, end float64) Interval {
	return newInterval(t.kind, begin, end)
}

// Unbounded returns the kind's unbounded interval.
func (t *Traits) Unbounded() Interval { return t.unbounded }

// Zero returns the kind's point interval at zero.
func (t *Traits) Zero() Interval { return t.zero }

// ToInterval converts i to the kind. An interval of another kind is kept if
// it is unbounded or finite in this kind, otherwise it widens to unbounded.
func (t *Traits) ToInterval(i Interval) Interval {
	if i.kind == t.kind {
		return i
	}
	if i.isUnbounded() || !t.IsFinite(i.begin) || !t.IsFinite(i.end) {
		return t.unbounded
	}
	return Interval{kind: t.kind, begin: i.begin, end: i.end}
}

// ToVector converts every component with ToInterval.
func (t *Traits) ToVector(v Vector) Vector {
	out := make(Vector, len(v))
	for n, i := range v {
		out[n] = t.ToInterval(i)
	}
	return out
}

// ToMatrix converts every element with ToInterval.
func (t *Traits) ToMatrix(m Matrix) Matrix {
	out := make(Matrix, len(m))
	for c := range m {
		out[c] = t.ToVector(Vector(m[c]))
	}
	return out
}

// PointVector returns a vector of point intervals.
func (t *Traits) PointVector(xs []float64) Vector {
	out := make(Vector, len(xs))
	for n, x := range xs {
		out[n] = t.Point(x)
	}
	return out
}

// PointMatrix returns a column-major matrix of point intervals.
func (t *Traits) PointMatrix(xs [][]float64) Matrix {
	out := make(Matrix, len(xs))
	for c := range xs {
		out[c] = t.PointVector(xs[c])
	}
	return out
}

// UnboundedVector returns a vector of n unbounded components.
func (t *Traits) UnboundedVector(n int) Vector {
	out := make(Vector, n)
	for i := range out {
		out[i] = t.unbounded
	}
	return out
}

// ZeroVector returns a vector of n zero components.
func (t *Traits) ZeroVector(n int) Vector {
	out := make(Vector, n)
	for i := range out {
		out[i] = t.zero
	}
	return out
}

// UnboundedMatrix returns a cols x rows matrix of unbounded elements.
func (t *Traits) UnboundedMatrix(cols, rows int) Matrix {
	out := make(Matrix, cols)
	for c := range out {
		out[c] = t.UnboundedVector(rows)
	}
	return out
}
