package fp

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestPermutations(t *testing.T) {
	tr := F32Traits
	for _, n := range []int{1, 2, 3, 4} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			items := make([]Interval, n)
			for i := range items {
				items[i] = tr.Point(float64(i))
			}

			perms := permutations(items)
			fact := 1
			for i := 2; i <= n; i++ {
				fact *= i
			}
			tt.MustEqual(fact, len(perms))

			seen := map[string]bool{}
			for _, p := range perms {
				tt.MustEqual(n, len(p))
				key := Vector(p).String()
				tt.MustAssert(!seen[key], "duplicate permutation %s", key)
				seen[key] = true
			}
		})
	}
}

func TestPermutationsLimit(t *testing.T) {
	items := F32Traits.PointVector([]float64{1, 2, 3, 4, 5})
	mustPanic(t, func() { permutations(items) })
}

func TestCartesianProduct(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual([][]float64{
		{1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
	}, cartesianProduct([][]float64{{1, 2}, {3, 4, 5}}))

	tt.MustEqual([][]float64{{1}}, cartesianProduct([][]float64{{1}}))
	tt.MustAssert(cartesianProduct([][]float64{{1, 2}, {}}) == nil)
	tt.MustAssert(cartesianProduct(nil) == nil)
}

func TestUniqueFloats(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual([]float64{1, 2, 0}, uniqueFloats([]float64{1, 1, 2, 0, math.Copysign(0, -1), 2}))
	out := uniqueFloats([]float64{math.Copysign(0, -1), 0})
	tt.MustEqual(1, len(out))
	tt.MustAssert(math.Signbit(out[0]))
}

func TestLinearBits(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual([]uint64{0, 5, 10}, linearBits(0, 10, 3))
	tt.MustEqual([]uint64{10, 5, 0}, linearBits(10, 0, 3))
	tt.MustEqual([]uint64{0, math.MaxUint64}, linearBits(0, math.MaxUint64, 2))
	tt.MustEqual([]uint64{7}, linearBits(7, 100, 1))
	tt.MustAssert(linearBits(0, 1, 0) == nil)
}

func TestLerp(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(1.0, lerp(1, 2, 0))
	tt.MustEqual(2.0, lerp(1, 2, 1))
	tt.MustEqual(1.5, lerp(1, 2, 0.5))
	tt.MustEqual(0.0, lerp(-1, 1, 0.5))
	tt.MustAssert(math.IsNaN(lerp(math.Inf(1), 2, 0.5)))
}

func TestRunScalarToIntervalOpNonFiniteOperand(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	called := false
	op := ScalarToIntervalOp{Impl: func(x float64) Interval {
		called = true
		return tr.Point(x)
	}}
	tt.MustAssert(tr.RunScalarToIntervalOp(tr.Unbounded(), op).Equal(tr.Unbounded()))
	tt.MustAssert(tr.RunScalarToIntervalOp(tr.Point(1e39), op).Equal(tr.Unbounded()))
	tt.MustAssert(!called)
}

func TestRunScalarToIntervalOpDomain(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	op := ScalarToIntervalOp{
		Impl:   tr.Point,
		Domain: []Interval{tr.Range(0, 1), tr.Range(2, 3)},
	}
	tt.MustAssert(tr.RunScalarToIntervalOp(tr.Point(0.5), op).Equal(tr.Point(0.5)))
	tt.MustAssert(tr.RunScalarToIntervalOp(tr.Point(2.5), op).Equal(tr.Point(2.5)))
	tt.MustAssert(tr.RunScalarToIntervalOp(tr.Point(1.5), op).Equal(tr.Unbounded()))

	// One endpoint outside the domain is enough.
	tt.MustAssert(tr.RunScalarToIntervalOp(tr.Range(0.5, 1.5), op).Equal(tr.Unbounded()))
}

func TestRunScalarToIntervalOpExtrema(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	op := ScalarToIntervalOp{
		Impl: func(x float64) Interval { return tr.Point(x * x) },
		Extrema: func(x Interval) Interval {
			if x.Contains(0) {
				return Span(x, tr.Zero())
			}
			return x
		},
	}
	tt.MustAssert(tr.RunScalarToIntervalOp(tr.Range(1, 2), op).Equal(tr.Range(1, 4)))
}

func TestRunScalarToIntervalOpRounding(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits

	// Every correctly rounded candidate of a non-representable operand is
	// evaluated.
	var seen []float64
	op := ScalarToIntervalOp{Impl: func(x float64) Interval {
		seen = append(seen, x)
		return tr.Point(x)
	}}
	r := tr.RunScalarToIntervalOp(tr.Point(0.1), op)
	tt.MustEqual(tr.CorrectlyRounded(0.1), seen)
	tt.MustAssert(r.Equal(tr.Range(seen[0], seen[1])))

	// A subnormal operand may be flushed.
	seen = nil
	r = tr.RunScalarToIntervalOp(tr.Point(0x1p-149), op)
	tt.MustEqual([]float64{0x1p-149, 0}, seen)
	tt.MustAssert(r.Equal(tr.Range(0, 0x1p-149)))
}

func TestRunScalarToIntervalOpAbsorbsOverflow(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	max := tr.Constants().Max
	tt.MustAssert(tr.AdditionInterval(tr.Point(max), tr.Point(max)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.MultiplicationInterval(tr.Point(max), tr.Range(1, 2)).Equal(tr.Unbounded()))
}

func TestRunScalarPairToIntervalOpEndpoints(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	r := tr.SubtractionInterval(tr.Range(1, 2), tr.Range(10, 20))
	tt.MustAssert(r.Equal(tr.Range(-19, -8)), "%s", r)
}

func TestRunScalarTripleToIntervalOp(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	r := tr.FmaInterval(tr.Range(1, 2), tr.Point(3), tr.Range(0, 1))
	tt.MustAssert(r.Equal(tr.Range(3, 7)), "%s", r)
}

func TestRunVectorToVectorOpAbsorbs(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	op := VectorToVectorOp{Impl: func(x []float64) Vector {
		out := make(Vector, len(x))
		for i := range x {
			out[i] = tr.Point(x[i] * 1e30)
		}
		return out
	}}
	r := tr.RunVectorToVectorOp(tr.PointVector([]float64{1, 1e10}), op)
	tt.MustAssert(r.Equal(tr.UnboundedVector(2)), "%s", r)

	r = tr.RunVectorToVectorOp(tr.PointVector([]float64{1, 2}), op)
	tt.MustAssert(r.IsFinite())
}

func TestScalarToVectorAbsorbs(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	max := tr.Constants().Max
	double := func(x Interval) Interval { return tr.AdditionInterval(x, x) }

	r := tr.ScalarToVector(tr.PointVector([]float64{1, max, 2}), double)
	tt.MustAssert(r.Equal(tr.UnboundedVector(3)))

	r = tr.ScalarToVector(tr.PointVector([]float64{1, 2}), double)
	tt.MustAssert(r.Equal(tr.PointVector([]float64{2, 4})))
}

func TestScalarToMatrixAbsorbs(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	max := tr.Constants().Max
	double := func(x Interval) Interval { return tr.AdditionInterval(x, x) }

	r := tr.ScalarToMatrix(tr.PointMatrix([][]float64{{1, 2}, {max, 4}}), double)
	tt.MustAssert(r.Equal(tr.UnboundedMatrix(2, 2)))
}

func TestScalarPairToVectorLengthMismatch(t *testing.T) {
	tr := F32Traits
	mustPanic(t, func() {
		tr.ScalarPairToVector(tr.PointVector([]float64{1, 2}), tr.PointVector([]float64{1, 2, 3}), tr.AdditionInterval)
	})
}

func TestRunOpCrossKind(t *testing.T) {
	tt := assert.WrapTB(t)
	r := F16Traits.AbsInterval(F32Traits.Point(-1))
	tt.MustEqual(F16, r.Kind())
	tt.MustAssert(r.Equal(F16Traits.Point(1)))

	r = F16Traits.AbsInterval(F32Traits.Point(-100000))
	tt.MustAssert(r.Equal(F16Traits.Unbounded()))
}
