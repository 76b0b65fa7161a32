package fp

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestIntervalContains(t *testing.T) {
	tr := F32Traits
	for idx, tc := range []struct {
		i   Interval
		x   float64
		out bool
	}{
		{tr.Range(1, 2), 1, true},
		{tr.Range(1, 2), 1.5, true},
		{tr.Range(1, 2), 2, true},
		{tr.Range(1, 2), 2.5, false},
		{tr.Range(1, 2), math.NaN(), false},
		{tr.Point(0), math.Copysign(0, -1), true},
		{tr.Unbounded(), math.NaN(), true},
		{tr.Unbounded(), math.Inf(1), true},
		{tr.Unbounded(), math.Inf(-1), true},
	} {
		t.Run(fmt.Sprintf("%d/%s/%g", idx, tc.i, tc.x), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.i.Contains(tc.x))
		})
	}
}

func TestIntervalContainsInterval(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	tt.MustAssert(tr.Range(0, 10).ContainsInterval(tr.Range(1, 2)))
	tt.MustAssert(tr.Range(0, 10).ContainsInterval(tr.Range(0, 10)))
	tt.MustAssert(!tr.Range(0, 10).ContainsInterval(tr.Range(-1, 2)))
	tt.MustAssert(!tr.Range(0, 10).ContainsInterval(tr.Unbounded()))
	tt.MustAssert(tr.Unbounded().ContainsInterval(tr.Unbounded()))
	tt.MustAssert(tr.Unbounded().ContainsInterval(tr.Point(1)))
}

func TestIntervalConstructorPanics(t *testing.T) {
	mustPanic(t, func() { F32Traits.Range(2, 1) })
	mustPanic(t, func() { F32Traits.Range(math.NaN(), 1) })
	mustPanic(t, func() { F32Traits.Point(math.NaN()) })
}

func TestIntervalString(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("f32:[1, 2]", F32Traits.Range(1, 2).String())
	tt.MustEqual("f16:[0.5]", F16Traits.Point(0.5).String())
	tt.MustEqual("abstract:[-Inf, +Inf]", AbstractTraits.Unbounded().String())
	tt.MustEqual("[f32:[1], f32:[2, 3]]", Vector{F32Traits.Point(1), F32Traits.Range(2, 3)}.String())
}

func TestIntervalBounds(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual([]float64{1}, F32Traits.Point(1).Bounds())
	tt.MustEqual([]float64{1, 2}, F32Traits.Range(1, 2).Bounds())
}

func TestIntervalIsFinite(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(F32Traits.Range(-1, 1).IsFinite())
	tt.MustAssert(!F32Traits.Unbounded().IsFinite())
	tt.MustAssert(!F32Traits.Range(0, 1e39).IsFinite())
	tt.MustAssert(AbstractTraits.Range(0, 1e39).IsFinite())
	tt.MustAssert(!F16Traits.Point(70000).IsFinite())
}

func TestIntervalContainsZeroOrSubnormals(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	tt.MustAssert(tr.Zero().ContainsZeroOrSubnormals())
	tt.MustAssert(tr.Range(1e-40, 1).ContainsZeroOrSubnormals())
	tt.MustAssert(tr.Range(-1, 1).ContainsZeroOrSubnormals())
	tt.MustAssert(!tr.Range(1, 2).ContainsZeroOrSubnormals())
	tt.MustAssert(!tr.Range(-1, -0x1p-126).ContainsZeroOrSubnormals())
	tt.MustAssert(!tr.Range(0x1p-126, 1).ContainsZeroOrSubnormals())
}

func TestSpan(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	a, b := tr.Range(1, 2), tr.Range(-3, 1.5)

	tt.MustAssert(Span(a).Equal(a))
	tt.MustAssert(Span(a, a).Equal(a))
	tt.MustAssert(Span(a, b).Equal(tr.Range(-3, 2)))
	tt.MustAssert(Span(a, b).Equal(Span(b, a)))
	tt.MustAssert(Span(a, tr.Unbounded()).Equal(tr.Unbounded()))

	s := Span(a, b)
	tt.MustAssert(s.ContainsInterval(a) && s.ContainsInterval(b))
}

func TestSpanPanics(t *testing.T) {
	mustPanic(t, func() { Span() })
	mustPanic(t, func() { Span(F32Traits.Point(1), F16Traits.Point(1)) })
	mustPanic(t, func() { SpanVectors() })
	mustPanic(t, func() {
		SpanVectors(F32Traits.PointVector([]float64{1, 2}), F32Traits.PointVector([]float64{1, 2, 3}))
	})
}

func TestSpanVectors(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	a := tr.PointVector([]float64{1, 4})
	b := tr.PointVector([]float64{3, 2})
	tt.MustAssert(SpanVectors(a, b).Equal(Vector{tr.Range(1, 3), tr.Range(2, 4)}))

	// The inputs are not modified.
	tt.MustAssert(a.Equal(tr.PointVector([]float64{1, 4})))
}

func TestSpanMatrices(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	a := tr.PointMatrix([][]float64{{1, 2}, {3, 4}})
	b := tr.PointMatrix([][]float64{{0, 5}, {3, 1}})
	exp := Matrix{
		{tr.Range(0, 1), tr.Range(2, 5)},
		{tr.Point(3), tr.Range(1, 4)},
	}
	tt.MustAssert(SpanMatrices(a, b).Equal(exp))
	tt.MustEqual(2, exp.Cols())
	tt.MustEqual(2, exp.Rows())
}

func TestToInterval(t *testing.T) {
	tt := assert.WrapTB(t)
	i := F32Traits.ToInterval(AbstractTraits.Range(1, 2))
	tt.MustEqual(F32, i.Kind())
	tt.MustAssert(i.Equal(F32Traits.Range(1, 2)))

	tt.MustAssert(F32Traits.ToInterval(AbstractTraits.Point(1e300)).Equal(F32Traits.Unbounded()))
	tt.MustAssert(F16Traits.ToInterval(F32Traits.Range(0, 70000)).Equal(F16Traits.Unbounded()))
	tt.MustAssert(F16Traits.ToInterval(F32Traits.Unbounded()).Equal(F16Traits.Unbounded()))
	tt.MustAssert(AbstractTraits.ToInterval(F16Traits.Point(0.5)).Equal(AbstractTraits.Point(0.5)))
}

func TestIntervalEqualKind(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(!F32Traits.Point(1).Equal(F16Traits.Point(1)))
	tt.MustAssert(F32Traits.Point(1).Equal(F32Traits.Point(1)))
}

func TestUnboundedShapes(t *testing.T) {
	tt := assert.WrapTB(t)
	v := F32Traits.UnboundedVector(3)
	tt.MustEqual(3, len(v))
	tt.MustAssert(!v.IsFinite())

	m := F32Traits.UnboundedMatrix(2, 4)
	tt.MustEqual(2, m.Cols())
	tt.MustEqual(4, m.Rows())
	tt.MustAssert(!m.IsFinite())

	z := F32Traits.ZeroVector(2)
	tt.MustAssert(z.Equal(F32Traits.PointVector([]float64{0, 0})))
}
