package fp

import (
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestAtan2Interval(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	negZero := math.Copysign(0, -1)

	tt.MustAssert(tr.Atan2Interval(tr.Point(0), tr.Point(1)).Equal(tr.Zero()))
	tt.MustAssert(tr.Atan2Interval(tr.Point(0), tr.Point(-1)).Equal(tr.CorrectlyRoundedInterval(tr.Point(math.Pi))))
	tt.MustAssert(tr.Atan2Interval(tr.Point(negZero), tr.Point(-1)).Equal(tr.CorrectlyRoundedInterval(tr.Point(-math.Pi))))

	// Undefined at the origin, and discontinuous across the negative x axis.
	tt.MustAssert(tr.Atan2Interval(tr.Point(0), tr.Point(0)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.Atan2Interval(tr.Range(-1, 1), tr.Point(-1)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.Atan2Interval(tr.Range(-1, 1), tr.Range(-1, 1)).Equal(tr.Unbounded()))

	r := tr.Atan2Interval(tr.Range(-1, 1), tr.Point(1))
	tt.MustAssert(r.IsFinite(), "%s", r)
	tt.MustAssert(r.Contains(math.Atan2(-1, 1)) && r.Contains(math.Atan2(1, 1)), "%s", r)

	r = tr.Atan2Interval(tr.Point(1), tr.Point(1))
	tt.MustAssert(r.Contains(math.Pi/4), "%s", r)

	// x on or near the y axis is outside the domain whatever y is.
	tt.MustAssert(tr.Atan2Interval(tr.Point(1), tr.Point(0)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.Atan2Interval(tr.Point(-1), tr.Point(0x1p-130)).Equal(tr.Unbounded()))

	// Any finite y is fine, including zero and values near it.
	r = tr.Atan2Interval(tr.Point(0x1p-130), tr.Point(1))
	tt.MustAssert(r.IsFinite() && r.Contains(0), "%s", r)
}

func TestAtanInterval(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, tr := range []*Traits{F16Traits, F32Traits} {
		r := tr.AtanInterval(tr.Point(1))
		tt.MustAssert(r.Contains(tr.Quantize(math.Pi/4)), "%s", r)
		tt.MustAssert(r.IsFinite())
	}

	// f16 allows far fewer ULP than f32, but its ULP is far larger.
	w16 := F16Traits.AtanInterval(F16Traits.Point(1))
	w32 := F32Traits.AtanInterval(F32Traits.Point(1))
	tt.MustAssert(w16.End()-w16.Begin() > w32.End()-w32.Begin())
}

func TestTrigIntervals(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits

	cos := tr.CosInterval(tr.Point(0))
	tt.MustAssert(cos.Equal(tr.Range(1-0x1p-11, 1+0x1p-11)), "%s", cos)

	sin := tr.SinInterval(tr.Point(0))
	tt.MustAssert(sin.Equal(tr.Range(-0x1p-11, 0x1p-11)), "%s", sin)

	tt.MustAssert(tr.CosInterval(tr.Point(4)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.SinInterval(tr.Point(-4)).Equal(tr.Unbounded()))

	// Turning points inside the operand are covered.
	r := tr.CosInterval(tr.Range(-1, 1))
	tt.MustAssert(r.Contains(1), "%s", r)
	r = tr.SinInterval(tr.Range(0, 3))
	tt.MustAssert(r.Contains(1), "%s", r)

	f16 := F16Traits.CosInterval(F16Traits.Point(0))
	tt.MustAssert(f16.Equal(F16Traits.Range(1-0x1p-7, 1+0x1p-7)), "%s", f16)
}

func TestTanInterval(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	r := tr.TanInterval(tr.Point(0))
	tt.MustAssert(r.Contains(0) && r.IsFinite(), "%s", r)

	r = tr.TanInterval(tr.Point(1))
	tt.MustAssert(r.Contains(float64(float32(math.Tan(1)))), "%s", r)

	// Straddling a pole.
	tt.MustAssert(tr.TanInterval(tr.Range(-2, 2)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.TanInterval(tr.Range(1, 2)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.TanInterval(tr.Range(-5, -4)).Equal(tr.Unbounded()))

	r = tr.TanInterval(tr.Range(-1, 1))
	tt.MustAssert(r.IsFinite() && r.Contains(0), "%s", r)
}

func TestExpIntervals(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	u := tr.OneULP(1, Flush)
	tt.MustAssert(tr.ExpInterval(tr.Point(0)).Equal(tr.Range(1-3*u, 1+3*u)))
	tt.MustAssert(tr.Exp2Interval(tr.Point(0)).Equal(tr.Range(1-3*u, 1+3*u)))

	r := tr.Exp2Interval(tr.Point(3))
	tt.MustAssert(r.Contains(8), "%s", r)

	tt.MustAssert(tr.ExpInterval(tr.Point(100)).Equal(tr.Unbounded()))

	mustPanicUnsupported(t, func() { AbstractTraits.ExpInterval(AbstractTraits.Point(0)) })
}

func TestLogIntervals(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	tt.MustAssert(tr.LogInterval(tr.Point(1)).Equal(tr.Range(-0x1p-21, 0x1p-21)))
	tt.MustAssert(tr.Log2Interval(tr.Point(1)).Equal(tr.Range(-0x1p-21, 0x1p-21)))

	r := tr.Log2Interval(tr.Point(8))
	u := tr.OneULP(3, Flush)
	tt.MustAssert(r.Equal(tr.Range(3-3*u, 3+3*u)), "%s", r)

	tt.MustAssert(tr.LogInterval(tr.Point(0)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.LogInterval(tr.Point(-1)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.LogInterval(tr.Point(0x1p-140)).Equal(tr.Unbounded()))
}

func TestSqrtIntervals(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits

	r := tr.InverseSqrtInterval(tr.Point(4))
	u := tr.OneULP(0.5, Flush)
	tt.MustAssert(r.Equal(tr.Range(0.5-2*u, 0.5+2*u)), "%s", r)

	r = tr.SqrtInterval(tr.Point(4))
	tt.MustAssert(r.Contains(2) && r.IsFinite(), "%s", r)

	tt.MustAssert(tr.SqrtInterval(tr.Point(-1)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.InverseSqrtInterval(tr.Point(0)).Equal(tr.Unbounded()))
}

func TestInverseTrigIntervals(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits

	r := tr.AcosInterval(tr.Point(0.5))
	tt.MustAssert(r.Contains(float64(float32(math.Acos(0.5)))), "%s", r)
	r = tr.AsinInterval(tr.Point(0.5))
	tt.MustAssert(r.Contains(float64(float32(math.Asin(0.5)))), "%s", r)

	tt.MustAssert(tr.AcosInterval(tr.Point(2)).Equal(tr.Unbounded()))
	tt.MustAssert(tr.AsinInterval(tr.Point(-2)).Equal(tr.Unbounded()))
}

func TestHyperbolicIntervals(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits

	r := tr.CoshInterval(tr.Point(0))
	tt.MustAssert(r.Contains(1), "%s", r)
	r = tr.SinhInterval(tr.Point(0))
	tt.MustAssert(r.Contains(0), "%s", r)
	r = tr.TanhInterval(tr.Point(0.5))
	tt.MustAssert(r.Contains(float64(float32(math.Tanh(0.5)))), "%s", r)
	r = tr.AsinhInterval(tr.Point(1))
	tt.MustAssert(r.Contains(float64(float32(math.Asinh(1)))), "%s", r)

	for _, fn := range []ScalarToInterval{tr.AcoshPrimaryInterval, tr.AcoshAlternativeInterval} {
		r = fn(tr.Point(2))
		tt.MustAssert(r.Contains(float64(float32(math.Acosh(2)))), "%s", r)
	}

	r = tr.AtanhInterval(tr.Point(0.5))
	tt.MustAssert(r.Contains(float64(float32(math.Atanh(0.5)))), "%s", r)
	tt.MustAssert(tr.AtanhInterval(tr.Point(1)).Equal(tr.Unbounded()))
}

func TestPowInterval(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	r := tr.PowInterval(tr.Point(2), tr.Point(3))
	tt.MustAssert(r.Contains(8) && r.IsFinite(), "%s", r)
	tt.MustAssert(tr.PowInterval(tr.Point(-2), tr.Point(2)).Equal(tr.Unbounded()))
}

func TestScalarLengthDistance(t *testing.T) {
	tt := assert.WrapTB(t)
	tr := F32Traits
	r := tr.LengthInterval(tr.Point(-3))
	tt.MustAssert(r.Contains(3) && r.IsFinite(), "%s", r)

	r = tr.DistanceInterval(tr.Point(5), tr.Point(2))
	tt.MustAssert(r.Contains(3) && r.IsFinite(), "%s", r)
}

func TestTranscendentalUnsupported(t *testing.T) {
	tr := AbstractTraits
	x := tr.Point(0.5)
	for name, fn := range map[string]ScalarToInterval{
		"acos":        tr.AcosInterval,
		"asin":        tr.AsinInterval,
		"atan":        tr.AtanInterval,
		"cos":         tr.CosInterval,
		"exp2":        tr.Exp2Interval,
		"inverseSqrt": tr.InverseSqrtInterval,
		"log":         tr.LogInterval,
		"sin":         tr.SinInterval,
		"sqrt":        tr.SqrtInterval,
		"tanh":        tr.TanhInterval,
	} {
		t.Run(name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(!tr.Supports(name))
			mustPanicUnsupported(t, func() { fn(x) })
		})
	}
}
