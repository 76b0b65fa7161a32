package fp

import (
	"math"
	"sort"
)

const (
	degreesPerRadian = 57.295779513082322865
	radiansPerDegree = 0.017453292519943295474
)

type arithOps struct {
	correctlyRounded ScalarToIntervalOp
	abs              ScalarToIntervalOp
	ceil             ScalarToIntervalOp
	degrees          ScalarToIntervalOp
	floor            ScalarToIntervalOp
	fract            ScalarToIntervalOp
	modfFract        ScalarToIntervalOp
	modfWhole        ScalarToIntervalOp
	negation         ScalarToIntervalOp
	quantizeToF16    ScalarToIntervalOp
	radians          ScalarToIntervalOp
	round            ScalarToIntervalOp
	saturate         ScalarToIntervalOp
	sign             ScalarToIntervalOp
	trunc            ScalarToIntervalOp

	addition       ScalarPairToIntervalOp
	division       ScalarPairToIntervalOp
	max            ScalarPairToIntervalOp
	min            ScalarPairToIntervalOp
	multiplication ScalarPairToIntervalOp
	remainder      ScalarPairToIntervalOp
	step           ScalarPairToIntervalOp
	subtraction    ScalarPairToIntervalOp

	clampMedian  ScalarTripleToIntervalOp
	clampMinMax  ScalarTripleToIntervalOp
	fma          ScalarTripleToIntervalOp
	mixImprecise ScalarTripleToIntervalOp
	mixPrecise   ScalarTripleToIntervalOp
	smoothStep   ScalarTripleToIntervalOp
}

// correctlyRounded returns the acceptance interval of the real value x under
// correct rounding. Values outside the kind's range are unbounded.
func (t *Traits) correctlyRounded(x float64) Interval {
	if math.IsNaN(x) {
		return t.unbounded
	}
	return t.RunScalarToIntervalOp(t.Point(x), t.arith.correctlyRounded)
}

// crScalar lifts a function whose exact result is correctly rounded.
func (t *Traits) crScalar(fn func(x float64) float64) ScalarToIntervalOp {
	return ScalarToIntervalOp{Impl: func(x float64) Interval {
		return t.correctlyRounded(fn(x))
	}}
}

func (t *Traits) crPair(fn func(x, y float64) float64) ScalarPairToIntervalOp {
	return ScalarPairToIntervalOp{Impl: func(x, y float64) Interval {
		return t.correctlyRounded(fn(x, y))
	}}
}

func (t *Traits) initArithOps() {
	a := &t.arith
	c := &t.c

	a.correctlyRounded = ScalarToIntervalOp{Impl: t.Point}
	a.abs = t.crScalar(math.Abs)
	a.ceil = t.crScalar(math.Ceil)
	a.floor = t.crScalar(math.Floor)
	a.trunc = t.crScalar(math.Trunc)
	a.round = t.crScalar(math.RoundToEven)
	a.negation = t.crScalar(func(x float64) float64 { return -x })
	a.saturate = t.crScalar(func(x float64) float64 { return math.Min(math.Max(x, 0), 1) })
	a.sign = t.crScalar(func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return 0
	})

	a.fract = ScalarToIntervalOp{Impl: func(x float64) Interval {
		// fract(x) = x - floor(x), so fract(-1.1) is 0.9. Tiny negative
		// operands cancel to 1, which some implementations clamp to the
		// value just below it.
		r := t.SubtractionInterval(t.Point(x), t.FloorInterval(t.Point(x)))
		if r.Contains(1) {
			return Span(r, t.Point(c.LessThanOne))
		}
		return r
	}}
	a.modfFract = t.crScalar(func(x float64) float64 { return math.Mod(x, 1) })
	a.modfWhole = t.crScalar(math.Trunc)

	a.degrees = ScalarToIntervalOp{Impl: func(x float64) Interval {
		return t.MultiplicationInterval(t.Point(x), t.Point(degreesPerRadian))
	}}
	a.radians = ScalarToIntervalOp{Impl: func(x float64) Interval {
		return t.MultiplicationInterval(t.Point(x), t.Point(radiansPerDegree))
	}}

	a.quantizeToF16 = ScalarToIntervalOp{Impl: func(x float64) Interval {
		vs := F16Traits.AddFlushedIfNeeded(F16Traits.CorrectlyRounded(x))
		out := make([]Interval, len(vs))
		for i, v := range vs {
			out[i] = t.Point(v)
		}
		return Span(out...)
	}}

	a.addition = t.crPair(func(x, y float64) float64 { return x + y })
	a.subtraction = t.crPair(func(x, y float64) float64 { return x - y })
	a.multiplication = t.crPair(func(x, y float64) float64 { return x * y })
	a.max = t.crPair(math.Max)
	a.min = t.crPair(math.Min)

	a.division = ScalarPairToIntervalOp{
		Impl: func(x, y float64) Interval {
			if y == 0 {
				return t.unbounded
			}
			return t.ULPInterval(x/y, 2.5)
		},
		Domain: &PairDomain{
			X: []Interval{t.Range(-c.Max, c.Max)},
			Y: []Interval{
				t.Range(-1/c.MinNormal, -c.MinNormal),
				t.Range(c.MinNormal, 1/c.MinNormal),
			},
		},
		Extrema: func(x, y Interval) (Interval, Interval) {
			// A divisor straddling zero is dominated by the discontinuity
			// at zero, which the endpoints alone would miss.
			if y.Contains(0) {
				y = t.zero
			}
			return x, y
		},
	}

	a.remainder = ScalarPairToIntervalOp{Impl: func(x, y float64) Interval {
		// x - y * trunc(x / y)
		q := t.TruncInterval(t.DivisionInterval(t.Point(x), t.Point(y)))
		return t.SubtractionInterval(t.Point(x), t.MultiplicationInterval(t.Point(y), q))
	}}

	a.step = ScalarPairToIntervalOp{Impl: func(edge, x float64) Interval {
		if edge <= x {
			return t.correctlyRounded(1)
		}
		return t.correctlyRounded(0)
	}}

	a.clampMedian = ScalarTripleToIntervalOp{Impl: func(x, low, high float64) Interval {
		vs := []float64{x, low, high}
		sort.Float64s(vs)
		return t.correctlyRounded(vs[1])
	}}
	a.clampMinMax = ScalarTripleToIntervalOp{Impl: func(x, low, high float64) Interval {
		return t.correctlyRounded(math.Min(math.Max(x, low), high))
	}}

	a.fma = ScalarTripleToIntervalOp{Impl: func(x, y, z float64) Interval {
		return t.AdditionInterval(t.MultiplicationInterval(t.Point(x), t.Point(y)), t.Point(z))
	}}

	a.mixImprecise = ScalarTripleToIntervalOp{Impl: func(x, y, z float64) Interval {
		// x + (y - x) * z
		d := t.SubtractionInterval(t.Point(y), t.Point(x))
		return t.AdditionInterval(t.Point(x), t.MultiplicationInterval(d, t.Point(z)))
	}}
	a.mixPrecise = ScalarTripleToIntervalOp{Impl: func(x, y, z float64) Interval {
		// x * (1 - z) + y * z
		l := t.MultiplicationInterval(t.Point(x), t.SubtractionInterval(t.Point(1), t.Point(z)))
		r := t.MultiplicationInterval(t.Point(y), t.Point(z))
		return t.AdditionInterval(l, r)
	}}

	a.smoothStep = ScalarTripleToIntervalOp{Impl: func(low, high, x float64) Interval {
		// s = clamp((x - low) / (high - low), 0, 1); s * s * (3 - 2 * s).
		// Both clamp formulas agree for constant bounds, so the median
		// form is used.
		s := t.ClampMedianInterval(
			t.DivisionInterval(
				t.SubtractionInterval(t.Point(x), t.Point(low)),
				t.SubtractionInterval(t.Point(high), t.Point(low))),
			t.Point(0), t.Point(1))
		return t.MultiplicationInterval(s,
			t.MultiplicationInterval(s,
				t.SubtractionInterval(t.Point(3),
					t.MultiplicationInterval(t.Point(2), s))))
	}}
}

// CorrectlyRoundedInterval returns the values x may round to in the kind,
// plus zero where a subnormal may be flushed.
func (t *Traits) CorrectlyRoundedInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.correctlyRounded)
}

// AbsoluteErrorInterval returns [x - err, x + err], rounded outwards through
// the framework. A NaN x, or a non-finite err, is unbounded.
func (t *Traits) AbsoluteErrorInterval(x, err float64) Interval {
	if math.IsNaN(x) {
		return t.unbounded
	}
	err = math.Abs(err)
	if math.IsNaN(err) || math.IsInf(err, 0) {
		return t.unbounded
	}
	return t.RunScalarToIntervalOp(t.Point(x), ScalarToIntervalOp{
		Impl: func(x float64) Interval {
			return t.Range(x-err, x+err)
		},
	})
}

// ULPInterval returns x widened by numULP units in the last place on either
// side. The unit is taken in Flush mode, and each endpoint is widened to
// cover its own flushed value.
func (t *Traits) ULPInterval(x, numULP float64) Interval {
	if math.IsNaN(x) {
		return t.unbounded
	}
	numULP = math.Abs(numULP)
	if math.IsNaN(numULP) || !t.IsFinite(numULP) {
		return t.unbounded
	}
	return t.RunScalarToIntervalOp(t.Point(x), ScalarToIntervalOp{
		Impl: func(x float64) Interval {
			ulp := t.OneULP(x, Flush)
			begin := x - numULP*ulp
			end := x + numULP*ulp
			return t.Range(
				math.Min(begin, t.FlushSubnormal(begin)),
				math.Max(end, t.FlushSubnormal(end)))
		},
	})
}

// AbsInterval is |x|. An interval straddling zero reaches down to zero.
func (t *Traits) AbsInterval(x Interval) Interval {
	r := t.RunScalarToIntervalOp(x, t.arith.abs)
	return t.widenAtCriticalPoints(x, r, t.AbsInterval, 0)
}

func (t *Traits) CeilInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.ceil)
}

func (t *Traits) FloorInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.floor)
}

func (t *Traits) TruncInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.trunc)
}

// RoundInterval rounds half to even.
func (t *Traits) RoundInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.round)
}

func (t *Traits) NegationInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.negation)
}

func (t *Traits) SaturateInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.saturate)
}

func (t *Traits) SignInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.sign)
}

// FractInterval returns the acceptance interval of x - floor(x). An operand
// that crosses an integer covers the whole of [0, 1).
func (t *Traits) FractInterval(x Interval) Interval {
	r := t.RunScalarToIntervalOp(x, t.arith.fract)
	if x = t.ToInterval(x); x.IsFinite() && math.Floor(x.begin) != math.Floor(x.end) {
		r = Span(r, t.Range(0, t.c.LessThanOne))
	}
	return r
}

// ModfFractInterval returns the fractional part of modf(x), which has the
// sign of x.
func (t *Traits) ModfFractInterval(x Interval) Interval {
	r := t.RunScalarToIntervalOp(x, t.arith.modfFract)
	if x = t.ToInterval(x); x.IsFinite() && math.Floor(x.begin) != math.Floor(x.end) {
		lo, hi := 0.0, 0.0
		if x.begin < 0 {
			lo = -t.c.LessThanOne
		}
		if x.end > 0 {
			hi = t.c.LessThanOne
		}
		r = Span(r, t.Range(lo, hi))
	}
	return r
}

// ModfWholeInterval returns the whole part of modf(x).
func (t *Traits) ModfWholeInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.modfWhole)
}

func (t *Traits) DegreesInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.degrees)
}

func (t *Traits) RadiansInterval(x Interval) Interval {
	return t.RunScalarToIntervalOp(x, t.arith.radians)
}

// QuantizeToF16Interval returns the f16 values x may round to, represented in
// the kind. Only F32 defines it.
func (t *Traits) QuantizeToF16Interval(x Interval) Interval {
	t.mustSupport(OpQuantizeToF16)
	return t.RunScalarToIntervalOp(x, t.arith.quantizeToF16)
}

// LdexpInterval returns the acceptance interval of e1 * 2^e2. Exponents
// above Bias+1 are indeterminate.
func (t *Traits) LdexpInterval(e1 Interval, e2 int32) Interval {
	return t.RunScalarToIntervalOp(e1, ScalarToIntervalOp{Impl: func(x float64) Interval {
		if int(e2) > t.c.Bias+1 {
			return t.unbounded
		}
		return t.correctlyRounded(math.Ldexp(x, int(e2)))
	}})
}

func (t *Traits) AdditionInterval(x, y Interval) Interval {
	return t.RunScalarPairToIntervalOp(x, y, t.arith.addition)
}

func (t *Traits) SubtractionInterval(x, y Interval) Interval {
	return t.RunScalarPairToIntervalOp(x, y, t.arith.subtraction)
}

func (t *Traits) MultiplicationInterval(x, y Interval) Interval {
	return t.RunScalarPairToIntervalOp(x, y, t.arith.multiplication)
}

// DivisionInterval returns x / y with 2.5 ULP of error. Divisors outside
// [MinNormal, 1/MinNormal] in magnitude, or straddling zero, are
// indeterminate.
func (t *Traits) DivisionInterval(x, y Interval) Interval {
	t.mustSupport(OpDivision)
	return t.RunScalarPairToIntervalOp(x, y, t.arith.division)
}

// RemainderInterval returns x - y * trunc(x / y).
func (t *Traits) RemainderInterval(x, y Interval) Interval {
	t.mustSupport(OpRemainder)
	return t.RunScalarPairToIntervalOp(x, y, t.arith.remainder)
}

func (t *Traits) MaxInterval(x, y Interval) Interval {
	return t.RunScalarPairToIntervalOp(x, y, t.arith.max)
}

func (t *Traits) MinInterval(x, y Interval) Interval {
	return t.RunScalarPairToIntervalOp(x, y, t.arith.min)
}

// StepInterval returns 1 where edge <= x and 0 elsewhere.
func (t *Traits) StepInterval(edge, x Interval) Interval {
	return t.RunScalarPairToIntervalOp(edge, x, t.arith.step)
}

// ClampMedianInterval clamps x to [low, high] as the median of the three.
func (t *Traits) ClampMedianInterval(x, low, high Interval) Interval {
	return t.RunScalarTripleToIntervalOp(x, low, high, t.arith.clampMedian)
}

// ClampMinMaxInterval clamps x to [low, high] as min(max(x, low), high).
func (t *Traits) ClampMinMaxInterval(x, low, high Interval) Interval {
	return t.RunScalarTripleToIntervalOp(x, low, high, t.arith.clampMinMax)
}

// FmaInterval returns x * y + z, rounded after each step.
func (t *Traits) FmaInterval(x, y, z Interval) Interval {
	return t.RunScalarTripleToIntervalOp(x, y, z, t.arith.fma)
}

// MixImpreciseInterval returns x + (y - x) * z.
func (t *Traits) MixImpreciseInterval(x, y, z Interval) Interval {
	return t.RunScalarTripleToIntervalOp(x, y, z, t.arith.mixImprecise)
}

// MixPreciseInterval returns x * (1 - z) + y * z.
func (t *Traits) MixPreciseInterval(x, y, z Interval) Interval {
	return t.RunScalarTripleToIntervalOp(x, y, z, t.arith.mixPrecise)
}

func (t *Traits) SmoothStepInterval(low, high, x Interval) Interval {
	t.mustSupport(OpSmoothStep)
	return t.RunScalarTripleToIntervalOp(low, high, x, t.arith.smoothStep)
}
