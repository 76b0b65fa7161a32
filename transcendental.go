package fp

import (
	"math"
)

type transcendentalOps struct {
	acos             ScalarToIntervalOp
	acoshAlternative ScalarToIntervalOp
	acoshPrimary     ScalarToIntervalOp
	asin             ScalarToIntervalOp
	asinh            ScalarToIntervalOp
	atan             ScalarToIntervalOp
	atanh            ScalarToIntervalOp
	cos              ScalarToIntervalOp
	cosh             ScalarToIntervalOp
	exp              ScalarToIntervalOp
	exp2             ScalarToIntervalOp
	inverseSqrt      ScalarToIntervalOp
	length           ScalarToIntervalOp
	log              ScalarToIntervalOp
	log2             ScalarToIntervalOp
	sin              ScalarToIntervalOp
	sinh             ScalarToIntervalOp
	sqrt             ScalarToIntervalOp
	tan              ScalarToIntervalOp
	tanh             ScalarToIntervalOp

	atan2    ScalarPairToIntervalOp
	distance ScalarPairToIntervalOp
	pow      ScalarPairToIntervalOp
}

// accuracy holds the error bounds that differ between f32 and f16. Abstract
// defines none of the operations that use them.
type accuracy struct {
	atanULP      float64
	trigAbsolute float64
	logAbsolute  float64
	expBaseULP   float64
	inverseTrig  float64
}

func (t *Traits) accuracy() accuracy {
	if t.kind == F16 {
		return accuracy{
			atanULP:      5,
			trigAbsolute: 0x1p-7,
			logAbsolute:  0x1p-7,
			expBaseULP:   1,
			inverseTrig:  3.91e-3,
		}
	}
	return accuracy{
		atanULP:      4096,
		trigAbsolute: 0x1p-11,
		logAbsolute:  0x1p-21,
		expBaseULP:   3,
		inverseTrig:  6.77e-5,
	}
}

func (t *Traits) initTranscendentalOps() {
	o := &t.trans
	c := &t.c
	acc := t.accuracy()

	positive := []Interval{t.Range(c.MinNormal, c.Max)}
	pi := t.p.quantize(math.Pi)
	negPiToPi := []Interval{t.Range(-pi, pi)}
	unitRange := []Interval{t.Range(-1, 1)}

	o.acos = ScalarToIntervalOp{
		Domain: unitRange,
		Impl: func(x float64) Interval {
			// atan2(sqrt(1 - x * x), x), or an approximation with absolute error.
			y := t.SqrtInterval(t.SubtractionInterval(t.Point(1), t.MultiplicationInterval(t.Point(x), t.Point(x))))
			return Span(
				t.Atan2Interval(y, t.Point(x)),
				t.AbsoluteErrorInterval(math.Acos(x), acc.inverseTrig))
		},
	}

	o.asin = ScalarToIntervalOp{
		Domain: unitRange,
		Impl: func(x float64) Interval {
			// atan2(x, sqrt(1 - x * x)), or an approximation with absolute error.
			y := t.SqrtInterval(t.SubtractionInterval(t.Point(1), t.MultiplicationInterval(t.Point(x), t.Point(x))))
			return Span(
				t.Atan2Interval(t.Point(x), y),
				t.AbsoluteErrorInterval(math.Asin(x), acc.inverseTrig))
		},
	}

	o.acoshAlternative = ScalarToIntervalOp{Impl: func(x float64) Interval {
		// log(x + sqrt((x + 1) * (x - 1)))
		inner := t.MultiplicationInterval(
			t.AdditionInterval(t.Point(x), t.Point(1)),
			t.SubtractionInterval(t.Point(x), t.Point(1)))
		return t.LogInterval(t.AdditionInterval(t.Point(x), t.SqrtInterval(inner)))
	}}

	o.acoshPrimary = ScalarToIntervalOp{Impl: func(x float64) Interval {
		// log(x + sqrt(x * x - 1))
		inner := t.SubtractionInterval(t.MultiplicationInterval(t.Point(x), t.Point(x)), t.Point(1))
		return t.LogInterval(t.AdditionInterval(t.Point(x), t.SqrtInterval(inner)))
	}}

	o.asinh = ScalarToIntervalOp{Impl: func(x float64) Interval {
		// log(x + sqrt(x * x + 1))
		inner := t.AdditionInterval(t.MultiplicationInterval(t.Point(x), t.Point(x)), t.Point(1))
		return t.LogInterval(t.AdditionInterval(t.Point(x), t.SqrtInterval(inner)))
	}}

	o.atan = ScalarToIntervalOp{Impl: func(x float64) Interval {
		return t.ULPInterval(math.Atan(x), acc.atanULP)
	}}

	o.atanh = ScalarToIntervalOp{
		Domain: []Interval{t.Range(-c.LessThanOne, c.LessThanOne)},
		Impl: func(x float64) Interval {
			// 0.5 * log((1 + x) / (1 - x))
			num := t.AdditionInterval(t.Point(1), t.Point(x))
			den := t.SubtractionInterval(t.Point(1), t.Point(x))
			return t.MultiplicationInterval(t.LogInterval(t.DivisionInterval(num, den)), t.Point(0.5))
		},
	}

	o.cos = ScalarToIntervalOp{
		Domain: negPiToPi,
		Impl: func(x float64) Interval {
			return t.AbsoluteErrorInterval(math.Cos(x), acc.trigAbsolute)
		},
	}
	o.sin = ScalarToIntervalOp{
		Domain: negPiToPi,
		Impl: func(x float64) Interval {
			return t.AbsoluteErrorInterval(math.Sin(x), acc.trigAbsolute)
		},
	}

	o.cosh = ScalarToIntervalOp{Impl: func(x float64) Interval {
		// (exp(x) + exp(-x)) * 0.5
		sum := t.AdditionInterval(t.ExpInterval(t.Point(x)), t.ExpInterval(t.NegationInterval(t.Point(x))))
		return t.MultiplicationInterval(sum, t.Point(0.5))
	}}
	o.sinh = ScalarToIntervalOp{Impl: func(x float64) Interval {
		// (exp(x) - exp(-x)) * 0.5
		diff := t.SubtractionInterval(t.ExpInterval(t.Point(x)), t.ExpInterval(t.NegationInterval(t.Point(x))))
		return t.MultiplicationInterval(diff, t.Point(0.5))
	}}

	o.exp = ScalarToIntervalOp{Impl: func(x float64) Interval {
		return t.ULPInterval(math.Exp(x), acc.expBaseULP+2*math.Abs(x))
	}}
	o.exp2 = ScalarToIntervalOp{Impl: func(x float64) Interval {
		return t.ULPInterval(math.Exp2(x), acc.expBaseULP+2*math.Abs(x))
	}}

	o.inverseSqrt = ScalarToIntervalOp{
		Domain: positive,
		Impl: func(x float64) Interval {
			return t.ULPInterval(1/math.Sqrt(x), 2)
		},
	}
	o.sqrt = ScalarToIntervalOp{Impl: func(x float64) Interval {
		// 1 / inverseSqrt(x)
		return t.DivisionInterval(t.Point(1), t.InverseSqrtInterval(t.Point(x)))
	}}

	o.log = ScalarToIntervalOp{
		Domain: positive,
		Impl: func(x float64) Interval {
			if x >= 0.5 && x <= 2 {
				return t.AbsoluteErrorInterval(math.Log(x), acc.logAbsolute)
			}
			return t.ULPInterval(math.Log(x), 3)
		},
	}
	o.log2 = ScalarToIntervalOp{
		Domain: positive,
		Impl: func(x float64) Interval {
			if x >= 0.5 && x <= 2 {
				return t.AbsoluteErrorInterval(math.Log2(x), acc.logAbsolute)
			}
			return t.ULPInterval(math.Log2(x), 3)
		},
	}

	o.tan = ScalarToIntervalOp{Impl: func(x float64) Interval {
		// sin(x) / cos(x)
		return t.DivisionInterval(t.SinInterval(t.Point(x)), t.CosInterval(t.Point(x)))
	}}
	o.tanh = ScalarToIntervalOp{Impl: func(x float64) Interval {
		// sinh(x) / cosh(x), or an approximation with absolute error.
		q := t.DivisionInterval(t.SinhInterval(t.Point(x)), t.CoshInterval(t.Point(x)))
		return Span(q, t.AbsoluteErrorInterval(math.Tanh(x), 1e-5))
	}}

	o.length = ScalarToIntervalOp{Impl: func(x float64) Interval {
		// sqrt(x * x)
		return t.SqrtInterval(t.MultiplicationInterval(t.Point(x), t.Point(x)))
	}}

	o.atan2 = ScalarPairToIntervalOp{
		Impl: func(y, x float64) Interval {
			if y == 0 {
				// The result is exactly 0 or ±π here, so only rounding
				// applies. The sign of a zero y picks the sign of π.
				if x > 0 {
					return t.zero
				}
				if math.Signbit(y) {
					return t.correctlyRounded(-math.Pi)
				}
				return t.correctlyRounded(math.Pi)
			}
			return t.ULPInterval(math.Atan2(y, x), acc.atanULP)
		},
		// X bounds the first operand (y), Y the second (x). Only x is
		// kept clear of zero.
		Domain: &PairDomain{
			X: []Interval{t.Range(-c.Max, c.Max)},
			Y: []Interval{
				t.Range(-c.Max, -c.MinNormal),
				t.Range(c.MinNormal, c.Max),
			},
		},
		Extrema: func(y, x Interval) (Interval, Interval) {
			// y crossing zero while x can be negative jumps between -π and
			// π, as does any y near zero when x is near zero. Collapsing
			// both to zero puts x outside the domain.
			if y.Contains(0) && (x.Contains(0) || (!y.IsPoint() && x.begin < 0)) {
				return t.zero, t.zero
			}
			return y, x
		},
	}

	o.distance = ScalarPairToIntervalOp{Impl: func(x, y float64) Interval {
		// length(x - y)
		return t.LengthInterval(t.SubtractionInterval(t.Point(x), t.Point(y)))
	}}

	o.pow = ScalarPairToIntervalOp{Impl: func(x, y float64) Interval {
		// exp2(y * log2(x))
		return t.Exp2Interval(t.MultiplicationInterval(t.Point(y), t.Log2Interval(t.Point(x))))
	}}
}

// widenAtCriticalPoints spans r with fn evaluated at every critical point
// strictly inside x. Operations that are not monotonic between their
// endpoints use it to cover their turning points.
func (t *Traits) widenAtCriticalPoints(x, r Interval, fn ScalarToInterval, points ...float64) Interval {
	x = t.ToInterval(x)
	if !x.IsFinite() {
		return r
	}
	for _, p := range points {
		if x.begin < p && p < x.end {
			r = Span(r, fn(t.Point(p)))
		}
	}
	return r
}

// AcosInterval is the span of atan2(sqrt(1 - x * x), x) and an absolute
// error of 6.77e-5 (f32) or 3.91e-3 (f16) around acos(x). It is defined on
// [-1, 1].
func (t *Traits) AcosInterval(x Interval) Interval {
	t.mustSupport(OpAcos)
	return t.RunScalarToIntervalOp(x, t.trans.acos)
}

// AcoshAlternativeInterval is log(x + sqrt((x + 1) * (x - 1))).
func (t *Traits) AcoshAlternativeInterval(x Interval) Interval {
	t.mustSupport(OpAcosh)
	return t.RunScalarToIntervalOp(x, t.trans.acoshAlternative)
}

// AcoshPrimaryInterval is log(x + sqrt(x * x - 1)).
func (t *Traits) AcoshPrimaryInterval(x Interval) Interval {
	t.mustSupport(OpAcosh)
	return t.RunScalarToIntervalOp(x, t.trans.acoshPrimary)
}

// AsinInterval is AcosInterval's counterpart, atan2(x, sqrt(1 - x * x)).
func (t *Traits) AsinInterval(x Interval) Interval {
	t.mustSupport(OpAsin)
	return t.RunScalarToIntervalOp(x, t.trans.asin)
}

func (t *Traits) AsinhInterval(x Interval) Interval {
	t.mustSupport(OpAsinh)
	return t.RunScalarToIntervalOp(x, t.trans.asinh)
}

// AtanInterval allows 4096 ULP of error for f32 and 5 for f16.
func (t *Traits) AtanInterval(x Interval) Interval {
	t.mustSupport(OpAtan)
	return t.RunScalarToIntervalOp(x, t.trans.atan)
}

// Atan2Interval returns atan2(y, x) with AtanInterval's error. A zero y gives
// exactly zero for positive x and the correctly rounded ±π for negative x.
// The discontinuities along the negative x axis and at the origin are
// unbounded.
func (t *Traits) Atan2Interval(y, x Interval) Interval {
	t.mustSupport(OpAtan2)
	return t.RunScalarPairToIntervalOp(y, x, t.trans.atan2)
}

// AtanhInterval is 0.5 * log((1 + x) / (1 - x)), defined strictly inside
// (-1, 1).
func (t *Traits) AtanhInterval(x Interval) Interval {
	t.mustSupport(OpAtanh)
	return t.RunScalarToIntervalOp(x, t.trans.atanh)
}

// CosInterval allows an absolute error of 2^-11 (f32) or 2^-7 (f16) on
// [-π, π], and is unbounded elsewhere.
func (t *Traits) CosInterval(x Interval) Interval {
	t.mustSupport(OpCos)
	r := t.RunScalarToIntervalOp(x, t.trans.cos)
	return t.widenAtCriticalPoints(x, r, t.CosInterval, 0)
}

func (t *Traits) CoshInterval(x Interval) Interval {
	t.mustSupport(OpCosh)
	r := t.RunScalarToIntervalOp(x, t.trans.cosh)
	return t.widenAtCriticalPoints(x, r, t.CoshInterval, 0)
}

// ExpInterval allows 3 + 2|x| ULP of error for f32 and 1 + 2|x| for f16.
func (t *Traits) ExpInterval(x Interval) Interval {
	t.mustSupport(OpExp)
	return t.RunScalarToIntervalOp(x, t.trans.exp)
}

func (t *Traits) Exp2Interval(x Interval) Interval {
	t.mustSupport(OpExp2)
	return t.RunScalarToIntervalOp(x, t.trans.exp2)
}

// InverseSqrtInterval allows 2 ULP of error, for positive normal x.
func (t *Traits) InverseSqrtInterval(x Interval) Interval {
	t.mustSupport(OpInverseSqrt)
	return t.RunScalarToIntervalOp(x, t.trans.inverseSqrt)
}

// LengthInterval is the scalar form of length, sqrt(x * x).
func (t *Traits) LengthInterval(x Interval) Interval {
	t.mustSupport(OpLength)
	r := t.RunScalarToIntervalOp(x, t.trans.length)
	return t.widenAtCriticalPoints(x, r, t.LengthInterval, 0)
}

// LogInterval allows an absolute error of 2^-21 (f32) or 2^-7 (f16) on
// [0.5, 2.0] and 3 ULP elsewhere. It is defined for positive normal x.
func (t *Traits) LogInterval(x Interval) Interval {
	t.mustSupport(OpLog)
	return t.RunScalarToIntervalOp(x, t.trans.log)
}

func (t *Traits) Log2Interval(x Interval) Interval {
	t.mustSupport(OpLog2)
	return t.RunScalarToIntervalOp(x, t.trans.log2)
}

func (t *Traits) SinInterval(x Interval) Interval {
	t.mustSupport(OpSin)
	r := t.RunScalarToIntervalOp(x, t.trans.sin)
	return t.widenAtCriticalPoints(x, r, t.SinInterval, -math.Pi/2, math.Pi/2)
}

func (t *Traits) SinhInterval(x Interval) Interval {
	t.mustSupport(OpSinh)
	return t.RunScalarToIntervalOp(x, t.trans.sinh)
}

// SqrtInterval is 1 / inverseSqrt(x).
func (t *Traits) SqrtInterval(x Interval) Interval {
	t.mustSupport(OpSqrt)
	return t.RunScalarToIntervalOp(x, t.trans.sqrt)
}

// TanInterval is sin(x) / cos(x). An interval that strictly contains a pole
// at π/2 + kπ is unbounded.
func (t *Traits) TanInterval(x Interval) Interval {
	t.mustSupport(OpTan)
	x = t.ToInterval(x)
	if x.IsFinite() && !x.IsPoint() {
		k := math.Ceil((x.begin - math.Pi/2) / math.Pi)
		if pole := math.Pi/2 + k*math.Pi; x.begin < pole && pole < x.end {
			return t.unbounded
		}
	}
	return t.RunScalarToIntervalOp(x, t.trans.tan)
}

// TanhInterval is the span of sinh(x) / cosh(x) and an absolute error of
// 1e-5 around tanh(x).
func (t *Traits) TanhInterval(x Interval) Interval {
	t.mustSupport(OpTanh)
	return t.RunScalarToIntervalOp(x, t.trans.tanh)
}

// DistanceInterval is the scalar form of distance, length(x - y).
func (t *Traits) DistanceInterval(x, y Interval) Interval {
	t.mustSupport(OpDistance)
	return t.RunScalarPairToIntervalOp(x, y, t.trans.distance)
}

// PowInterval is exp2(y * log2(x)).
func (t *Traits) PowInterval(x, y Interval) Interval {
	t.mustSupport(OpPow)
	return t.RunScalarPairToIntervalOp(x, y, t.trans.pow)
}
