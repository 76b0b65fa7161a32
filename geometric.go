package fp

type geometricOps struct {
	dot       VectorPairToIntervalOp
	distance  VectorPairToIntervalOp
	length    VectorToIntervalOp
	normalize VectorToVectorOp
	cross     VectorPairToVectorOp
}

func (t *Traits) initGeometricOps() {
	g := &t.geo

	g.dot = VectorPairToIntervalOp{Impl: func(x, y []float64) Interval {
		if len(x) != len(y) {
			panic("fp: dot of vectors of different lengths")
		}
		products := t.ScalarPairToVector(t.PointVector(x), t.PointVector(y), t.MultiplicationInterval)
		return t.sumPermutations(products)
	}}

	g.length = VectorToIntervalOp{Impl: func(x []float64) Interval {
		// sqrt(dot(x, x))
		v := t.PointVector(x)
		return t.SqrtInterval(t.DotInterval(v, v))
	}}

	g.distance = VectorPairToIntervalOp{Impl: func(x, y []float64) Interval {
		// length(x - y)
		d := t.ScalarPairToVector(t.PointVector(x), t.PointVector(y), t.SubtractionInterval)
		return t.LengthVectorInterval(d)
	}}

	g.normalize = VectorToVectorOp{Impl: func(x []float64) Vector {
		// x / length(x)
		v := t.PointVector(x)
		length := t.LengthVectorInterval(v)
		out := make(Vector, len(v))
		for i := range v {
			out[i] = t.DivisionInterval(v[i], length)
		}
		return out
	}}

	g.cross = VectorPairToVectorOp{Impl: func(x, y []float64) Vector {
		if len(x) != 3 || len(y) != 3 {
			panic("fp: cross is only defined for 3 component vectors")
		}
		term := func(a, b, c, d float64) Interval {
			// a * b - c * d
			return t.SubtractionInterval(
				t.MultiplicationInterval(t.Point(a), t.Point(b)),
				t.MultiplicationInterval(t.Point(c), t.Point(d)))
		}
		return Vector{
			term(x[1], y[2], x[2], y[1]),
			term(x[2], y[0], x[0], y[2]),
			term(x[0], y[1], x[1], y[0]),
		}
	}}
}

// sumPermutations adds the terms in every order and spans the results, since
// the order of a multi-term sum is unspecified and float addition does not
// associate. Two terms commute, so they need no permutation.
func (t *Traits) sumPermutations(terms []Interval) Interval {
	if len(terms) == 1 {
		return terms[0]
	}
	if len(terms) == 2 {
		return t.AdditionInterval(terms[0], terms[1])
	}

	perms := permutations(terms)
	sums := make([]Interval, len(perms))
	for i, p := range perms {
		sum := p[0]
		for _, term := range p[1:] {
			sum = t.AdditionInterval(sum, term)
		}
		sums[i] = sum
	}
	return Span(sums...)
}

// scaleVector multiplies every component of v by s.
func (t *Traits) scaleVector(v Vector, s Interval) Vector {
	return t.ScalarToVector(v, func(c Interval) Interval {
		return t.MultiplicationInterval(c, s)
	})
}

// DotInterval returns the sum of the component products in every order.
func (t *Traits) DotInterval(x, y Vector) Interval {
	return t.RunVectorPairToIntervalOp(x, y, t.geo.dot)
}

// LengthVectorInterval is sqrt(dot(x, x)).
func (t *Traits) LengthVectorInterval(x Vector) Interval {
	t.mustSupport(OpLength)
	return t.RunVectorToIntervalOp(x, t.geo.length)
}

// DistanceVectorInterval is length(x - y).
func (t *Traits) DistanceVectorInterval(x, y Vector) Interval {
	t.mustSupport(OpDistance)
	return t.RunVectorPairToIntervalOp(x, y, t.geo.distance)
}

// NormalizeInterval divides each component by length(x).
func (t *Traits) NormalizeInterval(x Vector) Vector {
	t.mustSupport(OpNormalize)
	return t.RunVectorToVectorOp(x, t.geo.normalize)
}

// CrossInterval is the cross product of two 3 component vectors.
func (t *Traits) CrossInterval(x, y Vector) Vector {
	return t.RunVectorPairToVectorOp(x, y, t.geo.cross)
}

// ReflectInterval is x - 2 * dot(x, y) * y, for incident x and normal y.
func (t *Traits) ReflectInterval(x, y Vector) Vector {
	if len(x) != len(y) {
		panic("fp: reflect of vectors of different lengths")
	}
	x, y = t.ToVector(x), t.ToVector(y)
	if !x.IsFinite() || !y.IsFinite() {
		return t.UnboundedVector(len(x))
	}

	s := t.MultiplicationInterval(t.Point(2), t.DotInterval(x, y))
	return t.ScalarPairToVector(x, t.scaleVector(y, s), t.SubtractionInterval)
}

// RefractInterval returns the refraction of incident i through a surface with
// normal s and ratio of indices of refraction r:
//
//	k = 1 - r * r * (1 - dot(s, i) * dot(s, i))
//	refract = r * i - (r * dot(s, i) + sqrt(k)) * s
//
// The result is the zero vector if k is certainly negative, and unbounded if
// k may be zero or is not finite, since sqrt(k) is discontinuous there.
func (t *Traits) RefractInterval(i, s Vector, r Interval) Vector {
	t.mustSupport(OpRefract)
	if len(i) != len(s) {
		panic("fp: refract of vectors of different lengths")
	}

	rSquared := t.MultiplicationInterval(r, r)
	dot := t.DotInterval(s, i)
	dotSquared := t.MultiplicationInterval(dot, dot)
	oneMinusDotSquared := t.SubtractionInterval(t.Point(1), dotSquared)
	k := t.SubtractionInterval(t.Point(1), t.MultiplicationInterval(rSquared, oneMinusDotSquared))

	if !k.IsFinite() || k.ContainsZeroOrSubnormals() {
		return t.UnboundedVector(len(i))
	}
	if k.end < 0 {
		return t.ZeroVector(len(i))
	}

	dotTimesR := t.MultiplicationInterval(dot, r)
	coeff := t.AdditionInterval(dotTimesR, t.SqrtInterval(k))
	return t.ScalarPairToVector(t.scaleVector(i, r), t.scaleVector(s, coeff), t.SubtractionInterval)
}

// FaceForwardIntervals returns every vector faceForward(x, y, z) may produce:
// x where dot(z, y) may be negative and -x where it may be non-negative. A
// nil entry marks that the dot product may overflow, which a harness that
// cannot skip such cases must treat as unacceptable.
func (t *Traits) FaceForwardIntervals(x, y, z Vector) []Vector {
	positive := t.ScalarToVector(x, t.CorrectlyRoundedInterval)
	negative := t.ScalarToVector(x, t.NegationInterval)
	dot := t.DotInterval(z, y)

	var out []Vector
	if !dot.IsFinite() {
		out = append(out, nil)
	}
	if dot.begin < 0 || dot.end < 0 {
		out = append(out, positive)
	}
	if dot.begin >= 0 || dot.end >= 0 {
		out = append(out, negative)
	}
	return out
}

// MultiplicationVectorScalarInterval multiplies each component of v by s.
func (t *Traits) MultiplicationVectorScalarInterval(v Vector, s Interval) Vector {
	return t.scaleVector(v, s)
}

// MultiplicationScalarVectorInterval multiplies s by each component of v.
func (t *Traits) MultiplicationScalarVectorInterval(s Interval, v Vector) Vector {
	return t.ScalarToVector(v, func(c Interval) Interval {
		return t.MultiplicationInterval(s, c)
	})
}
