package fp

// Filter selects which generated cases are kept.
type Filter int

const (
	// FilterFinite drops cases where any expectation is not finite, for
	// harnesses that cannot express "any result".
	FilterFinite Filter = iota

	// FilterNone keeps every case.
	FilterNone
)

func (f Filter) String() string {
	if f == FilterNone {
		return "unfiltered"
	}
	return "finite"
}

// Function shapes accepted by the case generators. The builtin methods on
// *Traits satisfy them as method values, e.g. t.AbsInterval.
type (
	ScalarToInterval         func(x Interval) Interval
	ScalarPairToInterval     func(x, y Interval) Interval
	ScalarTripleToInterval   func(x, y, z Interval) Interval
	ScalarI32ToInterval      func(x Interval, e int32) Interval
	VectorToInterval         func(x Vector) Interval
	VectorPairToInterval     func(x, y Vector) Interval
	VectorToVector           func(x Vector) Vector
	VectorPairToVector       func(x, y Vector) Vector
	VectorScalarToVector     func(x Vector, y Interval) Vector
	ScalarVectorToVector     func(x Interval, y Vector) Vector
	VectorPairScalarToVector func(x, y Vector, z Interval) Vector
	VectorTripleToVectors    func(x, y, z Vector) []Vector
	MatrixToScalar           func(m Matrix) Interval
	MatrixToMatrix           func(m Matrix) Matrix
	MatrixPairToMatrix       func(x, y Matrix) Matrix
	MatrixScalarToMatrix     func(m Matrix, s Interval) Matrix
	ScalarMatrixToMatrix     func(s Interval, m Matrix) Matrix
	MatrixVectorToVector     func(m Matrix, v Vector) Vector
	VectorMatrixToVector     func(v Vector, m Matrix) Vector
	U32ToVector              func(n uint32) Vector
)

func (t *Traits) quantizeVector(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = t.Quantize(x)
	}
	return out
}

func (t *Traits) quantizeMatrix(xs [][]float64) [][]float64 {
	out := make([][]float64, len(xs))
	for i, c := range xs {
		out[i] = t.quantizeVector(c)
	}
	return out
}

func (t *Traits) scalar(x float64) Scalar { return Scalar{Kind: t.kind, V: x} }
func (t *Traits) vec(xs []float64) Vec    { return Vec{Kind: t.kind, V: xs} }
func (t *Traits) mat(xs [][]float64) Mat  { return Mat{Kind: t.kind, V: xs} }

func appendCase(cs []Case, c *Case) []Case {
	if c != nil {
		return append(cs, *c)
	}
	return cs
}

// makeCase builds a Case, or returns nil if filter rejects the expectations.
func makeCase(filter Filter, input []Value, expected ...Acceptance) *Case {
	c := &Case{Input: input, Expected: AnyOf(expected)}
	if filter == FilterFinite && !c.Expected.IsFinite() {
		return nil
	}
	return c
}

// GenerateScalarToIntervalCases returns a case for each quantized x in xs,
// expecting any of the results of ops.
func (t *Traits) GenerateScalarToIntervalCases(xs []float64, filter Filter, ops ...ScalarToInterval) []Case {
	var out []Case
	for _, x := range xs {
		x = t.Quantize(x)
		exp := make([]Acceptance, len(ops))
		for i, op := range ops {
			exp[i] = op(t.Point(x))
		}
		out = appendCase(out, makeCase(filter, []Value{t.scalar(x)}, exp...))
	}
	return out
}

// GenerateScalarPairToIntervalCases returns a case for each pair in the
// cartesian product of xs and ys.
func (t *Traits) GenerateScalarPairToIntervalCases(xs, ys []float64, filter Filter, ops ...ScalarPairToInterval) []Case {
	var out []Case
	for _, x := range xs {
		x = t.Quantize(x)
		for _, y := range ys {
			y = t.Quantize(y)
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.Point(x), t.Point(y))
			}
			out = appendCase(out, makeCase(filter, []Value{t.scalar(x), t.scalar(y)}, exp...))
		}
	}
	return out
}

// GenerateScalarTripleToIntervalCases returns a case for each triple in the
// cartesian product of xs, ys and zs.
func (t *Traits) GenerateScalarTripleToIntervalCases(xs, ys, zs []float64, filter Filter, ops ...ScalarTripleToInterval) []Case {
	var out []Case
	for _, x := range xs {
		x = t.Quantize(x)
		for _, y := range ys {
			y = t.Quantize(y)
			for _, z := range zs {
				z = t.Quantize(z)
				exp := make([]Acceptance, len(ops))
				for i, op := range ops {
					exp[i] = op(t.Point(x), t.Point(y), t.Point(z))
				}
				out = appendCase(out, makeCase(filter, []Value{t.scalar(x), t.scalar(y), t.scalar(z)}, exp...))
			}
		}
	}
	return out
}

// GenerateScalarI32ToIntervalCases returns a case for each pair in the
// cartesian product of xs and the integers es.
func (t *Traits) GenerateScalarI32ToIntervalCases(xs []float64, es []int32, filter Filter, ops ...ScalarI32ToInterval) []Case {
	var out []Case
	for _, x := range xs {
		x = t.Quantize(x)
		for _, e := range es {
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.Point(x), e)
			}
			out = appendCase(out, makeCase(filter, []Value{t.scalar(x), I32(e)}, exp...))
		}
	}
	return out
}

func (t *Traits) GenerateVectorToIntervalCases(vs [][]float64, filter Filter, ops ...VectorToInterval) []Case {
	var out []Case
	for _, v := range vs {
		v = t.quantizeVector(v)
		exp := make([]Acceptance, len(ops))
		for i, op := range ops {
			exp[i] = op(t.PointVector(v))
		}
		out = appendCase(out, makeCase(filter, []Value{t.vec(v)}, exp...))
	}
	return out
}

func (t *Traits) GenerateVectorPairToIntervalCases(xs, ys [][]float64, filter Filter, ops ...VectorPairToInterval) []Case {
	var out []Case
	for _, x := range xs {
		x = t.quantizeVector(x)
		for _, y := range ys {
			y = t.quantizeVector(y)
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.PointVector(x), t.PointVector(y))
			}
			out = appendCase(out, makeCase(filter, []Value{t.vec(x), t.vec(y)}, exp...))
		}
	}
	return out
}

func (t *Traits) GenerateVectorToVectorCases(vs [][]float64, filter Filter, ops ...VectorToVector) []Case {
	var out []Case
	for _, v := range vs {
		v = t.quantizeVector(v)
		exp := make([]Acceptance, len(ops))
		for i, op := range ops {
			exp[i] = op(t.PointVector(v))
		}
		out = appendCase(out, makeCase(filter, []Value{t.vec(v)}, exp...))
	}
	return out
}

func (t *Traits) GenerateVectorPairToVectorCases(xs, ys [][]float64, filter Filter, ops ...VectorPairToVector) []Case {
	var out []Case
	for _, x := range xs {
		x = t.quantizeVector(x)
		for _, y := range ys {
			y = t.quantizeVector(y)
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.PointVector(x), t.PointVector(y))
			}
			out = appendCase(out, makeCase(filter, []Value{t.vec(x), t.vec(y)}, exp...))
		}
	}
	return out
}

func (t *Traits) GenerateVectorScalarToVectorCases(vs [][]float64, ss []float64, filter Filter, ops ...VectorScalarToVector) []Case {
	var out []Case
	for _, v := range vs {
		v = t.quantizeVector(v)
		for _, s := range ss {
			s = t.Quantize(s)
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.PointVector(v), t.Point(s))
			}
			out = appendCase(out, makeCase(filter, []Value{t.vec(v), t.scalar(s)}, exp...))
		}
	}
	return out
}

func (t *Traits) GenerateScalarVectorToVectorCases(ss []float64, vs [][]float64, filter Filter, ops ...ScalarVectorToVector) []Case {
	var out []Case
	for _, s := range ss {
		s = t.Quantize(s)
		for _, v := range vs {
			v = t.quantizeVector(v)
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.Point(s), t.PointVector(v))
			}
			out = appendCase(out, makeCase(filter, []Value{t.scalar(s), t.vec(v)}, exp...))
		}
	}
	return out
}

func (t *Traits) GenerateVectorPairScalarToVectorCases(xs, ys [][]float64, ss []float64, filter Filter, ops ...VectorPairScalarToVector) []Case {
	var out []Case
	for _, x := range xs {
		x = t.quantizeVector(x)
		for _, y := range ys {
			y = t.quantizeVector(y)
			for _, s := range ss {
				s = t.Quantize(s)
				exp := make([]Acceptance, len(ops))
				for i, op := range ops {
					exp[i] = op(t.PointVector(x), t.PointVector(y), t.Point(s))
				}
				out = appendCase(out, makeCase(filter, []Value{t.vec(x), t.vec(y), t.scalar(s)}, exp...))
			}
		}
	}
	return out
}

// GenerateVectorTripleToVectorsCases is for builtins with several acceptable
// vectors, such as faceForward. A nil result vector marks a possible
// overflow: FilterFinite drops the case, FilterNone strips the marker.
func (t *Traits) GenerateVectorTripleToVectorsCases(xs, ys, zs [][]float64, filter Filter, ops ...VectorTripleToVectors) []Case {
	var out []Case
	for _, x := range xs {
		x = t.quantizeVector(x)
		for _, y := range ys {
			y = t.quantizeVector(y)
			for _, z := range zs {
				z = t.quantizeVector(z)
				var exp []Acceptance
				dropped := false
				for _, op := range ops {
					for _, r := range op(t.PointVector(x), t.PointVector(y), t.PointVector(z)) {
						if r == nil {
							dropped = true
							continue
						}
						exp = append(exp, r)
					}
				}
				if dropped && filter == FilterFinite {
					continue
				}
				out = appendCase(out, makeCase(filter, []Value{t.vec(x), t.vec(y), t.vec(z)}, exp...))
			}
		}
	}
	return out
}

func (t *Traits) GenerateMatrixToScalarCases(ms [][][]float64, filter Filter, ops ...MatrixToScalar) []Case {
	var out []Case
	for _, m := range ms {
		m = t.quantizeMatrix(m)
		exp := make([]Acceptance, len(ops))
		for i, op := range ops {
			exp[i] = op(t.PointMatrix(m))
		}
		out = appendCase(out, makeCase(filter, []Value{t.mat(m)}, exp...))
	}
	return out
}

func (t *Traits) GenerateMatrixToMatrixCases(ms [][][]float64, filter Filter, ops ...MatrixToMatrix) []Case {
	var out []Case
	for _, m := range ms {
		m = t.quantizeMatrix(m)
		exp := make([]Acceptance, len(ops))
		for i, op := range ops {
			exp[i] = op(t.PointMatrix(m))
		}
		out = appendCase(out, makeCase(filter, []Value{t.mat(m)}, exp...))
	}
	return out
}

func (t *Traits) GenerateMatrixPairToMatrixCases(xs, ys [][][]float64, filter Filter, ops ...MatrixPairToMatrix) []Case {
	var out []Case
	for _, x := range xs {
		x = t.quantizeMatrix(x)
		for _, y := range ys {
			y = t.quantizeMatrix(y)
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.PointMatrix(x), t.PointMatrix(y))
			}
			out = appendCase(out, makeCase(filter, []Value{t.mat(x), t.mat(y)}, exp...))
		}
	}
	return out
}

func (t *Traits) GenerateMatrixScalarToMatrixCases(ms [][][]float64, ss []float64, filter Filter, ops ...MatrixScalarToMatrix) []Case {
	var out []Case
	for _, m := range ms {
		m = t.quantizeMatrix(m)
		for _, s := range ss {
			s = t.Quantize(s)
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.PointMatrix(m), t.Point(s))
			}
			out = appendCase(out, makeCase(filter, []Value{t.mat(m), t.scalar(s)}, exp...))
		}
	}
	return out
}

func (t *Traits) GenerateScalarMatrixToMatrixCases(ss []float64, ms [][][]float64, filter Filter, ops ...ScalarMatrixToMatrix) []Case {
	var out []Case
	for _, s := range ss {
		s = t.Quantize(s)
		for _, m := range ms {
			m = t.quantizeMatrix(m)
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.Point(s), t.PointMatrix(m))
			}
			out = appendCase(out, makeCase(filter, []Value{t.scalar(s), t.mat(m)}, exp...))
		}
	}
	return out
}

func (t *Traits) GenerateMatrixVectorToVectorCases(ms [][][]float64, vs [][]float64, filter Filter, ops ...MatrixVectorToVector) []Case {
	var out []Case
	for _, m := range ms {
		m = t.quantizeMatrix(m)
		for _, v := range vs {
			v = t.quantizeVector(v)
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.PointMatrix(m), t.PointVector(v))
			}
			out = appendCase(out, makeCase(filter, []Value{t.mat(m), t.vec(v)}, exp...))
		}
	}
	return out
}

func (t *Traits) GenerateVectorMatrixToVectorCases(vs [][]float64, ms [][][]float64, filter Filter, ops ...VectorMatrixToVector) []Case {
	var out []Case
	for _, v := range vs {
		v = t.quantizeVector(v)
		for _, m := range ms {
			m = t.quantizeMatrix(m)
			exp := make([]Acceptance, len(ops))
			for i, op := range ops {
				exp[i] = op(t.PointVector(v), t.PointMatrix(m))
			}
			out = appendCase(out, makeCase(filter, []Value{t.vec(v), t.mat(m)}, exp...))
		}
	}
	return out
}

// GenerateU32ToVectorCases is for the unpack builtins, whose input is a
// bit pattern rather than a float.
func (t *Traits) GenerateU32ToVectorCases(ns []uint32, filter Filter, ops ...U32ToVector) []Case {
	var out []Case
	for _, n := range ns {
		exp := make([]Acceptance, len(ops))
		for i, op := range ops {
			exp[i] = op(n)
		}
		out = appendCase(out, makeCase(filter, []Value{U32(n)}, exp...))
	}
	return out
}
