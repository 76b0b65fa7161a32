package catalog

import (
	fp "github.com/shabbyrobe/go-fp"
)

type (
	unaryMethod        func(*fp.Traits, fp.Interval) fp.Interval
	binaryMethod       func(*fp.Traits, fp.Interval, fp.Interval) fp.Interval
	ternaryMethod      func(*fp.Traits, fp.Interval, fp.Interval, fp.Interval) fp.Interval
	vectorScalarMethod func(*fp.Traits, fp.Vector) fp.Interval
	vectorPairMethod   func(*fp.Traits, fp.Vector, fp.Vector) fp.Interval
	vectorMethod       func(*fp.Traits, fp.Vector) fp.Vector
	vectorPairVMethod  func(*fp.Traits, fp.Vector, fp.Vector) fp.Vector
	matrixScalarMethod func(*fp.Traits, fp.Matrix) fp.Interval
	matrixMethod       func(*fp.Traits, fp.Matrix) fp.Matrix
	matrixPairMethod   func(*fp.Traits, fp.Matrix, fp.Matrix) fp.Matrix
	unpackMethod       func(*fp.Traits, uint32) fp.Vector
)

var (
	scalarParam = Param{Shape: Scalar}
	vectorParam = Param{Shape: Vector}
	matrixParam = Param{Shape: Matrix}
)

func params(ps ...Param) []Param { return ps }

func unary(name, expr string, ops []string, ms ...unaryMethod) *Entry {
	return &Entry{
		Name: name, Expr: expr, Ops: ops,
		Params: params(scalarParam), Result: scalarParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fns := make([]fp.ScalarToInterval, len(ms))
			for i, m := range ms {
				fns[i] = func(x fp.Interval) fp.Interval { return m(t, x) }
			}
			return t.GenerateScalarToIntervalCases(scalars(t, o, 1), o.Filter, fns...)
		},
	}
}

func binary(name, expr string, ops []string, ms ...binaryMethod) *Entry {
	return &Entry{
		Name: name, Expr: expr, Ops: ops,
		Params: params(scalarParam, scalarParam), Result: scalarParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fns := make([]fp.ScalarPairToInterval, len(ms))
			for i, m := range ms {
				fns[i] = func(x, y fp.Interval) fp.Interval { return m(t, x, y) }
			}
			xs := scalars(t, o, 2)
			return t.GenerateScalarPairToIntervalCases(xs, xs, o.Filter, fns...)
		},
	}
}

func ternary(name, expr string, ops []string, ms ...ternaryMethod) *Entry {
	return &Entry{
		Name: name, Expr: expr, Ops: ops,
		Params: params(scalarParam, scalarParam, scalarParam), Result: scalarParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fns := make([]fp.ScalarTripleToInterval, len(ms))
			for i, m := range ms {
				fns[i] = func(x, y, z fp.Interval) fp.Interval { return m(t, x, y, z) }
			}
			xs := scalars(t, o, 3)
			return t.GenerateScalarTripleToIntervalCases(xs, xs, xs, o.Filter, fns...)
		},
	}
}

func vectorToScalar(name, expr string, ops []string, m vectorScalarMethod) *Entry {
	return &Entry{
		Name: name, Expr: expr, Ops: ops,
		Params: params(vectorParam), Result: scalarParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fn := func(x fp.Vector) fp.Interval { return m(t, x) }
			return t.GenerateVectorToIntervalCases(vectors(t, o, o.dim()), o.Filter, fn)
		},
	}
}

func vectorPairToScalar(name, expr string, ops []string, m vectorPairMethod) *Entry {
	return &Entry{
		Name: name, Expr: expr, Ops: ops,
		Params: params(vectorParam, vectorParam), Result: scalarParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fn := func(x, y fp.Vector) fp.Interval { return m(t, x, y) }
			vs := vectors(t, o, o.dim())
			return t.GenerateVectorPairToIntervalCases(vs, vs, o.Filter, fn)
		},
	}
}

func vectorToVector(name, expr string, ops []string, m vectorMethod) *Entry {
	return &Entry{
		Name: name, Expr: expr, Ops: ops,
		Params: params(vectorParam), Result: vectorParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fn := func(x fp.Vector) fp.Vector { return m(t, x) }
			return t.GenerateVectorToVectorCases(vectors(t, o, o.dim()), o.Filter, fn)
		},
	}
}

func vectorPairToVector(name, expr string, dim int, ops []string, m vectorPairVMethod) *Entry {
	p := Param{Shape: Vector, Dim: dim}
	return &Entry{
		Name: name, Expr: expr, Ops: ops,
		Params: params(p, p), Result: p,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fn := func(x, y fp.Vector) fp.Vector { return m(t, x, y) }
			d := dim
			if d == 0 {
				d = o.dim()
			}
			vs := vectors(t, o, d)
			return t.GenerateVectorPairToVectorCases(vs, vs, o.Filter, fn)
		},
	}
}

func matrixToScalar(name, expr string, m matrixScalarMethod) *Entry {
	return &Entry{
		Name: name, Expr: expr,
		Params: params(matrixParam), Result: scalarParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fn := func(x fp.Matrix) fp.Interval { return m(t, x) }
			return t.GenerateMatrixToScalarCases(matrices(t, o), o.Filter, fn)
		},
	}
}

func matrixToMatrix(name, expr string, m matrixMethod) *Entry {
	return &Entry{
		Name: name, Expr: expr,
		Params: params(matrixParam), Result: matrixParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fn := func(x fp.Matrix) fp.Matrix { return m(t, x) }
			return t.GenerateMatrixToMatrixCases(matrices(t, o), o.Filter, fn)
		},
	}
}

func matrixPair(name, expr string, m matrixPairMethod) *Entry {
	return &Entry{
		Name: name, Expr: expr,
		Params: params(matrixParam, matrixParam), Result: matrixParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fn := func(x, y fp.Matrix) fp.Matrix { return m(t, x, y) }
			ms := matrices(t, o)
			return t.GenerateMatrixPairToMatrixCases(ms, ms, o.Filter, fn)
		},
	}
}

func unpack(name string, dim int, m unpackMethod) *Entry {
	return &Entry{
		Name: name, Expr: name + "(%s)", Ops: []string{fp.OpUnpack},
		Params: params(Param{Shape: U32}), Result: Param{Shape: Vector, Dim: dim},
		gen: func(t *fp.Traits, o Options) []fp.Case {
			fn := func(n uint32) fp.Vector { return m(t, n) }
			return t.GenerateU32ToVectorCases(packed(o), o.Filter, fn)
		},
	}
}

func ops(names ...string) []string { return names }

var entries = map[string]*Entry{}

func register(es ...*Entry) {
	for _, e := range es {
		if _, ok := entries[e.Name]; ok {
			panic("catalog: duplicate entry " + e.Name)
		}
		entries[e.Name] = e
	}
}

func init() {
	register(
		unary("abs", "abs(%s)", nil, (*fp.Traits).AbsInterval),
		unary("acos", "acos(%s)", ops(fp.OpAcos), (*fp.Traits).AcosInterval),
		unary("acosh", "acosh(%s)", ops(fp.OpAcosh), (*fp.Traits).AcoshPrimaryInterval, (*fp.Traits).AcoshAlternativeInterval),
		unary("asin", "asin(%s)", ops(fp.OpAsin), (*fp.Traits).AsinInterval),
		unary("asinh", "asinh(%s)", ops(fp.OpAsinh), (*fp.Traits).AsinhInterval),
		unary("atan", "atan(%s)", ops(fp.OpAtan), (*fp.Traits).AtanInterval),
		unary("atanh", "atanh(%s)", ops(fp.OpAtanh), (*fp.Traits).AtanhInterval),
		unary("ceil", "ceil(%s)", nil, (*fp.Traits).CeilInterval),
		unary("cos", "cos(%s)", ops(fp.OpCos), (*fp.Traits).CosInterval),
		unary("cosh", "cosh(%s)", ops(fp.OpCosh), (*fp.Traits).CoshInterval),
		unary("degrees", "degrees(%s)", nil, (*fp.Traits).DegreesInterval),
		unary("exp", "exp(%s)", ops(fp.OpExp), (*fp.Traits).ExpInterval),
		unary("exp2", "exp2(%s)", ops(fp.OpExp2), (*fp.Traits).Exp2Interval),
		unary("floor", "floor(%s)", nil, (*fp.Traits).FloorInterval),
		unary("fract", "fract(%s)", nil, (*fp.Traits).FractInterval),
		unary("inverseSqrt", "inverseSqrt(%s)", ops(fp.OpInverseSqrt), (*fp.Traits).InverseSqrtInterval),
		unary("length", "length(%s)", ops(fp.OpLength), (*fp.Traits).LengthInterval),
		unary("log", "log(%s)", ops(fp.OpLog), (*fp.Traits).LogInterval),
		unary("log2", "log2(%s)", ops(fp.OpLog2), (*fp.Traits).Log2Interval),
		unary("modf_fract", "modf(%s).fract", nil, (*fp.Traits).ModfFractInterval),
		unary("modf_whole", "modf(%s).whole", nil, (*fp.Traits).ModfWholeInterval),
		unary("negation", "-(%s)", nil, (*fp.Traits).NegationInterval),
		unary("quantizeToF16", "quantizeToF16(%s)", ops(fp.OpQuantizeToF16), (*fp.Traits).QuantizeToF16Interval),
		unary("radians", "radians(%s)", nil, (*fp.Traits).RadiansInterval),
		unary("round", "round(%s)", nil, (*fp.Traits).RoundInterval),
		unary("saturate", "saturate(%s)", nil, (*fp.Traits).SaturateInterval),
		unary("sign", "sign(%s)", nil, (*fp.Traits).SignInterval),
		unary("sin", "sin(%s)", ops(fp.OpSin), (*fp.Traits).SinInterval),
		unary("sinh", "sinh(%s)", ops(fp.OpSinh), (*fp.Traits).SinhInterval),
		unary("sqrt", "sqrt(%s)", ops(fp.OpSqrt), (*fp.Traits).SqrtInterval),
		unary("tan", "tan(%s)", ops(fp.OpTan), (*fp.Traits).TanInterval),
		unary("tanh", "tanh(%s)", ops(fp.OpTanh), (*fp.Traits).TanhInterval),
		unary("trunc", "trunc(%s)", nil, (*fp.Traits).TruncInterval),

		binary("addition", "(%s + %s)", nil, (*fp.Traits).AdditionInterval),
		binary("atan2", "atan2(%s, %s)", ops(fp.OpAtan2), (*fp.Traits).Atan2Interval),
		binary("distance", "distance(%s, %s)", ops(fp.OpDistance), (*fp.Traits).DistanceInterval),
		binary("division", "(%s / %s)", ops(fp.OpDivision), (*fp.Traits).DivisionInterval),
		binary("max", "max(%s, %s)", nil, (*fp.Traits).MaxInterval),
		binary("min", "min(%s, %s)", nil, (*fp.Traits).MinInterval),
		binary("multiplication", "(%s * %s)", nil, (*fp.Traits).MultiplicationInterval),
		binary("pow", "pow(%s, %s)", ops(fp.OpPow), (*fp.Traits).PowInterval),
		binary("remainder", "(%s %% %s)", ops(fp.OpRemainder), (*fp.Traits).RemainderInterval),
		binary("step", "step(%s, %s)", nil, (*fp.Traits).StepInterval),
		binary("subtraction", "(%s - %s)", nil, (*fp.Traits).SubtractionInterval),

		ternary("clamp", "clamp(%s, %s, %s)", nil, (*fp.Traits).ClampMedianInterval, (*fp.Traits).ClampMinMaxInterval),
		ternary("fma", "fma(%s, %s, %s)", nil, (*fp.Traits).FmaInterval),
		ternary("mix", "mix(%s, %s, %s)", nil, (*fp.Traits).MixImpreciseInterval, (*fp.Traits).MixPreciseInterval),
		ternary("smoothstep", "smoothstep(%s, %s, %s)", ops(fp.OpSmoothStep), (*fp.Traits).SmoothStepInterval),

		vectorPairToScalar("dot", "dot(%s, %s)", nil, (*fp.Traits).DotInterval),
		vectorToScalar("length_vec", "length(%s)", ops(fp.OpLength), (*fp.Traits).LengthVectorInterval),
		vectorPairToScalar("distance_vec", "distance(%s, %s)", ops(fp.OpDistance), (*fp.Traits).DistanceVectorInterval),
		vectorToVector("normalize", "normalize(%s)", ops(fp.OpNormalize), (*fp.Traits).NormalizeInterval),
		vectorPairToVector("cross", "cross(%s, %s)", 3, nil, (*fp.Traits).CrossInterval),
		vectorPairToVector("reflect", "reflect(%s, %s)", 0, nil, (*fp.Traits).ReflectInterval),
		refractEntry(),
		faceForwardEntry(),
		vectorScalarEntry(),

		matrixToScalar("determinant", "determinant(%s)", (*fp.Traits).DeterminantInterval),
		matrixToMatrix("transpose", "transpose(%s)", (*fp.Traits).TransposeInterval),
		matrixPair("addition_mat", "(%s + %s)", (*fp.Traits).AdditionMatrixMatrixInterval),
		matrixPair("subtraction_mat", "(%s - %s)", (*fp.Traits).SubtractionMatrixMatrixInterval),
		matrixPair("multiplication_mat", "(%s * %s)", (*fp.Traits).MultiplicationMatrixMatrixInterval),
		matrixVectorEntry(),

		ldexpEntry(),

		unpack("unpack2x16float", 2, (*fp.Traits).Unpack2x16FloatInterval),
		unpack("unpack2x16snorm", 2, (*fp.Traits).Unpack2x16SnormInterval),
		unpack("unpack2x16unorm", 2, (*fp.Traits).Unpack2x16UnormInterval),
		unpack("unpack4x8snorm", 4, (*fp.Traits).Unpack4x8SnormInterval),
		unpack("unpack4x8unorm", 4, (*fp.Traits).Unpack4x8UnormInterval),
	)
}

func refractEntry() *Entry {
	return &Entry{
		Name: "refract", Expr: "refract(%s, %s, %s)", Ops: ops(fp.OpRefract),
		Params: params(vectorParam, vectorParam, scalarParam), Result: vectorParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			vs := t.SparseVectorRange(o.dim())
			return t.GenerateVectorPairScalarToVectorCases(vs, vs, t.SparseScalarRange(), o.Filter, t.RefractInterval)
		},
	}
}

func faceForwardEntry() *Entry {
	return &Entry{
		Name: "faceForward", Expr: "faceForward(%s, %s, %s)",
		Params: params(vectorParam, vectorParam, vectorParam), Result: vectorParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			vs := t.SparseVectorRange(o.dim())
			return t.GenerateVectorTripleToVectorsCases(vs, vs, vs, o.Filter, t.FaceForwardIntervals)
		},
	}
}

func vectorScalarEntry() *Entry {
	return &Entry{
		Name: "multiplication_vec_scalar", Expr: "(%s * %s)",
		Params: params(vectorParam, scalarParam), Result: vectorParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			return t.GenerateVectorScalarToVectorCases(vectors(t, o, o.dim()), t.SparseScalarRange(), o.Filter, t.MultiplicationVectorScalarInterval)
		},
	}
}

func matrixVectorEntry() *Entry {
	return &Entry{
		Name: "multiplication_mat_vec", Expr: "(%s * %s)",
		Params: params(matrixParam, vectorParam), Result: vectorParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			return t.GenerateMatrixVectorToVectorCases(matrices(t, o), t.SparseVectorRange(o.dim()), o.Filter, t.MultiplicationMatrixVectorInterval)
		},
	}
}

func ldexpEntry() *Entry {
	return &Entry{
		Name: "ldexp", Expr: "ldexp(%s, %s)",
		Params: params(scalarParam, Param{Shape: I32}), Result: scalarParam,
		gen: func(t *fp.Traits, o Options) []fp.Case {
			return t.GenerateScalarI32ToIntervalCases(scalars(t, o, 1), exponents, o.Filter, t.LdexpInterval)
		},
	}
}
