/*
Package fp computes acceptance intervals: the set of results a conformant
implementation may produce for a floating point builtin, given its inputs
and a precision kind (f16, f32 or abstract).

Intervals are value types; all operations return new values. Every kind has
one immutable *Traits, which carries the kind's numeric primitives, the
operation framework and the builtin library:

	t := fp.For(fp.F32)
	third := t.DivisionInterval(t.Point(1), t.Point(3)) // 2.5 ULP either side of 1/3
	fmt.Println(third.Contains(float64(float32(1.0) / 3)))
	// Output: true

An unbounded interval means "no constraint". It is produced, never
reported as an error, whenever a result is indeterminate: an input outside
an operation's domain, a discontinuity, or an overflow of the kind's
range. Unboundedness propagates through every composition.

Inputs for an external test runner are produced by the Generate*Cases
methods, which quantize their inputs and pair them with the acceptance
intervals of one or more builtin formulas:

	cases := t.GenerateScalarToIntervalCases(t.SparseScalarRange(), fp.FilterFinite, t.AbsInterval)

Intervals support the following marshalling interfaces:

	- fmt.Stringer
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler

NaN is never a valid point input. Passing one to a primitive, mixing kinds
in a span, or calling an operation a kind does not define panics.
*/
package fp
