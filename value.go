package fp

import (
	"fmt"
	"strings"
)

// Value is a concrete input or result in a Case. It is one of Scalar, Vec,
// Mat, I32 or U32.
type Value interface {
	fmt.Stringer
	isValue()
}

// Scalar is a float value of a kind.
type Scalar struct {
	Kind Kind
	V    float64
}

// Vec is a vector of float values of a kind.
type Vec struct {
	Kind Kind
	V    []float64
}

// Mat is a column-major matrix of float values of a kind: V[col][row].
type Mat struct {
	Kind Kind
	V    [][]float64
}

type I32 int32

type U32 uint32

func (Scalar) isValue() {}
func (Vec) isValue()    {}
func (Mat) isValue()    {}
func (I32) isValue()    {}
func (U32) isValue()    {}

func (s Scalar) String() string { return s.Kind.String() + "(" + formatFloat(s.V) + ")" }
func (i I32) String() string    { return fmt.Sprintf("i32(%d)", int32(i)) }
func (u U32) String() string    { return fmt.Sprintf("u32(%d)", uint32(u)) }

func (v Vec) String() string {
	return fmt.Sprintf("vec%d<%s>(%s)", len(v.V), v.Kind, joinFloats(v.V))
}

func (m Mat) String() string {
	cols := make([]string, len(m.V))
	for i, c := range m.V {
		cols[i] = joinFloats(c)
	}
	rows := 0
	if len(m.V) > 0 {
		rows = len(m.V[0])
	}
	return fmt.Sprintf("mat%dx%d<%s>(%s)", len(m.V), rows, m.Kind, strings.Join(cols, ", "))
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ", ")
}

// Acceptance is an expected result that a concrete Value can be checked
// against. Interval, Vector and Matrix implement it.
type Acceptance interface {
	Accepts(v Value) bool
	IsFinite() bool
	String() string
}

// Accepts reports whether v is a Scalar inside the interval.
func (i Interval) Accepts(v Value) bool {
	s, ok := v.(Scalar)
	return ok && i.Contains(s.V)
}

// Accepts reports whether v is a Vec of the same length whose components lie
// inside the corresponding intervals.
func (v Vector) Accepts(val Value) bool {
	vec, ok := val.(Vec)
	if !ok || len(vec.V) != len(v) {
		return false
	}
	for i := range v {
		if !v[i].Contains(vec.V[i]) {
			return false
		}
	}
	return true
}

// Accepts reports whether v is a Mat of the same shape whose elements lie
// inside the corresponding intervals.
func (m Matrix) Accepts(val Value) bool {
	mat, ok := val.(Mat)
	if !ok || len(mat.V) != len(m) {
		return false
	}
	for c := range m {
		if !Vector(m[c]).Accepts(Vec{V: mat.V[c]}) {
			return false
		}
	}
	return true
}

// AnyOf is a disjunction: a value is accepted if any member accepts it.
type AnyOf []Acceptance

func (a AnyOf) Accepts(v Value) bool {
	for _, e := range a {
		if e.Accepts(v) {
			return true
		}
	}
	return false
}

// IsFinite reports whether every member is finite.
func (a AnyOf) IsFinite() bool {
	for _, e := range a {
		if !e.IsFinite() {
			return false
		}
	}
	return true
}

func (a AnyOf) String() string {
	if len(a) == 1 {
		return a[0].String()
	}
	parts := make([]string, len(a))
	for i, e := range a {
		parts[i] = e.String()
	}
	return "anyOf(" + strings.Join(parts, ", ") + ")"
}

// Case is one input tuple and the results an implementation may produce for
// it.
type Case struct {
	Input    []Value
	Expected AnyOf
}

func (c Case) String() string {
	parts := make([]string, len(c.Input))
	for i, v := range c.Input {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + c.Expected.String()
}
