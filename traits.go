package fp

import (
	"errors"
	"fmt"
)

// ErrUnsupported is matched by every *UnsupportedError.
var ErrUnsupported = errors.New("fp: operation not supported for kind")

// UnsupportedError is the panic value raised when an operation is called on a
// kind that does not define it.
type UnsupportedError struct {
	Kind Kind
	Op   string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("fp: %s is not supported for %s", e.Op, e.Kind)
}

func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// Traits holds the numeric primitives, operation framework and builtin
// library of one Kind. There is exactly one *Traits per kind; it is built
// during package initialisation and never modified afterwards, so it is safe
// for concurrent use.
type Traits struct {
	kind Kind
	p    precision
	c    Constants

	unbounded Interval
	zero      Interval

	unsupported map[string]bool

	arith arithOps
	trans transcendentalOps
	geo   geometricOps
}

var (
	F16Traits      *Traits
	F32Traits      *Traits
	AbstractTraits *Traits
)

func init() {
	F16Traits = newTraits(F16, f16Precision{}, f16Constants)
	F32Traits = newTraits(F32, f32Precision{}, f32Constants)
	AbstractTraits = newTraits(Abstract, abstractPrecision{}, abstractConstants)
}

// For returns the Traits of kind k. It panics if k is not a valid Kind.
func For(k Kind) *Traits {
	switch k {
	case F16:
		return F16Traits
	case F32:
		return F32Traits
	case Abstract:
		return AbstractTraits
	default:
		panic(fmt.Errorf("fp: unknown kind %d", uint8(k)))
	}
}

// Operation names used by Supports. They are the WGSL builtin names, plus the
// operator names for the arithmetic operators.
const (
	OpAcos          = "acos"
	OpAcosh         = "acosh"
	OpAsin          = "asin"
	OpAsinh         = "asinh"
	OpAtan          = "atan"
	OpAtan2         = "atan2"
	OpAtanh         = "atanh"
	OpCos           = "cos"
	OpCosh          = "cosh"
	OpDistance      = "distance"
	OpDivision      = "division"
	OpExp           = "exp"
	OpExp2          = "exp2"
	OpInverseSqrt   = "inverseSqrt"
	OpLength        = "length"
	OpLog           = "log"
	OpLog2          = "log2"
	OpNormalize     = "normalize"
	OpPow           = "pow"
	OpQuantizeToF16 = "quantizeToF16"
	OpRefract       = "refract"
	OpRemainder     = "remainder"
	OpSin           = "sin"
	OpSinh          = "sinh"
	OpSmoothStep    = "smoothstep"
	OpSqrt          = "sqrt"
	OpTan           = "tan"
	OpTanh          = "tanh"
	OpUnpack        = "unpack"
)

// abstractUnsupported lists the operations whose accuracy is defined by an
// ULP or absolute error bound that only exists for concrete kinds, and the
// operations composed from them.
var abstractUnsupported = []string{
	OpAcos, OpAcosh, OpAsin, OpAsinh, OpAtan, OpAtan2, OpAtanh, OpCos, OpCosh,
	OpDistance, OpDivision, OpExp, OpExp2, OpInverseSqrt, OpLength, OpLog,
	OpLog2, OpNormalize, OpPow, OpQuantizeToF16, OpRefract, OpRemainder, OpSin,
	OpSinh, OpSmoothStep, OpSqrt, OpTan, OpTanh, OpUnpack,
}

func newTraits(kind Kind, p precision, c Constants) *Traits {
	t := &Traits{
		kind:        kind,
		p:           p,
		c:           c,
		unsupported: map[string]bool{},
	}
	t.unbounded = newInterval(kind, negInf, posInf)
	t.zero = newInterval(kind, 0, 0)

	switch kind {
	case F16:
		t.unsupported[OpQuantizeToF16] = true
		t.unsupported[OpUnpack] = true
	case Abstract:
		for _, op := range abstractUnsupported {
			t.unsupported[op] = true
		}
	}

	t.initArithOps()
	t.initTranscendentalOps()
	t.initGeometricOps()
	return t
}

func (t *Traits) Kind() Kind { return t.kind }

// Constants returns the range constants of the kind.
func (t *Traits) Constants() Constants { return t.c }

// Supports reports whether the named operation is defined for the kind.
// Calling an unsupported operation panics with an *UnsupportedError.
func (t *Traits) Supports(op string) bool {
	return !t.unsupported[op]
}

func (t *Traits) mustSupport(op string) {
	if t.unsupported[op] {
		panic(&UnsupportedError{Kind: t.kind, Op: op})
	}
}
