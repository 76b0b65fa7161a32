package fp

import (
	"math"
)

// Unpack2x16FloatInterval unpacks two f16 values, low bits first. An f16
// subnormal may be flushed, so it spans to zero. An infinity or NaN in
// either half makes the whole vector unbounded. Only F32 defines it.
func (t *Traits) Unpack2x16FloatInterval(n uint32) Vector {
	t.mustSupport(OpUnpack)
	out := make(Vector, 2)
	for i := range out {
		v := Float16FromBits(uint16(n >> (16 * i)))
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return t.UnboundedVector(2)
		case F16Traits.IsSubnormal(v):
			out[i] = Span(t.zero, t.Point(v))
		default:
			out[i] = t.CorrectlyRoundedInterval(t.Point(v))
		}
	}
	return out
}

// Unpack2x16SnormInterval unpacks two signed 16 bit normalized values, low
// bits first, with 3 ULP of error.
func (t *Traits) Unpack2x16SnormInterval(n uint32) Vector {
	t.mustSupport(OpUnpack)
	out := make(Vector, 2)
	for i := range out {
		v := float64(int16(n >> (16 * i)))
		out[i] = t.ULPInterval(math.Max(v/32767, -1), 3)
	}
	return out
}

// Unpack2x16UnormInterval unpacks two unsigned 16 bit normalized values, low
// bits first, with 3 ULP of error.
func (t *Traits) Unpack2x16UnormInterval(n uint32) Vector {
	t.mustSupport(OpUnpack)
	out := make(Vector, 2)
	for i := range out {
		v := float64(uint16(n >> (16 * i)))
		out[i] = t.ULPInterval(v/65535, 3)
	}
	return out
}

// Unpack4x8SnormInterval unpacks four signed 8 bit normalized values, low
// bits first, with 3 ULP of error.
func (t *Traits) Unpack4x8SnormInterval(n uint32) Vector {
	t.mustSupport(OpUnpack)
	out := make(Vector, 4)
	for i := range out {
		v := float64(int8(n >> (8 * i)))
		out[i] = t.ULPInterval(math.Max(v/127, -1), 3)
	}
	return out
}

// Unpack4x8UnormInterval unpacks four unsigned 8 bit normalized values, low
// bits first, with 3 ULP of error.
func (t *Traits) Unpack4x8UnormInterval(n uint32) Vector {
	t.mustSupport(OpUnpack)
	out := make(Vector, 4)
	for i := range out {
		v := float64(uint8(n >> (8 * i)))
		out[i] = t.ULPInterval(v/255, 3)
	}
	return out
}
