package caseset

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	fp "github.com/shabbyrobe/go-fp"
)

const (
	tagScalar byte = iota + 1
	tagVec
	tagMat
	tagI32
	tagU32
)

const (
	tagInterval byte = iota + 1
	tagVector
	tagMatrix
)

type encoder struct {
	buf []byte
}

func (e *encoder) byte(b byte)     { e.buf = append(e.buf, b) }
func (e *encoder) uvarint(n int)   { e.buf = binary.AppendUvarint(e.buf, uint64(n)) }
func (e *encoder) uint32(n uint32) { e.buf = binary.LittleEndian.AppendUint32(e.buf, n) }
func (e *encoder) float(x float64) { e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(x)) }
func (e *encoder) string(s string) { e.uvarint(len(s)); e.buf = append(e.buf, s...) }

func (e *encoder) floats(x []float64) {
	for _, v := range x {
		e.float(v)
	}
}

func (e *encoder) interval(i fp.Interval) error {
	var err error
	e.buf, err = i.AppendBinary(e.buf)
	return err
}

func (e *encoder) value(v fp.Value) error {
	switch v := v.(type) {
	case fp.Scalar:
		e.byte(tagScalar)
		e.byte(byte(v.Kind))
		e.float(v.V)
	case fp.Vec:
		e.byte(tagVec)
		e.byte(byte(v.Kind))
		e.byte(byte(len(v.V)))
		e.floats(v.V)
	case fp.Mat:
		e.byte(tagMat)
		e.byte(byte(v.Kind))
		e.byte(byte(len(v.V)))
		rows := 0
		if len(v.V) > 0 {
			rows = len(v.V[0])
		}
		e.byte(byte(rows))
		for _, c := range v.V {
			if len(c) != rows {
				return fmt.Errorf("caseset: ragged matrix %s", v)
			}
			e.floats(c)
		}
	case fp.I32:
		e.byte(tagI32)
		e.uint32(uint32(v))
	case fp.U32:
		e.byte(tagU32)
		e.uint32(uint32(v))
	default:
		return fmt.Errorf("caseset: cannot encode value %T", v)
	}
	return nil
}

func (e *encoder) acceptance(a fp.Acceptance) error {
	switch a := a.(type) {
	case fp.Interval:
		e.byte(tagInterval)
		return e.interval(a)
	case fp.Vector:
		e.byte(tagVector)
		e.byte(byte(len(a)))
		for _, i := range a {
			if err := e.interval(i); err != nil {
				return err
			}
		}
	case fp.Matrix:
		e.byte(tagMatrix)
		e.byte(byte(a.Cols()))
		e.byte(byte(a.Rows()))
		for _, c := range a {
			if len(c) != a.Rows() {
				return fmt.Errorf("caseset: ragged matrix %s", a)
			}
			for _, i := range c {
				if err := e.interval(i); err != nil {
					return err
				}
			}
		}
	default:
		return fmt.Errorf("caseset: cannot encode expectation %T", a)
	}
	return nil
}

func (e *encoder) cases(cs []fp.Case) error {
	e.uvarint(len(cs))
	for _, c := range cs {
		e.uvarint(len(c.Input))
		for _, v := range c.Input {
			if err := e.value(v); err != nil {
				return err
			}
		}
		e.uvarint(len(c.Expected))
		for _, a := range c.Expected {
			if err := e.acceptance(a); err != nil {
				return err
			}
		}
	}
	return nil
}

// decoder reads from buf, recording the first error. Once err is set every
// read returns a zero value.
type decoder struct {
	buf []byte
	err error
}

func (d *decoder) fail(format string, args ...interface{}) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
	}
	d.buf = nil
}

func (d *decoder) next(n int) []byte {
	if d.err != nil {
		return nil
	}
	if len(d.buf) < n {
		d.fail("unexpected end of payload")
		return nil
	}
	b := d.buf[:n]
	d.buf = d.buf[n:]
	return b
}

func (d *decoder) byte() byte {
	b := d.next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *decoder) uvarint() int {
	if d.err != nil {
		return 0
	}
	n, sz := binary.Uvarint(d.buf)
	if sz <= 0 || n > uint64(len(d.buf)) {
		// Every counted item takes at least one byte, so a count larger
		// than the remaining payload is corrupt.
		d.fail("bad count")
		return 0
	}
	d.buf = d.buf[sz:]
	return int(n)
}

func (d *decoder) uint32() uint32 {
	b := d.next(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *decoder) float() float64 {
	b := d.next(8)
	if b == nil {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

func (d *decoder) string() string {
	return string(d.next(d.uvarint()))
}

func (d *decoder) kind() fp.Kind {
	k := fp.Kind(d.byte())
	if d.err == nil && !slices.Contains(fp.Kinds, k) {
		d.fail("unknown kind %d", uint8(k))
	}
	return k
}

func (d *decoder) floats(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.float()
	}
	return out
}

func (d *decoder) interval() fp.Interval {
	if d.err != nil {
		return fp.Interval{}
	}
	i, n, err := fp.DecodeInterval(d.buf)
	if err != nil {
		d.fail("%v", err)
		return fp.Interval{}
	}
	d.buf = d.buf[n:]
	return i
}

func (d *decoder) value() fp.Value {
	switch tag := d.byte(); tag {
	case tagScalar:
		k := d.kind()
		return fp.Scalar{Kind: k, V: d.float()}
	case tagVec:
		k := d.kind()
		return fp.Vec{Kind: k, V: d.floats(int(d.byte()))}
	case tagMat:
		k := d.kind()
		cols, rows := int(d.byte()), int(d.byte())
		m := make([][]float64, cols)
		for c := range m {
			m[c] = d.floats(rows)
		}
		return fp.Mat{Kind: k, V: m}
	case tagI32:
		return fp.I32(int32(d.uint32()))
	case tagU32:
		return fp.U32(d.uint32())
	default:
		d.fail("unknown value tag %d", tag)
		return nil
	}
}

func (d *decoder) acceptance() fp.Acceptance {
	switch tag := d.byte(); tag {
	case tagInterval:
		return d.interval()
	case tagVector:
		v := make(fp.Vector, d.byte())
		for i := range v {
			v[i] = d.interval()
		}
		return v
	case tagMatrix:
		cols, rows := int(d.byte()), int(d.byte())
		m := make(fp.Matrix, cols)
		for c := range m {
			m[c] = make([]fp.Interval, rows)
			for r := range m[c] {
				m[c][r] = d.interval()
			}
		}
		return m
	default:
		d.fail("unknown expectation tag %d", tag)
		return nil
	}
}

func (d *decoder) cases() []fp.Case {
	n := d.uvarint()
	cs := make([]fp.Case, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		var c fp.Case
		c.Input = make([]fp.Value, d.uvarint())
		for j := range c.Input {
			c.Input[j] = d.value()
		}
		c.Expected = make(fp.AnyOf, d.uvarint())
		for j := range c.Expected {
			c.Expected[j] = d.acceptance()
		}
		cs = append(cs, c)
	}
	return cs
}
