package fp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Intervals are encoded as a kind byte and a flag byte. The unbounded flag
// stands for the whole interval; otherwise two little-endian binary64
// endpoints follow.
const (
	flagBounded   = 0
	flagUnbounded = 1

	intervalHeaderSize = 2
	intervalBodySize   = 16

	// MaxIntervalSize is the largest encoding of an Interval.
	MaxIntervalSize = intervalHeaderSize + intervalBodySize
)

// ErrInvalidEncoding is wrapped by every decoding error.
var ErrInvalidEncoding = errors.New("fp: invalid interval encoding")

// MarshalBinary implements encoding.BinaryMarshaler.
func (i Interval) MarshalBinary() ([]byte, error) {
	return i.AppendBinary(make([]byte, 0, MaxIntervalSize))
}

// AppendBinary appends the encoding of i to b.
func (i Interval) AppendBinary(b []byte) ([]byte, error) {
	if !i.kind.valid() {
		return b, fmt.Errorf("fp: cannot encode interval of %s", i.kind)
	}
	if i.isUnbounded() {
		return append(b, byte(i.kind), flagUnbounded), nil
	}
	b = append(b, byte(i.kind), flagBounded)
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(i.begin))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(i.end))
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly one interval.
func (i *Interval) UnmarshalBinary(data []byte) error {
	v, n, err := DecodeInterval(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidEncoding, len(data)-n)
	}
	*i = v
	return nil
}

// DecodeInterval decodes the interval at the start of b and returns it along
// with the number of bytes it occupied.
func DecodeInterval(b []byte) (Interval, int, error) {
	if len(b) < intervalHeaderSize {
		return Interval{}, 0, fmt.Errorf("%w: short header", ErrInvalidEncoding)
	}

	kind := Kind(b[0])
	if !kind.valid() {
		return Interval{}, 0, fmt.Errorf("%w: unknown kind %d", ErrInvalidEncoding, b[0])
	}

	switch b[1] {
	case flagUnbounded:
		return For(kind).unbounded, intervalHeaderSize, nil
	case flagBounded:
	default:
		return Interval{}, 0, fmt.Errorf("%w: unknown flag %d", ErrInvalidEncoding, b[1])
	}

	if len(b) < MaxIntervalSize {
		return Interval{}, 0, fmt.Errorf("%w: short body", ErrInvalidEncoding)
	}
	begin := math.Float64frombits(binary.LittleEndian.Uint64(b[2:]))
	end := math.Float64frombits(binary.LittleEndian.Uint64(b[10:]))
	if math.IsNaN(begin) || math.IsNaN(end) {
		return Interval{}, 0, fmt.Errorf("%w: NaN endpoint", ErrInvalidEncoding)
	}
	if begin > end {
		return Interval{}, 0, fmt.Errorf("%w: begin %g is greater than end %g", ErrInvalidEncoding, begin, end)
	}
	return Interval{kind: kind, begin: begin, end: end}, MaxIntervalSize, nil
}
