package fp

import (
	"math"
)

// Direction selects which neighbour NextAfter* steps to.
type Direction int

const (
	Positive Direction = iota + 1
	Negative
)

func (d Direction) String() string {
	switch d {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "Direction(?)"
	}
}

// FlushMode controls whether subnormal values are treated as zero.
type FlushMode int

const (
	NoFlush FlushMode = iota
	Flush
)

func (m FlushMode) String() string {
	if m == Flush {
		return "flush"
	}
	return "no-flush"
}

// bitFormat describes the binary layout of one IEEE-754 format, widened to
// 64 bits so that one stepping routine serves all three.
type bitFormat struct {
	toBits   func(x float64) uint64
	fromBits func(b uint64) float64
	signMask uint64
	expMask  uint64
	c        *Constants
}

var (
	f16Format = bitFormat{
		toBits:   func(x float64) uint64 { return uint64(Float16Bits(x)) },
		fromBits: func(b uint64) float64 { return Float16FromBits(uint16(b)) },
		signMask: signMask16,
		expMask:  expMask16,
		c:        &f16Constants,
	}

	f32Format = bitFormat{
		toBits:   func(x float64) uint64 { return uint64(Float32Bits(x)) },
		fromBits: func(b uint64) float64 { return Float32FromBits(uint32(b)) },
		signMask: signMask32,
		expMask:  expMask32,
		c:        &f32Constants,
	}

	f64Format = bitFormat{
		toBits:   math.Float64bits,
		fromBits: math.Float64frombits,
		signMask: signMask64,
		expMask:  expMask64,
		c:        &abstractConstants,
	}
)

// NextAfterF16 returns the binary16 value adjacent to x in direction dir.
//
// If x is not representable, the result is the representable value beyond
// x in that direction, i.e. one of the two values that x correctly rounds
// to. Zero steps to the smallest subnormal, or to the smallest normal in
// Flush mode. Stepping beyond the largest finite value yields the signed
// infinity. NaN and infinities are returned unchanged.
func NextAfterF16(x float64, dir Direction, mode FlushMode) float64 {
	return f16Format.nextAfter(x, dir, mode)
}

// NextAfterF32 is NextAfterF16 for binary32.
func NextAfterF32(x float64, dir Direction, mode FlushMode) float64 {
	return f32Format.nextAfter(x, dir, mode)
}

// NextAfterF64 is NextAfterF16 for binary64.
func NextAfterF64(x float64, dir Direction, mode FlushMode) float64 {
	return f64Format.nextAfter(x, dir, mode)
}

func (f bitFormat) isSubnormal(x float64) bool {
	return x != 0 && math.Abs(x) < f.c.MinNormal
}

func (f bitFormat) nextAfter(x float64, dir Direction, mode FlushMode) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if dir != Positive && dir != Negative {
		panic("fp: invalid direction")
	}

	if mode == Flush && f.isSubnormal(x) {
		x = math.Copysign(0, x)
	}

	if x == 0 {
		step := f.c.SubnormalMin
		if mode == Flush {
			step = f.c.MinNormal
		}
		if dir == Positive {
			return step
		}
		return -step
	}

	b := f.toBits(x)
	q := f.fromBits(b)

	if (dir == Positive && q <= x) || (dir == Negative && q >= x) {
		// Stepping away from zero increments the magnitude held in the low
		// bits; towards zero decrements it, whatever the sign.
		positive := b&f.signMask == 0
		if positive == (dir == Positive) {
			b++
		} else {
			b--
		}
	}

	if b&f.expMask == f.expMask {
		if b&f.signMask != 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	r := f.fromBits(b)
	if mode == Flush && f.isSubnormal(r) {
		r = math.Copysign(0, r)
	}
	return r
}
