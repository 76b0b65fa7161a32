package fp

import (
	"math"
)

// precision is the per-kind numeric surface everything else is built from.
// Each kind has exactly one implementation, chosen in newTraits.
type precision interface {
	quantize(x float64) float64
	nextAfter(x float64, dir Direction, mode FlushMode) float64
	toBits(x float64) uint64
	fromBits(b uint64) float64
}

type f16Precision struct{}

func (f16Precision) quantize(x float64) float64 { return quantizeF16(x) }
func (f16Precision) toBits(x float64) uint64    { return f16Format.toBits(x) }
func (f16Precision) fromBits(b uint64) float64  { return f16Format.fromBits(b) }
func (f16Precision) nextAfter(x float64, dir Direction, mode FlushMode) float64 {
	return f16Format.nextAfter(x, dir, mode)
}

type f32Precision struct{}

func (f32Precision) quantize(x float64) float64 { return float64(quantizeF32(x)) }
func (f32Precision) toBits(x float64) uint64    { return f32Format.toBits(x) }
func (f32Precision) fromBits(b uint64) float64  { return f32Format.fromBits(b) }
func (f32Precision) nextAfter(x float64, dir Direction, mode FlushMode) float64 {
	return f32Format.nextAfter(x, dir, mode)
}

type abstractPrecision struct{}

func (abstractPrecision) quantize(x float64) float64 { return x }
func (abstractPrecision) toBits(x float64) uint64    { return math.Float64bits(x) }
func (abstractPrecision) fromBits(b uint64) float64  { return math.Float64frombits(b) }
func (abstractPrecision) nextAfter(x float64, dir Direction, mode FlushMode) float64 {
	return f64Format.nextAfter(x, dir, mode)
}

// Quantize rounds x to the nearest value representable in the kind, ties
// to even. It panics if x is NaN.
func (t *Traits) Quantize(x float64) float64 {
	if math.IsNaN(x) {
		panic("fp: quantize of NaN")
	}
	return t.p.quantize(x)
}

// Bits returns the bit pattern of x quantized to the kind, widened to 64 bits.
func (t *Traits) Bits(x float64) uint64 { return t.p.toBits(x) }

// FromBits interprets the low bits of b as a value of the kind.
func (t *Traits) FromBits(b uint64) float64 { return t.p.fromBits(b) }

// NextAfter returns the value of the kind adjacent to x in direction dir. See
// NextAfterF16 for the edge cases.
func (t *Traits) NextAfter(x float64, dir Direction, mode FlushMode) float64 {
	return t.p.nextAfter(x, dir, mode)
}

// CorrectlyRounded returns the values of the kind that x may round to: x
// itself if it is representable, otherwise the representable values
// immediately below and above it, in ascending order.
//
// Beyond the largest finite value, but below the overflow threshold, the pair
// is the largest finite value and the infinity. At or beyond the threshold
// only the infinity remains.
func (t *Traits) CorrectlyRounded(x float64) []float64 {
	if math.IsNaN(x) {
		panic("fp: correctly rounded values of NaN")
	}

	c := &t.c
	switch {
	case x >= c.OverflowThreshold:
		return []float64{math.Inf(1)}
	case x <= -c.OverflowThreshold:
		return []float64{math.Inf(-1)}
	case x > c.Max:
		return []float64{c.Max, math.Inf(1)}
	case x < -c.Max:
		return []float64{math.Inf(-1), -c.Max}
	}

	q := t.p.quantize(x)
	if q == x {
		return []float64{x}
	}
	if q > x {
		return []float64{t.p.nextAfter(x, Negative, NoFlush), q}
	}
	return []float64{q, t.p.nextAfter(x, Positive, NoFlush)}
}

// IsFinite reports whether x is a finite value inside the kind's range. NaN
// is not finite.
func (t *Traits) IsFinite(x float64) bool {
	return x >= -t.c.Max && x <= t.c.Max
}

// IsSubnormal reports whether x is non-zero and smaller in magnitude than the
// smallest normal value of the kind.
func (t *Traits) IsSubnormal(x float64) bool {
	return x != 0 && math.Abs(x) < t.c.MinNormal
}

// FlushSubnormal maps a subnormal x to zero of the same sign. Other values
// are returned unchanged.
func (t *Traits) FlushSubnormal(x float64) float64 {
	if t.IsSubnormal(x) {
		return math.Copysign(0, x)
	}
	return x
}

// OneULP returns the distance from x to its nearest neighbour in the kind.
//
// For a representable x that is the smaller of the gaps to the two adjacent
// values. For a value between two representable values it is the width of
// that gap. At or beyond the edge of the finite range it is Constants.MaxULP.
// In Flush mode a subnormal x is treated as zero, and the neighbours of zero
// are the smallest normal values.
func (t *Traits) OneULP(x float64, mode FlushMode) float64 {
	if math.IsNaN(x) {
		panic("fp: ULP of NaN")
	}
	if mode == Flush {
		x = t.FlushSubnormal(x)
	}

	c := &t.c
	if x >= c.Max || x <= -c.Max {
		return c.MaxULP
	}

	before := t.p.nextAfter(x, Negative, mode)
	after := t.p.nextAfter(x, Positive, mode)
	if t.p.quantize(x) == x {
		return math.Min(x-before, after-x)
	}
	return after - before
}

// AddFlushedIfNeeded returns values with a zero appended if any of them is
// subnormal, since an implementation may flush that operand. The zero takes
// the sign of the first subnormal. The result holds no duplicates.
func (t *Traits) AddFlushedIfNeeded(values []float64) []float64 {
	out := make([]float64, len(values), len(values)+1)
	copy(out, values)
	for _, v := range values {
		if t.IsSubnormal(v) {
			out = append(out, math.Copysign(0, v))
			break
		}
	}
	return uniqueFloats(out)
}
