package fp

import (
	"math"
)

// Float16Bits returns the IEEE-754 binary16 representation of x, rounded to
// nearest with ties to even. Values beyond the binary16 range become the
// signed infinity, values below half the smallest subnormal become signed
// zero. NaN becomes the quiet NaN 0x7e00 with x's sign.
func Float16Bits(x float64) uint16 {
	b := math.Float64bits(x)
	sign := uint16(b>>48) & signMask16
	exp := int(b>>shift64) & 0x7ff
	frac := b & (1<<shift64 - 1)

	switch {
	case exp == 0x7ff:
		if frac != 0 {
			return sign | 0x7e00
		}
		return sign | expMask16
	case exp == 0:
		// Zero, or a binary64 subnormal, which is far below anything binary16
		// can represent.
		return sign
	}

	e := exp - bias64 + bias16
	if e >= 0x1f {
		return sign | expMask16
	}

	mant := frac | 1<<shift64

	// Normal results keep 11 significant bits. Subnormal results are counted
	// in units of 2^-24, which shifts one more place per step below e == 1.
	shift := uint(shift64 - shift16)
	if e < 1 {
		shift = uint(shift64 - shift16 + 1 - e)
	}
	if shift >= 54 {
		return sign
	}

	q := mant >> shift
	rem := mant & (1<<shift - 1)
	half := uint64(1) << (shift - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}

	// A carry out of the significand lands in the exponent field, which is
	// also how the largest values round up to infinity.
	var hi uint16
	if e > 1 {
		hi = uint16(e-1) << shift16
	}
	return sign | (hi + uint16(q))
}

// Float16FromBits returns the value of the binary16 bit pattern b. Every
// binary16 value is exactly representable as a float64.
func Float16FromBits(b uint16) float64 {
	sign := 1.0
	if b&signMask16 != 0 {
		sign = -1
	}
	exp := int(b&expMask16) >> shift16
	frac := float64(b & fracMask16)

	switch exp {
	case 0:
		return sign * math.Ldexp(frac, -24)
	case 0x1f:
		if frac != 0 {
			return math.NaN()
		}
		return math.Inf(int(sign))
	default:
		return sign * math.Ldexp(1+frac/1024, exp-bias16)
	}
}

// Float32Bits returns the binary32 representation of x rounded to nearest
// even. Values at or beyond the rounding boundary above max float32 become
// the signed infinity.
func Float32Bits(x float64) uint32 {
	return math.Float32bits(quantizeF32(x))
}

// Float32FromBits returns the value of the binary32 bit pattern b.
func Float32FromBits(b uint32) float64 {
	return float64(math.Float32frombits(b))
}

// Float64Bits returns the binary64 representation of x.
func Float64Bits(x float64) uint64 { return math.Float64bits(x) }

// Float64FromBits returns the value of the binary64 bit pattern b.
func Float64FromBits(b uint64) float64 { return math.Float64frombits(b) }

func quantizeF32(x float64) float32 {
	if x >= f32OverflowRound {
		return float32(math.Inf(1))
	} else if x <= -f32OverflowRound {
		return float32(math.Inf(-1))
	}
	return float32(x)
}

func quantizeF16(x float64) float64 {
	return Float16FromBits(Float16Bits(x))
}
