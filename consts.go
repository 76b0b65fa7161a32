package fp

import (
	"math"
)

const (
	signMask16 = 0x8000
	expMask16  = 0x7c00
	fracMask16 = 0x03ff
	shift16    = 10
	bias16     = 15

	signMask32 = 0x80000000
	expMask32  = 0x7f800000

	signMask64 = 0x8000000000000000
	expMask64  = 0x7ff0000000000000

	shift64 = 52
	bias64  = 1023

	// f32OverflowRound is max float32 plus half an ULP. Anything at or
	// beyond it rounds to infinity under round-to-nearest-even.
	f32OverflowRound = 0x1.ffffffp127
)

// Constants describes the finite range of a Kind. Negative limits are the
// negations of the positive ones.
type Constants struct {
	// Max is the largest finite value.
	Max float64

	// MinNormal is the smallest positive normal value.
	MinNormal float64

	// SubnormalMax is the largest positive subnormal value.
	SubnormalMax float64

	// SubnormalMin is the smallest positive subnormal value.
	SubnormalMin float64

	// LessThanOne is the largest value below 1.
	LessThanOne float64

	// MaxULP is OneULP(Max), returned for anything at or beyond the range.
	MaxULP float64

	// OverflowThreshold is 2^(emax+1). A value at or beyond it is not
	// bracketed by any finite value, so it only rounds to infinity.
	OverflowThreshold float64

	// Bias is the exponent bias.
	Bias int
}

var (
	f16Constants = Constants{
		Max:               0x1.ffcp15,
		MinNormal:         0x1p-14,
		SubnormalMax:      0x1.ff8p-15,
		SubnormalMin:      0x1p-24,
		LessThanOne:       0x1.ffcp-1,
		MaxULP:            0x1p5,
		OverflowThreshold: 0x1p16,
		Bias:              15,
	}

	f32Constants = Constants{
		Max:               0x1.fffffep127,
		MinNormal:         0x1p-126,
		SubnormalMax:      0x1.fffffcp-127,
		SubnormalMin:      0x1p-149,
		LessThanOne:       0x1.fffffep-1,
		MaxULP:            0x1p104,
		OverflowThreshold: 0x1p128,
		Bias:              127,
	}

	// 2^1024 is not a float64, so nothing finite reaches the abstract
	// overflow threshold.
	abstractConstants = Constants{
		Max:               math.MaxFloat64,
		MinNormal:         0x1p-1022,
		SubnormalMax:      0x0.fffffffffffffp-1022,
		SubnormalMin:      math.SmallestNonzeroFloat64,
		LessThanOne:       0x1.fffffffffffffp-1,
		MaxULP:            0x1p971,
		OverflowThreshold: math.Inf(1),
		Bias:              1023,
	}
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)
