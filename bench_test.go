package fp

import (
	"testing"
)

var (
	BenchBoolResult     bool
	BenchBytesResult    []byte
	BenchCasesResult    []Case
	BenchFloatResult    float64
	BenchFloatsResult   []float64
	BenchIntervalResult Interval
	BenchVectorResult   Vector

	BenchFloat1, BenchFloat2 float64 = 1.1, 3.3
)

func BenchmarkQuantize(b *testing.B) {
	for _, tr := range []*Traits{F16Traits, F32Traits} {
		b.Run(tr.Kind().String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchFloatResult = tr.Quantize(BenchFloat1)
			}
		})
	}
}

func BenchmarkCorrectlyRounded(b *testing.B) {
	for _, tr := range []*Traits{F16Traits, F32Traits} {
		b.Run(tr.Kind().String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchFloatsResult = tr.CorrectlyRounded(BenchFloat1)
			}
		})
	}
}

func BenchmarkOneULP(b *testing.B) {
	tr := F32Traits
	for i := 0; i < b.N; i++ {
		BenchFloatResult = tr.OneULP(BenchFloat1, Flush)
	}
}

func BenchmarkFloat16Bits(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = float64(Float16Bits(BenchFloat1))
	}
}

func BenchmarkAdditionInterval(b *testing.B) {
	tr := F32Traits
	x, y := tr.Point(BenchFloat1), tr.Range(BenchFloat1, BenchFloat2)
	for i := 0; i < b.N; i++ {
		BenchIntervalResult = tr.AdditionInterval(x, y)
	}
}

func BenchmarkDivisionInterval(b *testing.B) {
	tr := F32Traits
	x, y := tr.Point(BenchFloat1), tr.Range(BenchFloat1, BenchFloat2)
	for i := 0; i < b.N; i++ {
		BenchIntervalResult = tr.DivisionInterval(x, y)
	}
}

func BenchmarkSinInterval(b *testing.B) {
	tr := F32Traits
	x := tr.Range(-BenchFloat1, BenchFloat1)
	for i := 0; i < b.N; i++ {
		BenchIntervalResult = tr.SinInterval(x)
	}
}

func BenchmarkDotInterval(b *testing.B) {
	tr := F32Traits
	for _, n := range []int{2, 3, 4} {
		xs := make([]float64, n)
		for j := range xs {
			xs[j] = BenchFloat1 * float64(j+1)
		}
		x := tr.PointVector(xs)
		b.Run(vecName(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntervalResult = tr.DotInterval(x, x)
			}
		})
	}
}

func BenchmarkNormalizeInterval(b *testing.B) {
	tr := F32Traits
	x := tr.PointVector([]float64{BenchFloat1, BenchFloat2, BenchFloat1})
	for i := 0; i < b.N; i++ {
		BenchVectorResult = tr.NormalizeInterval(x)
	}
}

func BenchmarkDeterminantInterval(b *testing.B) {
	tr := F32Traits
	m := tr.PointMatrix([][]float64{
		{BenchFloat1, 0, 0, 1},
		{0, BenchFloat2, 1, 0},
		{0, 1, BenchFloat1, 0},
		{1, 0, 0, BenchFloat2},
	})
	for i := 0; i < b.N; i++ {
		BenchIntervalResult = tr.DeterminantInterval(m)
	}
}

func BenchmarkGenerateScalarPairCases(b *testing.B) {
	tr := F32Traits
	xs := tr.SparseScalarRange()
	for i := 0; i < b.N; i++ {
		BenchCasesResult = tr.GenerateScalarPairToIntervalCases(xs, xs, FilterFinite, tr.MultiplicationInterval)
	}
}

func BenchmarkIntervalMarshalBinary(b *testing.B) {
	in := F32Traits.Range(BenchFloat1, BenchFloat2)
	buf := make([]byte, 0, MaxIntervalSize)
	for i := 0; i < b.N; i++ {
		BenchBytesResult, _ = in.AppendBinary(buf[:0])
	}
}

func BenchmarkIntervalEqual(b *testing.B) {
	x, y := F32Traits.Point(BenchFloat1), F32Traits.Point(BenchFloat2)
	for i := 0; i < b.N; i++ {
		BenchBoolResult = x.Equal(y)
	}
}

func vecName(n int) string {
	return "vec" + string(rune('0'+n))
}
