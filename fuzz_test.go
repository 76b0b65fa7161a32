package fp

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

type fuzzOp string

// This is the equivalent of passing -fp.fuzziter=10000 to 'go test':
const fuzzDefaultIterations = 10000

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-fp.fuzzop=span -fp.fuzzop=oneulp', or you
// can use the short form '-fp.fuzzop=span,oneulp'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAbsorb           fuzzOp = "absorb"
	fuzzCorrectlyRounded fuzzOp = "correctlyrounded"
	fuzzFloat16          fuzzOp = "float16"
	fuzzNextAfter        fuzzOp = "nextafter"
	fuzzOneULP           fuzzOp = "oneulp"
	fuzzSerialize        fuzzOp = "serialize"
	fuzzSpan             fuzzOp = "span"
)

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAbsorb,
	fuzzCorrectlyRounded,
	fuzzFloat16,
	fuzzNextAfter,
	fuzzOneULP,
	fuzzSerialize,
	fuzzSpan,
}

// classic rando!
type rando struct {
	operands []float64
	rng      *rand.Rand
	kind     Kind
}

func (r *rando) Operands() []float64 { return r.operands }

func (r *rando) Clear() { r.operands = r.operands[:0] }

func (r *rando) Float() float64 {
	v := randomFloat(r.rng, r.kind)
	r.operands = append(r.operands, v)
	return v
}

// Between returns a value that is usually not representable in the kind,
// within half an ULP of a representable one.
func (r *rando) Between() float64 {
	t := For(r.kind)
	v := randomFloat(r.rng, r.kind)
	v += (r.rng.Float64() - 0.5) * t.OneULP(v, NoFlush)
	r.operands = append(r.operands, v)
	return v
}

func (r *rando) Interval() Interval {
	t := For(r.kind)
	if r.rng.Intn(20) == 0 {
		return t.Unbounded()
	}
	a, b := r.Float(), r.Float()
	if a > b {
		a, b = b, a
	}
	return t.Range(a, b)
}

type fuzzKind struct {
	source *rando
	t      *Traits
}

func (f *fuzzKind) Name() string { return f.t.Kind().String() }

func (f *fuzzKind) Absorb() error {
	n := 2 + f.source.rng.Intn(3)
	v := make(Vector, n)
	bounded := true
	for i := range v {
		v[i] = f.t.Point(f.source.Float())
	}
	if f.source.rng.Intn(2) == 0 {
		v[f.source.rng.Intn(n)] = f.t.Unbounded()
		bounded = false
	}

	r := f.t.MultiplicationVectorScalarInterval(v, f.t.Point(1))
	if !bounded {
		if !r.Equal(f.t.UnboundedVector(n)) {
			return fmt.Errorf("expected unbounded vector, found %s", r)
		}
		return nil
	}
	for i := range v {
		if !r[i].Contains(v[i].Begin()) {
			return fmt.Errorf("component %d: %s does not contain %s", i, r[i], v[i])
		}
	}
	return nil
}

func (f *fuzzKind) CorrectlyRounded() error {
	x := f.source.Between()
	c := f.t.Constants()
	r := f.t.CorrectlyRounded(x)

	for _, v := range r {
		if !math.IsInf(v, 0) && f.t.Quantize(v) != v {
			return fmt.Errorf("result %g is not representable", v)
		}
	}

	switch len(r) {
	case 1:
		if r[0] != x && !(math.IsInf(r[0], 0) && math.Abs(x) >= c.OverflowThreshold) {
			return fmt.Errorf("single result %g for %g", r[0], x)
		}
	case 2:
		if !(r[0] < x && x < r[1]) {
			return fmt.Errorf("%v does not bracket %g", r, x)
		}
		if !math.IsInf(r[1], 0) && f.t.NextAfter(r[0], Positive, NoFlush) != r[1] {
			return fmt.Errorf("%v are not adjacent", r)
		}
	default:
		return fmt.Errorf("unexpected result count %d", len(r))
	}
	return nil
}

func (f *fuzzKind) Float16() error {
	b := uint16(f.source.rng.Intn(1 << 16))
	x := Float16FromBits(b)
	f.source.operands = append(f.source.operands, x)
	if math.IsNaN(x) {
		return nil
	}
	if out := Float16Bits(x); out != b {
		return fmt.Errorf("bits %#04x round tripped to %#04x", b, out)
	}
	if !math.IsInf(x, 0) && F16Traits.Quantize(x) != x {
		return fmt.Errorf("%g is not a fixed point of quantize", x)
	}
	return nil
}

func (f *fuzzKind) NextAfter() error {
	x := f.source.Float()
	if math.Abs(x) == f.t.Constants().Max {
		return nil
	}
	up := f.t.NextAfter(x, Positive, NoFlush)
	if !(up > x) {
		return fmt.Errorf("next up %g is not above %g", up, x)
	}
	if back := f.t.NextAfter(up, Negative, NoFlush); back != x {
		return fmt.Errorf("next down from %g is %g, not %g", up, back, x)
	}
	return nil
}

func (f *fuzzKind) OneULP() error {
	x := f.source.Float()
	u := f.t.OneULP(x, NoFlush)
	uf := f.t.OneULP(x, Flush)
	if !(u > 0) {
		return fmt.Errorf("ulp %g is not positive", u)
	}
	if frac, _ := math.Frexp(u); frac != 0.5 {
		return fmt.Errorf("ulp %g is not a power of two", u)
	}
	if uf < u {
		return fmt.Errorf("flushed ulp %g is less than %g", uf, u)
	}
	return nil
}

func (f *fuzzKind) Serialize() error {
	in := f.source.Interval()
	b, err := in.MarshalBinary()
	if err != nil {
		return err
	}
	var out Interval
	if err := out.UnmarshalBinary(b); err != nil {
		return err
	}
	if !in.Equal(out) {
		return fmt.Errorf("%s != %s", in, out)
	}
	return nil
}

func (f *fuzzKind) Span() error {
	a, b := f.source.Interval(), f.source.Interval()
	s := Span(a, b)
	if !s.ContainsInterval(a) || !s.ContainsInterval(b) {
		return fmt.Errorf("span %s does not cover %s and %s", s, a, b)
	}
	if s.Begin() != math.Min(a.Begin(), b.Begin()) || s.End() != math.Max(a.End(), b.End()) {
		return fmt.Errorf("span %s is wider than %s and %s", s, a, b)
	}
	return nil
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -fp.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	// fuzzKindsActive comes from the -fp.fuzzkind flag, in TestMain:
	var runFuzzKinds = fuzzKindsActive

	var totalFailures int

	for _, kind := range runFuzzKinds {
		var source = &rando{rng: globalRNG, kind: kind} // Classic rando!
		var fuzzImpl = &fuzzKind{source: source, t: For(kind)}
		var failures = make([]int, len(runFuzzOps))

		for opIdx, op := range runFuzzOps {
			for i := 0; i < fuzzIterations; i++ {
				source.Clear()

				var err error

				// NEWOP: add a new branch here in alphabetical order if a new
				// op is added.
				switch op {
				case fuzzAbsorb:
					err = fuzzImpl.Absorb()
				case fuzzCorrectlyRounded:
					err = fuzzImpl.CorrectlyRounded()
				case fuzzFloat16:
					err = fuzzImpl.Float16()
				case fuzzNextAfter:
					err = fuzzImpl.NextAfter()
				case fuzzOneULP:
					err = fuzzImpl.OneULP()
				case fuzzSerialize:
					err = fuzzImpl.Serialize()
				case fuzzSpan:
					err = fuzzImpl.Span()
				default:
					panic(fmt.Errorf("unsupported op %q", op))
				}

				if err != nil {
					failures[opIdx]++
					t.Logf("%s %s%v: %s\n", fuzzImpl.Name(), op, source.Operands(), err)
				}
			}
		}

		for opIdx, cnt := range failures {
			if cnt > 0 {
				totalFailures += cnt
				t.Logf("kind %s, op %s: %d/%d failed", fuzzImpl.Name(), string(runFuzzOps[opIdx]), cnt, fuzzIterations)
			}
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}
