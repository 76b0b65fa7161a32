package fp

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzKindsActive = Kinds
	fuzzSeed        int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var kinds StringList

	flag.IntVar(&fuzzIterations, "fp.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "fp.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "fp.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&kinds, "fp.fuzzkind", "Fuzz kind (f16, f32, abstract) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(kinds) > 0 {
		fuzzKindsActive = nil
		for _, k := range kinds {
			kind, err := ParseKind(k)
			if err != nil {
				log.Fatal(err)
			}
			fuzzKindsActive = append(fuzzKindsActive, kind)
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("kinds:     ", fuzzKindsActive)

	code := m.Run()
	os.Exit(code)
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomFloat returns a random finite value for the kind. Half of the time
// it is a random bit pattern, so subnormals and extremes turn up; otherwise
// it is a modest value near zero, where most of the interesting rounding
// happens.
func randomFloat(rng *rand.Rand, k Kind) float64 {
	if rng == nil {
		rng = globalRNG
	}
	t := For(k)
	for {
		var v float64
		if rng.Intn(2) == 0 {
			v = t.FromBits(rng.Uint64())
		} else {
			v = (rng.Float64()*2 - 1) * math.Pow(2, float64(rng.Intn(21)-10))
			v = t.Quantize(v)
		}
		if t.IsFinite(v) {
			return v
		}
	}
}

// mustPanic runs fn and returns the recovered panic value. It fails the test
// if fn returns normally.
func mustPanic(t testing.TB, fn func()) (v interface{}) {
	t.Helper()
	defer func() {
		v = recover()
		if v == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
	return nil
}

// mustPanicUnsupported fails unless fn panics with an error matching
// ErrUnsupported.
func mustPanicUnsupported(t testing.TB, fn func()) {
	t.Helper()
	v := mustPanic(t, fn)
	err, ok := v.(error)
	if !ok || !errors.Is(err, ErrUnsupported) {
		t.Fatal(fmt.Errorf("fp: expected unsupported panic, found %v", v))
	}
}
