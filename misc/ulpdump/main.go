package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	fp "github.com/shabbyrobe/go-fp"
)

// Prints how a value lands in each kind: its quantization, the correctly
// rounded candidates, the neighbouring representable values and the ULP with
// and without flushing subnormals. Handy when a generated interval looks one
// ULP off.

const usage = `ULP dump

Usage: ulpdump <value> [kind...]`

type neighbourhood struct {
	Kind       string
	Input      float64
	Quantized  float64
	Bits       string
	Candidates []float64
	Below      float64
	Above      float64
	ULP        float64
	ULPFlushed float64
	Subnormal  bool
	Finite     bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	x, err := strconv.ParseFloat(os.Args[1], 64)
	if err != nil {
		return err
	}
	if math.IsNaN(x) {
		return fmt.Errorf("NaN has no neighbourhood")
	}

	kinds := fp.Kinds
	if len(os.Args) > 2 {
		kinds = nil
		for _, s := range os.Args[2:] {
			k, err := fp.ParseKind(s)
			if err != nil {
				return err
			}
			kinds = append(kinds, k)
		}
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	for _, k := range kinds {
		cfg.Dump(inspect(fp.For(k), x))
	}
	return nil
}

func inspect(t *fp.Traits, x float64) neighbourhood {
	q := t.Quantize(x)
	n := neighbourhood{
		Kind:       t.Kind().String(),
		Input:      x,
		Quantized:  q,
		Bits:       fmt.Sprintf("%#x", t.Bits(q)),
		Candidates: t.CorrectlyRounded(x),
		Below:      t.NextAfter(q, fp.Negative, fp.NoFlush),
		Above:      t.NextAfter(q, fp.Positive, fp.NoFlush),
		Subnormal:  t.IsSubnormal(q),
		Finite:     t.IsFinite(q),
	}
	n.ULP = t.OneULP(x, fp.NoFlush)
	n.ULPFlushed = t.OneULP(x, fp.Flush)
	return n
}
