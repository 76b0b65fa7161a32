// Package catalog names the builtins that can be turned into case sets and
// shaders, and knows how to generate the cases for each of them.
package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	fp "github.com/shabbyrobe/go-fp"
)

// ErrUnknown is returned by Lookup for a name not in the catalog.
var ErrUnknown = errors.New("catalog: unknown builtin")

// Domain selects how many inputs a generator draws.
type Domain uint8

const (
	Sparse Domain = iota
	Dense
)

func (d Domain) String() string {
	if d == Dense {
		return "dense"
	}
	return "sparse"
}

// Shape is the WGSL type class of a parameter or result.
type Shape uint8

const (
	Scalar Shape = iota
	Vector
	Matrix
	I32
	U32
)

func (s Shape) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	case Matrix:
		return "matrix"
	case I32:
		return "i32"
	case U32:
		return "u32"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Param describes one parameter or the result of a builtin. Dim is the
// vector length or square matrix size; zero means Options.Dim.
type Param struct {
	Shape Shape
	Dim   int
}

// Type returns the WGSL type of p for the given element kind and dimension.
func (p Param) Type(kind fp.Kind, dim int) string {
	if p.Dim != 0 {
		dim = p.Dim
	}
	switch p.Shape {
	case Vector:
		return fmt.Sprintf("vec%d<%s>", dim, kind)
	case Matrix:
		return fmt.Sprintf("mat%dx%d<%s>", dim, dim, kind)
	case I32:
		return "i32"
	case U32:
		return "u32"
	default:
		return kind.String()
	}
}

// Generic returns the WGSL type of p with the element kind written as T.
func (p Param) Generic(dim int) string {
	if p.Dim != 0 {
		dim = p.Dim
	}
	switch p.Shape {
	case Vector:
		return fmt.Sprintf("vec%d<T>", dim)
	case Matrix:
		return fmt.Sprintf("mat%dx%d<T>", dim, dim)
	case I32:
		return "i32"
	case U32:
		return "u32"
	default:
		return "T"
	}
}

// Options controls case generation.
type Options struct {
	Domain Domain
	Filter fp.Filter

	// Dim is the vector length and matrix size for builtins that take them.
	// Zero means 2.
	Dim int
}

func (o Options) dim() int {
	if o.Dim == 0 {
		return 2
	}
	return o.Dim
}

// Entry is one builtin in the catalog.
type Entry struct {
	Name string

	// Expr is a fmt template taking one %s per parameter, in order.
	Expr   string
	Params []Param
	Result Param

	// Ops lists the operation names the builtin depends on; the builtin is
	// available for a kind only if the kind supports all of them.
	Ops []string

	gen func(t *fp.Traits, o Options) []fp.Case
}

// Signature renders the entry's expression over its generic parameter
// types, followed by the result type, e.g. "(T + T) -> T".
func (e *Entry) Signature(dim int) string {
	args := make([]any, len(e.Params))
	for i, p := range e.Params {
		args[i] = p.Generic(dim)
	}
	return fmt.Sprintf(e.Expr, args...) + " -> " + e.Result.Generic(dim)
}

// Supports reports whether the entry can be generated for kind.
func (e *Entry) Supports(kind fp.Kind) bool {
	t := fp.For(kind)
	for _, op := range e.Ops {
		if !t.Supports(op) {
			return false
		}
	}
	return true
}

// Kinds returns the kinds the entry supports.
func (e *Entry) Kinds() []fp.Kind {
	var out []fp.Kind
	for _, k := range fp.Kinds {
		if e.Supports(k) {
			out = append(out, k)
		}
	}
	return out
}

// Generate returns the cases of the builtin for kind. It returns an error
// matching fp.ErrUnsupported if the kind does not support the builtin.
func (e *Entry) Generate(kind fp.Kind, o Options) ([]fp.Case, error) {
	if !e.Supports(kind) {
		return nil, fmt.Errorf("catalog: %s for %s: %w", e.Name, kind, fp.ErrUnsupported)
	}
	if d := o.dim(); d < 2 || d > 4 {
		return nil, fmt.Errorf("catalog: dimension %d out of range", d)
	}
	return e.gen(fp.For(kind), o), nil
}

// Lookup returns the entry called name.
func Lookup(name string) (*Entry, error) {
	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return e, nil
}

// Names returns every builtin name, sorted.
func Names() []string {
	out := make([]string, 0, len(entries))
	for name := range entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// scalars returns the scalar inputs for a generator taking arity scalar
// parameters. Dense pairs and triples use a thinner sweep so the cartesian
// product stays manageable.
func scalars(t *fp.Traits, o Options, arity int) []float64 {
	if o.Domain == Sparse {
		return t.SparseScalarRange()
	}
	counts := fp.DefaultScalarRangeCounts
	if arity > 1 {
		counts = fp.ScalarRangeCounts{NegNormal: 10, NegSubnormal: 2, PosSubnormal: 2, PosNormal: 10}
	}
	return dedupe(t, t.SparseScalarRange(), t.ScalarRange(counts))
}

func vectors(t *fp.Traits, o Options, dim int) [][]float64 {
	if o.Domain == Sparse {
		return t.SparseVectorRange(dim)
	}
	return t.VectorRange(dim)
}

func matrices(t *fp.Traits, o Options) [][][]float64 {
	return t.SparseMatrixRange(o.dim(), o.dim())
}

var exponents = []int32{-128, -127, -126, -1, 0, 1, 126, 127, 128}

func packed(o Options) []uint32 {
	out := []uint32{0, 1, 0x3c00, 0x3c003c00, 0x7bff8001, 0x7f7f7f7f, 0x80808080, 0xffffffff}
	if o.Domain == Dense {
		for _, v := range fp.LinearRange(0, 0xffffffff, 64) {
			out = append(out, uint32(v))
		}
	}
	return out
}

// dedupe merges the value sets, dropping repeated bit patterns, and returns
// them in ascending order. Negative zero sorts before positive zero.
func dedupe(t *fp.Traits, sets ...[]float64) []float64 {
	seen := roaring64.New()
	var out []float64
	for _, xs := range sets {
		for _, x := range xs {
			b := t.Bits(x)
			if seen.Contains(b) {
				continue
			}
			seen.Add(b)
			out = append(out, x)
		}
	}
	slices.SortStableFunc(out, cmp.Compare[float64])
	return out
}
