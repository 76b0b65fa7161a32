// Package wgsl renders compute shaders that evaluate a catalog builtin over
// a case set, and validates them with naga.
//
// The generated shader binds one read-only storage array per parameter,
// in0 to inN, followed by a read-write results array. Invocation i reads
// element i of every input and writes element i of results; invocations past
// the last case return without writing.
package wgsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/naga"

	fp "github.com/shabbyrobe/go-fp"
	"github.com/shabbyrobe/go-fp/internal/catalog"
)

var (
	ErrNoCases  = errors.New("wgsl: no cases")
	ErrAbstract = errors.New("wgsl: abstract values cannot be stored in buffers")
)

// Build returns the shader source evaluating e for every case. dim is the
// vector length and matrix size used by parameters that do not fix their
// own.
func Build(e *catalog.Entry, kind fp.Kind, dim int, cases []fp.Case) (string, error) {
	if kind == fp.Abstract {
		return "", ErrAbstract
	}
	if len(cases) == 0 {
		return "", ErrNoCases
	}
	if !e.Supports(kind) {
		return "", fmt.Errorf("wgsl: %s for %s: %w", e.Name, kind, fp.ErrUnsupported)
	}
	if dim == 0 {
		dim = 2
	}
	n := len(cases)

	var sb strings.Builder
	if kind == fp.F16 {
		sb.WriteString("enable f16;\n\n")
	}
	fmt.Fprintf(&sb, "// %s, %d cases\n", e.Name, n)

	if got := len(cases[0].Input); got != len(e.Params) {
		return "", fmt.Errorf("wgsl: %s takes %d inputs, case has %d", e.Name, len(e.Params), got)
	}

	args := make([]any, len(e.Params))
	for i, p := range e.Params {
		fmt.Fprintf(&sb, "@group(0) @binding(%d) var<storage, read> in%d: array<%s, %d>;\n", i, i, p.Type(kind, dim), n)
		args[i] = fmt.Sprintf("in%d[i]", i)
	}
	fmt.Fprintf(&sb, "@group(0) @binding(%d) var<storage, read_write> results: array<%s, %d>;\n\n", len(e.Params), e.Result.Type(kind, dim), n)

	sb.WriteString("@compute @workgroup_size(1)\n")
	sb.WriteString("fn main(@builtin(global_invocation_id) gid: vec3<u32>) {\n")
	sb.WriteString("    let i = gid.x;\n")
	fmt.Fprintf(&sb, "    if (i >= %du) {\n        return;\n    }\n", n)
	fmt.Fprintf(&sb, "    results[i] = %s;\n", fmt.Sprintf(e.Expr, args...))
	sb.WriteString("}\n")
	return sb.String(), nil
}

// Compile validates src and returns its SPIR-V.
func Compile(src string) ([]byte, error) {
	spirv, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("wgsl: %w", err)
	}
	return spirv, nil
}
