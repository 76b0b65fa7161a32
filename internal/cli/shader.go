package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	fp "github.com/shabbyrobe/go-fp"
	"github.com/shabbyrobe/go-fp/internal/catalog"
	"github.com/shabbyrobe/go-fp/wgsl"
)

// ShaderOptions holds flags for the shader command.
type ShaderOptions struct {
	Kind     string
	Dense    bool
	Dim      int
	Validate bool
	Out      string
}

// NewShaderCommand creates the shader command.
func NewShaderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShaderOptions{}

	cmd := &cobra.Command{
		Use:   "shader <builtin>",
		Short: "Emit a WGSL compute shader evaluating a builtin",
		Long: `Emit a WGSL compute shader that evaluates a builtin once per
generated case. With --validate the shader is compiled to SPIR-V by naga
before it is written.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShader(rootOpts, opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "f32", "element kind (f16|f32)")
	cmd.Flags().BoolVar(&opts.Dense, "dense", false, "use the dense input domain")
	cmd.Flags().IntVar(&opts.Dim, "dim", 2, "vector length and matrix size")
	cmd.Flags().BoolVar(&opts.Validate, "validate", false, "compile the shader with naga")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "write to file instead of stdout")

	return cmd
}

func runShader(rootOpts *RootOptions, opts *ShaderOptions, cmd *cobra.Command, name string) error {
	f := newFormatter(rootOpts, cmd)

	e, err := catalog.Lookup(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "shader", err)
	}
	kind, err := fp.ParseKind(opts.Kind)
	if err != nil {
		return WrapExitError(ExitCommandError, "shader", err)
	}

	o := catalog.Options{Dim: opts.Dim}
	if opts.Dense {
		o.Domain = catalog.Dense
	}
	cases, err := e.Generate(kind, o)
	if err != nil {
		return WrapExitError(ExitCommandError, "shader", err)
	}

	src, err := wgsl.Build(e, kind, opts.Dim, cases)
	if err != nil {
		code := ExitFailure
		if errors.Is(err, wgsl.ErrAbstract) {
			code = ExitCommandError
		}
		return WrapExitError(code, "shader", err)
	}

	if opts.Validate {
		spirv, err := wgsl.Compile(src)
		if err != nil {
			return WrapExitError(ExitFailure, "shader validation", err)
		}
		f.Log.Info("shader compiled", "builtin", name, "kind", kind, "spirv_bytes", len(spirv))
	}

	if opts.Out != "" {
		if err := os.WriteFile(opts.Out, []byte(src), 0o644); err != nil {
			return WrapExitError(ExitCommandError, "shader", err)
		}
		f.Log.Debug("wrote shader", "path", opts.Out, "cases", len(cases))
		return nil
	}
	_, err = fmt.Fprint(f.Writer, src)
	return err
}
