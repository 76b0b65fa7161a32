package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-fp/internal/catalog"
)

// ListEntry describes one builtin in list output.
type ListEntry struct {
	Name      string   `json:"name"`
	Signature string   `json:"signature"`
	Kinds     []string `json:"kinds"`
}

type listResult []ListEntry

func (r listResult) writeText(w io.Writer) error {
	for _, e := range r {
		if _, err := fmt.Fprintf(w, "%s: %s [%s]\n", e.Name, e.Signature, strings.Join(e.Kinds, " ")); err != nil {
			return err
		}
	}
	return nil
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var dim int

	cmd := &cobra.Command{
		Use:   "list [builtin...]",
		Short: "List the builtins that can be generated",
		Long: `List builtins with their WGSL signature and the kinds they can be
generated for. With no arguments every builtin is listed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd, args, dim)
		},
	}

	cmd.Flags().IntVar(&dim, "dim", 2, "vector length and matrix size shown in signatures")

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command, names []string, dim int) error {
	f := newFormatter(opts, cmd)
	if len(names) == 0 {
		names = catalog.Names()
	}

	out := make(listResult, 0, len(names))
	for _, name := range names {
		e, err := catalog.Lookup(name)
		if err != nil {
			return WrapExitError(ExitCommandError, "list", err)
		}
		le := ListEntry{Name: e.Name, Signature: e.Signature(dim)}
		for _, k := range e.Kinds() {
			le.Kinds = append(le.Kinds, k.String())
		}
		out = append(out, le)
	}
	f.Log.Debug("listed builtins", "count", len(out))
	return f.Success(out)
}
