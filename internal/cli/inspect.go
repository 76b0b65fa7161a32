package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-fp/caseset"
)

// InspectResult summarises a case-set file.
type InspectResult struct {
	Path    string   `json:"path"`
	Builtin string   `json:"builtin"`
	Kind    string   `json:"kind"`
	Total   int      `json:"total"`
	Cases   []string `json:"cases"`
}

func (r *InspectResult) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s: %s/%s, %d cases\n", r.Path, r.Builtin, r.Kind, r.Total); err != nil {
		return err
	}
	for _, c := range r.Cases {
		if _, err := fmt.Fprintf(w, "  %s\n", c); err != nil {
			return err
		}
	}
	if rest := r.Total - len(r.Cases); rest > 0 {
		if _, err := fmt.Fprintf(w, "  ... %d more\n", rest); err != nil {
			return err
		}
	}
	return nil
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:           "inspect <file>",
		Short:         "Print the cases in a case-set file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, cmd, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "cases to print (0 prints all)")

	return cmd
}

func runInspect(opts *RootOptions, cmd *cobra.Command, path string, limit int) error {
	f := newFormatter(opts, cmd)

	file, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "inspect", err)
	}
	defer file.Close()

	s, err := caseset.Decode(file)
	if err != nil {
		return WrapExitError(ExitFailure, "inspect "+path, err)
	}
	f.Log.Debug("decoded case set", "path", path, "set", s)

	n := len(s.Cases)
	if limit > 0 && limit < n {
		n = limit
	}
	res := &InspectResult{
		Path:    path,
		Builtin: s.Builtin,
		Kind:    s.Kind.String(),
		Total:   len(s.Cases),
		Cases:   make([]string, n),
	}
	for i := range res.Cases {
		res.Cases[i] = s.Cases[i].String()
	}
	return f.Success(res)
}
