package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-fp/caseset"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	Kinds       []string
	Dense       bool
	Unfiltered  bool
	Dim         int
	Compression string
	Workers     int
	OutDir      string
	JobsFile    string
}

// GeneratedFile describes one written case-set file.
type GeneratedFile struct {
	Builtin string `json:"builtin"`
	Kind    string `json:"kind"`
	Cases   int    `json:"cases"`
	Path    string `json:"path"`
	Bytes   int64  `json:"bytes"`
}

type generateResult []GeneratedFile

func (r generateResult) writeText(w io.Writer) error {
	for _, g := range r {
		if _, err := fmt.Fprintf(w, "wrote %s (%d cases, %d bytes)\n", g.Path, g.Cases, g.Bytes); err != nil {
			return err
		}
	}
	return nil
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [builtin...]",
		Short: "Generate case-set files",
		Long: `Generate the cases of one or more builtins and write each set to
<out>/<builtin>_<kind>.fpcs. Jobs come from the arguments crossed with --kind,
or from a YAML job file given with --jobs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, cmd, args)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Kinds, "kind", "k", []string{"f32"}, "kinds to generate (f16,f32,abstract)")
	cmd.Flags().BoolVar(&opts.Dense, "dense", false, "use the dense input domain")
	cmd.Flags().BoolVar(&opts.Unfiltered, "unfiltered", false, "keep cases with unbounded expectations")
	cmd.Flags().IntVar(&opts.Dim, "dim", 2, "vector length and matrix size")
	cmd.Flags().StringVarP(&opts.Compression, "compression", "c", "zstd", "payload compression (none|lz4|zstd)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "j", 0, "concurrent jobs (0 means GOMAXPROCS)")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&opts.JobsFile, "jobs", "", "YAML job file")

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *GenerateOptions, cmd *cobra.Command, args []string) error {
	f := newFormatter(rootOpts, cmd)

	comp, err := caseset.ParseCompression(opts.Compression)
	if err != nil {
		return WrapExitError(ExitCommandError, "generate", err)
	}

	jobs, err := collectJobs(opts, args)
	if err != nil {
		return err
	}

	start := time.Now()
	f.Log.Debug("generating", "jobs", len(jobs), "workers", opts.Workers)
	sets, err := caseset.Generate(cmd.Context(), jobs, opts.Workers)
	if err != nil {
		return WrapExitError(ExitFailure, "generate", err)
	}
	f.Log.Debug("generated", "sets", len(sets), "elapsed", time.Since(start))

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return WrapExitError(ExitCommandError, "generate", err)
	}

	out := make(generateResult, 0, len(sets))
	for i, s := range sets {
		path := filepath.Join(opts.OutDir, fileName(jobs[i], s))
		n, err := writeSet(path, s, comp)
		if err != nil {
			return WrapExitError(ExitFailure, "generate", err)
		}
		f.Log.Debug("wrote case set", "path", path, "cases", len(s.Cases), "bytes", n)
		out = append(out, GeneratedFile{
			Builtin: s.Builtin,
			Kind:    s.Kind.String(),
			Cases:   len(s.Cases),
			Path:    path,
			Bytes:   n,
		})
	}
	return f.Success(out)
}

func collectJobs(opts *GenerateOptions, args []string) ([]caseset.Job, error) {
	if opts.JobsFile != "" {
		if len(args) > 0 {
			return nil, NewExitError(ExitCommandError, "generate: builtins and --jobs are mutually exclusive")
		}
		jf, err := os.Open(opts.JobsFile)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "generate", err)
		}
		defer jf.Close()
		jobs, err := caseset.LoadJobs(jf)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "generate", err)
		}
		if len(jobs) == 0 {
			return nil, NewExitError(ExitCommandError, "generate: job file is empty")
		}
		return jobs, nil
	}

	if len(args) == 0 {
		return nil, NewExitError(ExitCommandError, "generate: no builtins given")
	}
	var jobs []caseset.Job
	for _, b := range args {
		for _, k := range opts.Kinds {
			jobs = append(jobs, caseset.Job{
				Builtin:    b,
				Kind:       k,
				Dense:      opts.Dense,
				Unfiltered: opts.Unfiltered,
				Dim:        opts.Dim,
			})
		}
	}
	return jobs, nil
}

// fileName is <builtin>_<kind>.fpcs, with the dimension appended when a job
// asks for one other than the default.
func fileName(j caseset.Job, s *caseset.Set) string {
	if j.Dim != 0 && j.Dim != 2 {
		return fmt.Sprintf("%s_%s_%d.fpcs", s.Builtin, s.Kind, j.Dim)
	}
	return fmt.Sprintf("%s_%s.fpcs", s.Builtin, s.Kind)
}

func writeSet(path string, s *caseset.Set, c caseset.Compression) (n int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	if err := s.Encode(f, c); err != nil {
		return 0, err
	}
	st, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}
