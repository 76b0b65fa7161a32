package caseset

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	fp "github.com/shabbyrobe/go-fp"
	"github.com/shabbyrobe/go-fp/internal/catalog"
)

// Job asks for the cases of one builtin for one kind.
type Job struct {
	Builtin string `yaml:"builtin"`
	Kind    string `yaml:"kind"`
	Dense   bool   `yaml:"dense,omitempty"`

	// Unfiltered keeps cases whose expectation is not finite.
	Unfiltered bool `yaml:"unfiltered,omitempty"`

	// Dim is the vector length and matrix size; zero means 2.
	Dim int `yaml:"dim,omitempty"`
}

func (j Job) String() string { return j.Builtin + "/" + j.Kind }

type jobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadJobs reads a YAML job file of the form:
//
//	jobs:
//	  - builtin: abs
//	    kind: f32
//	  - builtin: dot
//	    kind: f16
//	    dim: 3
//	    dense: true
func LoadJobs(r io.Reader) ([]Job, error) {
	var f jobFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("caseset: job file: %w", err)
	}
	return f.Jobs, nil
}

type resolvedJob struct {
	entry *catalog.Entry
	kind  fp.Kind
	opts  catalog.Options
}

func (j Job) resolve() (resolvedJob, error) {
	e, err := catalog.Lookup(j.Builtin)
	if err != nil {
		return resolvedJob{}, err
	}
	kind, err := fp.ParseKind(j.Kind)
	if err != nil {
		return resolvedJob{}, err
	}
	if !e.Supports(kind) {
		return resolvedJob{}, fmt.Errorf("caseset: %s: %w", j, fp.ErrUnsupported)
	}
	opts := catalog.Options{Dim: j.Dim}
	if j.Dense {
		opts.Domain = catalog.Dense
	}
	if j.Unfiltered {
		opts.Filter = fp.FilterNone
	}
	return resolvedJob{entry: e, kind: kind, opts: opts}, nil
}

// Generate runs jobs on up to workers goroutines and returns their sets in
// job order. A workers value <= 0 means GOMAXPROCS. Every job is validated
// before any is run.
func Generate(ctx context.Context, jobs []Job, workers int) ([]*Set, error) {
	resolved := make([]resolvedJob, len(jobs))
	for i, j := range jobs {
		r, err := j.resolve()
		if err != nil {
			return nil, err
		}
		resolved[i] = r
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]*Set, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, r := range resolved {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cs, err := r.entry.Generate(r.kind, r.opts)
			if err != nil {
				return fmt.Errorf("caseset: %s: %w", jobs[i], err)
			}
			out[i] = &Set{Builtin: r.entry.Name, Kind: r.kind, Cases: cs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
