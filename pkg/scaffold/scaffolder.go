package scaffold

import (
	"context"
	"log/slog"
	"slices"

	"github.com/marshallshelly/domino/pkg/naming"
	"github.com/marshallshelly/domino/pkg/schema"
)

// DefaultDenylist holds bookkeeping tables that are never scaffolded during discovery.
var DefaultDenylist = []string{"schema_migrations", "ar_internal_metadata"}

// Options selects what a scaffold pass generates.
type Options struct {
	// Tables restricts the pass to these tables in this order. Empty means
	// every table reported by the source except the denylist.
	Tables []string
	// Namespace is reserved and passed to templates unchanged.
	Namespace     string
	GenerateModel bool
	// Exclude extends DefaultDenylist during discovery.
	Exclude []string
}

// DefaultOptions returns options that scaffold every table and generate models.
func DefaultOptions() Options {
	return Options{GenerateModel: true}
}

// Result lists what a scaffold pass produced, in processing order.
type Result struct {
	Entities  []Entity
	Artifacts []Artifact
}

// Scaffolder enumerates tables from a schema source and runs one Runner per table.
type Scaffolder struct {
	source schema.Source
	namer  *naming.Namer
	runner RunnerOptions
}

// New creates a Scaffolder. runner is copied into every Runner it constructs.
func New(source schema.Source, namer *naming.Namer, runner RunnerOptions) *Scaffolder {
	if namer == nil {
		namer = naming.Default()
	}
	return &Scaffolder{source: source, namer: namer, runner: runner}
}

// Scaffold generates artifacts for each selected table, strictly one table at
// a time. The first error aborts the pass.
func (s *Scaffolder) Scaffold(ctx context.Context, opts Options) (*Result, error) {
	tables, err := s.ResolveTables(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		columns, err := s.source.Columns(ctx, table)
		if err != nil {
			return result, &IntrospectionError{Table: table, Err: err}
		}

		entity := NewEntity(s.namer, s.namer.ModelName(table), table, columns, opts.Namespace)
		result.Entities = append(result.Entities, entity)

		runnerOpts := s.runner
		runnerOpts.GenerateModel = opts.GenerateModel
		artifacts, err := NewRunner(entity, runnerOpts).Run(ctx)
		result.Artifacts = append(result.Artifacts, artifacts...)
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// ResolveTables returns the explicit table list, or the discovered tables
// minus the denylist and opts.Exclude.
func (s *Scaffolder) ResolveTables(ctx context.Context, opts Options) ([]string, error) {
	if len(opts.Tables) > 0 {
		return opts.Tables, nil
	}

	all, err := s.source.Tables(ctx)
	if err != nil {
		return nil, &IntrospectionError{Err: err}
	}

	tables := make([]string, 0, len(all))
	for _, table := range all {
		if slices.Contains(DefaultDenylist, table) || slices.Contains(opts.Exclude, table) {
			s.logger().Debug("skipping table", slog.String("table", table))
			continue
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func (s *Scaffolder) logger() *slog.Logger {
	if s.runner.Logger != nil {
		return s.runner.Logger
	}
	return slog.Default()
}
