package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"

	"github.com/marshallshelly/domino/pkg/registrar"
	"github.com/marshallshelly/domino/pkg/render"
	"github.com/marshallshelly/domino/pkg/schema"
	"github.com/marshallshelly/domino/pkg/typemap"
)

// RunnerOptions configures artifact generation for one entity.
type RunnerOptions struct {
	Renderer       *render.Renderer
	Fs             afero.Fs
	GenerateModel  bool
	ModelGenerator ModelGenerator
	// Registrar is optional; when set, repositories and services are registered.
	Registrar *registrar.Registrar
	// Order defaults to DefaultOrder.
	Order  []ArtifactKind
	Out    io.Writer
	Logger *slog.Logger
}

// Runner generates the artifacts of a single entity.
type Runner struct {
	entity Entity
	opts   RunnerOptions
}

// NewRunner creates a Runner for e.
func NewRunner(e Entity, opts RunnerOptions) *Runner {
	if opts.Renderer == nil {
		opts.Renderer = render.Default()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if len(opts.Order) == 0 {
		opts.Order = DefaultOrder
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{entity: e, opts: opts}
}

// Run optionally generates the model, then writes each artifact in order.
// The first failure aborts the run; files already written are left in place.
func (r *Runner) Run(ctx context.Context) ([]Artifact, error) {
	if r.opts.GenerateModel {
		if err := r.generateModel(ctx); err != nil {
			return nil, err
		}
	}

	artifacts := make([]Artifact, 0, len(r.opts.Order))
	for _, kind := range r.opts.Order {
		artifact, err := r.GenerateFile(kind)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, artifact)

		if err := r.register(kind); err != nil {
			return artifacts, err
		}
	}

	return artifacts, nil
}

// GenerateFile renders and writes one artifact, overwriting any existing file.
func (r *Runner) GenerateFile(kind ArtifactKind) (Artifact, error) {
	_, _ = fmt.Fprintf(r.opts.Out, "Generating %s for %s\n", kind, r.entity.ModelName)

	artifact, err := writeArtifact(r.opts.Fs, r.opts.Renderer, kind, r.entity)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to generate %s for %s: %w", kind, r.entity.ModelName, err)
	}
	return artifact, nil
}

// ModelArgs returns the name:type arguments for the model generator. Columns
// whose SQL type has no mapping are logged and left out.
func (r *Runner) ModelArgs() []string {
	if r.entity.attributes != nil {
		args := make([]string, 0, len(r.entity.attributes))
		for _, attr := range r.entity.attributes {
			if name, _, _ := strings.Cut(attr, ":"); name == schema.PrimaryKeyColumn {
				continue
			}
			args = append(args, attr)
		}
		return args
	}

	args := make([]string, 0, len(r.entity.Columns))
	for _, col := range r.entity.Columns {
		t, ok := typemap.Map(col.SQLType)
		if !ok {
			r.opts.Logger.Warn("unknown SQL type, skipping column",
				slog.String("model", r.entity.ModelName),
				slog.String("column", col.Name),
				slog.String("sql_type", col.SQLType),
			)
			continue
		}
		args = append(args, col.Name+":"+t.String())
	}
	return args
}

func (r *Runner) generateModel(ctx context.Context) error {
	if r.opts.ModelGenerator == nil {
		return ErrNoModelGenerator
	}

	_, _ = fmt.Fprintf(r.opts.Out, "Generating %s for %s\n", KindModel, r.entity.ModelName)
	return r.opts.ModelGenerator.GenerateModel(ctx, r.entity, r.ModelArgs())
}

func (r *Runner) register(kind ArtifactKind) error {
	if r.opts.Registrar == nil {
		return nil
	}
	if kind != KindRepository && kind != KindService {
		return nil
	}

	key := r.entity.FileName + "_" + string(kind)
	className := r.entity.ModelName + classSuffix(kind)

	written, err := r.opts.Registrar.Register(key, className)
	if err != nil {
		return fmt.Errorf("failed to register %s: %w", className, err)
	}
	if written {
		r.opts.Logger.Debug("registered dependency",
			slog.String("key", key),
			slog.String("class", className),
			slog.String("file", r.opts.Registrar.Path()),
		)
	}
	return nil
}

// classSuffix returns the class name suffix of the kind: "repository" -> "Repository".
func classSuffix(kind ArtifactKind) string {
	k := string(kind)
	return strings.ToUpper(k[:1]) + k[1:]
}
