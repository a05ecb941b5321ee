package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/marshallshelly/domino/cmd/domino/output"
	"github.com/marshallshelly/domino/pkg/config"
	"github.com/marshallshelly/domino/pkg/introspect"
	"github.com/marshallshelly/domino/pkg/logging"
	"github.com/marshallshelly/domino/pkg/naming"
	"github.com/marshallshelly/domino/pkg/registrar"
	"github.com/marshallshelly/domino/pkg/render"
	"github.com/marshallshelly/domino/pkg/scaffold"
)

// openSource connects to the configured database.
func openSource(ctx context.Context) (*introspect.Connection, error) {
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("--db flag or database.url is required")
	}

	conn, err := introspect.Open(ctx, cfg.Database.Driver, cfg.Database.URL, introspect.Options{
		Schema: cfg.Database.Schema,
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("connected to database",
		"driver", introspect.NormalizeDriver(cfg.Database.Driver),
		"schema", cfg.Database.Schema,
	)
	return conn, nil
}

// outputFs returns the file system rooted at the application root.
func outputFs() afero.Fs {
	return afero.NewBasePathFs(afero.NewOsFs(), cfg.Output.Root)
}

// newRenderer returns the shipped templates, or the override directory when
// configured. An override directory must provide every template in required.
func newRenderer(namer *naming.Namer, required ...string) (*render.Renderer, error) {
	if cfg.Templates.Dir == "" {
		return render.Default().WithNamer(namer), nil
	}

	r, err := render.FromDir(cfg.Templates.Dir)
	if err != nil {
		return nil, err
	}
	if missing := missingTemplates(r, required); len(missing) > 0 {
		return nil, fmt.Errorf("templates directory %s is missing %s", cfg.Templates.Dir, strings.Join(missing, ", "))
	}
	return r.WithNamer(namer), nil
}

// requiredTemplates lists the templates a generation pass renders.
func requiredTemplates(c *config.Config, withModel bool) []string {
	names := make([]string, 0, len(scaffold.DefaultOrder)+1)
	for _, kind := range scaffold.DefaultOrder {
		names = append(names, string(kind))
	}
	if withModel && c.Model.Generator == config.ModelGeneratorTemplate {
		names = append(names, string(scaffold.KindModel))
	}
	return names
}

func missingTemplates(r *render.Renderer, names []string) []string {
	var missing []string
	for _, name := range names {
		if !r.Has(name) {
			missing = append(missing, name+render.Extension)
		}
	}
	return missing
}

// newModelGenerator builds the configured model generator.
func newModelGenerator(c *config.Config, fs afero.Fs, r *render.Renderer) scaffold.ModelGenerator {
	if c.Model.Generator == config.ModelGeneratorTemplate {
		return &scaffold.TemplateModelGenerator{Renderer: r, Fs: fs}
	}
	// With --json, stdout carries only the JSON document.
	stdout := io.Writer(os.Stdout)
	if jsonOutput {
		stdout = os.Stderr
	}
	return &scaffold.CommandModelGenerator{
		Command: c.Model.CommandArgs(),
		Dir:     c.Output.Root,
		Stdout:  stdout,
		Stderr:  os.Stderr,
	}
}

// runnerOptions assembles the shared generation settings for the current configuration.
func runnerOptions(ctx context.Context, namer *naming.Namer, withModel bool) (scaffold.RunnerOptions, error) {
	r, err := newRenderer(namer, requiredTemplates(cfg, withModel)...)
	if err != nil {
		return scaffold.RunnerOptions{}, err
	}

	fs := outputFs()
	opts := scaffold.RunnerOptions{
		Renderer:       r,
		Fs:             fs,
		ModelGenerator: newModelGenerator(cfg, fs, r),
		Out:            output.Progress(),
		Logger:         logging.FromContext(ctx).Logger,
	}
	if jsonOutput {
		opts.Out = nil
	}
	if cfg.Registrar.Enabled {
		opts.Registrar = registrar.New(fs, cfg.Registrar.Path)
	}
	return opts, nil
}
