package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marshallshelly/domino/cmd/domino/output"
	"github.com/marshallshelly/domino/cmd/domino/tui"
	"github.com/marshallshelly/domino/pkg/naming"
	"github.com/marshallshelly/domino/pkg/scaffold"
)

var (
	// Scaffold flags
	skipModel   bool
	interactive bool
)

// scaffoldCmd generates layered CRUD files for database tables
var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate repositories, services, blueprints and controllers from the database",
	Long: `Scaffold reads the database schema and, for every table, generates:

  app/repositories/{model}_repository.rb
  app/services/{model}_service.rb
  app/mappers/{model}_blueprint.rb
  app/controllers/{models}_controller.rb

The model itself is generated first with "rails generate model" unless
--skip-model is set. schema_migrations and ar_internal_metadata are never
scaffolded during discovery. Existing files are overwritten.

Examples:
  domino scaffold --db postgres://localhost/app_development
  domino scaffold --db db/development.sqlite3 --tables users,posts --skip-model
  domino scaffold --db "root@tcp(localhost:3306)/app" --register
  domino scaffold --interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)

	scaffoldCmd.Flags().StringSlice("tables", nil, "Tables to scaffold, in order (default: all)")
	scaffoldCmd.Flags().StringSlice("exclude", nil, "Tables to skip during discovery")
	scaffoldCmd.Flags().String("namespace", "", "Namespace passed to templates")
	scaffoldCmd.Flags().BoolVar(&skipModel, "skip-model", false, "Do not generate models")
	scaffoldCmd.Flags().String("model-generator", "", "Model generator: command or template")
	scaffoldCmd.Flags().String("model-command", "", `Model generator command (default "rails generate model")`)
	scaffoldCmd.Flags().Bool("register", false, "Register repositories and services in the dependency container")
	scaffoldCmd.Flags().String("registrar-path", "", "Container registration file")
	scaffoldCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick tables interactively")
}

func runScaffold(ctx context.Context) error {
	conn, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()

	namer := naming.New(cfg.Naming)
	generateModel := cfg.Scaffold.GenerateModel && !skipModel
	runner, err := runnerOptions(ctx, namer, generateModel)
	if err != nil {
		return err
	}
	scaffolder := scaffold.New(conn, namer, runner)

	opts := scaffold.Options{
		Tables:        cfg.Scaffold.Tables,
		Namespace:     cfg.Scaffold.Namespace,
		GenerateModel: generateModel,
		Exclude:       cfg.Scaffold.Exclude,
	}

	if interactive {
		tables, err := pickTables(ctx, scaffolder, namer, opts)
		if errors.Is(err, tui.ErrCanceled) {
			output.Warning("Scaffold canceled")
			return nil
		}
		if err != nil {
			return err
		}
		opts.Tables = tables
	}

	result, err := scaffolder.Scaffold(ctx, opts)
	if err != nil {
		if result != nil && len(result.Artifacts) > 0 {
			output.Warning("%d file(s) were written before the failure", len(result.Artifacts))
		}
		return err
	}

	return reportArtifacts(result.Artifacts, len(result.Entities))
}

// pickTables shows the table picker over the discovered tables.
func pickTables(ctx context.Context, s *scaffold.Scaffolder, namer *naming.Namer, opts scaffold.Options) ([]string, error) {
	preselect := len(opts.Tables) > 0
	opts.Tables = nil

	tables, err := s.ResolveTables(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables found in database")
	}

	wanted := make(map[string]bool, len(cfg.Scaffold.Tables))
	for _, t := range cfg.Scaffold.Tables {
		wanted[t] = true
	}

	items := make([]tui.TableItem, len(tables))
	for i, t := range tables {
		items[i] = tui.TableItem{
			Name:     t,
			Model:    namer.ModelName(t),
			Selected: !preselect || wanted[t],
		}
	}
	return tui.RunPicker(items)
}

func reportArtifacts(artifacts []scaffold.Artifact, entities int) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(artifacts)
	}

	if entities == 0 {
		output.Warning("No tables to scaffold")
		return nil
	}

	output.Section(fmt.Sprintf("Generated %d file(s) for %d model(s)", len(artifacts), entities))
	for _, a := range artifacts {
		output.Muted("  %s %s", output.StatusIcon("created"), a.Path)
	}
	if cfg.Registrar.Enabled {
		fmt.Println()
		output.Info("Registered repositories and services in %s", cfg.Registrar.Path)
	}
	return nil
}
