package commands

import (
	"github.com/spf13/cobra"

	"github.com/marshallshelly/domino/pkg/naming"
	"github.com/marshallshelly/domino/pkg/scaffold"
)

var (
	// Generate flags
	withModel bool
)

// generateCmd generates layered files for a single model from attributes
var generateCmd = &cobra.Command{
	Use:   "generate NAME [field[:type] ...]",
	Short: "Generate a service, repository, blueprint and controller for one model",
	Long: `Generate builds the layered files for NAME without reading the database.
Attributes use the rails generate syntax; a missing type defaults to string,
and an id attribute is ignored.

Examples:
  domino generate Article title body:text published:boolean
  domino generate Article title --with-model
  domino generate article --register`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&withModel, "with-model", false, "Also generate the model with the attributes")
	generateCmd.Flags().String("namespace", "", "Namespace passed to templates")
	generateCmd.Flags().String("model-generator", "", "Model generator: command or template")
	generateCmd.Flags().String("model-command", "", `Model generator command (default "rails generate model")`)
	generateCmd.Flags().Bool("register", false, "Register the repository and service in the dependency container")
	generateCmd.Flags().String("registrar-path", "", "Container registration file")
}

func runGenerate(cmd *cobra.Command, name string, attributes []string) error {
	ctx := cmd.Context()
	namer := naming.New(cfg.Naming)

	entity, err := scaffold.EntityFromAttributes(namer, name, attributes, cfg.Scaffold.Namespace)
	if err != nil {
		return err
	}

	opts, err := runnerOptions(ctx, namer, withModel)
	if err != nil {
		return err
	}
	opts.GenerateModel = withModel
	opts.Order = scaffold.GeneratorOrder

	artifacts, err := scaffold.NewRunner(entity, opts).Run(ctx)
	if err != nil {
		return err
	}

	return reportArtifacts(artifacts, 1)
}
