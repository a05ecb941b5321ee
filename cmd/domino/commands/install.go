package commands

import (
	"github.com/spf13/cobra"

	"github.com/marshallshelly/domino/cmd/domino/output"
	"github.com/marshallshelly/domino/pkg/naming"
	"github.com/marshallshelly/domino/pkg/scaffold"
)

var (
	// Install flags
	force bool
)

// installCmd writes the base classes generated files inherit from
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Write BaseRepository and BaseService",
	Long: `Install writes app/repositories/base_repository.rb and
app/services/base_service.rb, the abstract classes every generated
repository and service inherits from. Existing files are kept unless
--force is set.

Examples:
  domino install
  domino install --root ../shop --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall()
	},
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing base classes")
}

func runInstall() error {
	r, err := newRenderer(naming.New(cfg.Naming), "base_repository", "base_service")
	if err != nil {
		return err
	}

	written, err := scaffold.Install(outputFs(), r, force, output.Progress())
	if err != nil {
		return err
	}

	if len(written) == 0 {
		output.Info("Base classes already installed (use --force to overwrite)")
		return nil
	}
	output.Success("Installed %d base class(es)", len(written))
	return nil
}
