package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/marshallshelly/domino/cmd/domino/output"
	"github.com/marshallshelly/domino/pkg/config"
	"github.com/marshallshelly/domino/pkg/logging"
)

var (
	// Global flags
	cfgFile    string
	verbose    bool
	jsonOutput bool

	// Loaded before every command
	cfg *config.Config
)

// flagKeys maps command line flags to configuration keys. Flags are bound
// only when the running command defines them.
var flagKeys = map[string]string{
	"db":              "database.url",
	"driver":          "database.driver",
	"schema":          "database.schema",
	"root":            "output.root",
	"templates":       "templates.dir",
	"log-level":       "log.level",
	"log-format":      "log.format",
	"tables":          "scaffold.tables",
	"namespace":       "scaffold.namespace",
	"exclude":         "scaffold.exclude",
	"register":        "registrar.enabled",
	"registrar-path":  "registrar.path",
	"model-generator": "model.generator",
	"model-command":   "model.command",
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "domino",
	Short: "Domino - layered CRUD scaffolding for Rails from your database schema",
	Long: `Domino reads tables and columns from a relational database and generates
a repository, service, blueprint and controller for each table, following a
fixed layered convention under app/.

Features:
  - PostgreSQL, MySQL and SQLite introspection
  - Model generation through rails generate model or a template
  - Overridable templates
  - Dependency container registration
  - Interactive table picker`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./domino.yaml or $HOME/.domino/domino.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Database connection URL or SQLite path")
	rootCmd.PersistentFlags().String("driver", "", "Database driver: postgres, mysql, sqlite3 (default: detected from --db)")
	rootCmd.PersistentFlags().String("schema", "public", "PostgreSQL schema to introspect")
	rootCmd.PersistentFlags().String("root", ".", "Application root that generated files are written under")
	rootCmd.PersistentFlags().String("templates", "", "Directory with template overrides")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// loadConfig resolves configuration for cmd and attaches a logger to its context.
func loadConfig(cmd *cobra.Command) error {
	v := viper.New()
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	loaded, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		loaded.Log.Level = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger := logging.NewLogger(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	}).WithFields("command", cmd.Name())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))
	return nil
}
