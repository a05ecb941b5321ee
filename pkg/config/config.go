// Package config loads domino settings from a config file, environment
// variables and command line flags.
package config

import (
	"strings"

	"github.com/marshallshelly/domino/pkg/naming"
)

// Model generator modes.
const (
	ModelGeneratorCommand  = "command"
	ModelGeneratorTemplate = "template"
)

// Config holds the application configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Scaffold  ScaffoldConfig  `mapstructure:"scaffold"`
	Output    OutputConfig    `mapstructure:"output"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Model     ModelConfig     `mapstructure:"model"`
	Registrar RegistrarConfig `mapstructure:"registrar"`
	Naming    naming.Config   `mapstructure:"naming"`
	Log       LogConfig       `mapstructure:"log"`
}

// DatabaseConfig holds connection parameters for introspection.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres, mysql, sqlite3; detected from URL when empty
	URL    string `mapstructure:"url"`
	Schema string `mapstructure:"schema"` // PostgreSQL only
}

// ScaffoldConfig selects what gets generated.
type ScaffoldConfig struct {
	Tables        []string `mapstructure:"tables"`
	Namespace     string   `mapstructure:"namespace"`
	GenerateModel bool     `mapstructure:"generate_model"`
	Exclude       []string `mapstructure:"exclude"`
}

// OutputConfig holds where artifacts are written.
type OutputConfig struct {
	Root string `mapstructure:"root"`
}

// TemplatesConfig points at an optional template override directory.
type TemplatesConfig struct {
	Dir string `mapstructure:"dir"`
}

// ModelConfig selects how models are produced.
type ModelConfig struct {
	Generator string `mapstructure:"generator"` // command, template
	Command   string `mapstructure:"command"`
}

// CommandArgs splits the model command into argv.
func (m ModelConfig) CommandArgs() []string {
	return strings.Fields(m.Command)
}

// RegistrarConfig controls dependency registration.
type RegistrarConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LogConfig holds logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}
