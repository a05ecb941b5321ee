package scaffold

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/spf13/afero"

	"github.com/marshallshelly/domino/pkg/render"
)

// DefaultModelCommand is the host framework's model generator.
var DefaultModelCommand = []string{"rails", "generate", "model"}

// ModelGenerator creates the model for an entity. args are name:type pairs.
type ModelGenerator interface {
	GenerateModel(ctx context.Context, e Entity, args []string) error
}

// CommandModelGenerator runs an external generator as
// `Command... ModelName args...` and fails on a non-zero exit status.
type CommandModelGenerator struct {
	Command []string
	Dir     string
	Stdout  io.Writer
	Stderr  io.Writer
}

// GenerateModel implements ModelGenerator.
func (g *CommandModelGenerator) GenerateModel(ctx context.Context, e Entity, args []string) error {
	command := g.Command
	if len(command) == 0 {
		command = DefaultModelCommand
	}

	argv := make([]string, 0, len(command)+len(args))
	argv = append(argv, command[1:]...)
	argv = append(argv, e.ModelName)
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, command[0], argv...)
	cmd.Dir = g.Dir
	cmd.Stdout = g.Stdout
	cmd.Stderr = g.Stderr

	if err := cmd.Run(); err != nil {
		return &ExternalGeneratorError{
			Model:   e.ModelName,
			Command: strings.Join(append([]string{command[0]}, argv...), " "),
			Err:     err,
		}
	}
	return nil
}

// TemplateModelGenerator renders the model template instead of shelling out.
type TemplateModelGenerator struct {
	Renderer *render.Renderer
	Fs       afero.Fs
}

// GenerateModel implements ModelGenerator.
func (g *TemplateModelGenerator) GenerateModel(_ context.Context, e Entity, _ []string) error {
	if _, err := writeArtifact(g.Fs, g.Renderer, KindModel, e); err != nil {
		return fmt.Errorf("failed to generate model %s: %w", e.ModelName, err)
	}
	return nil
}
