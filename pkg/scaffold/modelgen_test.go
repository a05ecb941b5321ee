package scaffold

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marshallshelly/domino/pkg/render"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCommandModelGenerator_PassesArguments(t *testing.T) {
	requireShell(t)

	var stdout bytes.Buffer
	gen := &CommandModelGenerator{
		Command: []string{"sh", "-c", `echo "$@"`, "sh"},
		Stdout:  &stdout,
	}

	err := gen.GenerateModel(context.Background(), userEntity(), []string{"name:string", "age:integer"})
	require.NoError(t, err)
	assert.Equal(t, "User name:string age:integer\n", stdout.String())
}

func TestCommandModelGenerator_ChecksExitStatus(t *testing.T) {
	requireShell(t)

	gen := &CommandModelGenerator{Command: []string{"sh", "-c", "exit 3", "sh"}}

	err := gen.GenerateModel(context.Background(), userEntity(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExternalGenerator)

	var genErr *ExternalGeneratorError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "User", genErr.Model)
	assert.Equal(t, 3, genErr.ExitCode())
	assert.Contains(t, genErr.Error(), "sh -c exit 3 sh User")
}

func TestCommandModelGenerator_MissingBinary(t *testing.T) {
	gen := &CommandModelGenerator{Command: []string{"domino-no-such-generator"}}

	err := gen.GenerateModel(context.Background(), userEntity(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExternalGenerator)

	var genErr *ExternalGeneratorError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, -1, genErr.ExitCode())
}

func TestTemplateModelGenerator(t *testing.T) {
	fs := newTestFs()
	gen := &TemplateModelGenerator{Renderer: render.Default(), Fs: fs}

	require.NoError(t, gen.GenerateModel(context.Background(), userEntity(), nil))

	content := readFile(t, fs, "app/models/user.rb")
	assert.Contains(t, content, "class User < ApplicationRecord")
	assert.Contains(t, content, `self.table_name = "users"`)
}
