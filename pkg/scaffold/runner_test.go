package scaffold

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marshallshelly/domino/pkg/naming"
	"github.com/marshallshelly/domino/pkg/registrar"
	"github.com/marshallshelly/domino/pkg/schema"
)

func userEntity(columns ...schema.Column) Entity {
	if len(columns) == 0 {
		columns = []schema.Column{
			{Name: "id", SQLType: "integer"},
			{Name: "name", SQLType: "varchar(255)"},
		}
	}
	return NewEntity(naming.Default(), "User", "users", columns, "")
}

func TestRunner_ProgressLines(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(userEntity(), RunnerOptions{Fs: newTestFs(), Out: &out})

	artifacts, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, artifacts, 4)

	assert.Equal(t,
		"Generating repository for User\n"+
			"Generating service for User\n"+
			"Generating blueprint for User\n"+
			"Generating controller for User\n",
		out.String())

	kinds := make([]ArtifactKind, len(artifacts))
	for i, a := range artifacts {
		kinds[i] = a.Kind
	}
	assert.Equal(t, DefaultOrder, kinds)
}

func TestRunner_GenerateFile(t *testing.T) {
	fs := newTestFs()
	r := NewRunner(userEntity(), RunnerOptions{Fs: fs})

	artifact, err := r.GenerateFile(KindBlueprint)
	require.NoError(t, err)
	assert.Equal(t, "app/mappers/user_blueprint.rb", artifact.Path)
	assert.Equal(t, artifact.Content, readFile(t, fs, artifact.Path))
	assert.Contains(t, artifact.Content, "fields :name")
}

func TestRunner_ModelArgs(t *testing.T) {
	var logs bytes.Buffer
	e := userEntity(
		schema.Column{Name: "id", SQLType: "bigint"},
		schema.Column{Name: "name", SQLType: "varchar(255)"},
		schema.Column{Name: "age", SQLType: "integer"},
		schema.Column{Name: "created_at", SQLType: "timestamp without time zone"},
		schema.Column{Name: "active", SQLType: "boolean"},
		schema.Column{Name: "balance", SQLType: "numeric(10,2)"},
		schema.Column{Name: "born_on", SQLType: "date"},
		schema.Column{Name: "payload", SQLType: "jsonb"},
	)
	r := NewRunner(e, RunnerOptions{Logger: testLogger(&logs)})

	assert.Equal(t, []string{
		"name:string",
		"age:integer",
		"created_at:datetime",
		"active:boolean",
		"balance:decimal",
		"born_on:date",
	}, r.ModelArgs())

	assert.Contains(t, logs.String(), "unknown SQL type")
	assert.Contains(t, logs.String(), "column=payload")
	assert.Contains(t, e.Fields, "payload")
}

func TestRunner_GenerateModelOrder(t *testing.T) {
	var out bytes.Buffer
	gen := &recordingModelGenerator{}
	r := NewRunner(userEntity(), RunnerOptions{
		Fs:             newTestFs(),
		Out:            &out,
		GenerateModel:  true,
		ModelGenerator: gen,
	})

	_, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"User"}, gen.models)
	assert.True(t, strings.HasPrefix(out.String(), "Generating model for User\n"))
}

func TestRunner_NoModelGenerator(t *testing.T) {
	fs := newTestFs()
	r := NewRunner(userEntity(), RunnerOptions{Fs: fs, GenerateModel: true})

	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoModelGenerator)
	assert.Empty(t, listFiles(t, fs))
}

func TestRunner_Registrar(t *testing.T) {
	fs := newTestFs()
	reg := registrar.New(fs, "")
	r := NewRunner(userEntity(), RunnerOptions{Fs: fs, Registrar: reg, Logger: testLogger(nil)})

	_, err := r.Run(context.Background())
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	require.NoError(t, err)

	content := readFile(t, fs, registrar.DefaultPath)
	assert.Equal(t,
		"Container.register(:user_repository) { UserRepository.new }\n"+
			"Container.register(:user_service) { UserService.new }\n",
		content)
	assert.Len(t, listFiles(t, fs), 5)
}

func TestEntityFromAttributes(t *testing.T) {
	n := naming.Default()

	e, err := EntityFromAttributes(n, "user_profile", []string{"id:integer", "bio:text", "nickname", "age:integer"}, "")
	require.NoError(t, err)
	assert.Equal(t, "UserProfile", e.ModelName)
	assert.Equal(t, "UserProfiles", e.PluralModelName)
	assert.Equal(t, "user_profile", e.FileName)
	assert.Equal(t, "user_profiles", e.PluralFileName)
	assert.Equal(t, "user_profiles", e.TableName)
	assert.Equal(t, []string{"bio", "nickname", "age"}, e.Fields)
	assert.Equal(t, "string", e.Columns[1].SQLType)

	r := NewRunner(e, RunnerOptions{})
	assert.Equal(t, []string{"bio:text", "nickname", "age:integer"}, r.ModelArgs())

	_, err = EntityFromAttributes(n, "", nil, "")
	assert.ErrorIs(t, err, ErrInvalidAttribute)

	_, err = EntityFromAttributes(n, "User", []string{":string"}, "")
	assert.ErrorIs(t, err, ErrInvalidAttribute)
}

func TestRunner_GeneratorOrder(t *testing.T) {
	var out bytes.Buffer
	e, err := EntityFromAttributes(naming.Default(), "Person", []string{"name:string"}, "")
	require.NoError(t, err)

	fs := newTestFs()
	r := NewRunner(e, RunnerOptions{Fs: fs, Out: &out, Order: GeneratorOrder})
	_, err = r.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "Generating service for Person\n"))
	assert.Equal(t, []string{
		"app/controllers/people_controller.rb",
		"app/mappers/person_blueprint.rb",
		"app/repositories/person_repository.rb",
		"app/services/person_service.rb",
	}, listFiles(t, fs))
	assert.Contains(t, readFile(t, fs, "app/controllers/people_controller.rb"), "class PeopleController")
}
