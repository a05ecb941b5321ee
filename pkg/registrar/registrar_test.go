package registrar

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := New(fs, "")

	written, err := r.Register("user_repository", "UserRepository")
	require.NoError(t, err)
	assert.True(t, written)

	content, err := afero.ReadFile(fs, DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "Container.register(:user_repository) { UserRepository.new }\n", string(content))
}

func TestRegister_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := New(fs, "config/container.rb")

	written, err := r.Register("user_service", "UserService")
	require.NoError(t, err)
	assert.True(t, written)

	written, err = r.Register("user_service", "UserService")
	require.NoError(t, err)
	assert.False(t, written)

	content, err := afero.ReadFile(fs, "config/container.rb")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), Line("user_service", "UserService")))
}

func TestRegister_AppendsWithoutReplacing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, DefaultPath, []byte("Container = Dry::Container.new"), 0644))

	r := New(fs, DefaultPath)
	_, err := r.Register("user_repository", "UserRepository")
	require.NoError(t, err)
	_, err = r.Register("user_service", "UserService")
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, DefaultPath)
	require.NoError(t, err)
	assert.Equal(t,
		"Container = Dry::Container.new\n"+
			"Container.register(:user_repository) { UserRepository.new }\n"+
			"Container.register(:user_service) { UserService.new }\n",
		string(content))
}

func TestRegister_ReadOnlyFs(t *testing.T) {
	r := New(afero.NewReadOnlyFs(afero.NewMemMapFs()), DefaultPath)

	written, err := r.Register("user_repository", "UserRepository")
	assert.Error(t, err)
	assert.False(t, written)
}

func TestPath(t *testing.T) {
	assert.Equal(t, DefaultPath, New(afero.NewMemMapFs(), "").Path())
	assert.Equal(t, "x.rb", New(afero.NewMemMapFs(), "x.rb").Path())
}
