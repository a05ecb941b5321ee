package scaffold

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/marshallshelly/domino/pkg/schema"
)

var errConnDone = errors.New("connection closed")

type fakeSource struct {
	tables     []string
	columns    map[string][]schema.Column
	tablesErr  error
	columnsErr map[string]error
	calls      []string
}

func (f *fakeSource) Tables(_ context.Context) ([]string, error) {
	f.calls = append(f.calls, "tables")
	if f.tablesErr != nil {
		return nil, f.tablesErr
	}
	return f.tables, nil
}

func (f *fakeSource) Columns(_ context.Context, table string) ([]schema.Column, error) {
	f.calls = append(f.calls, "columns:"+table)
	if err := f.columnsErr[table]; err != nil {
		return nil, err
	}
	return f.columns[table], nil
}

type recordingModelGenerator struct {
	models []string
	args   [][]string
	err    error
}

func (g *recordingModelGenerator) GenerateModel(_ context.Context, e Entity, args []string) error {
	g.models = append(g.models, e.ModelName)
	g.args = append(g.args, args)
	return g.err
}

func usersSource() *fakeSource {
	return &fakeSource{
		tables: []string{"users"},
		columns: map[string][]schema.Column{
			"users": {
				{Name: "id", SQLType: "integer", Position: 0},
				{Name: "name", SQLType: "varchar(255)", Position: 1},
			},
		},
	}
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	var w io.Writer = io.Discard
	if buf != nil {
		w = buf
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newTestFs returns an in-memory file system rooted at "/" so relative
// artifact paths and Walk agree on file names.
func newTestFs() afero.Fs {
	return afero.NewBasePathFs(afero.NewMemMapFs(), "/")
}

// listFiles returns every regular file on fs relative to its root, sorted.
func listFiles(t *testing.T, fs afero.Fs) []string {
	t.Helper()

	var files []string
	err := afero.Walk(fs, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, strings.TrimPrefix(filepath.ToSlash(path), "/"))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func writeString(fs afero.Fs, path, content string) error {
	return afero.WriteFile(fs, path, []byte(content), 0644)
}
