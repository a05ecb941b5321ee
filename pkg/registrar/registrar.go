// Package registrar records factory bindings in the host application's container file.
package registrar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultPath is the container initializer that receives registration lines.
const DefaultPath = "config/initializers/container.rb"

// Registrar appends container registrations to a single configuration file.
// The read-then-append check is not safe against concurrent writers.
type Registrar struct {
	fs   afero.Fs
	path string
}

// New creates a Registrar writing to path on fs. An empty path uses DefaultPath.
func New(fs afero.Fs, path string) *Registrar {
	if path == "" {
		path = DefaultPath
	}
	return &Registrar{fs: fs, path: path}
}

// Path returns the configuration file path.
func (r *Registrar) Path() string {
	return r.path
}

// Line returns the registration line for key and className.
func Line(key, className string) string {
	return fmt.Sprintf("Container.register(:%s) { %s.new }", key, className)
}

// Register appends the binding key -> className.new unless the file already
// contains it. It reports whether the file was written.
func (r *Registrar) Register(key, className string) (bool, error) {
	line := Line(key, className)

	if err := r.fs.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", r.path, err)
	}

	existing, err := afero.ReadFile(r.fs, r.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	if strings.Contains(string(existing), line) {
		return false, nil
	}

	f, err := r.fs.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", r.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	content := line + "\n"
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		content = "\n" + content
	}
	if _, err := f.WriteString(content); err != nil {
		return false, fmt.Errorf("failed to append to %s: %w", r.path, err)
	}

	return true, nil
}
