package scaffold

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/marshallshelly/domino/pkg/render"
)

// baseFiles are the abstract classes generated repositories and services inherit from.
var baseFiles = []struct {
	template string
	kind     ArtifactKind
}{
	{"base_repository", KindRepository},
	{"base_service", KindService},
}

// Install writes the base repository and service classes. Existing files are
// kept unless force is set. It returns the artifacts it wrote.
func Install(fs afero.Fs, r *render.Renderer, force bool, out io.Writer) ([]Artifact, error) {
	if out == nil {
		out = io.Discard
	}

	var written []Artifact
	for _, f := range baseFiles {
		path := filepath.Join(f.kind.Dir(), f.template+".rb")

		exists, err := afero.Exists(fs, path)
		if err != nil {
			return written, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if exists && !force {
			_, _ = fmt.Fprintf(out, "Skipping %s (exists)\n", path)
			continue
		}

		content, err := r.Render(f.template, render.Context{})
		if err != nil {
			return written, err
		}
		if err := fs.MkdirAll(f.kind.Dir(), 0755); err != nil {
			return written, fmt.Errorf("failed to create %s: %w", f.kind.Dir(), err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}

		_, _ = fmt.Fprintf(out, "Creating %s\n", path)
		written = append(written, Artifact{Kind: f.kind, Path: path, Content: content})
	}

	return written, nil
}
