package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/marshallshelly/domino/pkg/render"
)

// ArtifactKind identifies a generated file type.
type ArtifactKind string

const (
	KindModel      ArtifactKind = "model"
	KindRepository ArtifactKind = "repository"
	KindService    ArtifactKind = "service"
	KindBlueprint  ArtifactKind = "blueprint"
	KindController ArtifactKind = "controller"
)

// DefaultOrder is the order in which scaffold writes artifacts.
var DefaultOrder = []ArtifactKind{KindRepository, KindService, KindBlueprint, KindController}

// GeneratorOrder is the order used when generating from command-line attributes.
var GeneratorOrder = []ArtifactKind{KindService, KindRepository, KindBlueprint, KindController}

// Artifact is a rendered file and the path it was written to.
type Artifact struct {
	Kind    ArtifactKind `json:"kind"`
	Path    string       `json:"path"`
	Content string       `json:"-"`
}

// Dir returns the output folder for the kind.
func (k ArtifactKind) Dir() string {
	switch k {
	case KindBlueprint:
		return "app/mappers"
	case KindController:
		return "app/controllers"
	case KindRepository:
		return "app/repositories"
	case KindService:
		return "app/services"
	case KindModel:
		return "app/models"
	default:
		return "app/" + string(k) + "s"
	}
}

// FileName returns the output file name of the kind for e.
func (k ArtifactKind) FileName(e Entity) string {
	switch k {
	case KindController:
		return e.PluralFileName + "_controller.rb"
	case KindModel:
		return e.FileName + ".rb"
	default:
		return e.FileName + "_" + string(k) + ".rb"
	}
}

// Path returns the output path of the kind for e, relative to the project root.
func (k ArtifactKind) Path(e Entity) string {
	return filepath.Join(k.Dir(), k.FileName(e))
}

// writeArtifact renders the kind's template for e and overwrites its output file.
func writeArtifact(fs afero.Fs, r *render.Renderer, kind ArtifactKind, e Entity) (Artifact, error) {
	content, err := r.Render(string(kind), e.Context())
	if err != nil {
		return Artifact{}, err
	}

	if err := fs.MkdirAll(kind.Dir(), 0755); err != nil {
		return Artifact{}, fmt.Errorf("failed to create %s: %w", kind.Dir(), err)
	}

	path := kind.Path(e)
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		return Artifact{}, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return Artifact{Kind: kind, Path: path, Content: content}, nil
}
