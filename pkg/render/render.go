// Package render renders artifact templates against an entity context.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"github.com/marshallshelly/domino/pkg/naming"
	"github.com/marshallshelly/domino/pkg/schema"
)

//go:embed templates/*.rb.tmpl
var defaultTemplates embed.FS

// Extension is appended to a template name to find its file.
const Extension = ".rb.tmpl"

// ErrMissingTemplate is returned when a named template file does not exist.
var ErrMissingTemplate = errors.New("missing template")

// MissingTemplateError reports which template could not be found.
type MissingTemplateError struct {
	Name string
	Path string
}

// Error implements the error interface.
func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("missing template: %s (%s)", e.Name, e.Path)
}

// Is reports whether target is ErrMissingTemplate.
func (e *MissingTemplateError) Is(target error) bool {
	return target == ErrMissingTemplate
}

// Context is the data made available to templates.
type Context struct {
	ModelName       string          // PascalCase singular: "UserProfile"
	PluralModelName string          // PascalCase plural: "UserProfiles"
	FileName        string          // snake_case singular: "user_profile"
	PluralFileName  string          // snake_case plural: "user_profiles"
	TableName       string          // Source table, or PluralFileName when built from attributes
	Fields          []string        // Column names without the primary key
	Columns         []schema.Column // Columns without the primary key
	Namespace       string          // Reserved; passed through unchanged
}

// Renderer renders templates from a file system.
type Renderer struct {
	fsys  fs.FS
	funcs template.FuncMap
}

// New creates a Renderer that reads templates from fsys.
func New(fsys fs.FS) *Renderer {
	return &Renderer{
		fsys:  fsys,
		funcs: TemplateFuncs(naming.Default()),
	}
}

// Default creates a Renderer over the templates shipped with the binary.
func Default() *Renderer {
	sub, err := fs.Sub(defaultTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return New(sub)
}

// FromDir creates a Renderer over a templates directory on disk.
func FromDir(dir string) (*Renderer, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates path %s is not a directory", dir)
	}
	return New(os.DirFS(dir)), nil
}

// WithNamer returns a copy of the renderer whose inflection funcs use n.
func (r *Renderer) WithNamer(n *naming.Namer) *Renderer {
	return &Renderer{fsys: r.fsys, funcs: TemplateFuncs(n)}
}

// Has reports whether the named template exists.
func (r *Renderer) Has(name string) bool {
	_, err := fs.Stat(r.fsys, name+Extension)
	return err == nil
}

// Render renders the named template with ctx.
func (r *Renderer) Render(name string, ctx Context) (string, error) {
	path := name + Extension

	content, err := fs.ReadFile(r.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &MissingTemplateError{Name: name, Path: path}
		}
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}

	tmpl, err := template.New(name).Funcs(r.funcs).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", path, err)
	}

	return buf.String(), nil
}

// TemplateFuncs returns the function map available to artifact templates.
func TemplateFuncs(n *naming.Namer) template.FuncMap {
	return template.FuncMap{
		"pluralize":   n.Pluralize,
		"singularize": n.Singularize,
		"camelize":    naming.Camelize,
		"underscore":  naming.Underscore,
		"symbols":     symbols,
		"join":        strings.Join,
		"lower":       strings.ToLower,
		"upper":       strings.ToUpper,
	}
}

// symbols formats names as a Ruby symbol list.
// e.g., ["name", "email"] -> ":name, :email"
func symbols(names []string) string {
	quoted := make([]string, len(names))
	for i, s := range names {
		quoted[i] = ":" + s
	}
	return strings.Join(quoted, ", ")
}
