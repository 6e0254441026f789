package intellisense

import (
	_ "embed"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/fdmota/breeze.js/errors"
)

// DefaultTemplate is the template shipped at intellisense/intellisense.template.txt
//
//go:embed intellisense.template.txt
var DefaultTemplate string

// GeneratedMarker starts the metadata line that changes on every run
const GeneratedMarker = "// Generated on:"

// Engine compiles template text. Any templating library can back the renderer
// by implementing it.
type Engine interface {
	Compile(name, text string) (Compiled, error)
}

// Compiled is a template ready to execute against a Model
type Compiled interface {
	Execute(w io.Writer, data any) error
}

// TextEngine is the default Engine: text/template with the sprig function map
type TextEngine struct {
	funcs template.FuncMap
}

// NewTextEngine creates a text/template engine
func NewTextEngine() *TextEngine {
	funcs := sprig.TxtFuncMap()
	funcs["paramNames"] = paramNames
	funcs["typeAttrs"] = typeAttrs
	return &TextEngine{funcs: funcs}
}

// Compile implements Engine
func (e *TextEngine) Compile(name, text string) (Compiled, error) {
	tmpl, err := template.New(name).Funcs(e.funcs).Parse(text)
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

// paramNames joins parameter names for a JS function signature
func paramNames(params []Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// typeAttrs renders the type and elementType attributes of a doc-comment tag
func typeAttrs(t TypeRef) string {
	if t.Name == "" {
		return ""
	}
	attrs := `type="` + t.Name + `"`
	if t.ElementType != "" {
		attrs += ` elementType="` + t.ElementType + `"`
	}
	return attrs
}

// Renderer feeds a Model through a template
type Renderer struct {
	engine Engine
}

// NewRenderer creates a renderer; a nil engine selects the TextEngine
func NewRenderer(engine Engine) *Renderer {
	if engine == nil {
		engine = NewTextEngine()
	}
	return &Renderer{engine: engine}
}

// Render compiles text and executes it with the model as context
func (r *Renderer) Render(model *Model, name, text string) (string, error) {
	compiled, err := r.engine.Compile(name, text)
	if err != nil {
		return "", errors.Wrapf(err, "failed to compile template %s", name)
	}

	var sb strings.Builder
	if err := compiled.Execute(&sb, model); err != nil {
		return "", errors.Wrapf(err, "failed to execute template %s", name)
	}
	return sb.String(), nil
}

// RenderFile renders the template stored at path.
// Returns ErrTemplateMissing when the file does not exist.
func (r *Renderer) RenderFile(model *Model, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewTemplateMissingError(path)
		}
		return "", errors.Wrapf(err, "failed to stat template %s", path)
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read template %s", path)
	}

	return r.Render(model, path, string(text))
}
