package phonefield

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplate "github.com/goliatone/go-template"

	"github.com/goliatone/go-phoneform/components/countries"
)

const (
	// SelectName is the form name of the country dropdown.
	SelectName = "country-code"
	// InputName is the form name of the digits input.
	InputName = "phone-number"
	// MaxInputLength bounds the digits input in rendered markup.
	MaxInputLength = 15
	// WidgetTemplate is the template name looked up in the renderer's FS.
	WidgetTemplate = "phone_input"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Templates returns the embedded widget templates rooted at templates/.
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(fmt.Sprintf("phonefield: sub templates: %v", err))
	}
	return sub
}

// RenderOption configures a Renderer.
type RenderOption func(*renderConfig)

type renderConfig struct {
	templates fs.FS
	extension string
}

// WithTemplatesFS replaces the embedded templates. The FS must hold a
// phone_input template with the configured extension.
func WithTemplatesFS(files fs.FS) RenderOption {
	return func(cfg *renderConfig) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithExtension overrides the ".tpl" template extension.
func WithExtension(ext string) RenderOption {
	return func(cfg *renderConfig) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithTemplateOptions accepts go-template engine options so hosts sharing a
// go-template configuration can pass it through unchanged. The widget set
// only needs the FS loader, so the options are currently ignored.
func WithTemplateOptions(_ ...gotemplate.Option) RenderOption {
	return func(*renderConfig) {}
}

// Renderer renders the widget through a pongo2 template set loaded from an
// fs.FS. Parsed templates are cached by path.
type Renderer struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	ext       string
}

// NewRenderer builds a Renderer over the embedded templates unless
// WithTemplatesFS says otherwise.
func NewRenderer(options ...RenderOption) (*Renderer, error) {
	cfg := &renderConfig{extension: ".tpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		cfg.templates = Templates()
	}
	return &Renderer{
		set:       pongo2.NewSet("phonefield", pongo2.NewFSLoader(cfg.templates)),
		templates: make(map[string]*pongo2.Template),
		ext:       cfg.extension,
	}, nil
}

// Render writes the markup for field's current state.
func (r *Renderer) Render(w io.Writer, f *Field) error {
	if r == nil || r.set == nil {
		return errors.New("phonefield: renderer is nil")
	}
	if w == nil {
		return errors.New("phonefield: nil writer")
	}
	if f == nil {
		return errors.New("phonefield: nil field")
	}
	tpl, err := r.template(WidgetTemplate + r.ext)
	if err != nil {
		return err
	}
	if err := tpl.ExecuteWriter(f.renderContext(), w); err != nil {
		return fmt.Errorf("phonefield: render: %w", err)
	}
	return nil
}

func (r *Renderer) template(path string) (*pongo2.Template, error) {
	r.mu.RLock()
	tpl, ok := r.templates[path]
	r.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.templates[path]; ok {
		return tpl, nil
	}
	tpl, err := r.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("phonefield: load template %q: %w", path, err)
	}
	r.templates[path] = tpl
	return tpl, nil
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
	defaultErr      error
)

// DefaultRenderer returns the shared Renderer over the embedded templates.
func DefaultRenderer() (*Renderer, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = NewRenderer()
	})
	return defaultRenderer, defaultErr
}

// Render writes the widget markup for the field's current state using the
// default renderer. Each option carries its country code as value and its
// dial prefix as data-prefix.
func (f *Field) Render(w io.Writer) error {
	r, err := DefaultRenderer()
	if err != nil {
		return err
	}
	return r.Render(w, f)
}

func (f *Field) renderContext() pongo2.Context {
	return pongo2.Context{
		"select_name": SelectName,
		"input_name":  InputName,
		"required":    f.opts.Required,
		"placeholder": f.opts.Placeholder,
		"countries":   countries.List(),
		"selected":    f.state.Country,
		"raw":         f.state.Raw,
		"message":     f.state.Message,
		"max_length":  MaxInputLength,
	}
}
