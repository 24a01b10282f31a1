// Package app renders the generated application entry point that wires
// model, controller, and view together and starts the Qt event loop.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/kissoflove/mvcgen/pkg/render"
	rendertemplate "github.com/kissoflove/mvcgen/pkg/render/template"
	gotemplate "github.com/kissoflove/mvcgen/pkg/render/template/gotemplate"
	"github.com/kissoflove/mvcgen/pkg/widget"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the application renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("app renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "app"
}

// FileName names the emitted module after the scheme's app module.
func (r *Renderer) FileName(options render.RenderOptions) string {
	return options.Normalized().Scheme.AppModule + ".py"
}

// Render is widget-independent: the entry point only depends on the naming
// scheme, so the descriptor slice is accepted for interface symmetry.
func (r *Renderer) Render(_ context.Context, _ []widget.Descriptor, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("app renderer: template renderer is nil")
	}

	opts := options.Normalized()

	result, err := r.templates.RenderTemplate("templates/main.py.tmpl", map[string]any{
		"scheme": opts.Scheme,
	})
	if err != nil {
		return nil, fmt.Errorf("app renderer: render template: %w", err)
	}
	return []byte(result), nil
}
