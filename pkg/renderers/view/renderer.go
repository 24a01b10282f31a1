// Package view renders the generated View class: UI wiring, per-widget value
// and enabled properties, model bindings, signal connections, and the single
// update-from-model synchronisation point.
package view

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

// New constructs the view renderer applying any provided options.
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
			return nil, fmt.Errorf("view renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "view"
}

// FileName names the emitted module after the scheme's view module.
func (r *Renderer) FileName(options render.RenderOptions) string {
	return options.Normalized().Scheme.ViewModule + ".py"
}

func (r *Renderer) Render(_ context.Context, widgets []widget.Descriptor, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("view renderer: template renderer is nil")
	}

	opts := options.Normalized()

	var hasValues, hasModels, hasSignals bool
	for _, w := range widgets {
		if w.Capability == nil {
			return nil, fmt.Errorf("view renderer: widget %q has no capability record", w.RawName)
		}
		hasValues = hasValues || w.Capability.Value != nil
		hasModels = hasModels || w.Capability.ModelBinding != nil
		hasSignals = hasSignals || w.Capability.Signal != nil
	}

	result, err := r.templates.RenderTemplate("templates/view.py.tmpl", map[string]any{
		"scheme":     opts.Scheme,
		"widgets":    widgets,
		"hasValues":  hasValues,
		"hasModels":  hasModels,
		"hasSignals": hasSignals,
	})
	if err != nil {
		return nil, fmt.Errorf("view renderer: render template: %w", err)
	}
	return []byte(result), nil
}
