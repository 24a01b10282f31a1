// Package controller renders the generated Controller class: one mutator
// method per signal-emitting widget, the sole authorised writer of the
// model's matching attribute from the UI side.
package controller

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

// New constructs the controller renderer applying any provided options.
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
			return nil, fmt.Errorf("controller renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "controller"
}

// FileName names the emitted module after the scheme's controller module.
func (r *Renderer) FileName(options render.RenderOptions) string {
	return options.Normalized().Scheme.ControllerModule + ".py"
}

func (r *Renderer) Render(_ context.Context, widgets []widget.Descriptor, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("controller renderer: template renderer is nil")
	}

	opts := options.Normalized()

	// Resolve the handler argument up front: signals without a payload
	// forward the view's current property value under the name "value".
	handlers := make([]map[string]any, 0, len(widgets))
	for _, w := range widgets {
		if w.Capability == nil {
			return nil, fmt.Errorf("controller renderer: widget %q has no capability record", w.RawName)
		}
		sig := w.Capability.Signal
		if sig == nil {
			continue
		}
		arg := sig.Arg
		if arg == "" {
			arg = "value"
		}
		handlers = append(handlers, map[string]any{
			"method":   w.Names.ControllerMethod,
			"arg":      arg,
			"property": w.Names.Property,
		})
	}

	result, err := r.templates.RenderTemplate("templates/controller.py.tmpl", map[string]any{
		"scheme":   opts.Scheme,
		"handlers": handlers,
	})
	if err != nil {
		return nil, fmt.Errorf("controller renderer: render template: %w", err)
	}
	return []byte(result), nil
}
