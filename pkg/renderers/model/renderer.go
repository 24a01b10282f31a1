// Package model renders the generated Model class: plain value attributes,
// Qt item-model instances, the config_options manifest, and the observer
// trio (subscribe/unsubscribe/announce) that views hook into.
package model

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

// New constructs the model renderer applying any provided options.
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
			return nil, fmt.Errorf("model renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "model"
}

// FileName names the emitted module after the scheme's model module.
func (r *Renderer) FileName(options render.RenderOptions) string {
	return options.Normalized().Scheme.ModelModule + ".py"
}

func (r *Renderer) Render(_ context.Context, widgets []widget.Descriptor, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("model renderer: template renderer is nil")
	}

	opts := options.Normalized()

	var usesStringList, usesStandardItem, hasValues bool
	for _, w := range widgets {
		if w.Capability == nil {
			return nil, fmt.Errorf("model renderer: widget %q has no capability record", w.RawName)
		}
		if w.Capability.Value != nil {
			hasValues = true
		}
		if binding := w.Capability.ModelBinding; binding != nil {
			switch binding.Kind {
			case widget.ModelKindStringList:
				usesStringList = true
			case widget.ModelKindStandardItem:
				usesStandardItem = true
			}
		}
	}

	result, err := r.templates.RenderTemplate("templates/model.py.tmpl", map[string]any{
		"scheme":           opts.Scheme,
		"widgets":          widgets,
		"hasValues":        hasValues,
		"hasModels":        usesStringList || usesStandardItem,
		"usesStringList":   usesStringList,
		"usesStandardItem": usesStandardItem,
	})
	if err != nil {
		return nil, fmt.Errorf("model renderer: render template: %w", err)
	}
	return []byte(result), nil
}
