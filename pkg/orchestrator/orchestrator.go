package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	internalLoader "github.com/kissoflove/mvcgen/internal/widgetlist/loader"
	"github.com/kissoflove/mvcgen/pkg/naming"
	"github.com/kissoflove/mvcgen/pkg/render"
	appRenderer "github.com/kissoflove/mvcgen/pkg/renderers/app"
	controllerRenderer "github.com/kissoflove/mvcgen/pkg/renderers/controller"
	modelRenderer "github.com/kissoflove/mvcgen/pkg/renderers/model"
	viewRenderer "github.com/kissoflove/mvcgen/pkg/renderers/view"
	"github.com/kissoflove/mvcgen/pkg/widget"
	"github.com/kissoflove/mvcgen/pkg/widgetlist"
)

// defaultRendererOrder fixes the emission order of the generated modules.
var defaultRendererOrder = []string{"view", "controller", "model", "app"}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom widget list loader.
func WithLoader(loader widgetlist.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithBuilder injects a custom descriptor builder.
func WithBuilder(builder *widget.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithScheme fixes the naming scheme used for building descriptors and for
// rendering. The scheme is normalised before use.
func WithScheme(scheme naming.Scheme) Option {
	return func(o *Orchestrator) {
		o.scheme = scheme
		o.schemeSpecified = true
	}
}

// WithNamingFS supplies an fs.FS holding YAML naming overlays that are merged
// on top of the default scheme.
func WithNamingFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.namingFS = fsys
	}
}

// WithRenderers overrides which renderers run, in the given order. Names must
// resolve against the registry at generation time.
func WithRenderers(names ...string) Option {
	return func(o *Orchestrator) {
		if len(names) == 0 {
			return
		}
		o.rendererNames = append([]string(nil), names...)
	}
}

// Orchestrator coordinates the full pipeline from widget list to rendered
// skeleton files. It applies sensible defaults (built-in loader, default
// naming scheme, all four renderers) while remaining open to dependency
// injection for advanced callers.
type Orchestrator struct {
	loader          widgetlist.Loader
	builder         *widget.Builder
	registry        *render.Registry
	scheme          naming.Scheme
	schemeSpecified bool
	namingFS        fs.FS
	rendererNames   []string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate a skeleton from a widget
// list.
type Request struct {
	// Source identifies where the widget list lives. Optional when Document
	// is supplied.
	Source widgetlist.Source

	// Document allows callers to bypass the loader when they already have
	// the list contents.
	Document *widgetlist.Document

	// RenderOptions carries per-request instructions for renderers. A zero
	// Scheme falls back to the orchestrator's configured scheme.
	RenderOptions render.RenderOptions
}

// Result bundles the rendered files with any non-fatal diagnostics collected
// while building descriptors.
type Result struct {
	Files    []render.File
	Warnings []widget.Warning
}

// Generate executes the loader → builder → renderers sequence and returns the
// rendered files in the fixed module order.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return Result{}, err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	descriptors, warnings, err := o.builder.Build(doc.Text())
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: build descriptors: %w", err)
	}

	opts := req.RenderOptions
	if opts.Scheme == (naming.Scheme{}) {
		opts.Scheme = o.scheme
	}
	opts = opts.Normalized()

	files := make([]render.File, 0, len(o.rendererNames))
	for _, name := range o.rendererNames {
		renderer, err := o.registry.Get(name)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
		contents, err := renderer.Render(ctx, descriptors, opts)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: render %q: %w", name, err)
		}
		files = append(files, render.File{
			Name:     name,
			FileName: renderer.FileName(opts),
			Contents: contents,
		})
	}

	return Result{Files: files, Warnings: warnings}, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (widgetlist.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return widgetlist.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return widgetlist.Document{}, fmt.Errorf("orchestrator: load widget list: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(widgetlist.NewLoaderOptions())
	}

	if o.namingFS != nil {
		scheme, err := naming.LoadFS(o.namingFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load naming overlays: %w", err)
		} else {
			o.scheme = scheme
		}
	} else if o.schemeSpecified {
		o.scheme = o.scheme.Normalized()
	} else {
		o.scheme = naming.Default().Normalized()
	}

	if o.builder == nil {
		o.builder = widget.NewBuilder(o.scheme)
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registerDefaults()
	}

	if len(o.rendererNames) == 0 {
		o.rendererNames = append([]string(nil), defaultRendererOrder...)
	}

	o.defaultsApplied = true
}

func (o *Orchestrator) registerDefaults() {
	register := func(renderer render.Renderer, err error) {
		if err != nil {
			if o.initialiseErr == nil {
				o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			}
			return
		}
		o.registry.MustRegister(renderer)
	}

	view, err := viewRenderer.New()
	register(view, err)
	controller, err := controllerRenderer.New()
	register(controller, err)
	model, err := modelRenderer.New()
	register(model, err)
	app, err := appRenderer.New()
	register(app, err)
}
