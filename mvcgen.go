// Package mvcgen turns a flat widget list into a runnable PyQt MVC skeleton:
// a view bound to a pyuic-generated UI class, a controller that mediates
// widget signals, an observable model, and an application entry point.
package mvcgen

import (
	"context"

	"github.com/kissoflove/mvcgen/pkg/naming"
	"github.com/kissoflove/mvcgen/pkg/orchestrator"
	"github.com/kissoflove/mvcgen/pkg/render"
	"github.com/kissoflove/mvcgen/pkg/widget"
	"github.com/kissoflove/mvcgen/pkg/widgetlist"
)

// Scheme aliases naming.Scheme for callers configuring class and module names.
type Scheme = naming.Scheme

// RenderOptions describes per-request overrides that renderers can use.
type RenderOptions = render.RenderOptions

// File is a single rendered output file.
type File = render.File

// Descriptor is the per-widget capability record driving all renderers.
type Descriptor = widget.Descriptor

// Warning is a non-fatal diagnostic emitted while building descriptors.
type Warning = widget.Warning

// Request aliases the orchestrator request for single-import consumers.
type Request = orchestrator.Request

// Result aliases the orchestrator result for single-import consumers.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the widget list from source and renders the full skeleton.
// It is the simplest entry point for callers that want all four files.
func Generate(ctx context.Context, source widgetlist.Source, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Source: source})
}

// GenerateFromDocument renders a skeleton from a pre-loaded widget list,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc widgetlist.Document, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Document: &doc})
}

// WithScheme fixes the naming scheme used across every generated file.
func WithScheme(scheme Scheme) orchestrator.Option {
	return orchestrator.WithScheme(scheme)
}
