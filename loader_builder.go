package mvcgen

import (
	internalLoader "github.com/kissoflove/mvcgen/internal/widgetlist/loader"
	"github.com/kissoflove/mvcgen/pkg/naming"
	"github.com/kissoflove/mvcgen/pkg/widget"
	"github.com/kissoflove/mvcgen/pkg/widgetlist"
)

// NewLoader constructs a widget list loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...widgetlist.LoaderOption) widgetlist.Loader {
	cfg := widgetlist.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewBuilder constructs a descriptor builder for the given naming scheme.
func NewBuilder(scheme naming.Scheme) *widget.Builder {
	return widget.NewBuilder(scheme)
}
