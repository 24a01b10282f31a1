package widget

import (
	internalwidget "github.com/kissoflove/mvcgen/internal/widget"
	"github.com/kissoflove/mvcgen/pkg/naming"
)

// Builder re-exports the internal descriptor builder.
type Builder = internalwidget.Builder

// NewBuilder constructs a descriptor builder for the given naming scheme.
func NewBuilder(scheme naming.Scheme) *Builder {
	return internalwidget.NewBuilder(scheme)
}
