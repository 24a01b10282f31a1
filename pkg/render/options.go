package render

import "github.com/kissoflove/mvcgen/pkg/naming"

// RenderOptions carries the project-level inputs shared by every renderer.
type RenderOptions struct {
	// Scheme resolves every class, module, and derived identifier name.
	Scheme naming.Scheme
}

// Normalized returns a copy with the scheme's missing fields filled from the
// defaults, so renderers can rely on every name being present.
func (o RenderOptions) Normalized() RenderOptions {
	o.Scheme = o.Scheme.Normalized()
	return o
}
