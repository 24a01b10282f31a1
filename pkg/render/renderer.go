package render

import (
	"context"

	"github.com/kissoflove/mvcgen/pkg/widget"
)

// Renderer produces one of the generated source files from the ordered
// widget descriptor list. Renderers are pure: the same descriptors and
// options always yield the same bytes.
type Renderer interface {
	Name() string
	FileName(options RenderOptions) string
	Render(ctx context.Context, widgets []widget.Descriptor, options RenderOptions) ([]byte, error)
}

// File pairs a renderer's output with its destination file name. Paths are
// resolved by the emitter, not here.
type File struct {
	Name     string
	FileName string
	Contents []byte
}
