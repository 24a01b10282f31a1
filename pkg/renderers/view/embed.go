package view

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can derive
// customised views from the built-in layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
