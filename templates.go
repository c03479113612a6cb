package mapsvg

import (
	"io/fs"

	"github.com/goliatone/go-mapsvg/pkg/renderers/svg"
	"github.com/goliatone/go-mapsvg/pkg/styles"
)

// EmbeddedTemplates exposes the built-in SVG renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return svg.TemplatesFS()
}

// EmbeddedStyles exposes the built-in style preset bundle.
func EmbeddedStyles() fs.FS {
	return styles.EmbeddedFS()
}
