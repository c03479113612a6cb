// Package render defines the renderer contract shared by the SVG and inline
// output formats, the registry used to discover them, and the style options
// renderers honour.
package render

import (
	"context"

	"github.com/goliatone/go-mapsvg/pkg/overlay"
)

// Renderer converts an overlay model into a byte representation (a standalone
// SVG document, an HTML embedding, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, o overlay.Overlay, options RenderOptions) ([]byte, error)
}
