// Package mapsvg converts HTML image-map region descriptions (<area>
// elements, or GIMP .map exports) into SVG overlay documents. The package
// exposes convenience entry points over the orchestrator pipeline; each
// stage (loader, parser, overlay builder, renderer) can be swapped through
// options.
package mapsvg

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
	"github.com/goliatone/go-mapsvg/pkg/orchestrator"
	"github.com/goliatone/go-mapsvg/pkg/render"
)

// RenderOptions describes per-request overrides renderers honour, such as
// the stroke mode or a style preset.
type RenderOptions = render.RenderOptions

// StrokeMode controls outline behaviour in the generated stylesheet.
type StrokeMode = render.StrokeMode

// Result carries rendered output plus surfaced warnings.
type Result = orchestrator.Result

// Request describes one conversion.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Convert loads the image-map source, builds the overlay model, and renders
// it using the named renderer. It is the simplest entry point for callers
// that just want SVG output; pass an empty renderer name for the default.
func Convert(ctx context.Context, source imagemap.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// ConvertFromDocument renders an overlay using a pre-loaded document,
// bypassing the loader stage while still delegating to the orchestrator.
func ConvertFromDocument(ctx context.Context, doc imagemap.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator
// so theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
