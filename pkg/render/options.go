package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-mapsvg/pkg/styles"
)

// StrokeMode controls the region outline behaviour in the generated
// stylesheet.
type StrokeMode string

const (
	// StrokeNone never draws an outline.
	StrokeNone StrokeMode = "none"
	// StrokeHover draws the outline only while the pointer is over the
	// region. This is the default.
	StrokeHover StrokeMode = "hover"
	// StrokeAlways keeps the outline visible unconditionally.
	StrokeAlways StrokeMode = "always"
)

// ParseStrokeMode normalises a stroke mode token. Empty input selects the
// hover default.
func ParseStrokeMode(token string) (StrokeMode, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "":
		return StrokeHover, nil
	case "none":
		return StrokeNone, nil
	case "hover":
		return StrokeHover, nil
	case "always":
		return StrokeAlways, nil
	default:
		return "", fmt.Errorf("render: unknown stroke mode %q", token)
	}
}

// ResolveStrokeMode maps the CLI flag pair onto a mode. Disabling strokes
// wins over forcing them visible, per the documented flag precedence.
func ResolveStrokeMode(noStrokes, visibleStrokes bool) StrokeMode {
	switch {
	case noStrokes:
		return StrokeNone
	case visibleStrokes:
		return StrokeAlways
	default:
		return StrokeHover
	}
}

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the overlay pipeline.
type RenderOptions struct {
	// Strokes selects the outline behaviour. The zero value renders as the
	// hover default.
	Strokes StrokeMode

	// Style applies a named preset on top of the stroke mode. Preset stroke
	// settings lose to an explicit Strokes value.
	Style *styles.Preset

	// Theme carries resolved go-theme configuration. Tokens become CSS custom
	// properties in the emitted style block so themed colors reach the
	// stylesheet without template changes.
	Theme *theme.RendererConfig

	// IncludeImage places an <image> element referencing the source raster
	// beneath the shape layer when the overlay carries an image src. The
	// raster is referenced, never re-embedded.
	IncludeImage bool
}

// EffectiveStrokes resolves the stroke mode from the explicit option, then
// the preset, then the hover default.
func (o RenderOptions) EffectiveStrokes() StrokeMode {
	if o.Strokes != "" {
		return o.Strokes
	}
	if o.Style != nil {
		if mode, err := ParseStrokeMode(o.Style.Strokes); err == nil {
			return mode
		}
	}
	return StrokeHover
}
