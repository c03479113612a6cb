package svg

import (
	"strconv"

	"github.com/goliatone/go-mapsvg/pkg/overlay"
	"github.com/goliatone/go-mapsvg/pkg/render"
)

// buildView flattens an overlay into the template context. Geometry is
// pre-formatted into attribute strings here so templates never format
// numbers, and all text metadata is sanitized before it reaches the markup.
func buildView(o overlay.Overlay, options render.RenderOptions) map[string]any {
	mode := options.EffectiveStrokes()
	palette := resolvePalette(options)

	shapes := make([]map[string]any, 0, len(o.Shapes))
	for _, shape := range o.Shapes {
		shapes = append(shapes, shapeView(shape))
	}

	view := map[string]any{
		"canvas":         canvasView(o),
		"shapes":         shapes,
		"stylesheet":     buildStylesheet(mode, palette),
		"blur":           palette.Blur,
		"strokes":        mode != render.StrokeNone,
		"strokesVisible": mode == render.StrokeAlways,
	}

	if options.IncludeImage && o.Image != nil && o.Image.Src != "" {
		view["image"] = map[string]any{"href": SanitizeURL(o.Image.Src)}
	}

	return view
}

// canvasView pre-formats the canvas numbers; templates only ever see
// strings so numeric formatting stays in one place.
func canvasView(o overlay.Overlay) map[string]any {
	return map[string]any{
		"sized":   o.Sized(),
		"width":   strconv.Itoa(o.Canvas.Width),
		"height":  strconv.Itoa(o.Canvas.Height),
		"viewBox": o.ViewBox(),
	}
}

func shapeView(shape overlay.Shape) map[string]any {
	return map[string]any{
		"element": string(shape.Kind),
		"attrs":   geometryAttrs(shape),
		"href":    SanitizeURL(shape.Link.Href),
		"alt":     SanitizeText(shape.Link.Alt),
		"target":  linkTarget(shape.Link.Target),
		"title":   SanitizeText(shape.Link.Title),
		"label":   SanitizeText(shape.Label),
	}
}

// geometryAttrs renders the kind-specific attribute fragment. Values come
// from our own numeric formatter, never from user text, so the fragment is
// safe to inject unescaped.
func geometryAttrs(shape overlay.Shape) string {
	f := overlay.FormatCoord
	switch shape.Kind {
	case overlay.KindRect:
		g := shape.Rect
		return `x="` + f(g.X) + `" y="` + f(g.Y) + `" width="` + f(g.Width) + `" height="` + f(g.Height) + `"`
	case overlay.KindCircle:
		g := shape.Circle
		return `cx="` + f(g.CX) + `" cy="` + f(g.CY) + `" r="` + f(g.R) + `"`
	case overlay.KindPolygon:
		return `points="` + shape.Polygon.PointsAttr() + `"`
	default:
		return ""
	}
}

// linkTarget defaults to _self, matching <a> semantics for image-map anchors.
func linkTarget(target string) string {
	if target == "" {
		return "_self"
	}
	return SanitizeText(target)
}
