// Package model builds overlay models from parsed image maps. This is the
// translation stage: each area descriptor becomes its SVG counterpart (rect,
// circle, polygon) with geometry derived deterministically from the source
// coordinates.
package model

import (
	"fmt"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
	"github.com/goliatone/go-mapsvg/pkg/overlay"
)

// Builder converts parsed image maps into overlay models.
type Builder struct {
	canvas *imagemap.Dimensions
}

// Ensure the implementation satisfies the public interface.
var _ overlay.Builder = (*Builder)(nil)

// New creates a Builder from a resolved configuration.
func New(cfg overlay.BuilderConfig) *Builder {
	b := &Builder{}
	if cfg.Canvas != nil {
		clone := *cfg.Canvas
		b.canvas = &clone
	}
	return b
}

// Build translates every area into a shape, preserving document order.
// Regions with no SVG counterpart (shape "default") are skipped with a
// surfaced warning rather than silently dropped. A nil canvas override falls
// back to the dimensions the source declared; when neither exists the
// overlay stays unsized.
func (b *Builder) Build(m imagemap.Map) (overlay.Overlay, error) {
	out := overlay.Overlay{
		Image:    cloneImage(m.Image),
		Warnings: append([]imagemap.Warning(nil), m.Warnings...),
	}

	switch {
	case b.canvas != nil:
		out.Canvas = *b.canvas
	default:
		if dims, ok := m.Dimensions(); ok {
			out.Canvas = dims
		}
	}

	for i, area := range m.Areas {
		shape, err := TranslateArea(area)
		if err != nil {
			return overlay.Overlay{}, err
		}
		if shape == nil {
			out.Warnings = append(out.Warnings, imagemap.Warning{
				Kind:    imagemap.WarningUnsupportedShape,
				Message: fmt.Sprintf("%s: shape %q has no SVG equivalent; region skipped", area.Location, area.Shape),
			})
			continue
		}
		shape.Index = i
		out.Shapes = append(out.Shapes, *shape)
	}

	return out, nil
}

// TranslateArea is the pure area-to-shape mapping. It returns nil (and no
// error) for shapes without an SVG counterpart so callers can decide how to
// surface the skip.
func TranslateArea(area imagemap.Area) (*overlay.Shape, error) {
	if err := area.Shape.CheckCoords(len(area.Coords)); err != nil {
		return nil, &imagemap.ParseError{Location: area.Location, Detail: err.Error()}
	}

	shape := overlay.Shape{
		Link: overlay.Link{
			Href:   area.Href,
			Alt:    area.Alt,
			Target: area.Target,
			Title:  area.Title,
		},
		Label: area.Alt,
	}

	c := area.Coords
	switch area.Shape {
	case imagemap.ShapeRect:
		shape.Kind = overlay.KindRect
		shape.Rect = translateRect(c)
	case imagemap.ShapeCircle:
		shape.Kind = overlay.KindCircle
		shape.Circle = &overlay.Circle{CX: c[0], CY: c[1], R: c[2]}
	case imagemap.ShapePoly:
		shape.Kind = overlay.KindPolygon
		shape.Polygon = translatePolygon(c)
	case imagemap.ShapeDefault:
		return nil, nil
	default:
		return nil, &imagemap.ParseError{
			Location: area.Location,
			Detail:   fmt.Sprintf("unrecognized shape token %q", area.Shape),
		}
	}

	return &shape, nil
}

// translateRect normalizes reversed corners: some image-map generators list
// the bottom-right coordinate first, so the top-left corner is the
// coordinate-wise minimum and the extent is the absolute difference.
func translateRect(c []float64) *overlay.Rect {
	x1, y1, x2, y2 := c[0], c[1], c[2], c[3]
	return &overlay.Rect{
		X:      minf(x1, x2),
		Y:      minf(y1, y2),
		Width:  absf(x2 - x1),
		Height: absf(y2 - y1),
	}
}

// translatePolygon pairs consecutive coordinates in input order. Winding is
// preserved exactly as given.
func translatePolygon(c []float64) *overlay.Polygon {
	points := make([]overlay.Point, 0, len(c)/2)
	for i := 0; i+1 < len(c); i += 2 {
		points = append(points, overlay.Point{X: c[i], Y: c[i+1]})
	}
	return &overlay.Polygon{Points: points}
}

func cloneImage(ref *imagemap.ImageRef) *imagemap.ImageRef {
	if ref == nil {
		return nil
	}
	clone := *ref
	return &clone
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
