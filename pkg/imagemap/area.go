package imagemap

import (
	"fmt"
	"strings"
)

// Shape enumerates the region kinds an <area> element (or .map line) may
// declare. ShapeDefault is part of the HTML vocabulary but has no SVG
// counterpart; builders surface it as an unsupported-shape warning.
type Shape string

const (
	ShapeRect    Shape = "rect"
	ShapeCircle  Shape = "circle"
	ShapePoly    Shape = "poly"
	ShapeDefault Shape = "default"
)

// ParseShape normalises a shape token. Tokens are case-insensitive and the
// HTML aliases (rectangle, circ, polygon) map onto their canonical kinds.
func ParseShape(token string) (Shape, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "rect", "rectangle":
		return ShapeRect, true
	case "circle", "circ":
		return ShapeCircle, true
	case "poly", "polygon":
		return ShapePoly, true
	case "default":
		return ShapeDefault, true
	default:
		return "", false
	}
}

// CheckCoords validates a coordinate count against the shape's arity: rect
// takes exactly 4 numbers (x1,y1,x2,y2), circle exactly 3 (cx,cy,r), poly an
// even count of at least 6 (three point pairs). ShapeDefault carries no
// coordinates.
func (s Shape) CheckCoords(count int) error {
	switch s {
	case ShapeRect:
		if count != 4 {
			return fmt.Errorf("rect requires exactly 4 coordinates, got %d", count)
		}
	case ShapeCircle:
		if count != 3 {
			return fmt.Errorf("circle requires exactly 3 coordinates, got %d", count)
		}
	case ShapePoly:
		if count < 6 || count%2 != 0 {
			return fmt.Errorf("poly requires an even coordinate count of at least 6, got %d", count)
		}
	case ShapeDefault:
		// The default region covers the whole image; coordinates are ignored.
	default:
		return fmt.Errorf("unknown shape %q", string(s))
	}
	return nil
}

// Location identifies where an area was found in its source document, either
// a 1-based line in a .map file or a 1-based <area> element ordinal in HTML.
type Location struct {
	Line    int
	Element int
}

func (l Location) String() string {
	switch {
	case l.Line > 0:
		return fmt.Sprintf("line %d", l.Line)
	case l.Element > 0:
		return fmt.Sprintf("area element %d", l.Element)
	default:
		return "unknown location"
	}
}

// Area is one parsed region descriptor: a shape kind, its coordinate list,
// and whatever link metadata the source carried. Values are never mutated
// after parsing.
type Area struct {
	Shape    Shape
	Coords   []float64
	Href     string
	Alt      string
	Target   string
	Title    string
	Location Location
}

// Clone returns a deep copy so builders can hold areas without aliasing the
// parser's coordinate slices.
func (a Area) Clone() Area {
	cloned := a
	if len(a.Coords) > 0 {
		cloned.Coords = append([]float64(nil), a.Coords...)
	}
	return cloned
}

// Dimensions holds the declared pixel size of the reference image. The
// overlay aligns with the raster only when these match the dimensions the
// map's coordinates were authored against; they are never inferred from
// image bytes.
type Dimensions struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// ImageRef describes the reference <img>/<image> element found alongside the
// areas, when the source declared one.
type ImageRef struct {
	Src        string
	Dimensions Dimensions
}

// HasDimensions reports whether the image declared a usable width and height.
func (r ImageRef) HasDimensions() bool {
	return r.Dimensions.Valid()
}

// Map is the parse result: the ordered area descriptors (document order is
// meaningful, it becomes SVG stacking order), the reference image if one was
// found, and any recoverable warnings raised during the pass.
type Map struct {
	Areas    []Area
	Image    *ImageRef
	Warnings []Warning
}

// Dimensions returns the declared image dimensions and whether they exist.
func (m Map) Dimensions() (Dimensions, bool) {
	if m.Image == nil || !m.Image.HasDimensions() {
		return Dimensions{}, false
	}
	return m.Image.Dimensions, true
}
