package overlay

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

// Kind is the SVG element kind a region translates to.
type Kind string

const (
	KindRect    Kind = "rect"
	KindCircle  Kind = "circle"
	KindPolygon Kind = "polygon"
)

// FormatCoord renders a coordinate the way SVG attributes expect: integral
// values without a trailing fraction, everything else in shortest form.
func FormatCoord(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Point is one polygon vertex.
type Point struct {
	X float64
	Y float64
}

// Rect holds normalized rectangle geometry: (X,Y) is always the top-left
// corner and Width/Height are non-negative, regardless of the corner order
// the source listed.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Circle holds circle geometry copied verbatim from the source coordinates.
type Circle struct {
	CX float64
	CY float64
	R  float64
}

// Polygon holds the vertex list in source order; winding is preserved and
// coincident points are not deduplicated.
type Polygon struct {
	Points []Point
}

// PointsAttr renders the SVG points attribute value ("x1,y1 x2,y2 ...").
func (p Polygon) PointsAttr() string {
	pairs := make([]string, 0, len(p.Points))
	for _, pt := range p.Points {
		pairs = append(pairs, FormatCoord(pt.X)+","+FormatCoord(pt.Y))
	}
	return strings.Join(pairs, " ")
}

// Link carries the interactive metadata preserved from the source area.
type Link struct {
	Href   string
	Alt    string
	Target string
	Title  string
}

// IsZero reports whether the shape has no hyperlink to wrap.
func (l Link) IsZero() bool {
	return l.Href == ""
}

// Shape is one translated region. Exactly one geometry pointer is set,
// matching Kind.
type Shape struct {
	Kind    Kind
	Rect    *Rect
	Circle  *Circle
	Polygon *Polygon
	Link    Link
	Label   string
	// Index is the zero-based position in the source document; shapes render
	// in index order so stacking matches the input.
	Index int
}

// Overlay is the document model renderers consume: an optional canvas size,
// the ordered shapes, and the warnings accumulated along the pipeline.
type Overlay struct {
	Canvas   imagemap.Dimensions
	Image    *imagemap.ImageRef
	Shapes   []Shape
	Warnings []imagemap.Warning
}

// Sized reports whether the overlay has usable canvas dimensions. Unsized
// overlays still render valid documents but cannot guarantee alignment.
func (o Overlay) Sized() bool {
	return o.Canvas.Valid()
}

// ViewBox renders the SVG viewBox value for the canvas ("0 0 w h").
func (o Overlay) ViewBox() string {
	return "0 0 " + strconv.Itoa(o.Canvas.Width) + " " + strconv.Itoa(o.Canvas.Height)
}
