package parser_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mapsvg/internal/imagemap/parser"
	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

func newDocument(t *testing.T, name, content string) imagemap.Document {
	t.Helper()
	doc, err := imagemap.NewDocument(imagemap.SourceFromFS(name), []byte(content))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

func parse(t *testing.T, doc imagemap.Document, options ...imagemap.ParserOption) imagemap.Map {
	t.Helper()
	p := parser.New(imagemap.NewParserOptions(options...))
	parsed, err := p.Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return parsed
}

func TestParse_MapFile(t *testing.T) {
	content := strings.Join([]string{
		"# floor plan regions",
		"",
		`rect 10,10,100,60 "Lobby"`,
		"circle 200 150 40",
		`poly 10,200 60,200 35,260 "Stairs"`,
	}, "\n")

	parsed := parse(t, newDocument(t, "floor.map", content))

	want := []imagemap.Area{
		{
			Shape:    imagemap.ShapeRect,
			Coords:   []float64{10, 10, 100, 60},
			Alt:      "Lobby",
			Location: imagemap.Location{Line: 3},
		},
		{
			Shape:    imagemap.ShapeCircle,
			Coords:   []float64{200, 150, 40},
			Location: imagemap.Location{Line: 4},
		},
		{
			Shape:    imagemap.ShapePoly,
			Coords:   []float64{10, 200, 60, 200, 35, 260},
			Alt:      "Stairs",
			Location: imagemap.Location{Line: 5},
		},
	}
	if diff := cmp.Diff(want, parsed.Areas); diff != "" {
		t.Fatalf("areas mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MapFileSeparators(t *testing.T) {
	// Commas, spaces, and mixes of both tokenize identically.
	variants := []string{
		"rect 10,10,100,60",
		"rect 10 10 100 60",
		"rect 10, 10, 100, 60",
		"rect\t10,10\t100,60",
	}

	var first []float64
	for _, line := range variants {
		parsed := parse(t, newDocument(t, "regions.map", line))
		if len(parsed.Areas) != 1 {
			t.Fatalf("%q: want 1 area, got %d", line, len(parsed.Areas))
		}
		coords := parsed.Areas[0].Coords
		if first == nil {
			first = coords
			continue
		}
		if diff := cmp.Diff(first, coords); diff != "" {
			t.Fatalf("%q tokenized differently (-want +got):\n%s", line, diff)
		}
	}
}

func TestParse_MapFileArityError(t *testing.T) {
	p := parser.New(imagemap.NewParserOptions())
	doc := newDocument(t, "regions.map", "rect 10,10,100")

	_, err := p.Parse(context.Background(), doc)
	if err == nil {
		t.Fatal("expected arity error")
	}
	if !errors.Is(err, imagemap.ErrMalformed) {
		t.Fatalf("want ErrMalformed, got %v", err)
	}

	// The message names the shape, the expectation, and the line.
	msg := err.Error()
	for _, fragment := range []string{"rect", "4", "line 1"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("error %q missing %q", msg, fragment)
		}
	}
}

func TestParse_MapFileUnknownShape(t *testing.T) {
	p := parser.New(imagemap.NewParserOptions())
	doc := newDocument(t, "regions.map", "triangle 0,0,10,10,5,20")

	_, err := p.Parse(context.Background(), doc)
	if !errors.Is(err, imagemap.ErrMalformed) {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
	if !strings.Contains(err.Error(), "triangle") {
		t.Fatalf("error should name the token: %v", err)
	}
}

func TestParse_MapFileNonNumericCoord(t *testing.T) {
	p := parser.New(imagemap.NewParserOptions())
	doc := newDocument(t, "regions.map", "circle 10,ten,5")

	_, err := p.Parse(context.Background(), doc)
	if !errors.Is(err, imagemap.ErrMalformed) {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
}

func TestParse_MapFileMissingDimensionsWarning(t *testing.T) {
	parsed := parse(t, newDocument(t, "regions.map", "rect 0,0,10,10"))

	if len(parsed.Warnings) != 1 {
		t.Fatalf("want 1 warning, got %d: %v", len(parsed.Warnings), parsed.Warnings)
	}
	if parsed.Warnings[0].Kind != imagemap.WarningMissingDimensions {
		t.Fatalf("unexpected warning kind %q", parsed.Warnings[0].Kind)
	}
}

func TestParse_RequireDimensions(t *testing.T) {
	p := parser.New(imagemap.NewParserOptions(imagemap.WithRequireDimensions()))
	doc := newDocument(t, "regions.map", "rect 0,0,10,10")

	if _, err := p.Parse(context.Background(), doc); err == nil {
		t.Fatal("expected error when dimensions are required but absent")
	}
}

func TestParse_HTML(t *testing.T) {
	content := `<html><body>
<img src="museum.png" width="640" height="480" usemap="#floor" />
<map name="floor">
<area shape="rect" coords="10,10,100,60" href="/lobby" alt="Lobby" />
<area shape="circle" coords="200,150,40" href="/desk" alt="Desk" target="_blank" title="Front desk" />
<area shape="poly" coords="10,200,60,200,35,260" href="/stairs" alt="Stairs" />
</map>
</body></html>`

	parsed := parse(t, newDocument(t, "floor.html", content))

	if len(parsed.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", parsed.Warnings)
	}
	if parsed.Image == nil {
		t.Fatal("expected the reference image")
	}
	wantImage := imagemap.ImageRef{
		Src:        "museum.png",
		Dimensions: imagemap.Dimensions{Width: 640, Height: 480},
	}
	if diff := cmp.Diff(wantImage, *parsed.Image); diff != "" {
		t.Fatalf("image mismatch (-want +got):\n%s", diff)
	}

	want := []imagemap.Area{
		{
			Shape:    imagemap.ShapeRect,
			Coords:   []float64{10, 10, 100, 60},
			Href:     "/lobby",
			Alt:      "Lobby",
			Location: imagemap.Location{Element: 1},
		},
		{
			Shape:    imagemap.ShapeCircle,
			Coords:   []float64{200, 150, 40},
			Href:     "/desk",
			Alt:      "Desk",
			Target:   "_blank",
			Title:    "Front desk",
			Location: imagemap.Location{Element: 2},
		},
		{
			Shape:    imagemap.ShapePoly,
			Coords:   []float64{10, 200, 60, 200, 35, 260},
			Href:     "/stairs",
			Alt:      "Stairs",
			Location: imagemap.Location{Element: 3},
		},
	}
	if diff := cmp.Diff(want, parsed.Areas); diff != "" {
		t.Fatalf("areas mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_HTMLShapeDefaults(t *testing.T) {
	// A missing shape attribute means rect; px suffixes on dimensions parse.
	content := `<img src="m.png" width="100px" height="50px" />
<area coords="0,0,10,10" href="/a" />`

	parsed := parse(t, newDocument(t, "fragment.html", content))

	if len(parsed.Areas) != 1 || parsed.Areas[0].Shape != imagemap.ShapeRect {
		t.Fatalf("unexpected areas: %+v", parsed.Areas)
	}
	dims, ok := parsed.Dimensions()
	if !ok {
		t.Fatal("expected dimensions from px-suffixed attributes")
	}
	if dims.Width != 100 || dims.Height != 50 {
		t.Fatalf("unexpected dimensions: %+v", dims)
	}
}

func TestParse_HTMLPrefersSizedImage(t *testing.T) {
	content := `<img src="spacer.gif" />
<img src="real.png" width="300" height="200" />
<area shape="rect" coords="0,0,10,10" />`

	parsed := parse(t, newDocument(t, "page.html", content))

	if parsed.Image == nil || parsed.Image.Src != "real.png" {
		t.Fatalf("expected the sized image to win, got %+v", parsed.Image)
	}
}

func TestParse_HTMLPercentDimensionsCountAsAbsent(t *testing.T) {
	content := `<img src="m.png" width="100%" height="480" />
<area shape="rect" coords="0,0,10,10" />`

	parsed := parse(t, newDocument(t, "page.html", content))

	if _, ok := parsed.Dimensions(); ok {
		t.Fatal("percent width must not produce usable dimensions")
	}
	if len(parsed.Warnings) != 1 || parsed.Warnings[0].Kind != imagemap.WarningMissingDimensions {
		t.Fatalf("unexpected warnings: %v", parsed.Warnings)
	}
}

func TestParse_DefaultAreas(t *testing.T) {
	content := `<img src="m.png" width="100" height="100" />
<area shape="default" href="/everything" />
<area shape="rect" coords="0,0,10,10" />`

	t.Run("kept by default", func(t *testing.T) {
		parsed := parse(t, newDocument(t, "page.html", content))

		if len(parsed.Areas) != 2 {
			t.Fatalf("want 2 areas, got %d", len(parsed.Areas))
		}
		if parsed.Areas[0].Shape != imagemap.ShapeDefault {
			t.Fatalf("unexpected first shape %q", parsed.Areas[0].Shape)
		}
		// The overlay builder raises the skip warning, not the parser.
		if len(parsed.Warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", parsed.Warnings)
		}
	})

	t.Run("dropped with warning", func(t *testing.T) {
		parsed := parse(t, newDocument(t, "page.html", content),
			imagemap.WithKeepDefaultAreas(false))

		if len(parsed.Areas) != 1 || parsed.Areas[0].Shape != imagemap.ShapeRect {
			t.Fatalf("unexpected areas: %+v", parsed.Areas)
		}
		if len(parsed.Warnings) != 1 || parsed.Warnings[0].Kind != imagemap.WarningUnsupportedShape {
			t.Fatalf("unexpected warnings: %v", parsed.Warnings)
		}
	})
}

func TestParse_SniffsFormatWithoutExtension(t *testing.T) {
	htmlDoc := newDocument(t, "payload", `<area shape="rect" coords="0,0,10,10" />`)
	parsed := parse(t, htmlDoc)
	if len(parsed.Areas) != 1 || parsed.Areas[0].Location.Element != 1 {
		t.Fatalf("expected html parse, got %+v", parsed.Areas)
	}

	mapDoc := newDocument(t, "payload", "rect 0,0,10,10")
	parsed = parse(t, mapDoc)
	if len(parsed.Areas) != 1 || parsed.Areas[0].Location.Line != 1 {
		t.Fatalf("expected map parse, got %+v", parsed.Areas)
	}
}
