package svg_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
	"github.com/goliatone/go-mapsvg/pkg/overlay"
	"github.com/goliatone/go-mapsvg/pkg/render"
	"github.com/goliatone/go-mapsvg/pkg/renderers/svg"
	"github.com/goliatone/go-mapsvg/pkg/styles"
)

func sampleOverlay() overlay.Overlay {
	return overlay.Overlay{
		Canvas: imagemap.Dimensions{Width: 100, Height: 100},
		Image: &imagemap.ImageRef{
			Src:        "museum.png",
			Dimensions: imagemap.Dimensions{Width: 100, Height: 100},
		},
		Shapes: []overlay.Shape{
			{
				Kind:   overlay.KindCircle,
				Circle: &overlay.Circle{CX: 50, CY: 50, R: 20},
				Link:   overlay.Link{Href: "/desk", Alt: "Desk", Title: "Front desk"},
				Label:  "Desk",
			},
		},
	}
}

func renderString(t *testing.T, o overlay.Overlay, options render.RenderOptions) string {
	t.Helper()

	renderer, err := svg.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), o, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_CircleGeometry(t *testing.T) {
	got := renderString(t, sampleOverlay(), render.RenderOptions{})

	for _, fragment := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`width="100" height="100" viewBox="0 0 100 100"`,
		`<circle cx="50" cy="50" r="20" class="region-fill"`,
		`<a href="/desk" alt="Desk" target="_self">`,
		`<title>Front desk</title>`,
		`.region-fill:hover`,
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("output missing %q:\n%s", fragment, got)
		}
	}
}

func TestRenderer_RectAndPolygonGeometry(t *testing.T) {
	o := overlay.Overlay{
		Canvas: imagemap.Dimensions{Width: 300, Height: 200},
		Shapes: []overlay.Shape{
			{Kind: overlay.KindRect, Rect: &overlay.Rect{X: 10, Y: 20, Width: 100, Height: 60}},
			{Kind: overlay.KindPolygon, Polygon: &overlay.Polygon{Points: []overlay.Point{
				{X: 10, Y: 200}, {X: 60, Y: 200}, {X: 35, Y: 260.5},
			}}},
		},
	}

	got := renderString(t, o, render.RenderOptions{})

	if !strings.Contains(got, `<rect x="10" y="20" width="100" height="60"`) {
		t.Fatalf("rect geometry missing:\n%s", got)
	}
	if !strings.Contains(got, `<polygon points="10,200 60,200 35,260.5"`) {
		t.Fatalf("polygon geometry missing:\n%s", got)
	}

	// Shapes render in document order.
	if strings.Index(got, "<rect ") > strings.Index(got, "<polygon ") {
		t.Fatal("shape order not preserved")
	}
}

func TestRenderer_StrokeModes(t *testing.T) {
	t.Run("hover default", func(t *testing.T) {
		got := renderString(t, sampleOverlay(), render.RenderOptions{})
		if !strings.Contains(got, ".region-fill:hover + .region-stroke") {
			t.Fatalf("hover stroke rule missing:\n%s", got)
		}
		if strings.Contains(got, "region-stroke--visible") {
			t.Fatal("hover mode must not mark strokes visible")
		}
		if !strings.Contains(got, `class="region-stroke"`) {
			t.Fatal("stroke element missing in hover mode")
		}
	})

	t.Run("none", func(t *testing.T) {
		got := renderString(t, sampleOverlay(), render.RenderOptions{Strokes: render.StrokeNone})
		if strings.Contains(got, "region-stroke") {
			t.Fatalf("no stroke markup expected:\n%s", got)
		}
	})

	t.Run("always", func(t *testing.T) {
		got := renderString(t, sampleOverlay(), render.RenderOptions{Strokes: render.StrokeAlways})
		if !strings.Contains(got, `class="region-stroke region-stroke--visible"`) {
			t.Fatalf("visible stroke class missing:\n%s", got)
		}
		if !strings.Contains(got, ".region-stroke.region-stroke--visible {") {
			t.Fatalf("visible stroke rule missing:\n%s", got)
		}
	})
}

func TestRenderer_UnsizedCanvas(t *testing.T) {
	o := sampleOverlay()
	o.Canvas = imagemap.Dimensions{}

	got := renderString(t, o, render.RenderOptions{})

	if strings.Contains(got, "viewBox") {
		t.Fatalf("unsized canvas must omit the viewBox:\n%s", got)
	}
	if !strings.Contains(got, `<circle cx="50"`) {
		t.Fatal("shapes must still render without a canvas size")
	}
}

func TestRenderer_IncludeImage(t *testing.T) {
	o := sampleOverlay()

	withImage := renderString(t, o, render.RenderOptions{IncludeImage: true})
	if !strings.Contains(withImage, `<image href="museum.png" width="100" height="100"`) {
		t.Fatalf("image element missing:\n%s", withImage)
	}

	withoutImage := renderString(t, o, render.RenderOptions{})
	if strings.Contains(withoutImage, "<image ") {
		t.Fatal("image element rendered without IncludeImage")
	}
}

func TestRenderer_StylePreset(t *testing.T) {
	off := false
	preset := &styles.Preset{
		Name:        "custom",
		HoverFill:   "#11223344",
		StrokeColor: "#ff00ff",
		StrokeWidth: "5px",
		Blur:        &off,
		Animation:   &off,
	}

	got := renderString(t, sampleOverlay(), render.RenderOptions{Style: preset})

	if !strings.Contains(got, "fill: #11223344;") {
		t.Fatalf("preset hover fill missing:\n%s", got)
	}
	if !strings.Contains(got, "stroke: #ff00ff;") || !strings.Contains(got, "stroke-width: 5px;") {
		t.Fatalf("preset stroke settings missing:\n%s", got)
	}
	if strings.Contains(got, "region-blur") {
		t.Fatal("blur filter rendered with blur disabled")
	}
	if strings.Contains(got, "@keyframes") {
		t.Fatal("animation rendered with animation disabled")
	}
}

func TestRenderer_DefaultPalette(t *testing.T) {
	got := renderString(t, sampleOverlay(), render.RenderOptions{})

	if !strings.Contains(got, "fill: #e8d71b99;") {
		t.Fatalf("default hover fill missing:\n%s", got)
	}
	if !strings.Contains(got, "stroke: red;") || !strings.Contains(got, "stroke-width: 2px;") {
		t.Fatalf("default stroke settings missing:\n%s", got)
	}
	if !strings.Contains(got, `<filter id="region-blur">`) {
		t.Fatalf("blur filter missing:\n%s", got)
	}
	if !strings.Contains(got, "@keyframes region-pulse") {
		t.Fatalf("pulse animation missing:\n%s", got)
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	renderer, err := svg.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	o := sampleOverlay()
	first, err := renderer.Render(context.Background(), o, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := renderer.Render(context.Background(), o, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("repeated renders must be byte-identical")
	}
}

func TestRenderer_EmptyOverlay(t *testing.T) {
	got := renderString(t, overlay.Overlay{Canvas: imagemap.Dimensions{Width: 10, Height: 10}}, render.RenderOptions{})

	if !strings.Contains(got, "<svg ") || !strings.Contains(got, "</svg>") {
		t.Fatalf("empty overlay must still produce a document:\n%s", got)
	}
	if strings.Contains(got, "region-fill\"") && strings.Contains(got, "<circle") {
		t.Fatal("no shapes expected")
	}
}

func TestSanitizeURL(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "/rooms/lobby", want: "/rooms/lobby"},
		{raw: "https://example.com/a", want: "https://example.com/a"},
		{raw: "mailto:info@example.com", want: "mailto:info@example.com"},
		{raw: "#section", want: "#section"},
		{raw: "javascript:alert(1)", want: ""},
		{raw: "data:text/html,hi", want: ""},
		{raw: "  ", want: ""},
	}

	for _, tc := range cases {
		if got := svg.SanitizeURL(tc.raw); got != tc.want {
			t.Fatalf("SanitizeURL(%q): want %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestSanitizeText(t *testing.T) {
	if got := svg.SanitizeText(`<script>alert(1)</script>Lobby`); got != "Lobby" {
		t.Fatalf("markup should be stripped, got %q", got)
	}
	if got := svg.SanitizeText("  Front desk  "); got != "Front desk" {
		t.Fatalf("whitespace should be trimmed, got %q", got)
	}
}

func TestRenderer_UnsafeLinkDropped(t *testing.T) {
	o := sampleOverlay()
	o.Shapes[0].Link.Href = "javascript:alert(1)"

	got := renderString(t, o, render.RenderOptions{})

	if strings.Contains(got, "javascript:") {
		t.Fatalf("unsafe href leaked:\n%s", got)
	}
	// With the href dropped the anchor wrapper disappears entirely.
	if strings.Contains(got, "<a ") {
		t.Fatalf("anchor rendered for dropped href:\n%s", got)
	}
}
