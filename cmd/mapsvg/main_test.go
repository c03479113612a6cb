package main

import (
	"testing"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
	"github.com/goliatone/go-mapsvg/pkg/render"
)

func TestStrokeOverride(t *testing.T) {
	cases := []struct {
		name           string
		noStrokes      bool
		visibleStrokes bool
		want           render.StrokeMode
	}{
		// No flag stays empty so a -style preset's stroke mode can apply.
		{name: "no flags defer to preset", want: render.StrokeMode("")},
		{name: "visible", visibleStrokes: true, want: render.StrokeAlways},
		{name: "none", noStrokes: true, want: render.StrokeNone},
		{name: "none wins", noStrokes: true, visibleStrokes: true, want: render.StrokeNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := strokeOverride(tc.noStrokes, tc.visibleStrokes); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	src, err := parseSource("floor.map")
	if err != nil {
		t.Fatalf("parse source: %v", err)
	}
	if src.Kind() != imagemap.SourceKindFile {
		t.Fatalf("want file source, got %q", src.Kind())
	}

	src, err = parseSource("https://example.com/floor.html")
	if err != nil {
		t.Fatalf("parse source: %v", err)
	}
	if src.Kind() != imagemap.SourceKindURL {
		t.Fatalf("want url source, got %q", src.Kind())
	}

	if _, err := parseSource("notes.txt"); err == nil {
		t.Fatal("expected unsupported extension error")
	}
	if _, err := parseSource("  "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestHasMissingDimensions(t *testing.T) {
	warnings := []imagemap.Warning{{Kind: imagemap.WarningUnsupportedShape}}
	if hasMissingDimensions(warnings) {
		t.Fatal("unsupported-shape warning must not trigger the prompt")
	}
	warnings = append(warnings, imagemap.Warning{Kind: imagemap.WarningMissingDimensions})
	if !hasMissingDimensions(warnings) {
		t.Fatal("missing-dimensions warning not detected")
	}
}
