package orchestrator

import (
	"context"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
	"github.com/goliatone/go-mapsvg/pkg/overlay"
	"github.com/goliatone/go-mapsvg/pkg/render"
)

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "museum",
		Version: "1.0.0",
		Tokens: map[string]string{
			"hoverFill": "#12345678",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/museum",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
	}

	selection := &theme.Selection{
		Theme:    "museum",
		Variant:  "dark",
		Manifest: manifest,
	}

	selector := &stubThemeSelector{selection: selection}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	doc := imagemap.MustNewDocument(imagemap.SourceFromFS("floor.map"), []byte("rect 0,0,10,10"))
	_, err := orch.Generate(context.Background(), Request{
		Document:     &doc,
		Renderer:     renderer.Name(),
		ThemeName:    "museum",
		ThemeVariant: "dark",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "museum" || selector.calls[0].variant != "dark" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatal("expected theme config passed to renderer")
	}
	if cfg.Theme != selection.Theme || cfg.Variant != selection.Variant {
		t.Fatalf("theme identity mismatch: %+v", cfg)
	}
	if cfg.Tokens["hoverFill"] != manifest.Tokens["hoverFill"] {
		t.Fatal("tokens not propagated")
	}
	if cfg.CSSVars["--hoverFill"] != manifest.Tokens["hoverFill"] {
		t.Fatal("css vars not derived from tokens")
	}
	if cfg.AssetURL == nil {
		t.Fatal("expected AssetURL resolver present")
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/museum/theme.css" {
		t.Fatalf("asset url mismatch: %q", got)
	}
}

func TestOrchestrator_DefaultThemeAppliesWhenRequestOmitsOne(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "museum"}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
		WithDefaultTheme("museum", "dark"),
	)

	doc := imagemap.MustNewDocument(imagemap.SourceFromFS("floor.map"), []byte("rect 0,0,10,10"))
	if _, err := orch.Generate(context.Background(), Request{Document: &doc}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "museum" || selector.calls[0].variant != "dark" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}
}

func TestOrchestrator_NoSelectorSkipsThemes(t *testing.T) {
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
	)

	doc := imagemap.MustNewDocument(imagemap.SourceFromFS("floor.map"), []byte("rect 0,0,10,10"))
	if _, err := orch.Generate(context.Background(), Request{Document: &doc, ThemeName: "museum"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if renderer.options.Theme != nil {
		t.Fatalf("unexpected theme config: %+v", renderer.options.Theme)
	}
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

type captureRenderer struct {
	overlay overlay.Overlay
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, o overlay.Overlay, options render.RenderOptions) ([]byte, error) {
	r.overlay = o
	r.options = options
	return []byte("captured"), nil
}
