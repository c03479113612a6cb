// Package inline renders overlays as an HTML fragment: the reference image
// with the SVG overlay absolutely positioned on top, ready to paste into a
// page. The image keeps its declared dimensions and gets responsive sizing;
// any usemap association is not carried over since the SVG replaces it.
package inline

import (
	"context"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/goliatone/go-mapsvg/pkg/overlay"
	"github.com/goliatone/go-mapsvg/pkg/render"
	rendertemplate "github.com/goliatone/go-mapsvg/pkg/render/template"
	gotemplate "github.com/goliatone/go-mapsvg/pkg/render/template/gotemplate"
	"github.com/goliatone/go-mapsvg/pkg/renderers/svg"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	svgOptions       []svg.Option
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSVGOptions forwards options to the wrapped SVG renderer.
func WithSVGOptions(options ...svg.Option) Option {
	return func(cfg *config) {
		cfg.svgOptions = append(cfg.svgOptions, options...)
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	svg       *svg.Renderer
}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the inline renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("inline renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	inner, err := svg.New(cfg.svgOptions...)
	if err != nil {
		return nil, fmt.Errorf("inline renderer: configure svg renderer: %w", err)
	}

	return &Renderer{templates: renderer, svg: inner}, nil
}

func (r *Renderer) Name() string {
	return "inline"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render wraps the SVG document in a relatively positioned container with
// the reference image beneath it. The raster stays referenced, not
// re-embedded.
func (r *Renderer) Render(ctx context.Context, o overlay.Overlay, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("inline renderer: template renderer is nil")
	}

	// The <img> element carries the raster here; the SVG layer stays
	// shapes-only.
	svgOptions := options
	svgOptions.IncludeImage = false

	document, err := r.svg.Render(ctx, o, svgOptions)
	if err != nil {
		return nil, err
	}

	view := map[string]any{
		"svg": string(document),
	}
	if o.Image != nil && o.Image.Src != "" {
		image := map[string]any{
			"src": svg.SanitizeURL(o.Image.Src),
		}
		if o.Image.HasDimensions() {
			image["width"] = strconv.Itoa(o.Image.Dimensions.Width)
			image["height"] = strconv.Itoa(o.Image.Dimensions.Height)
		}
		view["image"] = image
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", view)
	if err != nil {
		return nil, fmt.Errorf("inline renderer: render template: %w", err)
	}
	return []byte(result), nil
}
