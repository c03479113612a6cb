// Package svg renders overlay models as standalone SVG documents: a sized
// canvas, one shape element per region in source order, and a single
// embedded style block carrying the hover/stroke behaviour.
package svg

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-mapsvg/pkg/overlay"
	"github.com/goliatone/go-mapsvg/pkg/render"
	rendertemplate "github.com/goliatone/go-mapsvg/pkg/render/template"
	gotemplate "github.com/goliatone/go-mapsvg/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
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

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the SVG renderer applying any provided options.
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
			return nil, fmt.Errorf("svg renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "svg"
}

func (r *Renderer) ContentType() string {
	return "image/svg+xml"
}

// Render serializes the overlay. Rendering is deterministic: the same overlay
// and options always produce byte-identical output.
func (r *Renderer) Render(_ context.Context, o overlay.Overlay, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("svg renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/overlay.tmpl", buildView(o, options))
	if err != nil {
		return nil, fmt.Errorf("svg renderer: render template: %w", err)
	}
	return []byte(result), nil
}
