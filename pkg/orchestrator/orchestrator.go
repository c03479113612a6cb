// Package orchestrator coordinates the full pipeline from image-map source to
// rendered overlay output. It applies sensible defaults (svg renderer,
// embedded templates and presets) while remaining open to dependency
// injection for advanced callers.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-mapsvg/internal/imagemap/loader"
	internalParser "github.com/goliatone/go-mapsvg/internal/imagemap/parser"
	internalModel "github.com/goliatone/go-mapsvg/internal/model"
	"github.com/goliatone/go-mapsvg/pkg/imagemap"
	"github.com/goliatone/go-mapsvg/pkg/overlay"
	"github.com/goliatone/go-mapsvg/pkg/render"
	"github.com/goliatone/go-mapsvg/pkg/renderers/inline"
	"github.com/goliatone/go-mapsvg/pkg/renderers/svg"
	"github.com/goliatone/go-mapsvg/pkg/styles"
)

const defaultRendererName = "svg"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader imagemap.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom image-map parser.
func WithParser(parser imagemap.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithBuilder injects a custom overlay builder.
func WithBuilder(builder overlay.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators registers decorators that run against the built overlay
// before rendering.
func WithDecorators(decorators ...overlay.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithStyleFS supplies an fs.FS holding style preset documents. Pass nil to
// disable the embedded defaults.
func WithStyleFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.styleFS = fsys
		o.styleFSSpecified = true
	}
}

// WithStyleStore injects an already-loaded preset store.
func WithStyleStore(store *styles.Store) Option {
	return func(o *Orchestrator) {
		o.styleStore = store
	}
}

// Orchestrator coordinates loader → parser → overlay builder → renderer.
type Orchestrator struct {
	loader           imagemap.Loader
	parser           imagemap.Parser
	builder          overlay.Builder
	registry         *render.Registry
	defaultRenderer  string
	decorators       []overlay.Decorator
	styleStore       *styles.Store
	styleFS          fs.FS
	styleFSSpecified bool
	themeSelector    theme.ThemeSelector
	themeName        string
	themeVariant     string
	themeFallbacks   map[string]string
	initialiseErr    error
	defaultsApplied  bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render an overlay from an
// image-map source.
type Request struct {
	// Source identifies where the image-map document lives. Optional when
	// Document is supplied.
	Source imagemap.Source

	// Document allows callers to bypass the loader when they already have a
	// loaded payload.
	Document *imagemap.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// Style selects a named preset from the configured store.
	Style string

	// ThemeName and ThemeVariant select a go-theme configuration when a
	// selector is registered.
	ThemeName    string
	ThemeVariant string

	// Canvas supplies explicit overlay dimensions, replacing whatever the
	// source declared (or did not declare).
	Canvas *imagemap.Dimensions

	// RenderOptions carries per-request instructions such as the stroke mode.
	RenderOptions render.RenderOptions
}

// Result is the rendered output together with the warnings surfaced along
// the pipeline.
type Result struct {
	Output      []byte
	ContentType string
	Warnings    []imagemap.Warning
}

// Generate executes the loader → parser → builder → renderer sequence and
// returns the rendered bytes (SVG for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.GenerateReport(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// GenerateReport behaves like Generate but also returns the non-fatal
// warnings (missing dimensions, unsupported shapes) so callers can surface
// them.
func (o *Orchestrator) GenerateReport(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return Result{}, err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	parsed, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: parse document: %w", err)
	}

	built, err := o.builder.Build(parsed)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: build overlay: %w", err)
	}

	if req.Canvas != nil {
		applyCanvasOverride(&built, *req.Canvas)
	}

	if err := o.applyDecorators(&built); err != nil {
		return Result{}, err
	}

	options, err := o.resolveRenderOptions(req)
	if err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	output, err := renderer.Render(ctx, built, options)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return Result{
		Output:      output,
		ContentType: renderer.ContentType(),
		Warnings:    built.Warnings,
	}, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (imagemap.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return imagemap.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return imagemap.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) resolveRenderOptions(req Request) (render.RenderOptions, error) {
	options := req.RenderOptions

	if options.Style == nil && req.Style != "" {
		if o.styleStore == nil {
			return render.RenderOptions{}, fmt.Errorf("orchestrator: style %q requested but no preset store configured", req.Style)
		}
		preset, ok := o.styleStore.Preset(req.Style)
		if !ok {
			return render.RenderOptions{}, fmt.Errorf("orchestrator: style preset %q not found", req.Style)
		}
		options.Style = &preset
	}

	if options.Theme == nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return render.RenderOptions{}, err
		}
		options.Theme = cfg
	}

	return options, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(built *overlay.Overlay) error {
	if len(o.decorators) == 0 || built == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(built); err != nil {
			return fmt.Errorf("orchestrator: decorate overlay: %w", err)
		}
	}
	return nil
}

// applyCanvasOverride replaces the canvas and clears the missing-dimensions
// warning, which no longer applies once the caller supplied a size.
func applyCanvasOverride(built *overlay.Overlay, canvas imagemap.Dimensions) {
	built.Canvas = canvas
	if !built.Sized() {
		return
	}
	kept := built.Warnings[:0]
	for _, warning := range built.Warnings {
		if warning.Kind == imagemap.WarningMissingDimensions {
			continue
		}
		kept = append(kept, warning)
	}
	built.Warnings = kept
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(imagemap.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(imagemap.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = internalModel.New(overlay.NewBuilderConfig())
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		svgRenderer, err := svg.New()
		if err != nil {
			o.setInitialiseErr(fmt.Errorf("orchestrator: default renderer: %w", err))
		} else {
			o.registry.MustRegister(svgRenderer)
		}
		inlineRenderer, err := inline.New()
		if err != nil {
			o.setInitialiseErr(fmt.Errorf("orchestrator: inline renderer: %w", err))
		} else {
			o.registry.MustRegister(inlineRenderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.ensureStyleStore()

	o.defaultsApplied = true
}

func (o *Orchestrator) ensureStyleStore() {
	if o.styleStore != nil {
		return
	}
	if !o.styleFSSpecified && o.styleFS == nil {
		o.styleFS = styles.EmbeddedFS()
	}
	if o.styleFS == nil {
		return
	}

	store, err := styles.LoadFS(o.styleFS)
	if err != nil {
		o.setInitialiseErr(fmt.Errorf("orchestrator: load style presets: %w", err))
		return
	}
	o.styleStore = store
}

// setInitialiseErr keeps the first construction failure; later ones would
// shadow the root cause reported to callers.
func (o *Orchestrator) setInitialiseErr(err error) {
	if o.initialiseErr == nil {
		o.initialiseErr = err
	}
}
