package overlay

import (
	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

// Builder converts parsed image maps into overlay models.
type Builder interface {
	Build(m imagemap.Map) (Overlay, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	canvas *imagemap.Dimensions
}

// WithCanvas supplies explicit canvas dimensions, overriding whatever the
// source document declared. Callers use this when the input carries no sized
// reference image.
func WithCanvas(dims imagemap.Dimensions) BuilderOption {
	return func(opts *builderOptions) {
		clone := dims
		opts.canvas = &clone
	}
}

// BuilderConfig is the resolved option set passed to the internal
// implementation.
type BuilderConfig struct {
	Canvas *imagemap.Dimensions
}

// NewBuilderConfig applies a set of BuilderOption values.
func NewBuilderConfig(options ...BuilderOption) BuilderConfig {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return BuilderConfig{Canvas: cfg.canvas}
}

// Decorator enriches an overlay after the canonical model has been built but
// before rendering.
type Decorator interface {
	Decorate(*Overlay) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Overlay) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(o *Overlay) error {
	return fn(o)
}
