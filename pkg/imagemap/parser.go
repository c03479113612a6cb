package imagemap

import "context"

// Parser turns a Document into an ordered Map of area descriptors plus the
// reference image's declared dimensions, when present. Implementations live
// under internal/imagemap.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Map, error)
}

// ParserOptions tunes validation behaviour.
type ParserOptions struct {
	// RequireDimensions promotes the missing-dimensions warning to a hard
	// error. The default keeps it recoverable so callers can supply a canvas
	// size themselves or accept an unsized document.
	RequireDimensions bool

	// KeepDefaultAreas retains ShapeDefault descriptors in the parsed Map so
	// downstream stages can report them. When false they are dropped at parse
	// time with the same warning attached.
	KeepDefaultAreas bool
}

// ParserOption mutates ParserOptions prior to construction.
type ParserOption func(*ParserOptions)

// WithRequireDimensions makes a missing reference image size fatal.
func WithRequireDimensions() ParserOption {
	return func(opts *ParserOptions) {
		opts.RequireDimensions = true
	}
}

// WithKeepDefaultAreas controls whether default-shaped regions survive the
// parse result. They are kept unless explicitly disabled.
func WithKeepDefaultAreas(keep bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.KeepDefaultAreas = keep
	}
}

// NewParserOptions applies a set of ParserOption values and returns the
// resulting configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{KeepDefaultAreas: true}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
