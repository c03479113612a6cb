package mapsvg

import (
	internalLoader "github.com/goliatone/go-mapsvg/internal/imagemap/loader"
	internalParser "github.com/goliatone/go-mapsvg/internal/imagemap/parser"
	internalModel "github.com/goliatone/go-mapsvg/internal/model"
	"github.com/goliatone/go-mapsvg/pkg/imagemap"
	"github.com/goliatone/go-mapsvg/pkg/overlay"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...imagemap.LoaderOption) imagemap.Loader {
	cfg := imagemap.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...imagemap.ParserOption) imagemap.Parser {
	cfg := imagemap.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// NewBuilder constructs an overlay builder backed by the internal
// implementation.
func NewBuilder(options ...overlay.BuilderOption) overlay.Builder {
	cfg := overlay.NewBuilderConfig(options...)
	return internalModel.New(cfg)
}
