// Package parser implements imagemap.Parser for both supported dialects: the
// line-oriented GIMP .map export and HTML documents carrying <area>
// elements.
package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

// Parser implements imagemap.Parser.
type Parser struct {
	options imagemap.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ imagemap.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options imagemap.ParserOptions) imagemap.Parser {
	return &Parser{options: options}
}

// Parse converts a Document into an ordered Map. The dialect comes from the
// document's detected format; unknown formats fall back to content sniffing.
func (p *Parser) Parse(ctx context.Context, doc imagemap.Document) (imagemap.Map, error) {
	if err := ctx.Err(); err != nil {
		return imagemap.Map{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return imagemap.Map{}, errors.New("imagemap parser: document payload is empty")
	}

	format := doc.Format()
	if format == imagemap.FormatUnknown {
		format = sniffFormat(raw)
	}

	var (
		parsed imagemap.Map
		err    error
	)
	switch format {
	case imagemap.FormatMap:
		parsed, err = p.parseMapFile(doc.Location(), raw)
	case imagemap.FormatHTML:
		parsed, err = p.parseHTML(doc.Location(), raw)
	default:
		err = fmt.Errorf("imagemap parser: unsupported format %q", string(format))
	}
	if err != nil {
		return imagemap.Map{}, err
	}

	if _, ok := parsed.Dimensions(); !ok {
		if p.options.RequireDimensions {
			return imagemap.Map{}, fmt.Errorf("imagemap parser: %s: cannot determine image dimensions; the source must declare an image with both width and height", doc.Location())
		}
		parsed.Warnings = append(parsed.Warnings, imagemap.Warning{
			Kind:    imagemap.WarningMissingDimensions,
			Message: fmt.Sprintf("%s: no reference image with width and height; the overlay canvas will be unsized", doc.Location()),
		})
	}

	if !p.options.KeepDefaultAreas {
		parsed = dropDefaultAreas(parsed)
	}

	return parsed, nil
}

// sniffFormat guesses the dialect from content when the source location gave
// no extension hint. Anything that looks like markup is treated as HTML.
func sniffFormat(raw []byte) imagemap.Format {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return imagemap.FormatHTML
	}
	if bytes.Contains(bytes.ToLower(trimmed), []byte("<area")) {
		return imagemap.FormatHTML
	}
	return imagemap.FormatMap
}

// dropDefaultAreas removes ShapeDefault descriptors from the result, leaving
// a surfaced warning so they are never lost silently. With KeepDefaultAreas
// set, the overlay builder raises the warning instead when it skips them.
func dropDefaultAreas(parsed imagemap.Map) imagemap.Map {
	kept := parsed.Areas[:0]
	for _, area := range parsed.Areas {
		if area.Shape == imagemap.ShapeDefault {
			parsed.Warnings = append(parsed.Warnings, imagemap.Warning{
				Kind:    imagemap.WarningUnsupportedShape,
				Message: fmt.Sprintf("%s: shape %q has no SVG equivalent; region skipped", area.Location, area.Shape),
			})
			continue
		}
		kept = append(kept, area)
	}
	parsed.Areas = kept
	return parsed
}
