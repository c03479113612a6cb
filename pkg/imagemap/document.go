package imagemap

import (
	"errors"
	"path"
	"strings"
)

// Format distinguishes the two supported input dialects.
type Format string

const (
	// FormatMap is the line-oriented GIMP image-map export.
	FormatMap Format = "map"
	// FormatHTML is a document (or fragment) containing <area> elements.
	FormatHTML Format = "html"
	// FormatUnknown means the format could not be inferred from the source
	// location; parsers fall back to content sniffing.
	FormatUnknown Format = ""
)

// DetectFormat infers the input dialect from a source location's extension.
// Unrecognized extensions yield FormatUnknown rather than an error so callers
// can still force a format explicitly.
func DetectFormat(location string) Format {
	switch strings.ToLower(path.Ext(location)) {
	case ".map":
		return FormatMap
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatUnknown
	}
}

// Document wraps the raw image-map payload together with its origin and
// detected format. Parsers consume Documents instead of raw byte slices so
// error messages can always name the offending source.
type Document struct {
	source Source
	raw    []byte
	format Format
}

// NewDocument constructs a Document wrapper while validating the inputs. The
// format is inferred from the source location; use WithFormat to override.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("imagemap: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("imagemap: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone, format: DetectFormat(src.Location())}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// WithFormat returns a copy of the document with the format forced to the
// supplied value, bypassing extension-based detection.
func (d Document) WithFormat(format Format) Document {
	d.format = format
	return d
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Format reports the detected or forced input dialect.
func (d Document) Format() Format {
	return d.format
}
