package imagemap

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal input categories. Loaders and parsers wrap
// these so callers can branch with errors.Is while still receiving a message
// that names the offending source.
var (
	// ErrNotFound marks sources that do not exist.
	ErrNotFound = errors.New("input not found")
	// ErrUnreadable marks sources that exist but could not be read or
	// decoded.
	ErrUnreadable = errors.New("unreadable content")
	// ErrMalformed marks lines or elements that fail shape or coordinate
	// validation.
	ErrMalformed = errors.New("malformed region")
)

// ParseError reports a malformed line or element, carrying enough context to
// name the source location in user-facing messages.
type ParseError struct {
	Source   string
	Location Location
	Detail   string
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %s", e.Location, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Source, e.Location, e.Detail)
}

// Unwrap lets callers match ParseErrors with errors.Is(err, ErrMalformed).
func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

// WarningKind enumerates the recoverable conditions a parse or build pass can
// surface without halting output.
type WarningKind string

const (
	// WarningMissingDimensions is raised when no reference image with both
	// width and height was found; the document degrades to an unsized canvas.
	WarningMissingDimensions WarningKind = "missing-dimensions"
	// WarningUnsupportedShape is raised when a region declares a shape with
	// no SVG counterpart (default); the region is skipped, not silently
	// dropped.
	WarningUnsupportedShape WarningKind = "unsupported-shape"
)

// Warning is a non-fatal diagnostic surfaced to the caller alongside the
// produced document.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}
