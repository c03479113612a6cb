package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

// parseHTML walks a parsed document tree collecting every <area> element in
// document order (regardless of nesting under <map>) and the first
// <img>/<image> element declaring both width and height.
func (p *Parser) parseHTML(source string, raw []byte) (imagemap.Map, error) {
	root, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return imagemap.Map{}, fmt.Errorf("imagemap parser: %w: parse %s: %v", imagemap.ErrUnreadable, source, err)
	}

	var result imagemap.Map
	ordinal := 0

	var walk func(*html.Node) error
	walk = func(node *html.Node) error {
		if node.Type == html.ElementNode {
			switch strings.ToLower(node.Data) {
			case "area":
				ordinal++
				area, err := parseAreaElement(source, ordinal, node)
				if err != nil {
					return err
				}
				result.Areas = append(result.Areas, area)
			case "img", "image":
				ref := parseImageElement(node)
				switch {
				case result.Image == nil:
					result.Image = &ref
				case !result.Image.HasDimensions() && ref.HasDimensions():
					result.Image = &ref
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return imagemap.Map{}, err
	}
	return result, nil
}

func parseAreaElement(source string, ordinal int, node *html.Node) (imagemap.Area, error) {
	loc := imagemap.Location{Element: ordinal}
	attrs := attributeMap(node)

	token := attrs["shape"]
	if strings.TrimSpace(token) == "" {
		// Missing shape attribute defaults to a rectangle, per HTML.
		token = string(imagemap.ShapeRect)
	}
	shape, ok := imagemap.ParseShape(token)
	if !ok {
		return imagemap.Area{}, &imagemap.ParseError{
			Source:   source,
			Location: loc,
			Detail:   fmt.Sprintf("unrecognized shape token %q", token),
		}
	}

	coords, err := parseCoords(attrs["coords"])
	if err != nil {
		return imagemap.Area{}, &imagemap.ParseError{
			Source:   source,
			Location: loc,
			Detail:   err.Error(),
		}
	}

	if err := shape.CheckCoords(len(coords)); err != nil {
		return imagemap.Area{}, &imagemap.ParseError{
			Source:   source,
			Location: loc,
			Detail:   err.Error(),
		}
	}

	return imagemap.Area{
		Shape:    shape,
		Coords:   coords,
		Href:     attrs["href"],
		Alt:      attrs["alt"],
		Target:   attrs["target"],
		Title:    attrs["title"],
		Location: loc,
	}, nil
}

func parseImageElement(node *html.Node) imagemap.ImageRef {
	attrs := attributeMap(node)
	return imagemap.ImageRef{
		Src: attrs["src"],
		Dimensions: imagemap.Dimensions{
			Width:  parsePixelValue(attrs["width"]),
			Height: parsePixelValue(attrs["height"]),
		},
	}
}

func attributeMap(node *html.Node) map[string]string {
	attrs := make(map[string]string, len(node.Attr))
	for _, attr := range node.Attr {
		attrs[strings.ToLower(attr.Key)] = attr.Val
	}
	return attrs
}

// parsePixelValue reads a declared pixel dimension. Percentage or otherwise
// non-numeric values count as absent since they cannot size a viewBox.
func parsePixelValue(raw string) int {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "px")
	value, err := strconv.Atoi(trimmed)
	if err != nil || value <= 0 {
		return 0
	}
	return value
}
