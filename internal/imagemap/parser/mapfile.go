package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

// parseMapFile handles the line-oriented GIMP export: one region per line in
// the form `<shape> <coords> "label"`, fields whitespace-delimited, the
// coordinate field comma-separated. Blank lines and #-comments are skipped.
func (p *Parser) parseMapFile(source string, raw []byte) (imagemap.Map, error) {
	var result imagemap.Map

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		area, err := parseMapLine(source, lineNo, line)
		if err != nil {
			return imagemap.Map{}, err
		}

		result.Areas = append(result.Areas, area)
	}
	if err := scanner.Err(); err != nil {
		return imagemap.Map{}, fmt.Errorf("imagemap parser: %w: scan %s: %v", imagemap.ErrUnreadable, source, err)
	}

	return result, nil
}

func parseMapLine(source string, lineNo int, line string) (imagemap.Area, error) {
	loc := imagemap.Location{Line: lineNo}

	body, label := splitLabel(line)
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return imagemap.Area{}, &imagemap.ParseError{
			Source:   source,
			Location: loc,
			Detail:   "region line has no shape token",
		}
	}

	shape, ok := imagemap.ParseShape(fields[0])
	if !ok {
		return imagemap.Area{}, &imagemap.ParseError{
			Source:   source,
			Location: loc,
			Detail:   fmt.Sprintf("unrecognized shape token %q", fields[0]),
		}
	}

	coords, err := parseCoords(strings.Join(fields[1:], " "))
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
		Alt:      label,
		Location: loc,
	}, nil
}

// splitLabel peels a trailing quoted label off a region line. Lines without a
// label are returned unchanged.
func splitLabel(line string) (body, label string) {
	end := strings.LastIndex(line, `"`)
	if end <= 0 {
		return line, ""
	}
	start := strings.LastIndex(line[:end], `"`)
	if start < 0 {
		return line, ""
	}
	return strings.TrimSpace(line[:start]), line[start+1 : end]
}

// parseCoords tokenises a coordinate list. Commas and whitespace both act as
// separators so `10,10 20,20` and `10,10,20,20` parse identically.
func parseCoords(raw string) ([]float64, error) {
	pieces := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(pieces) == 0 {
		return nil, nil
	}

	coords := make([]float64, 0, len(pieces))
	for _, piece := range pieces {
		value, err := strconv.ParseFloat(piece, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", piece)
		}
		coords = append(coords, value)
	}
	return coords, nil
}
