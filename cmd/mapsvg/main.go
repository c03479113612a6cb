// Command mapsvg converts an HTML image map (or GIMP .map export) into an
// SVG overlay document.
//
// Usage:
//
//	mapsvg [flags] <file>
//
// The positional file must be a .map or .html source. By default region
// outlines appear on hover; --no-strokes disables them entirely and
// --visible-strokes keeps them always on (--no-strokes wins when both are
// given). Warnings such as missing image dimensions go to stderr; fatal
// input errors abort with a non-zero exit code.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	mapsvg "github.com/goliatone/go-mapsvg"
	"github.com/goliatone/go-mapsvg/pkg/imagemap"
	"github.com/goliatone/go-mapsvg/pkg/orchestrator"
	"github.com/goliatone/go-mapsvg/pkg/render"
)

// fetchTimeout caps remote document fetches for URL sources.
const fetchTimeout = 30 * time.Second

func main() {
	log.SetFlags(0)
	log.SetPrefix("mapsvg: ")

	noStrokes := flag.Bool("no-strokes", false, "don't show an outline around the regions")
	visibleStrokes := flag.Bool("visible-strokes", false, "always show strokes, otherwise they are only visible on hover; ignored if -no-strokes is enabled")
	rendererName := flag.String("renderer", "", "renderer to use (svg, inline)")
	output := flag.String("output", "", "output file (stdout if empty)")
	styleName := flag.String("style", "", "style preset to apply (classic, plain, print)")
	width := flag.Int("width", 0, "canvas width, overriding the source's declared image width")
	height := flag.Int("height", 0, "canvas height, overriding the source's declared image height")
	interactive := flag.Bool("interactive", false, "prompt for canvas dimensions when the source doesn't declare them")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mapsvg [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx := context.Background()

	src, err := parseSource(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	req := orchestrator.Request{
		Source:   src,
		Renderer: *rendererName,
		Style:    *styleName,
		RenderOptions: render.RenderOptions{
			Strokes:      strokeOverride(*noStrokes, *visibleStrokes),
			IncludeImage: true,
		},
	}
	if *width > 0 && *height > 0 {
		req.Canvas = &imagemap.Dimensions{Width: *width, Height: *height}
	}

	gen := orchestrator.New(
		orchestrator.WithLoader(mapsvg.NewLoader(imagemap.WithHTTPFallback(fetchTimeout))),
	)

	result, err := gen.GenerateReport(ctx, req)
	if err != nil {
		log.Fatal(err)
	}

	if *interactive && req.Canvas == nil && hasMissingDimensions(result.Warnings) {
		canvas, err := promptDimensions()
		if err != nil {
			log.Fatalf("read dimensions: %v", err)
		}
		req.Canvas = &canvas
		result, err = gen.GenerateReport(ctx, req)
		if err != nil {
			log.Fatal(err)
		}
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "mapsvg: warning: %s\n", warning)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result.Output, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Fprintf(os.Stderr, "mapsvg: overlay written to %s\n", *output)
		return
	}
	fmt.Println(string(result.Output))
}

// strokeOverride maps the flag pair onto an explicit stroke mode. When
// neither flag is given the mode stays empty so a -style preset's stroke
// setting (and finally the hover default) can apply.
func strokeOverride(noStrokes, visibleStrokes bool) render.StrokeMode {
	if !noStrokes && !visibleStrokes {
		return ""
	}
	return render.ResolveStrokeMode(noStrokes, visibleStrokes)
}

func parseSource(raw string) (imagemap.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, fmt.Errorf("input file is required")
	}
	if imagemap.DetectFormat(path) == imagemap.FormatUnknown {
		return nil, fmt.Errorf("file should be .map or .html: %s", path)
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return imagemap.SourceFromURL(path), nil
	}
	return imagemap.SourceFromFile(path), nil
}

func hasMissingDimensions(warnings []imagemap.Warning) bool {
	for _, warning := range warnings {
		if warning.Kind == imagemap.WarningMissingDimensions {
			return true
		}
	}
	return false
}

func promptDimensions() (imagemap.Dimensions, error) {
	width, err := promptPixels("Canvas width (px):")
	if err != nil {
		return imagemap.Dimensions{}, err
	}
	height, err := promptPixels("Canvas height (px):")
	if err != nil {
		return imagemap.Dimensions{}, err
	}
	return imagemap.Dimensions{Width: width, Height: height}, nil
}

func promptPixels(message string) (int, error) {
	var answer string
	prompt := &survey.Input{Message: message}
	err := survey.AskOne(prompt, &answer, survey.WithValidator(func(value any) error {
		raw, _ := value.(string)
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n <= 0 {
			return fmt.Errorf("enter a positive whole number of pixels")
		}
		return nil
	}))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(answer))
}
