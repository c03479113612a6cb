// Command mapsvg-lint validates image-map sources without rendering them.
// Each argument is loaded and parsed; malformed regions, unreadable files
// and recoverable warnings are reported per file. The exit code is non-zero
// when any file fails validation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	internalLoader "github.com/goliatone/go-mapsvg/internal/imagemap/loader"
	internalParser "github.com/goliatone/go-mapsvg/internal/imagemap/parser"
	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

func main() {
	strict := flag.Bool("strict", false, "treat warnings as failures")
	quiet := flag.Bool("quiet", false, "suppress per-file OK lines")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: mapsvg-lint [flags] <file> [<file>...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx := context.Background()
	loader := internalLoader.New(imagemap.NewLoaderOptions())
	parser := internalParser.New(imagemap.NewParserOptions())

	failed := 0
	for _, path := range flag.Args() {
		warnings, err := lintFile(ctx, loader, parser, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		for _, warning := range warnings {
			fmt.Fprintf(os.Stderr, "%s: warning: %s\n", path, warning)
		}
		if *strict && len(warnings) > 0 {
			failed++
			continue
		}
		if !*quiet {
			fmt.Printf("%s: OK (%d warnings)\n", path, len(warnings))
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, loader imagemap.Loader, parser imagemap.Parser, path string) ([]imagemap.Warning, error) {
	if imagemap.DetectFormat(path) == imagemap.FormatUnknown {
		return nil, fmt.Errorf("file should be .map or .html")
	}

	doc, err := loader.Load(ctx, imagemap.SourceFromFile(path))
	if err != nil {
		return nil, err
	}

	parsed, err := parser.Parse(ctx, doc)
	if err != nil {
		return nil, err
	}
	return parsed.Warnings, nil
}
