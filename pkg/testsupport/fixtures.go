// Package testsupport provides fixture loading and golden-file helpers shared
// by the contract tests across packages.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

// LoadDocument reads a fixture and builds an imagemap.Document using a file
// source. Testing helpers fail the test on error to keep contract tests
// concise.
func LoadDocument(t *testing.T, path string) imagemap.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (imagemap.Document, error) {
	if path == "" {
		return imagemap.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return imagemap.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := imagemap.NewDocument(imagemap.SourceFromFile(path), data)
	if err != nil {
		return imagemap.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// DocumentFromString builds an in-memory Document with the given format.
// Handy for parser tests that don't want on-disk fixtures.
func DocumentFromString(t *testing.T, name, content string, format imagemap.Format) imagemap.Document {
	t.Helper()

	doc, err := imagemap.NewDocument(imagemap.SourceFromFS(name), []byte(content))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc.WithFormat(format)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
