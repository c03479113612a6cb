package styles

import (
	"embed"
	"io/fs"
)

//go:embed presets/*.yaml
var embeddedPresets embed.FS

// EmbeddedFS exposes the built-in preset bundle.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedPresets, "presets")
	if err != nil {
		return embeddedPresets
	}
	return sub
}

// Defaults loads the embedded preset bundle. It panics only if the embedded
// files themselves are invalid, which is a build-time defect.
func Defaults() *Store {
	store, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	return store
}
