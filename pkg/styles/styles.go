// Package styles loads named presentation presets for generated overlays.
// Presets are YAML or JSON documents describing the stroke behaviour, colors,
// and effects the stylesheet builder should emit. A small embedded set ships
// with the module; callers can point the store at their own fs.FS instead.
package styles

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is one named style configuration. Zero values fall back to the
// defaults the stylesheet builder carries, so presets only need to state what
// they change.
type Preset struct {
	Name string `json:"name" yaml:"name"`

	// Strokes selects the outline behaviour: none, hover, or always.
	Strokes string `json:"strokes,omitempty" yaml:"strokes,omitempty"`

	// HoverFill is the fill painted while the pointer is over a region.
	HoverFill string `json:"hoverFill,omitempty" yaml:"hoverFill,omitempty"`

	// StrokeColor and StrokeWidth style the region outline.
	StrokeColor string `json:"strokeColor,omitempty" yaml:"strokeColor,omitempty"`
	StrokeWidth string `json:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty"`

	// Blur toggles the Gaussian blur filter applied to region fills.
	Blur *bool `json:"blur,omitempty" yaml:"blur,omitempty"`

	// Animation toggles the hover zoom keyframe animation.
	Animation *bool `json:"animation,omitempty" yaml:"animation,omitempty"`
}

// Store holds presets keyed by name.
type Store struct {
	presets map[string]Preset
}

// Preset returns the configuration for the supplied name.
func (s *Store) Preset(name string) (Preset, bool) {
	if s == nil {
		return Preset{}, false
	}
	preset, ok := s.presets[name]
	return preset, ok
}

// Names returns the registered preset names.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	return names
}

// Empty reports whether the store holds any presets.
func (s *Store) Empty() bool {
	return s == nil || len(s.presets) == 0
}

// LoadFS walks the provided filesystem and parses YAML/JSON preset files.
// When fsys is nil or no preset files are present, the returned store is
// empty. File stem becomes the preset name when the document omits one.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{presets: make(map[string]Preset)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("styles: read %s: %w", path, err)
		}

		var preset Preset
		if err := yaml.Unmarshal(data, &preset); err != nil {
			return fmt.Errorf("styles: parse %s: %w", path, err)
		}

		name := strings.TrimSpace(preset.Name)
		if name == "" {
			base := filepath.Base(path)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		if _, exists := store.presets[name]; exists {
			return fmt.Errorf("styles: duplicate preset %q (file %s)", name, path)
		}
		preset.Name = name
		store.presets[name] = preset
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
