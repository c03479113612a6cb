package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// WithThemeSelector registers a go-theme selector so theme/variant choices
// can be resolved ahead of rendering. The resolved configuration reaches
// renderers through RenderOptions.Theme.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme and variant used when a request does not
// name one explicitly.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithThemeFallbacks forwards fallback partials merged beneath the manifest's
// template overrides when deriving renderer configuration.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		if len(fallbacks) == 0 {
			return
		}
		if o.themeFallbacks == nil {
			o.themeFallbacks = make(map[string]string, len(fallbacks))
		}
		for key, value := range fallbacks {
			o.themeFallbacks[key] = value
		}
	}
}

// resolveTheme selects and flattens a theme into the renderer-facing
// configuration: variant values override the base manifest, tokens double as
// CSS custom properties, and assets resolve against the manifest prefix.
func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}

	if name == "" {
		name = o.themeName
	}
	if variant == "" {
		variant = o.themeVariant
	}
	if name == "" {
		return nil, nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}

	return o.rendererConfigFromSelection(selection), nil
}

func (o *Orchestrator) rendererConfigFromSelection(selection *theme.Selection) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	var variantCfg theme.Variant
	if selection.Variant != "" {
		variantCfg = manifest.Variants[selection.Variant]
	}

	cfg.Partials = mergeStringMaps(o.themeFallbacks, manifest.Templates, variantCfg.Templates)
	cfg.Tokens = mergeStringMaps(nil, manifest.Tokens, variantCfg.Tokens)
	cfg.CSSVars = cssVarsFromTokens(cfg.Tokens)
	cfg.AssetURL = assetResolver(manifest.Assets, variantCfg.Assets)

	return cfg
}

func mergeStringMaps(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for key, value := range m {
			if value == "" {
				continue
			}
			out[key] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cssVarsFromTokens(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+key] = value
	}
	return vars
}

// assetResolver maps logical asset keys onto URLs under the manifest's
// prefix, preferring variant-level file overrides.
func assetResolver(base, variant theme.Assets) func(string) string {
	prefix := strings.TrimSuffix(base.Prefix, "/")
	return func(key string) string {
		file := variant.Files[key]
		if file == "" {
			file = base.Files[key]
		}
		if file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + file
	}
}
