package svg

import (
	"sort"
	"strings"

	"github.com/goliatone/go-mapsvg/pkg/render"
)

const (
	defaultHoverFill   = "#e8d71b99"
	defaultStrokeColor = "red"
	defaultStrokeWidth = "2px"
)

// palette is the resolved presentation configuration the stylesheet builder
// consumes: preset values first, then theme tokens, then the defaults above.
type palette struct {
	HoverFill   string
	StrokeColor string
	StrokeWidth string
	Blur        bool
	Animation   bool
	CSSVars     map[string]string
}

func resolvePalette(options render.RenderOptions) palette {
	p := palette{
		HoverFill:   defaultHoverFill,
		StrokeColor: defaultStrokeColor,
		StrokeWidth: defaultStrokeWidth,
		Blur:        true,
		Animation:   true,
	}

	if cfg := options.Theme; cfg != nil {
		if v := cfg.Tokens["hoverFill"]; v != "" {
			p.HoverFill = v
		}
		if v := cfg.Tokens["strokeColor"]; v != "" {
			p.StrokeColor = v
		}
		if v := cfg.Tokens["strokeWidth"]; v != "" {
			p.StrokeWidth = v
		}
		if len(cfg.CSSVars) > 0 {
			p.CSSVars = cfg.CSSVars
		}
	}

	if preset := options.Style; preset != nil {
		if preset.HoverFill != "" {
			p.HoverFill = preset.HoverFill
		}
		if preset.StrokeColor != "" {
			p.StrokeColor = preset.StrokeColor
		}
		if preset.StrokeWidth != "" {
			p.StrokeWidth = preset.StrokeWidth
		}
		if preset.Blur != nil {
			p.Blur = *preset.Blur
		}
		if preset.Animation != nil {
			p.Animation = *preset.Animation
		}
	}

	return p
}

// buildStylesheet emits the single embedded style block. Presentation lives
// entirely in these class rules; shape elements carry only geometry and a
// class name.
func buildStylesheet(mode render.StrokeMode, p palette) string {
	var b strings.Builder

	if len(p.CSSVars) > 0 {
		names := make([]string, 0, len(p.CSSVars))
		for name := range p.CSSVars {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString(":root {\n")
		for _, name := range names {
			b.WriteString("  " + name + ": " + p.CSSVars[name] + ";\n")
		}
		b.WriteString("}\n")
	}

	b.WriteString(".region-fill {\n")
	b.WriteString("  fill: none;\n")
	b.WriteString("  pointer-events: visible;\n")
	b.WriteString("  transform-origin: center;\n")
	b.WriteString("  transform-box: fill-box;\n")
	b.WriteString("}\n")

	b.WriteString(".region-fill:hover {\n")
	b.WriteString("  fill: " + p.HoverFill + ";\n")
	if p.Animation {
		b.WriteString("  animation: region-pulse 1s ease infinite;\n")
	}
	b.WriteString("}\n")

	if mode != render.StrokeNone {
		b.WriteString(".region-stroke {\n")
		b.WriteString("  fill: none;\n")
		b.WriteString("  stroke: none;\n")
		b.WriteString("}\n")

		selector := ".region-fill:hover + .region-stroke"
		if mode == render.StrokeAlways {
			selector = ".region-stroke.region-stroke--visible"
		}
		b.WriteString(selector + " {\n")
		b.WriteString("  stroke: " + p.StrokeColor + ";\n")
		b.WriteString("  stroke-width: " + p.StrokeWidth + ";\n")
		b.WriteString("}\n")
	}

	if p.Animation {
		b.WriteString("@keyframes region-pulse {\n")
		b.WriteString("  0% { transform: scale(1, 1); }\n")
		b.WriteString("  50% { transform: scale(1.1, 1.1); }\n")
		b.WriteString("  100% { transform: scale(1, 1); }\n")
		b.WriteString("}\n")
	}

	return b.String()
}
