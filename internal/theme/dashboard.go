package theme

import (
	"fmt"
	"math"
	"strconv"
)

// DashboardPalette is a CSS-variable preset for the admin dashboard. This
// namespace is unrelated to the public registration themes: the operator's
// choice is persisted client-side, never in the branding record.
type DashboardPalette struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark"`
}

const DefaultPaletteID = "neutral"

var palettes = map[string]DashboardPalette{
	"neutral": {
		ID:   "neutral",
		Name: "Neutral",
		Light: map[string]string{
			"--primary":    "#18181b",
			"--background": "#ffffff",
			"--accent":     "#f4f4f5",
		},
		Dark: map[string]string{
			"--primary":    "#fafafa",
			"--background": "#09090b",
			"--accent":     "#27272a",
		},
	},
	"violet-bloom": {
		ID:   "violet-bloom",
		Name: "Violet Bloom",
		Light: map[string]string{
			"--primary":    "#7c3aed",
			"--background": "#fdfbff",
			"--accent":     "#ede9fe",
		},
		Dark: map[string]string{
			"--primary":    "#a78bfa",
			"--background": "#0f0a1e",
			"--accent":     "#2e1065",
		},
	},
	"ocean": {
		ID:   "ocean",
		Name: "Ocean",
		Light: map[string]string{
			"--primary":    "#0284c7",
			"--background": "#f8fcff",
			"--accent":     "#e0f2fe",
		},
		Dark: map[string]string{
			"--primary":    "#38bdf8",
			"--background": "#082032",
			"--accent":     "#0c4a6e",
		},
	},
}

// ResolvePalette maps a dashboard palette key to its preset, falling back to
// the default on unknown or absent keys.
func ResolvePalette(id string) DashboardPalette {
	if p, ok := palettes[id]; ok {
		return p
	}
	return palettes[DefaultPaletteID]
}

// Palettes lists the available dashboard presets.
func Palettes() []DashboardPalette {
	return []DashboardPalette{palettes["neutral"], palettes["violet-bloom"], palettes["ocean"]}
}

// HexToHSL converts a #rrggbb color to the "H S% L%" triple the dashboard
// stylesheet expects for its CSS variables.
func HexToHSL(hex string) (string, error) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return "", fmt.Errorf("invalid hex color %q", hex)
	}

	parse := func(s string) (float64, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		return float64(v) / 255, err
	}
	r, err := parse(hex[0:2])
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q", hex)
	}
	g, err := parse(hex[2:4])
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q", hex)
	}
	b, err := parse(hex[4:6])
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q", hex)
	}

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return fmt.Sprintf("%d %d%% %d%%",
		int(math.Round(h*360)),
		int(math.Round(s*100)),
		int(math.Round(l*100)),
	), nil
}
