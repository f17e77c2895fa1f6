package common

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
)

// PlayerColors maps each roster color to its cell fill.
var PlayerColors = map[core.Color]color.RGBA{
	core.Green:  {50, 170, 70, 255},
	core.Red:    {200, 50, 50, 255},
	core.Yellow: {220, 190, 40, 255},
	core.Blue:   {50, 100, 200, 255},
}

// Cell and board colors
var (
	UnclaimedColor   = color.RGBA{120, 120, 120, 255}
	ValueTextColor   = color.White
	HighlightColor   = color.RGBA{255, 255, 255, 90}
	BackgroundColor  = color.Black
	GridLineColor    = color.RGBA{50, 50, 50, 255}
	StatusTextColor  = color.White
	InactiveDimAlpha = uint8(140)
)

// FillFor returns the fill for a cell owned by the given roster color, or the
// unclaimed fill when owned is false.
func FillFor(c core.Color, owned bool) color.RGBA {
	if !owned {
		return UnclaimedColor
	}
	if rgba, ok := PlayerColors[c]; ok {
		return rgba
	}
	return UnclaimedColor
}

// Dim scales the color channels down, used for cells of inactive players.
func Dim(c color.RGBA, alpha uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(alpha) / 255) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ApplyOverrides replaces palette entries from a color-name → hex map. Unknown
// names are reported; valid entries are still applied.
func ApplyOverrides(overrides map[string]string) error {
	var bad []string
	for name, hex := range overrides {
		rgba, err := ParseHexColor(hex)
		if err != nil {
			bad = append(bad, name)
			continue
		}
		if name == "unclaimed" {
			UnclaimedColor = rgba
			continue
		}
		c, err := core.ParseColor(name)
		if err != nil {
			bad = append(bad, name)
			continue
		}
		PlayerColors[c] = rgba
	}
	if len(bad) > 0 {
		return fmt.Errorf("invalid color overrides: %s", strings.Join(bad, ", "))
	}
	return nil
}
