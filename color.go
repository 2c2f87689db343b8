package fireworks

import (
	"fmt"
	"strconv"
	"strings"
)

// colorKind tags a Color as one of the named palette entries or as custom RGB.
type colorKind uint8

const (
	kindRed colorKind = iota
	kindOrange
	kindYellow
	kindGreen
	kindBlue
	kindPurple
	kindWhite
	kindBlack
	kindRGB
)

// Color is a named palette entry or an arbitrary 8-bit RGB triple. The zero
// value is Red. Colors are comparable values.
type Color struct {
	kind    colorKind
	r, g, b uint8
}

// Named palette colors.
var (
	Red    = Color{kind: kindRed}
	Orange = Color{kind: kindOrange}
	Yellow = Color{kind: kindYellow}
	Green  = Color{kind: kindGreen}
	Blue   = Color{kind: kindBlue}
	Purple = Color{kind: kindPurple}
	White  = Color{kind: kindWhite}
	Black  = Color{kind: kindBlack}
)

// DefaultPalette is the set of colors new fireworks are drawn from when no
// palette is configured.
var DefaultPalette = []Color{Red, Orange, Yellow, Green, Blue, Purple, White}

var paletteRGB = [...][3]uint8{
	kindRed:    {0xff, 0x00, 0x00},
	kindOrange: {0xff, 0xaa, 0x00},
	kindYellow: {0xff, 0xff, 0x00},
	kindGreen:  {0x00, 0xff, 0x00},
	kindBlue:   {0x00, 0x00, 0xff},
	kindPurple: {0xaa, 0x00, 0xaa},
	kindWhite:  {0xff, 0xff, 0xff},
	kindBlack:  {0x00, 0x00, 0x00},
}

var paletteNames = [...]string{
	kindRed:    "red",
	kindOrange: "orange",
	kindYellow: "yellow",
	kindGreen:  "green",
	kindBlue:   "blue",
	kindPurple: "purple",
	kindWhite:  "white",
	kindBlack:  "black",
}

// RGB returns a custom color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// RGB resolves c to its 8-bit red, green and blue components.
func (c Color) RGB() [3]uint8 {
	if c.kind == kindRGB {
		return [3]uint8{c.r, c.g, c.b}
	}
	return paletteRGB[c.kind]
}

// RGBA returns the RGB components with an opaque alpha, ready for PrintPoint.
func (c Color) RGBA() [4]uint8 {
	rgb := c.RGB()
	return [4]uint8{rgb[0], rgb[1], rgb[2], 0xff}
}

// Fade returns c with every component multiplied by k, clamped to [0, 1].
// The result is always a custom RGB color.
func (c Color) Fade(k float64) Color {
	k = max(0, min(k, 1))
	rgb := c.RGB()
	return RGB(
		uint8(float64(rgb[0])*k),
		uint8(float64(rgb[1])*k),
		uint8(float64(rgb[2])*k),
	)
}

// String returns the palette name, or #rrggbb for custom colors.
func (c Color) String() string {
	if c.kind == kindRGB {
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return paletteNames[c.kind]
}

// ParseColor accepts a palette name (case-insensitive) or a #rrggbb hex triple.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return Color{}, fmt.Errorf("parse color %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	lower := strings.ToLower(s)
	for k, name := range paletteNames {
		if name == lower {
			return Color{kind: colorKind(k)}, nil
		}
	}
	return Color{}, fmt.Errorf("parse color %q: unknown palette name", s)
}
