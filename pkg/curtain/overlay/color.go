package overlay

import (
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"red":         {R: 255, G: 0, B: 0, A: 255},
	"green":       {R: 0, G: 128, B: 0, A: 255},
	"blue":        {R: 0, G: 0, B: 255, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"navy":        {R: 0, G: 0, B: 128, A: 255},
	"teal":        {R: 0, G: 128, B: 128, A: 255},
	"purple":      {R: 128, G: 0, B: 128, A: 255},
	"orange":      {R: 255, G: 165, B: 0, A: 255},
	"yellow":      {R: 255, G: 255, B: 0, A: 255},
	"transparent": {R: 0, G: 0, B: 0, A: 0},
}

// ParseColor reads a CSS color name or a #rgb, #rrggbb or #rrggbbaa hex
// string. Anything it cannot read comes back as opaque black.
func ParseColor(s string) color.RGBA {
	c, ok := LookupColor(s)
	if !ok {
		return namedColors["black"]
	}
	return c
}

// LookupColor is ParseColor that reports whether s was understood.
func LookupColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return HexToColor(uint32(v)), true
}

// HexToColor converts 0xRRGGBBAA to a color.
func HexToColor(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
