package canvas

import (
	"strconv"
	"strings"
)

// Color is an RGB triple
type Color struct {
	R, G, B int
}

// Palette defaults
var (
	Primary = Color{R: 0x0b, G: 0x3d, B: 0x91}
	Accent  = Color{R: 0x0e, G: 0xa5, B: 0xa4}
	Dark    = Color{R: 0x0f, G: 0x17, B: 0x2a}
	Muted   = Color{R: 0x64, G: 0x74, B: 0x8b}
	White   = Color{R: 0xff, G: 0xff, B: 0xff}
)

// ParseHex parses "#rrggbb" (the leading # is optional). Anything else
// yields fallback.
func ParseHex(s string, fallback Color) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}
