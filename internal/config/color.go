package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// Color is an RGBA color written as "#rrggbb" or "#rrggbbaa" in YAML.
type Color color.RGBA

// ToRGBA returns the value as a standard library color.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA(c)
}

// MarshalText encodes the color as hex, omitting an opaque alpha.
func (c Color) MarshalText() ([]byte, error) {
	b := []byte{c.R, c.G, c.B, c.A}
	if c.A == 255 {
		b = b[:3]
	}
	return []byte("#" + hex.EncodeToString(b)), nil
}

// UnmarshalText parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", text)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	if len(b) == 3 {
		b = append(b, 255)
	}
	*c = Color{R: b[0], G: b[1], B: b[2], A: b[3]}
	return nil
}
