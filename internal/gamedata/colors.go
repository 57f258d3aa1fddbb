package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" (the leading # is optional) to a tcell color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("color %q: want 6 hex digits", hex)
	}
	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// ColorOr parses hex and falls back to the given color when it is malformed.
func ColorOr(hex string, fallback tcell.Color) tcell.Color {
	if c, err := ParseHexColor(hex); err == nil {
		return c
	}
	return fallback
}
