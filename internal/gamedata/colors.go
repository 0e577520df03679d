package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a palette colour to a tcell.Color. It accepts hex codes
// ("#2E7D32" or "2E7D32") and the W3C colour names tcell knows ("darkgreen").
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tcell.ColorDefault, fmt.Errorf("empty colour")
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		if rgb, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return tcell.NewHexColor(int32(rgb)), nil
		}
	}

	if c := tcell.GetColor(strings.ToLower(s)); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("invalid colour %q", s)
}

