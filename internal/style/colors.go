package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func parseHex(color string) (r, g, b int) {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	rv, _ := strconv.ParseInt(hex[0:2], 16, 32)
	gv, _ := strconv.ParseInt(hex[2:4], 16, 32)
	bv, _ := strconv.ParseInt(hex[4:6], 16, 32)
	return int(rv), int(gv), int(bv)
}

func toHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ContrastColor returns black for bright backgrounds and white for dark
// ones, based on perceived luminance.
func ContrastColor(background string) string {
	r, g, b := parseHex(background)
	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if luminance > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

// AdjustColor lightens (positive percent) or darkens (negative percent)
// a hex color, clamping each channel to 0..255.
func AdjustColor(color string, percent float64) string {
	r, g, b := parseHex(color)
	adjust := func(c int) int {
		v := int(math.Round(float64(c) + float64(c)*percent/100))
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	return toHex(adjust(r), adjust(g), adjust(b))
}

// ComplementaryColor inverts each channel.
func ComplementaryColor(color string) string {
	r, g, b := parseHex(color)
	return toHex(255-r, 255-g, 255-b)
}

// Palette is a set of colors derived from one primary color.
type Palette struct {
	Primary       string `json:"primary"`
	PrimaryLight  string `json:"primaryLight"`
	PrimaryDark   string `json:"primaryDark"`
	Complementary string `json:"complementary"`
	TextOnPrimary string `json:"textOnPrimary"`
	Accent        string `json:"accent"`
}

// GeneratePalette derives a cohesive palette from a primary color.
func GeneratePalette(primary string) Palette {
	return Palette{
		Primary:       primary,
		PrimaryLight:  AdjustColor(primary, 30),
		PrimaryDark:   AdjustColor(primary, -30),
		Complementary: ComplementaryColor(primary),
		TextOnPrimary: ContrastColor(primary),
		Accent:        AdjustColor(ComplementaryColor(primary), 10),
	}
}
