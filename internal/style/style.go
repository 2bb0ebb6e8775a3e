// Package style holds the resume customization record, the predefined
// theme presets, and the color helpers the renderers use.
package style

import (
	"fmt"
	"strings"

	"resumeforge/internal/errors"
)

// Default customization values.
const (
	DefaultPrimaryColor   = "#2196f3"
	DefaultSecondaryColor = "#f50057"
	DefaultFont           = "Roboto"
	DefaultSpacing        = 1.5
	DefaultMargin         = 30
)

// Customization controls the visual styling of a rendered resume.
// Zero-valued fields are filled with defaults by Normalize.
type Customization struct {
	PrimaryColor   string  `json:"primaryColor"`
	SecondaryColor string  `json:"secondaryColor"`
	Font           string  `json:"font"`
	Spacing        float64 `json:"spacing"`
	Margin         int     `json:"margin"`
}

// Normalize fills empty fields with defaults, field-wise. Unspecified
// fields never cause an error.
func (c *Customization) Normalize() {
	if c.PrimaryColor == "" {
		c.PrimaryColor = DefaultPrimaryColor
	}
	if c.SecondaryColor == "" {
		c.SecondaryColor = DefaultSecondaryColor
	}
	if c.Font == "" {
		c.Font = DefaultFont
	}
	if c.Spacing == 0 {
		c.Spacing = DefaultSpacing
	}
	if c.Margin == 0 {
		c.Margin = DefaultMargin
	}
}

// Theme is a named customization preset. Applying a theme replaces all
// five customization fields at once.
type Theme struct {
	Name string `json:"name"`
	Customization
}

var predefinedThemes = []Theme{
	{Name: "Classic Blue", Customization: Customization{PrimaryColor: "#1976d2", SecondaryColor: "#2196f3", Font: "Roboto", Spacing: 1.5, Margin: 30}},
	{Name: "Professional Gray", Customization: Customization{PrimaryColor: "#424242", SecondaryColor: "#757575", Font: "Open Sans", Spacing: 1.4, Margin: 25}},
	{Name: "Modern Teal", Customization: Customization{PrimaryColor: "#00796b", SecondaryColor: "#26a69a", Font: "Montserrat", Spacing: 1.6, Margin: 30}},
	{Name: "Bold Red", Customization: Customization{PrimaryColor: "#c62828", SecondaryColor: "#ef5350", Font: "Raleway", Spacing: 1.5, Margin: 35}},
	{Name: "Elegant Purple", Customization: Customization{PrimaryColor: "#6a1b9a", SecondaryColor: "#9c27b0", Font: "Playfair Display", Spacing: 1.7, Margin: 30}},
	{Name: "Corporate Navy", Customization: Customization{PrimaryColor: "#1a237e", SecondaryColor: "#3949ab", Font: "Lato", Spacing: 1.5, Margin: 25}},
	{Name: "Creative Orange", Customization: Customization{PrimaryColor: "#e65100", SecondaryColor: "#ff9800", Font: "Montserrat", Spacing: 1.6, Margin: 30}},
	{Name: "Minimalist Black", Customization: Customization{PrimaryColor: "#212121", SecondaryColor: "#616161", Font: "Open Sans", Spacing: 1.4, Margin: 20}},
}

// Themes returns a copy of the predefined presets.
func Themes() []Theme {
	out := make([]Theme, len(predefinedThemes))
	copy(out, predefinedThemes)
	return out
}

// ThemeByName looks up a preset by its exact name.
func ThemeByName(name string) (Theme, error) {
	for _, theme := range predefinedThemes {
		if theme.Name == name {
			return theme, nil
		}
	}
	return Theme{}, errors.NewValidationError(
		"THEME_NOT_FOUND",
		"unknown theme: "+name,
		nil,
	).WithContext("theme", name)
}

var fontCSS = map[string]string{
	"Roboto":           "'Roboto', sans-serif",
	"Open Sans":        "'Open Sans', sans-serif",
	"Lato":             "'Lato', sans-serif",
	"Montserrat":       "'Montserrat', sans-serif",
	"Raleway":          "'Raleway', sans-serif",
	"Playfair Display": "'Playfair Display', serif",
}

// Fonts returns the supported font names in listing order.
func Fonts() []string {
	return []string{"Roboto", "Open Sans", "Lato", "Montserrat", "Raleway", "Playfair Display"}
}

// FontCSS returns the CSS font-family stack for a font name. Unknown
// fonts fall back to Roboto.
func FontCSS(name string) string {
	if css, ok := fontCSS[name]; ok {
		return css
	}
	return fontCSS["Roboto"]
}

// CSSVariables renders the customization as a :root variable block.
func (c Customization) CSSVariables() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --primary-color: %s;\n", c.PrimaryColor)
	fmt.Fprintf(&b, "  --secondary-color: %s;\n", c.SecondaryColor)
	fmt.Fprintf(&b, "  --font-family: %s;\n", FontCSS(c.Font))
	fmt.Fprintf(&b, "  --line-spacing: %g;\n", c.Spacing)
	fmt.Fprintf(&b, "  --margin: %dpx;\n", c.Margin)
	b.WriteString("}\n")
	return b.String()
}
