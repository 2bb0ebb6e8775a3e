package style

import (
	"strings"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	var c Customization
	c.Normalize()

	want := Customization{
		PrimaryColor:   "#2196f3",
		SecondaryColor: "#f50057",
		Font:           "Roboto",
		Spacing:        1.5,
		Margin:         30,
	}
	if c != want {
		t.Errorf("Normalize() = %+v, want %+v", c, want)
	}
}

func TestNormalizePreservesSetFields(t *testing.T) {
	c := Customization{PrimaryColor: "#000000", Margin: 10}
	c.Normalize()

	if c.PrimaryColor != "#000000" {
		t.Errorf("PrimaryColor = %q, want #000000", c.PrimaryColor)
	}
	if c.Margin != 10 {
		t.Errorf("Margin = %d, want 10", c.Margin)
	}
	if c.Font != "Roboto" || c.Spacing != 1.5 {
		t.Errorf("unfilled fields not defaulted: %+v", c)
	}
}

func TestThemeByName(t *testing.T) {
	theme, err := ThemeByName("Classic Blue")
	if err != nil {
		t.Fatalf("ThemeByName() error = %v", err)
	}
	if theme.PrimaryColor != "#1976d2" || theme.Font != "Roboto" || theme.Margin != 30 {
		t.Errorf("unexpected theme: %+v", theme)
	}

	if _, err := ThemeByName("Nonexistent"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestThemesCount(t *testing.T) {
	if got := len(Themes()); got != 8 {
		t.Errorf("Themes() count = %d, want 8", got)
	}
}

func TestFontCSS(t *testing.T) {
	tests := []struct {
		font string
		want string
	}{
		{"Roboto", "'Roboto', sans-serif"},
		{"Playfair Display", "'Playfair Display', serif"},
		{"Comic Sans", "'Roboto', sans-serif"},
		{"", "'Roboto', sans-serif"},
	}

	for _, tt := range tests {
		if got := FontCSS(tt.font); got != tt.want {
			t.Errorf("FontCSS(%q) = %q, want %q", tt.font, got, tt.want)
		}
	}
}

func TestContrastColor(t *testing.T) {
	tests := []struct {
		color string
		want  string
	}{
		{"#ffffff", "#000000"},
		{"#000000", "#ffffff"},
		{"#1976d2", "#ffffff"},
		{"#ff9800", "#000000"},
	}

	for _, tt := range tests {
		if got := ContrastColor(tt.color); got != tt.want {
			t.Errorf("ContrastColor(%q) = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestAdjustColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		percent float64
		want    string
	}{
		{"lighten clamps at white", "#ffffff", 50, "#ffffff"},
		{"darken black stays black", "#000000", -50, "#000000"},
		{"halve mid gray", "#808080", -50, "#404040"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustColor(tt.color, tt.percent); got != tt.want {
				t.Errorf("AdjustColor(%q, %v) = %q, want %q", tt.color, tt.percent, got, tt.want)
			}
		})
	}
}

func TestComplementaryColor(t *testing.T) {
	if got := ComplementaryColor("#000000"); got != "#ffffff" {
		t.Errorf("ComplementaryColor(#000000) = %q, want #ffffff", got)
	}
	if got := ComplementaryColor("#1976d2"); got != "#e6892d" {
		t.Errorf("ComplementaryColor(#1976d2) = %q, want #e6892d", got)
	}
}

func TestCSSVariables(t *testing.T) {
	var c Customization
	c.Normalize()

	css := c.CSSVariables()
	for _, want := range []string{
		"--primary-color: #2196f3;",
		"--secondary-color: #f50057;",
		"--font-family: 'Roboto', sans-serif;",
		"--line-spacing: 1.5;",
		"--margin: 30px;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSSVariables() missing %q:\n%s", want, css)
		}
	}
}
