package cli

import (
	"testing"

	"resumeforge/internal/render"
	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

func TestApplyTemplateOverride(t *testing.T) {
	tests := []struct {
		name           string
		resumeTemplate string
		override       string
		wantTemplate   string
	}{
		{"record choice kept without override", "creative", "", "creative"},
		{"override replaces record choice", "creative", "minimalist", "minimalist"},
		{"override fills empty record", "", "modern", "modern"},
		{"neither set leaves empty for default fallback", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume := &types.Resume{
				FirstName: "Grace",
				LastName:  "Hopper",
				Template:  tt.resumeTemplate,
			}
			applyTemplateOverride(resume, tt.override)
			if resume.Template != tt.wantTemplate {
				t.Errorf("template = %q, want %q", resume.Template, tt.wantTemplate)
			}
		})
	}
}

func TestRenderHonorsResumeTemplate(t *testing.T) {
	// A resume that names its own template renders with it when no
	// --template flag was given.
	resume := &types.Resume{
		FirstName: "Grace",
		LastName:  "Hopper",
		Summary:   "Rear admiral and computer scientist.",
		Skills:    []string{"COBOL"},
		Template:  render.TemplateCreative,
	}
	applyTemplateOverride(resume, "")

	customization, err := resolveCustomization("")
	if err != nil {
		t.Fatalf("resolveCustomization() error = %v", err)
	}

	doc, err := render.Render(resume, customization)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if doc.Template != render.TemplateCreative {
		t.Errorf("rendered template = %q, want %q", doc.Template, render.TemplateCreative)
	}
}

func TestResolveCustomizationDefaults(t *testing.T) {
	customization, err := resolveCustomization("")
	if err != nil {
		t.Fatalf("resolveCustomization() error = %v", err)
	}

	var want style.Customization
	want.Normalize()
	if customization != want {
		t.Errorf("customization = %+v, want normalized defaults %+v", customization, want)
	}
}
