package render

import (
	"strings"

	"resumeforge/internal/errors"
	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

// Template ids.
const (
	TemplateProfessional = "professional"
	TemplateModern       = "modern"
	TemplateCreative     = "creative"
	TemplateMinimalist   = "minimalist"

	DefaultTemplate = TemplateProfessional
)

type renderFunc func(*types.Resume, style.Customization) *Document

var templates = map[string]renderFunc{
	TemplateProfessional: renderProfessional,
	TemplateModern:       renderModern,
	TemplateCreative:     renderCreative,
	TemplateMinimalist:   renderMinimalist,
}

// AvailableTemplates returns the known template ids in listing order.
func AvailableTemplates() []string {
	return []string{TemplateProfessional, TemplateModern, TemplateCreative, TemplateMinimalist}
}

// Render produces a Document for the resume's selected template. An
// empty template id falls back to the default; an unknown id is a
// typed render error so one bad selection never takes down a caller
// rendering other templates.
func Render(resume *types.Resume, customization style.Customization) (*Document, error) {
	id := strings.ToLower(resume.Template)
	if id == "" {
		id = DefaultTemplate
	}

	fn, ok := templates[id]
	if !ok {
		return nil, errors.NewRenderError(
			errors.ErrCodeTemplateNotFound,
			"template not found: "+resume.Template,
			nil,
		).WithContext("template", resume.Template)
	}

	normalized := *resume
	normalized.Normalize()
	customization.Normalize()

	return fn(&normalized, customization), nil
}
