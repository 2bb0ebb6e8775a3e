package market

import (
	"fmt"
	"strings"

	"resumeforge/internal/types"
)

// AddSkill appends a skill to the resume unless an equal skill is
// already present, compared case-insensitively. Reports whether the
// resume changed.
func AddSkill(resume *types.Resume, skill string) bool {
	for _, existing := range resume.Skills {
		if strings.EqualFold(existing, skill) {
			return false
		}
	}
	resume.Skills = append(resume.Skills, skill)
	return true
}

// ApplySummaryImprovement rewrites the resume summary according to the
// suggestion's kind. Dispatch is on the tag, never on message text.
// Reports whether the summary changed.
func ApplySummaryImprovement(resume *types.Resume, imp types.SummaryImprovement, suggestions types.Improvements) bool {
	switch imp.Kind {
	case types.SummaryAddNew:
		if resume.Summary != "" {
			return false
		}
		resume.Summary = generateSummary(resume, suggestions)
		return true

	case types.SummaryIncorporateTerms:
		terms := imp.Terms
		if len(terms) > 2 {
			terms = terms[:2]
		}
		updated := resume.Summary
		for _, term := range terms {
			if !strings.Contains(strings.ToLower(updated), strings.ToLower(term)) {
				updated += fmt.Sprintf(" Proficient in %s.", term)
			}
		}
		if updated == resume.Summary {
			return false
		}
		resume.Summary = updated
		return true

	default:
		return false
	}
}

func generateSummary(resume *types.Resume, suggestions types.Improvements) string {
	skillPart := "various areas"
	if len(resume.Skills) > 0 {
		top := resume.Skills
		if len(top) > 3 {
			top = top[:3]
		}
		skillPart = strings.Join(top, ", ")
	}

	expertise := suggestions.SkillsToAdd
	if len(expertise) > 2 {
		expertise = expertise[:2]
	}

	return fmt.Sprintf(
		"Experienced professional with skills in %s. Seeking opportunities in the %s industry to leverage my expertise in %s.",
		skillPart, suggestions.Industry, strings.Join(expertise, " and "))
}
