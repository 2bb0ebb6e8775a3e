package market

import (
	"fmt"
	"strings"

	"resumeforge/internal/types"
)

// SuggestImprovements produces industry-targeted suggestions: hot skills
// the resume lacks, growing roles the candidate has not held, and tagged
// summary improvements. Unknown industry is a typed error.
func SuggestImprovements(resume *types.Resume, industry string) (types.Improvements, error) {
	data, err := GetIndustryData(industry)
	if err != nil {
		return types.Improvements{}, err
	}

	out := types.Improvements{
		Industry:            industry,
		SkillsToAdd:         []string{},
		RolesToConsider:     []string{},
		SummaryImprovements: []types.SummaryImprovement{},
	}

	if len(resume.Skills) > 0 {
		out.SkillsToAdd = append(out.SkillsToAdd, missingSkills(data.HotSkills, resume.Skills)...)
	} else {
		out.SkillsToAdd = append(out.SkillsToAdd, data.HotSkills...)
	}

	if len(resume.Experience) > 0 {
		positions := make([]string, len(resume.Experience))
		for i, exp := range resume.Experience {
			positions[i] = exp.Position
		}
		out.RolesToConsider = append(out.RolesToConsider, missingSkills(data.GrowingRoles, positions)...)
	} else {
		out.RolesToConsider = append(out.RolesToConsider, data.GrowingRoles...)
	}

	if strings.TrimSpace(resume.Summary) == "" {
		out.SummaryImprovements = append(out.SummaryImprovements, types.SummaryImprovement{
			Kind: types.SummaryAddNew,
			Message: fmt.Sprintf(
				"Add a professional summary that highlights your experience and skills relevant to the %s industry",
				industry),
		})
	} else {
		summary := strings.ToLower(resume.Summary)

		var missing []string
		for _, term := range append(append([]string{}, data.HotSkills...), data.GrowingRoles...) {
			if !strings.Contains(summary, strings.ToLower(term)) {
				missing = append(missing, term)
			}
		}

		if len(missing) > 0 {
			shown := missing
			if len(shown) > 5 {
				shown = shown[:5]
			}
			out.SummaryImprovements = append(out.SummaryImprovements, types.SummaryImprovement{
				Kind: types.SummaryIncorporateTerms,
				Message: "Consider incorporating these key terms in your summary: " +
					strings.Join(shown, ", "),
				Terms: shown,
			})
		}
	}

	return out, nil
}

// GenerateIndustryReport builds a human-readable market report for one
// industry.
func GenerateIndustryReport(industry string) (types.IndustryReport, error) {
	data, err := GetIndustryData(industry)
	if err != nil {
		return types.IndustryReport{}, err
	}

	return types.IndustryReport{
		Industry: industry,
		Overview: fmt.Sprintf(
			"The %s industry is currently experiencing %s growth with a %s demand for qualified professionals. The average salary in this field is around %s.",
			industry, data.IndustryGrowth, data.DemandLevel, data.AverageSalary),
		HotSkills:    data.HotSkills,
		GrowingRoles: data.GrowingRoles,
		Salary:       data.AverageSalary,
		DemandLevel:  data.DemandLevel,
		Growth:       data.IndustryGrowth,
	}, nil
}
