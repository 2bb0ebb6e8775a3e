package market

import (
	"fmt"
	"strings"

	"resumeforge/internal/types"
)

// Analyze inspects a resume and produces completeness scoring, missing
// fields, strengths, recommendations, and industry matches. It performs
// no I/O and never mutates the input.
func Analyze(resume *types.Resume) types.AnalysisResult {
	analysis := types.AnalysisResult{
		SkillsCount:       len(resume.Skills),
		ExperienceCount:   len(resume.Experience),
		EducationCount:    len(resume.Education),
		HasSummary:        resume.Summary != "",
		MissingFields:     []string{},
		Strengths:         []string{},
		Recommendations:   []string{},
		MatchedIndustries: []types.IndustryMatch{},
	}

	if strings.TrimSpace(resume.Summary) == "" {
		analysis.MissingFields = append(analysis.MissingFields, "Professional Summary")
		analysis.Recommendations = append(analysis.Recommendations,
			"Add a professional summary to highlight your key qualifications")
	}

	switch {
	case len(resume.Skills) == 0:
		analysis.MissingFields = append(analysis.MissingFields, "Skills")
		analysis.Recommendations = append(analysis.Recommendations,
			"Add relevant skills to make your resume more searchable")
	case len(resume.Skills) < 5:
		analysis.Recommendations = append(analysis.Recommendations,
			"Consider adding more skills (aim for at least 5-10 relevant skills)")
	default:
		analysis.Strengths = append(analysis.Strengths, "Good number of skills listed")
	}

	if len(resume.Experience) == 0 {
		analysis.MissingFields = append(analysis.MissingFields, "Work Experience")
		analysis.Recommendations = append(analysis.Recommendations,
			"Add work experience to demonstrate your professional background")
	} else {
		short := 0
		for _, exp := range resume.Experience {
			if wordCount(exp.Description) < 15 {
				short++
			}
		}
		if short > 0 {
			analysis.Recommendations = append(analysis.Recommendations,
				"Expand your work experience descriptions with more details and achievements")
		} else {
			analysis.Strengths = append(analysis.Strengths, "Detailed work experience descriptions")
		}
	}

	if len(resume.Education) == 0 {
		analysis.MissingFields = append(analysis.MissingFields, "Education")
		analysis.Recommendations = append(analysis.Recommendations,
			"Add your educational background")
	}

	analysis.MatchedIndustries = matchIndustries(resume.Skills)

	if len(analysis.MatchedIndustries) > 0 {
		top := analysis.MatchedIndustries[0]
		data := industryData[top.Industry]

		analysis.Strengths = append(analysis.Strengths,
			fmt.Sprintf("Your skills align well with the %s industry", top.Industry))

		missingHot := missingSkills(data.HotSkills, resume.Skills)
		if len(missingHot) > 3 {
			missingHot = missingHot[:3]
		}
		if len(missingHot) > 0 {
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("Consider adding these in-demand skills for the %s industry: %s",
					top.Industry, strings.Join(missingHot, ", ")))
		}

		topRoles := data.GrowingRoles
		if len(topRoles) > 3 {
			topRoles = topRoles[:3]
		}
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("Based on your skills, consider these roles: %s",
				strings.Join(topRoles, ", ")))
	} else {
		analysis.Recommendations = append(analysis.Recommendations,
			"Your skills don't strongly align with our industry data. Consider adding more industry-specific keywords.")
	}

	if resume.Summary == "" || wordCount(resume.Summary) < 30 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Expand your professional summary to at least 2-3 sentences highlighting your experience and key achievements")
	}

	if resume.Email == "" {
		analysis.MissingFields = append(analysis.MissingFields, "Email")
		analysis.Recommendations = append(analysis.Recommendations,
			"Add your email address for contact information")
	}

	if resume.Phone == "" {
		analysis.MissingFields = append(analysis.MissingFields, "Phone Number")
		analysis.Recommendations = append(analysis.Recommendations,
			"Add your phone number for contact information")
	}

	analysis.CompletenessScore = completenessScore(resume)

	return analysis
}

// completenessScore weights basic fields 40%, experience 25%,
// education 15%, and skills 20%.
func completenessScore(resume *types.Resume) int {
	score := 0

	if resume.FirstName != "" && resume.LastName != "" {
		score += 10
	}
	if resume.Email != "" {
		score += 10
	}
	if resume.Phone != "" {
		score += 10
	}
	if len(resume.Summary) > 50 {
		score += 10
	}

	if len(resume.Experience) > 0 {
		score += min(len(resume.Experience)*5, 15)

		good := 0
		for _, exp := range resume.Experience {
			if wordCount(exp.Description) >= 20 {
				good++
			}
		}
		if float64(good)/float64(len(resume.Experience)) >= 0.7 {
			score += 10
		}
	}

	if len(resume.Education) > 0 {
		score += 15
	}

	if len(resume.Skills) > 0 {
		score += min(len(resume.Skills)*2, 20)
	}

	return score
}

// matchIndustries compares resume skills against each industry's hot
// skills. A skill matches when either string contains the other,
// case-insensitive. Industries below 30% match are dropped and the
// result is sorted descending by percentage, ties keeping dataset order.
func matchIndustries(skills []string) []types.IndustryMatch {
	matches := []types.IndustryMatch{}
	if len(skills) == 0 {
		return matches
	}

	normalized := make([]string, len(skills))
	for i, s := range skills {
		normalized[i] = strings.ToLower(s)
	}

	for _, industry := range industryOrder {
		data := industryData[industry]

		var matched []string
		for _, skill := range normalized {
			for _, hot := range data.HotSkills {
				hotLower := strings.ToLower(hot)
				if strings.Contains(hotLower, skill) || strings.Contains(skill, hotLower) {
					matched = append(matched, skill)
					break
				}
			}
		}

		if len(matched) == 0 {
			continue
		}

		pct := int(float64(len(matched))/float64(len(data.HotSkills))*100 + 0.5)
		if pct >= 30 {
			matches = append(matches, types.IndustryMatch{
				Industry:        industry,
				MatchPercentage: pct,
				MatchedSkills:   matched,
			})
		}
	}

	// Insertion sort keeps the dataset order stable for equal percentages.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].MatchPercentage > matches[j-1].MatchPercentage; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	return matches
}

// missingSkills returns the wanted skills not covered by the user's
// skills under symmetric substring matching.
func missingSkills(wanted, have []string) []string {
	var missing []string
	for _, w := range wanted {
		wLower := strings.ToLower(w)
		found := false
		for _, h := range have {
			hLower := strings.ToLower(h)
			if strings.Contains(hLower, wLower) || strings.Contains(wLower, hLower) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, w)
		}
	}
	return missing
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
