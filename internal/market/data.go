package market

import (
	"strings"

	"resumeforge/internal/errors"
)

// IndustryData holds the job market profile for one industry.
type IndustryData struct {
	HotSkills      []string `json:"hotSkills"`
	GrowingRoles   []string `json:"growingRoles"`
	AverageSalary  string   `json:"averageSalary"`
	DemandLevel    string   `json:"demandLevel"`
	IndustryGrowth string   `json:"industryGrowth"`
}

// industryOrder fixes the iteration order for matching and listings.
var industryOrder = []string{"technology", "healthcare", "finance", "marketing"}

var industryData = map[string]IndustryData{
	"technology": {
		HotSkills: []string{
			"React", "JavaScript", "TypeScript", "Node.js", "Python",
			"AWS", "Docker", "Kubernetes", "Machine Learning", "Data Science",
		},
		GrowingRoles: []string{
			"Full Stack Developer", "DevOps Engineer", "Data Scientist",
			"Machine Learning Engineer", "Cloud Architect",
		},
		AverageSalary:  "$105,000",
		DemandLevel:    "High",
		IndustryGrowth: "15% annually",
	},
	"healthcare": {
		HotSkills: []string{
			"Electronic Medical Records", "Patient Care", "Medical Coding",
			"Healthcare Administration", "Clinical Research",
		},
		GrowingRoles: []string{
			"Registered Nurse", "Nurse Practitioner", "Healthcare Administrator",
			"Medical Technologist", "Physician Assistant",
		},
		AverageSalary:  "$85,000",
		DemandLevel:    "Very High",
		IndustryGrowth: "18% annually",
	},
	"finance": {
		HotSkills: []string{
			"Financial Analysis", "Risk Management", "Investment Banking",
			"Blockchain", "Financial Modeling",
		},
		GrowingRoles: []string{
			"Financial Analyst", "Investment Banker", "Risk Manager",
			"Blockchain Developer", "Quantitative Analyst",
		},
		AverageSalary:  "$95,000",
		DemandLevel:    "Medium-High",
		IndustryGrowth: "10% annually",
	},
	"marketing": {
		HotSkills: []string{
			"Digital Marketing", "Social Media Marketing", "Content Creation",
			"SEO/SEM", "Data Analytics",
		},
		GrowingRoles: []string{
			"Digital Marketing Specialist", "Content Strategist", "SEO Specialist",
			"Social Media Manager", "Marketing Data Analyst",
		},
		AverageSalary:  "$75,000",
		DemandLevel:    "Medium",
		IndustryGrowth: "8% annually",
	},
}

// GetIndustryData looks up the market profile for an industry.
// The lookup is case-insensitive.
func GetIndustryData(industry string) (IndustryData, error) {
	data, ok := industryData[strings.ToLower(industry)]
	if !ok {
		return IndustryData{}, errors.NewValidationError(
			errors.ErrCodeIndustryNotFound,
			"unknown industry: "+industry,
			nil,
		).WithContext("industry", industry)
	}
	return data, nil
}

// AvailableIndustries returns the known industry names in listing order.
func AvailableIndustries() []string {
	out := make([]string, len(industryOrder))
	copy(out, industryOrder)
	return out
}
