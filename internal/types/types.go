package types

// Resume represents the user's editable resume data. All slice fields are
// kept non-nil by Normalize so consumers only ever branch on length.
type Resume struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`

	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Skills         []string             `json:"skills"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	Languages      []LanguageEntry      `json:"languages"`
	References     []ReferenceEntry     `json:"references"`
	ShowReferences bool                 `json:"showReferences"`

	// Template selects the renderer variant (professional, modern,
	// creative, minimalist).
	Template string `json:"template"`
}

// ExperienceEntry represents a single work experience item.
// Dates are "MM/YYYY" strings or the literal "Present".
type ExperienceEntry struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// EducationEntry represents a single education item.
type EducationEntry struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	GraduationDate string `json:"graduationDate"`
	Description    string `json:"description"`
}

// ProjectEntry represents a project item.
type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// CertificationEntry represents a certification item.
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// LanguageEntry represents a spoken language with optional proficiency.
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ReferenceEntry represents a professional reference.
type ReferenceEntry struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Contact string `json:"contact"`
}

// Normalize ensures all slice fields are non-nil. Renderers and the
// analyzer rely on this so a partially filled record is never fatal.
func (r *Resume) Normalize() {
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Projects == nil {
		r.Projects = []ProjectEntry{}
	}
	if r.Certifications == nil {
		r.Certifications = []CertificationEntry{}
	}
	if r.Languages == nil {
		r.Languages = []LanguageEntry{}
	}
	if r.References == nil {
		r.References = []ReferenceEntry{}
	}
}

// FullName joins first and last name with a single space.
func (r *Resume) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}

// IndustryMatch represents how well the resume's skills match one industry.
type IndustryMatch struct {
	Industry        string   `json:"industry"`
	MatchPercentage int      `json:"matchPercentage"`
	MatchedSkills   []string `json:"matchedSkills"`
}

// AnalysisResult represents the derived feedback for a resume. It is
// recomputed on every change and never persisted.
type AnalysisResult struct {
	CompletenessScore int             `json:"completenessScore"`
	SkillsCount       int             `json:"skillsCount"`
	ExperienceCount   int             `json:"experienceCount"`
	EducationCount    int             `json:"educationCount"`
	HasSummary        bool            `json:"hasSummary"`
	MissingFields     []string        `json:"missingFields"`
	Strengths         []string        `json:"strengths"`
	Recommendations   []string        `json:"recommendations"`
	MatchedIndustries []IndustryMatch `json:"matchedIndustries"`
}

// SummaryImprovementKind tags a summary suggestion so callers dispatch on
// the kind instead of parsing suggestion text.
type SummaryImprovementKind string

const (
	SummaryAddNew           SummaryImprovementKind = "add_summary"
	SummaryIncorporateTerms SummaryImprovementKind = "incorporate_terms"
)

// SummaryImprovement is a tagged summary suggestion with its payload.
type SummaryImprovement struct {
	Kind    SummaryImprovementKind `json:"kind"`
	Message string                 `json:"message"`
	// Terms carries the key terms to incorporate (incorporate_terms only).
	Terms []string `json:"terms,omitempty"`
}

// Improvements represents industry-targeted suggestions for a resume.
type Improvements struct {
	Industry            string               `json:"industry"`
	SkillsToAdd         []string             `json:"skillsToAdd"`
	RolesToConsider     []string             `json:"rolesToConsider"`
	SummaryImprovements []SummaryImprovement `json:"summaryImprovements"`
}

// IndustryReport represents a human-readable job market report.
type IndustryReport struct {
	Industry     string   `json:"industry"`
	Overview     string   `json:"overview"`
	HotSkills    []string `json:"hotSkills"`
	GrowingRoles []string `json:"growingRoles"`
	Salary       string   `json:"salary"`
	DemandLevel  string   `json:"demandLevel"`
	Growth       string   `json:"growth"`
}
