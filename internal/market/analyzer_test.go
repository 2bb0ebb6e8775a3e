package market

import (
	"reflect"
	"strings"
	"testing"

	"resumeforge/internal/types"
)

func fullResume() *types.Resume {
	longDesc := strings.Repeat("delivered measurable results across teams ", 5)
	r := &types.Resume{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Summary:   strings.Repeat("Seasoned engineer with a focus on outcomes. ", 3),
		Skills: []string{
			"React", "JavaScript", "TypeScript", "Node.js", "Python",
			"AWS", "Docker", "Kubernetes", "Machine Learning", "Data Science",
		},
		Experience: []types.ExperienceEntry{
			{Position: "Engineer", Company: "Acme", Description: longDesc},
			{Position: "Senior Engineer", Company: "Acme", Description: longDesc},
			{Position: "Staff Engineer", Company: "Acme", Description: longDesc},
		},
		Education: []types.EducationEntry{
			{Degree: "BSc", School: "State University"},
		},
	}
	r.Normalize()
	return r
}

func TestAnalyzeCompleteResumeScores100(t *testing.T) {
	result := Analyze(fullResume())

	if result.CompletenessScore != 100 {
		t.Errorf("CompletenessScore = %d, want 100", result.CompletenessScore)
	}
	if len(result.MissingFields) != 0 {
		t.Errorf("MissingFields = %v, want none", result.MissingFields)
	}
}

func TestAnalyzeEmptyResume(t *testing.T) {
	r := &types.Resume{FirstName: "Ada", LastName: "Lovelace"}
	r.Normalize()

	result := Analyze(r)

	if result.CompletenessScore != 10 {
		t.Errorf("CompletenessScore = %d, want 10", result.CompletenessScore)
	}

	wantMissing := []string{
		"Professional Summary", "Skills", "Work Experience",
		"Education", "Email", "Phone Number",
	}
	if !reflect.DeepEqual(result.MissingFields, wantMissing) {
		t.Errorf("MissingFields = %v, want %v", result.MissingFields, wantMissing)
	}
	if len(result.MatchedIndustries) != 0 {
		t.Errorf("MatchedIndustries = %v, want none", result.MatchedIndustries)
	}
}

func TestAnalyzeCompletenessScoring(t *testing.T) {
	goodDesc := strings.Repeat("shipped features and mentored junior engineers weekly ", 3)

	tests := []struct {
		name   string
		resume types.Resume
		want   int
	}{
		{
			name:   "contact info only",
			resume: types.Resume{FirstName: "A", LastName: "B", Email: "a@b.c", Phone: "1"},
			want:   30,
		},
		{
			name:   "short summary does not count",
			resume: types.Resume{Summary: "Too short."},
			want:   0,
		},
		{
			name:   "long summary counts",
			resume: types.Resume{Summary: strings.Repeat("x", 51)},
			want:   10,
		},
		{
			name: "experience count capped at 15",
			resume: types.Resume{Experience: []types.ExperienceEntry{
				{}, {}, {}, {},
			}},
			want: 15,
		},
		{
			name: "quality bonus needs 70 percent detailed",
			resume: types.Resume{Experience: []types.ExperienceEntry{
				{Description: goodDesc},
				{Description: goodDesc},
				{Description: "too short"},
			}},
			want: 15, // 3*5, no bonus at 2/3
		},
		{
			name: "quality bonus granted",
			resume: types.Resume{Experience: []types.ExperienceEntry{
				{Description: goodDesc},
				{Description: goodDesc},
			}},
			want: 20, // 2*5 + 10
		},
		{
			name:   "skills capped at 20",
			resume: types.Resume{Skills: make([]string, 12)},
			want:   20,
		},
		{
			name:   "education flat 15",
			resume: types.Resume{Education: []types.EducationEntry{{Degree: "BSc"}}},
			want:   15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.resume
			r.Normalize()
			got := Analyze(&r).CompletenessScore
			if got != tt.want {
				t.Errorf("CompletenessScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnalyzeIndustryMatching(t *testing.T) {
	tests := []struct {
		name           string
		skills         []string
		wantIndustries []string
	}{
		{
			name:           "strong technology match",
			skills:         []string{"React", "Docker", "Kubernetes"},
			wantIndustries: []string{"technology"},
		},
		{
			name:           "case-insensitive substring both directions",
			skills:         []string{"react", "ReactJS Development", "python"},
			wantIndustries: []string{"technology"},
		},
		{
			name:           "below 30 percent threshold excluded",
			skills:         []string{"React", "Cooking", "Gardening"},
			wantIndustries: []string{},
		},
		{
			name:           "no skills no matches",
			skills:         []string{},
			wantIndustries: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &types.Resume{Skills: tt.skills}
			r.Normalize()
			result := Analyze(r)

			var got []string
			for _, m := range result.MatchedIndustries {
				got = append(got, m.Industry)
			}
			if got == nil {
				got = []string{}
			}
			if !reflect.DeepEqual(got, tt.wantIndustries) {
				t.Errorf("matched industries = %v, want %v", got, tt.wantIndustries)
			}
		})
	}
}

func TestAnalyzeMatchesSortedDescending(t *testing.T) {
	// Skills chosen to hit multiple industries at different strengths.
	r := &types.Resume{Skills: []string{
		"Financial Analysis", "Risk Management", "Blockchain",
		"Digital Marketing", "Data Analytics",
	}}
	r.Normalize()

	result := Analyze(r)

	if len(result.MatchedIndustries) < 2 {
		t.Fatalf("expected at least 2 matched industries, got %d", len(result.MatchedIndustries))
	}
	for i := 1; i < len(result.MatchedIndustries); i++ {
		prev := result.MatchedIndustries[i-1].MatchPercentage
		cur := result.MatchedIndustries[i].MatchPercentage
		if cur > prev {
			t.Errorf("matches out of order at %d: %d before %d", i, prev, cur)
		}
	}
}

func TestAnalyzeThresholdBoundaryInclusive(t *testing.T) {
	// 3 of 10 technology hot skills is exactly 30%.
	r := &types.Resume{Skills: []string{"React", "Docker", "AWS"}}
	r.Normalize()

	result := Analyze(r)

	found := false
	for _, m := range result.MatchedIndustries {
		if m.Industry == "technology" {
			found = true
			if m.MatchPercentage != 30 {
				t.Errorf("MatchPercentage = %d, want 30", m.MatchPercentage)
			}
		}
	}
	if !found {
		t.Error("30% match should be included")
	}
}

func TestAnalyzeRecommendationsForDetailedExperience(t *testing.T) {
	goodDesc := strings.Repeat("led projects and improved delivery times significantly ", 3)

	r := &types.Resume{
		Experience: []types.ExperienceEntry{{Position: "Engineer", Description: goodDesc}},
	}
	r.Normalize()

	result := Analyze(r)

	wantStrength := "Detailed work experience descriptions"
	found := false
	for _, s := range result.Strengths {
		if s == wantStrength {
			found = true
		}
	}
	if !found {
		t.Errorf("Strengths = %v, want to contain %q", result.Strengths, wantStrength)
	}
}

func TestAnalyzeShortDescriptionFlagged(t *testing.T) {
	// Fourteen words is just under the detail threshold.
	desc := strings.TrimSpace(strings.Repeat("word ", 14))

	r := &types.Resume{
		Experience: []types.ExperienceEntry{{Position: "Engineer", Description: desc}},
	}
	r.Normalize()

	result := Analyze(r)

	want := "Expand your work experience descriptions with more details and achievements"
	found := false
	for _, rec := range result.Recommendations {
		if rec == want {
			found = true
		}
	}
	if !found {
		t.Errorf("Recommendations = %v, want to contain %q", result.Recommendations, want)
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	r := fullResume()
	copyOf := *r

	Analyze(r)

	if !reflect.DeepEqual(*r, copyOf) {
		t.Error("Analyze mutated its input")
	}
}

func TestGetIndustryData(t *testing.T) {
	tests := []struct {
		name     string
		industry string
		wantErr  bool
	}{
		{"exact", "technology", false},
		{"mixed case", "TechNology", false},
		{"unknown", "aerospace", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetIndustryData(tt.industry)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetIndustryData(%q) error = %v, wantErr %v", tt.industry, err, tt.wantErr)
			}
		})
	}
}

func TestAvailableIndustriesStable(t *testing.T) {
	want := []string{"technology", "healthcare", "finance", "marketing"}
	if got := AvailableIndustries(); !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableIndustries() = %v, want %v", got, want)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	r := fullResume()
	for b.Loop() {
		Analyze(r)
	}
}
