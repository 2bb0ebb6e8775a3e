package market

import (
	"reflect"
	"strings"
	"testing"

	"resumeforge/internal/types"
)

func TestSuggestImprovementsUnknownIndustry(t *testing.T) {
	r := &types.Resume{}
	r.Normalize()

	if _, err := SuggestImprovements(r, "aerospace"); err == nil {
		t.Error("expected error for unknown industry")
	}
}

func TestSuggestImprovementsEmptyResume(t *testing.T) {
	r := &types.Resume{}
	r.Normalize()

	got, err := SuggestImprovements(r, "technology")
	if err != nil {
		t.Fatalf("SuggestImprovements() error = %v", err)
	}

	data, _ := GetIndustryData("technology")
	if !reflect.DeepEqual(got.SkillsToAdd, data.HotSkills) {
		t.Errorf("SkillsToAdd = %v, want all hot skills", got.SkillsToAdd)
	}
	if !reflect.DeepEqual(got.RolesToConsider, data.GrowingRoles) {
		t.Errorf("RolesToConsider = %v, want all growing roles", got.RolesToConsider)
	}

	if len(got.SummaryImprovements) != 1 {
		t.Fatalf("SummaryImprovements count = %d, want 1", len(got.SummaryImprovements))
	}
	if got.SummaryImprovements[0].Kind != types.SummaryAddNew {
		t.Errorf("Kind = %q, want %q", got.SummaryImprovements[0].Kind, types.SummaryAddNew)
	}
}

func TestSuggestImprovementsFiltersKnownSkills(t *testing.T) {
	r := &types.Resume{
		Skills:  []string{"React", "docker"},
		Summary: "Experienced developer.",
	}
	r.Normalize()

	got, err := SuggestImprovements(r, "technology")
	if err != nil {
		t.Fatalf("SuggestImprovements() error = %v", err)
	}

	for _, s := range got.SkillsToAdd {
		if strings.EqualFold(s, "React") || strings.EqualFold(s, "Docker") {
			t.Errorf("SkillsToAdd contains already-held skill %q", s)
		}
	}
}

func TestSuggestImprovementsFiltersHeldRoles(t *testing.T) {
	r := &types.Resume{
		Summary: "Engineer.",
		Experience: []types.ExperienceEntry{
			{Position: "Senior DevOps Engineer", Company: "Acme"},
		},
	}
	r.Normalize()

	got, err := SuggestImprovements(r, "technology")
	if err != nil {
		t.Fatalf("SuggestImprovements() error = %v", err)
	}

	for _, role := range got.RolesToConsider {
		if role == "DevOps Engineer" {
			t.Error("RolesToConsider contains a role already held")
		}
	}
}

func TestSuggestImprovementsIncorporateTerms(t *testing.T) {
	r := &types.Resume{
		Summary: "Seasoned engineer focused on React and Python delivery.",
		Skills:  []string{"React", "Python"},
	}
	r.Normalize()

	got, err := SuggestImprovements(r, "technology")
	if err != nil {
		t.Fatalf("SuggestImprovements() error = %v", err)
	}

	if len(got.SummaryImprovements) != 1 {
		t.Fatalf("SummaryImprovements count = %d, want 1", len(got.SummaryImprovements))
	}

	imp := got.SummaryImprovements[0]
	if imp.Kind != types.SummaryIncorporateTerms {
		t.Fatalf("Kind = %q, want %q", imp.Kind, types.SummaryIncorporateTerms)
	}
	if len(imp.Terms) == 0 || len(imp.Terms) > 5 {
		t.Errorf("Terms count = %d, want 1..5", len(imp.Terms))
	}
	for _, term := range imp.Terms {
		if strings.Contains(strings.ToLower(r.Summary), strings.ToLower(term)) {
			t.Errorf("Terms contains %q which is already in the summary", term)
		}
	}
	if !strings.HasPrefix(imp.Message, "Consider incorporating these key terms in your summary: ") {
		t.Errorf("unexpected message: %q", imp.Message)
	}
}

func TestGenerateIndustryReport(t *testing.T) {
	got, err := GenerateIndustryReport("healthcare")
	if err != nil {
		t.Fatalf("GenerateIndustryReport() error = %v", err)
	}

	if got.Industry != "healthcare" {
		t.Errorf("Industry = %q, want healthcare", got.Industry)
	}
	if got.Salary != "$85,000" || got.DemandLevel != "Very High" || got.Growth != "18% annually" {
		t.Errorf("unexpected report values: %+v", got)
	}
	if !strings.Contains(got.Overview, "18% annually") || !strings.Contains(got.Overview, "$85,000") {
		t.Errorf("Overview missing market figures: %q", got.Overview)
	}

	if _, err := GenerateIndustryReport("unknown"); err == nil {
		t.Error("expected error for unknown industry")
	}
}
