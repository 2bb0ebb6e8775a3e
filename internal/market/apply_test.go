package market

import (
	"strings"
	"testing"

	"resumeforge/internal/types"
)

func TestAddSkill(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		skill    string
		want     bool
		wantLen  int
	}{
		{"new skill", []string{"React"}, "Docker", true, 2},
		{"exact duplicate", []string{"React"}, "React", false, 1},
		{"case-insensitive duplicate", []string{"React"}, "react", false, 1},
		{"substring is not a duplicate", []string{"React"}, "ReactJS", true, 2},
		{"first skill", nil, "Go", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &types.Resume{Skills: tt.existing}
			r.Normalize()

			got := AddSkill(r, tt.skill)
			if got != tt.want {
				t.Errorf("AddSkill() = %v, want %v", got, tt.want)
			}
			if len(r.Skills) != tt.wantLen {
				t.Errorf("skills length = %d, want %d", len(r.Skills), tt.wantLen)
			}
		})
	}
}

func TestApplySummaryImprovementAddNew(t *testing.T) {
	r := &types.Resume{Skills: []string{"React", "Docker", "AWS", "Go"}}
	r.Normalize()

	suggestions, err := SuggestImprovements(r, "technology")
	if err != nil {
		t.Fatalf("SuggestImprovements() error = %v", err)
	}
	if len(suggestions.SummaryImprovements) == 0 {
		t.Fatal("expected an add-summary suggestion")
	}

	changed := ApplySummaryImprovement(r, suggestions.SummaryImprovements[0], suggestions)
	if !changed {
		t.Fatal("ApplySummaryImprovement() = false, want true")
	}

	if !strings.HasPrefix(r.Summary, "Experienced professional with skills in React, Docker, AWS.") {
		t.Errorf("unexpected generated summary: %q", r.Summary)
	}
	if !strings.Contains(r.Summary, "technology industry") {
		t.Errorf("summary missing industry: %q", r.Summary)
	}
}

func TestApplySummaryImprovementAddNewKeepsExisting(t *testing.T) {
	r := &types.Resume{Summary: "Already written."}
	r.Normalize()

	imp := types.SummaryImprovement{Kind: types.SummaryAddNew}
	if ApplySummaryImprovement(r, imp, types.Improvements{Industry: "finance"}) {
		t.Error("add-summary must not overwrite an existing summary")
	}
	if r.Summary != "Already written." {
		t.Errorf("summary changed to %q", r.Summary)
	}
}

func TestApplySummaryImprovementIncorporateTerms(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		terms   []string
		want    string
		changed bool
	}{
		{
			name:    "appends first two terms",
			summary: "Engineer.",
			terms:   []string{"Kubernetes", "AWS", "Docker"},
			want:    "Engineer. Proficient in Kubernetes. Proficient in AWS.",
			changed: true,
		},
		{
			name:    "skips terms already present",
			summary: "Engineer working with kubernetes daily.",
			terms:   []string{"Kubernetes", "AWS"},
			want:    "Engineer working with kubernetes daily. Proficient in AWS.",
			changed: true,
		},
		{
			name:    "no change when all present",
			summary: "Kubernetes and AWS engineer.",
			terms:   []string{"Kubernetes", "AWS"},
			want:    "Kubernetes and AWS engineer.",
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &types.Resume{Summary: tt.summary}
			r.Normalize()

			imp := types.SummaryImprovement{
				Kind:  types.SummaryIncorporateTerms,
				Terms: tt.terms,
			}
			changed := ApplySummaryImprovement(r, imp, types.Improvements{})
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
			if r.Summary != tt.want {
				t.Errorf("summary = %q, want %q", r.Summary, tt.want)
			}
		})
	}
}
