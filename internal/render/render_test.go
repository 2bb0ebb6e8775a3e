package render

import (
	goerrors "errors"
	"reflect"
	"testing"

	"resumeforge/internal/errors"
	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

func sampleResume(template string) *types.Resume {
	return &types.Resume{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Location:  "London",
		Website:   "https://example.com",
		Title:     "Software Engineer",
		Summary:   "Engineer with a decade of experience.",
		Skills:    []string{"Go", "React", "Docker"},
		Experience: []types.ExperienceEntry{
			{Position: "Engineer", Company: "Acme", StartDate: "01/2020", EndDate: "Present", Description: "Built things."},
		},
		Education: []types.EducationEntry{
			{Degree: "BSc", School: "State University", GraduationDate: "05/2018"},
		},
		Certifications: []types.CertificationEntry{
			{Name: "Certified Gopher", Issuer: "Go Institute", Date: "06/2022"},
		},
		Languages: []types.LanguageEntry{
			{Language: "English", Proficiency: "Native"},
		},
		References:     []types.ReferenceEntry{{Name: "Grace", Company: "Navy", Contact: "grace@example.com"}},
		ShowReferences: true,
		Template:       template,
	}
}

func sectionIDs(doc *Document) []string {
	var ids []string
	for _, section := range doc.Pages[0].Sections {
		ids = append(ids, section.ID)
	}
	return ids
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := sampleResume("brutalist")

	_, err := Render(r, style.Customization{})
	if err == nil {
		t.Fatal("expected error for unknown template")
	}

	var appErr *errors.AppError
	if !goerrors.As(err, &appErr) {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Code != errors.ErrCodeTemplateNotFound {
		t.Errorf("Code = %q, want %q", appErr.Code, errors.ErrCodeTemplateNotFound)
	}
}

func TestRenderDefaultsTemplate(t *testing.T) {
	r := sampleResume("")

	doc, err := Render(r, style.Customization{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if doc.Template != TemplateProfessional {
		t.Errorf("Template = %q, want %q", doc.Template, TemplateProfessional)
	}
}

func TestRenderIsPure(t *testing.T) {
	for _, id := range AvailableTemplates() {
		t.Run(id, func(t *testing.T) {
			r := sampleResume(id)
			c := style.Customization{PrimaryColor: "#1976d2"}

			first, err := Render(r, c)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			second, err := Render(r, c)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			if !reflect.DeepEqual(first, second) {
				t.Error("two renders of identical input differ")
			}
		})
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	r := sampleResume(TemplateModern)
	before := *r

	if _, err := Render(r, style.Customization{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !reflect.DeepEqual(*r, before) {
		t.Error("Render mutated its input")
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	r := &types.Resume{FirstName: "Ada", LastName: "Lovelace"}

	for _, id := range AvailableTemplates() {
		t.Run(id, func(t *testing.T) {
			r.Template = id
			doc, err := Render(r, style.Customization{})
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			ids := sectionIDs(doc)
			if !reflect.DeepEqual(ids, []string{"header"}) {
				t.Errorf("sections = %v, want only header", ids)
			}
		})
	}
}

func TestRenderReferencesRespectFlag(t *testing.T) {
	r := sampleResume(TemplateProfessional)
	r.ShowReferences = false

	doc, err := Render(r, style.Customization{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, id := range sectionIDs(doc) {
		if id == "references" {
			t.Error("references section rendered with ShowReferences false")
		}
	}
}

func TestRenderProfessionalSectionOrder(t *testing.T) {
	r := sampleResume(TemplateProfessional)
	r.Projects = []types.ProjectEntry{{Title: "Engine", Description: "An engine."}}

	doc, err := Render(r, style.Customization{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := []string{
		"header", "summary", "experience", "education", "skills",
		"certifications", "projects", "languages", "references",
	}
	if got := sectionIDs(doc); !reflect.DeepEqual(got, want) {
		t.Errorf("section order = %v, want %v", got, want)
	}
}

func TestRenderProfessionalDetails(t *testing.T) {
	r := sampleResume(TemplateProfessional)

	doc, err := Render(r, style.Customization{PrimaryColor: "#1a237e"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	header := doc.Pages[0].Sections[0]
	if header.Layout.Align != "center" {
		t.Errorf("header align = %q, want center", header.Layout.Align)
	}
	if header.Blocks[0].Title != "Ada Lovelace" {
		t.Errorf("heading = %q, want full name", header.Blocks[0].Title)
	}

	for _, section := range doc.Pages[0].Sections[1:] {
		if section.Layout.TitleColor != "#1a237e" {
			t.Errorf("section %s title color = %q, want primary", section.ID, section.Layout.TitleColor)
		}
		if !section.Layout.Underline {
			t.Errorf("section %s missing underline", section.ID)
		}
	}

	for _, section := range doc.Pages[0].Sections {
		if section.ID == "skills" {
			if section.Blocks[0].Text != "Go • React • Docker" {
				t.Errorf("skills line = %q", section.Blocks[0].Text)
			}
		}
	}
}

func TestRenderModernDetails(t *testing.T) {
	r := sampleResume(TemplateModern)

	doc, err := Render(r, style.Customization{PrimaryColor: "#00796b", SecondaryColor: "#26a69a"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	header := doc.Pages[0].Sections[0]
	if header.Layout.Align != "left" {
		t.Errorf("header align = %q, want left", header.Layout.Align)
	}

	var sawWebsite bool
	for _, block := range header.Blocks {
		if block.Link == "https://example.com" {
			sawWebsite = true
		}
	}
	if !sawWebsite {
		t.Error("modern header missing website link")
	}

	for _, section := range doc.Pages[0].Sections[1:] {
		if section.Layout.TitleBackground != "#00796b" {
			t.Errorf("section %s title background = %q", section.ID, section.Layout.TitleBackground)
		}
		if !section.Layout.Uppercase {
			t.Errorf("section %s title not uppercase", section.ID)
		}
		if section.ID == "skills" {
			tags := section.Blocks[0].Tags
			if len(tags) != 3 {
				t.Fatalf("skill tags = %d, want 3", len(tags))
			}
			if tags[0].Background != "#26a69a" {
				t.Errorf("skill pill background = %q, want secondary", tags[0].Background)
			}
		}
	}
}

func TestRenderCreativeDetails(t *testing.T) {
	r := sampleResume(TemplateCreative)

	doc, err := Render(r, style.Customization{PrimaryColor: "#6a1b9a", SecondaryColor: "#9c27b0"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	header := doc.Pages[0].Sections[0]
	if header.Layout.Background != "#6a1b9a" {
		t.Errorf("banner background = %q, want primary", header.Layout.Background)
	}
	if header.Layout.TextColor != "#ffffff" {
		t.Errorf("banner text color = %q, want white on dark purple", header.Layout.TextColor)
	}

	for _, section := range doc.Pages[0].Sections {
		switch section.ID {
		case "summary":
			if section.Title != "About Me" {
				t.Errorf("summary title = %q, want About Me", section.Title)
			}
		case "experience", "education":
			for _, block := range section.Blocks {
				if block.Marker != "#9c27b0" {
					t.Errorf("%s entry marker = %q, want secondary", section.ID, block.Marker)
				}
			}
		}
	}
}

func TestRenderMinimalistDetails(t *testing.T) {
	r := sampleResume(TemplateMinimalist)

	doc, err := Render(r, style.Customization{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, section := range doc.Pages[0].Sections[1:] {
		if !section.Layout.Uppercase || !section.Layout.Divider {
			t.Errorf("section %s layout = %+v, want uppercase with divider", section.ID, section.Layout)
		}
	}
}

func TestRenderNormalizesStyle(t *testing.T) {
	r := sampleResume(TemplateProfessional)

	doc, err := Render(r, style.Customization{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if doc.Style.PrimaryColor != style.DefaultPrimaryColor || doc.Style.Margin != style.DefaultMargin {
		t.Errorf("style not normalized: %+v", doc.Style)
	}
}

func BenchmarkRenderProfessional(b *testing.B) {
	r := sampleResume(TemplateProfessional)
	c := style.Customization{}
	for b.Loop() {
		if _, err := Render(r, c); err != nil {
			b.Fatal(err)
		}
	}
}
