package pdf

import (
	"strings"
	"testing"

	"resumeforge/internal/render"
	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

func renderedDoc(t *testing.T) *render.Document {
	t.Helper()

	resume := &types.Resume{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Summary:   "Engineer & analyst.",
		Skills:    []string{"Go", "Analysis"},
		Experience: []types.ExperienceEntry{
			{Position: "Engineer", Company: "Acme", StartDate: "01/2020", EndDate: "Present"},
		},
		Template: render.TemplateModern,
	}

	doc, err := render.Render(resume, style.Customization{PrimaryColor: "#00796b"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return doc
}

func TestDocumentHTML(t *testing.T) {
	html := DocumentHTML(renderedDoc(t))

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Ada Lovelace Resume</title>",
		"font-family: 'Roboto', sans-serif",
		"Engineer &amp; analyst.",
		"January 2020 - Present",
		"background: #00796b",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestDocumentHTMLIsDeterministic(t *testing.T) {
	doc := renderedDoc(t)
	if DocumentHTML(doc) != DocumentHTML(doc) {
		t.Error("two conversions of the same document differ")
	}
}

func TestDocumentHTMLEscapesContent(t *testing.T) {
	resume := &types.Resume{
		FirstName: "<script>",
		LastName:  "alert(1)</script>",
		Summary:   "uses <b>bold</b> claims",
		Template:  render.TemplateProfessional,
	}
	doc, err := render.Render(resume, style.Customization{})
	if err != nil {
		t.Fatal(err)
	}

	html := DocumentHTML(doc)
	if strings.Contains(html, "<script>") {
		t.Error("HTML contains unescaped script tag")
	}
	if !strings.Contains(html, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Error("summary markup not escaped")
	}
}
