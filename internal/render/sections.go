package render

import (
	"fmt"
	"strings"

	"resumeforge/internal/types"
)

// Shared section builders. Each returns a nil slice when its backing
// data is empty so the caller can skip the whole section.

func contactParts(r *types.Resume) []string {
	var parts []string
	for _, p := range []string{r.Email, r.Phone, r.Location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func experienceBlocks(r *types.Resume, marker string) []Block {
	var blocks []Block
	for _, exp := range r.Experience {
		title := exp.Position
		if exp.Company != "" {
			if title != "" {
				title += ", " + exp.Company
			} else {
				title = exp.Company
			}
		}
		blocks = append(blocks, Block{
			Kind:   BlockEntry,
			Title:  title,
			Dates:  formatDateRange(exp.StartDate, exp.EndDate),
			Text:   exp.Description,
			Marker: marker,
		})
	}
	return blocks
}

func educationBlocks(r *types.Resume, marker string) []Block {
	var blocks []Block
	for _, edu := range r.Education {
		title := edu.Degree
		if edu.School != "" {
			if title != "" {
				title += ", " + edu.School
			} else {
				title = edu.School
			}
		}
		blocks = append(blocks, Block{
			Kind:   BlockEntry,
			Title:  title,
			Dates:  FormatDate(edu.GraduationDate),
			Text:   edu.Description,
			Marker: marker,
		})
	}
	return blocks
}

func certificationBlocks(r *types.Resume) []Block {
	var blocks []Block
	for _, cert := range r.Certifications {
		blocks = append(blocks, Block{
			Kind:     BlockEntry,
			Title:    cert.Name,
			Subtitle: cert.Issuer,
			Dates:    FormatDate(cert.Date),
		})
	}
	return blocks
}

func projectBlocks(r *types.Resume) []Block {
	var blocks []Block
	for _, project := range r.Projects {
		blocks = append(blocks, Block{
			Kind:  BlockEntry,
			Title: project.Title,
			Text:  project.Description,
			Link:  project.Link,
		})
	}
	return blocks
}

func referenceBlocks(r *types.Resume) []Block {
	if !r.ShowReferences {
		return nil
	}
	var blocks []Block
	for _, ref := range r.References {
		blocks = append(blocks, Block{
			Kind:     BlockEntry,
			Title:    ref.Name,
			Subtitle: ref.Company,
			Text:     ref.Contact,
		})
	}
	return blocks
}

func languageLine(r *types.Resume) string {
	var parts []string
	for _, lang := range r.Languages {
		if lang.Proficiency != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", lang.Language, lang.Proficiency))
		} else {
			parts = append(parts, lang.Language)
		}
	}
	return strings.Join(parts, " • ")
}

func skillTags(skills []string, background, color string) []Tag {
	tags := make([]Tag, len(skills))
	for i, skill := range skills {
		tags[i] = Tag{Text: skill, Background: background, Color: color}
	}
	return tags
}

// addSection appends a section only when it has blocks.
func addSection(page *Page, section Section) {
	if len(section.Blocks) == 0 {
		return
	}
	page.Sections = append(page.Sections, section)
}
