package render

import (
	"strings"

	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

// renderModern builds the left-aligned layout with shaded title bars.
// Titles sit on a primary-color background; skills become pill tokens
// in the secondary color.
func renderModern(r *types.Resume, c style.Customization) *Document {
	titleLayout := Layout{
		TitleBackground: c.PrimaryColor,
		TitleColor:      style.ContrastColor(c.PrimaryColor),
		Uppercase:       true,
	}

	page := Page{}

	header := Section{
		ID:     "header",
		Layout: Layout{Align: "left"},
		Blocks: []Block{{Kind: BlockHeading, Title: r.FullName(), Subtitle: r.Title}},
	}
	if parts := contactParts(r); len(parts) > 0 {
		header.Blocks = append(header.Blocks, Block{Kind: BlockContact, Text: strings.Join(parts, " | ")})
	}
	if r.Website != "" {
		header.Blocks = append(header.Blocks, Block{Kind: BlockContact, Text: r.Website, Link: r.Website})
	}
	page.Sections = append(page.Sections, header)

	if strings.TrimSpace(r.Summary) != "" {
		addSection(&page, Section{
			ID: "summary", Title: "Professional Summary", Layout: titleLayout,
			Blocks: []Block{{Kind: BlockParagraph, Text: r.Summary}},
		})
	}

	addSection(&page, Section{
		ID: "experience", Title: "Experience", Layout: titleLayout,
		Blocks: experienceBlocks(r, ""),
	})

	addSection(&page, Section{
		ID: "education", Title: "Education", Layout: titleLayout,
		Blocks: educationBlocks(r, ""),
	})

	if len(r.Skills) > 0 {
		addSection(&page, Section{
			ID: "skills", Title: "Skills", Layout: titleLayout,
			Blocks: []Block{{
				Kind: BlockTagList,
				Tags: skillTags(r.Skills, c.SecondaryColor, style.ContrastColor(c.SecondaryColor)),
			}},
		})
	}

	addSection(&page, Section{
		ID: "certifications", Title: "Certifications", Layout: titleLayout,
		Blocks: certificationBlocks(r),
	})

	addSection(&page, Section{
		ID: "projects", Title: "Projects", Layout: titleLayout,
		Blocks: projectBlocks(r),
	})

	if line := languageLine(r); line != "" {
		addSection(&page, Section{
			ID: "languages", Title: "Languages", Layout: titleLayout,
			Blocks: []Block{{Kind: BlockInline, Text: line}},
		})
	}

	addSection(&page, Section{
		ID: "references", Title: "References", Layout: titleLayout,
		Blocks: referenceBlocks(r),
	})

	return &Document{
		Template: TemplateModern,
		Style:    c,
		Pages:    []Page{page},
	}
}
