package render

import (
	"strings"

	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

// renderMinimalist builds the quiet layout: uppercase letter-spaced
// titles over hairline dividers, no filled backgrounds.
func renderMinimalist(r *types.Resume, c style.Customization) *Document {
	titleLayout := Layout{
		TitleColor: c.PrimaryColor,
		Uppercase:  true,
		Divider:    true,
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
			ID: "summary", Title: "Summary", Layout: titleLayout,
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
			Blocks: []Block{{Kind: BlockInline, Text: strings.Join(r.Skills, "   ")}},
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
		Template: TemplateMinimalist,
		Style:    c,
		Pages:    []Page{page},
	}
}
