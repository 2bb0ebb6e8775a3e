package render

import (
	"strings"

	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

// renderProfessional builds the classic single-column layout: centered
// header, section titles underlined in the primary color, fixed section
// order ending with optional references.
func renderProfessional(r *types.Resume, c style.Customization) *Document {
	titleLayout := Layout{
		TitleColor: c.PrimaryColor,
		Underline:  true,
	}

	page := Page{}

	header := Section{
		ID:     "header",
		Layout: Layout{Align: "center", TitleColor: c.PrimaryColor, Underline: true},
		Blocks: []Block{{Kind: BlockHeading, Title: r.FullName(), Subtitle: r.Title}},
	}
	if parts := contactParts(r); len(parts) > 0 {
		header.Blocks = append(header.Blocks, Block{Kind: BlockContact, Text: strings.Join(parts, " | ")})
	}
	page.Sections = append(page.Sections, header)

	if strings.TrimSpace(r.Summary) != "" {
		addSection(&page, Section{
			ID: "summary", Title: "Professional Summary", Layout: titleLayout,
			Blocks: []Block{{Kind: BlockParagraph, Text: r.Summary}},
		})
	}

	addSection(&page, Section{
		ID: "experience", Title: "Professional Experience", Layout: titleLayout,
		Blocks: experienceBlocks(r, ""),
	})

	addSection(&page, Section{
		ID: "education", Title: "Education", Layout: titleLayout,
		Blocks: educationBlocks(r, ""),
	})

	if len(r.Skills) > 0 {
		addSection(&page, Section{
			ID: "skills", Title: "Skills", Layout: titleLayout,
			Blocks: []Block{{Kind: BlockInline, Text: strings.Join(r.Skills, " • ")}},
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
		Template: TemplateProfessional,
		Style:    c,
		Pages:    []Page{page},
	}
}
