package render

import (
	"strings"

	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

// renderCreative builds the banner-header layout: the header is a
// filled band in the primary color, the summary reads "About Me",
// experience and education entries carry accent dot markers in the
// secondary color, and skills become light chips.
func renderCreative(r *types.Resume, c style.Customization) *Document {
	titleLayout := Layout{
		TitleColor: c.PrimaryColor,
		Uppercase:  true,
	}

	page := Page{}

	header := Section{
		ID: "header",
		Layout: Layout{
			Align:      "center",
			Background: c.PrimaryColor,
			TextColor:  style.ContrastColor(c.PrimaryColor),
		},
		Blocks: []Block{{Kind: BlockHeading, Title: r.FullName(), Subtitle: r.Title}},
	}
	if parts := contactParts(r); len(parts) > 0 {
		header.Blocks = append(header.Blocks, Block{Kind: BlockContact, Text: strings.Join(parts, " | ")})
	}
	page.Sections = append(page.Sections, header)

	if strings.TrimSpace(r.Summary) != "" {
		addSection(&page, Section{
			ID: "summary", Title: "About Me", Layout: titleLayout,
			Blocks: []Block{{Kind: BlockParagraph, Text: r.Summary}},
		})
	}

	addSection(&page, Section{
		ID: "experience", Title: "Experience", Layout: titleLayout,
		Blocks: experienceBlocks(r, c.SecondaryColor),
	})

	addSection(&page, Section{
		ID: "education", Title: "Education", Layout: titleLayout,
		Blocks: educationBlocks(r, c.SecondaryColor),
	})

	if len(r.Skills) > 0 {
		addSection(&page, Section{
			ID: "skills", Title: "Skills", Layout: titleLayout,
			Blocks: []Block{{
				Kind: BlockTagList,
				Tags: skillTags(r.Skills, style.AdjustColor(c.PrimaryColor, 80), c.PrimaryColor),
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
		Template: TemplateCreative,
		Style:    c,
		Pages:    []Page{page},
	}
}
