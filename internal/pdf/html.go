package pdf

import (
	"fmt"
	"html"
	"strings"

	"resumeforge/internal/render"
	"resumeforge/internal/style"
)

// DocumentHTML converts a rendered document into a standalone HTML
// page. All styling is inlined from the document's own customization
// and layout hints so the page renders without external assets.
func DocumentHTML(doc *render.Document) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(documentTitle(doc)))
	b.WriteString("<style>\n")
	writeBaseCSS(&b, doc.Style)
	b.WriteString("</style>\n</head>\n<body>\n")

	for _, page := range doc.Pages {
		b.WriteString("<div class=\"page\">\n")
		for _, section := range page.Sections {
			writeSection(&b, section)
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func documentTitle(doc *render.Document) string {
	for _, page := range doc.Pages {
		for _, section := range page.Sections {
			if section.ID == "header" && len(section.Blocks) > 0 {
				if name := section.Blocks[0].Title; name != "" {
					return name + " Resume"
				}
			}
		}
	}
	return "Resume"
}

func writeBaseCSS(b *strings.Builder, c style.Customization) {
	fmt.Fprintf(b, "@page { size: A4; margin: 0; }\n")
	fmt.Fprintf(b, "body { font-family: %s; line-height: %g; margin: 0; padding: %dpx; font-size: 12px; color: #222; }\n",
		style.FontCSS(c.Font), c.Spacing, c.Margin)
	b.WriteString("h1 { font-size: 24px; margin: 0 0 5px 0; }\n")
	b.WriteString("h2 { font-size: 14px; margin: 0 0 10px 0; }\n")
	b.WriteString("h3 { font-size: 12px; margin: 0; }\n")
	b.WriteString(".section { margin-bottom: 15px; }\n")
	b.WriteString(".entry { margin-bottom: 10px; }\n")
	b.WriteString(".dates { font-size: 11px; color: #666; }\n")
	b.WriteString(".subtitle { font-size: 11px; }\n")
	b.WriteString(".tag { display: inline-block; padding: 3px 8px; border-radius: 4px; margin: 3px; font-size: 10px; }\n")
	b.WriteString(".marker { display: inline-block; width: 10px; height: 10px; border-radius: 5px; margin-right: 10px; }\n")
}

func writeSection(b *strings.Builder, section render.Section) {
	var wrapper []string
	if section.Layout.Align != "" {
		wrapper = append(wrapper, "text-align: "+section.Layout.Align)
	}
	if section.Layout.Background != "" {
		wrapper = append(wrapper, "background: "+section.Layout.Background, "padding: 20px", "border-radius: 10px")
	}
	if section.Layout.TextColor != "" {
		wrapper = append(wrapper, "color: "+section.Layout.TextColor)
	}

	fmt.Fprintf(b, "<div class=\"section\" id=%q", section.ID)
	if len(wrapper) > 0 {
		fmt.Fprintf(b, " style=%q", strings.Join(wrapper, "; "))
	}
	b.WriteString(">\n")

	if section.Title != "" {
		writeTitle(b, section)
	}
	for _, block := range section.Blocks {
		writeBlock(b, block)
	}

	b.WriteString("</div>\n")
}

func writeTitle(b *strings.Builder, section render.Section) {
	var css []string
	if section.Layout.TitleColor != "" {
		css = append(css, "color: "+section.Layout.TitleColor)
	}
	if section.Layout.TitleBackground != "" {
		css = append(css, "background: "+section.Layout.TitleBackground, "padding: 5px")
	}
	if section.Layout.Uppercase {
		css = append(css, "text-transform: uppercase", "letter-spacing: 1px")
	}
	if section.Layout.Underline {
		border := section.Layout.TitleColor
		if border == "" {
			border = "#000"
		}
		css = append(css, "border-bottom: 1px solid "+border, "padding-bottom: 3px")
	}

	fmt.Fprintf(b, "<h2 style=%q>%s</h2>\n", strings.Join(css, "; "), html.EscapeString(section.Title))
	if section.Layout.Divider {
		b.WriteString("<hr style=\"border: none; border-bottom: 0.5px solid #ddd; margin-bottom: 8px;\">\n")
	}
}

func writeBlock(b *strings.Builder, block render.Block) {
	switch block.Kind {
	case render.BlockHeading:
		fmt.Fprintf(b, "<h1>%s</h1>\n", html.EscapeString(block.Title))
		if block.Subtitle != "" {
			fmt.Fprintf(b, "<div class=\"subtitle\">%s</div>\n", html.EscapeString(block.Subtitle))
		}

	case render.BlockContact:
		if block.Link != "" {
			fmt.Fprintf(b, "<div><a href=%q>%s</a></div>\n", block.Link, html.EscapeString(block.Text))
		} else {
			fmt.Fprintf(b, "<div>%s</div>\n", html.EscapeString(block.Text))
		}

	case render.BlockParagraph, render.BlockInline:
		fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(block.Text))

	case render.BlockEntry:
		b.WriteString("<div class=\"entry\">\n")
		if block.Marker != "" {
			fmt.Fprintf(b, "<span class=\"marker\" style=\"background: %s\"></span>", block.Marker)
		}
		if block.Title != "" {
			fmt.Fprintf(b, "<h3>%s</h3>\n", html.EscapeString(block.Title))
		}
		if block.Subtitle != "" {
			fmt.Fprintf(b, "<div class=\"subtitle\">%s</div>\n", html.EscapeString(block.Subtitle))
		}
		if block.Dates != "" {
			fmt.Fprintf(b, "<div class=\"dates\">%s</div>\n", html.EscapeString(block.Dates))
		}
		if block.Link != "" {
			fmt.Fprintf(b, "<div><a href=%q>%s</a></div>\n", block.Link, html.EscapeString(block.Link))
		}
		if block.Text != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(block.Text))
		}
		b.WriteString("</div>\n")

	case render.BlockTagList:
		b.WriteString("<div>\n")
		for _, tag := range block.Tags {
			var css []string
			if tag.Background != "" {
				css = append(css, "background: "+tag.Background)
			}
			if tag.Color != "" {
				css = append(css, "color: "+tag.Color)
			}
			fmt.Fprintf(b, "<span class=\"tag\" style=%q>%s</span>\n",
				strings.Join(css, "; "), html.EscapeString(tag.Text))
		}
		b.WriteString("</div>\n")
	}
}
