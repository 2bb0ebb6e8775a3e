// Package render turns a resume and a style customization into a
// structured, JSON-serializable document. Rendering is pure: identical
// inputs always produce identical documents, and no timestamps or
// random values are embedded.
package render

import (
	"resumeforge/internal/style"
)

// Document is the rendered form of a resume: a tree of pages holding
// sections holding blocks, with the styling that produced it attached.
type Document struct {
	Template string              `json:"template"`
	Style    style.Customization `json:"style"`
	Pages    []Page              `json:"pages"`
}

// Page is one output page.
type Page struct {
	Sections []Section `json:"sections"`
}

// Section is a titled region of a page. Layout carries the variant's
// presentation hints so the document alone is enough to render HTML.
type Section struct {
	ID     string  `json:"id"`
	Title  string  `json:"title,omitempty"`
	Layout Layout  `json:"layout"`
	Blocks []Block `json:"blocks"`
}

// Layout holds per-section presentation hints.
type Layout struct {
	Align           string `json:"align,omitempty"`
	Background      string `json:"background,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	TitleColor      string `json:"titleColor,omitempty"`
	TitleBackground string `json:"titleBackground,omitempty"`
	Uppercase       bool   `json:"uppercase,omitempty"`
	Underline       bool   `json:"underline,omitempty"`
	Divider         bool   `json:"divider,omitempty"`
}

// BlockKind discriminates block payloads.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockContact   BlockKind = "contact"
	BlockParagraph BlockKind = "paragraph"
	BlockEntry     BlockKind = "entry"
	BlockTagList   BlockKind = "taglist"
	BlockInline    BlockKind = "inline"
)

// Block is the smallest rendered unit.
type Block struct {
	Kind     BlockKind `json:"kind"`
	Text     string    `json:"text,omitempty"`
	Title    string    `json:"title,omitempty"`
	Subtitle string    `json:"subtitle,omitempty"`
	Dates    string    `json:"dates,omitempty"`
	Link     string    `json:"link,omitempty"`
	// Marker is the accent color for entry markers (creative variant).
	Marker string `json:"marker,omitempty"`
	Tags   []Tag  `json:"tags,omitempty"`
}

// Tag is one token in a taglist block (skills, languages).
type Tag struct {
	Text       string `json:"text"`
	Background string `json:"background,omitempty"`
	Color      string `json:"color,omitempty"`
}
