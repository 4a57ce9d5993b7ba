// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notes renders extracted annotations as a Markdown reading-notes
// document and handles the note files on disk: output naming, writing,
// and parsing notes back for the library index.
package notes

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/reading-notes/internal/annot"
	"github.com/pdiddy/reading-notes/pkg/types"
)

// Render produces the complete Markdown note for a document: a YAML
// front-matter block with categories and title, then outline headings
// interleaved with annotation bullets in page order.
func Render(stem, categories string, doc *annot.Document) (string, error) {
	fm := types.FrontMatter{
		Categories: categories,
		Title:      "Reading Notes for " + stem,
	}
	head, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshaling front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(head)
	b.WriteString("---\n\n")

	for _, item := range interleave(doc) {
		if item.section != nil {
			b.WriteString(formatSection(*item.section))
		} else {
			b.WriteString(formatAnnotation(*item.ann))
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// renderItem is one output element: either an outline heading or an
// annotation bullet, never both.
type renderItem struct {
	section *types.Section
	ann     *types.Annotation
}

// interleave merges outline sections into the page-ordered annotation
// stream. A section is emitted before the first annotation whose page is
// at or past the section's page; sections keep their outline order
// throughout. Leftover sections (past the last annotated page) trail at
// the end, so the full outline always appears in the note.
func interleave(doc *annot.Document) []renderItem {
	items := make([]renderItem, 0, len(doc.Sections)+len(doc.Annotations))

	si := 0
	secs := doc.Sections
	for i := range doc.Annotations {
		a := &doc.Annotations[i]
		for si < len(secs) && secs[si].Page <= a.Page {
			items = append(items, renderItem{section: &secs[si]})
			si++
		}
		items = append(items, renderItem{ann: a})
	}
	for ; si < len(secs); si++ {
		items = append(items, renderItem{section: &secs[si]})
	}

	return items
}

func formatSection(s types.Section) string {
	return strings.Repeat("#", s.Level) + " " + s.Title + "\n"
}

// formatAnnotation renders one bullet. Comment lines (blank lines
// dropped) are followed by a position label on the last line; an
// annotation without a comment becomes a label-only bullet.
func formatAnnotation(a types.Annotation) string {
	label := fmt.Sprintf("Page %d (%s).", a.Page, a.Subtype)

	var lines []string
	for _, l := range strings.Split(a.Comment, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}

	var b strings.Builder
	b.WriteString(" * ")
	if len(lines) > 0 {
		b.WriteString(strings.Join(lines, "\n"))
	}
	b.WriteString(" | " + label + "\n")
	return b.String()
}
