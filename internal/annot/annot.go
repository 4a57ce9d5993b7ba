// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package annot invokes the PDF annotation-extraction library and adapts
// its output into the stage types. The heavy lifting (tokenizing,
// annotation geometry, text reconstruction) is the library's job; this
// package only filters, normalizes, and flattens.
package annot

import (
	"github.com/pdiddy/reading-notes/pkg/types"
)

// Document holds everything extracted from one PDF: the supported
// annotations in page order and the flattened outline.
type Document struct {
	// Annotations are the supported annotations, ordered by page and,
	// within a page, by annotation ID.
	Annotations []types.Annotation

	// Sections are the outline entries in document order. Empty when the
	// PDF carries no outline.
	Sections []types.Section
}

// Empty reports whether the document yielded neither annotations nor
// outline entries.
func (d *Document) Empty() bool {
	return len(d.Annotations) == 0 && len(d.Sections) == 0
}

// Extractor pulls annotations and the outline out of a PDF file.
// Different backends implement this interface; the production backend
// wraps pdfcpu.
type Extractor interface {
	// Extract reads the PDF at pdfPath and returns its annotations and
	// outline.
	Extract(pdfPath string) (*Document, error)
}
