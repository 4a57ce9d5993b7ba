// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annot

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/reading-notes/pkg/types"
)

// PDFCPUExtractor extracts annotations and the document outline using the
// pdfcpu library.
type PDFCPUExtractor struct {
	conf *model.Configuration

	// warn receives non-fatal diagnostics (e.g. missing outline).
	warn io.Writer
}

// NewPDFCPUExtractor creates the production extractor. Validation runs in
// relaxed mode: annotated PDFs from the wild are frequently malformed,
// and strict mode would reject them wholesale.
func NewPDFCPUExtractor(warn io.Writer) *PDFCPUExtractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if warn == nil {
		warn = io.Discard
	}
	return &PDFCPUExtractor{conf: conf, warn: warn}
}

// Extract reads the PDF at pdfPath and returns its supported annotations
// in page order plus the flattened outline. A PDF without an outline is
// not an error; the document just has no sections.
func (e *PDFCPUExtractor) Extract(pdfPath string) (*Document, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	pageAnnots, err := api.Annotations(f, nil, e.conf)
	if err != nil {
		return nil, fmt.Errorf("reading annotations from %s: %w", pdfPath, err)
	}

	doc := &Document{}

	pages := make([]int, 0, len(pageAnnots))
	for nr := range pageAnnots {
		pages = append(pages, nr)
	}
	sort.Ints(pages)

	for _, nr := range pages {
		page := collectPage(nr, pageAnnots[nr])
		doc.Annotations = append(doc.Annotations, page...)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding %s: %w", pdfPath, err)
	}

	bms, err := api.Bookmarks(f, e.conf)
	if err != nil {
		// A missing or unreadable outline degrades to a flat
		// document, it does not abort.
		fmt.Fprintf(e.warn, "warning: no outline for %s: %v\n", pdfPath, err)
		return doc, nil
	}
	doc.Sections = flattenBookmarks(bms, 1, nil)

	return doc, nil
}

// collectPage gathers the supported annotations of a single page and puts
// them in a stable order. pdfcpu hands annotations back in maps, so the
// library's object order is recovered by sorting on the annotation ID.
func collectPage(pageNr int, pgAnnots model.PgAnnots) []types.Annotation {
	var anns []types.Annotation
	for annType, annots := range pgAnnots {
		subtype, ok := subtypeOf(annType)
		if !ok {
			continue
		}
		for _, r := range annots.Map {
			anns = append(anns, types.Annotation{
				Subtype: subtype,
				Page:    pageNr,
				Comment: Normalize(r.ContentString()),
				ID:      r.ID(),
			})
		}
	}

	sort.Slice(anns, func(i, j int) bool {
		if anns[i].ID != anns[j].ID {
			return anns[i].ID < anns[j].ID
		}
		if anns[i].Subtype != anns[j].Subtype {
			return anns[i].Subtype < anns[j].Subtype
		}
		return anns[i].Comment < anns[j].Comment
	})
	return anns
}

// subtypeOf maps a pdfcpu annotation type to the subtype set this tool
// cares about. The second return value is false for everything else.
func subtypeOf(t model.AnnotationType) (types.AnnotationSubtype, bool) {
	switch t {
	case model.AnnText:
		return types.SubtypeText, true
	case model.AnnHighLight:
		return types.SubtypeHighlight, true
	case model.AnnSquiggly:
		return types.SubtypeSquiggly, true
	case model.AnnStrikeOut:
		return types.SubtypeStrikeOut, true
	case model.AnnUnderline:
		return types.SubtypeUnderline, true
	}
	return "", false
}

// flattenBookmarks walks the bookmark tree depth-first, recording each
// titled entry with its nesting depth as the heading level.
func flattenBookmarks(bms []pdfcpu.Bookmark, level int, out []types.Section) []types.Section {
	for _, bm := range bms {
		title := strings.TrimSpace(bm.Title)
		if title == "" {
			continue
		}
		out = append(out, types.Section{
			Level: level,
			Title: title,
			Page:  bm.PageFrom,
		})
		out = flattenBookmarks(bm.Kids, level+1, out)
	}
	return out
}
