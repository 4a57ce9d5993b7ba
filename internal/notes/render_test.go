// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"strings"
	"testing"

	"github.com/pdiddy/reading-notes/internal/annot"
	"github.com/pdiddy/reading-notes/pkg/types"
)

func sampleDocument() *annot.Document {
	return &annot.Document{
		Sections: []types.Section{
			{Level: 1, Title: "Introduction", Page: 1},
			{Level: 2, Title: "Motivation", Page: 2},
			{Level: 1, Title: "Conclusion", Page: 9},
		},
		Annotations: []types.Annotation{
			{Subtype: types.SubtypeText, Page: 1, Comment: "Key claim."},
			{Subtype: types.SubtypeHighlight, Page: 2},
			{Subtype: types.SubtypeText, Page: 3, Comment: "multi\nline"},
		},
	}
}

func TestRender(t *testing.T) {
	got, err := Render("paper", "Reading Notes", sampleDocument())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := `---
categories: Reading Notes
title: Reading Notes for paper
---

# Introduction

 * Key claim. | Page 1 (Text).

## Motivation

 *  | Page 2 (Highlight).

 * multi
line | Page 3 (Text).

# Conclusion

`
	if got != want {
		t.Errorf("Render output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_EmptyDocument(t *testing.T) {
	got, err := Render("empty", "Reading Notes", &annot.Document{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Header still comes out for a PDF without annotations or outline.
	want := "---\ncategories: Reading Notes\ntitle: Reading Notes for empty\n---\n\n"
	if got != want {
		t.Errorf("Render(empty) = %q, want %q", got, want)
	}
}

func TestRender_FrontMatterQuoting(t *testing.T) {
	got, err := Render("notes: a survey", "Reading Notes", &annot.Document{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	fm, _, err := ParseNote([]byte(got))
	if err != nil {
		t.Fatalf("rendered front matter does not parse: %v", err)
	}
	if fm.Title != "Reading Notes for notes: a survey" {
		t.Errorf("round-tripped title = %q", fm.Title)
	}
}

func TestInterleave_SectionsTrailAnnotations(t *testing.T) {
	doc := &annot.Document{
		Sections: []types.Section{
			{Level: 1, Title: "Late", Page: 40},
		},
		Annotations: []types.Annotation{
			{Subtype: types.SubtypeText, Page: 5, Comment: "x"},
		},
	}

	items := interleave(doc)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ann == nil || items[1].section == nil {
		t.Errorf("expected annotation then trailing section, got %+v", items)
	}
}

func TestFormatAnnotation_DropsBlankCommentLines(t *testing.T) {
	got := formatAnnotation(types.Annotation{
		Subtype: types.SubtypeText,
		Page:    7,
		Comment: "first\n\n\nsecond",
	})
	if strings.Count(got, "\n") != 2 {
		t.Errorf("blank comment lines survived: %q", got)
	}
	if !strings.HasSuffix(got, "second | Page 7 (Text).\n") {
		t.Errorf("label placement wrong: %q", got)
	}
}
