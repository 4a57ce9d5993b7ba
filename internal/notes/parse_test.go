// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"testing"

	"github.com/pdiddy/reading-notes/pkg/types"
)

func TestParseNote_RoundTrip(t *testing.T) {
	rendered, err := Render("paper", "Reading Notes", sampleDocument())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	fm, anns, err := ParseNote([]byte(rendered))
	if err != nil {
		t.Fatalf("ParseNote: %v", err)
	}

	if fm.Categories != "Reading Notes" {
		t.Errorf("categories = %q", fm.Categories)
	}
	if fm.Title != "Reading Notes for paper" {
		t.Errorf("title = %q", fm.Title)
	}

	want := []types.Annotation{
		{Subtype: types.SubtypeText, Page: 1, Comment: "Key claim."},
		{Subtype: types.SubtypeHighlight, Page: 2},
		{Subtype: types.SubtypeText, Page: 3, Comment: "multi\nline"},
	}
	if len(anns) != len(want) {
		t.Fatalf("got %d annotations, want %d: %+v", len(anns), len(want), anns)
	}
	for i := range want {
		if anns[i] != want[i] {
			t.Errorf("annotation %d = %+v, want %+v", i, anns[i], want[i])
		}
	}
}

func TestParseNote_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no front matter", "# Just a heading\n"},
		{"unterminated front matter", "---\ncategories: x\n"},
		{"bad yaml", "---\n\t:\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseNote([]byte(tt.in)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParseBullets_IgnoresProse(t *testing.T) {
	body := "# Heading\n\nsome stray prose\n\n * real comment | Page 4 (Text).\n"
	anns := parseBullets(body)
	if len(anns) != 1 {
		t.Fatalf("got %d annotations, want 1", len(anns))
	}
	if anns[0].Page != 4 || anns[0].Comment != "real comment" {
		t.Errorf("parsed annotation = %+v", anns[0])
	}
}
