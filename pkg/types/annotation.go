// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data types passed between reading-notes
// stages: extracted annotations, outline sections, and note records.
package types

import "time"

// AnnotationSubtype identifies the PDF annotation subtype.
type AnnotationSubtype string

const (
	SubtypeText      AnnotationSubtype = "Text"
	SubtypeHighlight AnnotationSubtype = "Highlight"
	SubtypeSquiggly  AnnotationSubtype = "Squiggly"
	SubtypeStrikeOut AnnotationSubtype = "StrikeOut"
	SubtypeUnderline AnnotationSubtype = "Underline"
)

// SupportedSubtypes lists the annotation subtypes that appear in notes.
// Everything else (links, widgets, stamps, ...) is ignored.
var SupportedSubtypes = map[AnnotationSubtype]bool{
	SubtypeText:      true,
	SubtypeHighlight: true,
	SubtypeSquiggly:  true,
	SubtypeStrikeOut: true,
	SubtypeUnderline: true,
}

// Annotation is one extracted PDF annotation.
type Annotation struct {
	// Subtype is the PDF annotation subtype (Text, Highlight, ...).
	Subtype AnnotationSubtype `json:"subtype" yaml:"subtype"`

	// Page is the 1-based page number the annotation appears on.
	Page int `json:"page" yaml:"page"`

	// Comment is the annotation's Contents entry after normalization,
	// empty for bare markup annotations.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// ID is the annotation's name (NM entry) when present, used only to
	// keep per-page ordering stable.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
}

// Section is one flattened document outline entry.
type Section struct {
	// Level is the heading level, 1 for top-level outline items.
	Level int `json:"level" yaml:"level"`

	// Title is the outline entry title.
	Title string `json:"title" yaml:"title"`

	// Page is the 1-based page the entry points at, 0 when the entry has
	// no resolvable destination.
	Page int `json:"page" yaml:"page"`
}

// FrontMatter is the YAML header written at the top of every note.
type FrontMatter struct {
	Categories string `yaml:"categories"`
	Title      string `yaml:"title"`
}

// Note describes a written notes file, as recorded in the library index.
type Note struct {
	// Stem is the source PDF's filename without extension.
	Stem string `json:"stem" yaml:"stem"`

	// Title is the front-matter title.
	Title string `json:"title" yaml:"title"`

	// Categories is the front-matter categories value.
	Categories string `json:"categories" yaml:"categories"`

	// SourcePDF is the path of the PDF the note was extracted from.
	SourcePDF string `json:"source_pdf,omitempty" yaml:"source_pdf,omitempty"`

	// Path is the note file's location on disk.
	Path string `json:"path" yaml:"path"`

	// CreatedAt is when the note file was written.
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// WriteStatus is the outcome of writing a note file.
type WriteStatus string

const (
	// WriteDone indicates the note was written.
	WriteDone WriteStatus = "done"

	// WriteSkipped indicates the output already existed and was left alone.
	WriteSkipped WriteStatus = "skipped"

	// WriteFailed indicates the note could not be written.
	WriteFailed WriteStatus = "failed"
)
