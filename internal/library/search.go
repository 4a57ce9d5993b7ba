// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/reading-notes/pkg/types"
)

// QueryOptions holds parameters for library searches.
type QueryOptions struct {
	// Query is the FTS5 full-text search string.
	Query string

	// Page filters annotations by page number. Zero means no filter.
	Page int

	// NoteStem filters by note.
	NoteStem string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Page == 0 && q.NoteStem == ""
}

// SearchResult is an annotation with the note it came from.
type SearchResult struct {
	types.Annotation
	NoteStem  string `json:"note_stem" yaml:"note_stem"`
	NoteTitle string `json:"note_title" yaml:"note_title"`
}

// Search queries the library with optional full-text search and
// structured filters. Full-text results are ranked by relevance;
// filter-only results are sorted by note and page.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]SearchResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT a.note_stem, a.page, a.subtype, a.content, n.title
			FROM annotations_fts
			JOIN annotations a ON a.rowid = annotations_fts.rowid
			LEFT JOIN notes n ON a.note_stem = n.stem
			WHERE annotations_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT a.note_stem, a.page, a.subtype, a.content, n.title
			FROM annotations a
			LEFT JOIN notes n ON a.note_stem = n.stem
			WHERE 1=1`)
	}

	if opts.Page > 0 {
		qb.WriteString(` AND a.page = ?`)
		args = append(args, opts.Page)
	}

	if opts.NoteStem != "" {
		qb.WriteString(` AND a.note_stem = ?`)
		args = append(args, opts.NoteStem)
	}

	if useFTS {
		qb.WriteString(` ORDER BY annotations_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY a.note_stem, a.page`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying library: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var (
			r       SearchResult
			subtype string
			title   *string
		)
		if err := rows.Scan(&r.NoteStem, &r.Page, &subtype, &r.Comment, &title); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Subtype = types.AnnotationSubtype(subtype)
		if title != nil {
			r.NoteTitle = *title
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// List returns all indexed notes ordered by stem.
func (s *Store) List(ctx context.Context) ([]types.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT stem, title, categories, path FROM notes ORDER BY stem`)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var out []types.Note
	for rows.Next() {
		var n types.Note
		if err := rows.Scan(&n.Stem, &n.Title, &n.Categories, &n.Path); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
