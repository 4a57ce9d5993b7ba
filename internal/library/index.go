// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/reading-notes/internal/notes"
	"github.com/pdiddy/reading-notes/pkg/types"
)

// IndexSummary holds counts from a library indexing run.
type IndexSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of note files processed.
func (s IndexSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Index scans the notes directory for Markdown files and ingests each
// into the database: note record plus one row per annotation bullet.
// Files whose modification time matches the stored value are skipped, so
// re-indexing an unchanged directory is a no-op.
func (s *Store) Index(ctx context.Context, w io.Writer) (IndexSummary, error) {
	entries, err := os.ReadDir(s.notesDir)
	if err != nil {
		return IndexSummary{}, fmt.Errorf("reading notes directory %s: %w", s.notesDir, err)
	}

	var summary IndexSummary

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".md") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		stem := strings.TrimSuffix(name, ".md")
		filePath := filepath.Join(s.notesDir, name)

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", stem, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM notes WHERE stem = ?`, stem,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", stem)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", stem, err)
			summary.Failed++
			continue
		}

		fm, anns, err := notes.ParseNote(data)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", stem, err)
			summary.Failed++
			continue
		}

		if err := s.ingestNote(ctx, stem, filePath, fm, anns, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", stem, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d annotations)\n", stem, len(anns))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d annotations)\n", stem, len(anns))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestNote(ctx context.Context, stem, path string, fm types.FrontMatter, anns []types.Annotation, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM annotations WHERE note_stem = ?`, stem); err != nil {
			return fmt.Errorf("deleting old annotations: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO notes (stem, title, categories, path, file_mod_time)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(stem) DO UPDATE SET
			title=excluded.title, categories=excluded.categories,
			path=excluded.path, file_mod_time=excluded.file_mod_time`,
		stem, fm.Title, fm.Categories, path, modTime,
	)
	if err != nil {
		return fmt.Errorf("upserting note: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO annotations (note_stem, page, subtype, content) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range anns {
		if a.Comment == "" {
			// Label-only bullets carry nothing worth searching.
			continue
		}
		if _, err := stmt.ExecContext(ctx, stem, a.Page, string(a.Subtype), a.Comment); err != nil {
			return fmt.Errorf("inserting annotation (page %d): %w", a.Page, err)
		}
	}

	return tx.Commit()
}
