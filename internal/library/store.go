// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library maintains a SQLite index over written notes so past
// reading notes stay searchable without reopening any PDF.
package library

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/reading-notes/pkg/types"
)

const (
	// indexDir is the subdirectory under the notes base holding the index.
	indexDir = ".index"
	dbFile   = "library.db"
)

// Store manages the notes library SQLite database.
type Store struct {
	db         *sql.DB
	notesDir   string
	maxResults int
}

// NewStore opens or creates the library database at
// notesDir/.index/library.db, creating the schema if needed.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.NotesDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		notesDir:   cfg.NotesDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			stem TEXT PRIMARY KEY,
			title TEXT,
			categories TEXT,
			path TEXT NOT NULL,
			file_mod_time TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS annotations (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			note_stem TEXT NOT NULL REFERENCES notes(stem),
			page INTEGER,
			subtype TEXT,
			content TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_annotations_note_stem ON annotations(note_stem)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='annotations_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE annotations_fts USING fts5(content, content=annotations, content_rowid=rowid)`,
			`CREATE TRIGGER annotations_ai AFTER INSERT ON annotations BEGIN
				INSERT INTO annotations_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
			`CREATE TRIGGER annotations_ad AFTER DELETE ON annotations BEGIN
				INSERT INTO annotations_fts(annotations_fts, rowid, content) VALUES('delete', old.rowid, old.content);
			END`,
			`CREATE TRIGGER annotations_au AFTER UPDATE ON annotations BEGIN
				INSERT INTO annotations_fts(annotations_fts, rowid, content) VALUES('delete', old.rowid, old.content);
				INSERT INTO annotations_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}
