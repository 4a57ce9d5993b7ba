// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "reading-notes/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// NotesConfig holds settings for the extract stage.
type NotesConfig struct {
	// NotesDir is the directory notes are written into (default ".").
	NotesDir string `json:"notes_dir" yaml:"notes_dir"`

	// Categories is the front-matter categories value
	// (default "Reading Notes").
	Categories string `json:"categories" yaml:"categories"`

	// Force overwrites an existing note file.
	Force bool `json:"force" yaml:"force"`
}

// FetchConfig holds settings for downloading PDFs given by URL.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the retry budget for rate-limited downloads (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// LibraryConfig holds settings for the notes library index.
type LibraryConfig struct {
	// NotesDir is the directory containing note files (contains .index/).
	NotesDir string `json:"notes_dir" yaml:"notes_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all stage configurations.
type Config struct {
	Notes   NotesConfig   `json:"notes" yaml:"notes"`
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Library LibraryConfig `json:"library" yaml:"library"`
}
