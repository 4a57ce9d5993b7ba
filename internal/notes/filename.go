// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Stem returns the input filename without directory and extension,
// trimmed of surrounding whitespace. It names the note and appears in the
// front-matter title.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
}

// DefaultFilename builds the auto-derived output filename for a stem:
// "YYYY-MM-DD-Reading Notes for <stem>.md".
func DefaultFilename(stem string, now time.Time) string {
	return now.Format("2006-01-02") + "-Reading Notes for " + stem + ".md"
}

// DiscoverPDF returns the first PDF file (by directory order) in dir.
// Used when the extract command is invoked without an input argument.
func DiscoverPDF(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("no PDF file under %s", dir)
}
