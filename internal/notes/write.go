// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/reading-notes/pkg/types"
)

// Write stores the rendered note at outPath, creating parent directories
// as needed. An existing file is left untouched unless force is set.
// Per-file status goes to w.
func Write(outPath, content string, force bool, w io.Writer) (types.WriteStatus, error) {
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", outPath)
			return types.WriteSkipped, nil
		}
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return types.WriteFailed, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return types.WriteFailed, fmt.Errorf("writing note %s: %w", outPath, err)
	}

	fmt.Fprintf(w, "written: %s\n", outPath)
	return types.WriteDone, nil
}
