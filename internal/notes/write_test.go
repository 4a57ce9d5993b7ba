// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/reading-notes/pkg/types"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name       string
		preCreate  bool
		force      bool
		wantStatus types.WriteStatus
		wantLog    string
		wantBody   string
	}{
		{
			name:       "new file",
			wantStatus: types.WriteDone,
			wantLog:    "written:",
			wantBody:   "new content",
		},
		{
			name:       "skip existing",
			preCreate:  true,
			wantStatus: types.WriteSkipped,
			wantLog:    "skipped:",
			wantBody:   "old content",
		},
		{
			name:       "force overwrites",
			preCreate:  true,
			force:      true,
			wantStatus: types.WriteDone,
			wantLog:    "written:",
			wantBody:   "new content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			outPath := filepath.Join(dir, "sub", "note.md")

			if tt.preCreate {
				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(outPath, []byte("old content"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			var log bytes.Buffer
			status, err := Write(outPath, "new content", tt.force, &log)
			if err != nil {
				t.Fatalf("Write: %v", err)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log %q does not contain %q", log.String(), tt.wantLog)
			}

			data, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.wantBody {
				t.Errorf("file content = %q, want %q", data, tt.wantBody)
			}
		})
	}
}
