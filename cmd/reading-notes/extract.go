// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/reading-notes/internal/annot"
	"github.com/pdiddy/reading-notes/internal/fetch"
	"github.com/pdiddy/reading-notes/internal/notes"
	"github.com/pdiddy/reading-notes/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [INPUT]",
	Short: "Extract PDF annotations into a Markdown notes file",
	Long: `Extract reads the annotations and outline from a PDF and writes a
Markdown notes file with a YAML front-matter header. INPUT is a PDF path
or an http(s) URL; without INPUT, the first PDF in the current directory
is used.

The output filename defaults to "YYYY-MM-DD-Reading Notes for <stem>.md"
in the notes directory. Existing output is left untouched unless --force
is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "output file path (default: auto-derived in the notes directory)")
	addNotesFlags(extractCmd)
	extractCmd.Flags().Bool("force", false, "overwrite an existing notes file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := notesConfig(cmd)

	input, err := resolveInput(cmd.Context(), args, cfg)
	if err != nil {
		return err
	}

	extractor := annot.NewPDFCPUExtractor(os.Stderr)
	doc, err := extractor.Extract(input)
	if err != nil {
		return err
	}
	if doc.Empty() {
		fmt.Fprintf(os.Stderr, "warning: %s has no annotations or outline\n", input)
	}

	stem := notes.Stem(input)
	content, err := notes.Render(stem, cfg.Categories, doc)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = filepath.Join(cfg.NotesDir, notes.DefaultFilename(stem, time.Now()))
	}

	_, err = notes.Write(outPath, content, cfg.Force, os.Stdout)
	return err
}

// addNotesFlags registers the flags shared by extract and list.
func addNotesFlags(cmd *cobra.Command) {
	cmd.Flags().String("notes-dir", "", "directory notes are written into (default \".\")")
	cmd.Flags().String("categories", "", "front-matter categories value (default \"Reading Notes\")")
}

// notesConfig builds the extract-stage configuration from flags with
// viper fallbacks.
func notesConfig(cmd *cobra.Command) types.NotesConfig {
	dir, _ := cmd.Flags().GetString("notes-dir")
	if dir == "" {
		dir = viper.GetString("notes.dir")
	}
	if dir == "" {
		dir = "."
	}

	categories, _ := cmd.Flags().GetString("categories")
	if categories == "" {
		categories = viper.GetString("notes.categories")
	}
	if categories == "" {
		categories = "Reading Notes"
	}

	force, _ := cmd.Flags().GetBool("force")

	return types.NotesConfig{NotesDir: dir, Categories: categories, Force: force}
}

func fetchConfig() types.FetchConfig {
	timeout := viper.GetDuration("fetch.timeout")
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	userAgent := viper.GetString("fetch.user_agent")
	if userAgent == "" {
		userAgent = "reading-notes/" + version
	}
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: userAgent},
		MaxRetries: viper.GetInt("fetch.max_retries"),
	}
}

// resolveInput turns the command argument into a local PDF path:
// downloading URL inputs, and falling back to the first PDF in the
// current directory when no argument is given.
func resolveInput(ctx context.Context, args []string, cfg types.NotesConfig) (string, error) {
	if len(args) == 0 {
		path, err := notes.DiscoverPDF(".")
		if err != nil {
			return "", fmt.Errorf("no input given: %w", err)
		}
		return path, nil
	}

	input := args[0]
	if !fetch.IsURL(input) {
		return input, nil
	}

	fcfg := fetchConfig()
	client := &http.Client{Timeout: fcfg.Timeout}
	return fetch.Download(ctx, client, input, filepath.Join(cfg.NotesDir, "pdf"), fcfg, os.Stdout)
}
