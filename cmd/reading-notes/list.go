// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/reading-notes/internal/annot"
	"github.com/pdiddy/reading-notes/internal/notes"
)

var listCmd = &cobra.Command{
	Use:   "list [INPUT]",
	Short: "Print a PDF's annotations to stdout",
	Long: `List runs the same extraction and rendering as extract but prints the
result to stdout instead of writing a file. Useful for a quick look before
committing a note to the notes directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	addNotesFlags(listCmd)

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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

	content, err := notes.Render(notes.Stem(input), cfg.Categories, doc)
	if err != nil {
		return err
	}

	fmt.Print(content)
	return nil
}
