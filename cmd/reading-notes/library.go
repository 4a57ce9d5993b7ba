// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/reading-notes/internal/library"
	"github.com/pdiddy/reading-notes/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the notes library index (index, list, search)",
	Long: `Library maintains a local SQLite index over the notes directory so past
reading notes stay searchable. Use subcommands to (re)index the directory,
list indexed notes, or run a full-text search over annotation comments.`,
}

// --- index subcommand ---

var libraryIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the notes directory",
	Long: `Index scans the notes directory for Markdown notes and ingests them into
the library database. Unchanged files are skipped on subsequent runs.`,
	RunE: runLibraryIndex,
}

func runLibraryIndex(cmd *cobra.Command, args []string) error {
	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Index(cmd.Context(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d note(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- list subcommand ---

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed notes",
	RunE:  runLibraryList,
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	for _, n := range all {
		fmt.Printf("%s\t%s\n", n.Stem, n.Title)
	}
	if len(all) == 0 {
		fmt.Fprintln(os.Stderr, "library is empty; run 'reading-notes library index' first")
	}
	return nil
}

// --- search subcommand ---

var librarySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over indexed annotations",
	Long: `Search runs an FTS5 full-text query over annotation comments, optionally
narrowed by --page or --note. Without a query, the filters alone select
annotations.`,
	RunE: runLibrarySearch,
}

func runLibrarySearch(cmd *cobra.Command, args []string) error {
	opts := library.QueryOptions{
		Query: strings.Join(args, " "),
	}
	opts.Page, _ = cmd.Flags().GetInt("page")
	opts.NoteStem, _ = cmd.Flags().GetString("note")
	opts.MaxResults, _ = cmd.Flags().GetInt("max")

	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --page, or --note")
	}

	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(cmd.Context(), opts)
	if err != nil {
		return err
	}

	for _, r := range results {
		comment := r.Comment
		if i := strings.IndexByte(comment, '\n'); i >= 0 {
			comment = comment[:i] + " ..."
		}
		fmt.Printf("%s  p.%d (%s)  %s\n", r.NoteStem, r.Page, r.Subtype, comment)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "no matches")
	}
	return nil
}

// libraryConfig builds the library configuration from flags with viper
// fallbacks. The library shares the notes directory with extract.
func libraryConfig(cmd *cobra.Command) types.LibraryConfig {
	dir, _ := cmd.Flags().GetString("notes-dir")
	if dir == "" {
		dir = viper.GetString("notes.dir")
	}
	if dir == "" {
		dir = "."
	}

	maxResults := viper.GetInt("library.max_results")

	return types.LibraryConfig{NotesDir: dir, MaxResults: maxResults}
}

func init() {
	libraryCmd.PersistentFlags().String("notes-dir", "", "directory containing note files (default \".\")")

	librarySearchCmd.Flags().Int("page", 0, "filter by page number")
	librarySearchCmd.Flags().String("note", "", "filter by note stem")
	librarySearchCmd.Flags().Int("max", 0, "maximum number of results")

	libraryCmd.AddCommand(libraryIndexCmd, libraryListCmd, librarySearchCmd)
	rootCmd.AddCommand(libraryCmd)
}
