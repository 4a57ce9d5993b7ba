// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the reading-notes CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the reading-notes CLI.
var rootCmd = &cobra.Command{
	Use:   "reading-notes",
	Short: "Turn PDF annotations into Markdown reading notes",
	Long: `reading-notes extracts the annotations left in a PDF (notes, highlights,
underlines, strikeouts) and writes them out as a Markdown file with a YAML
front-matter header, organized under headings derived from the document
outline. The extraction itself is done by the pdfcpu library; this tool
formats, names, and files the result.

Remote PDFs can be given by URL and are downloaded first. A small SQLite
library index keeps previously written notes searchable.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./reading-notes.yaml or ~/.config/reading-notes/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("reading-notes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "reading-notes"))
		}
	}

	viper.SetEnvPrefix("READING_NOTES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
