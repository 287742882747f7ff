package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kalambet/scriv/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import reference material into the bibliography",
	Long: `Extract text from a PDF or a web page and store it as a markdown note
under bibliography/, so the next 'agent refresh' adds it to the assistant's
knowledge.

Examples:
  scriv import --pdf papers/raft.pdf
  scriv import --url https://example.com/article --title "Background reading"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath, _ := cmd.Flags().GetString("pdf")
		url, _ := cmd.Flags().GetString("url")
		title, _ := cmd.Flags().GetString("title")

		if (pdfPath == "") == (url == "") {
			return fmt.Errorf("exactly one of --pdf or --url is required")
		}

		path, _, err := loadProject()
		if err != nil {
			return err
		}

		var ref importer.Reference
		switch {
		case pdfPath != "":
			printStep("Extracting text from %s...", pdfPath)
			ref, err = importer.FromPDF(pdfPath, title)
		case url != "":
			printStep("Fetching %s...", url)
			ref, err = importer.FromURL(cmd.Context(), nil, url, title)
		}
		if err != nil {
			return err
		}

		saved, err := importer.SaveReference(path, ref)
		if err != nil {
			return err
		}

		printSuccess("Imported %q to %s", ref.Title, saved)
		printStep("Run 'scriv agent refresh' to update the assistant's knowledge")
		return nil
	},
}

func init() {
	importCmd.Flags().String("pdf", "", "path to a PDF file to import")
	importCmd.Flags().String("url", "", "URL of a web page to import")
	importCmd.Flags().String("title", "", "title for the imported reference")
}
