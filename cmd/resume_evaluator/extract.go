package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-evaluator/internal/ingestion"
)

var extractJSON bool

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract clean text from a resume file",
	Long:  `Extract and clean the text content of a resume file (.pdf, .docx, or .txt) without running any analysis.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print text and file metadata as JSON")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	text, metadata, err := ingestion.IngestFromFile(args[0])
	if err != nil {
		return err
	}

	if extractJSON {
		return printJSON(map[string]any{
			"text":     text,
			"metadata": metadata,
		})
	}

	fmt.Println(text)
	return nil
}
