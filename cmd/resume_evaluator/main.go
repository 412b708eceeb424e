// Package main provides the entry point for the Resume Evaluator CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_evaluator",
	Short: "Resume Evaluator analysis pipeline",
	Long:  "Resume Evaluator runs a deterministic analysis pipeline over resume text: section segmentation, entity extraction, skill proficiency and experience quality analysis, global scoring, and report generation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
