package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-evaluator/internal/config"
	"github.com/jonathan/resume-evaluator/internal/ingestion"
	"github.com/jonathan/resume-evaluator/internal/pipeline"
	"github.com/jonathan/resume-evaluator/internal/schemas"
)

var (
	analyzeJSON     bool
	analyzeVerbose  bool
	analyzeValidate bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run the full evaluation pipeline on a resume",
	Long: `Run the full evaluation pipeline on a resume and print the report.

The resume is read from the given file (.pdf, .docx, or .txt) or from stdin
when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full pipeline result as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed stage output")
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Check the generated report against the report schema")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readResumeText(args)
	if err != nil {
		return err
	}

	cfg := config.FromEnv()
	weights := cfg.Weights()

	result, err := pipeline.Run(cmd.Context(), pipeline.Options{
		Text:    text,
		Weights: &weights,
		Verbose: analyzeVerbose || cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if analyzeValidate {
		if err := schemas.ValidateEvaluationReport(result.Report); err != nil {
			return fmt.Errorf("report failed schema validation: %w", err)
		}
	}

	if analyzeJSON {
		return printJSON(result)
	}

	printSummary(result)
	return nil
}

func readResumeText(args []string) (string, error) {
	if len(args) == 1 {
		text, _, err := ingestion.IngestFromFile(args[0])
		if err != nil {
			return "", err
		}
		return text, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return ingestion.CleanText(string(data)), nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printSummary(result *pipeline.Result) {
	fmt.Printf("Overall score: %d/100 (%s)\n", result.Scoring.OverallScore, result.Scoring.RecommendationTier)
	fmt.Printf("Profile tier:  %s\n\n", result.Report.ProfileTier)
	fmt.Println(result.Report.SummaryStatement)

	printList("Strengths", result.Report.Strengths)
	printList("Weaknesses", result.Report.Weaknesses)
	printList("Recommendations", result.Report.Recommendations)
	printList("Next steps", result.Report.NextSteps)
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
