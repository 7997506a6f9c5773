package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-formatter/internal/document"
	"github.com/jonathan/resume-formatter/internal/observability"
	"github.com/jonathan/resume-formatter/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <parsed.json> <target.docx>",
	Short: "Check that extracted content survived into a rendered document",
	Long:  "Compare an extraction result against a rendered .docx document, scoring completeness per section and flagging leftover placeholders.",
	Args:  cobra.ExactArgs(2),
	RunE:  runValidate,
}

var validateOut string

func init() {
	validateCmd.Flags().StringVarP(&validateOut, "out", "o", "", "Output path for the validation report JSON")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	result, err := loadExtractionResult(args[0])
	if err != nil {
		return err
	}

	doc, err := document.Open(args[1])
	if err != nil {
		return fmt.Errorf("failed to open target document: %w", err)
	}

	report := validation.Validate(result, doc)

	observability.NewPrinter(os.Stdout).PrintValidationReport(report)

	if validateOut != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize validation report: %w", err)
		}
		if err := os.WriteFile(validateOut, data, 0644); err != nil {
			return fmt.Errorf("failed to write validation report: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Validation report: %s\n", validateOut)
	}

	if report.OverallScore < 0.5 {
		return fmt.Errorf("validation score %.0f%% is below the 50%% threshold", report.OverallScore*100)
	}

	return nil
}
