package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-formatter/internal/document"
	"github.com/jonathan/resume-formatter/internal/mapping"
	"github.com/jonathan/resume-formatter/internal/types"
)

var mapCmd = &cobra.Command{
	Use:   "map <parsed.json> <template.docx>",
	Short: "Fill a resume template from an extraction result",
	Long:  "Map extracted resume content onto the labeled table cells of a standardized .docx template.",
	Args:  cobra.ExactArgs(2),
	RunE:  runMap,
}

var mapOut string

func init() {
	mapCmd.Flags().StringVarP(&mapOut, "out", "o", "", "Output path for the filled template (required)")

	if err := mapCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(mapCmd)
}

func loadExtractionResult(path string) (*types.ExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extraction result %s: %w", path, err)
	}

	var result types.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse extraction result JSON: %w", err)
	}

	return &result, nil
}

func runMap(cmd *cobra.Command, args []string) error {
	result, err := loadExtractionResult(args[0])
	if err != nil {
		return err
	}

	doc, err := document.Open(args[1])
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}

	limits := mapping.Limits{
		MaxExperienceEntries: cfg.MaxExperienceEntries,
		MaxSkillEntries:      cfg.MaxSkillEntries,
	}
	mapped, err := mapping.Apply(result, doc, limits, logger)
	if err != nil {
		return fmt.Errorf("failed to fill template: %w", err)
	}

	if err := doc.Save(mapOut); err != nil {
		return fmt.Errorf("failed to write filled template: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Filled %d fields\n", mapped)
	fmt.Fprintf(os.Stdout, "Formatted resume: %s\n", mapOut)

	return nil
}
