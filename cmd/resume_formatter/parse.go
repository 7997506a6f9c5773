package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-formatter/internal/document"
	"github.com/jonathan/resume-formatter/internal/extraction"
	"github.com/jonathan/resume-formatter/internal/observability"
	"github.com/jonathan/resume-formatter/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume.docx>",
	Short: "Extract structured content from a .docx resume",
	Long:  "Extract personal info, experience, education, and skills from a .docx resume and write the result as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var (
	parseOut    string
	parseSchema string
)

func init() {
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "Output path for the extraction JSON (default stdout)")
	parseCmd.Flags().StringVar(&parseSchema, "schema", "", "Path to the extraction result schema (default: bundled schema)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	resumePath := args[0]

	doc, err := document.Open(resumePath)
	if err != nil {
		return fmt.Errorf("failed to open resume: %w", err)
	}

	engine := extraction.New(extraction.WithLogger(logger))
	result := engine.Extract(doc)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize extraction result: %w", err)
	}

	schemaPath := parseSchema
	if schemaPath == "" {
		schemaPath = cfg.SchemaPath
	}
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.ExtractionResultSchema)
	}
	if schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, data); err != nil {
			return fmt.Errorf("extraction result failed schema validation: %w", err)
		}
	} else {
		logger.Warn().Msg("extraction result schema not found; skipping schema validation")
	}

	out := parseOut
	if out == "" {
		out = cfg.Output
	}
	if out == "" {
		fmt.Fprintln(os.Stdout, string(data))
	} else {
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Extraction result: %s\n", out)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintExtractionSummary(result)
	}

	return nil
}
