package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-formatter/internal/types"
	"github.com/jonathan/resume-formatter/internal/validation"
)

func summaryResult() *types.ExtractionResult {
	result := types.NewExtractionResult("resume.docx", "run-1", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	result.PersonalInfo[types.FieldName] = types.ScoredValue{Value: "김민준", Confidence: 0.95, Source: types.SourceTable}
	result.PersonalInfo[types.FieldEmail] = types.ScoredValue{Value: "minjun@example.com", Confidence: 0.9, Source: types.SourceTable}
	result.Experience = []types.JobEntry{
		{Company: "주식회사 한빛", Title: "연구원", Confidence: 0.9},
	}
	result.Metadata.OverallConfidence = 0.85
	years := 3.1
	result.Metadata.TotalExperienceYears = &years
	return result
}

func TestPrintExtractionSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractionSummary(summaryResult())
	output := buf.String()

	assert.Contains(t, output, "EXTRACTION SUMMARY")
	assert.Contains(t, output, "resume.docx")
	assert.Contains(t, output, "85%")
	assert.Contains(t, output, "3.1 years")
	assert.Contains(t, output, "김민준")
	assert.Contains(t, output, "NO WARNINGS")
}

func TestPrintExtractionSummary_Warnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := summaryResult()
	result.Metadata.Warnings = []string{"Name not found", "No work experience found"}

	p.PrintExtractionSummary(result)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTION WARNINGS")
	assert.Contains(t, output, "Found 2 warnings")
	assert.Contains(t, output, "Name not found")
	assert.NotContains(t, output, "NO WARNINGS")
}

func TestPrintExtractionSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractionSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintValidationReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &validation.Report{
		OverallScore: 0.75,
		Completeness: map[string]float64{
			"personal_info": 1.0,
			"experience":    0.5,
		},
		Issues:          []string{"Experience company not found: Acme Inc."},
		Recommendations: []string{"Review flagged missing content"},
	}

	p.PrintValidationReport(report)
	output := buf.String()

	assert.Contains(t, output, "VALIDATION REPORT")
	assert.Contains(t, output, "75%")
	assert.Contains(t, output, "personal_info")
	assert.Contains(t, output, "Experience company not found")
	assert.Contains(t, output, "Review flagged missing content")
}
