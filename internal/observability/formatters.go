// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-formatter/internal/types"
	"github.com/jonathan/resume-formatter/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractionSummary outputs a human-readable summary of one extraction run.
func (p *Printer) PrintExtractionSummary(result *types.ExtractionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Source:      %s\n", result.Metadata.SourceFile))
	sb.WriteString(fmt.Sprintf("Confidence:  %.0f%%\n", result.Metadata.OverallConfidence*100))
	if result.Metadata.TotalExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Experience:  %.1f years\n", *result.Metadata.TotalExperienceYears))
	}
	sb.WriteString("\n")

	if len(result.PersonalInfo) > 0 {
		sb.WriteString("Personal Info:\n")
		fields := make([]string, 0, len(result.PersonalInfo))
		for field := range result.PersonalInfo {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			sv := result.PersonalInfo[field]
			sb.WriteString(fmt.Sprintf("  • %s: %s (%.2f)\n", field, sv.Value, sv.Confidence))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Experience entries:  %d\n", len(result.Experience)))
	count := min(len(result.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := result.Experience[i]
		line := job.Company
		if job.Title != "" {
			line += " / " + job.Title
		}
		if len(line) > 45 {
			line = line[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", line))
	}
	if len(result.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Experience)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("Education entries:   %d\n", len(result.Education)))
	sb.WriteString(fmt.Sprintf("Technical skills:    %d\n", len(result.Skills.Technical)))
	sb.WriteString(fmt.Sprintf("Languages:           %d", len(result.Skills.Languages)))

	p.printBox("EXTRACTION SUMMARY", sb.String())
	p.printWarnings(result.Metadata.Warnings)
}

// printWarnings outputs extraction warnings, or a clean marker when none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))

	for i, warning := range warnings {
		if len(warning) > 50 {
			warning = warning[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s", warning))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EXTRACTION WARNINGS", sb.String())
}

// PrintValidationReport outputs the content validation scores and issues.
func (p *Printer) PrintValidationReport(report *validation.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %.0f%%\n\n", report.OverallScore*100))

	sb.WriteString("Completeness:\n")
	sections := make([]string, 0, len(report.Completeness))
	for section := range report.Completeness {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("  %-15s %.0f%%\n", section, report.Completeness[section]*100))
	}

	if len(report.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(report.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := report.Issues[i]
			if len(issue) > 50 {
				issue = issue[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", issue))
		}
		if len(report.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Issues)-maxItemsToShow))
		}
	}

	for _, rec := range report.Recommendations {
		sb.WriteString(fmt.Sprintf("\n→ %s", rec))
	}

	p.printBox("VALIDATION REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
