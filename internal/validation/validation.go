// Package validation cross-checks a rendered resume document against the
// ExtractionResult it was produced from, reporting completeness per section
// and residual quality issues.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-formatter/internal/document"
	"github.com/jonathan/resume-formatter/internal/types"
)

// placeholders are template tokens that must not survive rendering.
var placeholders = []string{"OOO", "XXX", "[Insert", "정보 없음", "N/A"}

// contactFields are the personal-info fields checked for completeness.
var contactFields = []string{types.FieldName, types.FieldPhone, types.FieldEmail}

const maxSkillsChecked = 10

// Report is the outcome of validating one rendered document.
type Report struct {
	OverallScore    float64            `json:"overall_score"`
	Completeness    map[string]float64 `json:"completeness"`
	Issues          []string           `json:"issues"`
	Recommendations []string           `json:"recommendations"`
}

// Validate checks that the content of source survived into the rendered
// target document. The overall score is the mean of the per-section
// completeness scores.
func Validate(source *types.ExtractionResult, target document.View) *Report {
	report := &Report{
		Completeness:    make(map[string]float64),
		Issues:          []string{},
		Recommendations: []string{},
	}

	targetText := flatten(target)

	report.Completeness["personal_info"] = checkPersonal(source, targetText, report)
	report.Completeness["experience"] = checkExperience(source, targetText, report)
	report.Completeness["education"] = checkEducation(source, targetText)
	report.Completeness["skills"] = checkSkills(source, targetText)

	checkQuality(targetText, report)

	var total float64
	for _, score := range report.Completeness {
		total += score
	}
	report.OverallScore = total / float64(len(report.Completeness))

	if report.OverallScore < 0.9 {
		report.Recommendations = append(report.Recommendations,
			"Review flagged missing content",
			"Verify critical fields (name, contact) are correct",
		)
	}

	return report
}

// flatten joins all body paragraph and table cell text of the target.
func flatten(target document.View) string {
	var parts []string
	for _, p := range target.Paragraphs() {
		parts = append(parts, p.Text)
	}
	for _, table := range target.Tables() {
		for _, row := range table.Rows {
			parts = append(parts, row...)
		}
	}
	return strings.Join(parts, "\n")
}

func checkPersonal(source *types.ExtractionResult, targetText string, report *Report) float64 {
	found := 0
	for _, field := range contactFields {
		value := source.PersonalInfo[field].Value
		if value == "" {
			continue
		}
		if strings.Contains(targetText, value) {
			found++
		} else {
			report.Issues = append(report.Issues, fmt.Sprintf("Personal info %q not found in target: %s", field, value))
		}
	}
	return float64(found) / float64(len(contactFields))
}

func checkExperience(source *types.ExtractionResult, targetText string, report *Report) float64 {
	if len(source.Experience) == 0 {
		return 1.0
	}
	found := 0
	for _, job := range source.Experience {
		if job.Company == "" {
			continue
		}
		if strings.Contains(targetText, job.Company) {
			found++
		} else {
			report.Issues = append(report.Issues, fmt.Sprintf("Experience company not found: %s", job.Company))
		}
	}
	return float64(found) / float64(len(source.Experience))
}

func checkEducation(source *types.ExtractionResult, targetText string) float64 {
	if len(source.Education) == 0 {
		return 0.8
	}
	found := 0
	for _, edu := range source.Education {
		if edu.School != "" && strings.Contains(targetText, edu.School) {
			found++
		}
	}
	return float64(found) / float64(len(source.Education))
}

func checkSkills(source *types.ExtractionResult, targetText string) float64 {
	skills := source.Skills.Technical
	if len(skills) == 0 {
		return 0.8
	}
	if len(skills) > maxSkillsChecked {
		skills = skills[:maxSkillsChecked]
	}
	found := 0
	for _, skill := range skills {
		if skill.Value != "" && strings.Contains(targetText, skill.Value) {
			found++
		}
	}
	return float64(found) / float64(len(skills))
}

func checkQuality(targetText string, report *Report) {
	for _, placeholder := range placeholders {
		if strings.Contains(targetText, placeholder) {
			report.Issues = append(report.Issues, fmt.Sprintf("Placeholder text found: %s", placeholder))
		}
	}
	if strings.Contains(targetText, "�") {
		report.Issues = append(report.Issues, "Encoding issues detected (garbled characters)")
	}
}
