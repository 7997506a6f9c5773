// Package types provides type definitions for structured data used throughout the resume-formatter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Source identifies the document region a value was extracted from.
const (
	SourceHeader  = "header"
	SourceFooter  = "footer"
	SourceBody    = "body"
	SourceTable   = "table"
	SourceTextbox = "textbox"
)

// Present is the sentinel end date for ongoing employment. All open-ended
// markers (현재, 재직중, Present, Current) normalize to this token.
const Present = "Present"

// ScoredValue is an extracted field paired with a confidence estimate and
// the pass that produced it.
type ScoredValue struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source,omitempty"`
}

// DateRange holds a normalized employment or education period. Both ends use
// "YYYY.MM" notation; End may be the Present sentinel. An empty field means
// the date was not found, which is valid.
type DateRange struct {
	Start string `json:"start_date,omitempty"`
	End   string `json:"end_date,omitempty"`
}

// ProjectEntry is a sub-block within a job describing a specific initiative.
// It is owned exclusively by its parent JobEntry.
type ProjectEntry struct {
	Name             string   `json:"name"`
	Responsibilities []string `json:"responsibilities"`
}

// JobEntry is one employer/role period. Company is the only field that is
// guaranteed non-empty for well-formed input; everything else is best-effort.
// Confidence is always set and reflects the extraction method that produced
// the entry.
type JobEntry struct {
	Company          string         `json:"company,omitempty"`
	Title            string         `json:"title,omitempty"`
	Department       string         `json:"department,omitempty"`
	StartDate        string         `json:"start_date,omitempty"`
	EndDate          string         `json:"end_date,omitempty"`
	Confidence       float64        `json:"confidence"`
	Responsibilities []string       `json:"responsibilities,omitempty"`
	Projects         []ProjectEntry `json:"projects,omitempty"`
}

// EducationEntry is one school period.
type EducationEntry struct {
	School     string  `json:"school,omitempty"`
	Degree     string  `json:"degree,omitempty"`
	GPA        string  `json:"gpa,omitempty"`
	StartDate  string  `json:"start_date,omitempty"`
	EndDate    string  `json:"end_date,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Skills groups extracted skill values by kind.
type Skills struct {
	Technical []ScoredValue `json:"technical"`
	Languages []ScoredValue `json:"languages"`
}

// Metadata carries run identity, warnings, and derived metrics for one
// extraction.
type Metadata struct {
	SourceFile           string    `json:"source_file"`
	ExtractionID         string    `json:"extraction_id"`
	ExtractionDate       time.Time `json:"extraction_date"`
	Warnings             []string  `json:"warnings"`
	OverallConfidence    float64   `json:"overall_confidence"`
	TotalExperienceYears *float64  `json:"total_experience_years,omitempty"`
}

// ExtractionResult is the canonical record produced by one extraction run.
// It is populated by sequential passes over a single document view and is
// read-only once returned.
type ExtractionResult struct {
	PersonalInfo map[string]ScoredValue `json:"personal_info"`
	Experience   []JobEntry             `json:"experience"`
	Education    []EducationEntry       `json:"education"`
	Skills       Skills                 `json:"skills"`
	Summary      string                 `json:"summary,omitempty"`
	Metadata     Metadata               `json:"metadata"`
}

// NewExtractionResult returns an empty result ready for accumulation.
func NewExtractionResult(sourceFile, extractionID string, extractedAt time.Time) *ExtractionResult {
	return &ExtractionResult{
		PersonalInfo: make(map[string]ScoredValue),
		Experience:   []JobEntry{},
		Education:    []EducationEntry{},
		Skills: Skills{
			Technical: []ScoredValue{},
			Languages: []ScoredValue{},
		},
		Metadata: Metadata{
			SourceFile:     sourceFile,
			ExtractionID:   extractionID,
			ExtractionDate: extractedAt,
			Warnings:       []string{},
		},
	}
}

// Personal-info field names used across the passes and the resolver.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldAddress  = "address"
	FieldLinkedIn = "linkedin"
	FieldGitHub   = "github"
)
