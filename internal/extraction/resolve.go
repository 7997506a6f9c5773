package extraction

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-formatter/internal/types"
)

// arbitratedFields are the singleton personal-info fields that may have been
// seen in several places; only the best candidate survives resolution.
var arbitratedFields = []string{types.FieldName, types.FieldPhone, types.FieldEmail}

// resolve runs once after all passes: it arbitrates duplicated contact
// fields, computes the overall confidence and total experience, and records
// the completeness warnings.
func (e *Engine) resolve(acc *accumulator) {
	resolvePersonalInfo(acc)
	e.scoreResult(acc)
}

// resolvePersonalInfo keeps the highest-confidence candidate per arbitrated
// field; ties keep the first one encountered.
func resolvePersonalInfo(acc *accumulator) {
	for _, field := range arbitratedFields {
		candidates := acc.candidates[field]
		if len(candidates) == 0 {
			continue
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.Confidence > best.Confidence {
				best = c
			}
		}
		acc.result.PersonalInfo[field] = best
	}
}

// scoreResult computes the overall confidence and derived metrics. The
// overall confidence is a coarse completeness proxy, an unweighted average
// of four presence scores, not a statistical estimate.
func (e *Engine) scoreResult(acc *accumulator) {
	result := acc.result

	personalFound := 0
	for _, field := range arbitratedFields {
		if _, ok := result.PersonalInfo[field]; ok {
			personalFound++
		}
	}
	personalScore := float64(personalFound) / float64(len(arbitratedFields))

	experienceScore := 0.5
	if len(result.Experience) > 0 {
		experienceScore = 1.0
	}
	educationScore := 0.7
	if len(result.Education) > 0 {
		educationScore = 1.0
	}
	skillsScore := 0.6
	if len(result.Skills.Technical) > 0 {
		skillsScore = 1.0
	}

	result.Metadata.OverallConfidence = (personalScore + experienceScore + educationScore + skillsScore) / 4.0

	if len(result.Experience) > 0 {
		years, warnings := totalExperienceYears(result.Experience, e.now())
		for _, w := range warnings {
			acc.warn(w)
		}
		if years > 0 {
			rounded := math.Round(years*10) / 10
			result.Metadata.TotalExperienceYears = &rounded
		}
	}

	if _, ok := result.PersonalInfo[types.FieldName]; !ok {
		acc.warn("Name not found")
	}
	if len(result.Experience) == 0 {
		acc.warn("No work experience found")
	}
}

// totalExperienceYears sums month differences across jobs with a parsable
// start date. Open-ended or missing end dates count up to now. Entries whose
// dates cannot be parsed are skipped with a warning, never aborting the
// aggregate.
func totalExperienceYears(jobs []types.JobEntry, now time.Time) (float64, []string) {
	totalMonths := 0
	var warnings []string

	for _, job := range jobs {
		if job.StartDate == "" {
			continue
		}
		end := job.EndDate
		if end == "" {
			end = types.Present
		}

		startYear, startMonth, err := parseYearMonth(job.StartDate)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Could not parse dates for experience: %s - %s", job.StartDate, end))
			continue
		}

		var endYear, endMonth int
		if end == types.Present {
			endYear, endMonth = now.Year(), int(now.Month())
		} else {
			endYear, endMonth, err = parseYearMonth(end)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("Could not parse dates for experience: %s - %s", job.StartDate, end))
				continue
			}
		}

		totalMonths += (endYear-startYear)*12 + (endMonth - startMonth)
	}

	return float64(totalMonths) / 12.0, warnings
}

// parseYearMonth parses the canonical "YYYY.MM" notation.
func parseYearMonth(s string) (year, month int, err error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("not a YYYY.MM date: %q", s)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in %q: %w", s, err)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month out of range in %q", s)
	}
	return year, month, nil
}
