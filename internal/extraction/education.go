package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-formatter/internal/types"
)

var (
	schoolKeywords = []string{"university", "college", "institute", "대학교", "대학"}

	gpaRe    = regexp.MustCompile(`(\d\.\d+)[/\s]*(\d\.\d+)`)
	degreeRe = regexp.MustCompile(`(?i)(Bachelor|Master|PhD|학사|석사|박사|B\.S\.|M\.S\.)`)

	schoolDateResidueRe   = regexp.MustCompile(`\d{4}[년./-]?\s*\d{0,2}`)
	schoolGPAResidueRe    = regexp.MustCompile(`\d\.\d+/\d\.\d+`)
	schoolDegreeResidueRe = regexp.MustCompile(`(?i)(Bachelor|Master|PhD|학사|석사|박사)`)
)

// segmentEducation scans education-section lines for school entries. Lines
// without a school keyword are skipped; everything else on a matching line
// (degree, GPA, dates) is best-effort.
func segmentEducation(lines []string) []types.EducationEntry {
	var entries []types.EducationEntry

	for _, line := range lines {
		if !containsAnyFold(line, schoolKeywords) {
			continue
		}

		edu := types.EducationEntry{Confidence: 0.75}

		if m := gpaRe.FindStringSubmatch(line); m != nil {
			edu.GPA = m[1] + "/" + m[2]
		}
		if m := degreeRe.FindStringSubmatch(line); m != nil {
			edu.Degree = m[1]
		}
		if dr, ok := ParseDateRange(line); ok {
			edu.StartDate = dr.Start
			edu.EndDate = dr.End
		}

		school := schoolDateResidueRe.ReplaceAllString(line, "")
		school = schoolGPAResidueRe.ReplaceAllString(school, "")
		school = schoolDegreeResidueRe.ReplaceAllString(school, "")
		edu.School = strings.TrimSpace(school)

		entries = append(entries, edu)
	}

	return entries
}

// containsAnyFold reports whether the lowercased line contains any keyword.
func containsAnyFold(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
