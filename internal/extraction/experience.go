package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-formatter/internal/types"
)

// Resumes mix two incompatible experience layouts: single-line headers
// ("Company | Title | Dates", or dashed text with inline dates) and the
// two-line Korean layout (a standalone date line followed by a
// "Company - Title" line), with optional project blocks nested inside a job.
// The segmenter is a linear scan with one line of lookahead over an explicit
// state record; the classification is tunable-heuristic by design.

var (
	standaloneKoreanDateRe = regexp.MustCompile(`^\s*\d{4}년\s*\d{1,2}월?\s*[-~]\s*(현재|재직중|Present|\d{4}년\s*\d{1,2}월?)\s*$`)
	standaloneDotDateRe    = regexp.MustCompile(`^\s*\d{4}\.\d{2}\s*[-~]\s*(현재|재직중|Present|\d{4}\.\d{2})\s*$`)

	companyLineRe  = regexp.MustCompile(`(?i)(Inc\.|Ltd\.|Corp\.|Co\.|주식회사|Company|AI|엔지니어|연구원|개발자|Part)`)
	companyWordRe  = regexp.MustCompile(`(?i)(Inc\.|Ltd\.|Corp\.|Co\.|주식회사|Company)`)
	titleWordRe    = regexp.MustCompile(`(?i)(Engineer|Developer|Manager|Analyst|Researcher|팀장|연구원)`)
	yearRe         = regexp.MustCompile(`\d{4}`)
	inlineDotRange = regexp.MustCompile(`\d{4}\.\d{2}\s*[-~]\s*\d{4}\.\d{2}`)

	inlineDateStripRe = regexp.MustCompile(`\d{4}[년./-]\s*\d{1,2}월?\s*[-~]\s*(현재|Present|\d{4}(?:[년./-]\s*\d{1,2}월?)?)`)
	yearPairStripRe   = regexp.MustCompile(`\d{4}\s*-\s*\d{4}`)

	bulletRe = regexp.MustCompile(`^[•\-*]\s*`)

	projectKeywords = []string{"프로젝트", "project", "과제", "task force"}
)

// experienceState is the segmenter's explicit state: the job being built,
// the project being built inside it, the finished entries, and a one-slot
// buffer for dates seen on their own line.
type experienceState struct {
	entries      []types.JobEntry
	job          *types.JobEntry
	project      *types.ProjectEntry
	pendingDates *types.DateRange
}

// segmentExperience turns the buffered lines of an experience section into
// ordered job entries.
func segmentExperience(lines []string) []types.JobEntry {
	state := &experienceState{}
	for i := 0; i < len(lines); {
		next := ""
		hasNext := i+1 < len(lines)
		if hasNext {
			next = lines[i+1]
		}
		i += state.step(lines[i], next, hasNext)
	}
	state.finish()
	return state.entries
}

// step consumes one transition and returns how many lines it used (1 or 2).
func (s *experienceState) step(line, next string, hasNext bool) int {
	// Two-line Korean layout: a line that is only a date range, followed by
	// a company line, is one entry. The date line alone is not enough; when
	// the lookahead fails the dates stay buffered and the line is dropped.
	if hasNext && isStandaloneDateLine(line) {
		if dr, ok := ParseDateRange(line); ok {
			s.pendingDates = &dr
		}
		if s.pendingDates != nil && looksLikeCompanyLine(next) {
			s.flushJob()
			job := parseCompanyTitle(next)
			job.StartDate = s.pendingDates.Start
			job.EndDate = s.pendingDates.End
			job.Confidence = 0.9
			s.job = &job
			s.pendingDates = nil
			return 2
		}
		return 1
	}

	if looksLikeJobHeader(line) {
		s.flushJob()
		job := parseJobHeader(line)
		s.job = &job
		return 1
	}

	if s.job == nil {
		// No open context to attach to; the line is dropped.
		return 1
	}

	switch {
	case looksLikeProjectHeader(line):
		s.flushProject()
		s.project = &types.ProjectEntry{
			Name:             strings.Trim(line, "[]【】() "),
			Responsibilities: []string{},
		}
	case s.project != nil:
		if clean := bulletRe.ReplaceAllString(line, ""); clean != "" {
			s.project.Responsibilities = append(s.project.Responsibilities, clean)
		}
	default:
		if clean := bulletRe.ReplaceAllString(line, ""); clean != "" {
			s.job.Responsibilities = append(s.job.Responsibilities, clean)
		}
	}
	return 1
}

// flushProject appends the open project to its job.
func (s *experienceState) flushProject() {
	if s.job != nil && s.project != nil {
		s.job.Projects = append(s.job.Projects, *s.project)
	}
	s.project = nil
}

// flushJob closes the open project and job, moving the job to the entries.
func (s *experienceState) flushJob() {
	s.flushProject()
	if s.job != nil {
		s.entries = append(s.entries, *s.job)
	}
	s.job = nil
}

func (s *experienceState) finish() {
	s.flushJob()
}

// isStandaloneDateLine reports whether the line holds nothing but a date
// range, in Korean 년/월 or dot notation.
func isStandaloneDateLine(line string) bool {
	return standaloneKoreanDateRe.MatchString(line) || standaloneDotDateRe.MatchString(line)
}

// looksLikeCompanyLine reports whether a line plausibly is "Company - Title":
// a company or role indicator, or a dash/comma separator, on a concise line.
func looksLikeCompanyLine(line string) bool {
	hasIndicator := companyLineRe.MatchString(line)
	hasSeparator := strings.Contains(line, " - ") || strings.Contains(line, ",")
	return (hasIndicator || hasSeparator) && utf8.RuneCountInString(line) < 100
}

// parseCompanyTitle splits a "Company - Title" or "Company, Department - Title"
// line of the two-line layout.
func parseCompanyTitle(line string) types.JobEntry {
	job := types.JobEntry{Confidence: 0.85}

	switch {
	case strings.Contains(line, " - "):
		parts := strings.SplitN(line, " - ", 2)
		job.Company = strings.TrimSpace(parts[0])
		job.Title = strings.TrimSpace(parts[1])
	case strings.Contains(line, ","):
		parts := strings.SplitN(line, ",", 2)
		job.Company = strings.TrimSpace(parts[0])
		rest := strings.TrimSpace(parts[1])
		if strings.Contains(rest, " - ") {
			deptTitle := strings.Split(rest, " - ")
			job.Department = strings.TrimSpace(deptTitle[0])
			job.Title = strings.TrimSpace(deptTitle[1])
		} else {
			job.Title = rest
		}
	default:
		job.Company = strings.TrimSpace(line)
	}

	return job
}

// looksLikeJobHeader detects a single-line job entry start: a 4-digit year
// together with a company or title indicator, or a pipe-delimited line.
func looksLikeJobHeader(line string) bool {
	if strings.Count(line, "|") >= 2 {
		return true
	}
	return yearRe.MatchString(line) && (companyWordRe.MatchString(line) || titleWordRe.MatchString(line))
}

// parseJobHeader extracts company, title, and dates from a single-line job
// header. The pipe-delimited form is tried first and carries more confidence
// than the stripped-dates fallback.
func parseJobHeader(line string) types.JobEntry {
	if strings.Contains(line, "|") {
		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) >= 2 {
			job := types.JobEntry{Company: parts[0], Title: parts[1], Confidence: 0.85}
			if len(parts) >= 3 {
				if dr, ok := ParseDateRange(parts[2]); ok {
					job.StartDate = dr.Start
					job.EndDate = dr.End
				}
			}
			return job
		}
	}

	job := types.JobEntry{Confidence: 0.7}
	if dr, ok := ParseDateRange(line); ok {
		job.StartDate = dr.Start
		job.EndDate = dr.End
	}

	remainder := inlineDateStripRe.ReplaceAllString(line, "")
	remainder = yearPairStripRe.ReplaceAllString(remainder, "")

	var parts []string
	for _, p := range strings.Split(remainder, "-") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) >= 2 {
		job.Company = parts[0]
		job.Title = parts[1]
	} else if len(parts) == 1 {
		job.Company = parts[0]
	}

	return job
}

// looksLikeProjectHeader detects a project block start inside a job:
// bracketed lines, short lines with a project keyword, or short lines with an
// inline date range. Long responsibility bullets can slip through either way;
// the heuristic carries no confidence signal of its own.
func looksLikeProjectHeader(line string) bool {
	if strings.HasPrefix(line, "[") || strings.HasPrefix(line, "【") {
		return true
	}

	lower := strings.ToLower(line)
	for _, kw := range projectKeywords {
		if strings.Contains(lower, kw) && len(strings.Fields(line)) <= 6 {
			return true
		}
	}

	return inlineDotRange.MatchString(line) && utf8.RuneCountInString(line) < 100
}
