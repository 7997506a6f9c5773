// Package mapping renders an ExtractionResult into a table-based template
// document: template labels resolve to dotted result paths, and matching
// cells receive the extracted values.
package mapping

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-formatter/internal/document"
	"github.com/jonathan/resume-formatter/internal/types"
)

// Limits caps how many repeatable entries are rendered into a template cell.
// Zero-valued fields fall back to the defaults.
type Limits struct {
	MaxExperienceEntries int
	MaxSkillEntries      int
}

// DefaultLimits are the caps used when the config provides none.
var DefaultLimits = Limits{
	MaxExperienceEntries: 3,
	MaxSkillEntries:      10,
}

func (l Limits) orDefaults() Limits {
	if l.MaxExperienceEntries == 0 {
		l.MaxExperienceEntries = DefaultLimits.MaxExperienceEntries
	}
	if l.MaxSkillEntries == 0 {
		l.MaxSkillEntries = DefaultLimits.MaxSkillEntries
	}
	return l
}

// fieldPaths pairs bilingual template labels with the result path they
// render. Exact label matches are tried first, then case-insensitive
// substring matches in declaration order.
var fieldPaths = []struct {
	label string
	path  string
}{
	{"성명", "personal_info.name"},
	{"Name", "personal_info.name"},
	{"이름", "personal_info.name"},
	{"연락처", "personal_info.phone"},
	{"Phone", "personal_info.phone"},
	{"전화", "personal_info.phone"},
	{"Email", "personal_info.email"},
	{"주소", "personal_info.address"},
	{"Address", "personal_info.address"},
	{"경력사항", "experience"},
	{"Experience", "experience"},
	{"학력사항", "education"},
	{"Education", "education"},
	{"핵심역량", "skills.technical"},
	{"Skills", "skills.technical"},
	{"외국어", "skills.languages"},
	{"Languages", "skills.languages"},
}

// ResolvePath maps a template field label to a dotted result path.
func ResolvePath(label string) (string, bool) {
	for _, fp := range fieldPaths {
		if fp.label == label {
			return fp.path, true
		}
	}
	for _, fp := range fieldPaths {
		if strings.Contains(strings.ToLower(label), strings.ToLower(fp.label)) {
			return fp.path, true
		}
	}
	return "", false
}

// ValueAt renders the value at a dotted path as template text. Repeatable
// entities are formatted for display: the top experience entries one per
// line, skills comma-joined, both capped by limits. An empty string means
// the path has no value.
func ValueAt(result *types.ExtractionResult, path string, limits Limits) string {
	if result == nil {
		return ""
	}
	limits = limits.orDefaults()

	parts := strings.SplitN(path, ".", 2)
	switch parts[0] {
	case "personal_info":
		if len(parts) != 2 {
			return ""
		}
		return result.PersonalInfo[parts[1]].Value
	case "experience":
		return formatExperience(result.Experience, limits.MaxExperienceEntries)
	case "education":
		return formatEducation(result.Education)
	case "skills":
		if len(parts) != 2 {
			return ""
		}
		switch parts[1] {
		case "technical":
			return formatScoredList(result.Skills.Technical, limits.MaxSkillEntries)
		case "languages":
			return formatScoredList(result.Skills.Languages, limits.MaxSkillEntries)
		}
		return ""
	case "summary":
		return result.Summary
	}
	return ""
}

func formatExperience(jobs []types.JobEntry, maxEntries int) string {
	var lines []string
	for i, job := range jobs {
		if i >= maxEntries {
			break
		}
		company := job.Company
		if company == "" {
			company = "Unknown Company"
		}
		title := job.Title
		if title == "" {
			title = "Position"
		}
		lines = append(lines, fmt.Sprintf("%s ~ %s %s / %s", job.StartDate, job.EndDate, company, title))
	}
	return strings.Join(lines, "\n")
}

func formatEducation(entries []types.EducationEntry) string {
	var lines []string
	for _, edu := range entries {
		line := edu.School
		if edu.Degree != "" {
			line += " / " + edu.Degree
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatScoredList(values []types.ScoredValue, maxEntries int) string {
	var items []string
	for i, v := range values {
		if i >= maxEntries {
			break
		}
		items = append(items, v.Value)
	}
	return strings.Join(items, ", ")
}

// Apply fills a table-based template in place: every two-or-more-column row
// whose label resolves to a populated path gets the rendered value written
// into its second cell. It returns the number of cells written.
func Apply(result *types.ExtractionResult, doc *document.Document, limits Limits, log zerolog.Logger) (int, error) {
	mapped := 0

	for ti, table := range doc.Tables() {
		for ri, row := range table.Rows {
			if len(row) < 2 {
				continue
			}
			label := strings.TrimSpace(row[0])
			if label == "" {
				continue
			}

			path, ok := ResolvePath(label)
			if !ok {
				continue
			}
			value := ValueAt(result, path, limits)
			if value == "" {
				continue
			}

			if err := doc.SetCellText(ti, ri, 1, value); err != nil {
				return mapped, fmt.Errorf("failed to map %q: %w", label, err)
			}
			log.Debug().Str("label", label).Str("path", path).Msg("mapped template field")
			mapped++
		}
	}

	return mapped, nil
}
