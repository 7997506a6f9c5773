// Package extraction implements the resume content extraction engine: a
// multi-pass scan of a document view that produces a confidence-scored
// ExtractionResult. Heuristics are lexicon- and regex-based, never
// statistical; results are best-effort and degrade via warnings.
package extraction

import "strings"

// Section is a labeled block category of a resume document.
type Section string

// Section categories recognized by the classifier.
const (
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionSummary    Section = "summary"
	SectionPersonal   Section = "personal"
)

// sectionSynonyms pairs each category with its bilingual heading synonyms.
// Declaration order is the tie breaker for synonyms that overlap across
// categories: the first category with a hit wins.
var sectionSynonyms = []struct {
	section  Section
	synonyms []string
}{
	{SectionExperience, []string{
		"experience", "work experience", "professional experience",
		"employment", "work history", "career history", "professional background",
		"경력", "경력사항", "상세경력사항", "직장경력", "근무경력",
	}},
	{SectionEducation, []string{
		"education", "academic background", "academic history",
		"educational background", "qualifications",
		"학력", "학력사항", "교육사항",
	}},
	{SectionSkills, []string{
		"skills", "technical skills", "core competencies", "expertise",
		"proficiencies", "competencies", "technical proficiencies",
		"핵심역량", "보유기술", "전문기술", "기술스택",
	}},
	{SectionSummary, []string{
		"summary", "professional summary", "profile", "objective",
		"career objective", "about me",
		"자기소개", "요약",
	}},
	{SectionPersonal, []string{
		"personal information", "contact", "contact information",
		"인적사항", "개인정보",
	}},
}

// ClassifySection decides whether a paragraph is a section heading.
// A synonym matches on exact text, on a "synonym:" prefix, or on a substring
// hit when the paragraph is emphasized, corroborating a heading.
func ClassifySection(text string, emphasized bool) (Section, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return "", false
	}

	for _, entry := range sectionSynonyms {
		for _, synonym := range entry.synonyms {
			if normalized == synonym || strings.HasPrefix(normalized, synonym+":") {
				return entry.section, true
			}
			if emphasized && strings.Contains(normalized, synonym) {
				return entry.section, true
			}
		}
	}
	return "", false
}
