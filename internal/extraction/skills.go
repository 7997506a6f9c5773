package extraction

import (
	"github.com/jonathan/resume-formatter/internal/types"
)

var (
	technicalKeywords = []string{"python", "java", "framework", "aws", "pytorch", "개발"}
	languageKeywords  = []string{"english", "korean", "japanese", "chinese", "영어", "한국어"}
)

// segmentSkills classifies skills-section lines into technical skills and
// spoken languages by keyword. A line can land in both groups.
func segmentSkills(lines []string) types.Skills {
	skills := types.Skills{
		Technical: []types.ScoredValue{},
		Languages: []types.ScoredValue{},
	}

	for _, line := range lines {
		if containsAnyFold(line, technicalKeywords) {
			clean := bulletRe.ReplaceAllString(line, "")
			skills.Technical = append(skills.Technical, types.ScoredValue{
				Value:      clean,
				Confidence: 0.8,
				Source:     types.SourceBody,
			})
		}

		if containsAnyFold(line, languageKeywords) {
			skills.Languages = append(skills.Languages, types.ScoredValue{
				Value:      line,
				Confidence: 0.8,
				Source:     types.SourceBody,
			})
		}
	}

	return skills
}
