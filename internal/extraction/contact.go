package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-formatter/internal/types"
)

var (
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{2,3}\)?[-.\s]?\d{3,4}[-.\s]?\d{4}`)
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	urlRe   = regexp.MustCompile(`https?://[^\s]+`)

	// nameStopWords guard against misreading contact labels as a name.
	nameStopWords = []string{"phone", "email", "address"}
)

// extractContactInfo mines one line of loose text for phone, email, and name
// candidates. Within a run of passes the first candidate per field wins; the
// resolver arbitrates across sources afterwards, so nothing here overwrites
// an already-recorded field.
func (a *accumulator) extractContactInfo(text, source string) {
	if phone := phoneRe.FindString(text); phone != "" && !a.hasCandidate(types.FieldPhone) {
		a.addCandidate(types.FieldPhone, types.ScoredValue{Value: phone, Confidence: 0.85, Source: source})
	}

	if email := emailRe.FindString(text); email != "" && !a.hasCandidate(types.FieldEmail) {
		a.addCandidate(types.FieldEmail, types.ScoredValue{Value: email, Confidence: 0.9, Source: source})
	}

	// Names are only trusted near the top of a document: headers and
	// unlabeled body lines before any section heading.
	if source != types.SourceHeader && source != types.SourceBody {
		return
	}
	if a.hasCandidate(types.FieldName) {
		return
	}
	if looksLikeName(text) {
		a.addCandidate(types.FieldName, types.ScoredValue{Value: text, Confidence: 0.7, Source: source})
	}
}

// looksLikeName reports whether a line plausibly is a person's name:
// 2-4 whitespace-separated tokens, no digits, no contact-label words.
func looksLikeName(text string) bool {
	words := strings.Fields(text)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, r := range text {
		if unicode.IsDigit(r) {
			return false
		}
	}
	lower := strings.ToLower(text)
	for _, stop := range nameStopWords {
		if strings.Contains(lower, stop) {
			return false
		}
	}
	return true
}
