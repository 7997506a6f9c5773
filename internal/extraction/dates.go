package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-formatter/internal/types"
)

// dateMatcher is one format family of the date range parser. Matchers are
// tried in fixed priority order; the first match wins and the remaining
// families are not attempted.
type dateMatcher func(text string) (types.DateRange, bool)

// dateMatchers lists the supported format families in priority order:
// Korean 년/월 notation, dot notation, Western month names.
var dateMatchers = []dateMatcher{
	matchKoreanRange,
	matchDotRange,
	matchWesternRange,
}

var (
	koreanRangeRe    = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월?\s*[-~]\s*(현재|재직중|Present|\d{4}년\s*\d{1,2}월?)`)
	koreanEndRe      = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월?`)
	dotRangeRe       = regexp.MustCompile(`(\d{4})\.(\d{2})\s*[-~]\s*(현재|재직중|Present|\d{4}\.\d{2})`)
	westernRangeRe   = regexp.MustCompile(`(\w+)\s+(\d{4})\s*[-–]\s*(Present|Current|\w+\s+\d{4})`)
	westernEndRe     = regexp.MustCompile(`(\w+)\s+(\d{4})`)
	openEndedMarkers = map[string]bool{"현재": true, "재직중": true, "Present": true, "Current": true}
)

// monthNumbers maps English month prefixes to two-digit numbers. Unrecognized
// abbreviations fall back to "01"; this is a deliberate lossy default.
var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// ParseDateRange extracts a start/end pair from free text. Both ends are
// normalized to "YYYY.MM"; every open-ended marker becomes the Present
// sentinel. Returns false when no supported family matches.
func ParseDateRange(text string) (types.DateRange, bool) {
	for _, match := range dateMatchers {
		if dr, ok := match(text); ok {
			return dr, true
		}
	}
	return types.DateRange{}, false
}

func matchKoreanRange(text string) (types.DateRange, bool) {
	m := koreanRangeRe.FindStringSubmatch(text)
	if m == nil {
		return types.DateRange{}, false
	}

	dr := types.DateRange{Start: m[1] + "." + padMonth(m[2])}
	if openEndedMarkers[m[3]] {
		dr.End = types.Present
	} else if end := koreanEndRe.FindStringSubmatch(m[3]); end != nil {
		dr.End = end[1] + "." + padMonth(end[2])
	}
	return dr, true
}

func matchDotRange(text string) (types.DateRange, bool) {
	m := dotRangeRe.FindStringSubmatch(text)
	if m == nil {
		return types.DateRange{}, false
	}

	dr := types.DateRange{Start: m[1] + "." + m[2]}
	if openEndedMarkers[m[3]] {
		dr.End = types.Present
	} else {
		dr.End = m[3]
	}
	return dr, true
}

func matchWesternRange(text string) (types.DateRange, bool) {
	m := westernRangeRe.FindStringSubmatch(text)
	if m == nil {
		return types.DateRange{}, false
	}

	dr := types.DateRange{Start: m[2] + "." + monthNumber(m[1])}
	if openEndedMarkers[m[3]] {
		dr.End = types.Present
	} else if end := westernEndRe.FindStringSubmatch(m[3]); end != nil {
		dr.End = end[2] + "." + monthNumber(end[1])
	}
	return dr, true
}

func monthNumber(name string) string {
	key := strings.ToLower(name)
	if len(key) > 3 {
		key = key[:3]
	}
	if num, ok := monthNumbers[key]; ok {
		return num
	}
	return "01"
}

func padMonth(m string) string {
	if len(m) == 1 {
		return "0" + m
	}
	return m
}
