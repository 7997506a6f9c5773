package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentEducation(t *testing.T) {
	lines := []string{
		"서울대학교 컴퓨터공학 학사 2011.03 ~ 2015.02, GPA 3.8/4.5",
		"Stanford University",
		"online bootcamp certificate",
	}

	entries := segmentEducation(lines)

	require.Len(t, entries, 2, "lines without a school keyword are skipped")

	first := entries[0]
	assert.Contains(t, first.School, "서울대학교")
	assert.Equal(t, "학사", first.Degree)
	assert.Equal(t, "3.8/4.5", first.GPA)
	assert.Equal(t, "2011.03", first.StartDate)
	assert.Equal(t, "2015.02", first.EndDate)
	assert.Equal(t, 0.75, first.Confidence)

	second := entries[1]
	assert.Equal(t, "Stanford University", second.School)
	assert.Empty(t, second.Degree)
	assert.Empty(t, second.GPA)
	assert.Empty(t, second.StartDate)
	assert.Equal(t, 0.75, second.Confidence)
}

func TestSegmentEducationDegreeVariants(t *testing.T) {
	tests := []struct {
		line   string
		degree string
	}{
		{"MIT institute Master program", "Master"},
		{"카이스트 대학원 박사", "박사"},
		{"Boston College B.S. in Math", "B.S."},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			entries := segmentEducation([]string{tt.line})
			require.Len(t, entries, 1)
			assert.Equal(t, tt.degree, entries[0].Degree)
		})
	}
}

func TestSegmentEducationEmptyInput(t *testing.T) {
	assert.Empty(t, segmentEducation(nil))
	assert.Empty(t, segmentEducation([]string{"no school mentioned here"}))
}
