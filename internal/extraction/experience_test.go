package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-formatter/internal/types"
)

func TestSegmentExperienceTwoLineKoreanLayout(t *testing.T) {
	lines := []string{
		"2023.07 - Present",
		"Acme Corp - Senior Engineer",
		"- Built the ingestion pipeline",
	}

	jobs := segmentExperience(lines)

	require.Len(t, jobs, 1)
	assert.Equal(t, types.JobEntry{
		Company:          "Acme Corp",
		Title:            "Senior Engineer",
		StartDate:        "2023.07",
		EndDate:          "Present",
		Confidence:       0.9,
		Responsibilities: []string{"Built the ingestion pipeline"},
	}, jobs[0])
}

func TestSegmentExperienceTwoLineLayoutNeverSplitsIntoTwoEntries(t *testing.T) {
	lines := []string{
		"2020년 3월 ~ 2022년 11월",
		"주식회사 한빛, AI연구소 - 연구원",
		"추천 모델 개발",
		"2023년 1월 - 현재",
		"네오테크 - 개발자",
	}

	jobs := segmentExperience(lines)

	require.Len(t, jobs, 2)
	assert.Equal(t, "주식회사 한빛, AI연구소", jobs[0].Company)
	assert.Equal(t, "연구원", jobs[0].Title)
	assert.Equal(t, "2020.03", jobs[0].StartDate)
	assert.Equal(t, "2022.11", jobs[0].EndDate)
	assert.Equal(t, 0.9, jobs[0].Confidence)
	assert.Equal(t, []string{"추천 모델 개발"}, jobs[0].Responsibilities)

	assert.Equal(t, "네오테크", jobs[1].Company)
	assert.Equal(t, "개발자", jobs[1].Title)
	assert.Equal(t, "2023.01", jobs[1].StartDate)
	assert.Equal(t, "Present", jobs[1].EndDate)
}

func TestSegmentExperiencePipeDelimitedHeader(t *testing.T) {
	lines := []string{
		"Acme Corp | Senior Engineer | 2020.02 ~ 2023.08",
		"• Led a team of four",
		"* Shipped the billing rewrite",
	}

	jobs := segmentExperience(lines)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme Corp", jobs[0].Company)
	assert.Equal(t, "Senior Engineer", jobs[0].Title)
	assert.Equal(t, "2020.02", jobs[0].StartDate)
	assert.Equal(t, "2023.08", jobs[0].EndDate)
	assert.Equal(t, 0.85, jobs[0].Confidence)
	assert.Equal(t, []string{"Led a team of four", "Shipped the billing rewrite"}, jobs[0].Responsibilities)
}

func TestSegmentExperienceSingleLineHeaderWithHyphens(t *testing.T) {
	lines := []string{
		"Globex Inc. - Staff Engineer 2019.03 ~ 2021.06",
		"Maintained the data platform",
	}

	jobs := segmentExperience(lines)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Globex Inc.", jobs[0].Company)
	assert.Equal(t, "Staff Engineer", jobs[0].Title)
	assert.Equal(t, "2019.03", jobs[0].StartDate)
	assert.Equal(t, "2021.06", jobs[0].EndDate)
	assert.Equal(t, 0.7, jobs[0].Confidence)
}

func TestSegmentExperienceProjectsNestUnderJob(t *testing.T) {
	lines := []string{
		"Acme Corp | Engineer | 2020.01 ~ 2023.01",
		"General platform work",
		"[결제 시스템 개선 프로젝트]",
		"- 정산 파이프라인 재설계",
		"- 장애율 30% 감소",
		"[검색 고도화]",
		"- 랭킹 모델 적용",
	}

	jobs := segmentExperience(lines)

	require.Len(t, jobs, 1)
	job := jobs[0]
	assert.Equal(t, []string{"General platform work"}, job.Responsibilities)
	require.Len(t, job.Projects, 2)
	assert.Equal(t, "결제 시스템 개선 프로젝트", job.Projects[0].Name)
	assert.Equal(t, []string{"정산 파이프라인 재설계", "장애율 30% 감소"}, job.Projects[0].Responsibilities)
	assert.Equal(t, "검색 고도화", job.Projects[1].Name)
	assert.Equal(t, []string{"랭킹 모델 적용"}, job.Projects[1].Responsibilities)
}

func TestSegmentExperienceShortDateLineOpensProject(t *testing.T) {
	lines := []string{
		"Acme Corp | Engineer | 2020.01 ~ 2023.01",
		"사내 추천 과제 2021.03 ~ 2021.09",
		"- 모델 서빙 구축",
	}

	jobs := segmentExperience(lines)

	require.Len(t, jobs, 1)
	require.Len(t, jobs[0].Projects, 1)
	assert.Equal(t, "사내 추천 과제 2021.03 ~ 2021.09", jobs[0].Projects[0].Name)
	assert.Equal(t, []string{"모델 서빙 구축"}, jobs[0].Projects[0].Responsibilities)
}

func TestSegmentExperienceContentBeforeAnyJobIsDropped(t *testing.T) {
	lines := []string{
		"Responsible for many things",
		"Acme Corp | Engineer | 2020.01 ~ 2021.01",
	}

	jobs := segmentExperience(lines)

	require.Len(t, jobs, 1)
	assert.Empty(t, jobs[0].Responsibilities)
}

func TestSegmentExperienceOrphanDateLineIsConsumed(t *testing.T) {
	// A standalone date line whose following line is not a company line
	// stays in the pending buffer and attaches to nothing.
	lines := []string{
		"2020.01 ~ 2021.01",
		"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
	}

	jobs := segmentExperience(lines)
	assert.Empty(t, jobs)
}

func TestExperienceStateStepTransitions(t *testing.T) {
	t.Run("job header closes previous job and project", func(t *testing.T) {
		state := &experienceState{}
		state.step("Acme Corp | Engineer | 2020.01 ~ 2021.01", "", false)
		state.step("[Search project]", "", false)
		state.step("- tuned ranking", "", false)
		state.step("Globex Company | Manager | 2021.02 ~ 2022.01", "", false)

		require.Len(t, state.entries, 1)
		closed := state.entries[0]
		assert.Equal(t, "Acme Corp", closed.Company)
		require.Len(t, closed.Projects, 1)
		assert.Equal(t, "Search project", closed.Projects[0].Name)
		require.NotNil(t, state.job)
		assert.Equal(t, "Globex Company", state.job.Company)
		assert.Nil(t, state.project)
	})

	t.Run("two-line layout consumes both lines", func(t *testing.T) {
		state := &experienceState{}
		consumed := state.step("2023.07 - Present", "Acme Corp - Senior Engineer", true)

		assert.Equal(t, 2, consumed)
		require.NotNil(t, state.job)
		assert.Equal(t, "Acme Corp", state.job.Company)
		assert.Equal(t, 0.9, state.job.Confidence)
		assert.Nil(t, state.pendingDates, "pending buffer is cleared on use")
	})

	t.Run("finish flushes open job and project", func(t *testing.T) {
		state := &experienceState{}
		state.step("Acme Corp | Engineer | 2020.01 ~ 2021.01", "", false)
		state.step("[Migration]", "", false)
		state.finish()

		require.Len(t, state.entries, 1)
		require.Len(t, state.entries[0].Projects, 1)
		assert.Nil(t, state.job)
		assert.Nil(t, state.project)
	})
}

func TestParseCompanyTitle(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.JobEntry
	}{
		{"dash separator", "Acme Corp - Senior Engineer",
			types.JobEntry{Company: "Acme Corp", Title: "Senior Engineer", Confidence: 0.85}},
		{"dash wins over comma", "주식회사 한빛, AI연구소 - 연구원",
			types.JobEntry{Company: "주식회사 한빛, AI연구소", Title: "연구원", Confidence: 0.85}},
		{"comma separator", "주식회사 한빛, 머신러닝 연구원",
			types.JobEntry{Company: "주식회사 한빛", Title: "머신러닝 연구원", Confidence: 0.85}},
		{"bare company", "네오테크",
			types.JobEntry{Company: "네오테크", Confidence: 0.85}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCompanyTitle(tt.line))
		})
	}
}

func TestLooksLikeJobHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Acme Corp | Engineer | 2020.01 ~ 2021.01", true},
		{"a | b", false},
		{"Globex Inc. - Staff Engineer 2019.03 ~ 2021.06", true},
		{"주식회사 한빛 2018 입사", true},
		{"팀장 승진 2019", true},
		{"Built the pipeline in 2020", false},
		{"Senior Engineer", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeJobHeader(tt.line))
		})
	}
}

func TestLooksLikeCompanyLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Acme Corp - Senior Engineer", true},
		{"주식회사 한빛, AI연구소 - 연구원", true},
		{"just some words here", false},
		{"엔지니어", true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeCompanyLine(tt.line))
		})
	}
}
