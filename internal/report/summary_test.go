package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveycli/internal/ranking"
)

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run_summary.txt")
	stats := RunStats{
		InputFile:       "exit_survey_2024.xlsx",
		SurveyRows:      42,
		ElectiveColumns: 3,
		ValidRecords:    31,
	}

	require.NoError(t, WriteSummary(path, stats, sampleRankings()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "Elective Course Ranking Run Summary")
	assert.Contains(t, text, "Input dataset: exit_survey_2024.xlsx")
	assert.Contains(t, text, "Total survey rows loaded: 42")
	assert.Contains(t, text, "Elective rating columns used: 3")
	assert.Contains(t, text, "Valid rating records analyzed: 31")
	assert.Contains(t, text, "  #1: ACC 6020 Advanced Financial Application (avg=4.333, n=12)")
	assert.Contains(t, text, "  #3: ACC 6050 Audit Analytics (avg=4, n=10)")
}

func TestWriteSummaryListsAtMostFiveCourses(t *testing.T) {
	rankings := make([]ranking.CourseRanking, 0, 8)
	for i := 0; i < 8; i++ {
		rankings = append(rankings, ranking.CourseRanking{
			Rank:          i + 1,
			Course:        "ACC 600" + string(rune('0'+i)),
			AverageRating: 4,
			ResponseCount: 5,
		})
	}

	path := filepath.Join(t.TempDir(), "run_summary.txt")
	require.NoError(t, WriteSummary(path, RunStats{}, rankings))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 5, strings.Count(string(content), "  #"))
	assert.NotContains(t, string(content), "#6:")
}

func TestWriteSummaryIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run_summary.txt")
	stats := RunStats{InputFile: "exit_survey_2024.xlsx", SurveyRows: 10}

	require.NoError(t, WriteSummary(path, stats, sampleRankings()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, WriteSummary(path, stats, sampleRankings()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
