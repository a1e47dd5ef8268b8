package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"surveycli/internal/config"
	"surveycli/internal/ranking"
	"surveycli/internal/survey"
)

// writeSurveyWorkbook creates base/data/exit_survey_2024.xlsx with the
// given rows and returns the path set rooted at base.
func writeSurveyWorkbook(t *testing.T, rows [][]interface{}) *config.Paths {
	t.Helper()

	paths := config.NewPaths(t.TempDir())
	require.NoError(t, os.MkdirAll(paths.DataDir, 0755))

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(paths.SurveyFile))

	return paths
}

func surveyRows() [][]interface{} {
	return [][]interface{}{
		{"Q1", "Q75_1", "Q75_2", "Q80"},
		{
			"What is your program?",
			"Rate ACC 6020 Advanced Financial Application - ACC 6020 Advanced Financial Application",
			"Rate ACC 6040 Taxation of Entities - ACC 6040 Taxation of Entities",
			"Any additional comments?",
		},
		{`{"ImportId":"QID1"}`, `{"ImportId":"QID75_1"}`, `{"ImportId":"QID75_2"}`, `{"ImportId":"QID80"}`},
		{"MSA", "5", "4", "Great program"},
		{"MSA", "4", "", ""},
		{"MSA", "6", "3", "n/a"}, // out-of-range rating is dropped
		{"MSA", "abc", "5", ""},  // non-numeric rating is dropped
	}
}

func TestRunEndToEnd(t *testing.T) {
	paths := writeSurveyWorkbook(t, surveyRows())

	require.NoError(t, run(paths))

	content, err := os.ReadFile(paths.RankingCSV)
	require.NoError(t, err)

	// ACC 6020: ratings 5,4 -> avg 4.5 n=2; ACC 6040: 4,3,5 -> avg 4 n=3
	want := "rank,course,average_rating,response_count\n" +
		"1,ACC 6020 Advanced Financial Application,4.5,2\n" +
		"2,ACC 6040 Taxation of Entities,4,3\n"
	assert.Equal(t, want, string(content))

	summary, err := os.ReadFile(paths.SummaryTXT)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Input dataset: exit_survey_2024.xlsx")
	assert.Contains(t, string(summary), "Total survey rows loaded: 4")
	assert.Contains(t, string(summary), "Elective rating columns used: 2")
	assert.Contains(t, string(summary), "Valid rating records analyzed: 5")
	assert.Contains(t, string(summary), "  #1: ACC 6020 Advanced Financial Application (avg=4.5, n=2)")

	assert.FileExists(t, paths.RankingPNG)
}

func TestRunIsIdempotent(t *testing.T) {
	paths := writeSurveyWorkbook(t, surveyRows())

	require.NoError(t, run(paths))
	firstCSV, err := os.ReadFile(paths.RankingCSV)
	require.NoError(t, err)
	firstTXT, err := os.ReadFile(paths.SummaryTXT)
	require.NoError(t, err)

	require.NoError(t, run(paths))
	secondCSV, err := os.ReadFile(paths.RankingCSV)
	require.NoError(t, err)
	secondTXT, err := os.ReadFile(paths.SummaryTXT)
	require.NoError(t, err)

	assert.Equal(t, firstCSV, secondCSV)
	assert.Equal(t, firstTXT, secondTXT)
}

func TestRunMissingInput(t *testing.T) {
	paths := config.NewPaths(t.TempDir())

	err := run(paths)

	require.Error(t, err)
	assert.ErrorIs(t, err, survey.ErrMissingInput)
	assert.Contains(t, err.Error(), paths.SurveyFile)
	assert.NoFileExists(t, paths.RankingCSV)
}

func TestRunNoElectiveColumns(t *testing.T) {
	paths := writeSurveyWorkbook(t, [][]interface{}{
		{"Q1", "Q2"},
		{"What is your program?", "Any additional comments?"},
		{`{"ImportId":"QID1"}`, `{"ImportId":"QID2"}`},
		{"MSA", "Great program"},
	})

	err := run(paths)

	require.Error(t, err)
	assert.ErrorIs(t, err, survey.ErrNoElectiveColumns)
}

func TestRunNoValidRatings(t *testing.T) {
	paths := writeSurveyWorkbook(t, [][]interface{}{
		{"Q1", "Q75_1"},
		{"What is your program?", "Rate ACC 6020 Advanced Financial Application"},
		{`{"ImportId":"QID1"}`, `{"ImportId":"QID75_1"}`},
		{"MSA", "not applicable"},
		{"MSA", "0"},
		{"MSA", "9"},
	})

	err := run(paths)

	require.Error(t, err)
	assert.ErrorIs(t, err, ranking.ErrNoValidRatings)
}
