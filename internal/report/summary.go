package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"surveycli/internal/ranking"
)

// topCourses is how many ranked electives the summary lists.
const topCourses = 5

// RunStats is the run metadata reported in the summary file.
type RunStats struct {
	// InputFile is the workbook file name (base name, not the full path).
	InputFile string
	// SurveyRows is the number of respondent rows loaded.
	SurveyRows int
	// ElectiveColumns is the number of rating columns used.
	ElectiveColumns int
	// ValidRecords is the number of ratings that entered the aggregation.
	ValidRecords int
}

// WriteSummary saves the plain-text run summary: dataset identification,
// run counts and the top 5 electives by average rating. Content depends
// only on the input data, so repeated runs produce identical bytes.
func WriteSummary(outputPath string, stats RunStats, rankings []ranking.CourseRanking) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "Elective Course Ranking Run Summary\n")
	fmt.Fprintf(file, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(file, "Input dataset: %s\n", stats.InputFile)
	fmt.Fprintf(file, "Total survey rows loaded: %d\n", stats.SurveyRows)
	fmt.Fprintf(file, "Elective rating columns used: %d\n", stats.ElectiveColumns)
	fmt.Fprintf(file, "Valid rating records analyzed: %d\n", stats.ValidRecords)
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "Top %d electives by average rating:\n", topCourses)

	top := rankings
	if len(top) > topCourses {
		top = top[:topCourses]
	}
	for _, row := range top {
		fmt.Fprintf(file, "  #%d: %s (avg=%s, n=%d)\n",
			row.Rank, row.Course, formatAverage(row.AverageRating), row.ResponseCount)
	}

	slog.Info("Saved run summary", slog.String("path", outputPath))

	return nil
}
