package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"surveycli/internal/ranking"
)

// rankingHeader matches the column order of the ranking table.
var rankingHeader = []string{"rank", "course", "average_rating", "response_count"}

// WriteRankingCSV saves the rank-ordered elective table as a CSV file,
// header included, one row per course in rank order. The file is created
// fresh on every run; output is byte-identical for identical rankings.
func WriteRankingCSV(outputPath string, rankings []ranking.CourseRanking) error {
	if len(rankings) == 0 {
		return fmt.Errorf("no rankings to save")
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(rankingHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, row := range rankings {
		record := []string{
			strconv.Itoa(row.Rank),
			row.Course,
			formatAverage(row.AverageRating),
			strconv.Itoa(row.ResponseCount),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record for %s: %w", row.Course, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}

	slog.Info("Saved ranking table",
		slog.String("path", outputPath),
		slog.Int("courses", len(rankings)))

	return nil
}

// formatAverage renders an already-rounded average with no trailing
// zeros, so 4.5 stays "4.5" and 4.333 stays "4.333".
func formatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
