package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"surveycli/internal/ranking"
)

// Figure geometry: 12x6 inches at 150 DPI.
const (
	chartWidth  = 1800
	chartHeight = 900
	chartDPI    = 150
)

// WriteRankingChart renders the elective ranking as a PNG bar chart:
// one bar per course in rank order, y-axis pinned to the 0-5 rating
// scale, x-axis labels rotated for readability.
func WriteRankingChart(outputPath string, rankings []ranking.CourseRanking) error {
	if len(rankings) == 0 {
		return fmt.Errorf("no rankings to chart")
	}

	bars := make([]chart.Value, 0, len(rankings))
	for _, row := range rankings {
		bars = append(bars, chart.Value{
			Label: row.Course,
			Value: row.AverageRating,
		})
	}

	graph := chart.BarChart{
		Title:    "Elective Course Ranking by Average Student Rating",
		Width:    chartWidth,
		Height:   chartHeight,
		DPI:      chartDPI,
		BarWidth: 60,
		XAxis: chart.Style{
			TextRotationDegrees: 30,
		},
		YAxis: chart.YAxis{
			Name: "Average Rating (1-5)",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: ranking.MaxRating,
			},
		},
		Bars: bars,
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}

	slog.Info("Saved ranking figure",
		slog.String("path", outputPath),
		slog.Int("bars", len(bars)))

	return nil
}
