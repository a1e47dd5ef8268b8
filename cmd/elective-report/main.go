package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"surveycli/internal/config"
	"surveycli/internal/ranking"
	"surveycli/internal/report"
	"surveycli/internal/survey"
)

const totalSteps = 6

func main() {
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if err := run(paths); err != nil {
		slog.Error("Elective ranking run failed", "error", err)
		os.Exit(1)
	}
}

// run executes the report pipeline end to end: load, select, rank, then
// the three report writes. Every stage result feeds the next; any error
// aborts the run.
func run(paths *config.Paths) error {
	if err := paths.EnsureOutputDir(); err != nil {
		return err
	}

	banner(1, "Loading exit survey dataset")
	fmt.Printf("Data file path: %s\n", paths.SurveyFile)

	table, err := survey.Load(paths.SurveyFile)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded dataset shape: %d rows x %d columns\n", len(table.Rows), len(table.Columns))

	banner(2, "Selecting elective rating columns")
	columns, err := survey.SelectElectiveColumns(table)
	if err != nil {
		return fmt.Errorf("inspect the survey headers: %w", err)
	}
	fmt.Printf("Found %d elective rating columns:\n", len(columns))
	for _, col := range columns {
		fmt.Printf("  - %s\n", col.Course)
	}

	banner(3, "Cleaning and ranking numeric ratings (expected scale: 1 to 5)")
	result, err := ranking.NewRanker(slog.Default()).Rank(table, columns)
	if err != nil {
		return err
	}
	fmt.Printf("Long-format records with valid ratings: %d\n", result.ValidRecords)
	if result.DroppedCells > 0 {
		fmt.Printf("Cells excluded as non-numeric or out-of-range: %d\n", result.DroppedCells)
	}

	banner(4, "Saving ranking table")
	if err := report.WriteRankingCSV(paths.RankingCSV, result.Rankings); err != nil {
		return err
	}
	fmt.Printf("Saved ranking table to: %s\n", paths.RankingCSV)
	printTopRankings(result)

	banner(5, "Creating bar chart of average ratings")
	if err := report.WriteRankingChart(paths.RankingPNG, result.Rankings); err != nil {
		return err
	}
	fmt.Printf("Saved ranking figure to: %s\n", paths.RankingPNG)

	banner(6, "Writing run summary")
	stats := report.RunStats{
		InputFile:       filepath.Base(paths.SurveyFile),
		SurveyRows:      len(table.Rows),
		ElectiveColumns: len(columns),
		ValidRecords:    result.ValidRecords,
	}
	if err := report.WriteSummary(paths.SummaryTXT, stats, result.Rankings); err != nil {
		return err
	}
	fmt.Printf("Saved run summary to: %s\n", paths.SummaryTXT)

	color.Green("\nWorkflow complete. Outputs are ready in %s.", paths.OutputDir)
	return nil
}

func banner(step int, title string) {
	rule := strings.Repeat("=", 72)
	color.Cyan("\n%s", rule)
	color.Cyan("Step %d/%d: %s", step, totalSteps, title)
	color.Cyan("%s", rule)
}

// printTopRankings shows the leading courses on the console; the full
// table lives in the CSV output.
func printTopRankings(result *ranking.Result) {
	color.Yellow("\nTop ranked electives")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Course", "Average", "Responses"})
	for _, row := range result.Top(10) {
		table.Append([]string{
			strconv.Itoa(row.Rank),
			row.Course,
			strconv.FormatFloat(row.AverageRating, 'f', -1, 64),
			strconv.Itoa(row.ResponseCount),
		})
	}
	table.Render()
}
