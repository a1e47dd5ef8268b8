package ranking

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"surveycli/internal/survey"
)

// ErrNoValidRatings is returned when every rating cell was missing,
// non-numeric or out of range after cleaning.
var ErrNoValidRatings = errors.New("no valid ratings after cleaning")

// Ratings are expected on a 1-5 scale; anything outside the closed
// interval is treated as missing rather than clamped.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Ranker turns the raw survey table into a rank-ordered elective list.
type Ranker struct {
	logger *slog.Logger
}

// NewRanker creates a ranker. A nil logger falls back to slog.Default.
func NewRanker(logger *slog.Logger) *Ranker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ranker{logger: logger}
}

// Rank cleans the selected rating columns, reshapes them into long-format
// records, aggregates per course and returns the sorted, ranked result.
func (r *Ranker) Rank(table *survey.Table, columns []survey.Column) (*Result, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("rank: %w", survey.ErrNoElectiveColumns)
	}

	records, dropped := r.reshape(table, columns)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %d cells dropped across %d columns", ErrNoValidRatings, dropped, len(columns))
	}

	r.logger.Info("Cleaned rating data",
		slog.Int("valid_records", len(records)),
		slog.Int("dropped_cells", dropped))

	rankings := r.aggregate(records)
	sortRankings(rankings)
	for i := range rankings {
		rankings[i].Rank = i + 1
		rankings[i].AverageRating = roundAverage(rankings[i].AverageRating)
	}

	r.logger.Info("Built elective ranking", slog.Int("courses", len(rankings)))

	return &Result{
		Rankings:     rankings,
		ValidRecords: len(records),
		DroppedCells: dropped,
	}, nil
}

// reshape flattens the respondent x column grid into one record per
// present, in-range rating. Blank cells are plain missing data; non-blank
// cells that fail coercion or the range filter are counted as dropped.
func (r *Ranker) reshape(table *survey.Table, columns []survey.Column) ([]Record, int) {
	var records []Record
	dropped := 0

	for row := range table.Rows {
		for _, col := range columns {
			cell := strings.TrimSpace(table.Cell(row, col.Index))
			if cell == "" {
				continue
			}

			rating, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				dropped++
				continue
			}
			if rating < MinRating || rating > MaxRating {
				dropped++
				continue
			}

			records = append(records, Record{Course: col.Course, Rating: rating})
		}
	}

	return records, dropped
}

// aggregate groups records by course and computes mean and count. Courses
// keep their first-seen order so the later stable sort stays deterministic
// when every sort key ties. Columns whose labels extract to the same
// course name merge here.
func (r *Ranker) aggregate(records []Record) []CourseRanking {
	type group struct {
		sum   float64
		count int
	}

	order := make([]string, 0)
	groups := make(map[string]*group)

	for _, rec := range records {
		g, ok := groups[rec.Course]
		if !ok {
			g = &group{}
			groups[rec.Course] = g
			order = append(order, rec.Course)
		}
		g.sum += rec.Rating
		g.count++
	}

	rankings := make([]CourseRanking, 0, len(order))
	for _, course := range order {
		g := groups[course]
		rankings = append(rankings, CourseRanking{
			Course:        course,
			AverageRating: g.sum / float64(g.count),
			ResponseCount: g.count,
		})
	}

	return rankings
}

// sortRankings orders courses by average rating descending, ties by
// response count descending, remaining ties by course name ascending.
// Sorting happens on the unrounded averages.
func sortRankings(rankings []CourseRanking) {
	sort.SliceStable(rankings, func(i, j int) bool {
		a, b := rankings[i], rankings[j]
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
		if a.ResponseCount != b.ResponseCount {
			return a.ResponseCount > b.ResponseCount
		}
		return a.Course < b.Course
	})
}

func roundAverage(v float64) float64 {
	return math.Round(v*1000) / 1000
}
