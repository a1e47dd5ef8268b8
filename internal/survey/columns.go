package survey

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"
)

// ErrNoElectiveColumns is returned when no column label qualifies as an
// elective rating question.
var ErrNoElectiveColumns = errors.New("no elective rating columns identified")

// Elective rating questions carry the word "Rate" plus a course code like
// "ACC 6020" somewhere in the label. Matching is case-insensitive and the
// code pattern is a 3-letter subject code followed by the numeric course
// number, with an optional section suffix (e.g. "ACC 6020A").
var (
	courseCodeRe = regexp.MustCompile(`(?i)\b[a-z]{3}\s*\d+`)
	dashNameRe   = regexp.MustCompile(`(?i)-\s*([a-z]{3}\s*\d+[a-z]*\s+.+)$`)
	codeNameRe   = regexp.MustCompile(`(?i)\b([a-z]{3}\s*\d+[a-z]*\s+.+)$`)
)

// Column is one survey column identified as an elective rating question.
type Column struct {
	// Index is the column position in the loaded table.
	Index int
	// Label is the raw question text from the header row.
	Label string
	// Course is the short course name extracted from the label.
	Course string
}

// IsElectiveLabel reports whether a column label represents an elective
// rating question.
func IsElectiveLabel(label string) bool {
	if strings.TrimSpace(label) == "" {
		return false
	}
	return strings.Contains(strings.ToLower(label), "rate") && courseCodeRe.MatchString(label)
}

// ExtractCourseName converts a long survey column label into a short
// course name.
//
// Example input:
//
//	"Rate ACC 6020 Advanced Financial Application ... - ACC 6020 Advanced Financial Application"
//
// Example output:
//
//	"ACC 6020 Advanced Financial Application"
//
// Strategy: prefer the trailing "- <code> <title>" segment, then the first
// "<code> <title>" occurrence, and fall back to the trimmed label when
// neither matches. Internal whitespace runs are collapsed; the matched
// text keeps its original casing.
func ExtractCourseName(label string) string {
	if m := dashNameRe.FindStringSubmatch(label); m != nil {
		return collapseWhitespace(m[1])
	}
	if m := codeNameRe.FindStringSubmatch(label); m != nil {
		return collapseWhitespace(m[1])
	}
	return strings.TrimSpace(label)
}

// SelectElectiveColumns scans the table header for elective rating
// questions, preserving the original column order. Selection is
// deterministic: a label qualifies iff it contains "rate" and a course
// code pattern.
func SelectElectiveColumns(t *Table) ([]Column, error) {
	var columns []Column
	for i, label := range t.Columns {
		if !IsElectiveLabel(label) {
			continue
		}
		columns = append(columns, Column{
			Index:  i,
			Label:  label,
			Course: ExtractCourseName(label),
		})
	}

	if len(columns) == 0 {
		return nil, ErrNoElectiveColumns
	}

	slog.Info("Selected elective rating columns", slog.Int("count", len(columns)))
	return columns, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
