package survey

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"
)

// ErrMissingInput is returned when the survey workbook does not exist at
// the expected path.
var ErrMissingInput = errors.New("survey workbook not found")

// Qualtrics-style export layout:
//   - Row 1: short variable names (Q75, Q76_1, ...), ignored
//   - Row 2: human-readable question text, used as column labels
//   - Row 3: import metadata, skipped
//   - Row 4+: respondent data
const (
	headerRowIndex   = 1
	metadataRowIndex = 2
)

// Table is the raw loaded survey dataset. One row per respondent, one
// column per question, cells kept as strings exactly as exported. It is
// built once at load time and read-only afterwards.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Cell returns the value at the given row and column index. Short rows in
// the export are treated as trailing blank cells.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Load reads the exit-survey workbook and returns it as a Table. The first
// sheet is used; the header comes from row 2 and the import-metadata row
// below it is discarded. No cell validation happens here — malformed
// values are passed through for the ranking stage to deal with.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: expected workbook at %s, verify the file exists in data/", ErrMissingInput, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	table := &Table{}
	if len(rows) > headerRowIndex {
		table.Columns = rows[headerRowIndex]
	}
	if len(rows) > metadataRowIndex+1 {
		table.Rows = rows[metadataRowIndex+1:]
	}

	slog.Info("Loaded survey dataset",
		slog.String("sheet", sheet),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Columns)))

	return table, nil
}
