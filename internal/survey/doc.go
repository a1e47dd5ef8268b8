// Package survey loads the graduate exit-survey workbook and identifies
// the elective-course rating columns within it.
//
// The loader reads the Qualtrics-style export (variable-name row, question
// text row, import-metadata row, then responses) into a raw string Table.
// Column classification and course-name extraction are pure functions over
// the header labels so the heuristics stay independently testable.
package survey
