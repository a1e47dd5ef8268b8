// Package report persists the elective ranking as its three artifacts:
// the CSV table, the PNG bar chart and the plain-text run summary. The
// three writes are independent; a failure in one does not undo another,
// and any failure is fatal to the run.
package report
