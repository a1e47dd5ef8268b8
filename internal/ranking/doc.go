// Package ranking cleans elective rating values and builds the
// rank-ordered course table: numeric coercion, 1-5 range filtering,
// wide-to-long reshaping, per-course aggregation and a three-key
// deterministic sort. Malformed cells are data quality noise, not errors;
// they are silently excluded and only surfaced as a diagnostic count.
package ranking
