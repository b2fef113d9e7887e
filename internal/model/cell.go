package model

// Cell is a single raw table cell: either text or missing.
// Extractors pass missing cells through untouched, so "no data" flows
// from the scraped table all the way to the cleaner without special cases.
type Cell struct {
	Value   string
	Missing bool
}

// Text creates a cell holding the given text.
func Text(s string) Cell {
	return Cell{Value: s}
}

// MissingCell is the absent-value sentinel.
var MissingCell = Cell{Missing: true}

// RawRow is one scraped table row as free-text cells.
type RawRow []Cell

// RawTable is the unprocessed tabular data: one row per president,
// fixed-width rows, cells as free text or missing.
type RawTable struct {
	Header []string
	Rows   []RawRow
}
