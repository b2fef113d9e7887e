// Package extract turns raw table cells into structured values.
//
// Every extractor is a pure, total function over model.Cell: a missing
// cell passes through as the extractor's empty result, and a per-cell
// parse failure degrades to a null rather than an error. The cleaner
// composes these into the full table transformation.
package extract

import (
	"regexp"
	"strings"

	"github.com/jray-8/us-presidents-dataset/internal/model"
)

var (
	footnote   = regexp.MustCompile(`\[.*?\]`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// StripFootnotes removes bracketed footnote markers like [19] or [c]
// anywhere in the cell and trims the result. Missing cells pass through
// unchanged, and footnote-free text is a no-op.
func StripFootnotes(c model.Cell) model.Cell {
	if c.Missing {
		return c
	}
	return model.Text(strings.TrimSpace(footnote.ReplaceAllString(c.Value, "")))
}

// collapseSpace normalizes runs of ASCII whitespace to single spaces
// and trims the ends.
func collapseSpace(s string) string {
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}
