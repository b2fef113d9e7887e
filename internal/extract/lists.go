package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jray-8/us-presidents-dataset/internal/model"
)

var vacancy = regexp.MustCompile(`(?i)Vacant throughout presidency|Vacant.*?\d{4}`)

// ExtractVicePresidents splits the cell into alternating name and
// vacancy-description segments, keeping both as list elements in source
// order. Non-breaking spaces are normalized and empty segments dropped.
func ExtractVicePresidents(c model.Cell) []string {
	if c.Missing {
		return nil
	}

	text := strings.ReplaceAll(c.Value, " ", " ")
	text = collapseSpace(text)

	var out []string
	prev := 0
	for _, loc := range vacancy.FindAllStringIndex(text, -1) {
		if seg := strings.TrimSpace(text[prev:loc[0]]); seg != "" {
			out = append(out, seg)
		}
		out = append(out, strings.TrimSpace(text[loc[0]:loc[1]]))
		prev = loc[1]
	}
	if seg := strings.TrimSpace(text[prev:]); seg != "" {
		out = append(out, seg)
	}
	return out
}

// ExtractElections parses election text into a list of years. A year
// range like 1788–89 collapses to its start year. A token that does not
// parse becomes an explicit null entry so positions are preserved.
func ExtractElections(c model.Cell) []*int {
	if c.Missing {
		return nil
	}

	var years []*int
	for _, tok := range strings.Fields(c.Value) {
		if i := strings.Index(tok, "–"); i >= 0 {
			tok = tok[:i]
		}
		if n, err := strconv.Atoi(tok); err == nil {
			years = append(years, &n)
		} else {
			years = append(years, nil)
		}
	}
	return years
}
