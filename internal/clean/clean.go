// Package clean derives the typed presidents table from a raw row-set.
package clean

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jray-8/us-presidents-dataset/internal/extract"
	"github.com/jray-8/us-presidents-dataset/internal/model"
)

// Raw column positions in the scraped table. Positions 1 (portrait)
// and 4 (duplicate party marker) carry nothing we keep. This layout is
// an assumption about the source, not something the cleaner can guess
// around: anything else is a structural error.
const (
	rawWidth         = 8
	colNumber        = 0
	colNameBirth     = 2
	colTerm          = 3
	colParty         = 5
	colElection      = 6
	colVicePresident = 7
)

// Cleaner turns raw rows into typed President rows.
type Cleaner struct {
	parties *extract.PartyExtractor
}

// New creates a Cleaner with the given closed party vocabulary.
func New(recognizedParties []string) *Cleaner {
	return &Cleaner{parties: extract.NewPartyExtractor(recognizedParties)}
}

// Clean produces the typed table from a raw row-set. Per-field parse
// failures degrade to null or empty-list values; a row that does not
// match the expected column layout aborts with a structural error
// naming the row.
func (c *Cleaner) Clean(raw model.RawTable) ([]model.President, error) {
	table := make([]model.President, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		if len(row) != rawWidth {
			return nil, fmt.Errorf("row %d: expected %d raw columns, got %d", i, rawWidth, len(row))
		}

		p, err := c.cleanRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		table = append(table, p)
	}
	return table, nil
}

func (c *Cleaner) cleanRow(row model.RawRow) (model.President, error) {
	var p model.President

	num := extract.StripFootnotes(row[colNumber])
	if num.Missing {
		return p, fmt.Errorf("missing president number")
	}
	n, err := strconv.Atoi(num.Value)
	if err != nil {
		return p, fmt.Errorf("president number %q: %w", num.Value, err)
	}
	p.Number = n

	nameCell := extract.StripFootnotes(row[colNameBirth])
	termCell := extract.StripFootnotes(row[colTerm])
	partyCell := extract.StripFootnotes(row[colParty])
	vpCell := extract.StripFootnotes(row[colVicePresident])

	p.Name, p.Birth, p.Death = extract.SplitNameBirthDeath(nameCell)

	start, end := extract.SplitTerm(termCell)
	p.TermStart = parseDate(start)
	p.TermEnd = parseDate(end)

	// List fields: absence normalizes to an empty list, never null.
	p.Party = strList(c.parties.Extract(partyCell))
	p.Election = intList(extract.ExtractElections(row[colElection]))
	p.VicePresident = strList(extract.ExtractVicePresidents(vpCell))

	return p, nil
}

// parseDate coerces term text to a calendar date. Unparseable text
// (including the nil left by the term splitter) becomes null.
func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(model.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func strList(items []string) []*string {
	out := make([]*string, 0, len(items))
	for _, item := range items {
		out = append(out, &item)
	}
	return out
}

func intList(items []*int) []*int {
	if items == nil {
		return []*int{}
	}
	return items
}
