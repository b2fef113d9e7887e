package model

import "time"

// DateLayout is the calendar-date format shared by the source term
// cells and the persisted file: month name, unpadded day, year.
const DateLayout = "January 2, 2006"

// President is one cleaned row of the dataset, keyed by the president's
// ordinal number. Nullable scalars are pointers; list fields keep source
// order and may hold null entries (election years with no election,
// list cells restored from an absent persisted value).
type President struct {
	Number        int        // Ordinal number, unique, not necessarily contiguous
	Name          *string    // Full name
	Birth         *int       // Birth year
	Death         *int       // Death year, nil if living
	TermStart     *time.Time // First day in office
	TermEnd       *time.Time // Last day in office, nil if incumbent
	Party         []*string  // Recognized party names, in source order
	Election      []*int     // Election years; nil entry means no election
	VicePresident []*string  // Names and vacancy descriptions, in source order
}

// Equal reports whether two rows match field by field, including list
// order and null positions.
func (p President) Equal(q President) bool {
	return p.Number == q.Number &&
		strEq(p.Name, q.Name) &&
		intEq(p.Birth, q.Birth) &&
		intEq(p.Death, q.Death) &&
		timeEq(p.TermStart, q.TermStart) &&
		timeEq(p.TermEnd, q.TermEnd) &&
		strListEq(p.Party, q.Party) &&
		intListEq(p.Election, q.Election) &&
		strListEq(p.VicePresident, q.VicePresident)
}

// TablesEqual reports whether two tables match row by row, in order.
func TablesEqual(a, b []President) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// RecognizedParties is the closed vocabulary of party names the party
// extractor accepts. Callers inject it so the extractor stays pure.
func RecognizedParties() []string {
	return []string{
		"Unaffiliated",
		"Federalist",
		"Democratic-Republican",
		"National Republican",
		"Democratic",
		"Whig",
		"National Union",
		"Republican",
	}
}

func strEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func intEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func timeEq(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func strListEq(a, b []*string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strEq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func intListEq(a, b []*int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !intEq(a[i], b[i]) {
			return false
		}
	}
	return true
}
