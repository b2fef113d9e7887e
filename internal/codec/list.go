// Package codec implements the persisted dataset format: the pipe list
// encoding and the CSV snapshot round trip.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jray-8/us-presidents-dataset/internal/model"
)

const (
	// NullToken marks an absent scalar or list in the persisted file.
	NullToken = "NA"

	// ListDelim joins list elements inside one cell.
	ListDelim = " | "
)

// EncodeList encodes an ordered list of nullable strings into one flat
// cell. An empty or absent list encodes to the null marker, not an
// empty string; null elements render as the null token.
func EncodeList(items []*string) model.Cell {
	if len(items) == 0 {
		return model.MissingCell
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			parts = append(parts, NullToken)
		} else {
			parts = append(parts, *item)
		}
	}
	return model.Text(strings.Join(parts, ListDelim))
}

// DecodeList is the inverse of EncodeList, with one documented
// asymmetry: the null marker decodes to a single-element list holding
// one null, not to an empty list. The persisted format depends on this
// behavior, so it is preserved rather than corrected.
func DecodeList(c model.Cell) []*string {
	if c.Missing {
		return []*string{nil}
	}
	var out []*string
	for _, piece := range strings.Split(c.Value, "|") {
		piece = strings.TrimSpace(piece)
		if piece == NullToken {
			out = append(out, nil)
		} else {
			out = append(out, &piece)
		}
	}
	return out
}

// EncodeYears encodes a nullable integer list (election years) the same
// way EncodeList does.
func EncodeYears(items []*int) model.Cell {
	strs := make([]*string, 0, len(items))
	for _, item := range items {
		if item == nil {
			strs = append(strs, nil)
		} else {
			s := strconv.Itoa(*item)
			strs = append(strs, &s)
		}
	}
	return EncodeList(strs)
}

// DecodeYears decodes a year list cell, re-coercing each non-null
// element to an integer. A non-null element that is not an integer is
// malformed input, not a degradable field.
func DecodeYears(c model.Cell) ([]*int, error) {
	var out []*int
	for _, item := range DecodeList(c) {
		if item == nil {
			out = append(out, nil)
			continue
		}
		n, err := strconv.Atoi(*item)
		if err != nil {
			return nil, fmt.Errorf("year list element %q: %w", *item, err)
		}
		out = append(out, &n)
	}
	return out, nil
}
