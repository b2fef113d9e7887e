package pipeline

import (
	"errors"
	"testing"
)

func TestParseFirstTable_Basic(t *testing.T) {
	src := `
	<html><body>
	<table class="wikitable">
		<tr><th>No.</th><th>Portrait</th><th>Name</th></tr>
		<tr><td>1</td><td><img src="gw.jpg"/></td><td><b>George Washington</b> (1732–1799)<sup>[18]</sup></td></tr>
		<tr><td>2</td><td><img src="ja.jpg"/></td><td>John Adams (1735–1826)</td></tr>
	</table>
	</body></html>`

	raw, err := ParseFirstTable(src)
	if err != nil {
		t.Fatalf("ParseFirstTable failed: %v", err)
	}

	if len(raw.Header) != 3 || raw.Header[0] != "No." || raw.Header[2] != "Name" {
		t.Errorf("header = %v", raw.Header)
	}
	if len(raw.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(raw.Rows))
	}
	if got := raw.Rows[0][2].Value; got != "George Washington (1732–1799) [18]" {
		t.Errorf("cell text = %q", got)
	}
	if got := raw.Rows[1][0].Value; got != "2" {
		t.Errorf("cell text = %q", got)
	}
}

func TestParseFirstTable_RowspanColspan(t *testing.T) {
	src := `
	<table>
		<tr><th>A</th><th>B</th><th>C</th></tr>
		<tr><td rowspan="2">x</td><td>b1</td><td>c1</td></tr>
		<tr><td colspan="2">wide</td></tr>
	</table>`

	raw, err := ParseFirstTable(src)
	if err != nil {
		t.Fatalf("ParseFirstTable failed: %v", err)
	}
	if len(raw.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(raw.Rows))
	}

	// Second data row inherits x from the rowspan, then the colspan
	// cell fills both remaining columns.
	r := raw.Rows[1]
	if r[0].Value != "x" || r[1].Value != "wide" || r[2].Value != "wide" {
		t.Errorf("row = %v", r)
	}
}

func TestParseFirstTable_ShortRowsPadMissing(t *testing.T) {
	src := `
	<table>
		<tr><td>a</td><td>b</td><td>c</td></tr>
		<tr><td>only</td></tr>
	</table>`

	raw, err := ParseFirstTable(src)
	if err != nil {
		t.Fatalf("ParseFirstTable failed: %v", err)
	}
	r := raw.Rows[1]
	if len(r) != 3 {
		t.Fatalf("expected padded width 3, got %d", len(r))
	}
	if !r[1].Missing || !r[2].Missing {
		t.Errorf("uncovered positions should be missing, got %v", r)
	}
}

func TestParseFirstTable_PicksFirstTableOnly(t *testing.T) {
	src := `
	<table><tr><td>first</td></tr></table>
	<table><tr><td>second</td></tr></table>`

	raw, err := ParseFirstTable(src)
	if err != nil {
		t.Fatalf("ParseFirstTable failed: %v", err)
	}
	if len(raw.Rows) != 1 || raw.Rows[0][0].Value != "first" {
		t.Errorf("rows = %v", raw.Rows)
	}
}

func TestParseFirstTable_NoTable(t *testing.T) {
	_, err := ParseFirstTable("<html><body><p>nothing here</p></body></html>")
	if !errors.Is(err, ErrNoTable) {
		t.Errorf("expected ErrNoTable, got %v", err)
	}
}

func TestParseFirstTable_KeepsNonBreakingSpace(t *testing.T) {
	raw, err := ParseFirstTable("<table><tr><td>John Adams</td></tr></table>")
	if err != nil {
		t.Fatalf("ParseFirstTable failed: %v", err)
	}
	if raw.Rows[0][0].Value != "John Adams" {
		t.Errorf("cell = %q, want NBSP preserved", raw.Rows[0][0].Value)
	}
}
