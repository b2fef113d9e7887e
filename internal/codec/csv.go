package codec

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jray-8/us-presidents-dataset/internal/model"
)

// Header is the fixed column layout of a snapshot file. The index
// column comes first; its label is free-form as far as readers are
// concerned, but we always write "number".
var Header = []string{
	"number", "name", "birth", "death",
	"term_start", "term_end", "party", "election", "vice_president",
}

// utf8BOM is written at the start of every snapshot so spreadsheet
// tools render non-ASCII names (and the en-dashes) correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Write serializes the typed table as CSV.
func Write(w io.Writer, table []model.President) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range table {
		record := []string{
			strconv.Itoa(p.Number),
			scalarField(p.Name),
			yearField(p.Birth),
			yearField(p.Death),
			dateField(p.TermStart),
			dateField(p.TermEnd),
			cellField(EncodeList(p.Party)),
			cellField(EncodeYears(p.Election)),
			cellField(EncodeList(p.VicePresident)),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", p.Number, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes a snapshot to path, creating parent directories.
func WriteFile(path string, table []model.President) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, table); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Read reconstructs a typed table from a snapshot. Malformed syntax is
// fatal; only date cells degrade to null, matching the writer's
// contract. The one intentional asymmetry: a list written from an
// empty list comes back as a single null element (see DecodeList).
func Read(r io.Reader) ([]model.President, error) {
	br := bufio.NewReader(r)
	if err := skipBOM(br); err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(Header) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(Header), len(header))
	}

	var table []model.President
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(table), err)
		}

		p, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(table), err)
		}
		table = append(table, p)
	}
	return table, nil
}

// ReadFile reads a snapshot from path.
func ReadFile(path string) ([]model.President, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

func parseRecord(record []string) (model.President, error) {
	var p model.President

	n, err := strconv.Atoi(record[0])
	if err != nil {
		return p, fmt.Errorf("number %q: %w", record[0], err)
	}
	p.Number = n

	if record[1] != NullToken {
		name := record[1]
		p.Name = &name
	}

	if p.Birth, err = parseYear(record[2]); err != nil {
		return p, fmt.Errorf("birth: %w", err)
	}
	if p.Death, err = parseYear(record[3]); err != nil {
		return p, fmt.Errorf("death: %w", err)
	}

	p.TermStart = parseDate(record[4])
	p.TermEnd = parseDate(record[5])

	p.Party = DecodeList(fieldCell(record[6]))
	if p.Election, err = DecodeYears(fieldCell(record[7])); err != nil {
		return p, fmt.Errorf("election: %w", err)
	}
	p.VicePresident = DecodeList(fieldCell(record[8]))

	return p, nil
}

// fieldCell maps the persisted null marker back to a missing cell.
func fieldCell(s string) model.Cell {
	if s == NullToken {
		return model.MissingCell
	}
	return model.Text(s)
}

func cellField(c model.Cell) string {
	if c.Missing {
		return NullToken
	}
	return c.Value
}

func scalarField(s *string) string {
	if s == nil {
		return NullToken
	}
	return *s
}

func yearField(n *int) string {
	if n == nil {
		return NullToken
	}
	return strconv.Itoa(*n)
}

// dateField renders a calendar date as "MonthName D, YYYY".
func dateField(t *time.Time) string {
	if t == nil {
		return NullToken
	}
	return fmt.Sprintf("%s %d, %d", t.Month(), t.Day(), t.Year())
}

// parseDate coerces a date cell back to a calendar date; unparseable
// values become null.
func parseDate(s string) *time.Time {
	if s == NullToken {
		return nil
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func parseYear(s string) (*int, error) {
	if s == NullToken {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("year %q: %w", s, err)
	}
	return &n, nil
}

func skipBOM(br *bufio.Reader) error {
	peek, err := br.Peek(len(utf8BOM))
	if err != nil && err != io.EOF {
		return fmt.Errorf("read BOM: %w", err)
	}
	if len(peek) == len(utf8BOM) && peek[0] == utf8BOM[0] && peek[1] == utf8BOM[1] && peek[2] == utf8BOM[2] {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return fmt.Errorf("skip BOM: %w", err)
		}
	}
	return nil
}
