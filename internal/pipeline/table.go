package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/jray-8/us-presidents-dataset/internal/model"
)

// ErrNoTable is returned when the source document has no table.
var ErrNoTable = errors.New("no table found in document")

var asciiSpace = regexp.MustCompile(`\s+`)

// ParseFirstTable extracts the first <table> in the document as a raw
// row-set. Rowspan and colspan attributes are expanded so every row has
// the same width; grid positions no cell covers become missing cells.
// The first all-header row becomes the table header.
func ParseFirstTable(src string) (model.RawTable, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return model.RawTable{}, fmt.Errorf("parse html: %w", err)
	}

	table := findTable(doc)
	if table == nil {
		return model.RawTable{}, ErrNoTable
	}

	header, rows := expandGrid(table)
	return model.RawTable{Header: header, Rows: rows}, nil
}

// findTable returns the first table element in document order.
func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTable(c); t != nil {
			return t
		}
	}
	return nil
}

// carried is a cell spanning into later rows.
type carried struct {
	cell      model.Cell
	remaining int
}

func expandGrid(table *html.Node) ([]string, []model.RawRow) {
	trs := collectRows(table)

	carry := make(map[int]*carried)
	var grid []model.RawRow
	headerRow := -1

	for i, tr := range trs {
		var row model.RawRow
		col := 0

		flush := func() {
			for {
				c, ok := carry[col]
				if !ok {
					break
				}
				row = append(row, c.cell)
				c.remaining--
				if c.remaining == 0 {
					delete(carry, col)
				}
				col++
			}
		}

		allHeader := true
		for td := tr.FirstChild; td != nil; td = td.NextSibling {
			if td.Type != html.ElementNode || (td.Data != "td" && td.Data != "th") {
				continue
			}
			if td.Data != "th" {
				allHeader = false
			}

			flush()
			cell := model.Text(cellText(td))
			colspan := spanAttr(td, "colspan")
			if rowspan := spanAttr(td, "rowspan"); rowspan > 1 {
				for j := 0; j < colspan; j++ {
					carry[col+j] = &carried{cell: cell, remaining: rowspan - 1}
				}
			}
			for j := 0; j < colspan; j++ {
				row = append(row, cell)
				col++
			}
		}
		flush()

		if len(row) == 0 {
			continue
		}
		if allHeader && headerRow < 0 && i == 0 {
			headerRow = len(grid)
		}
		grid = append(grid, row)
	}

	// Pad every row to the widest, filling uncovered positions.
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range grid {
		for len(row) < width {
			row = append(row, model.MissingCell)
		}
		grid[i] = row
	}

	var header []string
	if headerRow >= 0 {
		header = make([]string, 0, width)
		for _, c := range grid[headerRow] {
			header = append(header, c.Value)
		}
		grid = append(grid[:headerRow], grid[headerRow+1:]...)
	}
	return header, grid
}

// collectRows gathers the tr elements belonging to this table, not to
// any table nested inside it.
func collectRows(table *html.Node) []*html.Node {
	var trs []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "table":
				continue
			case "tr":
				trs = append(trs, c)
			default:
				walk(c)
			}
		}
	}
	walk(table)
	return trs
}

// cellText flattens a cell to text. Text nodes join with single spaces
// and ASCII whitespace collapses; non-breaking spaces survive so the
// extractors can key off them.
func cellText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(asciiSpace.ReplaceAllString(buf.String(), " "))
}

func spanAttr(n *html.Node, name string) int {
	for _, attr := range n.Attr {
		if attr.Key == name {
			if v, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && v > 0 {
				return v
			}
		}
	}
	return 1
}
