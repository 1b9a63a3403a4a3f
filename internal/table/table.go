// Package table parses an HTML document and locates the one table a run is
// meant to scrape, then enumerates its rows in document order.
package table

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrTableNotFound is returned when the document contains no table matching
// the selector. Callers branch on it to distinguish a structurally missing
// table from ordinary parse or transport failures.
var ErrTableNotFound = errors.New("table not found")

// Table wraps the matched table element.
type Table struct {
	sel *goquery.Selection
}

// Find parses body and locates exactly one target table. An empty selector
// matches the first <table> on the page; pages with several tables
// disambiguate with any goquery selector, e.g. "table#layoffs" or
// ".wikitable". A selector matching a container element resolves to the
// first table inside it.
func Find(body []byte, selector string) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	if strings.TrimSpace(selector) == "" {
		selector = "table"
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, ErrTableNotFound
	}
	if !sel.Is("table") {
		sel = sel.Find("table").First()
		if sel.Length() == 0 {
			return nil, ErrTableNotFound
		}
	}
	return &Table{sel: sel}, nil
}

// Rows returns the table's <tr> elements in document order, dropping the
// first skip rows. Rows inside <thead> come first in document order, so a
// positional skip covers the common header-row case.
func (t *Table) Rows(skip int) []*goquery.Selection {
	var rows []*goquery.Selection
	t.sel.Find("tr").Each(func(_ int, s *goquery.Selection) {
		rows = append(rows, s)
	})
	if skip < 0 {
		skip = 0
	}
	if skip > len(rows) {
		skip = len(rows)
	}
	return rows[skip:]
}
