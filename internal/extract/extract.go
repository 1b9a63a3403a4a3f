// Package extract turns table rows into ordered records of trimmed cell text.
package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Schema declares the output columns in header order. Text columns bind
// positionally to the row's <td> cells. The optional LinkColumn is filled
// from an anchor's resolved href rather than cell text; it accommodates both
// layouts seen in practice: a dedicated cell holding the link, or an anchor
// nested inside one of the text cells.
type Schema struct {
	Columns    []string
	LinkColumn string
}

// Record is one scraped row: ordered field values matching Schema.Columns.
type Record []string

func (s Schema) linkIndex() int {
	if s.LinkColumn == "" {
		return -1
	}
	for i, c := range s.Columns {
		if c == s.LinkColumn {
			return i
		}
	}
	return -1
}

// Row extracts one record from a table row. It returns ok=false when the
// row's cell count does not fit the schema, letting the caller skip
// malformed rows (footers, merged-cell summaries) without aborting the run.
func Row(row *goquery.Selection, schema Schema, base *url.URL) (Record, bool) {
	cells := row.Find("td")
	n := cells.Length()
	linkIdx := schema.linkIndex()
	rec := make(Record, len(schema.Columns))

	if linkIdx < 0 {
		if n != len(schema.Columns) {
			return nil, false
		}
		for i := range schema.Columns {
			rec[i] = CleanText(cells.Eq(i).Text())
		}
		return rec, true
	}

	switch n {
	case len(schema.Columns):
		// One cell per column; the link cell contributes its href.
		for i := range schema.Columns {
			if i == linkIdx {
				rec[i] = resolveLink(cells.Eq(i), base)
				continue
			}
			rec[i] = CleanText(cells.Eq(i).Text())
		}
	case len(schema.Columns) - 1:
		// No dedicated link cell; the anchor sits inside a text cell.
		cell := 0
		for i := range schema.Columns {
			if i == linkIdx {
				rec[i] = resolveLink(row, base)
				continue
			}
			rec[i] = CleanText(cells.Eq(cell).Text())
			cell++
		}
	default:
		return nil, false
	}
	return rec, true
}

// resolveLink finds the first anchor under scope and resolves its href
// against the page base URL. No anchor yields an empty field.
func resolveLink(scope *goquery.Selection, base *url.URL) string {
	href, ok := scope.Find("a[href]").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// CleanText trims surrounding whitespace and collapses internal runs to a
// single space, so "  Acme Corp \n" becomes "Acme Corp".
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
