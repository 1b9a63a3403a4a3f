// Package csvout writes the scraped records to a CSV artifact.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/tablegrab/tablegrab/internal/extract"
)

// Write creates or truncates path and emits the header row followed by each
// record in collection order. encoding/csv handles quoting, so fields
// containing the delimiter, quotes, or line breaks round-trip with any
// standard CSV reader. The file is written and closed in one scoped
// operation; there is no append mode.
func Write(path string, header []string, records []extract.Record) error {
	for i, rec := range records {
		if len(rec) != len(header) {
			return fmt.Errorf("record %d has %d fields, header has %d", i, len(rec), len(header))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			f.Close()
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
