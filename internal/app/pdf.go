package app

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/tablegrab/tablegrab/internal/extract"
)

// writeTablePDF renders the scraped table as a simple PDF grid: bold header
// row, one row per record. Layout is intentionally basic — equal column
// widths across the page, truncation left to the viewer.
func writeTablePDF(header []string, records []extract.Record, outPath string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(header))

	for _, h := range header {
		pdf.CellFormat(colW, 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, rec := range records {
		for _, field := range rec {
			pdf.CellFormat(colW, 6, field, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(outPath)
}
