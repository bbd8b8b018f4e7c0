package employee

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

var pdfColumnWidths = []float64{34, 34, 34, 24, 38, 36, 32, 34}

// WriteTablePDF renders the table as a landscape A4 document. Text goes
// through the cp1252 translator of the core fonts; characters outside
// cp1252 cannot be shown and print as the translator's substitute.
func WriteTablePDF(w io.Writer, table Table) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr("Employees"))
	pdf.Ln(12)

	if table.Empty {
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, tr(table.EmptyMessage))
		return pdf.Output(w)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range table.Columns {
		pdf.CellFormat(pdfColumnWidths[i], 8, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range table.Rows {
		for i, cell := range row.Cells() {
			pdf.CellFormat(pdfColumnWidths[i], 7, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}
