package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// A4 portrait layout in millimeters.
const (
	pageHeight   = 297.0
	marginTop    = 15.0
	marginBottom = 15.0
	marginLeft   = 10.0
	labelWidth   = 70.0
	valueWidth   = 110.0
	rowHeight    = 8.0
	headingGap   = 10.0
)

// pdfWriter tracks the vertical cursor across tables. When the next row
// would cross the printable height, a new page starts and the cursor
// resets to the top margin.
type pdfWriter struct {
	pdf *gofpdf.Fpdf
	y   float64
}

func newPDFWriter() *pdfWriter {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &pdfWriter{pdf: pdf, y: marginTop}
}

func (w *pdfWriter) ensure(h float64) {
	if w.y+h > pageHeight-marginBottom {
		w.pdf.AddPage()
		w.y = marginTop
	}
}

func (w *pdfWriter) title(text string) {
	w.pdf.SetFont("Helvetica", "B", 18)
	w.ensure(headingGap)
	w.pdf.Text(marginLeft, w.y, text)
	w.y += headingGap
}

func (w *pdfWriter) line(text string) {
	w.pdf.SetFont("Helvetica", "", 12)
	w.ensure(headingGap)
	w.pdf.Text(marginLeft, w.y, text)
	w.y += headingGap
}

// table writes a bordered two-column table with a Field/Value header row.
// Long values wrap onto continuation rows with an empty label cell.
func (w *pdfWriter) table(rows []Row) {
	w.headerRow()
	w.pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		lines := w.pdf.SplitText(row[1], valueWidth-4)
		if len(lines) == 0 {
			lines = []string{""}
		}
		label := row[0]
		for _, line := range lines {
			w.ensure(rowHeight)
			w.pdf.SetXY(marginLeft, w.y)
			w.pdf.CellFormat(labelWidth, rowHeight, label, "1", 0, "L", false, 0, "")
			w.pdf.CellFormat(valueWidth, rowHeight, line, "1", 0, "L", false, 0, "")
			w.y += rowHeight
			label = ""
		}
	}
	w.y += rowHeight / 2
}

func (w *pdfWriter) headerRow() {
	w.pdf.SetFont("Helvetica", "B", 10)
	w.ensure(rowHeight)
	w.pdf.SetXY(marginLeft, w.y)
	w.pdf.SetFillColor(26, 61, 22)
	w.pdf.SetTextColor(255, 255, 255)
	w.pdf.CellFormat(labelWidth, rowHeight, "Field", "1", 0, "L", true, 0, "")
	w.pdf.CellFormat(valueWidth, rowHeight, "Value", "1", 0, "L", true, 0, "")
	w.pdf.SetTextColor(0, 0, 0)
	w.y += rowHeight
}

func (w *pdfWriter) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildFormsPDF renders the per-record export: a title, the registration
// id, then one table per form submission. Sections come from
// FormSections, so a registrant with no forms still yields a document
// with the no-forms row.
func BuildFormsPDF(title string, registrationID int64, sections []Section) ([]byte, error) {
	w := newPDFWriter()
	w.title(title + " Details")
	w.line(fmt.Sprintf("Registration ID: %d", registrationID))
	for _, s := range sections {
		if s.Heading != "" {
			w.pdf.SetFont("Helvetica", "", 12)
			w.ensure(headingGap)
			w.pdf.Text(marginLeft, w.y, s.Heading)
			w.y += headingGap
		}
		w.table(s.Rows)
	}
	return w.output()
}

// BuildSummaryPDF renders a single-table document, used for the annual
// registration summary.
func BuildSummaryPDF(title string, rows []Row) ([]byte, error) {
	w := newPDFWriter()
	w.title(title)
	w.table(rows)
	return w.output()
}
