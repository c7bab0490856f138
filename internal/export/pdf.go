// ABOUTME: fpdf-backed Canvas producing A4 PDF documents.
// ABOUTME: Automatic page breaks are off; the exporter paginates explicitly.
package export

import (
	"io"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// PDFCanvas draws onto an fpdf document.
type PDFCanvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

var _ Canvas = (*PDFCanvas)(nil)

// NewPDFCanvas creates an empty A4 portrait document.
func NewPDFCanvas() *PDFCanvas {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetFont(fontFamily, StyleRegular, 11)
	return &PDFCanvas{
		pdf: pdf,
		// Core fonts are cp1252; translate accents, ñ, bullets.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (p *PDFCanvas) AddPage() { p.pdf.AddPage() }

func (p *PDFCanvas) PageCount() int { return p.pdf.PageCount() }

func (p *PDFCanvas) SetPage(n int) { p.pdf.SetPage(n) }

func (p *PDFCanvas) PageSize() (float64, float64) {
	return p.pdf.GetPageSize()
}

func (p *PDFCanvas) SetFont(style string, size float64) {
	p.pdf.SetFont(fontFamily, style, size)
}

func (p *PDFCanvas) SetTextColor(c Color) {
	p.pdf.SetTextColor(c.R, c.G, c.B)
}

func (p *PDFCanvas) TextWidth(s string) float64 {
	return p.pdf.GetStringWidth(p.tr(s))
}

func (p *PDFCanvas) Cell(x, y, w, h float64, text string, align Align) {
	p.pdf.SetXY(x, y)
	p.pdf.CellFormat(w, h, p.tr(text), "", 0, string(align)+"M", false, 0, "")
}

func (p *PDFCanvas) FillRect(x, y, w, h float64, c Color) {
	p.pdf.SetFillColor(c.R, c.G, c.B)
	p.pdf.Rect(x, y, w, h, "F")
}

func (p *PDFCanvas) StrokeRect(x, y, w, h float64, c Color) {
	p.pdf.SetDrawColor(c.R, c.G, c.B)
	p.pdf.SetLineWidth(0.2)
	p.pdf.Rect(x, y, w, h, "D")
}

// Output writes the finished PDF and closes the document.
func (p *PDFCanvas) Output(w io.Writer) error {
	return p.pdf.Output(w)
}
