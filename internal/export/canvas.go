// ABOUTME: Drawing primitives the document exporter lays out against.
// ABOUTME: Coordinates are in millimetres from the top-left corner of the page.
package export

import "io"

// Color is an RGB color.
type Color struct{ R, G, B int }

var (
	colorBlack      = Color{0, 0, 0}
	colorWhite      = Color{255, 255, 255}
	colorHeaderFill = Color{33, 37, 41}
	colorRowShade   = Color{242, 242, 242}
	colorBorder     = Color{200, 200, 200}
	colorTrack      = Color{225, 225, 225}
	colorFill       = Color{40, 167, 69}
	colorMuted      = Color{110, 110, 110}
)

// Align is horizontal text alignment within a cell.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Font style flags, combinable ("B", "I", "BI").
const (
	StyleRegular = ""
	StyleBold    = "B"
	StyleItalic  = "I"
)

// Canvas is a paginated drawing surface. Pages are numbered from 1;
// drawing always targets the current page.
type Canvas interface {
	AddPage()
	PageCount() int
	SetPage(n int)
	PageSize() (width, height float64)

	SetFont(style string, size float64)
	SetTextColor(c Color)
	// TextWidth measures s in the current font.
	TextWidth(s string) float64
	// Cell draws a single line of text inside the box at (x, y).
	Cell(x, y, w, h float64, text string, align Align)
	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h float64, c Color)

	Output(w io.Writer) error
}
