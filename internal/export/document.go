// ABOUTME: Lays out the weekly report document and finalizes page footers.
// ABOUTME: Each block starts at the previous block's bottom edge plus fixed spacing.
package export

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/progress"
	"github.com/harperreed/wellness/internal/report"
)

// Page geometry in millimetres.
const (
	Margin       = 15.0
	FooterHeight = 20.0
	Spacing      = 8.0
	BarWidth     = 150.0
	BarHeight    = 8.0
	cellPadding  = 2.0
	labelColumn  = 55.0
)

// DefaultTitle heads every exported report.
const DefaultTitle = "Reporte Semanal de Bienestar"

// Block names recorded in Layout, in rendering order.
const (
	PlacementTitle    = "title"
	PlacementProfile  = "profile"
	PlacementProgress = "progress"
	PlacementStatus   = "status"
	PlacementBody     = "body"
)

// Document is everything rendered into an export.
type Document struct {
	Title       string
	Profile     models.UserProfile
	Progress    progress.Result
	Body        string
	GeneratedAt time.Time
}

// Placement records where a block was drawn. Top and Bottom refer to
// StartPage and EndPage respectively.
type Placement struct {
	Name      string
	StartPage int
	EndPage   int
	Top       float64
	Bottom    float64
}

// Layout is the measured result of the content pass.
type Layout struct {
	Pages  int
	Blocks []Placement
	// Footers holds the footer text pairs written in the final pass, per page.
	Footers [][2]string
}

// Block returns the placement with the given name.
func (l Layout) Block(name string) (Placement, bool) {
	for _, b := range l.Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return Placement{}, false
}

// Render lays out doc on c in two phases: content with pagination, then
// footers once the final page count is known.
func Render(c Canvas, doc Document) (Layout, error) {
	blocks, err := ParseRichText(doc.Body)
	if err != nil {
		return Layout{}, err
	}

	c.AddPage()
	w, h := c.PageSize()
	cur := &cursor{
		c:      c,
		y:      Margin,
		top:    Margin,
		bottom: h - FooterHeight,
		left:   Margin,
		width:  w - 2*Margin,
	}

	var layout Layout
	place := func(name string, fn func()) {
		startPage, top := c.PageCount(), cur.y
		fn()
		layout.Blocks = append(layout.Blocks, Placement{
			Name: name, StartPage: startPage, EndPage: c.PageCount(), Top: top, Bottom: cur.y,
		})
		cur.y += Spacing
	}

	title := doc.Title
	if title == "" {
		title = DefaultTitle
	}
	place(PlacementTitle, func() {
		cur.text(title, StyleBold, 18, 8, AlignCenter, colorBlack, 0)
	})
	place(PlacementProfile, func() {
		cur.table([]string{"Dato", "Valor"}, profileRows(doc.Profile, doc.Progress))
	})
	place(PlacementProgress, func() {
		cur.progressBar(doc.Progress.Percent)
	})
	place(PlacementStatus, func() {
		cur.text(doc.Progress.Status, StyleRegular, 11, 5.5, AlignLeft, colorBlack, 0)
	})
	if len(blocks) > 0 {
		place(PlacementBody, func() {
			cur.flow(blocks)
		})
	}

	layout.Pages = c.PageCount()
	layout.Footers = finalize(c, doc, layout.Pages)
	return layout, nil
}

func profileRows(p models.UserProfile, r progress.Result) [][]string {
	var rows [][]string
	for _, row := range report.ProfileRows(&p) {
		rows = append(rows, []string{row[0], row[1]})
	}
	if r.Current > 0 {
		rows = append(rows, []string{"Peso actual", report.FormatWeight(r.Current)})
	}
	rows = append(rows, []string{"Progreso", fmt.Sprintf("%.0f%%", r.Percent)})
	return rows
}

// finalize writes the footer on every page. It runs only after all content
// is laid out, so the total page count is final.
func finalize(c Canvas, doc Document, pages int) [][2]string {
	w, h := c.PageSize()
	generated := fmt.Sprintf("Report generated for %s on %s", doc.Profile.Name, doc.GeneratedAt.Format("2006-01-02"))

	footers := make([][2]string, 0, pages)
	for i := 1; i <= pages; i++ {
		pageLabel := fmt.Sprintf("Page %d of %d", i, pages)
		c.SetPage(i)
		c.SetFont(StyleItalic, 8)
		c.SetTextColor(colorMuted)
		c.Cell(Margin, h-13, w-2*Margin, 4, generated, AlignCenter)
		c.Cell(Margin, h-8, w-2*Margin, 4, pageLabel, AlignRight)
		footers = append(footers, [2]string{generated, pageLabel})
	}
	c.SetTextColor(colorBlack)
	return footers
}

// cursor tracks the vertical write position and starts new pages when a
// line would cross into the footer area.
type cursor struct {
	c      Canvas
	y      float64
	top    float64
	bottom float64
	left   float64
	width  float64
}

func (cur *cursor) ensure(h float64) {
	if cur.y+h > cur.bottom && cur.y > cur.top {
		cur.c.AddPage()
		cur.y = cur.top
	}
}

// text flows wrapped text starting at the cursor, indented by indent.
func (cur *cursor) text(s, style string, size, lineH float64, align Align, color Color, indent float64) {
	cur.c.SetFont(style, size)
	cur.c.SetTextColor(color)
	width := cur.width - indent
	for _, line := range wrap(cur.c, s, width) {
		cur.ensure(lineH)
		cur.c.Cell(cur.left+indent, cur.y, width, lineH, line, align)
		cur.y += lineH
	}
}

func (cur *cursor) table(header []string, rows [][]string) {
	const lineH = 5.5
	widths := columnWidths(cur.width, maxColumns(header, rows))

	drawRow := func(cells []string, style string, fill *Color, textColor Color) {
		cur.c.SetFont(style, 10)
		wrapped := make([][]string, len(widths))
		lines := 1
		for i := range widths {
			if i < len(cells) {
				wrapped[i] = wrap(cur.c, cells[i], widths[i]-2*cellPadding)
			}
			lines = max(lines, len(wrapped[i]))
		}

		// A row taller than the space left is drawn in slices, one per page,
		// each with its own borders.
		for start := 0; start < lines; {
			fits := int((cur.bottom - cur.y - 2*cellPadding) / lineH)
			rest := lines - start
			restH := float64(rest)*lineH + 2*cellPadding
			if cur.y+restH > cur.bottom && cur.y > cur.top && (fits < 1 || restH <= cur.bottom-cur.top) {
				cur.c.AddPage()
				cur.y = cur.top
				fits = int((cur.bottom - cur.y - 2*cellPadding) / lineH)
			}
			n := max(1, min(rest, fits))
			sliceH := float64(n)*lineH + 2*cellPadding

			x := cur.left
			if fill != nil {
				cur.c.FillRect(x, cur.y, cur.width, sliceH, *fill)
			}
			cur.c.SetTextColor(textColor)
			for i, colW := range widths {
				cur.c.StrokeRect(x, cur.y, colW, sliceH, colorBorder)
				for k := start; k < start+n && k < len(wrapped[i]); k++ {
					cur.c.Cell(x+cellPadding, cur.y+cellPadding+float64(k-start)*lineH, colW-2*cellPadding, lineH, wrapped[i][k], AlignLeft)
				}
				x += colW
			}
			cur.y += sliceH
			start += n
			if start < lines {
				cur.c.AddPage()
				cur.y = cur.top
			}
		}
	}

	if len(header) > 0 {
		fill := colorHeaderFill
		drawRow(header, StyleBold, &fill, colorWhite)
	}
	for i, row := range rows {
		var fill *Color
		if i%2 == 1 {
			shade := colorRowShade
			fill = &shade
		}
		drawRow(row, StyleRegular, fill, colorBlack)
	}
	cur.c.SetTextColor(colorBlack)
}

func (cur *cursor) progressBar(percent float64) {
	cur.ensure(BarHeight)
	percent = math.Max(0, math.Min(100, percent))

	cur.c.FillRect(cur.left, cur.y, BarWidth, BarHeight, colorTrack)
	if fillW := BarWidth * percent / 100; fillW > 0 {
		cur.c.FillRect(cur.left, cur.y, fillW, BarHeight, colorFill)
	}
	cur.c.SetFont(StyleBold, 10)
	cur.c.SetTextColor(colorBlack)
	cur.c.Cell(cur.left+BarWidth+3, cur.y, cur.width-BarWidth-3, BarHeight, fmt.Sprintf("%.0f%%", percent), AlignLeft)
	cur.y += BarHeight
}

// flow renders the report body blocks with automatic pagination.
func (cur *cursor) flow(blocks []Block) {
	for i, b := range blocks {
		if i > 0 {
			cur.y += 2
		}
		switch b.Kind {
		case BlockHeading:
			size := map[int]float64{1: 16, 2: 14, 3: 12}[b.Level]
			if i > 0 {
				cur.y += 2
			}
			// Keep a heading together with at least one following line.
			cur.ensure(size*0.5 + 6)
			cur.text(b.Text, StyleBold, size, size*0.5, AlignLeft, colorBlack, 0)
		case BlockListItem:
			cur.c.SetFont(StyleRegular, 11)
			cur.ensure(5.5)
			cur.c.SetTextColor(colorBlack)
			cur.c.Cell(cur.left+2, cur.y, 6, 5.5, b.Marker, AlignLeft)
			cur.text(b.Text, StyleRegular, 11, 5.5, AlignLeft, colorBlack, 8)
		case BlockTable:
			cur.table(b.Header, b.Rows)
		default:
			cur.text(b.Text, StyleRegular, 11, 5.5, AlignLeft, colorBlack, 0)
		}
	}
}

func maxColumns(header []string, rows [][]string) int {
	n := len(header)
	for _, r := range rows {
		n = max(n, len(r))
	}
	return max(n, 1)
}

// columnWidths gives two-column tables a fixed label column and splits
// wider tables evenly.
func columnWidths(total float64, n int) []float64 {
	widths := make([]float64, n)
	if n == 2 {
		widths[0], widths[1] = labelColumn, total-labelColumn
		return widths
	}
	for i := range widths {
		widths[i] = total / float64(n)
	}
	return widths
}

// wrap breaks s into lines no wider than width using the canvas' current
// font. Explicit newlines are kept; words wider than a line are split.
func wrap(c Canvas, s string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := ""
		for _, word := range words {
			for c.TextWidth(word) > width && utf8.RuneCountInString(word) > 1 {
				head, tail := splitWord(c, word, width)
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				lines = append(lines, head)
				word = tail
			}
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && c.TextWidth(candidate) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitWord returns the longest prefix of word (at least one rune) that fits.
func splitWord(c Canvas, word string, width float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && c.TextWidth(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
