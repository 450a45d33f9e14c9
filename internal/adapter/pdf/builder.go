// Package pdf draws assembled report documents onto US Letter pages using
// the core Helvetica and Courier fonts. The block flow is laid out top to
// bottom; page breaks are inserted when a block would not fit, and tables
// repeat their head row after a break.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/rcolinpr/arecibo-weather-monitor/internal/domain"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/report"
)

const (
	inch = 72.0

	marginLeft   = 0.65 * inch
	marginRight  = 0.65 * inch
	marginTop    = 0.55 * inch
	marginBottom = 0.65 * inch

	bandHeight  = 78.0
	rowHeight   = 20.0
	cellMargin  = 7.0
	footerWidth = 7.1 * inch

	// maxParagraphLen is the layout ceiling for any single paragraph,
	// on top of the renderer's per-field cutoffs.
	maxParagraphLen = 400
)

// footerFill is the one color the shared palette does not carry.
var footerFill = domain.Color{R: 0x06, G: 0x0e, B: 0x1c}

// Builder renders documents into standalone PDF bytes.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build lays out every block of doc and returns the finished PDF.
func (b *Builder) Build(doc report.Document) ([]byte, error) {
	pg := newPage(doc)
	for _, blk := range doc.Blocks {
		pg.draw(blk)
	}
	var buf bytes.Buffer
	if err := pg.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("draw document: %w", err)
	}
	return buf.Bytes(), nil
}

// page wraps the fpdf document with the content width and the codepage
// translator the core fonts need for accented feed text.
type page struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	width float64
}

func newPage(doc report.Document) *page {
	f := fpdf.New("P", "pt", "Letter", "")
	f.SetTitle(doc.Title, true)
	f.SetAuthor(doc.Author, true)
	f.SetMargins(marginLeft, marginTop, marginRight)
	f.SetAutoPageBreak(true, marginBottom)
	f.SetCellMargin(0)
	f.AddPage()
	pageW, _ := f.GetPageSize()
	return &page{
		pdf:   f,
		tr:    f.UnicodeTranslatorFromDescriptor(""),
		width: pageW - marginLeft - marginRight,
	}
}

func (pg *page) draw(blk report.Block) {
	switch b := blk.(type) {
	case report.Header:
		pg.drawHeader(b)
	case report.SectionTitle:
		pg.drawSectionTitle(b)
	case report.Rule:
		pg.drawRule(b)
	case report.Paragraph:
		pg.drawParagraph(b)
	case report.Table:
		pg.drawTable(b)
	case report.Spacer:
		pg.pdf.Ln(b.Height)
	case report.Footer:
		pg.drawFooter(b)
	}
}

// drawHeader paints the navy banner: identity block on the left, run
// timestamps right-aligned, a cyan rule along the bottom edge.
func (pg *page) drawHeader(h report.Header) {
	x := marginLeft
	y := pg.pdf.GetY()

	pg.setFill(domain.Navy)
	pg.pdf.Rect(x, y, pg.width, bandHeight, "F")

	leftX := x + 16
	pg.setText(domain.Cyan)
	pg.pdf.SetFont("Helvetica", "B", 20)
	pg.pdf.Text(leftX, y+34, pg.tr(h.Title))
	pg.setText(domain.Muted)
	pg.pdf.SetFont("Helvetica", "", 8)
	pg.pdf.Text(leftX, y+50, pg.tr(h.Subtitle))

	rightX := x + pg.width - 16
	pg.setText(domain.Light)
	pg.pdf.SetFont("Helvetica", "B", 10)
	pg.textRight(rightX, y+28, h.DateLine)
	pg.setText(domain.Muted)
	pg.pdf.SetFont("Helvetica", "", 8)
	pg.textRight(rightX, y+42, h.TimeLine)
	pg.pdf.SetFont("Helvetica", "", 7)
	pg.textRight(rightX, y+54, h.TagLine)

	pg.setDraw(domain.Cyan)
	pg.pdf.SetLineWidth(2)
	pg.pdf.Line(x, y+bandHeight, x+pg.width, y+bandHeight)
	pg.pdf.SetY(y + bandHeight + 2)
}

func (pg *page) drawSectionTitle(t report.SectionTitle) {
	pg.setText(t.Color)
	pg.pdf.SetFont("Helvetica", "B", 11)
	pg.pdf.CellFormat(pg.width, 15, pg.tr(t.Text), "", 1, "L", false, 0, "")
}

func (pg *page) drawRule(r report.Rule) {
	y := pg.pdf.GetY() + 3
	pg.setDraw(r.Color)
	pg.pdf.SetLineWidth(1)
	pg.pdf.Line(marginLeft, y, marginLeft+pg.width, y)
	pg.pdf.SetY(y + 5)
}

func (pg *page) drawParagraph(p report.Paragraph) {
	family, leading := "Helvetica", 13.0
	if p.Mono {
		family, leading = "Courier", 12.0
	}
	style := ""
	if p.Bold {
		style = "B"
	}
	size := p.Size
	if size == 0 {
		size = 9
	}
	align := "L"
	if p.Center {
		align = "C"
	}
	text := p.Text
	if r := []rune(text); len(r) > maxParagraphLen {
		text = string(r[:maxParagraphLen])
	}
	pg.setText(p.Color)
	pg.pdf.SetFont(family, style, size)
	pg.pdf.MultiCell(pg.width, leading, pg.tr(text), "", align, false)
}

// drawTable paints the head row and the zebra body. Column widths come in
// inches; the grid is centered on the content width like every other band.
func (pg *page) drawTable(t report.Table) {
	widths := make([]float64, len(t.Widths))
	total := 0.0
	for i, w := range t.Widths {
		widths[i] = w * inch
		total += widths[i]
	}
	startX := marginLeft + (pg.width-total)/2

	pg.pdf.SetCellMargin(cellMargin)
	pg.setDraw(domain.Ocean)
	pg.pdf.SetLineWidth(0.4)

	pg.ensureRoom(2 * rowHeight)
	pg.drawHeadRow(t, widths, startX)
	for i, row := range t.Rows {
		if pg.ensureRoom(rowHeight) {
			pg.drawHeadRow(t, widths, startX)
		}
		if i%2 == 0 {
			pg.setFill(domain.Navy)
		} else {
			pg.setFill(domain.Deep)
		}
		pg.pdf.SetX(startX)
		for j, c := range row {
			style := ""
			if c.Bold {
				style = "B"
			}
			pg.pdf.SetFont("Helvetica", style, 8)
			if c.Color != nil {
				pg.setText(*c.Color)
			} else {
				pg.setText(domain.Light)
			}
			pg.pdf.CellFormat(widths[j], rowHeight, pg.tr(c.Text), "1", 0, "L", true, 0, "")
		}
		pg.pdf.Ln(rowHeight)
	}
	pg.pdf.SetCellMargin(0)
}

func (pg *page) drawHeadRow(t report.Table, widths []float64, startX float64) {
	pg.setFill(domain.Ocean)
	pg.setText(t.HeadColor)
	pg.pdf.SetFont("Helvetica", "B", 8)
	pg.pdf.SetX(startX)
	for j, h := range t.Head {
		pg.pdf.CellFormat(widths[j], rowHeight, pg.tr(h), "1", 0, "L", true, 0, "")
	}
	pg.pdf.Ln(rowHeight)
}

// drawFooter paints the centered disclaimer band with a hairline above.
func (pg *page) drawFooter(f report.Footer) {
	text := pg.tr(f.Text)
	pg.pdf.SetFont("Helvetica", "", 7)
	lines := pg.pdf.SplitText(text, footerWidth-2*cellMargin)
	height := float64(len(lines))*10 + 16

	pg.ensureRoom(height)
	x := marginLeft + (pg.width-footerWidth)/2
	y := pg.pdf.GetY()

	pg.setFill(footerFill)
	pg.pdf.Rect(x, y, footerWidth, height, "F")
	pg.setDraw(domain.Ocean)
	pg.pdf.SetLineWidth(1)
	pg.pdf.Line(x, y, x+footerWidth, y)

	pg.setText(domain.Muted)
	pg.pdf.SetCellMargin(cellMargin)
	pg.pdf.SetXY(x, y+8)
	pg.pdf.MultiCell(footerWidth, 10, text, "", "C", false)
	pg.pdf.SetCellMargin(0)
	pg.pdf.SetY(y + height)
}

// textRight draws s ending at x, using the current font for measurement.
func (pg *page) textRight(x, y float64, s string) {
	s = pg.tr(s)
	pg.pdf.Text(x-pg.pdf.GetStringWidth(s), y, s)
}

// ensureRoom breaks the page when fewer than need points remain, reporting
// whether a break happened so tables can repeat their head row.
func (pg *page) ensureRoom(need float64) bool {
	_, pageH := pg.pdf.GetPageSize()
	if pg.pdf.GetY()+need > pageH-marginBottom {
		pg.pdf.AddPage()
		return true
	}
	return false
}

func (pg *page) setText(c domain.Color) {
	pg.pdf.SetTextColor(c.R, c.G, c.B)
}

func (pg *page) setFill(c domain.Color) {
	pg.pdf.SetFillColor(c.R, c.G, c.B)
}

func (pg *page) setDraw(c domain.Color) {
	pg.pdf.SetDrawColor(c.R, c.G, c.B)
}
