// Package report assembles the document: an ordered flow of styled blocks
// combining the run's classified weather data with the fixed reference
// tables every edition carries. Assembly is pure; drawing belongs to the
// PDF backend.
package report

import "github.com/rcolinpr/arecibo-weather-monitor/internal/domain"

// Block is one element of the document flow. The drawing backend switches
// on the concrete type; the set is closed.
type Block interface {
	block()
}

// Header is the top banner: report identity on the left, run timestamps on
// the right, an accent rule underneath.
type Header struct {
	Title    string
	Subtitle string
	DateLine string
	TimeLine string
	TagLine  string
}

// SectionTitle starts a report section in its accent color.
type SectionTitle struct {
	Text  string
	Color domain.Color
}

// Rule is a full-width divider in the owning section's accent color.
type Rule struct {
	Color domain.Color
}

// Paragraph is a wrapped run of text.
type Paragraph struct {
	Text   string
	Color  domain.Color
	Size   float64
	Bold   bool
	Mono   bool
	Center bool
}

// Cell is one table body cell. A nil Color means the default body text.
type Cell struct {
	Text  string
	Color *domain.Color
	Bold  bool
}

// Table is a grid with a styled head row. Widths are column widths in
// inches; every row must have len(Widths) cells.
type Table struct {
	Head      []string
	HeadColor domain.Color
	Widths    []float64
	Rows      [][]Cell
}

// Spacer adds vertical space in points.
type Spacer struct {
	Height float64
}

// Footer is the full-width disclaimer band closing the document.
type Footer struct {
	Text string
}

func (Header) block()       {}
func (SectionTitle) block() {}
func (Rule) block()         {}
func (Paragraph) block()    {}
func (Table) block()        {}
func (Spacer) block()       {}
func (Footer) block()       {}

// Document is an assembled report ready for drawing.
type Document struct {
	Title  string
	Author string
	Blocks []Block
}
