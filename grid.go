package cligrid

import "strings"

// Grid is an ordered collection of rows together with the settings used
// to render them: default cell options, the column width, the padding
// between cells, and optionally a fixed total column count.
//
// Grids are immutable once constructed. Rendering never mutates the
// grid, so one grid value can be rendered from any number of goroutines
// at the same time.
type Grid struct {
	rows     []*Row
	defaults Options

	columnWidth   int
	hasWidth      bool
	columnPadding string
	hasPadding    bool

	totalColumns int // 0 means derive from the rows
}

// NewGrid creates a grid over the given rows with no settings of its
// own; every cell property resolves through the row defaults straight
// to the package defaults. It panics if any row is nil.
func NewGrid(rows ...*Row) *Grid {
	checkRows(rows)
	return &Grid{rows: append([]*Row(nil), rows...)}
}

// TotalColumns returns the grid's column count: the fixed count when
// one was configured, otherwise the largest total column span over the
// grid's rows. Fill rows adopt this count, so they are left out of the
// derivation.
func (g *Grid) TotalColumns() int {
	if g.totalColumns > 0 {
		return g.totalColumns
	}
	total := 0
	for _, r := range g.rows {
		if r.fill {
			continue
		}
		span := 0
		for _, c := range r.cells {
			span += c.options().or(r.defaults).or(g.defaults).resolved().ColSpan
		}
		if span > total {
			total = span
		}
	}
	return total
}

// String renders the grid: every row's block of output lines in order,
// each line terminated by a newline. Rendering is pure; the same grid
// always renders to the same string.
func (g *Grid) String() string {
	var b strings.Builder
	total := g.TotalColumns()
	geo := geometry{
		width:      g.columnWidth,
		hasWidth:   g.hasWidth,
		padding:    g.columnPadding,
		hasPadding: g.hasPadding,
	}
	for _, r := range g.rows {
		renderRow(&b, r, g.defaults, geo, total)
	}
	return b.String()
}

// GridBuilder assembles a Grid step by step. Every setter returns the
// builder so calls can be chained, and the last call for a property
// wins. Build performs no layout work and may be called more than once;
// each call returns an independent grid.
type GridBuilder struct {
	grid Grid
}

// NewGridBuilder starts a builder for a grid over the given rows. It
// panics if any row is nil.
func NewGridBuilder(rows ...*Row) *GridBuilder {
	checkRows(rows)
	return &GridBuilder{grid: Grid{rows: append([]*Row(nil), rows...)}}
}

// Rows replaces the grid's rows. It panics if any row is nil.
func (b *GridBuilder) Rows(rows ...*Row) *GridBuilder {
	checkRows(rows)
	b.grid.rows = append([]*Row(nil), rows...)
	return b
}

// ColumnWidth sets the width in chars of one column slot. A cell
// spanning n slots is n times this wide plus the padding widths between
// the spanned slots. Width zero is valid and gives every slot zero
// chars. It panics if width is negative.
func (b *GridBuilder) ColumnWidth(width int) *GridBuilder {
	checkColumnWidth(width)
	b.grid.columnWidth = width
	b.grid.hasWidth = true
	return b
}

// ColumnPadding sets the string written between adjacent cells. The
// default is a single space; the empty string joins cells directly. It
// panics if padding contains a line break.
func (b *GridBuilder) ColumnPadding(padding string) *GridBuilder {
	checkColumnPadding(padding)
	b.grid.columnPadding = padding
	b.grid.hasPadding = true
	return b
}

// TotalColumns fixes the grid's column count instead of deriving it
// from the widest row. Fill rows span this many columns. It panics if
// count is less than 1.
func (b *GridBuilder) TotalColumns(count int) *GridBuilder {
	if count < 1 {
		panic("cligrid: total columns must be at least 1")
	}
	b.grid.totalColumns = count
	return b
}

// Defaults replaces all grid-level default options at once. Zero-valued
// fields of o fall through to the package defaults. It panics if
// o.BlankChar is a line break.
func (b *GridBuilder) Defaults(o Options) *GridBuilder {
	checkDefaultOptions(o)
	b.grid.defaults = o
	return b
}

// DefaultColSpan sets the column span for cells that do not set their
// own. It panics if colSpan is less than 1.
func (b *GridBuilder) DefaultColSpan(colSpan int) *GridBuilder {
	checkColSpan(colSpan)
	b.grid.defaults.ColSpan = colSpan
	return b
}

// DefaultHAlign sets the horizontal alignment for cells that do not set
// their own.
func (b *GridBuilder) DefaultHAlign(h HAlign) *GridBuilder {
	b.grid.defaults.HAlign = h
	return b
}

// DefaultVAlign sets the vertical alignment for cells that do not set
// their own.
func (b *GridBuilder) DefaultVAlign(v VAlign) *GridBuilder {
	b.grid.defaults.VAlign = v
	return b
}

// DefaultBlankChar sets the blank char for cells that do not set their
// own. It panics if blankChar is a line break or the zero rune.
func (b *GridBuilder) DefaultBlankChar(blankChar rune) *GridBuilder {
	checkBlankChar(blankChar)
	b.grid.defaults.BlankChar = blankChar
	return b
}

// Build returns the assembled grid.
func (b *GridBuilder) Build() *Grid {
	g := b.grid
	g.rows = append([]*Row(nil), g.rows...)
	return &g
}
