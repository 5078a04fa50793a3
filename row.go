package cligrid

import "strings"

// Row is an ordered sequence of cells forming one horizontal band of a
// grid. A row renders as one or more output lines: as many as the
// tallest of its cells needs.
//
// A row can carry its own default options and geometry. Default options
// apply to any cell that leaves the matching property unset; geometry
// (column width and padding) applies only when the row renders on its
// own, because a grid's geometry takes precedence over its rows'.
//
// Rows are immutable once constructed. The sum of the cells' column
// spans does not have to match other rows of the same grid; every row
// is laid out from its own cells alone.
type Row struct {
	cells    []*Cell
	defaults Options

	columnWidth   int
	hasWidth      bool
	columnPadding string
	hasPadding    bool

	// fill marks a row that renders as a single synthetic cell spanning
	// the grid's total column count, filled with blank chars.
	fill bool
}

// NewRow creates a row from the given cells in left-to-right order. It
// panics if any cell is nil.
func NewRow(cells ...*Cell) *Row {
	checkCells(cells)
	return &Row{cells: append([]*Cell(nil), cells...)}
}

// NewEmptyRow creates a row with no cells. It renders as a single
// output line of width zero, which reads as a visual gap between the
// surrounding rows.
func NewEmptyRow() *Row {
	return &Row{}
}

// NewFillRow creates a row that renders as one cell spanning the grid's
// total column count, filled entirely with the effective blank char.
// Rendered outside a grid, the row spans a single column.
func NewFillRow() *Row {
	return &Row{fill: true}
}

// String renders the row on its own. The row's own geometry applies;
// column width falls back to 1 and padding to a single space. The
// result always ends with a newline.
func (r *Row) String() string {
	var b strings.Builder
	renderRow(&b, r, Options{}, geometry{}, 1)
	return b.String()
}

// RowBuilder assembles a Row step by step. Every setter returns the
// builder so calls can be chained, and the last call for a property
// wins. Build may be called more than once; each call returns an
// independent row.
type RowBuilder struct {
	row Row
}

// NewRowBuilder starts a builder for a row over the given cells. It
// panics if any cell is nil.
func NewRowBuilder(cells ...*Cell) *RowBuilder {
	checkCells(cells)
	return &RowBuilder{row: Row{cells: append([]*Cell(nil), cells...)}}
}

// Cells replaces the row's cells. It panics if any cell is nil.
func (b *RowBuilder) Cells(cells ...*Cell) *RowBuilder {
	checkCells(cells)
	b.row.cells = append([]*Cell(nil), cells...)
	return b
}

// ColumnWidth sets the width in chars of one column slot, used when the
// row renders on its own. A grid's column width overrides it. Width
// zero is valid and gives every slot zero chars. It panics if width is
// negative.
func (b *RowBuilder) ColumnWidth(width int) *RowBuilder {
	checkColumnWidth(width)
	b.row.columnWidth = width
	b.row.hasWidth = true
	return b
}

// ColumnPadding sets the string written between adjacent cells, used
// when the row renders on its own. A grid's padding overrides it. The
// empty string joins cells directly. It panics if padding contains a
// line break.
func (b *RowBuilder) ColumnPadding(padding string) *RowBuilder {
	checkColumnPadding(padding)
	b.row.columnPadding = padding
	b.row.hasPadding = true
	return b
}

// Defaults replaces all row-level default options at once. Zero-valued
// fields of o stay inherited from the grid. It panics if o.BlankChar is
// a line break.
func (b *RowBuilder) Defaults(o Options) *RowBuilder {
	checkDefaultOptions(o)
	b.row.defaults = o
	return b
}

// DefaultColSpan sets the column span for cells of this row that do not
// set their own. It panics if colSpan is less than 1.
func (b *RowBuilder) DefaultColSpan(colSpan int) *RowBuilder {
	checkColSpan(colSpan)
	b.row.defaults.ColSpan = colSpan
	return b
}

// DefaultHAlign sets the horizontal alignment for cells of this row
// that do not set their own.
func (b *RowBuilder) DefaultHAlign(h HAlign) *RowBuilder {
	b.row.defaults.HAlign = h
	return b
}

// DefaultVAlign sets the vertical alignment for cells of this row that
// do not set their own.
func (b *RowBuilder) DefaultVAlign(v VAlign) *RowBuilder {
	b.row.defaults.VAlign = v
	return b
}

// DefaultBlankChar sets the blank char for cells of this row that do
// not set their own. It panics if blankChar is a line break or the zero
// rune.
func (b *RowBuilder) DefaultBlankChar(blankChar rune) *RowBuilder {
	checkBlankChar(blankChar)
	b.row.defaults.BlankChar = blankChar
	return b
}

// Build returns the assembled row.
func (b *RowBuilder) Build() *Row {
	r := b.row
	r.cells = append([]*Cell(nil), r.cells...)
	return &r
}
