package cligrid

// Cell holds one piece of content and its layout settings. Content may
// contain newlines; each line is laid out on its own output line of the
// owning row. A rendered grid is itself valid content, which is how
// grids nest.
//
// Cells are immutable once constructed. Properties left unset inherit
// from the row and grid defaults at render time.
type Cell struct {
	content   string
	colSpan   int // 0 means inherit
	hAlign    HAlign
	vAlign    VAlign
	blankChar rune // 0 means inherit
}

// NewCell creates a cell with the given content spanning colSpan column
// slots. It panics if colSpan is less than 1.
func NewCell(content string, colSpan int) *Cell {
	checkColSpan(colSpan)
	return &Cell{content: content, colSpan: colSpan}
}

// NewEmptyCell creates a cell without content spanning colSpan column
// slots. It renders as blank chars across its whole width. It panics if
// colSpan is less than 1.
func NewEmptyCell(colSpan int) *Cell {
	return NewCell("", colSpan)
}

// NewFillCell creates a Fill-aligned cell: at render time the content
// is repeated until it covers the whole cell width. It panics if
// colSpan is less than 1.
func NewFillCell(content string, colSpan int) *Cell {
	c := NewCell(content, colSpan)
	c.hAlign = Fill
	return c
}

// options returns the cell's own settings as an Options bundle, with
// unset fields left at their zero values.
func (c *Cell) options() Options {
	return Options{
		ColSpan:   c.colSpan,
		HAlign:    c.hAlign,
		VAlign:    c.vAlign,
		BlankChar: c.blankChar,
	}
}

// CellBuilder assembles a Cell step by step. Every setter returns the
// builder so calls can be chained, and the last call for a property
// wins. Build may be called more than once; each call returns an
// independent cell.
type CellBuilder struct {
	cell Cell
}

// NewCellBuilder starts a builder for a cell with the given content.
// The column span can be set with ColSpan; left unset, the cell
// inherits the row or grid default span (1 when nothing overrides it).
func NewCellBuilder(content string) *CellBuilder {
	return &CellBuilder{cell: Cell{content: content}}
}

// Content replaces the cell's content.
func (b *CellBuilder) Content(content string) *CellBuilder {
	b.cell.content = content
	return b
}

// ColSpan sets the number of column slots the cell occupies. It panics
// if colSpan is less than 1.
func (b *CellBuilder) ColSpan(colSpan int) *CellBuilder {
	checkColSpan(colSpan)
	b.cell.colSpan = colSpan
	return b
}

// HAlign sets the horizontal alignment of the cell's content.
func (b *CellBuilder) HAlign(h HAlign) *CellBuilder {
	b.cell.hAlign = h
	return b
}

// VAlign sets the vertical alignment of the cell's content.
func (b *CellBuilder) VAlign(v VAlign) *CellBuilder {
	b.cell.vAlign = v
	return b
}

// BlankChar sets the char used to pad the cell's content to its width.
// It panics if blankChar is a line break or the zero rune.
func (b *CellBuilder) BlankChar(blankChar rune) *CellBuilder {
	checkBlankChar(blankChar)
	b.cell.blankChar = blankChar
	return b
}

// Build returns the assembled cell.
func (b *CellBuilder) Build() *Cell {
	c := b.cell
	return &c
}
