package cligrid

import "strings"

// Hard defaults, applied when neither the cell, its row, nor the grid
// sets a value.
const (
	defaultColSpan       = 1
	defaultBlankChar     = ' '
	defaultColumnWidth   = 1
	defaultColumnPadding = " "
)

// Options bundles the per-cell properties that rows and grids can
// provide defaults for. The zero value of each field means "not set":
// at render time a cell resolves every property against its row's
// defaults first, then the grid's, then the package defaults (span 1,
// Left, Top, space).
type Options struct {
	// ColSpan is the number of column slots a cell occupies. Zero or
	// negative means not set.
	ColSpan int

	// HAlign is the horizontal alignment of the content.
	HAlign HAlign

	// VAlign is the vertical alignment of the content.
	VAlign VAlign

	// BlankChar is the char used to pad content to the cell width. The
	// zero rune means not set.
	BlankChar rune
}

// or returns o with every unset field taken from fallback.
func (o Options) or(fallback Options) Options {
	if o.ColSpan <= 0 {
		o.ColSpan = fallback.ColSpan
	}
	if o.HAlign == HAlignDefault {
		o.HAlign = fallback.HAlign
	}
	if o.VAlign == VAlignDefault {
		o.VAlign = fallback.VAlign
	}
	if o.BlankChar <= 0 {
		o.BlankChar = fallback.BlankChar
	}
	return o
}

// resolved returns o with every still-unset field replaced by the
// package default, so callers can rely on all fields being usable.
func (o Options) resolved() Options {
	return o.or(Options{
		ColSpan:   defaultColSpan,
		HAlign:    Left,
		VAlign:    Top,
		BlankChar: defaultBlankChar,
	})
}

// The check functions reject values that could never render coherently.
// They panic because such values are construction bugs, not runtime
// conditions; rendering itself never fails.

func checkColSpan(colSpan int) {
	if colSpan < 1 {
		panic("cligrid: column span must be at least 1")
	}
}

func checkColumnWidth(width int) {
	if width < 0 {
		panic("cligrid: column width must not be negative")
	}
}

func checkColumnPadding(padding string) {
	if strings.ContainsAny(padding, "\r\n") {
		panic("cligrid: column padding must not contain line breaks")
	}
}

func checkBlankChar(blankChar rune) {
	if blankChar <= 0 || blankChar == '\n' || blankChar == '\r' {
		panic("cligrid: blank char must not be a line break or zero")
	}
}

// checkDefaultOptions vets a caller-assembled bundle. Zero and negative
// fields mean unset and pass; a line-break blank char never renders
// coherently and is rejected like the per-field setters reject it.
func checkDefaultOptions(o Options) {
	if o.BlankChar == '\n' || o.BlankChar == '\r' {
		panic("cligrid: blank char must not be a line break")
	}
}

func checkCells(cells []*Cell) {
	for _, c := range cells {
		if c == nil {
			panic("cligrid: cell must not be nil")
		}
	}
}

func checkRows(rows []*Row) {
	for _, r := range rows {
		if r == nil {
			panic("cligrid: row must not be nil")
		}
	}
}
