package cligrid

// HAlign controls where a cell's content sits horizontally inside the
// cell's width.
type HAlign int

const (
	// HAlignDefault inherits the horizontal alignment from the row or
	// grid defaults. When nothing overrides it, Left applies.
	HAlignDefault HAlign = iota

	// Left places content at the left edge of the cell.
	Left

	// Right places content at the right edge of the cell.
	Right

	// Center centers content inside the cell. When the leftover width
	// is odd, the extra blank char goes on the right.
	Center

	// Fill repeats the content until it covers the full cell width. A
	// cell with empty content fills with its blank char instead.
	Fill
)

// String returns the alignment name.
func (h HAlign) String() string {
	switch h {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Center:
		return "Center"
	case Fill:
		return "Fill"
	default:
		return "HAlignDefault"
	}
}

// VAlign controls which output lines of a row a cell's content occupies
// when other cells in the same row have more lines.
type VAlign int

const (
	// VAlignDefault inherits the vertical alignment from the row or
	// grid defaults. When nothing overrides it, Top applies.
	VAlignDefault VAlign = iota

	// Top places content on the first output lines of the row.
	Top

	// Bottom places content on the last output lines of the row.
	Bottom

	// Middle centers content vertically. When the leftover height is
	// odd, the extra blank line goes below.
	Middle
)

// String returns the alignment name.
func (v VAlign) String() string {
	switch v {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Middle:
		return "Middle"
	default:
		return "VAlignDefault"
	}
}
