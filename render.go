package cligrid

import (
	"strings"
	"unicode/utf8"
)

// geometry carries a grid's column width and padding into row
// rendering. The set flags distinguish "never set" from the valid zero
// values, since width 0 and the empty padding string both render.
type geometry struct {
	width      int
	hasWidth   bool
	padding    string
	hasPadding bool
}

// renderRow writes the row's output lines to b. outer holds the owning
// grid's default options (zero when the row renders standalone), geo
// its geometry, and totalColumns its column count, which sizes fill
// rows.
//
// Layout works line by line: the row is as tall as its tallest cell,
// and on each output line every cell contributes either one of its
// content lines padded to the cell width, or a run of blank chars when
// the line falls outside the cell's vertical window.
func renderRow(b *strings.Builder, r *Row, outer Options, geo geometry, totalColumns int) {
	width := defaultColumnWidth
	if geo.hasWidth {
		width = geo.width
	} else if r.hasWidth {
		width = r.columnWidth
	}
	padding := defaultColumnPadding
	if geo.hasPadding {
		padding = geo.padding
	} else if r.hasPadding {
		padding = r.columnPadding
	}

	cells := r.cells
	if r.fill {
		span := totalColumns
		if span < 1 {
			span = 1
		}
		cells = []*Cell{{colSpan: span, hAlign: Fill}}
	}
	if len(cells) == 0 {
		b.WriteByte('\n')
		return
	}

	padWidth := utf8.RuneCountInString(padding)
	lines := make([][]string, len(cells))
	opts := make([]Options, len(cells))
	widths := make([]int, len(cells))
	height := 1
	rowWidth := padWidth * (len(cells) - 1)
	for i, c := range cells {
		lines[i] = splitLines(c.content)
		if n := len(lines[i]); n > height {
			height = n
		}
		opts[i] = c.options().or(r.defaults).or(outer).resolved()
		widths[i] = opts[i].ColSpan*width + padWidth*(opts[i].ColSpan-1)
		rowWidth += widths[i]
	}

	b.Grow(height * (rowWidth + 1))
	for line := 0; line < height; line++ {
		for i := range cells {
			if i > 0 {
				b.WriteString(padding)
			}
			b.WriteString(cellLine(lines[i], line, height, widths[i], opts[i]))
		}
		b.WriteByte('\n')
	}
}

// cellLine returns one cell's contribution to the row's output line at
// index: the matching content line padded to width when index falls
// inside the cell's vertical window, a run of blank chars otherwise.
func cellLine(lines []string, index, height, width int, opts Options) string {
	start := 0
	switch opts.VAlign {
	case Bottom:
		start = height - len(lines)
	case Middle:
		start = (height - len(lines)) / 2
	}
	if index < start || index >= start+len(lines) {
		return strings.Repeat(string(opts.BlankChar), width)
	}
	return padLine(lines[index-start], width, opts.HAlign, opts.BlankChar)
}

// padLine pads one content line with blank chars to exactly width
// runes. A line of width runes or more comes back unchanged: overlong
// content overflows its cell instead of being cut off, so the full
// content stays visible even when it breaks the column layout.
func padLine(line string, width int, h HAlign, blank rune) string {
	n := utf8.RuneCountInString(line)
	if n >= width {
		return line
	}
	switch h {
	case Right:
		return strings.Repeat(string(blank), width-n) + line
	case Center:
		left := (width - n) / 2
		return strings.Repeat(string(blank), left) + line + strings.Repeat(string(blank), width-n-left)
	case Fill:
		if n == 0 {
			return strings.Repeat(string(blank), width)
		}
		return cutRunes(strings.Repeat(line, width/n+1), width)
	default:
		return line + strings.Repeat(string(blank), width-n)
	}
}

// cutRunes returns the prefix of s that is at most n runes long.
func cutRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// splitLines splits content into its display lines: one split per
// newline, with a single trailing newline tolerated so that a rendered
// grid (whose string ends with a newline) nests as cell content without
// gaining an empty last line. A trailing carriage return is dropped
// from every line, even one no newline follows, so \r\n content lays
// out like \n content and a stray \r never survives as an invisible
// rune in the output.
func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
