// Package cligrid formats terminal output in a column based grid
// style.
//
// A grid is a list of rows, a row is a list of cells, and a cell is a
// piece of content spanning one or more columns of fixed width:
//
//	[------] [------] [------]
//	[------] [---------------]
//	[-------------------------]
//
// Cell content may span multiple lines; the other cells of the row pad
// themselves with blank chars to the same height. Content is positioned
// with Left, Right, Center and Fill horizontally and Top, Bottom and
// Middle vertically. Every property can be set per cell or inherited
// from row and grid defaults.
//
// Cells, rows and grids are built once and never mutated, and a grid
// renders through its String method:
//
//	grid := cligrid.NewGridBuilder(
//		cligrid.NewRow(
//			cligrid.NewCell("one", 1),
//			cligrid.NewCell("two", 1),
//		),
//		cligrid.NewRow(
//			cligrid.NewCell("three", 2),
//		),
//	).ColumnWidth(8).Build()
//	fmt.Print(grid)
//
// Because String returns plain text ending in a newline, a rendered
// grid is itself valid cell content, so grids nest to any depth.
//
// Widths count runes, not terminal cells: wide characters and ANSI
// escape sequences are taken at their rune count, so content mixing
// those with plain text will not line up.
package cligrid
