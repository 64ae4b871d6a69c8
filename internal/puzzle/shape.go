// Package puzzle implements the block-placement game played in block study mode.
package puzzle

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Shape is an immutable polyomino pattern. Rows are stored top to bottom.
type Shape struct {
	name  string
	cells [][]bool
}

// MustParseShape builds a shape from rows where '#' marks a filled cell
// and any other rune an empty one. All rows must have the same width.
func MustParseShape(name string, rows ...string) Shape {
	if len(rows) == 0 {
		panic(fmt.Sprintf("shape %s has no rows", name))
	}
	width := len([]rune(rows[0]))
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			panic(fmt.Sprintf("shape %s is not rectangular at row %d", name, r))
		}
		cells[r] = make([]bool, width)
		for c, ch := range runes {
			cells[r][c] = ch == '#'
		}
	}
	return Shape{name: name, cells: cells}
}

func (s Shape) Name() string {
	return s.name
}

func (s Shape) Height() int {
	return len(s.cells)
}

func (s Shape) Width() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// Filled reports whether the cell at (row, col) of the bounding box is part of the shape.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= s.Height() || col < 0 || col >= s.Width() {
		return false
	}
	return s.cells[row][col]
}

// Size returns the number of filled cells.
func (s Shape) Size() int {
	n := 0
	for _, row := range s.cells {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

func (s Shape) String() string {
	var sb strings.Builder
	for r, row := range s.cells {
		if r > 0 {
			sb.WriteString("\n")
		}
		for _, filled := range row {
			if filled {
				sb.WriteString("#")
			} else {
				sb.WriteString(".")
			}
		}
	}
	return sb.String()
}

var catalog = []Shape{
	MustParseShape("I", "####"),
	MustParseShape("big-square", "###", "###", "###"),
	MustParseShape("O", "##", "##"),
	MustParseShape("T", ".#.", "###"),
	MustParseShape("L", "#.", "#.", "##"),
	MustParseShape("corner", "##", ".#"),
	MustParseShape("J", ".#", ".#", "##"),
	MustParseShape("S", ".##", "##."),
	MustParseShape("Z", "##.", ".##"),
}

// Catalog returns the fixed set of shapes offered as rewards.
func Catalog() []Shape {
	shapes := make([]Shape, len(catalog))
	copy(shapes, catalog)
	return shapes
}

// RandomShapes picks n shapes uniformly at random from the catalog, with replacement.
func RandomShapes(rnd *rand.Rand, n int) []Shape {
	shapes := make([]Shape, n)
	for i := range shapes {
		shapes[i] = catalog[rnd.IntN(len(catalog))]
	}
	return shapes
}
