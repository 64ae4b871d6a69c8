package puzzle

import (
	"errors"
	"fmt"
)

const (
	// Size is the number of rows and columns of the grid.
	Size = 8

	// LineClearBonus is awarded for every cleared row or column.
	LineClearBonus = 20
)

var (
	ErrOutOfBounds = errors.New("block does not fit inside the grid")
	ErrCollision   = errors.New("block overlaps an occupied cell")
)

// Color tags an occupied cell. The empty string means the cell is empty.
type Color string

const (
	Empty Color = ""
	Green Color = "green"
)

// Grid is the 8x8 board. The zero value is an empty grid.
type Grid [Size][Size]Color

// Placement describes the outcome of a successful Place.
type Placement struct {
	Row, Col       int
	RowsCleared    int
	ColumnsCleared int
}

// LinesCleared returns the total number of cleared rows and columns.
func (p Placement) LinesCleared() int {
	return p.RowsCleared + p.ColumnsCleared
}

// Bonus returns the score earned by the line clears of this placement.
func (p Placement) Bonus() int {
	return p.LinesCleared() * LineClearBonus
}

func (g *Grid) Occupied(row, col int) bool {
	return g[row][col] != Empty
}

// IsFull reports whether every cell is occupied.
func (g *Grid) IsFull() bool {
	for r := range Size {
		for c := range Size {
			if !g.Occupied(r, c) {
				return false
			}
		}
	}
	return true
}

// Fits reports whether the shape can be placed with its top-left corner at (row, col).
func (g *Grid) Fits(shape Shape, row, col int) error {
	if row < 0 || col < 0 || row+shape.Height() > Size || col+shape.Width() > Size {
		return ErrOutOfBounds
	}
	for r := range shape.Height() {
		for c := range shape.Width() {
			if shape.Filled(r, c) && g.Occupied(row+r, col+c) {
				return ErrCollision
			}
		}
	}
	return nil
}

// CanPlace reports whether the shape fits at any offset of the grid.
func (g *Grid) CanPlace(shape Shape) bool {
	for row := 0; row <= Size-shape.Height(); row++ {
		for col := 0; col <= Size-shape.Width(); col++ {
			if g.Fits(shape, row, col) == nil {
				return true
			}
		}
	}
	return false
}

// AnyFits reports whether at least one of the shapes can be placed somewhere.
func (g *Grid) AnyFits(shapes []Shape) bool {
	for _, shape := range shapes {
		if g.CanPlace(shape) {
			return true
		}
	}
	return false
}

// Place puts the shape at (row, col) and clears every full row and column.
// Full rows and columns are both determined from the grid right after the
// block is written, so a cell shared by a full row and a full column counts
// toward both. The grid is left untouched when an error is returned.
func (g *Grid) Place(shape Shape, row, col int, color Color) (Placement, error) {
	if err := g.Fits(shape, row, col); err != nil {
		return Placement{}, fmt.Errorf("place %s at (%d, %d): %w", shape.Name(), row, col, err)
	}
	for r := range shape.Height() {
		for c := range shape.Width() {
			if shape.Filled(r, c) {
				g[row+r][col+c] = color
			}
		}
	}

	var fullRows, fullCols []int
	for r := range Size {
		if g.rowFull(r) {
			fullRows = append(fullRows, r)
		}
	}
	for c := range Size {
		if g.columnFull(c) {
			fullCols = append(fullCols, c)
		}
	}
	for _, r := range fullRows {
		for c := range Size {
			g[r][c] = Empty
		}
	}
	for _, c := range fullCols {
		for r := range Size {
			g[r][c] = Empty
		}
	}

	return Placement{
		Row:            row,
		Col:            col,
		RowsCleared:    len(fullRows),
		ColumnsCleared: len(fullCols),
	}, nil
}

func (g *Grid) rowFull(row int) bool {
	for c := range Size {
		if !g.Occupied(row, c) {
			return false
		}
	}
	return true
}

func (g *Grid) columnFull(col int) bool {
	for r := range Size {
		if !g.Occupied(r, col) {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (g *Grid) Reset() {
	*g = Grid{}
}
