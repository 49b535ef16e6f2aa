package engine

import (
	"errors"
	"fmt"
)

// ErrGridSize reports a grid that cannot be allocated
var ErrGridSize = errors.New("invalid collision grid size")

// Cell is the occupancy of one screen position
type Cell struct {
	Shots   int
	Saucers int
	Owners  SlotSet
}

// Grid is the authoritative collision state, one Cell per screen position
// Grid has no locking of its own: it is only reachable through a Canvas,
// which exists only inside the drawing critical section
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates a rows x cols grid
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridSize, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// Rows returns the grid height
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) is inside the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// At returns a copy of the cell, zero when out of bounds
func (g *Grid) At(row, col int) Cell {
	if c := g.cell(row, col); c != nil {
		return *c
	}
	return Cell{}
}

// Mark records saucer slot at (row, col)
// Returns false when out of bounds or the slot already owns the cell
func (g *Grid) Mark(row, col, slot int) bool {
	c := g.cell(row, col)
	if c == nil || c.Owners.Has(slot) {
		return false
	}
	c.Owners = c.Owners.With(slot)
	c.Saucers++
	return true
}

// Unmark removes saucer slot from (row, col)
// Returns false when out of bounds or the slot does not own the cell
func (g *Grid) Unmark(row, col, slot int) bool {
	c := g.cell(row, col)
	if c == nil || !c.Owners.Has(slot) {
		return false
	}
	c.Owners = c.Owners.Without(slot)
	c.Saucers--
	return true
}

// MarkShot records one shot at (row, col)
func (g *Grid) MarkShot(row, col int) bool {
	c := g.cell(row, col)
	if c == nil {
		return false
	}
	c.Shots++
	return true
}

// UnmarkShot removes one shot from (row, col); the count never goes negative
func (g *Grid) UnmarkShot(row, col int) bool {
	c := g.cell(row, col)
	if c == nil || c.Shots == 0 {
		return false
	}
	c.Shots--
	return true
}

// Occupants returns the saucer slots at (row, col)
func (g *Grid) Occupants(row, col int) SlotSet {
	if c := g.cell(row, col); c != nil {
		return c.Owners
	}
	return 0
}

// SaucerCount returns the number of saucers at (row, col)
func (g *Grid) SaucerCount(row, col int) int {
	if c := g.cell(row, col); c != nil {
		return c.Saucers
	}
	return 0
}

// Totals sums shot and saucer counts over the whole grid
func (g *Grid) Totals() (shots, saucers int) {
	for i := range g.cells {
		shots += g.cells[i].Shots
		saucers += g.cells[i].Saucers
	}
	return shots, saucers
}

// Snapshot returns a copy of every cell, row-major
func (g *Grid) Snapshot() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
