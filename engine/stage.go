package engine

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/saucer/render"
)

// Stage owns the drawing lock: the render surface and the collision grid are one resource
type Stage struct {
	mu      sync.Mutex
	surface render.Surface
	grid    *Grid
	width   int
	height  int
	colour  bool
	canvas  Canvas
}

// Canvas is the handle to the surface and grid while the drawing lock is held
// A Canvas must not be retained after Release
type Canvas struct {
	stage *Stage
}

// NewStage builds a stage over surface; the grid covers every row above the status line
func NewStage(surface render.Surface) (*Stage, error) {
	w, h := surface.Size()
	grid, err := NewGrid(h-1, w)
	if err != nil {
		return nil, err
	}
	s := &Stage{
		surface: surface,
		grid:    grid,
		width:   w,
		height:  h,
		colour:  surface.Colors() >= render.MinColors,
	}
	s.canvas.stage = s
	return s, nil
}

// Width returns the surface width
func (s *Stage) Width() int { return s.width }

// Height returns the surface height
func (s *Stage) Height() int { return s.height }

// LaunchRow is the row of the launch site, just above the status line
func (s *Stage) LaunchRow() int { return s.height - 2 }

// Acquire takes the drawing lock
func (s *Stage) Acquire() *Canvas {
	s.mu.Lock()
	return &s.canvas
}

// Draw runs fn inside the drawing critical section and flushes before releasing
func (s *Stage) Draw(fn func(c *Canvas)) {
	c := s.Acquire()
	defer c.Release()
	fn(c)
}

// Release flushes pending output and drops the drawing lock
func (c *Canvas) Release() {
	c.stage.surface.Flush()
	c.stage.mu.Unlock()
}

// Grid returns the collision grid
func (c *Canvas) Grid() *Grid { return c.stage.grid }

// Surface returns the render surface
func (c *Canvas) Surface() render.Surface { return c.stage.surface }

// Width returns the surface width
func (c *Canvas) Width() int { return c.stage.width }

// Paint writes text at (row, col)
func (c *Canvas) Paint(row, col int, text string, style tcell.Style) {
	c.stage.surface.Paint(row, col, text, style)
}

// PaintSaucer writes a saucer glyph in palette colour idx
func (c *Canvas) PaintSaucer(row, col int, text string, idx int) {
	c.stage.surface.Paint(row, col, text, render.SaucerStyle(idx, c.stage.colour))
}

// Erase blanks n cells at (row, col)
func (c *Canvas) Erase(row, col, n int) {
	c.stage.surface.Erase(row, col, n)
}

// Colour reports whether saucers are drawn in colour
func (c *Canvas) Colour() bool { return c.stage.colour }

// SetColour switches saucer colours on or off
func (c *Canvas) SetColour(on bool) { c.stage.colour = on }
