package engine

import (
	"time"

	"github.com/lixenwraith/saucer/audio"
	"github.com/lixenwraith/saucer/constants"
	"github.com/lixenwraith/saucer/render"
)

const glyphLen = len(constants.SaucerGlyph)

// runSaucer drives one saucer from its first paint at column 0 until it is
// killed or has slid off the right edge
// s.Col is the glyph's leading cell; the glyph covers [Col-glyphLen+1, Col]
// and its first cell is padding that blanks the column just vacated
func (g *Game) runSaucer(s *Saucer) {
	if !g.paintSpawn(s) {
		return
	}

	tick := time.Duration(s.Delay) * g.cfg.SaucerTick
	for {
		if !s.Killed() && !sleep(g.ctx, tick) {
			return
		}

		c := g.stage.Acquire()
		if g.halted() {
			c.Release()
			return
		}

		if s.Killed() {
			g.retireKilled(c, s)
			c.Release()
			g.killed.Add(1)
			g.log.Printf("saucer %d killed at col %d", s.Slot, s.Col)
			g.reclaim.Post(s.Slot)
			return
		}

		s.Col++
		if s.Col-glyphLen+1 >= c.Width() {
			limit := g.score.Escape(c)
			if limit {
				g.finish(EndEscapeLimit)
			}
			c.Release()
			g.escaped.Add(1)
			g.sound.Play(audio.EffectEscape)
			g.log.Printf("saucer %d escaped", s.Slot)
			if !limit {
				g.reclaim.Post(s.Slot)
			}
			return
		}
		g.advance(c, s)
		c.Release()
	}
}

// paintSpawn marks and paints the saucer at column 0
func (g *Game) paintSpawn(s *Saucer) bool {
	c := g.stage.Acquire()
	defer c.Release()

	if g.halted() {
		return false
	}
	c.Grid().Mark(s.Row, s.Col, s.Slot)
	c.PaintSaucer(s.Row, s.Col-glyphLen+1, constants.SaucerGlyph, s.Color)
	return true
}

// advance moves the saucer one column right; caller holds the drawing lock
func (g *Game) advance(c *Canvas, s *Saucer) {
	grid := c.Grid()
	vacated := s.Col - glyphLen + 1

	grid.Mark(s.Row, s.Col, s.Slot)
	grid.Unmark(s.Row, vacated, s.Slot)

	if grid.SaucerCount(s.Row, vacated) > 0 {
		c.PaintSaucer(s.Row, vacated+1, constants.SaucerGlyph[1:], s.Color)
		return
	}
	c.PaintSaucer(s.Row, vacated, constants.SaucerGlyph, s.Color)
}

// retireKilled clears the saucer's body from the grid and the surface
// Cells still held by another saucer keep their glyph; a cell holding a shot shows the shot
func (g *Game) retireKilled(c *Canvas, s *Saucer) {
	grid := c.Grid()
	for col := s.Col - glyphLen + 2; col <= s.Col; col++ {
		if !grid.Unmark(s.Row, col, s.Slot) {
			continue
		}
		cell := grid.At(s.Row, col)
		switch {
		case cell.Saucers > 0:
		case cell.Shots > 0:
			c.Paint(s.Row, col, string(constants.ShotGlyph), render.StyleShot)
		default:
			c.Erase(s.Row, col, 1)
		}
	}
	s.clearKill()
}
