package engine

import (
	"github.com/lixenwraith/saucer/audio"
	"github.com/lixenwraith/saucer/constants"
	"github.com/lixenwraith/saucer/render"
)

// runShot moves one shot up a column until it hits a saucer or leaves the top row
// The shot starts on the launch row, which it neither marks nor paints
func (g *Game) runShot(sh *Shot) {
	marked := false
	for {
		if !sleep(g.ctx, g.cfg.ShotTick) {
			return
		}

		c := g.stage.Acquire()
		if g.halted() {
			c.Release()
			return
		}
		grid := c.Grid()

		if marked {
			grid.UnmarkShot(sh.Row, sh.Col)
			if grid.At(sh.Row, sh.Col) == (Cell{}) {
				c.Erase(sh.Row, sh.Col, 1)
			}
		}
		sh.Row--

		if sh.Row < 0 {
			if g.score.Resolve(c, 0) {
				g.finish(EndAmmoExhausted)
			}
			c.Release()
			g.misses.Add(1)
			return
		}

		grid.MarkShot(sh.Row, sh.Col)
		marked = true

		owners := grid.Occupants(sh.Row, sh.Col)
		if owners.Empty() {
			c.Paint(sh.Row, sh.Col, string(constants.ShotGlyph), render.StyleShot)
			c.Release()
			continue
		}

		hits := 0
		owners.Each(func(slot int) {
			if g.table.Saucer(slot).Kill() {
				hits++
			}
		})
		grid.UnmarkShot(sh.Row, sh.Col)
		if g.score.Resolve(c, hits) {
			g.finish(EndAmmoExhausted)
		}
		c.Release()

		g.hits.Add(1)
		if hits > 0 {
			g.sound.Play(audio.EffectHit)
		}
		return
	}
}
