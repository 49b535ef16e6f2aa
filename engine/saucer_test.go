package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/saucer/config"
)

func oneRowConfig() config.Config {
	cfg := fastConfig()
	cfg.Rows = 1
	return cfg
}

// placeSaucer binds slot to row 0 with the given delay and paints it at column 0
func placeSaucer(t *testing.T, g *Game, slot, delay int) *Saucer {
	t.Helper()
	s := g.table.ResetSaucer(slot)
	s.Row = 0
	s.Delay = delay
	require.True(t, g.paintSpawn(s))
	return s
}

func advanceTo(g *Game, s *Saucer, col int) {
	g.stage.Draw(func(c *Canvas) {
		for s.Col < col {
			s.Col++
			g.advance(c, s)
		}
	})
}

func TestSaucerEscapeTiming(t *testing.T) {
	const w, h, delay = 20, 6, 2
	cfg := oneRowConfig()
	cfg.SaucerTick = 2 * time.Millisecond
	g, _ := newTestGame(t, cfg, w, h)
	prepare(t, g)

	s := g.table.ResetSaucer(0)
	s.Row = 0
	s.Delay = delay

	start := time.Now()
	g.runSaucer(s)
	elapsed := time.Since(start)

	ticks := (w - 1) + glyphLen
	assert.Equal(t, ticks, s.Col, "one column per tick from 0 until fully off screen")
	assert.GreaterOrEqual(t, elapsed, time.Duration(ticks*delay)*cfg.SaucerTick)

	assert.Equal(t, 1, g.score.Totals().Escaped)
	assert.Equal(t, int64(1), g.escaped.Load())
	g.stage.Draw(func(c *Canvas) {
		shots, saucers := c.Grid().Totals()
		assert.Zero(t, shots)
		assert.Zero(t, saucers)
	})
}

func TestSaucerGlyphSlidesRight(t *testing.T) {
	const w = 30
	g, screen := newTestGame(t, oneRowConfig(), w, 6)
	prepare(t, g)

	s := placeSaucer(t, g, 0, 1)
	assert.Equal(t, ">", strings.TrimRight(screenRow(screen, 0, w), " "))

	advanceTo(g, s, 5)
	assert.Equal(t, " <--->", strings.TrimRight(screenRow(screen, 0, w), " "))

	g.stage.Draw(func(c *Canvas) {
		grid := c.Grid()
		assert.False(t, grid.Occupants(0, 0).Has(0))
		for col := 1; col <= 5; col++ {
			assert.True(t, grid.Occupants(0, col).Has(0), "col %d", col)
		}
		_, saucers := grid.Totals()
		assert.Equal(t, glyphLen-1, saucers)
	})
}

func TestSaucerKeepsSharedCell(t *testing.T) {
	const w = 30
	g, screen := newTestGame(t, oneRowConfig(), w, 6)
	prepare(t, g)

	s := placeSaucer(t, g, 0, 1)
	advanceTo(g, s, 5)
	g.stage.Draw(func(c *Canvas) {
		c.Grid().Mark(0, 1, 1)
	})

	advanceTo(g, s, 6)
	row := screenRow(screen, 0, w)
	assert.Equal(t, "<", row[1:2], "cell held by another saucer is not blanked")
	assert.Equal(t, "<--->", row[2:7])

	g.stage.Draw(func(c *Canvas) {
		assert.Equal(t, SlotSet(0).With(1), c.Grid().Occupants(0, 1))
	})
}

func TestSaucerCleansUpWhenKilled(t *testing.T) {
	const w = 30
	g, screen := newTestGame(t, oneRowConfig(), w, 6)
	prepare(t, g)

	s := placeSaucer(t, g, 2, 1)
	advanceTo(g, s, 5)
	require.True(t, s.Kill())

	g.runSaucer(s)

	assert.False(t, s.Killed(), "owning task clears its kill flag")
	assert.Equal(t, "", strings.TrimSpace(screenRow(screen, 0, w)))
	assert.Equal(t, int64(1), g.killed.Load())
	g.stage.Draw(func(c *Canvas) {
		_, saucers := c.Grid().Totals()
		assert.Zero(t, saucers)
	})

	slot, ok := g.reclaim.take()
	assert.True(t, ok)
	assert.Equal(t, 2, slot)
}

func TestSaucerStopsWhenCancelled(t *testing.T) {
	cfg := oneRowConfig()
	cfg.SaucerTick = time.Hour
	g, _ := newTestGame(t, cfg, 30, 6)
	prepare(t, g)

	s := g.table.ResetSaucer(0)
	exited := make(chan struct{})
	go func() {
		g.runSaucer(s)
		close(exited)
	}()

	g.cancel()
	waitClosed(t, exited, time.Second, "cancelled saucer")
	assert.Zero(t, g.score.Totals().Escaped)
}
