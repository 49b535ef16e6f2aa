package engine

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/saucer/config"
	"github.com/lixenwraith/saucer/render"
)

func newTestScreen(t *testing.T, w, h int) (*render.TcellSurface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return render.NewTcellSurface(screen), screen
}

func screenRow(screen tcell.Screen, row, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fastConfig is a silent, deterministic configuration with millisecond ticks
func fastConfig() config.Config {
	cfg := config.Default()
	cfg.Sound = false
	cfg.Seed = 7
	cfg.SaucerTick = time.Millisecond
	cfg.ShotTick = time.Millisecond
	cfg.ExtraSaucerInterval = time.Hour
	return cfg
}

func quietOptions() Options {
	return Options{Logger: log.New(io.Discard, "", 0)}
}

func newTestGame(t *testing.T, cfg config.Config, w, h int) (*Game, tcell.SimulationScreen) {
	t.Helper()
	surface, screen := newTestScreen(t, w, h)
	g, err := NewGame(cfg, surface, quietOptions())
	require.NoError(t, err)
	return g, screen
}

// prepare wires the run context and reclaimer without starting any task,
// so tests can drive single tasks directly
func prepare(t *testing.T, g *Game) {
	t.Helper()
	g.ctx, g.cancel = context.WithCancel(context.Background())
	t.Cleanup(g.cancel)
	g.reclaim = NewReclaimer(g.ctx, g, g.log)
}

func waitClosed(t *testing.T, ch <-chan struct{}, within time.Duration, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(within):
		t.Fatalf("timed out waiting for %s", what)
	}
}

// checkCells verifies per-cell bookkeeping: counts are non-negative and the
// saucer count agrees with the owner set
func checkCells(t *testing.T, cells []Cell) {
	t.Helper()
	for i, c := range cells {
		require.GreaterOrEqual(t, c.Shots, 0, "cell %d", i)
		require.Equal(t, c.Owners.Len(), c.Saucers, "cell %d", i)
	}
}
