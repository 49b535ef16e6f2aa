package engine

import (
	"sync"

	"github.com/lixenwraith/saucer/render"
)

// Totals is a consistent copy of the counters
type Totals struct {
	Score      int
	Ammo       int
	Escaped    int
	MaxEscaped int
	InFlight   int
}

// Scoreboard guards score, ammo, escape and in-flight counters
// Mutators take a *Canvas, so the drawing lock is always held first
type Scoreboard struct {
	mu         sync.Mutex
	score      int
	ammo       int
	escaped    int
	maxEscaped int
	inFlight   int
}

// NewScoreboard starts a game with ammo rockets and an escape limit of maxEscaped
func NewScoreboard(ammo, maxEscaped int) *Scoreboard {
	return &Scoreboard{
		ammo:       ammo,
		maxEscaped: maxEscaped,
	}
}

// Refresh repaints the status line from the current counters
func (sb *Scoreboard) Refresh(c *Canvas) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.paintLocked(c)
}

// Fire spends one rocket and counts a shot in flight; false when out of ammo
func (sb *Scoreboard) Fire(c *Canvas) bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.ammo <= 0 {
		return false
	}
	sb.ammo--
	sb.inFlight++
	sb.paintLocked(c)
	return true
}

// Resolve retires one shot that hit n saucers (0 for a miss)
// Returns true when ammo is spent and nothing remains in flight
func (sb *Scoreboard) Resolve(c *Canvas, hits int) (exhausted bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if hits > 0 {
		sb.score += hits
		sb.ammo += hits
	}
	if sb.inFlight > 0 {
		sb.inFlight--
	}
	sb.paintLocked(c)
	return sb.ammo == 0 && sb.inFlight == 0
}

// Escape counts one escaped saucer, returns true once the limit is reached
func (sb *Scoreboard) Escape(c *Canvas) (limit bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	sb.escaped++
	sb.paintLocked(c)
	return sb.escaped >= sb.maxEscaped
}

// Ammo returns rockets remaining
func (sb *Scoreboard) Ammo() int {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.ammo
}

// Totals returns a snapshot of every counter
func (sb *Scoreboard) Totals() Totals {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return Totals{
		Score:      sb.score,
		Ammo:       sb.ammo,
		Escaped:    sb.escaped,
		MaxEscaped: sb.maxEscaped,
		InFlight:   sb.inFlight,
	}
}

func (sb *Scoreboard) paintLocked(c *Canvas) {
	render.DrawStatus(c.Surface(), render.Stats{
		Score:     sb.score,
		Ammo:      sb.ammo,
		Escaped:   sb.escaped,
		MaxEscape: sb.maxEscaped,
	})
}
