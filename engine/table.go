package engine

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/saucer/render"
)

// Saucer is the descriptor of one saucer slot
// Row, Delay, Color and Col are written by the Reclaimer or Controller before the
// owning task starts and afterwards only by the owning task
type Saucer struct {
	Slot  int
	Row   int
	Delay int
	Color int
	Col   int

	kill atomic.Bool
	done chan struct{}
}

// Kill sets the kill flag; true only for the caller that set it
func (s *Saucer) Kill() bool {
	return s.kill.CompareAndSwap(false, true)
}

// Killed reports whether a shot has flagged the saucer
func (s *Saucer) Killed() bool {
	return s.kill.Load()
}

// Done is closed once the owning task has exited
func (s *Saucer) Done() <-chan struct{} {
	return s.done
}

func (s *Saucer) clearKill() {
	s.kill.Store(false)
}

func (s *Saucer) exit() {
	close(s.done)
}

// Shot is the descriptor of one shot slot
type Shot struct {
	Slot int
	Col  int
	Row  int

	done chan struct{}
}

// Done is closed once the owning task has exited
func (s *Shot) Done() <-chan struct{} {
	return s.done
}

func (s *Shot) exit() {
	close(s.done)
}

// closedChan is the join handle of a slot that never had a task
func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// Table holds the saucer and shot descriptors
// Slot indices are stable for the life of the game
type Table struct {
	saucers []*Saucer
	shots   []*Shot

	rows     int
	maxDelay int

	// mu guards the random source and colour cycle
	mu        sync.Mutex
	rng       *rand.Rand
	nextColor int
}

// NewTable allocates every slot up front; seed 0 picks a time-based seed
func NewTable(maxSaucers, maxShots, rows, maxDelay int, seed uint64) *Table {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	t := &Table{
		saucers:  make([]*Saucer, maxSaucers),
		shots:    make([]*Shot, maxShots),
		rows:     rows,
		maxDelay: maxDelay,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	for i := range t.saucers {
		t.saucers[i] = &Saucer{Slot: i, done: closedChan()}
	}
	for i := range t.shots {
		t.shots[i] = &Shot{Slot: i, done: closedChan()}
	}
	return t
}

// SaucerSlots returns the number of saucer slots
func (t *Table) SaucerSlots() int { return len(t.saucers) }

// ShotSlots returns the number of shot slots
func (t *Table) ShotSlots() int { return len(t.shots) }

// Saucer returns the descriptor of slot
func (t *Table) Saucer(slot int) *Saucer {
	return t.saucers[slot]
}

// Shot returns the descriptor of slot
func (t *Table) Shot(slot int) *Shot {
	return t.shots[slot]
}

// ResetSaucer rerolls slot for a new task
// The previous occupant must have exited
func (t *Table) ResetSaucer(slot int) *Saucer {
	t.mu.Lock()
	row := t.rng.IntN(t.rows)
	delay := 1 + t.rng.IntN(t.maxDelay)
	color := t.nextColor
	t.nextColor = (t.nextColor + 1) % render.PaletteSize()
	t.mu.Unlock()

	s := t.saucers[slot]
	s.Row = row
	s.Delay = delay
	s.Color = color
	s.Col = 0
	s.clearKill()
	s.done = make(chan struct{})
	return s
}

// ResetShot binds slot to a new shot at (row, col)
// The previous occupant must have exited
func (t *Table) ResetShot(slot, col, row int) *Shot {
	s := t.shots[slot]
	s.Col = col
	s.Row = row
	s.done = make(chan struct{})
	return s
}

// Roll returns true with probability 1/n
func (t *Table) Roll(n int) bool {
	if n <= 1 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rng.IntN(n) == 0
}
