package status

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kamstrup/intmap"
)

// Well-known counter names
const (
	SaucersSpawned = "saucer.spawned"
	SaucersKilled  = "saucer.killed"
	SaucersEscaped = "saucer.escaped"
	SaucersReused  = "saucer.reclaimed"
	ShotsFired     = "shot.fired"
	ShotsHit       = "shot.hit"
	ShotsMissed    = "shot.missed"
)

// Registry collects game metrics
// Tasks cache counter pointers at construction; hot paths only touch atomics
type Registry struct {
	Ints *Counters

	slotMu    sync.Mutex
	slotLives *intmap.Map[int, int]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:      NewCounters(),
		slotLives: intmap.New[int, int](64),
	}
}

// RecordSlotLife counts one more saucer task bound to slot
func (r *Registry) RecordSlotLife(slot int) {
	r.slotMu.Lock()
	n, _ := r.slotLives.Get(slot)
	r.slotLives.Put(slot, n+1)
	r.slotMu.Unlock()
}

// SlotLives returns how many saucer tasks have been bound to slot
func (r *Registry) SlotLives(slot int) int {
	r.slotMu.Lock()
	defer r.slotMu.Unlock()
	n, _ := r.slotLives.Get(slot)
	return n
}

// SlotsUsed returns the number of distinct saucer slots ever bound
func (r *Registry) SlotsUsed() int {
	r.slotMu.Lock()
	defer r.slotMu.Unlock()
	return r.slotLives.Len()
}

// String renders all counters on one line for the debug log
func (r *Registry) String() string {
	var b strings.Builder
	r.Ints.Range(func(key string, value int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", key, value)
	})
	fmt.Fprintf(&b, " slots=%d", r.SlotsUsed())
	return b.String()
}
