package engine

import (
	"context"
	"log"
	"sync"
)

// respawner is the game side of reclamation
type respawner interface {
	// joinSaucer blocks until the task last bound to slot has exited
	joinSaucer(ctx context.Context, slot int) error
	// respawnSaucer rebinds slot to a fresh descriptor and starts its task
	respawnSaucer(slot int) error
}

const noSlot = -1

// Reclaimer turns retired saucer slots into replacement saucers
// Retiring tasks hand over one slot at a time; a poster waits while the handoff is full
type Reclaimer struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending int
	closed  bool

	target respawner
	log    *log.Logger
	stop   func() bool
}

// NewReclaimer creates a reclaimer whose waits end when ctx is done
func NewReclaimer(ctx context.Context, target respawner, logger *log.Logger) *Reclaimer {
	r := &Reclaimer{
		pending: noSlot,
		target:  target,
		log:     logger,
	}
	r.cond = sync.NewCond(&r.mu)
	r.stop = context.AfterFunc(ctx, r.close)
	return r
}

func (r *Reclaimer) close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.cond.Broadcast()
}

// Post hands slot to the reclaimer, waiting while an earlier slot is still pending
// Returns false if the game ended first
func (r *Reclaimer) Post(slot int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.pending != noSlot && !r.closed {
		r.cond.Wait()
	}
	if r.closed {
		return false
	}
	r.pending = slot
	r.cond.Broadcast()
	return true
}

// take waits for a posted slot and empties the handoff
func (r *Reclaimer) take() (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.pending == noSlot && !r.closed {
		r.cond.Wait()
	}
	if r.closed {
		return noSlot, false
	}
	slot := r.pending
	r.pending = noSlot
	r.cond.Broadcast()
	return slot, true
}

// Run reclaims slots until ctx is done
// A respawn failure is returned; cancellation is not an error
// Once Run returns, pending and future posts are refused
func (r *Reclaimer) Run(ctx context.Context) error {
	defer func() {
		r.stop()
		r.close()
	}()

	for {
		slot, ok := r.take()
		if !ok {
			return nil
		}

		if err := r.target.joinSaucer(ctx, slot); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		if err := r.target.respawnSaucer(slot); err != nil {
			return err
		}
		r.log.Printf("reclaimed saucer slot %d", slot)
	}
}
