package engine

import (
	"sync"

	"github.com/lixenwraith/saucer/constants"
)

// EndReason is the condition that finished the game
type EndReason uint8

const (
	EndNone EndReason = iota
	EndQuit
	EndAmmoExhausted
	EndEscapeLimit
)

func (r EndReason) String() string {
	switch r {
	case EndQuit:
		return "user quit"
	case EndAmmoExhausted:
		return "ammo exhausted"
	case EndEscapeLimit:
		return "escape limit"
	default:
		return "none"
	}
}

// Headline is the end screen title for r
func (r EndReason) Headline() string {
	switch r {
	case EndAmmoExhausted:
		return constants.EndHeadlineAmmo
	case EndEscapeLimit:
		return constants.EndHeadlineEscape
	default:
		return constants.EndHeadlineQuit
	}
}

// EndSignal is the single end-of-game signal; the first Fire wins
type EndSignal struct {
	mu     sync.Mutex
	reason EndReason
	done   chan struct{}
}

// NewEndSignal creates an unfired signal
func NewEndSignal() *EndSignal {
	return &EndSignal{done: make(chan struct{})}
}

// Fire records reason and wakes waiters; returns false if already fired
func (e *EndSignal) Fire(reason EndReason) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.reason != EndNone || reason == EndNone {
		return false
	}
	e.reason = reason
	close(e.done)
	return true
}

// Done is closed when the signal fires
func (e *EndSignal) Done() <-chan struct{} {
	return e.done
}

// Fired reports whether the signal has fired
func (e *EndSignal) Fired() bool {
	return e.Reason() != EndNone
}

// Reason returns the winning reason, EndNone before firing
func (e *EndSignal) Reason() EndReason {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reason
}
