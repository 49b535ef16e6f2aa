package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/saucer/core"
)

// IntentBuffer is the capacity of the intent channel
const IntentBuffer = 64

// EventSource is the blocking half of a tcell.Screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Reader turns terminal key events into intents, in arrival order
type Reader struct {
	source  EventSource
	table   *KeyTable
	intents chan Intent
}

// NewReader creates a reader over source using table, DefaultKeyTable when nil
func NewReader(source EventSource, table *KeyTable) *Reader {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Reader{
		source:  source,
		table:   table,
		intents: make(chan Intent, IntentBuffer),
	}
}

// Intents returns the receive side of the intent stream
// The channel is closed when the source is finalized
func (r *Reader) Intents() <-chan Intent {
	return r.intents
}

// Start launches the polling goroutine
func (r *Reader) Start() {
	core.Go(r.pollLoop)
}

func (r *Reader) pollLoop() {
	defer close(r.intents)
	for {
		ev := r.source.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if intent := r.table.Lookup(key); intent != IntentNone {
			r.intents <- intent
		}
	}
}
