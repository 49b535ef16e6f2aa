package status

import (
	"strings"
	"sync"
	"testing"
)

func TestCountersConcurrentGet(t *testing.T) {
	c := NewCounters()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Get(ShotsFired).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := c.Get(ShotsFired).Load(); got != 8000 {
		t.Errorf("expected 8000, got %d", got)
	}
	if c.Count() != 1 {
		t.Errorf("expected 1 counter, got %d", c.Count())
	}
}

func TestRegistrySlotLives(t *testing.T) {
	r := NewRegistry()
	r.RecordSlotLife(2)
	r.RecordSlotLife(2)
	r.RecordSlotLife(5)

	if r.SlotLives(2) != 2 {
		t.Errorf("slot 2: expected 2 lives, got %d", r.SlotLives(2))
	}
	if r.SlotLives(0) != 0 {
		t.Errorf("slot 0: expected 0 lives, got %d", r.SlotLives(0))
	}
	if r.SlotsUsed() != 2 {
		t.Errorf("expected 2 slots used, got %d", r.SlotsUsed())
	}
}

func TestRegistryString(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(ShotsMissed).Store(3)
	r.Ints.Get(ShotsFired).Store(4)

	s := r.String()
	if !strings.HasPrefix(s, "shot.fired=4 shot.missed=3") {
		t.Errorf("unexpected order or content: %q", s)
	}
	if !strings.HasSuffix(s, "slots=0") {
		t.Errorf("missing slot summary: %q", s)
	}
}
