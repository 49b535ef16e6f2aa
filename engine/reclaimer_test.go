package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRespawner records the order of joins and spawns; joins block on a per-slot gate
type fakeRespawner struct {
	mu      sync.Mutex
	events  []string
	gates   map[int]chan struct{}
	spawned chan int
	fail    error
}

func newFakeRespawner(slots ...int) *fakeRespawner {
	f := &fakeRespawner{
		gates:   make(map[int]chan struct{}),
		spawned: make(chan int, 16),
	}
	for _, s := range slots {
		f.gates[s] = make(chan struct{})
	}
	return f
}

func (f *fakeRespawner) record(ev string) {
	f.mu.Lock()
	f.events = append(f.events, ev)
	f.mu.Unlock()
}

func (f *fakeRespawner) history() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func (f *fakeRespawner) joinSaucer(ctx context.Context, slot int) error {
	select {
	case <-f.gates[slot]:
		f.record(fmt.Sprintf("join %d", slot))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeRespawner) respawnSaucer(slot int) error {
	if f.fail != nil {
		return f.fail
	}
	f.record(fmt.Sprintf("spawn %d", slot))
	f.spawned <- slot
	return nil
}

func startReclaimer(t *testing.T, f *fakeRespawner) (*Reclaimer, context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	r := NewReclaimer(ctx, f, log.New(io.Discard, "", 0))
	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx) }()
	return r, cancel, errc
}

func TestReclaimerJoinsBeforeSpawn(t *testing.T) {
	f := newFakeRespawner(1)
	r, _, _ := startReclaimer(t, f)

	require.True(t, r.Post(1))

	select {
	case slot := <-f.spawned:
		t.Fatalf("slot %d respawned before its task was joined", slot)
	case <-time.After(30 * time.Millisecond):
	}

	close(f.gates[1])
	select {
	case slot := <-f.spawned:
		assert.Equal(t, 1, slot)
	case <-time.After(time.Second):
		t.Fatal("slot never respawned")
	}
	assert.Equal(t, []string{"join 1", "spawn 1"}, f.history())
}

func TestReclaimerPostWaitsForHandoff(t *testing.T) {
	f := newFakeRespawner(1, 2, 3)
	r, _, _ := startReclaimer(t, f)

	require.True(t, r.Post(1))
	// The reclaimer takes slot 1 and blocks joining it, so 2 fits in the handoff
	require.True(t, r.Post(2))

	posted := make(chan bool, 1)
	go func() { posted <- r.Post(3) }()

	select {
	case <-posted:
		t.Fatal("post completed while the handoff was occupied")
	case <-time.After(30 * time.Millisecond):
	}

	close(f.gates[1])
	select {
	case ok := <-posted:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("post never completed")
	}

	close(f.gates[2])
	close(f.gates[3])
	for _, want := range []int{1, 2, 3} {
		select {
		case slot := <-f.spawned:
			assert.Equal(t, want, slot)
		case <-time.After(time.Second):
			t.Fatalf("slot %d never respawned", want)
		}
	}
}

func TestReclaimerCancel(t *testing.T) {
	f := newFakeRespawner(1, 2)
	r, cancel, errc := startReclaimer(t, f)

	require.True(t, r.Post(1))
	require.True(t, r.Post(2))

	posted := make(chan bool, 1)
	go func() { posted <- r.Post(3) }()

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reclaimer did not stop")
	}
	select {
	case ok := <-posted:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("blocked poster was not released")
	}
	assert.False(t, r.Post(4))
	assert.Empty(t, f.history())
}

func TestReclaimerSpawnFailure(t *testing.T) {
	boom := errors.New("boom")
	f := newFakeRespawner(1)
	f.fail = boom
	close(f.gates[1])
	r, _, errc := startReclaimer(t, f)

	require.True(t, r.Post(1))
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("reclaimer did not report failure")
	}
	assert.False(t, r.Post(2), "posts are refused once the reclaimer stopped")
}
