package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lixenwraith/saucer/core"
)

// ErrTaskLimit is returned when spawning would exceed the task budget
var ErrTaskLimit = errors.New("task limit reached")

// Tasks tracks every goroutine the game starts so teardown can join them all
type Tasks struct {
	mu    sync.Mutex
	live  int
	limit int
	wg    sync.WaitGroup
}

// NewTasks creates a group allowing at most limit live tasks
func NewTasks(limit int) *Tasks {
	return &Tasks{limit: limit}
}

// Go starts fn as a tracked task
// exit, when not nil, runs after the task's budget slot is returned, so a
// caller joining on it can spawn into the freed slot immediately.
// On error neither fn nor exit runs.
func (t *Tasks) Go(fn func(), exit func()) error {
	t.mu.Lock()
	if t.live >= t.limit {
		live := t.live
		t.mu.Unlock()
		return fmt.Errorf("%w: %d live", ErrTaskLimit, live)
	}
	t.live++
	t.wg.Add(1)
	t.mu.Unlock()

	core.Go(func() {
		defer func() {
			t.finish()
			if exit != nil {
				exit()
			}
		}()
		fn()
	})
	return nil
}

func (t *Tasks) finish() {
	t.mu.Lock()
	t.live--
	t.mu.Unlock()
	t.wg.Done()
}

// Live returns the number of running tasks
func (t *Tasks) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}

// Wait blocks until every task has returned
func (t *Tasks) Wait() {
	t.wg.Wait()
}
