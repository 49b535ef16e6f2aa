//go:build unix

package core

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrInsufficientTasks reports a process limit below the game's task budget
var ErrInsufficientTasks = errors.New("system does not allow enough processes for this game")

// CheckTaskCapacity fails when RLIMIT_NPROC is below need
func CheckTaskCapacity(need int) error {
	var rlim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NPROC, &rlim); err != nil {
		return fmt.Errorf("getrlimit: %w", err)
	}
	return checkLimit(uint64(rlim.Cur), need)
}

// checkLimit compares a soft limit against need; RLIM_INFINITY is the max value and always passes
func checkLimit(cur uint64, need int) error {
	if need > 0 && cur < uint64(need) {
		return fmt.Errorf("%w: limit %d, need %d", ErrInsufficientTasks, cur, need)
	}
	return nil
}
