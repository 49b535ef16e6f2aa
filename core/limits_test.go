//go:build unix

package core

import (
	"errors"
	"testing"
)

func TestCheckLimit(t *testing.T) {
	tests := []struct {
		name    string
		cur     uint64
		need    int
		wantErr bool
	}{
		{"infinite", ^uint64(0), 1 << 20, false},
		{"exact", 110, 110, false},
		{"plenty", 4096, 110, false},
		{"short", 50, 110, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkLimit(tt.cur, tt.need)
			if tt.wantErr != (err != nil) {
				t.Fatalf("checkLimit(%d, %d) = %v, wantErr %v", tt.cur, tt.need, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInsufficientTasks) {
				t.Errorf("expected ErrInsufficientTasks, got %v", err)
			}
		})
	}
}

func TestCheckTaskCapacitySmallNeed(t *testing.T) {
	if err := CheckTaskCapacity(1); err != nil {
		t.Fatalf("a single task should always fit: %v", err)
	}
}
