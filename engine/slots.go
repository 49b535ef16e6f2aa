package engine

import "math/bits"

// SlotSet is a bitmap of saucer slot indices, capacity 64
type SlotSet uint64

// Has reports whether slot is in the set
func (s SlotSet) Has(slot int) bool {
	return slot >= 0 && slot < 64 && s&(1<<uint(slot)) != 0
}

// With returns the set with slot added
func (s SlotSet) With(slot int) SlotSet {
	return s | 1<<uint(slot)
}

// Without returns the set with slot removed
func (s SlotSet) Without(slot int) SlotSet {
	return s &^ (1 << uint(slot))
}

// Len returns the number of slots in the set
func (s SlotSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether no slot is set
func (s SlotSet) Empty() bool {
	return s == 0
}

// Each calls fn for every slot in ascending order
func (s SlotSet) Each(fn func(slot int)) {
	for v := uint64(s); v != 0; v &= v - 1 {
		fn(bits.TrailingZeros64(v))
	}
}
