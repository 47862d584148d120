package sequence

import "sync/atomic"

// Kind names an independent identifier space.
type Kind int

const (
	KindHotel Kind = iota
	KindRoom
	KindBooking

	kindCount
)

// Allocator issues monotonically increasing identifiers per kind, starting
// at 1. Every call returns a distinct value even under concurrent use; ids
// are never reused. The allocator itself introduces no gaps — callers must
// only allocate once the record is certain to commit.
type Allocator struct {
	counters [kindCount]atomic.Int64
}

func NewAllocator() *Allocator {
	return &Allocator{}
}

func (a *Allocator) Next(kind Kind) int64 {
	return a.counters[kind].Add(1)
}

// Current returns the last id issued for kind, 0 if none.
func (a *Allocator) Current(kind Kind) int64 {
	return a.counters[kind].Load()
}
