package sequence

import (
	"sort"
	"sync"
	"testing"
)

func TestNext_StartsAtOneAndIncrements(t *testing.T) {
	a := NewAllocator()

	for want := int64(1); want <= 5; want++ {
		if got := a.Next(KindHotel); got != want {
			t.Fatalf("Next(KindHotel) = %d, want %d", got, want)
		}
	}

	// Kinds are independent spaces.
	if got := a.Next(KindBooking); got != 1 {
		t.Errorf("Next(KindBooking) = %d, want 1", got)
	}
	if got := a.Current(KindHotel); got != 5 {
		t.Errorf("Current(KindHotel) = %d, want 5", got)
	}
}

func TestNext_ConcurrentUniqueness(t *testing.T) {
	const (
		goroutines = 16
		perRoutine = 500
	)

	a := NewAllocator()
	ids := make(chan int64, goroutines*perRoutine)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perRoutine; j++ {
				ids <- a.Next(KindBooking)
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make([]int64, 0, goroutines*perRoutine)
	for id := range ids {
		seen = append(seen, id)
	}
	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })

	for i, id := range seen {
		if id != int64(i+1) {
			t.Fatalf("expected dense ids 1..%d, got %d at position %d", len(seen), id, i)
		}
	}
}
