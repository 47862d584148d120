package repository

import (
	"fmt"
	"sync"

	bookingserrors "roomstay/internal/bookings/errors"
	"roomstay/pkg/model"
	"roomstay/pkg/sequence"
)

// BookingLedger stores committed bookings indexed by room and exposes the
// atomic reserve operation.
type BookingLedger interface {
	Reserve(roomID int64, guest string, startDate, endDate model.Date) (*model.Booking, error)
	BookingByID(id int64) (*model.Booking, error)
	BookingsForRoom(roomID int64) []*model.Booking
	Count() int
}

// memoryLedger keeps two levels of synchronization: the per-room lock from
// the registry serializes the scan-then-insert sequence for one room, and
// the ledger's own RWMutex guards the map structures, which every room's
// insert touches. Booking records are immutable once stored.
type memoryLedger struct {
	mu sync.RWMutex

	bookings map[int64]*model.Booking
	byRoom   map[int64][]*model.Booking

	locks *RoomLockRegistry
	ids   *sequence.Allocator
}

func NewMemoryLedger(locks *RoomLockRegistry, ids *sequence.Allocator) BookingLedger {
	return &memoryLedger{
		bookings: make(map[int64]*model.Booking),
		byRoom:   make(map[int64][]*model.Booking),
		locks:    locks,
		ids:      ids,
	}
}

// Reserve attempts to book [startDate, endDate) on the room.
//
// The scan-then-insert sequence runs while holding the room's lock, so for
// one room the committed booking set is linearizable with respect to
// Reserve calls; reservations on different rooms never block each other.
// A rejected call leaves the ledger and the id counter untouched: ids are
// allocated only after the overlap check passes.
//
// Lock acquisition has no timeout and the operation runs to completion once
// the lock is held; callers layer cancellation outside (known limitation).
// A valid, pre-validated room id is a precondition — the ledger does not
// consult the directory.
func (l *memoryLedger) Reserve(roomID int64, guest string, startDate, endDate model.Date) (*model.Booking, error) {
	if endDate.Before(startDate) {
		return nil, bookingserrors.ErrInvalidRange
	}

	// Zero-night fast path: a zero-length half-open interval overlaps
	// nothing, so it commits without the room lock.
	if endDate.Equal(startDate) {
		return l.insert(roomID, guest, startDate, endDate), nil
	}

	lock := l.locks.LockFor(roomID)
	lock.Lock()
	defer lock.Unlock()

	for _, existing := range l.roomBookings(roomID) {
		if model.Overlaps(startDate, endDate, existing.StartDate, existing.EndDate) {
			return nil, fmt.Errorf("%w: [%s, %s) taken by booking %d",
				bookingserrors.ErrConflict, existing.StartDate, existing.EndDate, existing.ID)
		}
	}

	return l.insert(roomID, guest, startDate, endDate), nil
}

func (l *memoryLedger) insert(roomID int64, guest string, startDate, endDate model.Date) *model.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking := &model.Booking{
		ID:        l.ids.Next(sequence.KindBooking),
		RoomID:    roomID,
		Guest:     guest,
		StartDate: startDate,
		EndDate:   endDate,
	}
	l.bookings[booking.ID] = booking
	l.byRoom[roomID] = append(l.byRoom[roomID], booking)

	bookingCopy := *booking
	return &bookingCopy
}

// roomBookings snapshots the room's slice header under the map lock. The
// caller holds the room lock, so no same-room append can race the scan;
// appends for other rooms only require the map lock held here.
func (l *memoryLedger) roomBookings(roomID int64) []*model.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.byRoom[roomID]
}

func (l *memoryLedger) BookingByID(id int64) (*model.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	booking, ok := l.bookings[id]
	if !ok {
		return nil, bookingserrors.ErrNotFound
	}
	bookingCopy := *booking
	return &bookingCopy, nil
}

func (l *memoryLedger) BookingsForRoom(roomID int64) []*model.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stored := l.byRoom[roomID]
	out := make([]*model.Booking, 0, len(stored))
	for _, b := range stored {
		bookingCopy := *b
		out = append(out, &bookingCopy)
	}
	return out
}

func (l *memoryLedger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}
