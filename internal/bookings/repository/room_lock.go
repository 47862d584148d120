package repository

import "sync"

// RoomLockRegistry lazily creates one mutex per room id and hands the same
// instance to every caller. The registry's own insert path is guarded so two
// first-time requests for one room can never end up with two distinct locks
// protecting the same booking set. Locks live as long as the ledger and are
// never destroyed.
type RoomLockRegistry struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewRoomLockRegistry() *RoomLockRegistry {
	return &RoomLockRegistry{locks: make(map[int64]*sync.Mutex)}
}

// LockFor returns the shared lock for roomID, creating it on first access.
func (r *RoomLockRegistry) LockFor(roomID int64) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lock, ok := r.locks[roomID]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	r.locks[roomID] = lock
	return lock
}

// Size returns the number of locks created so far.
func (r *RoomLockRegistry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locks)
}
