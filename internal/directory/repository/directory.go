package repository

import (
	"sync"

	direrrors "roomstay/internal/directory/errors"
	"roomstay/pkg/model"
	"roomstay/pkg/sanitizer"
	"roomstay/pkg/sequence"
)

// HotelDirectory holds hotel and room records, the hotel→room membership
// relation, and the normalized city/name search indices.
type HotelDirectory interface {
	CreateHotel(name, city string) *model.Hotel
	CreateRoom(hotelID int64, roomType string, price float64) (*model.Room, error)
	HotelByID(id int64) (*model.Hotel, error)
	RoomByID(id int64) (*model.Room, error)
	RoomExists(id int64) bool
	Search(city, name string) []*model.Hotel
	HotelCount() int
	RoomCount() int
}

// memoryDirectory is append-only: hotels and rooms are never deleted, and
// the only in-place mutation is the room-id append on a hotel. A single
// RWMutex guards the maps and indices; lookups return copies so readers
// never observe a room-id append mid-flight.
type memoryDirectory struct {
	mu sync.RWMutex

	hotels map[int64]*model.Hotel
	rooms  map[int64]*model.Room

	hotelsByCity map[string][]int64
	hotelsByName map[string][]int64

	ids *sequence.Allocator
}

func NewMemoryDirectory(ids *sequence.Allocator) HotelDirectory {
	return &memoryDirectory{
		hotels:       make(map[int64]*model.Hotel),
		rooms:        make(map[int64]*model.Room),
		hotelsByCity: make(map[string][]int64),
		hotelsByName: make(map[string][]int64),
		ids:          ids,
	}
}

func (d *memoryDirectory) CreateHotel(name, city string) *model.Hotel {
	d.mu.Lock()
	defer d.mu.Unlock()

	hotel := &model.Hotel{
		ID:      d.ids.Next(sequence.KindHotel),
		Name:    name,
		City:    city,
		RoomIDs: []int64{},
	}
	d.hotels[hotel.ID] = hotel

	cityKey := sanitizer.IndexKey(city)
	nameKey := sanitizer.IndexKey(name)
	d.hotelsByCity[cityKey] = append(d.hotelsByCity[cityKey], hotel.ID)
	d.hotelsByName[nameKey] = append(d.hotelsByName[nameKey], hotel.ID)

	return copyHotel(hotel)
}

func (d *memoryDirectory) CreateRoom(hotelID int64, roomType string, price float64) (*model.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	hotel, ok := d.hotels[hotelID]
	if !ok {
		return nil, direrrors.ErrHotelNotFound
	}

	room := &model.Room{
		ID:       d.ids.Next(sequence.KindRoom),
		HotelID:  hotelID,
		RoomType: roomType,
		Price:    price,
	}
	d.rooms[room.ID] = room
	hotel.RoomIDs = append(hotel.RoomIDs, room.ID)

	roomCopy := *room
	return &roomCopy, nil
}

func (d *memoryDirectory) HotelByID(id int64) (*model.Hotel, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	hotel, ok := d.hotels[id]
	if !ok {
		return nil, direrrors.ErrHotelNotFound
	}
	return copyHotel(hotel), nil
}

func (d *memoryDirectory) RoomByID(id int64) (*model.Room, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	room, ok := d.rooms[id]
	if !ok {
		return nil, direrrors.ErrRoomNotFound
	}
	roomCopy := *room
	return &roomCopy, nil
}

func (d *memoryDirectory) RoomExists(id int64) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.rooms[id]
	return ok
}

// Search filters by case-insensitive exact match on the normalized indices.
// Both filters given means intersection, neither means all hotels. Result
// order is unspecified.
func (d *memoryDirectory) Search(city, name string) []*model.Hotel {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var ids []int64
	switch {
	case city != "" && name != "":
		ids = intersect(
			d.hotelsByCity[sanitizer.IndexKey(city)],
			d.hotelsByName[sanitizer.IndexKey(name)],
		)
	case city != "":
		ids = d.hotelsByCity[sanitizer.IndexKey(city)]
	case name != "":
		ids = d.hotelsByName[sanitizer.IndexKey(name)]
	default:
		ids = make([]int64, 0, len(d.hotels))
		for id := range d.hotels {
			ids = append(ids, id)
		}
	}

	hotels := make([]*model.Hotel, 0, len(ids))
	for _, id := range ids {
		if hotel, ok := d.hotels[id]; ok {
			hotels = append(hotels, copyHotel(hotel))
		}
	}
	return hotels
}

func (d *memoryDirectory) HotelCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.hotels)
}

func (d *memoryDirectory) RoomCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rooms)
}

func intersect(a, b []int64) []int64 {
	seen := make(map[int64]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}

	var out []int64
	for _, id := range b {
		if _, ok := seen[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func copyHotel(h *model.Hotel) *model.Hotel {
	hotelCopy := *h
	hotelCopy.RoomIDs = append([]int64(nil), h.RoomIDs...)
	return &hotelCopy
}
