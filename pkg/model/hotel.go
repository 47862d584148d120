package model

// Hotel is a directory record. ID and the name/city pair are immutable after
// creation; RoomIDs is a back-reference list that only ever grows, appended
// under the directory's own lock when a room is added.
type Hotel struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name" validate:"required,min=1,max=120"`
	City    string  `json:"city" validate:"required,min=1,max=80"`
	RoomIDs []int64 `json:"room_ids"`
}

type HotelCreate struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
	City string `json:"city" validate:"required,min=1,max=80"`
}
