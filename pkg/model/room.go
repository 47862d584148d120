package model

// Room is immutable after creation and always references an existing hotel.
type Room struct {
	ID       int64   `json:"id"`
	HotelID  int64   `json:"hotel_id"`
	RoomType string  `json:"room_type"`
	Price    float64 `json:"price"`
}

type RoomCreate struct {
	HotelID  int64   `json:"hotel_id" validate:"required,min=1"`
	RoomType string  `json:"room_type" validate:"required,min=1,max=60"`
	Price    float64 `json:"price" validate:"gte=0"`
}
