package errors

import "errors"

var (
	ErrHotelNotFound = errors.New("hotel not found")

	ErrRoomNotFound = errors.New("room not found")
)
