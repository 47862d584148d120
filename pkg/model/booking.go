package model

// Booking occupies every night of the half-open interval
// [StartDate, EndDate). StartDate == EndDate is a valid zero-night booking
// that can never overlap anything. Bookings are immutable; cancellation is
// out of scope.
//
// The Date fields carry validate:"-" because range rules (end >= start, the
// zero-night exemption) belong to the ledger, not the struct validator.
type Booking struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	Guest     string `json:"guest" validate:"required,min=1,max=120"`
	StartDate Date   `json:"start_date" validate:"-"`
	EndDate   Date   `json:"end_date" validate:"-"`
}

type BookingCreate struct {
	RoomID    int64  `json:"room_id" validate:"required,min=1"`
	Guest     string `json:"guest" validate:"required,min=1,max=120"`
	StartDate Date   `json:"start_date" validate:"-"`
	EndDate   Date   `json:"end_date" validate:"-"`
}
