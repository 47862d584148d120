package service

import (
	"context"
	"errors"
	"strconv"

	bookingserrors "roomstay/internal/bookings/errors"
	"roomstay/internal/bookings/repository"
	"roomstay/internal/bookings/validator"
	"roomstay/pkg/config"
	apperrors "roomstay/pkg/errors"
	"roomstay/pkg/events"
	"roomstay/pkg/kafka"
	"roomstay/pkg/model"
	"roomstay/pkg/sanitizer"
)

// RoomChecker answers whether a room id exists. The directory repository
// satisfies it.
type RoomChecker interface {
	RoomExists(id int64) bool
}

type BookingService interface {
	Reserve(ctx context.Context, req *model.BookingCreate) (*model.Booking, error)
	Booking(ctx context.Context, id int64) (*model.Booking, error)
	RoomBookings(ctx context.Context, roomID int64) ([]*model.Booking, error)
}

type bookingService struct {
	ledger    repository.BookingLedger
	rooms     RoomChecker
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	ledger repository.BookingLedger,
	rooms RoomChecker,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		ledger:    ledger,
		rooms:     rooms,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Reserve(ctx context.Context, req *model.BookingCreate) (*model.Booking, error) {
	req.Guest = sanitizer.SanitizeName(req.Guest)

	if err := s.validator.ValidateBooking(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	if !s.rooms.RoomExists(req.RoomID) {
		return nil, apperrors.NotFoundWithID("Room", req.RoomID)
	}

	booking, err := s.ledger.Reserve(req.RoomID, req.Guest, req.StartDate, req.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, bookingserrors.ErrInvalidRange):
			return nil, apperrors.InvalidRange(err.Error())
		case errors.Is(err, bookingserrors.ErrConflict):
			s.cfg.Log.Info("Booking rejected",
				"room_id", req.RoomID,
				"start_date", req.StartDate,
				"end_date", req.EndDate,
				"reason", err,
			)
			return nil, apperrors.Conflict(err.Error())
		default:
			return nil, apperrors.Internal("Failed to reserve booking", err)
		}
	}

	s.publishBookingCreated(ctx, booking)

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"room_id", booking.RoomID,
		"start_date", booking.StartDate,
		"end_date", booking.EndDate,
	)
	return booking, nil
}

func (s *bookingService) Booking(ctx context.Context, id int64) (*model.Booking, error) {
	booking, err := s.ledger.BookingByID(id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}
	return booking, nil
}

func (s *bookingService) RoomBookings(ctx context.Context, roomID int64) ([]*model.Booking, error) {
	if !s.rooms.RoomExists(roomID) {
		return nil, apperrors.NotFoundWithID("Room", roomID)
	}
	return s.ledger.BookingsForRoom(roomID), nil
}

func (s *bookingService) publishBookingCreated(ctx context.Context, booking *model.Booking) {
	msg, err := kafka.NewMessage(kafka.EventBookingCreated).
		WithKey(strconv.FormatInt(booking.RoomID, 10)).
		WithPayload(booking).
		Build()
	if err != nil {
		s.cfg.Log.Error("Failed to build booking event", "booking_id", booking.ID, "error", err)
		return
	}

	// Publishing is best effort: the reservation is already committed.
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to publish booking event", "booking_id", booking.ID, "error", err)
	}
}
