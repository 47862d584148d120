package service

import (
	"context"
	"testing"
	"time"

	"roomstay/internal/bookings/repository"
	"roomstay/internal/bookings/validator"
	"roomstay/pkg/config"
	apperrors "roomstay/pkg/errors"
	"roomstay/pkg/kafka"
	"roomstay/pkg/logger"
	"roomstay/pkg/model"
	"roomstay/pkg/sequence"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	messages []kafka.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg kafka.Message) error {
	p.messages = append(p.messages, msg)
	return nil
}

// staticRooms recognizes a fixed set of room ids.
type staticRooms map[int64]bool

func (r staticRooms) RoomExists(id int64) bool { return r[id] }

func newTestService(rooms staticRooms) (BookingService, *recordingPublisher, *sequence.Allocator) {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	cfg := &config.Config{Log: log}

	ids := sequence.NewAllocator()
	ledger := repository.NewMemoryLedger(repository.NewRoomLockRegistry(), ids)
	pub := &recordingPublisher{}
	svc := NewBookingService(ledger, rooms, validator.NewBookingValidator(log), pub, cfg)
	return svc, pub, ids
}

func validRequest() *model.BookingCreate {
	return &model.BookingCreate{
		RoomID:    1,
		Guest:     "Asha",
		StartDate: model.NewDate(2026, time.March, 1),
		EndDate:   model.NewDate(2026, time.March, 5),
	}
}

func TestReserve_CommitsAndPublishes(t *testing.T) {
	svc, pub, _ := newTestService(staticRooms{1: true})

	booking, err := svc.Reserve(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if booking.ID != 1 || booking.RoomID != 1 {
		t.Errorf("unexpected booking: %+v", booking)
	}

	if len(pub.messages) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(pub.messages))
	}
	if got := pub.messages[0].GetEventType(); got != kafka.EventBookingCreated {
		t.Errorf("event type = %q, want %q", got, kafka.EventBookingCreated)
	}
	if got := pub.messages[0].Key; got != "1" {
		t.Errorf("event key = %q, want room id %q", got, "1")
	}
}

func TestReserve_UnknownRoom(t *testing.T) {
	svc, pub, ids := newTestService(staticRooms{})

	_, err := svc.Reserve(context.Background(), validRequest())
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if len(pub.messages) != 0 {
		t.Errorf("no event should be published on rejection, got %d", len(pub.messages))
	}
	if ids.Current(sequence.KindBooking) != 0 {
		t.Errorf("rejected reservation consumed a booking id: %d", ids.Current(sequence.KindBooking))
	}
}

func TestReserve_ValidationFailure(t *testing.T) {
	svc, pub, _ := newTestService(staticRooms{1: true})

	req := validRequest()
	req.Guest = "   "

	_, err := svc.Reserve(context.Background(), req)
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	if len(pub.messages) != 0 {
		t.Errorf("no event should be published on rejection, got %d", len(pub.messages))
	}
}

func TestReserve_InvalidRange(t *testing.T) {
	svc, _, ids := newTestService(staticRooms{1: true})

	req := validRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate

	_, err := svc.Reserve(context.Background(), req)
	if !apperrors.HasCode(err, apperrors.CodeInvalidRange) {
		t.Fatalf("expected INVALID_RANGE, got %v", err)
	}
	if ids.Current(sequence.KindBooking) != 0 {
		t.Errorf("rejected reservation consumed a booking id: %d", ids.Current(sequence.KindBooking))
	}
}

func TestReserve_Conflict(t *testing.T) {
	svc, pub, _ := newTestService(staticRooms{1: true})
	ctx := context.Background()

	if _, err := svc.Reserve(ctx, validRequest()); err != nil {
		t.Fatalf("Reserve: %v", err)
	}

	req := validRequest()
	req.Guest = "Ravi"
	_, err := svc.Reserve(ctx, req)
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
	if len(pub.messages) != 1 {
		t.Errorf("expected 1 published event, got %d", len(pub.messages))
	}
}

func TestBooking_Lookup(t *testing.T) {
	svc, _, _ := newTestService(staticRooms{1: true})
	ctx := context.Background()

	created, err := svc.Reserve(ctx, validRequest())
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}

	got, err := svc.Booking(ctx, created.ID)
	if err != nil {
		t.Fatalf("Booking: %v", err)
	}
	if got.Guest != "Asha" {
		t.Errorf("guest = %q, want %q", got.Guest, "Asha")
	}

	_, err = svc.Booking(ctx, 99)
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestRoomBookings(t *testing.T) {
	svc, _, _ := newTestService(staticRooms{1: true, 2: true})
	ctx := context.Background()

	if _, err := svc.Reserve(ctx, validRequest()); err != nil {
		t.Fatalf("Reserve: %v", err)
	}

	list, err := svc.RoomBookings(ctx, 1)
	if err != nil {
		t.Fatalf("RoomBookings: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 booking, got %d", len(list))
	}

	empty, err := svc.RoomBookings(ctx, 2)
	if err != nil {
		t.Fatalf("RoomBookings: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no bookings for room 2, got %d", len(empty))
	}

	_, err = svc.RoomBookings(ctx, 42)
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected NOT_FOUND for unknown room, got %v", err)
	}
}
