package service

import (
	"context"
	"testing"

	"roomstay/internal/directory/repository"
	"roomstay/internal/directory/validator"
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

func newTestService(cities []string) (DirectoryService, *recordingPublisher) {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	cfg := &config.Config{
		Log:                  log,
		SimulateCities:       cities,
		SimulateDefaultCount: 10,
	}

	repo := repository.NewMemoryDirectory(sequence.NewAllocator())
	pub := &recordingPublisher{}
	svc := NewDirectoryService(repo, validator.NewDirectoryValidator(log), pub, cfg)
	return svc, pub
}

func TestCreateHotel_SanitizesAndPublishes(t *testing.T) {
	svc, pub := newTestService([]string{"goa"})

	hotel, err := svc.CreateHotel(context.Background(), &model.HotelCreate{
		Name: "  Ocean   View ",
		City: " Goa ",
	})
	if err != nil {
		t.Fatalf("CreateHotel: %v", err)
	}

	if hotel.Name != "Ocean View" || hotel.City != "Goa" {
		t.Errorf("sanitized record = %q/%q, want %q/%q", hotel.Name, hotel.City, "Ocean View", "Goa")
	}
	if len(pub.messages) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(pub.messages))
	}
	if got := pub.messages[0].GetEventType(); got != kafka.EventHotelCreated {
		t.Errorf("event type = %q, want %q", got, kafka.EventHotelCreated)
	}
}

func TestCreateHotel_ValidationFailure(t *testing.T) {
	svc, pub := newTestService([]string{"goa"})

	_, err := svc.CreateHotel(context.Background(), &model.HotelCreate{Name: "   ", City: "Goa"})
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	if len(pub.messages) != 0 {
		t.Errorf("no event should be published on rejection, got %d", len(pub.messages))
	}
}

func TestCreateRoom_UnknownHotel(t *testing.T) {
	svc, _ := newTestService([]string{"goa"})

	_, err := svc.CreateRoom(context.Background(), &model.RoomCreate{
		HotelID:  42,
		RoomType: "Single",
		Price:    1000,
	})
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestSearch_FindsCreatedHotels(t *testing.T) {
	svc, _ := newTestService([]string{"goa"})
	ctx := context.Background()

	for _, h := range []model.HotelCreate{
		{Name: "Oceanview", City: "Goa"},
		{Name: "Sea Breeze", City: "Goa"},
		{Name: "Goa Grand", City: "Goa"},
		{Name: "Mountain Inn", City: "Shimla"},
	} {
		req := h
		if _, err := svc.CreateHotel(ctx, &req); err != nil {
			t.Fatalf("CreateHotel(%s): %v", h.Name, err)
		}
	}

	goa, err := svc.Search(ctx, "Goa", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(goa) != 3 {
		t.Errorf("Search(city=Goa) returned %d hotels, want 3", len(goa))
	}

	mismatch, err := svc.Search(ctx, "Goa", "Mountain Inn")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(mismatch) != 0 {
		t.Errorf("Search(city=Goa, name=Mountain Inn) returned %d hotels, want 0", len(mismatch))
	}
}

func TestPopulate_CreatesExactCount(t *testing.T) {
	svc, pub := newTestService([]string{"goa", "shimla", "pune"})
	ctx := context.Background()

	created, err := svc.Populate(ctx, 10)
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if created != 10 {
		t.Errorf("created = %d, want 10", created)
	}
	if len(pub.messages) != 0 {
		t.Errorf("populate must not publish events, got %d", len(pub.messages))
	}

	// Cities cycle through the configured list.
	goa, err := svc.Search(ctx, "goa", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(goa) != 4 {
		t.Errorf("Search(city=goa) returned %d hotels, want 4", len(goa))
	}
}

func TestPopulate_Cancelled(t *testing.T) {
	svc, _ := newTestService([]string{"goa"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	created, err := svc.Populate(ctx, 100)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if created != 0 {
		t.Errorf("created = %d, want 0", created)
	}
}
