package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	direrrors "roomstay/internal/directory/errors"
	"roomstay/internal/directory/repository"
	"roomstay/internal/directory/validator"
	"roomstay/pkg/config"
	apperrors "roomstay/pkg/errors"
	"roomstay/pkg/events"
	"roomstay/pkg/kafka"
	"roomstay/pkg/model"
	"roomstay/pkg/sanitizer"
)

type DirectoryService interface {
	CreateHotel(ctx context.Context, req *model.HotelCreate) (*model.Hotel, error)
	CreateRoom(ctx context.Context, req *model.RoomCreate) (*model.Room, error)
	Hotel(ctx context.Context, id int64) (*model.Hotel, error)
	Room(ctx context.Context, id int64) (*model.Room, error)
	Search(ctx context.Context, city, name string) ([]*model.Hotel, error)
	Populate(ctx context.Context, count int) (int, error)
}

type directoryService struct {
	repo      repository.HotelDirectory
	validator *validator.DirectoryValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewDirectoryService(
	repo repository.HotelDirectory,
	validator *validator.DirectoryValidator,
	publisher events.Publisher,
	cfg *config.Config,
) DirectoryService {
	return &directoryService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *directoryService) CreateHotel(ctx context.Context, req *model.HotelCreate) (*model.Hotel, error) {
	req.Name = sanitizer.SanitizeName(req.Name)
	req.City = sanitizer.SanitizeCity(req.City)

	if err := s.validator.ValidateHotel(req); err != nil {
		s.cfg.Log.Warn("Hotel validation failed", "error", err)
		return nil, apperrors.Validation("Hotel validation failed", map[string]any{"error": err.Error()})
	}

	hotel := s.repo.CreateHotel(req.Name, req.City)

	s.publishHotelCreated(ctx, hotel)

	s.cfg.Log.Info("Hotel created",
		"id", hotel.ID,
		"name", hotel.Name,
		"city", hotel.City,
	)
	return hotel, nil
}

func (s *directoryService) CreateRoom(ctx context.Context, req *model.RoomCreate) (*model.Room, error) {
	req.RoomType = sanitizer.SanitizeName(req.RoomType)

	if err := s.validator.ValidateRoom(req); err != nil {
		s.cfg.Log.Warn("Room validation failed", "error", err)
		return nil, apperrors.Validation("Room validation failed", map[string]any{"error": err.Error()})
	}

	room, err := s.repo.CreateRoom(req.HotelID, req.RoomType, req.Price)
	if err != nil {
		if errors.Is(err, direrrors.ErrHotelNotFound) {
			return nil, apperrors.NotFoundWithID("Hotel", req.HotelID)
		}
		return nil, apperrors.Internal("Failed to create room", err)
	}

	s.cfg.Log.Info("Room created",
		"id", room.ID,
		"hotel_id", room.HotelID,
		"room_type", room.RoomType,
	)
	return room, nil
}

func (s *directoryService) Hotel(ctx context.Context, id int64) (*model.Hotel, error) {
	hotel, err := s.repo.HotelByID(id)
	if err != nil {
		if errors.Is(err, direrrors.ErrHotelNotFound) {
			return nil, apperrors.NotFoundWithID("Hotel", id)
		}
		return nil, apperrors.Internal("Failed to retrieve hotel", err)
	}
	return hotel, nil
}

func (s *directoryService) Room(ctx context.Context, id int64) (*model.Room, error) {
	room, err := s.repo.RoomByID(id)
	if err != nil {
		if errors.Is(err, direrrors.ErrRoomNotFound) {
			return nil, apperrors.NotFoundWithID("Room", id)
		}
		return nil, apperrors.Internal("Failed to retrieve room", err)
	}
	return room, nil
}

func (s *directoryService) Search(ctx context.Context, city, name string) ([]*model.Hotel, error) {
	hotels := s.repo.Search(city, name)

	s.cfg.Log.Debug("Hotel search completed",
		"city", city,
		"name", name,
		"count", len(hotels),
	)
	return hotels, nil
}

// Populate bulk-creates synthetic hotels cycling the configured city list,
// for exercising search-index performance. No rooms are created and no
// events are published: a million-record drill must not flood the stream.
func (s *directoryService) Populate(ctx context.Context, count int) (int, error) {
	cities := s.cfg.SimulateCities
	created := 0

	for i := 0; i < count; i++ {
		// Bulk runs are long; honor external cancellation between records.
		if i%1024 == 0 && ctx.Err() != nil {
			s.cfg.Log.Warn("Populate cancelled", "created", created, "requested", count)
			return created, apperrors.Wrap(ctx.Err(), apperrors.CodeInternal, "populate cancelled", http.StatusInternalServerError)
		}

		name := fmt.Sprintf("Hotel-%d", i)
		city := cities[i%len(cities)]
		s.repo.CreateHotel(name, city)
		created++
	}

	s.cfg.Log.Info("Populate completed", "created", created)
	return created, nil
}

func (s *directoryService) publishHotelCreated(ctx context.Context, hotel *model.Hotel) {
	msg, err := kafka.NewMessage(kafka.EventHotelCreated).
		WithKey(strconv.FormatInt(hotel.ID, 10)).
		WithPayload(hotel).
		Build()
	if err != nil {
		s.cfg.Log.Error("Failed to build hotel event", "hotel_id", hotel.ID, "error", err)
		return
	}

	// Publishing is best effort: the record is already committed.
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to publish hotel event", "hotel_id", hotel.ID, "error", err)
	}
}
