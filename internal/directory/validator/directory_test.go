package validator

import (
	"strings"
	"testing"

	"roomstay/pkg/logger"
	"roomstay/pkg/model"
)

func newTestValidator() *DirectoryValidator {
	log := logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewDirectoryValidator(log)
}

func TestValidateHotel(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		hotel     *model.HotelCreate
		wantError bool
	}{
		{
			name:      "valid",
			hotel:     &model.HotelCreate{Name: "Oceanview", City: "Goa"},
			wantError: false,
		},
		{
			name:      "missing name",
			hotel:     &model.HotelCreate{City: "Goa"},
			wantError: true,
		},
		{
			name:      "missing city",
			hotel:     &model.HotelCreate{Name: "Oceanview"},
			wantError: true,
		},
		{
			name:      "name too long",
			hotel:     &model.HotelCreate{Name: strings.Repeat("x", 121), City: "Goa"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateHotel(tt.hotel)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateHotel() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateRoom(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		room      *model.RoomCreate
		wantError bool
	}{
		{
			name:      "valid",
			room:      &model.RoomCreate{HotelID: 1, RoomType: "Single", Price: 1000},
			wantError: false,
		},
		{
			name:      "free room is valid",
			room:      &model.RoomCreate{HotelID: 1, RoomType: "Single", Price: 0},
			wantError: false,
		},
		{
			name:      "missing hotel id",
			room:      &model.RoomCreate{RoomType: "Single", Price: 1000},
			wantError: true,
		},
		{
			name:      "missing room type",
			room:      &model.RoomCreate{HotelID: 1, Price: 1000},
			wantError: true,
		},
		{
			name:      "negative price",
			room:      &model.RoomCreate{HotelID: 1, RoomType: "Single", Price: -1},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRoom(tt.room)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateRoom() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
