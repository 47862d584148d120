package validator

import (
	"strings"
	"testing"
	"time"

	"roomstay/pkg/logger"
	"roomstay/pkg/model"
)

func newTestValidator() *BookingValidator {
	return NewBookingValidator(logger.New(logger.Config{
		Level:   "error",
		Format:  logger.Text,
		Service: "test",
	}))
}

func validBooking() *model.BookingCreate {
	return &model.BookingCreate{
		RoomID:    1,
		Guest:     "Asha",
		StartDate: model.NewDate(2026, time.March, 1),
		EndDate:   model.NewDate(2026, time.March, 5),
	}
}

func TestValidateBooking(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.BookingCreate)
		wantErr string
	}{
		{
			name:   "valid booking",
			mutate: func(b *model.BookingCreate) {},
		},
		{
			name:   "zero-night booking",
			mutate: func(b *model.BookingCreate) { b.EndDate = b.StartDate },
		},
		{
			name:    "missing room id",
			mutate:  func(b *model.BookingCreate) { b.RoomID = 0 },
			wantErr: "RoomID",
		},
		{
			name:    "missing guest",
			mutate:  func(b *model.BookingCreate) { b.Guest = "" },
			wantErr: "Guest",
		},
		{
			name:    "guest too long",
			mutate:  func(b *model.BookingCreate) { b.Guest = strings.Repeat("a", 121) },
			wantErr: "Guest",
		},
		{
			name:    "missing start date",
			mutate:  func(b *model.BookingCreate) { b.StartDate = model.Date{} },
			wantErr: "start_date is required",
		},
		{
			name:    "missing end date",
			mutate:  func(b *model.BookingCreate) { b.EndDate = model.Date{} },
			wantErr: "end_date is required",
		},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := validBooking()
			tt.mutate(booking)

			err := v.ValidateBooking(booking)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// The validator does not judge date ordering; a reversed range passes here
// and is rejected later by the ledger.
func TestValidateBooking_ReversedRangePasses(t *testing.T) {
	v := newTestValidator()

	booking := validBooking()
	booking.StartDate, booking.EndDate = booking.EndDate, booking.StartDate

	if err := v.ValidateBooking(booking); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
