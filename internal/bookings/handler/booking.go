package handler

import (
	"encoding/json"
	"net/http"

	"roomstay/internal/bookings/service"
	httputil "roomstay/pkg/http"
	"roomstay/pkg/logger"
	"roomstay/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.CreateBooking)
	router.GET("/api/v1/bookings/:id", h.GetBooking)
	router.GET("/api/v1/rooms/:id/bookings", h.ListRoomBookings)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CreateBooking", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Reserve(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateBooking", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateBooking", "error", err)
	}
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.ExtractID(ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetBooking", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Booking(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetBooking", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetBooking", "error", err)
	}
}

func (h *BookingHandler) ListRoomBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	roomID, err := httputil.ExtractID(ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListRoomBookings", "error", writeErr)
		}
		return
	}

	bookings, err := h.service.RoomBookings(r.Context(), roomID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListRoomBookings", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, bookings, len(bookings)); err != nil {
		h.log.Error("failed to write list response", "handler", "ListRoomBookings", "error", err)
	}
}
