package handler

import (
	"encoding/json"
	"net/http"

	"roomstay/internal/directory/service"
	httputil "roomstay/pkg/http"
	"roomstay/pkg/logger"
	"roomstay/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type DirectoryHandler struct {
	service      service.DirectoryService
	defaultCount int
	log          *logger.Logger
}

func NewDirectoryHandler(service service.DirectoryService, defaultCount int, log *logger.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service:      service,
		defaultCount: defaultCount,
		log:          log,
	}
}

func (h *DirectoryHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/hotels", h.CreateHotel)
	router.GET("/api/v1/hotels/:id", h.GetHotel)
	router.POST("/api/v1/rooms", h.CreateRoom)
	router.GET("/api/v1/rooms/:id", h.GetRoom)
	router.GET("/api/v1/search", h.Search)
	router.POST("/dev/simulate", h.Simulate)
}

func (h *DirectoryHandler) CreateHotel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.HotelCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CreateHotel", "error", writeErr)
		}
		return
	}

	hotel, err := h.service.CreateHotel(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateHotel", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, hotel); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateHotel", "error", err)
	}
}

func (h *DirectoryHandler) GetHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.ExtractID(ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetHotel", "error", writeErr)
		}
		return
	}

	hotel, err := h.service.Hotel(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetHotel", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, hotel); err != nil {
		h.log.Error("failed to write success response", "handler", "GetHotel", "error", err)
	}
}

func (h *DirectoryHandler) CreateRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.RoomCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CreateRoom", "error", writeErr)
		}
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateRoom", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, room); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateRoom", "error", err)
	}
}

func (h *DirectoryHandler) GetRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.ExtractID(ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetRoom", "error", writeErr)
		}
		return
	}

	room, err := h.service.Room(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetRoom", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, room); err != nil {
		h.log.Error("failed to write success response", "handler", "GetRoom", "error", err)
	}
}

func (h *DirectoryHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	hotels, err := h.service.Search(r.Context(), query.Get("city"), query.Get("name"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, hotels, len(hotels)); err != nil {
		h.log.Error("failed to write list response", "handler", "Search", "error", err)
	}
}

type SimulateResponse struct {
	Created int `json:"created"`
}

func (h *DirectoryHandler) Simulate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count, err := httputil.ExtractCount(r, h.defaultCount)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Simulate", "error", writeErr)
		}
		return
	}

	created, err := h.service.Populate(r.Context(), count)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Simulate", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, SimulateResponse{Created: created}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Simulate", "error", err)
	}
}
