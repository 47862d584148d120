package handler

import (
	"net/http"

	"roomstay/internal/directory/repository"
	httputil "roomstay/pkg/http"
	"roomstay/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthResponse struct {
	Status string `json:"status"`
	Hotels int    `json:"hotels,omitempty"`
	Rooms  int    `json:"rooms,omitempty"`
}

type HealthHandler struct {
	directory repository.HotelDirectory
	log       *logger.Logger
}

func NewHealthHandler(directory repository.HotelDirectory, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		directory: directory,
		log:       log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "error", err)
	}
}

// Ready reports store sizes; with an in-memory store there is no external
// dependency to probe.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ready",
		Hotels: h.directory.HotelCount(),
		Rooms:  h.directory.RoomCount(),
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
