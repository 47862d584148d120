package http

import (
	"encoding/json"
	"net/http"

	apperrors "roomstay/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data any `json:"data,omitempty"`
}

type ListResponse struct {
	Data  any `json:"data"`
	Count int `json:"count"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError maps the engine's rejection taxonomy onto HTTP statuses. Every
// rejection is an expected outcome carried as an AppError value; anything
// else is reported as an internal error without leaking detail.
func WriteError(w http.ResponseWriter, err error) error {
	var statusCode int
	var errResp ErrorResponse

	switch e := err.(type) {
	case *apperrors.AppError:
		switch e.Code {
		case apperrors.CodeNotFound:
			statusCode = http.StatusNotFound
		case apperrors.CodeConflict:
			statusCode = http.StatusConflict
		case apperrors.CodeInvalidRange, apperrors.CodeInvalidInput:
			statusCode = http.StatusBadRequest
		case apperrors.CodeValidation:
			statusCode = http.StatusUnprocessableEntity
		default:
			statusCode = http.StatusInternalServerError
		}
		errResp = ErrorResponse{
			Error:   e.Message,
			Details: e.Details,
		}
	default:
		statusCode = http.StatusInternalServerError
		errResp = ErrorResponse{
			Error: "Internal server error",
		}
	}

	return WriteJSON(w, statusCode, errResp)
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}

func WriteList(w http.ResponseWriter, data any, count int) error {
	return WriteJSON(w, http.StatusOK, ListResponse{
		Data:  data,
		Count: count,
	})
}
