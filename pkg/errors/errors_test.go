package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("allocator exhausted")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if wrapped.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "room not found",
			},
			expected: "NOT_FOUND: room not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("event publish failed"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: event publish failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRejectionHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"conflict", Conflict("interval overlaps"), CodeConflict, http.StatusConflict},
		{"invalid range", InvalidRange("end before start"), CodeInvalidRange, http.StatusBadRequest},
		{"not found with id", NotFoundWithID("Room", 42), CodeNotFound, http.StatusNotFound},
		{"invalid input", InvalidInput("bad payload"), CodeInvalidInput, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.wantCode)
			}
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	if !HasCode(Conflict("overlap"), CodeConflict) {
		t.Error("expected HasCode to match conflict")
	}
	if HasCode(Conflict("overlap"), CodeNotFound) {
		t.Error("expected HasCode to reject mismatched code")
	}
	if HasCode(errors.New("plain"), CodeConflict) {
		t.Error("expected HasCode to reject non-AppError")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Hotel")
	if got := AsAppError(appErr); got != appErr {
		t.Error("expected AsAppError to return the same AppError")
	}

	plain := errors.New("boom")
	got := AsAppError(plain)
	if got.Code != CodeInternal {
		t.Errorf("expected wrapped code %s, got %s", CodeInternal, got.Code)
	}
	if !errors.Is(got, plain) {
		t.Error("expected wrapped error to unwrap to original")
	}
}
