package validator

import (
	"errors"
	"fmt"
	"strings"

	"roomstay/pkg/logger"
	"roomstay/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// ValidateBooking checks presence and shape only. Range rules (end before
// start, overlap) are the ledger's to enforce.
func (v *BookingValidator) ValidateBooking(booking *model.BookingCreate) error {
	var validationErrors ValidationErrors

	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			validationErrors = translateValidationErrors(validationErrs)
		} else {
			return err
		}
	}

	if booking.StartDate.IsZero() {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "StartDate",
			Message: "start_date is required",
		})
	}
	if booking.EndDate.IsZero() {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "EndDate",
			Message: "end_date is required",
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
