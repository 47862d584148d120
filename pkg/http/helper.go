package http

import (
	"net/http"
	"strconv"

	apperrors "roomstay/pkg/errors"
)

// ExtractID parses a positive integer path parameter.
func ExtractID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.InvalidInput("invalid id parameter: " + raw)
	}
	return id, nil
}

// ExtractCount parses the optional count query parameter, falling back to
// def when absent.
func ExtractCount(r *http.Request, def int) (int, error) {
	s := r.URL.Query().Get("count")
	if s == "" {
		return def, nil
	}

	count, err := strconv.Atoi(s)
	if err != nil || count < 0 {
		return 0, apperrors.InvalidInput("invalid count parameter: " + s)
	}
	return count, nil
}
