package v1

import (
	"errors"
	"net/http"

	"github.com/wishweek/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Budget errors
var (
	errMonthlyNotSetInQuery = errors.New("the monthly query parameter must be set")
	errMonthlyNotADecimal   = errors.New("the monthly query parameter must be a decimal number")
)

// Transaction errors
var (
	errDateTimeNotParseable = errors.New("date parameters must be RFC3339 timestamps")
)
