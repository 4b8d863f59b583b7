package v1

import (
	"errors"
	"net/http"

	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
)

// status returns the appropriate HTTP status code for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthInvalid = errors.New("the month parameter must be a date in the format YYYY-MM-DD")
	errDateInvalid  = errors.New("date parameters must be in the format YYYY-MM-DD")
)
