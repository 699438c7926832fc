package documents

import (
	"errors"
	"net/http"
)

// Domain errors for generated document operations.
var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicate    = errors.New("document already exists")
	ErrInvalidID    = errors.New("invalid document id")
	ErrEmptyContent = errors.New("content must not be empty")
)

// MapHTTPStatus maps document domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidID) || errors.Is(err, ErrEmptyContent) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
