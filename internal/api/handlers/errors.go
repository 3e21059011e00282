package handlers

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/setebit/vendasml/internal/mlerrors"
)

// mapServiceError translates facade errors into Huma status errors.
// Upstream Mercado Livre failures keep their original status code so
// callers can distinguish their own mistakes (401, 403) from outages.
func mapServiceError(err error) error {
	if errors.Is(err, mlerrors.ErrNotFound) {
		return huma.Error404NotFound(err.Error())
	}
	if errors.Is(err, mlerrors.ErrDailyLimitReached) {
		return huma.Error429TooManyRequests(err.Error())
	}
	if mlerrors.IsAuthError(err) {
		return huma.Error400BadRequest(err.Error())
	}
	if se, ok := mlerrors.AsServiceError(err); ok {
		status := se.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return huma.NewError(status, se.Reason)
	}
	return huma.Error500InternalServerError(err.Error())
}
