package http

import (
	"errors"
	"net/http"

	"entrega/internal/pkg/errs"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusForError maps the domain error taxonomy onto HTTP status codes.
// A courier re-claiming their own order is a client mistake (400); losing
// the order to someone else is a conflict (409).
func statusForError(err error) int {
	var alreadyClaimed *errs.AlreadyClaimedError
	if errors.As(err, &alreadyClaimed) {
		if alreadyClaimed.Reason == errs.ClaimedBySelf {
			return http.StatusBadRequest
		}
		return http.StatusConflict
	}

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotOwner),
		errors.Is(err, errs.ErrNotAllowedForRole):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrIllegalState),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) ErrorResponse {
	code := statusForError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal error"
	}
	return ErrorResponse{Code: code, Message: message}
}
