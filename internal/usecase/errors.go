package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"restaurant/internal/logging"
)

// HTTPError carries the status a handler should answer with.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 400
func validationError(msg string) error { return NewHTTPError(http.StatusBadRequest, msg) }

// 401
func unauthorized(msg string) error { return NewHTTPError(http.StatusUnauthorized, msg) }

// 403
func forbidden(msg string) error { return NewHTTPError(http.StatusForbidden, msg) }

// 404
func notFound(msg string) error { return NewHTTPError(http.StatusNotFound, msg) }

// 409
func conflict(msg string) error { return NewHTTPError(http.StatusConflict, msg) }

// internal は原因をログに残し、利用者には詳細を返さない
func internal(ctx context.Context, op string, err error) error {
	logging.FromContext(ctx).WithError(err).WithField("op", op).Error("storage failure")
	return NewHTTPError(http.StatusInternalServerError, "internal error")
}
