package handler

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant/internal/logging"
	"restaurant/internal/middleware"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorResponse{Success: false, Message: msg})
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return fail(c, he.Status, he.Message)
	}

	//500
	logging.FromContext(c.Request().Context()).WithError(err).Error("unhandled error")
	return fail(c, http.StatusInternalServerError, "internal error")
}

// ErrorHandler renders echo's own errors (404 route, 405, 413, recovered panics)
// in the same envelope as handler errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(he.Code)
			return
		}
		_ = fail(c, he.Code, msg)
		return
	}
	_ = writeError(c, err)
}

func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return 0, false
	}
	return id.ID, true
}
