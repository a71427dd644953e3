package middleware

import (
	"net/http"

	"restaurant/internal/domain/model"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthJWTの後ろに置き、roleがcapを持つか確認する
func RequireCapability(cap model.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("access denied"))
			}

			if err := usecase.Authorize(id, cap); err != nil {
				he, _ := usecase.AsHTTPError(err)
				return c.JSON(he.Status, errorJSON(he.Message))
			}
			return next(c)
		}
	}
}
