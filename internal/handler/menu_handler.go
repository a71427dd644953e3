package handler

import (
	"net/http"
	"strconv"

	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /menu の公開API
type MenuHandler struct {
	uc *usecase.MenuUsecase
}

// DI
func NewMenuHandler(uc *usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

func (h *MenuHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/menu", h.list)
	api.GET("/menu/:id", h.get)
}

// ?limit=3 のように件数を絞れる
func (h *MenuHandler) list(c echo.Context) error {
	var limit *int
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid limit")
		}
		limit = &n
	}

	items, err := h.uc.List(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "items": items})
}

func (h *MenuHandler) get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	item, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "item": item})
}
