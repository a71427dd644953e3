package handler

import (
	"net/http"

	"restaurant/internal/domain/model"
	"restaurant/internal/middleware"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderCreateRequest struct {
	Items       []usecase.PlaceOrderItem `json:"items"`
	TotalAmount decimal.Decimal          `json:"total_amount"`
}

func (h *OrderHandler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	g := api.Group("/orders", auth, middleware.RequireCapability(model.CapPlaceOrder))

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.status)
}

func (h *OrderHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "access denied")
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	orderID, err := h.uc.Place(c.Request().Context(), userID, usecase.PlaceOrderInput{
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "orderId": orderID})
}

func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "access denied")
	}

	orders, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "orders": orders})
}

func (h *OrderHandler) status(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "access denied")
	}

	//不正なidも存在しない注文と同じ扱い
	id, ok := parseID(c, "id")
	if !ok {
		return fail(c, http.StatusNotFound, "order not found")
	}

	out, err := h.uc.GetStatus(c.Request().Context(), id, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "order": out})
}
