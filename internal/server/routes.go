package server

import (
	"net/http"

	"restaurant/internal/handler"
	"restaurant/internal/metrics"
	mw "restaurant/internal/middleware"

	"github.com/labstack/echo/v4"
)

func registerRoutes(e *echo.Echo, d Deps) {
	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.SuccessResponse{Success: true})
	})
	e.GET("/health/ready", func(c echo.Context) error {
		sqlDB, err := d.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, handler.ErrorResponse{Success: false, Message: "database unavailable"})
		}
		return c.JSON(http.StatusOK, handler.SuccessResponse{Success: true})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	if d.UploadDir != "" {
		e.Static(d.Config.Storage.PublicPath, d.UploadDir)
	}

	api := e.Group("/api")
	auth := mw.AuthJWT(d.Auth)

	handler.NewAuthHandler(d.Auth).RegisterRoutes(api, auth)
	handler.NewMenuHandler(d.Menu).RegisterRoutes(api)
	handler.NewAdminMenuHandler(d.Menu, uploadBodyLimit(d.Config.Storage.MaxBytes)).RegisterRoutes(api, auth)
	handler.NewOrderHandler(d.Orders).RegisterRoutes(api, auth)
	handler.NewAdminOrderHandler(d.AdminOrders).RegisterRoutes(api, auth)
	handler.NewContactHandler(d.Contact).RegisterRoutes(api, auth)
}
