package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/handler"
	"restaurant/internal/metrics"
	mw "restaurant/internal/middleware"
	"restaurant/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps is everything the HTTP layer needs. main builds it.
type Deps struct {
	Config      config.Config
	Logger      *logrus.Logger
	DB          *gorm.DB
	Auth        *usecase.AuthUsecase
	Menu        *usecase.MenuUsecase
	Orders      *usecase.OrderUsecase
	AdminOrders *usecase.AdminOrderUsecase
	Contact     *usecase.ContactUsecase
	// ローカル保存のときだけ静的配信する
	UploadDir string
}

func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(mw.RequestLogger(d.Logger))
	// ロガーの内側でpanicを500にする
	e.Use(echomw.Recover())
	e.Use(metrics.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: d.Config.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomw.ContextTimeout(d.Config.RequestTimeout))

	registerRoutes(e, d)
	return e
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func Start(ctx context.Context, e *echo.Echo, cfg config.Config, log *logrus.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("http server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// multipartの境界やフォーム値の分だけ余裕を持たせる
func uploadBodyLimit(maxBytes int64) string {
	return fmt.Sprintf("%dK", maxBytes/1024+512)
}
