package middleware

import (
	"time"

	"restaurant/internal/logging"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger stores a request-scoped entry in the request context and logs
// one line per request. Errors are rendered here so the logged status is final.
func RequestLogger(base *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			l := base.WithFields(logrus.Fields{
				"method":    req.Method,
				"path":      c.Path(),
				"url":       req.URL.Path,
				"remote_ip": c.RealIP(),
			})
			if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
				l = l.WithField("request_id", rid)
			}
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), l)))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			l = l.WithFields(logrus.Fields{
				"status":      c.Response().Status,
				"duration_ms": time.Since(start).Milliseconds(),
			})
			switch status := c.Response().Status; {
			case err != nil && status >= 500:
				l.WithError(err).Error("request completed")
			case status >= 500:
				l.Error("request completed")
			case status >= 400:
				l.Warn("request completed")
			default:
				l.WithField("bytes", c.Response().Size).Info("request completed")
			}
			return nil
		}
	}
}
