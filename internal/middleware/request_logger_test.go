package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant/internal/logging"
	"restaurant/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithOutput("info", "json", &buf)

	e := echo.New()
	e.Use(middleware.RequestLogger(log))
	e.GET("/items/:id", func(c echo.Context) error {
		// ハンドラ側からも同じentryが取れる
		logging.FromContext(c.Request().Context()).Info("inside handler")
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	req := httptest.NewRequest(http.MethodGet, "/items/3", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inner, done map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inner))
	require.NoError(t, json.Unmarshal(lines[1], &done))

	assert.Equal(t, "inside handler", inner["msg"])
	assert.Equal(t, "/items/:id", inner["path"])
	assert.Equal(t, "request completed", done["msg"])
	assert.Equal(t, "warning", done["level"])
	assert.EqualValues(t, 404, done["status"])
}
