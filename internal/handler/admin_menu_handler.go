package handler

import (
	"errors"
	"net/http"

	"restaurant/internal/domain/model"
	"restaurant/internal/middleware"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const imageField = "image"

type AdminMenuHandler struct {
	uc        *usecase.MenuUsecase
	bodyLimit string
}

// bodyLimitはecho形式（例: "6M"）
func NewAdminMenuHandler(uc *usecase.MenuUsecase, bodyLimit string) *AdminMenuHandler {
	return &AdminMenuHandler{uc: uc, bodyLimit: bodyLimit}
}

func (h *AdminMenuHandler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	g := api.Group("/admin/menu", auth, middleware.RequireCapability(model.CapManageCatalog))

	g.GET("", h.list)
	g.POST("", h.create, echomw.BodyLimit(h.bodyLimit))
	g.PUT("/:id", h.update, echomw.BodyLimit(h.bodyLimit))
	g.DELETE("/:id", h.delete)
}

func (h *AdminMenuHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), nil)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "items": items})
}

func (h *AdminMenuHandler) create(c echo.Context) error {
	img, closeImg, err := imageFromForm(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid image upload")
	}
	defer closeImg()

	id, err := h.uc.Create(c.Request().Context(), menuInputFromForm(c), img)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "itemId": id})
}

func (h *AdminMenuHandler) update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	img, closeImg, err := imageFromForm(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid image upload")
	}
	defer closeImg()

	if err := h.uc.Update(c.Request().Context(), id, menuInputFromForm(c), img); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *AdminMenuHandler) delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// multipart/urlencodedのフォーム値
func menuInputFromForm(c echo.Context) usecase.MenuInput {
	return usecase.MenuInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Category:    c.FormValue("category"),
	}
}

// 画像が無ければnilを返す
func imageFromForm(c echo.Context) (*usecase.ImageUpload, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	return &usecase.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	}, func() { f.Close() }, nil
}
