package usecase

import (
	"context"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"restaurant/internal/domain/model"
	"restaurant/internal/logging"
	repo "restaurant/internal/repository"

	"github.com/shopspring/decimal"
)

// 画像の保存先（ローカル or S3）
type ImageStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (ref string, err error)
	Delete(ctx context.Context, ref string) error
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

type MenuInput struct {
	Name        string
	Description string
	Price       string
	Category    string
}

// multipartで受け取った画像
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// 拡張子ごとに許可するContent-Type
var allowedImageTypes = map[string][]string{
	".jpg":  {"image/jpeg", "image/jpg"},
	".jpeg": {"image/jpeg", "image/jpg"},
	".png":  {"image/png"},
}

const maxMenuListLimit = 100

// decimal(10,2)に収まる上限（未満）
var maxPrice = decimal.NewFromInt(100_000_000)

type MenuUsecase struct {
	menu     repo.MenuRepository
	images   ImageStore
	ids      IDGenerator
	maxBytes int64
}

// DI
func NewMenuUsecase(menu repo.MenuRepository, images ImageStore, ids IDGenerator, maxBytes int64) *MenuUsecase {
	return &MenuUsecase{menu: menu, images: images, ids: ids, maxBytes: maxBytes}
}

// 新しい順。limitがnilなら全件
func (u *MenuUsecase) List(ctx context.Context, limit *int) ([]model.MenuItem, error) {
	n := 0
	if limit != nil {
		if *limit < 1 || *limit > maxMenuListLimit {
			return nil, validationError("invalid limit")
		}
		n = *limit
	}
	items, err := u.menu.List(ctx, n)
	if err != nil {
		return nil, internal(ctx, "menu.list", err)
	}
	return items, nil
}

func (u *MenuUsecase) Get(ctx context.Context, id int64) (model.MenuItem, error) {
	if id <= 0 {
		return model.MenuItem{}, validationError("invalid id")
	}
	item, err := u.menu.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.MenuItem{}, notFound("menu item not found")
	}
	if err != nil {
		return model.MenuItem{}, internal(ctx, "menu.get", err)
	}
	return item, nil
}

func (u *MenuUsecase) Create(ctx context.Context, in MenuInput, img *ImageUpload) (int64, error) {
	item, err := buildMenuItem(in)
	if err != nil {
		return 0, err
	}
	if img != nil {
		ref, err := u.storeImage(ctx, img)
		if err != nil {
			return 0, err
		}
		item.Image = &ref
	}

	if err := u.menu.Create(ctx, &item); err != nil {
		if item.Image != nil {
			u.discardImage(ctx, *item.Image)
		}
		return 0, internal(ctx, "menu.create", err)
	}
	return item.ID, nil
}

// Update replaces the item's fields. Without a new image the current one is kept.
func (u *MenuUsecase) Update(ctx context.Context, id int64, in MenuInput, img *ImageUpload) error {
	if id <= 0 {
		return validationError("invalid id")
	}
	item, err := buildMenuItem(in)
	if err != nil {
		return err
	}

	current, err := u.menu.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound("menu item not found")
	}
	if err != nil {
		return internal(ctx, "menu.update.find", err)
	}

	item.ID = id
	item.Image = current.Image
	if img != nil {
		ref, err := u.storeImage(ctx, img)
		if err != nil {
			return err
		}
		item.Image = &ref
	}

	if err := u.menu.Update(ctx, item); err != nil {
		if img != nil {
			u.discardImage(ctx, *item.Image)
		}
		return internal(ctx, "menu.update", err)
	}

	//差し替えた古い画像を消す
	if img != nil && current.Image != nil {
		u.discardImage(ctx, *current.Image)
	}
	return nil
}

// Delete removes the image first, best-effort, then the row.
func (u *MenuUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return validationError("invalid id")
	}
	current, err := u.menu.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound("menu item not found")
	}
	if err != nil {
		return internal(ctx, "menu.delete.find", err)
	}

	if current.Image != nil {
		u.discardImage(ctx, *current.Image)
	}

	err = u.menu.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound("menu item not found")
	}
	if err != nil {
		return internal(ctx, "menu.delete", err)
	}
	return nil
}

func (u *MenuUsecase) storeImage(ctx context.Context, img *ImageUpload) (string, error) {
	ext, contentType, err := ValidateImage(img.Filename, img.ContentType)
	if err != nil {
		return "", err
	}
	if img.Size <= 0 {
		return "", validationError("image is empty")
	}
	if img.Size > u.maxBytes {
		return "", validationError("image is too large")
	}

	// 宣言サイズは信用しない
	body := io.LimitReader(img.Body, u.maxBytes)
	ref, err := u.images.Save(ctx, u.ids.NewID()+ext, contentType, body)
	if err != nil {
		return "", internal(ctx, "menu.image.save", err)
	}
	return ref, nil
}

func (u *MenuUsecase) discardImage(ctx context.Context, ref string) {
	if err := u.images.Delete(ctx, ref); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("image", ref).Warn("image delete failed")
	}
}

// ValidateImage accepts a file only when both its extension and its declared
// content type are on the allow-list and name the same format.
func ValidateImage(filename, contentType string) (ext string, mediaType string, err error) {
	ext = strings.ToLower(filepath.Ext(filename))
	allowed, ok := allowedImageTypes[ext]
	if !ok {
		return "", "", validationError("only jpeg, jpg and png images are allowed")
	}

	mediaType, _, perr := mime.ParseMediaType(contentType)
	if perr != nil {
		return "", "", validationError("only jpeg, jpg and png images are allowed")
	}
	for _, t := range allowed {
		if strings.EqualFold(mediaType, t) {
			return ext, strings.ToLower(mediaType), nil
		}
	}
	return "", "", validationError("only jpeg, jpg and png images are allowed")
}

func buildMenuItem(in MenuInput) (model.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.MenuItem{}, validationError("name is required")
	}
	if len(name) > 100 {
		return model.MenuItem{}, validationError("name is too long")
	}
	category := strings.TrimSpace(in.Category)
	if len(category) > 50 {
		return model.MenuItem{}, validationError("category is too long")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil {
		return model.MenuItem{}, validationError("invalid price")
	}
	// 保存される値で範囲を見る
	price = price.Round(2)
	if price.IsNegative() || price.GreaterThanOrEqual(maxPrice) {
		return model.MenuItem{}, validationError("invalid price")
	}

	return model.MenuItem{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		Category:    category,
	}, nil
}
