package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type MenuRepository interface {
	// limitが0以下なら全件
	List(ctx context.Context, limit int) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id int64) (model.MenuItem, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) error
	Update(ctx context.Context, item model.MenuItem) error
	Delete(ctx context.Context, id int64) error
}
