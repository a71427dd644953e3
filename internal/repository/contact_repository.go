package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	// 新しい順
	List(ctx context.Context) ([]model.ContactMessage, error)
	// 存在しなくてもエラーにしない
	Delete(ctx context.Context, id int64) error
}
