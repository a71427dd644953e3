package repository

import (
	"context"

	"restaurant/internal/domain/model"

	"gorm.io/gorm"
)

type ContactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *ContactGormRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	msgs := []model.ContactMessage{}
	err := r.db.WithContext(ctx).Order("created_at desc, id desc").Find(&msgs).Error
	if err != nil {
		return []model.ContactMessage{}, err
	}
	return msgs, nil
}

func (r *ContactGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContactMessage{}).Error
}
