package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"gorm.io/gorm"
)

type MenuGormRepository struct {
	db *gorm.DB
}

func NewMenuGormRepository(db *gorm.DB) *MenuGormRepository {
	return &MenuGormRepository{db: db}
}

func (r *MenuGormRepository) List(ctx context.Context, limit int) ([]model.MenuItem, error) {
	q := r.db.WithContext(ctx).Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	items := []model.MenuItem{}
	if err := q.Find(&items).Error; err != nil {
		return []model.MenuItem{}, err
	}
	return items, nil
}

func (r *MenuGormRepository) FindByID(ctx context.Context, id int64) (model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.MenuItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.MenuItem{}, err
	}
	return m, nil
}

func (r *MenuGormRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.MenuItem, error) {
	items := []model.MenuItem{}
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return []model.MenuItem{}, err
	}
	return items, nil
}

func (r *MenuGormRepository) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// 全項目を置き換える（imageがnilならNULL）
// MySQLは値が同じだとRowsAffectedが0になるので存在確認は呼び出し側で行う
func (r *MenuGormRepository) Update(ctx context.Context, item model.MenuItem) error {
	return r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id = ?", item.ID).
		Select("name", "description", "price", "category", "image").
		Updates(map[string]any{
			"name":        item.Name,
			"description": item.Description,
			"price":       item.Price,
			"category":    item.Category,
			"image":       item.Image,
		}).Error
}

func (r *MenuGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
