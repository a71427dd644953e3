package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/model"
	domainrepo "restaurant/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainrepo.ErrDuplicate
	}
	return err
}

func (r *userGormRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainrepo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ユーザー名とメールのどちらでもログインできる
func (r *userGormRepository) FindByLogin(ctx context.Context, identifier string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		Order("id asc").
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainrepo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByLoginが両方の列を見るので、どちらの値も両方の列と突き合わせる
func (r *userGormRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var n int64
	vals := []string{username, email}
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username IN ? OR email IN ?", vals, vals).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
