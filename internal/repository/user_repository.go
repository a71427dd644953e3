package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/model"
)

// ユーザー名かメールが既に使われている
var ErrDuplicate = errors.New("duplicate")

type UserRepository interface {
	// 新規ユーザー作成。一意制約違反はErrDuplicate
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// ユーザー名またはメールで1件取得
	FindByLogin(ctx context.Context, identifier string) (*model.User, error)
	// どちらかが一致するユーザーがいるか
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
