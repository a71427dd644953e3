package repository

import (
	"context"
	"time"

	"restaurant/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 管理者一覧の1行（注文＋注文者）
type AdminOrderRow struct {
	ID          int64
	UserID      int64
	Username    string
	Email       string
	Phone       string
	TotalAmount decimal.Decimal
	Status      model.OrderStatus
	CreatedAt   time.Time
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 他人の注文は存在しない扱い
	FindOwned(ctx context.Context, orderID, userID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	// 現在のstatusがfromのときだけ更新する。更新できなければErrNotFound
	UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error
	// 作成日時の降順
	ListAdmin(ctx context.Context) ([]AdminOrderRow, error)
}
