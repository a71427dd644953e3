package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/domain/model"
	"restaurant/internal/metrics"
	repo "restaurant/internal/repository"

	"github.com/shopspring/decimal"
)

type AdminOrderUsecase struct {
	tx         repo.TransactionManager
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func NewAdminOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, orderItems repo.OrderItemRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, orders: orders, orderItems: orderItems}
}

type AdminOrderItem struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type AdminOrderOutput struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Status      model.OrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	Items       []AdminOrderItem  `json:"items"`
}

// 注文一覧（新しい順、明細つき）
func (u *AdminOrderUsecase) List(ctx context.Context) ([]AdminOrderOutput, error) {
	rows, err := u.orders.ListAdmin(ctx)
	if err != nil {
		return nil, internal(ctx, "admin_order.list", err)
	}

	ids := make([]int64, 0, len(rows))
	for _, o := range rows {
		ids = append(ids, o.ID)
	}
	items, err := u.orderItems.ListByOrderIDs(ctx, ids)
	if err != nil {
		return nil, internal(ctx, "admin_order.list.items", err)
	}

	outs := make([]AdminOrderOutput, 0, len(rows))
	for _, o := range rows {
		lines := make([]AdminOrderItem, 0, len(items[o.ID]))
		for _, it := range items[o.ID] {
			lines = append(lines, AdminOrderItem{Name: it.NameSnapshot, Quantity: it.Quantity, Price: it.Price})
		}
		outs = append(outs, AdminOrderOutput{
			ID:          o.ID,
			UserID:      o.UserID,
			Username:    o.Username,
			Email:       o.Email,
			Phone:       o.Phone,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
			Items:       lines,
		})
	}
	return outs, nil
}

// SetStatus applies an admin status change. Setting the current status again succeeds without a write.
func (u *AdminOrderUsecase) SetStatus(ctx context.Context, orderID int64, status string) error {
	if orderID <= 0 {
		return validationError("invalid id")
	}
	next, ok := model.ParseOrderStatus(strings.TrimSpace(status))
	if !ok {
		return validationError("invalid status")
	}

	changed := false
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 注文取得
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("order not found")
		}
		if err != nil {
			return internal(ctx, "admin_order.status.find", err)
		}

		// すでに同じなら何もしない（200）
		if o.Status == next {
			return nil
		}
		if !o.Status.CanTransitionTo(next) {
			return validationError(fmt.Sprintf("cannot change status from %s to %s", o.Status, next))
		}

		err = r.Orders().UpdateStatus(ctx, orderID, o.Status, next)
		if errors.Is(err, repo.ErrNotFound) {
			// 読んだ後に別の更新が入った
			return conflict("order status changed concurrently")
		}
		if err != nil {
			return internal(ctx, "admin_order.status.update", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return err
		}
		return internal(ctx, "admin_order.status.commit", err)
	}

	// commit後に数える
	if changed {
		metrics.OrderStatusChanges.WithLabelValues(string(next)).Inc()
	}
	return nil
}
