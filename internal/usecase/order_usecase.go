package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant/internal/domain/model"
	"restaurant/internal/logging"
	"restaurant/internal/metrics"
	repo "restaurant/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	maxOrderLines   = 100
	maxLineQuantity = 999
)

type OrderUsecase struct {
	tx         repo.TransactionManager
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, orderItems repo.OrderItemRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, orderItems: orderItems}
}

type PlaceOrderItem struct {
	MenuItemID int64           `json:"id"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type PlaceOrderInput struct {
	Items       []PlaceOrderItem
	TotalAmount decimal.Decimal
}

type OrderStatusOutput struct {
	ID     int64             `json:"id"`
	Status model.OrderStatus `json:"status"`
}

type OrderItemOutput struct {
	MenuItemID int64           `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type OrderOutput struct {
	ID          int64             `json:"id"`
	Status      model.OrderStatus `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
	Items       []OrderItemOutput `json:"items"`
}

// Place stores the order header and all its lines in one transaction. Line
// prices are taken from the menu at this moment; the submitted total must match.
func (u *OrderUsecase) Place(ctx context.Context, userID int64, in PlaceOrderInput) (int64, error) {
	if userID <= 0 {
		return 0, unauthorized("access denied")
	}
	if err := validatePlaceOrder(in); err != nil {
		return 0, err
	}

	ids := make([]int64, 0, len(in.Items))
	seen := make(map[int64]bool, len(in.Items))
	for _, it := range in.Items {
		if !seen[it.MenuItemID] {
			seen[it.MenuItemID] = true
			ids = append(ids, it.MenuItemID)
		}
	}

	var orderID int64

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		menuItems, err := r.Menu().FindByIDs(ctx, ids)
		if err != nil {
			return internal(ctx, "order.place.menu", err)
		}
		byID := make(map[int64]model.MenuItem, len(menuItems))
		for _, m := range menuItems {
			byID[m.ID] = m
		}

		lines := make([]model.OrderItem, 0, len(in.Items))
		total := decimal.Zero
		for _, it := range in.Items {
			m, ok := byID[it.MenuItemID]
			if !ok {
				return validationError(fmt.Sprintf("menu item %d not found", it.MenuItemID))
			}
			//スナップショット
			lines = append(lines, model.OrderItem{
				MenuItemID:   m.ID,
				NameSnapshot: m.Name,
				Quantity:     it.Quantity,
				Price:        m.Price,
			})
			total = total.Add(m.Price.Mul(decimal.NewFromInt(it.Quantity)))
		}
		total = total.Round(2)
		if !total.Equal(in.TotalAmount.Round(2)) {
			return validationError("total amount does not match items")
		}

		order := model.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      model.OrderStatusPending,
		}
		if err := r.Orders().Create(ctx, &order); err != nil {
			return internal(ctx, "order.place.header", err)
		}
		if err := r.OrderItems().CreateBulk(ctx, order.ID, lines); err != nil {
			return internal(ctx, "order.place.items", err)
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return 0, err
		}
		return 0, internal(ctx, "order.place.commit", err)
	}

	metrics.OrdersPlaced.Inc()
	logging.FromContext(ctx).WithFields(logrus.Fields{
		"order_id": orderID,
		"user_id":  userID,
		"lines":    len(in.Items),
	}).Info("order placed")
	return orderID, nil
}

// GetStatus treats another user's order exactly like a missing one.
func (u *OrderUsecase) GetStatus(ctx context.Context, orderID, userID int64) (OrderStatusOutput, error) {
	if orderID <= 0 {
		return OrderStatusOutput{}, notFound("order not found")
	}
	o, err := u.orders.FindOwned(ctx, orderID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderStatusOutput{}, notFound("order not found")
	}
	if err != nil {
		return OrderStatusOutput{}, internal(ctx, "order.status", err)
	}
	return OrderStatusOutput{ID: o.ID, Status: o.Status}, nil
}

func (u *OrderUsecase) ListMine(ctx context.Context, userID int64) ([]OrderOutput, error) {
	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, internal(ctx, "order.list_mine", err)
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	items, err := u.orderItems.ListByOrderIDs(ctx, ids)
	if err != nil {
		return nil, internal(ctx, "order.list_mine.items", err)
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, OrderOutput{
			ID:          o.ID,
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
			CreatedAt:   o.CreatedAt,
			Items:       toOrderItemOutputs(items[o.ID]),
		})
	}
	return outs, nil
}

func validatePlaceOrder(in PlaceOrderInput) error {
	if len(in.Items) == 0 {
		return validationError("order must contain at least one item")
	}
	if len(in.Items) > maxOrderLines {
		return validationError("too many items")
	}
	for _, it := range in.Items {
		if it.MenuItemID <= 0 {
			return validationError("invalid menu item id")
		}
		if it.Quantity <= 0 || it.Quantity > maxLineQuantity {
			return validationError("invalid quantity")
		}
	}
	// 合計は送信値と一致する必要があるので、ここでorders.total_amountの上限も見る
	if in.TotalAmount.IsNegative() || in.TotalAmount.Round(2).GreaterThanOrEqual(maxPrice) {
		return validationError("invalid total amount")
	}
	return nil
}

func toOrderItemOutputs(items []model.OrderItem) []OrderItemOutput {
	outs := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outs = append(outs, OrderItemOutput{
			MenuItemID: it.MenuItemID,
			Name:       it.NameSnapshot,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}
	return outs
}
