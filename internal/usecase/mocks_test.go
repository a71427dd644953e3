package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
	"restaurant/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByLogin(ctx context.Context, identifier string) (*model.User, error) {
	args := m.Called(ctx, identifier)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

var _ repo.UserRepository = (*UserRepoMock)(nil)

type MenuRepoMock struct{ mock.Mock }

func (m *MenuRepoMock) List(ctx context.Context, limit int) ([]model.MenuItem, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepoMock) FindByID(ctx context.Context, id int64) (model.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuRepoMock) FindByIDs(ctx context.Context, ids []int64) ([]model.MenuItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepoMock) Create(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	if args.Error(0) == nil {
		item.ID = 42
	}
	return args.Error(0)
}

func (m *MenuRepoMock) Update(ctx context.Context, item model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.MenuRepository = (*MenuRepoMock)(nil)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindOwned(ctx context.Context, orderID, userID int64) (model.Order, error) {
	args := m.Called(ctx, orderID, userID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	if args.Error(0) == nil {
		order.ID = 100
	}
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error {
	args := m.Called(ctx, orderID, from, to)
	return args.Error(0)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context) ([]repo.AdminOrderRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.AdminOrderRow)
	return rows, args.Error(1)
}

var _ repo.OrderRepository = (*OrderRepoMock)(nil)

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	args := m.Called(ctx, orderIDs)
	grouped, _ := args.Get(0).(map[int64][]model.OrderItem)
	return grouped, args.Error(1)
}

var _ repo.OrderItemRepository = (*OrderItemRepoMock)(nil)

type ContactRepoMock struct{ mock.Mock }

func (m *ContactRepoMock) Create(ctx context.Context, msg *model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *ContactRepoMock) List(ctx context.Context) ([]model.ContactMessage, error) {
	args := m.Called(ctx)
	msgs, _ := args.Get(0).([]model.ContactMessage)
	return msgs, args.Error(1)
}

func (m *ContactRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.ContactRepository = (*ContactRepoMock)(nil)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
// CommitErr を入れるとfnが成功してもcommit失敗として返す
type TxManagerMock struct {
	mock.Mock
	Repos     repo.TxRepos
	CommitErr error
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	if err := fn(m.Repos); err != nil {
		return err
	}
	return m.CommitErr
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	menu       repo.MenuRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) Menu() repo.MenuRepository            { return r.menu }

// =====================
// Storage / misc
// =====================

type ImageStoreMock struct{ mock.Mock }

func (m *ImageStoreMock) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	args := m.Called(ctx, name, contentType)
	return args.String(0), args.Error(1)
}

func (m *ImageStoreMock) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type fixedID string

func (f fixedID) NewID() string { return string(f) }

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

// =====================
// Helper
// =====================

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "want HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status, he.Message)
	}
}

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
