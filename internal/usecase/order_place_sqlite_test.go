package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"restaurant/internal/domain/model"
	infrarepo "restaurant/internal/infra/repository"
	"restaurant/internal/testutil"
	"restaurant/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSQLiteOrderUC(t *testing.T) (*usecase.OrderUsecase, *gorm.DB) {
	t.Helper()
	gdb := testutil.NewSQLite(t)
	uc := usecase.NewOrderUsecase(
		infrarepo.NewTxManagerGorm(gdb),
		infrarepo.NewOrderGormRepository(gdb),
		infrarepo.NewOrderItemGormRepository(gdb),
	)
	return uc, gdb
}

func countRows(t *testing.T, gdb *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(m).Count(&n).Error)
	return n
}

func TestOrderPlace_SQLite_Commit(t *testing.T) {
	uc, gdb := newSQLiteOrderUC(t)
	user := testutil.SeedUser(t, gdb, "alice", model.RoleCustomer)
	a := testutil.SeedMenuItem(t, gdb, "Gyoza", "10.00")
	b := testutil.SeedMenuItem(t, gdb, "Tea", "5.50")

	id, err := uc.Place(context.Background(), user.ID, usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItem{
			{MenuItemID: a.ID, Quantity: 2},
			{MenuItemID: b.ID, Quantity: 1},
		},
		TotalAmount: dec("25.50"),
	})
	require.NoError(t, err)

	var o model.Order
	require.NoError(t, gdb.First(&o, id).Error)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	assert.True(t, o.TotalAmount.Equal(dec("25.5")), o.TotalAmount.String())
	assert.Equal(t, int64(2), countRows(t, gdb, &model.OrderItem{}))

	// メニューの値段が後で変わっても明細は変わらない
	require.NoError(t, gdb.Model(&model.MenuItem{}).Where("id = ?", a.ID).Update("price", dec("99")).Error)
	mine, err := uc.ListMine(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Len(t, mine[0].Items, 2)
	assert.True(t, mine[0].Items[0].Price.Equal(dec("10")))
}

func TestOrderPlace_SQLite_RollbackOnItemFailure(t *testing.T) {
	uc, gdb := newSQLiteOrderUC(t)
	user := testutil.SeedUser(t, gdb, "alice", model.RoleCustomer)
	a := testutil.SeedMenuItem(t, gdb, "Gyoza", "10.00")

	// 明細のINSERTだけ失敗させる
	require.NoError(t, gdb.Callback().Create().Before("gorm:create").Register("test:fail_order_items", func(tx *gorm.DB) {
		if tx.Statement.Table == "order_items" {
			_ = tx.AddError(errors.New("forced failure"))
		}
	}))

	_, err := uc.Place(context.Background(), user.ID, usecase.PlaceOrderInput{
		Items:       []usecase.PlaceOrderItem{{MenuItemID: a.ID, Quantity: 1}},
		TotalAmount: dec("10"),
	})
	assertHTTPStatus(t, err, http.StatusInternalServerError)

	assert.Equal(t, int64(0), countRows(t, gdb, &model.Order{}))
	assert.Equal(t, int64(0), countRows(t, gdb, &model.OrderItem{}))
}

func TestOrderPlace_SQLite_UnknownItemRollsBack(t *testing.T) {
	uc, gdb := newSQLiteOrderUC(t)
	user := testutil.SeedUser(t, gdb, "alice", model.RoleCustomer)
	a := testutil.SeedMenuItem(t, gdb, "Gyoza", "10.00")

	_, err := uc.Place(context.Background(), user.ID, usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItem{
			{MenuItemID: a.ID, Quantity: 1},
			{MenuItemID: a.ID + 100, Quantity: 1},
		},
		TotalAmount: dec("10"),
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, int64(0), countRows(t, gdb, &model.Order{}))
}
