// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"context"
	"testing"

	"restaurant/internal/domain/model"
	"restaurant/internal/infra/db"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite opens a migrated in-memory database. It is limited to a single
// connection so every query sees the same memory database.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(context.Background(), gdb))
	return gdb
}

func SeedMenuItem(t testing.TB, gdb *gorm.DB, name, price string) model.MenuItem {
	t.Helper()
	item := model.MenuItem{Name: name, Price: decimal.RequireFromString(price), Category: "main"}
	require.NoError(t, gdb.Create(&item).Error)
	return item
}

func SeedUser(t testing.TB, gdb *gorm.DB, username string, role model.Role) model.User {
	t.Helper()
	u := model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Phone:        "090",
		Role:         role,
	}
	require.NoError(t, gdb.Create(&u).Error)
	return u
}
