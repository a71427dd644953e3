package model_test

import (
	"testing"

	"restaurant/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "preparing", "completed", "cancelled"} {
		st, ok := model.ParseOrderStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, model.OrderStatus(s), st)
	}

	for _, s := range []string{"", "PENDING", "shipped", "canceled", "delivered"} {
		_, ok := model.ParseOrderStatus(s)
		assert.False(t, ok, s)
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to model.OrderStatus
		want     bool
	}{
		{model.OrderStatusPending, model.OrderStatusConfirmed, true},
		{model.OrderStatusPending, model.OrderStatusPreparing, true},
		{model.OrderStatusPending, model.OrderStatusCompleted, true},
		{model.OrderStatusPending, model.OrderStatusCancelled, true},
		{model.OrderStatusConfirmed, model.OrderStatusPreparing, true},
		{model.OrderStatusConfirmed, model.OrderStatusPending, false},
		{model.OrderStatusPreparing, model.OrderStatusConfirmed, false},
		{model.OrderStatusPreparing, model.OrderStatusCancelled, true},
		{model.OrderStatusCompleted, model.OrderStatusCancelled, false},
		{model.OrderStatusCompleted, model.OrderStatusPending, false},
		{model.OrderStatusCancelled, model.OrderStatusPending, false},
		{model.OrderStatusCancelled, model.OrderStatusConfirmed, false},
		// 同じstatusは許可
		{model.OrderStatusConfirmed, model.OrderStatusConfirmed, true},
		{model.OrderStatusCancelled, model.OrderStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, model.OrderStatusCompleted.Terminal())
	assert.True(t, model.OrderStatusCancelled.Terminal())
	assert.False(t, model.OrderStatusPending.Terminal())
	assert.False(t, model.OrderStatusPreparing.Terminal())
}
