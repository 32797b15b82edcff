package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusDispatched, true},
		{OrderStatusProcessing, OrderStatusDelivered, true},
		{OrderStatusDispatched, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusPending, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusDispatched, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDispatched, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusDispatched, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusDelivered, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestCalculateTotal(t *testing.T) {
	items := []OrderItem{
		{Size: "1 Litre", Quantity: 12, UnitPrice: decimal.NewFromInt(180)},
		{Size: "500 ml", Quantity: 3, UnitPrice: decimal.RequireFromString("150.50")},
	}
	assert.True(t, decimal.RequireFromString("2611.50").Equal(CalculateTotal(items)))
	assert.True(t, decimal.Zero.Equal(CalculateTotal(nil)))
}

func TestInsufficientStockError_Error(t *testing.T) {
	err := NewInsufficientStockError(
		StockShortage{ProductID: 1, Size: "1 Litre", Requested: 11, Available: 10},
		StockShortage{ProductID: 2, Size: "500 ml", Requested: 5, Available: 0},
	)
	assert.EqualError(t, err, "insufficient stock for 1 Litre, 500 ml")
}
