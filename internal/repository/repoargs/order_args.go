package repoargs

import (
	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	OrderCode     string
	DealerID      *int64
	CustomerName  string
	CustomerPhone string
	Items         []domain.OrderItem
	TotalAmount   decimal.Decimal
	Status        domain.OrderStatus
	PaymentStatus domain.PaymentStatus
}

type UpdateOrderStatus struct {
	OrderCode     string
	Status        domain.OrderStatus
	PaymentStatus domain.PaymentStatus
}
