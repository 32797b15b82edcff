package domain

import "github.com/shopspring/decimal"

// orderStatusRank порядок статусов доставки. Cancelled в порядок не входит.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusDispatched: 2,
	OrderStatusDelivered:  3,
}

// CanTransitionTo проверяет переход статуса заказа. Движение только вперед (пропуски разрешены),
// отмена только из Pending и Processing, повтор текущего статуса допустим.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	if next == OrderStatusCancelled {
		return s == OrderStatusPending || s == OrderStatusProcessing
	}
	from, okFrom := orderStatusRank[s]
	to, okTo := orderStatusRank[next]
	if !okFrom || !okTo {
		return false
	}
	return to > from
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// CalculateTotal сумма заказа по снимкам цен позиций.
func CalculateTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
