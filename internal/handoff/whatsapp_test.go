package handoff

import (
	"net/url"
	"strings"
	"testing"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *domain.Order {
	items := []domain.OrderItem{
		{Size: "1 Litre", Quantity: 10, UnitPrice: decimal.NewFromInt(120)},
		{Size: "500 ml", Quantity: 8, UnitPrice: decimal.NewFromInt(120)},
	}
	return &domain.Order{
		OrderCode:     "ORD-240131-7KQ2M",
		CustomerName:  "Ravi Traders",
		CustomerPhone: "+919876543210",
		Items:         items,
		TotalAmount:   domain.CalculateTotal(items),
		PaymentStatus: domain.PaymentUnpaid,
	}
}

func TestWhatsApp_OrderURL(t *testing.T) {
	w := NewWhatsApp("+91 99999-00000")

	link := w.OrderURL(testOrder())
	require.True(t, strings.HasPrefix(link, "https://wa.me/919999900000?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")

	assert.Contains(t, text, "Order ORD-240131-7KQ2M")
	assert.Contains(t, text, "- 1 Litre x 10 crates @ 120.00 = 1200.00")
	assert.Contains(t, text, "- 500 ml x 8 crates @ 120.00 = 960.00")
	assert.Contains(t, text, "Total: 2160.00")
	assert.Contains(t, text, "Payment: Unpaid")
}

func TestWhatsApp_Disabled(t *testing.T) {
	assert.Empty(t, NewWhatsApp("").OrderURL(testOrder()))

	var w *WhatsApp
	assert.Empty(t, w.OrderURL(testOrder()))
}
