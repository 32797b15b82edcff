// Package handoff собирает ссылку wa.me, по которой покупатель подтверждает заказ в WhatsApp.
package handoff

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
)

const waBaseURL = "https://wa.me/"

type WhatsApp struct {
	number string
}

// NewWhatsApp принимает номер магазина в любом формате, в ссылку попадут только цифры.
func NewWhatsApp(number string) *WhatsApp {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, number)
	return &WhatsApp{number: digits}
}

// OrderURL возвращает пустую строку, если номер магазина не настроен.
func (w *WhatsApp) OrderURL(order *domain.Order) string {
	if w == nil || w.number == "" || order == nil {
		return ""
	}
	return waBaseURL + w.number + "?text=" + url.QueryEscape(OrderMessage(order))
}

func OrderMessage(order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s\n", order.OrderCode)
	fmt.Fprintf(&b, "Name: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", order.CustomerPhone)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s x %d crates @ %s = %s\n",
			item.Size, item.Quantity, item.UnitPrice.StringFixed(2), item.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: %s\n", order.TotalAmount.StringFixed(2))
	fmt.Fprintf(&b, "Payment: %s", order.PaymentStatus)
	return b.String()
}
