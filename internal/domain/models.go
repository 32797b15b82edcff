package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64     `json:"id"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	Email             string    `json:"email"`
	EncryptedPassword string    `json:"-"`
	Role              UserRole  `json:"role"`
}

// Dealer счет дилера (khata). Balance - кешированная сумма Transactions, см. ReplayBalance.
type Dealer struct {
	ID           int64           `json:"id"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	Name         string          `json:"name"`
	ShopName     string          `json:"shopName"`
	Location     string          `json:"location"`
	Phone        string          `json:"mobile"`
	GSTIN        string          `json:"gstin,omitempty"`
	Balance      decimal.Decimal `json:"balance"`
	Active       bool            `json:"active"`
	Transactions []LedgerEntry   `json:"transactions"`
}

// LedgerEntry одна запись движения по счету дилера. Записи только добавляются.
type LedgerEntry struct {
	ID          int64           `json:"id"`
	DealerID    int64           `json:"dealerId"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        EntryKind       `json:"type"`
	Description string          `json:"description"`
	OrderCode   string          `json:"orderId,omitempty"`
	OccurredAt  time.Time       `json:"date"`
}

type Product struct {
	ID                int64               `json:"id"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
	Size              string              `json:"size"`
	ImageURL          string              `json:"img"`
	Description       string              `json:"desc,omitempty"`
	Tag               string              `json:"tag,omitempty"`
	CrateSize         int64               `json:"crateSize"`
	PricePerCrate     decimal.Decimal     `json:"pricePerCrate"`
	CostPrice         decimal.NullDecimal `json:"costPrice"`
	Stock             int64               `json:"stock"`
	LowStockThreshold int64               `json:"lowStockThreshold"`
	BulkThreshold     int64               `json:"bulkThreshold,omitempty"`
	BulkPrice         decimal.NullDecimal `json:"bulkPrice"`
}

type Order struct {
	ID            int64           `json:"id"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	OrderCode     string          `json:"orderId"`
	DealerID      *int64          `json:"dealerId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Items         []OrderItem     `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
}

// OrderItem снимок позиции на момент заказа. ProductID обнуляется при удалении товара из каталога.
type OrderItem struct {
	ProductID *int64          `json:"productId"`
	Size      string          `json:"size"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"priceAtPurchase"`
}

// Application заявка на подключение дилера.
type Application struct {
	ID         int64             `json:"id"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	Name       string            `json:"name"`
	ShopName   string            `json:"shopName"`
	Phone      string            `json:"mobile"`
	City       string            `json:"city"`
	GSTIN      string            `json:"gstin,omitempty"`
	Volume     string            `json:"volume"`
	Status     ApplicationStatus `json:"status"`
	AdminNotes string            `json:"adminNotes,omitempty"`
	DealerID   *int64            `json:"dealerId"`
}
