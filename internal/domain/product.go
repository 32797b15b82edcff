package domain

import "github.com/shopspring/decimal"

const DefaultLowStockThreshold int64 = 50

// UnitPrice цена за ящик при заказе quantity ящиков. Оптовая цена действует, если задан порог
// и количество его достигло.
func (p *Product) UnitPrice(quantity int64) decimal.Decimal {
	if p.BulkThreshold > 0 && p.BulkPrice.Valid && quantity >= p.BulkThreshold {
		return p.BulkPrice.Decimal
	}
	return p.PricePerCrate
}

// IsLowStock используется только для предупреждения в админке.
func (p *Product) IsLowStock() bool {
	return p.Stock < p.LowStockThreshold
}

// PublicProduct товар для витрины и публичных событий: себестоимость скрыта полем с тем же
// json именем, пустой указатель опускается.
type PublicProduct struct {
	Product
	CostPrice *decimal.Decimal `json:"costPrice,omitempty"`
}

func (p *Product) Public() PublicProduct {
	return PublicProduct{Product: *p}
}

func PublicCatalog(products []Product) []PublicProduct {
	public := make([]PublicProduct, len(products))
	for i := range products {
		public[i] = products[i].Public()
	}
	return public
}
