package repoargs

import "github.com/shopspring/decimal"

type SaveProduct struct {
	Size              string
	ImageURL          string
	Description       string
	Tag               string
	CrateSize         int64
	PricePerCrate     decimal.Decimal
	CostPrice         decimal.NullDecimal
	LowStockThreshold int64
	BulkThreshold     int64
	BulkPrice         decimal.NullDecimal
}

type CreateProduct struct {
	SaveProduct
	Stock int64
}
