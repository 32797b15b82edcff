package repoargs

import (
	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateDealer баланс нового дилера всегда нулевой, начальный долг проводится отдельной записью.
type CreateDealer struct {
	Name     string
	ShopName string
	Location string
	Phone    string
	GSTIN    string
}

type CreateLedgerEntry struct {
	DealerID    int64
	Amount      decimal.Decimal
	Kind        domain.EntryKind
	Description string
	OrderCode   string
}
