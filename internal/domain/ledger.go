package domain

import "github.com/shopspring/decimal"

// Signed возвращает изменение баланса для суммы amount: Debit увеличивает долг, Credit уменьшает.
func (k EntryKind) Signed(amount decimal.Decimal) decimal.Decimal {
	if k == EntryCredit {
		return amount.Neg()
	}
	return amount
}

// ReplayBalance пересчитывает баланс по истории записей.
func ReplayBalance(entries []LedgerEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.Kind.Signed(e.Amount))
	}
	return balance
}

// IsBalanceConsistent сверяет кешированный баланс с пересчитанным по истории.
func (d *Dealer) IsBalanceConsistent() bool {
	return d.Balance.Equal(ReplayBalance(d.Transactions))
}
