package statement

import (
	"bytes"
	"testing"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	at := time.Date(2024, 1, 31, 10, 30, 0, 0, time.UTC)
	dealer := &domain.Dealer{
		ID:       7,
		Name:     "Ravi",
		ShopName: "Ravi Traders",
		Phone:    "+919876543210",
		Balance:  decimal.NewFromInt(300),
		Transactions: []domain.LedgerEntry{
			{Amount: decimal.NewFromInt(500), Kind: domain.EntryDebit, Description: "Order ORD-1", OrderCode: "ORD-1", OccurredAt: at},
			{Amount: decimal.NewFromInt(200), Kind: domain.EntryCredit, Description: "Payment Received", OccurredAt: at.Add(time.Hour)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, dealer))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, headerRows+2)

	assert.Equal(t, []string{"Dealer", "Ravi", "Shop", "Ravi Traders"}, rows[0])
	assert.Equal(t, columns, rows[headerRows-1])

	first := rows[headerRows]
	assert.Equal(t, "2024-01-31 10:30", first[0])
	assert.Equal(t, "Order ORD-1", first[1])
	assert.Equal(t, "500", first[3])
	assert.Equal(t, "500", first[5])

	second := rows[headerRows+1]
	assert.Equal(t, "Payment Received", second[1])
	assert.Equal(t, "200", second[4])
	assert.Equal(t, "300", second[5])
}

func TestWrite_NoTransactions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &domain.Dealer{ID: 1, Name: "Empty"}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, headerRows)
}
