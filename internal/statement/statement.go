// Package statement выгружает khata дилера в xlsx с нарастающим балансом.
package statement

import (
	"fmt"
	"io"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "Khata"
	dateLayout = "2006-01-02 15:04"
	// headerRows строки шапки с реквизитами дилера, таблица начинается после них.
	headerRows = 4
)

var columns = []string{"Date", "Description", "Order", "Debit", "Credit", "Balance"}

// Write пишет выписку по всем записям dealer.Transactions в w.
func Write(w io.Writer, dealer *domain.Dealer) error {
	f, err := Build(dealer)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = f.Write(w); err != nil {
		return fmt.Errorf("writing statement for dealer %d: %w", dealer.ID, err)
	}
	return nil
}

// Build собирает книгу. Последняя строка таблицы совпадает с Balance, если счет согласован.
func Build(dealer *domain.Dealer) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	if err := fill(f, dealer); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("building statement for dealer %d: %w", dealer.ID, err)
	}
	return f, nil
}

func fill(f *excelize.File, dealer *domain.Dealer) error {
	header := [][]any{
		{"Dealer", dealer.Name, "Shop", dealer.ShopName},
		{"Mobile", dealer.Phone, "GSTIN", dealer.GSTIN},
		{"Balance", dealer.Balance.InexactFloat64()},
	}
	for i, row := range header {
		if err := setRow(f, i+1, row); err != nil {
			return err
		}
	}

	titles := make([]any, len(columns))
	for i, c := range columns {
		titles[i] = c
	}
	if err := setRow(f, headerRows, titles); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err //nolint:wrapcheck
	}
	if err = f.SetRowStyle(sheetName, headerRows, headerRows, bold); err != nil {
		return err //nolint:wrapcheck
	}

	running := decimal.Zero
	for i, entry := range dealer.Transactions {
		running = running.Add(entry.Kind.Signed(entry.Amount))

		var debit, credit any
		if entry.Kind == domain.EntryCredit {
			credit = entry.Amount.InexactFloat64()
		} else {
			debit = entry.Amount.InexactFloat64()
		}
		row := []any{
			entry.OccurredAt.Format(dateLayout),
			entry.Description,
			entry.OrderCode,
			debit,
			credit,
			running.InexactFloat64(),
		}
		if err = setRow(f, headerRows+1+i, row); err != nil {
			return err
		}
	}

	if err = f.SetColWidth(sheetName, "A", "A", 18); err != nil { //nolint:mnd
		return err //nolint:wrapcheck
	}
	return f.SetColWidth(sheetName, "B", "B", 32) //nolint:mnd,wrapcheck
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err //nolint:wrapcheck
	}
	return f.SetSheetRow(sheetName, cell, &values) //nolint:wrapcheck
}
