package pgrepo

import (
	"context"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const ledgerEntryColumns = `id, dealer_id, amount, kind, description, order_code, occurred_at`

// LedgerEntryRepository журнал движений по счетам. Только вставка и чтение, записи не меняются.
type LedgerEntryRepository struct {
	conn uow.DBTX
}

func NewLedgerEntryRepository(conn uow.DBTX) *LedgerEntryRepository {
	return &LedgerEntryRepository{conn: conn}
}

func (l *LedgerEntryRepository) Create(
	ctx context.Context,
	args repoargs.CreateLedgerEntry,
) (*domain.LedgerEntry, error) {
	row := l.conn.QueryRow(ctx,
		`INSERT INTO ledger_entries (dealer_id, amount, kind, description, order_code)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+ledgerEntryColumns,
		args.DealerID, args.Amount, args.Kind, args.Description, args.OrderCode,
	)
	entry, err := scanLedgerEntry(row)
	if err != nil {
		return nil, convertErr(err, "creating ledger entry for dealer %d", args.DealerID)
	}
	return &entry, nil
}

// ListByDealerID возвращает записи дилера в порядке добавления.
func (l *LedgerEntryRepository) ListByDealerID(ctx context.Context, dealerID int64) ([]domain.LedgerEntry, error) {
	rows, err := l.conn.Query(ctx,
		`SELECT `+ledgerEntryColumns+` FROM ledger_entries WHERE dealer_id = $1 ORDER BY id`, dealerID,
	)
	if err != nil {
		return nil, convertErr(err, "listing ledger entries for dealer %d", dealerID)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerEntry, error) {
		return scanLedgerEntry(row)
	})
	if err != nil {
		return nil, convertErr(err, "scanning ledger entries for dealer %d", dealerID)
	}
	return entries, nil
}

// ListByDealerIDs группирует записи нескольких дилеров по id дилера.
func (l *LedgerEntryRepository) ListByDealerIDs(
	ctx context.Context,
	dealerIDs []int64,
) (map[int64][]domain.LedgerEntry, error) {
	grouped := make(map[int64][]domain.LedgerEntry, len(dealerIDs))
	if len(dealerIDs) == 0 {
		return grouped, nil
	}
	rows, err := l.conn.Query(ctx,
		`SELECT `+ledgerEntryColumns+` FROM ledger_entries WHERE dealer_id = ANY($1) ORDER BY dealer_id, id`,
		dealerIDs,
	)
	if err != nil {
		return nil, convertErr(err, "listing ledger entries for dealers %v", dealerIDs)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerEntry, error) {
		return scanLedgerEntry(row)
	})
	if err != nil {
		return nil, convertErr(err, "scanning ledger entries for dealers %v", dealerIDs)
	}
	for _, entry := range entries {
		grouped[entry.DealerID] = append(grouped[entry.DealerID], entry)
	}
	return grouped, nil
}

func scanLedgerEntry(row pgx.Row) (domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	err := row.Scan(
		&entry.ID,
		&entry.DealerID,
		&entry.Amount,
		&entry.Kind,
		&entry.Description,
		&entry.OrderCode,
		&entry.OccurredAt,
	)
	return entry, err //nolint:wrapcheck
}
