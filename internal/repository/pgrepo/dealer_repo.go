package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const dealerColumns = `id, created_at, updated_at, name, shop_name, location, phone, gstin, balance, active`

// DealerRepository хранит счета дилеров. Записи журнала живут в LedgerEntryRepository,
// поле Transactions здесь не заполняется.
type DealerRepository struct {
	conn uow.DBTX
}

func NewDealerRepository(conn uow.DBTX) *DealerRepository {
	return &DealerRepository{conn: conn}
}

func (d *DealerRepository) Create(ctx context.Context, args repoargs.CreateDealer) (*domain.Dealer, error) {
	row := d.conn.QueryRow(ctx,
		`INSERT INTO dealers (name, shop_name, location, phone, gstin)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+dealerColumns,
		args.Name, args.ShopName, args.Location, args.Phone, args.GSTIN,
	)
	dealer, err := scanDealer(row)
	if err != nil {
		return nil, convertErr(err, "creating dealer with phone `%s`", args.Phone)
	}
	return dealer, nil
}

func (d *DealerRepository) FindByID(ctx context.Context, id int64) (*domain.Dealer, error) {
	dealer, err := scanDealer(d.conn.QueryRow(ctx, `SELECT `+dealerColumns+` FROM dealers WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding dealer by id %d", id)
	}
	return dealer, nil
}

// FindByIDForUpdate блокирует строку дилера до конца транзакции.
func (d *DealerRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Dealer, error) {
	dealer, err := scanDealer(d.conn.QueryRow(ctx,
		`SELECT `+dealerColumns+` FROM dealers WHERE id = $1 FOR UPDATE`, id,
	))
	if err != nil {
		return nil, convertErr(err, "locking dealer with id %d", id)
	}
	return dealer, nil
}

func (d *DealerRepository) FindActiveByPhone(ctx context.Context, phone string) (*domain.Dealer, error) {
	dealer, err := scanDealer(d.conn.QueryRow(ctx,
		`SELECT `+dealerColumns+` FROM dealers WHERE phone = $1 AND active`, phone,
	))
	if err != nil {
		return nil, convertErr(err, "finding active dealer by phone `%s`", phone)
	}
	return dealer, nil
}

// List возвращает дилеров, отсортированных по дате создания по убыванию.
func (d *DealerRepository) List(ctx context.Context) ([]domain.Dealer, error) {
	rows, err := d.conn.Query(ctx, `SELECT `+dealerColumns+` FROM dealers ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, convertErr(err, "listing dealers")
	}
	dealers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Dealer, error) {
		dealer, scanErr := scanDealer(row)
		if scanErr != nil {
			return domain.Dealer{}, scanErr
		}
		return *dealer, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning dealers")
	}
	return dealers, nil
}

// ApplyBalanceDelta меняет баланс на delta. Обновление не пройдет, если баланс уйдет в минус,
// в этом случае возвращается domain.ErrConflictingUpdate.
func (d *DealerRepository) ApplyBalanceDelta(
	ctx context.Context,
	id int64,
	delta decimal.Decimal,
) (*domain.Dealer, error) {
	row := d.conn.QueryRow(ctx,
		`UPDATE dealers SET balance = balance + $2, updated_at = now()
		WHERE id = $1 AND balance + $2 >= 0 RETURNING `+dealerColumns,
		id, delta,
	)
	dealer, err := scanDealer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("[repository/applying balance delta to dealer %d] %w", id, domain.ErrConflictingUpdate)
		}
		return nil, convertErr(err, "applying balance delta to dealer %d", id)
	}
	return dealer, nil
}

func (d *DealerRepository) SetActive(ctx context.Context, id int64, active bool) (*domain.Dealer, error) {
	row := d.conn.QueryRow(ctx,
		`UPDATE dealers SET active = $2, updated_at = now() WHERE id = $1 RETURNING `+dealerColumns,
		id, active,
	)
	dealer, err := scanDealer(row)
	if err != nil {
		return nil, convertErr(err, "setting active=%t for dealer %d", active, id)
	}
	return dealer, nil
}

func scanDealer(row pgx.Row) (*domain.Dealer, error) {
	var dealer domain.Dealer
	if err := row.Scan(
		&dealer.ID,
		&dealer.CreatedAt,
		&dealer.UpdatedAt,
		&dealer.Name,
		&dealer.ShopName,
		&dealer.Location,
		&dealer.Phone,
		&dealer.GSTIN,
		&dealer.Balance,
		&dealer.Active,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &dealer, nil
}
