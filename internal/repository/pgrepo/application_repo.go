package pgrepo

import (
	"context"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, created_at, updated_at, name, shop_name, phone, city, gstin, volume,
	status, admin_notes, dealer_id`

type ApplicationRepository struct {
	conn uow.DBTX
}

func NewApplicationRepository(conn uow.DBTX) *ApplicationRepository {
	return &ApplicationRepository{conn: conn}
}

func (a *ApplicationRepository) Create(
	ctx context.Context,
	args repoargs.CreateApplication,
) (*domain.Application, error) {
	row := a.conn.QueryRow(ctx,
		`INSERT INTO applications (name, shop_name, phone, city, gstin, volume)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+applicationColumns,
		args.Name, args.ShopName, args.Phone, args.City, args.GSTIN, args.Volume,
	)
	application, err := scanApplication(row)
	if err != nil {
		return nil, convertErr(err, "creating application for phone `%s`", args.Phone)
	}
	return &application, nil
}

func (a *ApplicationRepository) FindByID(ctx context.Context, id int64) (*domain.Application, error) {
	application, err := scanApplication(a.conn.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id,
	))
	if err != nil {
		return nil, convertErr(err, "finding application %d", id)
	}
	return &application, nil
}

func (a *ApplicationRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Application, error) {
	application, err := scanApplication(a.conn.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1 FOR UPDATE`, id,
	))
	if err != nil {
		return nil, convertErr(err, "locking application %d", id)
	}
	return &application, nil
}

func (a *ApplicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	rows, err := a.conn.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, convertErr(err, "listing applications")
	}
	applications, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
	if err != nil {
		return nil, convertErr(err, "scanning applications")
	}
	return applications, nil
}

func (a *ApplicationRepository) Update(
	ctx context.Context,
	args repoargs.UpdateApplication,
) (*domain.Application, error) {
	row := a.conn.QueryRow(ctx,
		`UPDATE applications SET status = $2, admin_notes = $3, dealer_id = COALESCE($4, dealer_id), updated_at = now()
		WHERE id = $1 RETURNING `+applicationColumns,
		args.ID, args.Status, args.AdminNotes, args.DealerID,
	)
	application, err := scanApplication(row)
	if err != nil {
		return nil, convertErr(err, "updating application %d", args.ID)
	}
	return &application, nil
}

func scanApplication(row pgx.Row) (domain.Application, error) {
	var application domain.Application
	err := row.Scan(
		&application.ID,
		&application.CreatedAt,
		&application.UpdatedAt,
		&application.Name,
		&application.ShopName,
		&application.Phone,
		&application.City,
		&application.GSTIN,
		&application.Volume,
		&application.Status,
		&application.AdminNotes,
		&application.DealerID,
	)
	return application, err //nolint:wrapcheck
}
