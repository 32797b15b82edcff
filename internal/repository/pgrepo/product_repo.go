package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, created_at, updated_at, size, image_url, description, tag, crate_size,
	price_per_crate, cost_price, stock, low_stock_threshold, bulk_threshold, bulk_price`

type ProductRepository struct {
	conn uow.DBTX
}

func NewProductRepository(conn uow.DBTX) *ProductRepository {
	return &ProductRepository{conn: conn}
}

func (p *ProductRepository) Create(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx,
		`INSERT INTO products (size, image_url, description, tag, crate_size, price_per_crate, cost_price,
			stock, low_stock_threshold, bulk_threshold, bulk_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING `+productColumns,
		args.Size, args.ImageURL, args.Description, args.Tag, args.CrateSize, args.PricePerCrate, args.CostPrice,
		args.Stock, args.LowStockThreshold, args.BulkThreshold, args.BulkPrice,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "creating product `%s`", args.Size)
	}
	return &product, nil
}

// Update меняет карточку товара. Остаток не трогает.
func (p *ProductRepository) Update(ctx context.Context, id int64, args repoargs.SaveProduct) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE products SET size = $2, image_url = $3, description = $4, tag = $5, crate_size = $6,
			price_per_crate = $7, cost_price = $8, low_stock_threshold = $9, bulk_threshold = $10,
			bulk_price = $11, updated_at = now()
		WHERE id = $1 RETURNING `+productColumns,
		id, args.Size, args.ImageURL, args.Description, args.Tag, args.CrateSize, args.PricePerCrate,
		args.CostPrice, args.LowStockThreshold, args.BulkThreshold, args.BulkPrice,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "updating product %d", id)
	}
	return &product, nil
}

func (p *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := p.conn.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting product %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting product %d", id)
	}
	return nil
}

func (p *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := scanProduct(p.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding product %d", id)
	}
	return &product, nil
}

// FindByIDsForUpdate блокирует строки товаров в порядке id, чтобы параллельные заказы
// не взаимоблокировались. Отсутствующие id просто не попадут в результат.
func (p *ProductRepository) FindByIDsForUpdate(ctx context.Context, ids []int64) ([]domain.Product, error) {
	rows, err := p.conn.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids,
	)
	if err != nil {
		return nil, convertErr(err, "locking products %v", ids)
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, convertErr(err, "scanning locked products %v", ids)
	}
	return products, nil
}

func (p *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := p.conn.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing products")
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, convertErr(err, "scanning products")
	}
	return products, nil
}

// DecrementStock списывает quantity ящиков только если их хватает. Иначе domain.ErrNotEnoughStock.
func (p *ProductRepository) DecrementStock(ctx context.Context, id, quantity int64) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE products SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2 RETURNING `+productColumns,
		id, quantity,
	)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("[repository/decrementing stock of product %d by %d] %w",
				id, quantity, domain.ErrNotEnoughStock)
		}
		return nil, convertErr(err, "decrementing stock of product %d", id)
	}
	return &product, nil
}

func (p *ProductRepository) IncrementStock(ctx context.Context, id, quantity int64) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1 RETURNING `+productColumns,
		id, quantity,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "incrementing stock of product %d", id)
	}
	return &product, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Size,
		&product.ImageURL,
		&product.Description,
		&product.Tag,
		&product.CrateSize,
		&product.PricePerCrate,
		&product.CostPrice,
		&product.Stock,
		&product.LowStockThreshold,
		&product.BulkThreshold,
		&product.BulkPrice,
	)
	return product, err //nolint:wrapcheck
}
