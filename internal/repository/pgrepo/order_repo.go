package pgrepo

import (
	"context"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, order_code, dealer_id, customer_name, customer_phone,
	total_amount, status, payment_status`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// Create сохраняет заказ и его позиции. Позиции отправляются одним батчем.
func (o *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`INSERT INTO orders (order_code, dealer_id, customer_name, customer_phone, total_amount, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING `+orderColumns,
		args.OrderCode, args.DealerID, args.CustomerName, args.CustomerPhone, args.TotalAmount,
		args.Status, args.PaymentStatus,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order `%s`", args.OrderCode)
	}

	batch := new(pgx.Batch)
	for i, item := range args.Items {
		batch.Queue(
			`INSERT INTO order_items (order_id, position, product_id, size, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, i, item.ProductID, item.Size, item.Quantity, item.UnitPrice,
		)
	}
	if err = o.conn.SendBatch(ctx, batch).Close(); err != nil {
		return nil, convertErr(err, "creating items of order `%s`", args.OrderCode)
	}

	order.Items = append([]domain.OrderItem(nil), args.Items...)
	return &order, nil
}

func (o *OrderRepository) ExistsByOrderCode(ctx context.Context, orderCode string) (bool, error) {
	var exists bool
	err := o.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE order_code = $1)`, orderCode).
		Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking order code `%s`", orderCode)
	}
	return exists, nil
}

func (o *OrderRepository) FindByOrderCode(ctx context.Context, orderCode string) (*domain.Order, error) {
	return o.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_code = $1`, orderCode)
}

// FindByOrderCodeForUpdate блокирует строку заказа до конца транзакции.
func (o *OrderRepository) FindByOrderCodeForUpdate(ctx context.Context, orderCode string) (*domain.Order, error) {
	return o.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_code = $1 FOR UPDATE`, orderCode)
}

// List возвращает все заказы, новые первыми.
func (o *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return o.findMany(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
}

// ListByPhone возвращает заказы покупателя, новые первыми.
func (o *OrderRepository) ListByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	return o.findMany(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_phone = $1 ORDER BY created_at DESC, id DESC`,
		phone,
	)
}

func (o *OrderRepository) UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error) {
	return o.findOne(ctx,
		`UPDATE orders SET status = $2, payment_status = $3, updated_at = now()
		WHERE order_code = $1 RETURNING `+orderColumns,
		args.OrderCode, args.Status, args.PaymentStatus,
	)
}

func (o *OrderRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Order, error) {
	order, err := scanOrder(o.conn.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, convertErr(err, "finding order by %v", args)
	}
	items, err := o.itemsByOrderIDs(ctx, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	return &order, nil
}

func (o *OrderRepository) findMany(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "listing orders")
	}
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, convertErr(err, "scanning orders")
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	items, err := o.itemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (o *OrderRepository) itemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]domain.OrderItem, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT order_id, product_id, size, quantity, unit_price FROM order_items
		WHERE order_id = ANY($1) ORDER BY order_id, position`,
		ids,
	)
	if err != nil {
		return nil, convertErr(err, "listing order items for orders %v", ids)
	}
	defer rows.Close()

	items := make(map[int64][]domain.OrderItem, len(ids))
	for rows.Next() {
		var orderID int64
		var item domain.OrderItem
		if err = rows.Scan(&orderID, &item.ProductID, &item.Size, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, convertErr(err, "scanning order item")
		}
		items[orderID] = append(items[orderID], item)
	}
	if err = rows.Err(); err != nil {
		return nil, convertErr(err, "iterating order items")
	}
	return items, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.OrderCode,
		&order.DealerID,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentStatus,
	)
	return order, err //nolint:wrapcheck
}
