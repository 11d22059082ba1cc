package order

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shoply/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Create writes the order and every line item in a single transaction so a
// crash mid-checkout cannot leave a partial order behind.
func (r *postgresRepo) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const orderQ = `
INSERT INTO orders (customer_id, first_name, last_name, email, address, postal_code, city, total_price)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id::text, created_at
`
	if err := tx.QueryRow(ctx, orderQ,
		o.CustomerID,
		o.FirstName,
		o.LastName,
		o.Email,
		o.Address,
		o.PostalCode,
		o.City,
		o.TotalPrice,
	).Scan(&o.ID, &o.CreatedAt); err != nil {
		r.logger.Printf("order repo: create error=%v", err)
		return err
	}

	const itemQ = `
INSERT INTO order_items (order_id, product_id, quantity, price)
VALUES ($1, $2, $3, $4)
RETURNING id::text
`
	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		if err := tx.QueryRow(ctx, itemQ, o.ID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID); err != nil {
			r.logger.Printf("order repo: create item order_id=%s product_id=%s error=%v", o.ID, item.ProductID, err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	r.logger.Printf("order repo: created id=%s items=%d total=%s", o.ID, len(o.Items), o.TotalPrice.String())
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, customer_id::text, first_name, last_name, email, address, postal_code, city, total_price, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID,
		&o.CustomerID,
		&o.FirstName,
		&o.LastName,
		&o.Email,
		&o.Address,
		&o.PostalCode,
		&o.City,
		&o.TotalPrice,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQ = `
SELECT id::text, order_id::text, product_id::text, quantity, price
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, itemsQ, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}
