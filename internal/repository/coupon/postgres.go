package coupon

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shoply/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	const q = `
SELECT id::text, code, active, discount, created_at
FROM coupons
WHERE code = $1 AND active = true
LIMIT 1
`
	var c domain.Coupon
	err := r.pool.QueryRow(ctx, q, code).Scan(&c.ID, &c.Code, &c.Active, &c.Discount, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	const q = `
INSERT INTO coupons (code, active, discount)
VALUES ($1, $2, $3)
RETURNING id::text, code, active, discount, created_at
`
	var out domain.Coupon
	err := r.pool.QueryRow(ctx, q, c.Code, c.Active, c.Discount).Scan(&out.ID, &out.Code, &out.Active, &out.Discount, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &out, nil
}
