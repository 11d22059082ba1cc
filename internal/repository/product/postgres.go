package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shoply/internal/domain"
)

const productColumns = `id::text, name, slug, category_id::text, price, sku, COALESCE(description, ''), views, created_at`

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

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Product, error) {
	q := `
SELECT p.id::text, p.name, p.slug, p.category_id::text, p.price, p.sku, COALESCE(p.description, ''), p.views, p.created_at
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
WHERE ($1 = '' OR lower(c.slug) = lower($1))
  AND ($2 = '' OR p.name ILIKE '%' || $2 || '%')
ORDER BY ` + orderClause(f.Ordering)

	rows, err := r.pool.Query(ctx, q, f.CategorySlug, f.Name)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// orderClause whitelists sortable fields; arbitrary ordering values never
// reach the SQL text.
func orderClause(ordering string) string {
	switch ordering {
	case "views":
		return "p.views ASC, p.created_at DESC"
	case "-views":
		return "p.views DESC, p.created_at DESC"
	case "price":
		return "p.price ASC, p.created_at DESC"
	case "-price":
		return "p.price DESC, p.created_at DESC"
	default:
		return "p.created_at DESC"
	}
}

func (r *postgresRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = ANY($1::uuid[])
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) Popular(ctx context.Context, limit int) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY views DESC, created_at DESC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) LatestArrivals(ctx context.Context, limit int) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	return r.scanProduct(r.pool.QueryRow(ctx, q, id))
}

// IncrementViews bumps the view counter atomically and returns the updated
// row, so concurrent readers never lose an increment.
func (r *postgresRepo) IncrementViews(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
UPDATE products
SET views = views + 1
WHERE id = $1
RETURNING ` + productColumns + `
`
	return r.scanProduct(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, slug, category_id, price, sku, description)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
RETURNING ` + productColumns + `
`
	out, err := r.scanProduct(r.pool.QueryRow(ctx, q, p.Name, p.Slug, p.CategoryID, p.Price, p.SKU, p.Description))
	if err != nil {
		r.logger.Printf("product repo: create slug=%s error=%v", p.Slug, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s slug=%s", out.ID, out.Slug)
	return out, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	const q = `
UPDATE products
SET name        = COALESCE($2, name),
    slug        = COALESCE($3, slug),
    category_id = COALESCE($4::uuid, category_id),
    price       = COALESCE($5, price),
    sku         = COALESCE($6, sku),
    description = COALESCE($7, description)
WHERE id = $1
RETURNING ` + productColumns + `
`
	return r.scanProduct(r.pool.QueryRow(ctx, q, id, in.Name, in.Slug, in.CategoryID, in.Price, in.SKU, in.Description))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.CategoryID, &p.Price, &p.SKU, &p.Description, &p.Views, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("product repo: scan error=%v", err)
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.CategoryID, &p.Price, &p.SKU, &p.Description, &p.Views, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
