package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	Name string
	Slug string
}

type productSeed struct {
	Name         string
	Slug         string
	CategorySlug string
	SKU          string
	Description  string
	Price        string
}

type couponSeed struct {
	Code     string
	Discount string
	Active   bool
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{Name: "Clothing", Slug: "clothing"},
		{Name: "Accessories", Slug: "accessories"},
	}
	for _, c := range categories {
		if err := upsertCategory(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Slug, err)
		}
	}

	products := []productSeed{
		{
			Name:         "Basic T-Shirt",
			Slug:         "basic-t-shirt",
			CategorySlug: "clothing",
			SKU:          "SKU-TSHIRT-BASIC",
			Description:  "Soft cotton tee",
			Price:        "19.99",
		},
		{
			Name:         "Hooded Sweatshirt",
			Slug:         "hooded-sweatshirt",
			CategorySlug: "clothing",
			SKU:          "SKU-HOODIE",
			Description:  "Fleece-lined hoodie",
			Price:        "44.50",
		},
		{
			Name:         "Ceramic Mug",
			Slug:         "ceramic-mug",
			CategorySlug: "accessories",
			SKU:          "SKU-MUG",
			Description:  "Ceramic mug with logo",
			Price:        "12.99",
		},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}

	coupons := []couponSeed{
		{Code: "SAVE5", Discount: "5.00", Active: true},
		{Code: "WELCOME10", Discount: "10.00", Active: true},
		{Code: "EXPIRED20", Discount: "20.00", Active: false},
	}
	for _, c := range coupons {
		if err := upsertCoupon(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert coupon %s: %w", c.Code, err)
		}
	}

	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) error {
	const q = `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
`
	_, err := pool.Exec(ctx, q, c.Name, c.Slug)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, slug, category_id, sku, description, price)
VALUES ($1, $2, (SELECT id FROM categories WHERE slug = $3), $4, $5, $6)
ON CONFLICT (slug) DO UPDATE SET
	name = EXCLUDED.name,
	category_id = EXCLUDED.category_id,
	sku = EXCLUDED.sku,
	description = EXCLUDED.description,
	price = EXCLUDED.price
`
	_, err := pool.Exec(ctx, q, p.Name, p.Slug, p.CategorySlug, p.SKU, p.Description, p.Price)
	return err
}

func upsertCoupon(ctx context.Context, pool *pgxpool.Pool, c couponSeed) error {
	const q = `
INSERT INTO coupons (code, discount, active)
VALUES ($1, $2, $3)
ON CONFLICT (code) DO UPDATE SET
	discount = EXCLUDED.discount,
	active = EXCLUDED.active
`
	_, err := pool.Exec(ctx, q, c.Code, c.Discount, c.Active)
	return err
}
