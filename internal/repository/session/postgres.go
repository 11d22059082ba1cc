package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shoply/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, id string) (*domain.SessionState, error) {
	const q = `
SELECT state, expires_at
FROM sessions
WHERE id = $1
LIMIT 1
`
	var raw []byte
	var expiresAt time.Time
	if err := r.pool.QueryRow(ctx, q, id).Scan(&raw, &expiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if time.Now().After(expiresAt) {
		_ = r.Delete(ctx, id)
		return nil, domain.ErrNotFound
	}

	var state domain.SessionState
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &state); err != nil {
			return nil, err
		}
	}
	return &state, nil
}

func (r *postgresRepo) Save(ctx context.Context, id string, state domain.SessionState, expiresAt time.Time) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO sessions (id, state, expires_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET
    state = EXCLUDED.state,
    expires_at = EXCLUDED.expires_at
`
	_, err = r.pool.Exec(ctx, q, id, raw, expiresAt)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}
