package store

import (
	"context"
	"errors"
	"io"
	"log"

	"vishnu-auto/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStore struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Store backed by the kv_blobs table.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresStore{pool: pool, logger: logger}
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `
SELECT value
FROM kv_blobs
WHERE key = $1
`
	var value []byte
	err := s.pool.QueryRow(ctx, q, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Printf("store: get key=%s error=%v", key, err)
		return nil, err
	}
	return value, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO kv_blobs (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET
    value = EXCLUDED.value,
    updated_at = now()
`
	if _, err := s.pool.Exec(ctx, q, key, value); err != nil {
		s.logger.Printf("store: set key=%s error=%v", key, err)
		return err
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	const q = `
DELETE FROM kv_blobs
WHERE key = $1
`
	if _, err := s.pool.Exec(ctx, q, key); err != nil {
		s.logger.Printf("store: delete key=%s error=%v", key, err)
		return err
	}
	return nil
}
