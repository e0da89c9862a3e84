package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each key as a row in a single jsonb table. Selected
// when DATABASE_URL is configured.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pg pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pg: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS talentflow_kv (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL
		)
	`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure kv table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `
		SELECT value FROM talentflow_kv WHERE key = $1
	`, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("query key: %w", err)
	}
	return json.RawMessage(value), nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO talentflow_kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, []byte(value))
	if err != nil {
		return fmt.Errorf("upsert key: %w", err)
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM talentflow_kv`); err != nil {
		return fmt.Errorf("clear kv table: %w", err)
	}
	return nil
}
