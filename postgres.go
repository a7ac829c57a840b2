package tempbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps index entries as JSONB documents in one table
type PostgresStore struct {
	pool  *pgxpool.Pool
	table string
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects to PostgreSQL and creates the entry table if it
// does not exist
func NewPostgresStore(
	ctx context.Context, cfg PostgresConfig,
) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	s := &PostgresStore{
		pool:  pool,
		table: pgx.Identifier{cfg.Table}.Sanitize(),
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := s.migrate(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		id    TEXT PRIMARY KEY,
		entry JSONB NOT NULL
	)`, s.table)
	_, err := s.pool.Exec(ctx, schema)
	return err
}

func (s *PostgresStore) Put(ctx context.Context, e *Entry) error {
	data, err := marshalEntry(e)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
	INSERT INTO %s (id, entry) VALUES ($1, $2::jsonb)
	ON CONFLICT (id) DO UPDATE SET entry = EXCLUDED.entry`, s.table)
	_, err = s.pool.Exec(ctx, query, string(e.ID), string(data))
	return err
}

func (s *PostgresStore) Get(ctx context.Context, id ID) (*Entry, error) {
	query := fmt.Sprintf(`SELECT entry::text FROM %s WHERE id = $1`, s.table)
	var data string
	err := s.pool.QueryRow(ctx, query, string(id)).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return unmarshalEntry([]byte(data))
}

func (s *PostgresStore) Delete(ctx context.Context, id ID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table)
	tag, err := s.pool.Exec(ctx, query, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (s *PostgresStore) Scan(ctx context.Context, fn func(*Entry) bool) error {
	query := fmt.Sprintf(`SELECT entry::text FROM %s ORDER BY id`, s.table)
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return err
		}
		e, err := unmarshalEntry([]byte(data))
		if err != nil {
			return err
		}
		if !fn(e) {
			return nil
		}
	}
	return rows.Err()
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
