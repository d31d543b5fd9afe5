package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/finsim/loan-recast/internal/config"
	_ "github.com/lib/pq"
)

// PostgresStore is a Postgres-backed implementation of Store. Plans are
// stored as JSON documents in a single table keyed by name.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to the given Postgres DSN and ensures
// the plans table exists.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	s := &PostgresStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS plans (
	name TEXT PRIMARY KEY,
	document JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate plans table: %w", err)
	}
	return nil
}

// Close releases the underlying database connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Save stores the plan under the given name, replacing any existing plan.
func (s *PostgresStore) Save(ctx context.Context, name string, plan config.Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan %q: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO plans (name, document, updated_at) VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`,
		name, data)
	if err != nil {
		return fmt.Errorf("failed to save plan %q: %w", name, err)
	}
	return nil
}

// Load retrieves the plan stored under the given name.
func (s *PostgresStore) Load(ctx context.Context, name string) (config.Plan, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT document FROM plans WHERE name = $1`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return config.Plan{}, ErrNotFound
	}
	if err != nil {
		return config.Plan{}, fmt.Errorf("failed to load plan %q: %w", name, err)
	}
	var plan config.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return config.Plan{}, fmt.Errorf("failed to decode plan %q: %w", name, err)
	}
	return plan, nil
}

// List returns stored plan names in ascending order.
func (s *PostgresStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM plans ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan plan name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the plan stored under the given name.
func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete plan %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
