package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lexlapax/xmerge/pkg/log"
	"github.com/lexlapax/xmerge/pkg/reflection"
	"github.com/lexlapax/xmerge/pkg/store"
)

// PostgresStore implements the TableStore interface using a PostgreSQL
// database. The schema is managed by MigrateUp.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with the given connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	log.Debug("Initialized PostgreSQL table store adapter")
	return &PostgresStore{pool: pool}
}

// Save implements the TableStore interface.
func (p *PostgresStore) Save(ctx context.Context, name string, table *reflection.Table) error {
	if err := store.ValidateName(name); err != nil {
		return err
	}
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal table %s: %w", name, err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO reflection_tables (name, row_count, data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (name) DO UPDATE SET
			row_count = EXCLUDED.row_count,
			data = EXCLUDED.data,
			updated_at = NOW()`,
		name, table.Size(), data,
	)
	if err != nil {
		return fmt.Errorf("failed to save table %s: %w", name, err)
	}
	return nil
}

// Load implements the TableStore interface.
func (p *PostgresStore) Load(ctx context.Context, name string) (*reflection.Table, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		`SELECT data FROM reflection_tables WHERE name = $1`, name,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.NotFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load table %s: %w", name, err)
	}

	table := reflection.New()
	if err := json.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("failed to decode table %s: %w", name, err)
	}
	return table, nil
}

// Delete implements the TableStore interface.
func (p *PostgresStore) Delete(ctx context.Context, name string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM reflection_tables WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete table %s: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return store.NotFound(name)
	}
	return nil
}

// List implements the TableStore interface.
func (p *PostgresStore) List(ctx context.Context) ([]string, error) {
	rows, err := p.pool.Query(ctx, `SELECT name FROM reflection_tables ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan table names: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
