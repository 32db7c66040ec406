package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lexlapax/xmerge/pkg/log"
	"github.com/lexlapax/xmerge/pkg/reflection"
	"github.com/lexlapax/xmerge/pkg/store"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS reflection_tables (
	name TEXT PRIMARY KEY,
	row_count INTEGER NOT NULL,
	data TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

type tableRow struct {
	Name      string    `db:"name"`
	RowCount  int       `db:"row_count"`
	Data      string    `db:"data"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SQLiteStore implements the TableStore interface using a SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return db, nil
}

// NewSQLiteStore creates a new SQLiteStore with the given database connection.
func NewSQLiteStore(db *sqlx.DB) *SQLiteStore {
	log.Debug("Initialized SQLite table store adapter")
	return &SQLiteStore{db: db}
}

// Initialize creates the reflection_tables table if it doesn't exist.
func (s *SQLiteStore) Initialize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		log.ErrorContext(ctx, "Failed to create reflection_tables table", "error", err)
		return fmt.Errorf("failed to create reflection_tables table: %w", err)
	}
	return nil
}

// Save implements the TableStore interface.
func (s *SQLiteStore) Save(ctx context.Context, name string, table *reflection.Table) error {
	if err := store.ValidateName(name); err != nil {
		return err
	}
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal table %s: %w", name, err)
	}

	row := tableRow{
		Name:      name,
		RowCount:  table.Size(),
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	}
	_, err = s.db.NamedExecContext(ctx,
		`INSERT INTO reflection_tables (name, row_count, data, updated_at)
		VALUES (:name, :row_count, :data, :updated_at)
		ON CONFLICT(name) DO UPDATE SET
			row_count = excluded.row_count,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		row,
	)
	if err != nil {
		return fmt.Errorf("failed to save table %s: %w", name, err)
	}
	return nil
}

// Load implements the TableStore interface.
func (s *SQLiteStore) Load(ctx context.Context, name string) (*reflection.Table, error) {
	var row tableRow
	err := s.db.GetContext(ctx, &row,
		`SELECT name, row_count, data, updated_at FROM reflection_tables WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.NotFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load table %s: %w", name, err)
	}

	table := reflection.New()
	if err := json.Unmarshal([]byte(row.Data), table); err != nil {
		return nil, fmt.Errorf("failed to decode table %s: %w", name, err)
	}
	return table, nil
}

// Delete implements the TableStore interface.
func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM reflection_tables WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete table %s: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return store.NotFound(name)
	}
	return nil
}

// List implements the TableStore interface.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := s.db.SelectContext(ctx, &names, `SELECT name FROM reflection_tables ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return names, nil
}
