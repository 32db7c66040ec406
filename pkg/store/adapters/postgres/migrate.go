package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lexlapax/xmerge/pkg/log"
	_ "github.com/lib/pq" // PostgreSQL driver for migrations
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func newMigrator(dsn string) (*migrate.Migrate, *sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create migration driver: %w", err)
	}
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, db, nil
}

// MigrateUp applies all pending schema migrations.
func MigrateUp(dsn string) error {
	m, db, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	version, dirty, _ := m.Version()
	log.Debug("Applied PostgreSQL migrations", "version", version, "dirty", dirty)
	return nil
}

// MigrateDown rolls back all schema migrations.
func MigrateDown(dsn string) error {
	m, db, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}
