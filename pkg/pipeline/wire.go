package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lexlapax/xmerge/pkg/config"
	"github.com/lexlapax/xmerge/pkg/edit"
	"github.com/lexlapax/xmerge/pkg/log"
	"github.com/lexlapax/xmerge/pkg/scripting"
	"github.com/lexlapax/xmerge/pkg/store"
	"github.com/lexlapax/xmerge/pkg/store/adapters/boltdb"
	"github.com/lexlapax/xmerge/pkg/store/adapters/mock"
	"github.com/lexlapax/xmerge/pkg/store/adapters/postgres"
	"github.com/lexlapax/xmerge/pkg/store/adapters/sqlite"
	"github.com/lexlapax/xmerge/pkg/symmetry"
	bolt "go.etcd.io/bbolt"
)

var _ Worker = (*edit.TableEditor)(nil)

// NewFromConfig opens the configured store and script engine and returns a
// pipeline whose worker chain is the reflection table editor. Each run and
// partition gets its own editor and step timer. Call Close when done.
func NewFromConfig(ctx context.Context, cfg *config.Config) (*Pipeline, error) {
	var cell *symmetry.UnitCell
	if len(cfg.Scaling.UnitCell) > 0 {
		c, err := symmetry.NewUnitCell(cfg.Scaling.UnitCell)
		if err != nil {
			return nil, err
		}
		cell = c
	}
	editCfg := edit.Config{
		TargetUnitCell:   cell,
		TargetSpaceGroup: cfg.Scaling.SpaceGroup,
		MergeAnomalous:   cfg.Merging.MergeAnomalous,
		KeepColumns:      cfg.Merging.KeepColumns,
	}

	// Fail early on an unusable target symmetry
	if _, err := edit.NewTableEditor(editCfg); err != nil {
		return nil, err
	}

	p := &Pipeline{partitions: cfg.Pipeline.Partitions}
	if p.partitions <= 0 {
		p.partitions = 1
	}

	s, closeStore, err := initTableStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	p.store = s
	p.closers = append(p.closers, closeStore)

	engine, err := initScriptEngine(cfg)
	if err != nil {
		p.Close()
		return nil, err
	}
	if engine != nil {
		p.closers = append(p.closers, engine.Close)
	}

	p.factory = func(logger *slog.Logger) ([]Worker, error) {
		opts := []edit.Option{edit.WithStepLogger(log.NewStepTimer(logger))}
		if engine != nil {
			opts = append(opts, edit.WithScriptEngine(engine))
		}
		editor, err := edit.NewTableEditor(editCfg, opts...)
		if err != nil {
			return nil, err
		}
		return []Worker{editor}, nil
	}

	log.Info("Pipeline initialized",
		"store", cfg.Store.Type,
		"partitions", p.partitions,
		"scripting", engine != nil)
	return p, nil
}

// initTableStore opens the store backend selected by the configuration.
func initTableStore(ctx context.Context, cfg *config.Config) (store.TableStore, func() error, error) {
	switch cfg.Store.Type {
	case "bolt", "":
		path := cfg.Store.BoltPath
		if path == "" {
			path = config.DefaultBoltPath
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create directory for BoltDB: %w", err)
		}
		log.Info("Using BoltDB table store", "path", path)
		db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open BoltDB database: %w", err)
		}
		s := boltdb.NewBoltStore(db)
		if err := s.Initialize(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to initialize BoltDB store: %w", err)
		}
		return s, db.Close, nil

	case "sqlite":
		log.Info("Using SQLite table store")
		db, err := sqlite.Open(cfg.Store.SQLiteDSN)
		if err != nil {
			return nil, nil, err
		}
		s := sqlite.NewSQLiteStore(db)
		if err := s.Initialize(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
		}
		return s, db.Close, nil

	case "postgres":
		log.Info("Using PostgreSQL table store")
		if err := postgres.MigrateUp(cfg.Store.PostgresDSN); err != nil {
			return nil, nil, err
		}
		pool, err := pgxpool.New(ctx, cfg.Store.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return postgres.NewPostgresStore(pool), func() error { pool.Close(); return nil }, nil

	case "mock":
		return mock.NewMockStore(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store type: %s", cfg.Store.Type)
	}
}

// initScriptEngine initializes the Lua scripting engine, or returns nil when
// scripting is disabled.
func initScriptEngine(cfg *config.Config) (scripting.Engine, error) {
	if !cfg.Scripting.Enabled {
		return nil, nil
	}

	engine, err := scripting.NewLuaEngine(scripting.Config{
		EnableSandboxing: true,
		ScriptTimeoutMs:  cfg.Scripting.TimeoutMs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Lua engine: %w", err)
	}
	if err := scripting.LoadAllScripts(engine, cfg.Scripting.Paths...); err != nil {
		engine.Close()
		return nil, fmt.Errorf("failed to load Lua scripts: %w", err)
	}
	log.Info("Lua scripting enabled", "paths", cfg.Scripting.Paths)
	return engine, nil
}
