package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lexlapax/xmerge/pkg/log"
	"github.com/lexlapax/xmerge/pkg/reflection"
	"github.com/lexlapax/xmerge/pkg/store"
	bolt "go.etcd.io/bbolt"
)

var tablesBucket = []byte("tables")

// BoltStore implements the TableStore interface using a BoltDB database.
// Tables are stored as JSON values keyed by name in the "tables" bucket.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates a new BoltStore with the given database connection.
func NewBoltStore(db *bolt.DB) *BoltStore {
	log.Debug("Initialized BoltDB table store adapter",
		"db_path", db.Path(),
		"read_only", db.IsReadOnly(),
	)
	return &BoltStore{db: db}
}

// Initialize creates the tables bucket if it doesn't exist.
func (b *BoltStore) Initialize(ctx context.Context) error {
	log.DebugContext(ctx, "Initializing BoltDB store buckets")

	err := b.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(tablesBucket)
		return err
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize BoltDB buckets", "error", err)
		return err
	}
	return nil
}

// Save implements the TableStore interface.
func (b *BoltStore) Save(ctx context.Context, name string, table *reflection.Table) error {
	if err := store.ValidateName(name); err != nil {
		return err
	}
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal table %s: %w", name, err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(tablesBucket)
		if err != nil {
			return fmt.Errorf("failed to create tables bucket: %w", err)
		}
		return bucket.Put([]byte(name), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save table %s: %w", name, err)
	}

	log.DebugContext(ctx, "Saved reflection table", "name", name, "rows", table.Size(), "bytes", len(data))
	return nil
}

// Load implements the TableStore interface.
func (b *BoltStore) Load(ctx context.Context, name string) (*reflection.Table, error) {
	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(tablesBucket)
		if bucket == nil {
			return store.NotFound(name)
		}
		value := bucket.Get([]byte(name))
		if value == nil {
			return store.NotFound(name)
		}
		// Values are only valid for the life of the transaction
		data = append([]byte(nil), value...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	table := reflection.New()
	if err := json.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("failed to decode table %s: %w", name, err)
	}
	return table, nil
}

// Delete implements the TableStore interface.
func (b *BoltStore) Delete(ctx context.Context, name string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(tablesBucket)
		if bucket == nil || bucket.Get([]byte(name)) == nil {
			return store.NotFound(name)
		}
		return bucket.Delete([]byte(name))
	})
}

// List implements the TableStore interface. Bolt keys are already sorted.
func (b *BoltStore) List(ctx context.Context) ([]string, error) {
	names := []string{}
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(tablesBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return names, nil
}
