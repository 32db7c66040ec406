// Package store defines persistence for reflection tables between pipeline
// runs. Adapters live under store/adapters.
package store

import (
	"context"
	"fmt"
	"strings"

	errs "github.com/lexlapax/xmerge/pkg/errors"
	"github.com/lexlapax/xmerge/pkg/reflection"
)

// ErrTableNotFound is returned by Load and Delete for unknown names.
var ErrTableNotFound = errs.ErrTableNotFound

// TableStore is the interface that all reflection table store adapters must implement.
type TableStore interface {
	// Save stores the table under name, replacing any previous table.
	Save(ctx context.Context, name string, table *reflection.Table) error

	// Load returns the table stored under name.
	Load(ctx context.Context, name string) (*reflection.Table, error)

	// Delete removes the table stored under name.
	Delete(ctx context.Context, name string) error

	// List returns the stored table names in ascending order.
	List(ctx context.Context) ([]string, error)
}

// ValidateName checks a table name before it is used as a key.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty table name", errs.ErrInvalidInput)
	}
	return nil
}

// NotFound returns ErrTableNotFound annotated with the table name.
func NotFound(name string) error {
	return fmt.Errorf("%w: %s", ErrTableNotFound, name)
}
