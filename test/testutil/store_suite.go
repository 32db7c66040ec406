package testutil

import (
	"context"
	"math"
	"testing"

	errs "github.com/lexlapax/xmerge/pkg/errors"
	"github.com/lexlapax/xmerge/pkg/miller"
	"github.com/lexlapax/xmerge/pkg/reflection"
	"github.com/lexlapax/xmerge/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTableStoreTests exercises the TableStore contract against an empty store.
func RunTableStoreTests(t *testing.T, s store.TableStore) {
	ctx := context.Background()

	t.Run("empty list", func(t *testing.T) {
		names, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("save and load", func(t *testing.T) {
		table := NewReflectionTable(t, miller.Index{1, 2, 3}, miller.Index{-1, 0, 4})
		require.NoError(t, s.Save(ctx, "run-b", table))

		loaded, err := s.Load(ctx, "run-b")
		require.NoError(t, err)
		assert.Equal(t, table.Size(), loaded.Size())
		assert.Equal(t, table.Keys(), loaded.Keys())

		hkl, err := loaded.MillerIndices(reflection.ColumnMillerIndex)
		require.NoError(t, err)
		assert.Equal(t, reflection.MillerIndexColumn{{1, 2, 3}, {-1, 0, 4}}, hkl)

		values, err := loaded.Floats(reflection.ColumnIntensitySumValue)
		require.NoError(t, err)
		assert.Equal(t, reflection.FloatColumn{100, 101}, values)

		ids, err := loaded.Ints(reflection.ColumnID)
		require.NoError(t, err)
		assert.Equal(t, reflection.IntColumn{0, 1}, ids)
	})

	t.Run("save replaces", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "run-b", NewReflectionTable(t, miller.Index{0, 0, 1})))
		loaded, err := s.Load(ctx, "run-b")
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.Size())
	})

	t.Run("loaded table is independent", func(t *testing.T) {
		loaded, err := s.Load(ctx, "run-b")
		require.NoError(t, err)
		require.NoError(t, loaded.Delete("foo"))

		again, err := s.Load(ctx, "run-b")
		require.NoError(t, err)
		assert.True(t, again.Has("foo"))
	})

	t.Run("list sorted", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "run-a", NewReflectionTable(t)))
		names, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"run-a", "run-b"}, names)
	})

	t.Run("empty name", func(t *testing.T) {
		err := s.Save(ctx, " ", NewReflectionTable(t))
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.Load(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrTableNotFound)
		assert.ErrorIs(t, s.Delete(ctx, "missing"), store.ErrTableNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "run-a"))
		_, err := s.Load(ctx, "run-a")
		assert.ErrorIs(t, err, store.ErrTableNotFound)

		names, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"run-b"}, names)
	})
	t.Run("non-finite floats", func(t *testing.T) {
		table := NewReflectionTable(t, miller.Index{1, 0, 0}, miller.Index{0, 1, 0}, miller.Index{0, 0, 1})
		variance := reflection.FloatColumn{math.NaN(), math.Inf(1), math.Inf(-1)}
		require.NoError(t, table.Set(reflection.ColumnIntensitySumVariance, variance))
		require.NoError(t, s.Save(ctx, "run-nan", table))
		t.Cleanup(func() { _ = s.Delete(ctx, "run-nan") })

		loaded, err := s.Load(ctx, "run-nan")
		require.NoError(t, err)
		got, err := loaded.Floats(reflection.ColumnIntensitySumVariance)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.True(t, math.IsNaN(got[0]))
		assert.True(t, math.IsInf(got[1], 1))
		assert.True(t, math.IsInf(got[2], -1))

		values, err := loaded.Floats(reflection.ColumnIntensitySumValue)
		require.NoError(t, err)
		assert.Equal(t, reflection.FloatColumn{100, 101, 102}, values)
	})
}
