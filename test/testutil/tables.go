package testutil

import (
	"testing"

	"github.com/lexlapax/xmerge/pkg/experiment"
	"github.com/lexlapax/xmerge/pkg/miller"
	"github.com/lexlapax/xmerge/pkg/reflection"
	"github.com/stretchr/testify/require"
)

// NewReflectionTable builds a table with the usual integration columns for
// the given indices plus the extra columns "foo" and "bar".
func NewReflectionTable(t *testing.T, indices ...miller.Index) *reflection.Table {
	t.Helper()
	n := len(indices)

	values := make(reflection.FloatColumn, n)
	variances := make(reflection.FloatColumn, n)
	ids := make(reflection.IntColumn, n)
	foo := make(reflection.StringColumn, n)
	bar := make(reflection.FloatColumn, n)
	for i := range indices {
		values[i] = float64(100 + i)
		variances[i] = float64(10 + i)
		ids[i] = int64(i % 2)
		foo[i] = "foo"
		bar[i] = 0.5
	}

	table := reflection.New()
	require.NoError(t, table.Set(reflection.ColumnMillerIndex, reflection.MillerIndexColumn(append([]miller.Index(nil), indices...))))
	require.NoError(t, table.Set(reflection.ColumnIntensitySumValue, values))
	require.NoError(t, table.Set(reflection.ColumnIntensitySumVariance, variances))
	require.NoError(t, table.Set(reflection.ColumnID, ids))
	require.NoError(t, table.Set("foo", foo))
	require.NoError(t, table.Set("bar", bar))
	return table
}

// Experiments returns one experiment per space group symbol.
func Experiments(spaceGroups ...string) experiment.List {
	list := make(experiment.List, len(spaceGroups))
	for i, sg := range spaceGroups {
		list[i] = experiment.Experiment{
			Identifier: sg,
			Crystal:    experiment.Crystal{SpaceGroup: sg},
		}
	}
	return list
}
