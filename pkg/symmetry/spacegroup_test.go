package symmetry

import (
	"testing"

	errs "github.com/lexlapax/xmerge/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSpaceGroup(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		number int
		want   string
	}{
		{"Spaced symbol", "P 21 21 21", 19, "P 21 21 21"},
		{"Compact symbol", "P212121", 19, "P 21 21 21"},
		{"Lowercase", "p 43 21 2", 96, "P 43 21 2"},
		{"Number", "19", 19, "P 21 21 21"},
		{"Monoclinic short", "C2", 5, "C 1 2 1"},
		{"Monoclinic full", "P 1 21/c 1", 14, "P 1 21/c 1"},
		{"Legacy glide symbol", "C m c a", 64, "C m c e"},
		{"Hexagonal setting suffix", "R 3 :H", 146, "R 3 :H"},
		{"Bare rhombohedral", "R32", 155, "R 3 2 :H"},
		{"Origin choice", "F d -3 m :2", 227, "F d -3 m"},
		{"Triclinic", "P1", 1, "P 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sg, err := LookupSpaceGroup(tt.symbol)
			require.NoError(t, err)
			assert.Equal(t, tt.number, sg.Number())
			assert.Equal(t, tt.want, sg.Symbol())
		})
	}
}

func TestLookupSpaceGroupErrors(t *testing.T) {
	for _, symbol := range []string{"", "   ", "X 1", "231", "0", "R 3 :R"} {
		t.Run(symbol, func(t *testing.T) {
			_, err := LookupSpaceGroup(symbol)
			assert.ErrorIs(t, err, errs.ErrUnknownSpaceGroup)
		})
	}
}

func TestEveryNumberResolves(t *testing.T) {
	for n := 1; n <= 230; n++ {
		sg, ok := spaceGroupsByNumber[n]
		require.True(t, ok, "space group %d missing", n)
		assert.Equal(t, n, sg.Number())

		again, err := LookupSpaceGroup(sg.Symbol())
		require.NoError(t, err)
		assert.Equal(t, sg, again)

		// Patterson derivation is defined for every group and is idempotent.
		p := sg.BuildDerivedPattersonGroup()
		assert.True(t, p.PointGroup().IsCentric(), "patterson of %s", sg)
		assert.Equal(t, p, p.BuildDerivedPattersonGroup())
	}
}

func TestBuildDerivedPattersonGroup(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"P 1", "P -1 (No. 2)"},
		{"P -1", "P -1 (No. 2)"},
		{"P 1 21 1", "P 1 2/m 1 (No. 10)"},
		{"C 1 2 1", "C 1 2/m 1 (No. 12)"},
		{"P 21 21 21", "P m m m (No. 47)"},
		{"C 2 2 21", "C m m m (No. 65)"},
		{"A m m 2", "A m m m (No. 65)"},
		{"I 21 21 21", "I m m m (No. 71)"},
		{"F 2 2 2", "F m m m (No. 69)"},
		{"P 41", "P 4/m (No. 83)"},
		{"I -4", "I 4/m (No. 87)"},
		{"P 43 21 2", "P 4/m m m (No. 123)"},
		{"I 41 2 2", "I 4/m m m (No. 139)"},
		{"P 31", "P -3 (No. 147)"},
		{"R 3", "R -3 :H (No. 148)"},
		{"P 31 2 1", "P -3 m 1 (No. 164)"},
		{"P 31 1 2", "P -3 1 m (No. 162)"},
		{"R 3 2", "R -3 m :H (No. 166)"},
		{"P 61", "P 6/m (No. 175)"},
		{"P 65 2 2", "P 6/m m m (No. 191)"},
		{"P 21 3", "P m -3 (No. 200)"},
		{"I 2 3", "I m -3 (No. 204)"},
		{"F 41 3 2", "F m -3 m (No. 225)"},
		{"I 41 3 2", "I m -3 m (No. 229)"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			sg := MustLookupSpaceGroup(tt.symbol)
			assert.Equal(t, tt.want, sg.BuildDerivedPattersonGroup().Info().SymbolAndNumber())
		})
	}
}

func TestPattersonDistinguishesLatticeAndLaue(t *testing.T) {
	p222 := MustLookupSpaceGroup("P 2 2 2").BuildDerivedPattersonGroup().Info()
	p212121 := MustLookupSpaceGroup("P 21 21 21").BuildDerivedPattersonGroup().Info()
	c222 := MustLookupSpaceGroup("C 2 2 2").BuildDerivedPattersonGroup().Info()
	p422 := MustLookupSpaceGroup("P 4 2 2").BuildDerivedPattersonGroup().Info()

	assert.Equal(t, p222.SymbolAndNumber(), p212121.SymbolAndNumber())
	assert.NotEqual(t, p222.SymbolAndNumber(), c222.SymbolAndNumber())
	assert.NotEqual(t, p222.SymbolAndNumber(), p422.SymbolAndNumber())
}

func TestSpaceGroupType(t *testing.T) {
	sg := MustLookupSpaceGroup("P 43 21 2")
	typ := sg.Type()
	assert.Equal(t, 96, typ.Number())
	assert.Equal(t, "422", typ.PointGroup().Name())
	assert.Equal(t, "P 43 21 2 (No. 96)", sg.String())
}
