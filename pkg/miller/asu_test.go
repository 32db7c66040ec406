package miller

import (
	"strconv"
	"testing"

	"github.com/lexlapax/xmerge/pkg/symmetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sgType(t *testing.T, symbol string) symmetry.SpaceGroupType {
	t.Helper()
	sg, err := symmetry.LookupSpaceGroup(symbol)
	require.NoError(t, err)
	return sg.Type()
}

func indexGrid(n int) []Index {
	var out []Index
	for h := -n; h <= n; h++ {
		for k := -n; k <= n; k++ {
			for l := -n; l <= n; l++ {
				out = append(out, Index{h, k, l})
			}
		}
	}
	return out
}

func TestMapIndexExamples(t *testing.T) {
	tests := []struct {
		symbol    string
		in        Index
		merged    Index
		anomalous Index
	}{
		{"P 1", Index{1, 2, 3}, Index{1, 2, 3}, Index{1, 2, 3}},
		{"P 1", Index{-1, -2, -3}, Index{1, 2, 3}, Index{-1, -2, -3}},
		{"P -1", Index{-1, -2, -3}, Index{1, 2, 3}, Index{1, 2, 3}},
		{"P 1 21 1", Index{-1, 2, -3}, Index{1, 2, 3}, Index{1, 2, 3}},
		{"P 1 2 1", Index{1, 0, -1}, Index{1, 0, -1}, Index{1, 0, -1}},
		{"P 21 21 21", Index{-1, 2, -3}, Index{1, 2, 3}, Index{1, 2, 3}},
		{"P 21 21 21", Index{1, -2, 3}, Index{1, 2, 3}, Index{-1, -2, -3}},
		{"P 43 21 2", Index{-2, 3, -1}, Index{3, 2, 1}, Index{-3, -2, -1}},
		{"P 43 21 2", Index{2, -3, 1}, Index{3, 2, 1}, Index{3, 2, 1}},
		{"P 31 2 1", Index{1, 2, 3}, Index{3, -1, -3}, Index{-3, 1, 3}},
		{"P 31 2 1", Index{-1, -2, -3}, Index{3, -1, -3}, Index{3, -1, -3}},
		{"P 31", Index{1, 0, 0}, Index{1, 0, 0}, Index{1, 0, 0}},
		{"F m -3 m", Index{-3, 1, -2}, Index{3, 2, 1}, Index{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.symbol+" "+tt.in.String(), func(t *testing.T) {
			typ := sgType(t, tt.symbol)
			assert.Equal(t, tt.merged, MapIndex(typ, false, tt.in))
			assert.Equal(t, tt.anomalous, MapIndex(typ, true, tt.in))
		})
	}
}

func TestMapToASUZeroIsFixed(t *testing.T) {
	for n := 1; n <= 230; n++ {
		sg, err := symmetry.LookupSpaceGroup(strconv.Itoa(n))
		require.NoError(t, err)
		for _, anomalous := range []bool{false, true} {
			assert.Equal(t, Index{}, MapIndex(sg.Type(), anomalous, Index{}), "%s anomalous=%v", sg, anomalous)
		}
	}
}

func TestMapToASUOrbitInvariance(t *testing.T) {
	symbols := []string{
		"P 1", "P -1", "C 1 2 1", "P 1 c 1", "P 21 21 21", "C m m 2", "I 41", "I -4",
		"P 43 21 2", "P -4 2 m", "P -4 m 2", "R 3", "P 31 2 1", "P 31 1 2", "P 3 m 1",
		"P 3 1 m", "P 61 2 2", "P -6", "P -6 m 2", "P 21 3", "I 41 3 2", "F -4 3 m",
	}
	grid := indexGrid(3)

	for _, symbol := range symbols {
		t.Run(symbol, func(t *testing.T) {
			typ := sgType(t, symbol)
			pg := typ.PointGroup()
			asu := NewASU(typ)

			for _, h := range grid {
				for _, anomalous := range []bool{false, true} {
					want := asu.Map(h, anomalous)

					// Idempotent on its own image.
					require.Equal(t, want, asu.Map(want, anomalous), "%s anomalous=%v", h, anomalous)

					ops := pg.Ops()
					if !anomalous {
						ops = pg.LaueOps()
					}
					for _, r := range ops {
						hr := Index(r.TransformIndex([3]int(h)))
						require.Equal(t, want, asu.Map(hr, anomalous), "%s ~ %s anomalous=%v", h, hr, anomalous)
					}
				}

				// Without anomalous pairing every result is inside the Laue asymmetric unit.
				assert.True(t, asu.IsInside(asu.Map(h, false)))
			}
		})
	}
}

func TestMapToASUFriedelPairs(t *testing.T) {
	typ := sgType(t, "P 21 21 21")
	asu := NewASU(typ)

	for _, h := range indexGrid(3) {
		if h.IsZero() {
			continue
		}
		plus := asu.Map(h, true)
		minus := asu.Map(h.Neg(), true)
		if asu.IsCentric(h) {
			assert.Equal(t, plus, minus, "centric %s", h)
		} else {
			assert.Equal(t, plus, minus.Neg(), "acentric %s", h)
			assert.NotEqual(t, plus, minus)
		}
		assert.Equal(t, asu.Map(h, false), asu.Map(h.Neg(), false))
	}
}

func TestMapToASUInPlace(t *testing.T) {
	typ := sgType(t, "P 21 21 21")
	indices := []Index{{1, -2, 3}, {-1, 2, -3}, {0, 0, 0}}
	original := append([]Index(nil), indices...)

	MapToASU(typ, false, indices)

	assert.Equal(t, []Index{{1, 2, 3}, {1, 2, 3}, {0, 0, 0}}, indices)
	assert.NotEqual(t, original, indices)
}

func TestIsCentric(t *testing.T) {
	asu := NewASU(sgType(t, "P 1 21 1"))
	// h0l is centric in 2/m-derived monoclinic groups; hkl is not.
	assert.True(t, asu.IsCentric(Index{1, 0, 2}))
	assert.False(t, asu.IsCentric(Index{1, 1, 2}))
	// Everything is centric in a centrosymmetric group.
	assert.True(t, NewASU(sgType(t, "P -1")).IsCentric(Index{1, 1, 2}))
}

func TestParseIndex(t *testing.T) {
	for _, s := range []string{"1,2,3", "1 2 3", "(1,2,3)", " ( 1, 2, 3 ) "} {
		h, err := ParseIndex(s)
		require.NoError(t, err, s)
		assert.Equal(t, Index{1, 2, 3}, h)
	}

	h, err := ParseIndex("-1,0,-7")
	require.NoError(t, err)
	assert.Equal(t, Index{-1, 0, -7}, h)

	_, err = ParseIndex("1,2")
	assert.Error(t, err)
	_, err = ParseIndex("a,b,c")
	assert.Error(t, err)
}
