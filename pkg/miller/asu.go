package miller

import (
	"github.com/lexlapax/xmerge/pkg/symmetry"
)

// ASU maps indices to the asymmetric unit of one space group type.
//
// The representative of an index is the lexicographically greatest member of
// its orbit under the Laue group. With anomalous pairing, an acentric index
// whose representative is only reachable through inversion maps to the
// negated representative, so Friedel mates stay apart.
type ASU struct {
	ops     []symmetry.Rot
	laueOps []symmetry.Rot
}

// NewASU prepares the mapping for a space group type.
func NewASU(t symmetry.SpaceGroupType) *ASU {
	pg := t.PointGroup()
	return &ASU{ops: pg.Ops(), laueOps: pg.LaueOps()}
}

func (a *ASU) apply(r symmetry.Rot, h Index) Index {
	return Index(r.TransformIndex([3]int(h)))
}

func (a *ASU) representative(h Index) Index {
	best := h
	for _, r := range a.laueOps {
		if hr := a.apply(r, h); best.Less(hr) {
			best = hr
		}
	}
	return best
}

// IsInside reports whether h is its own representative in the Laue asymmetric unit.
func (a *ASU) IsInside(h Index) bool {
	return a.representative(h) == h
}

// IsCentric reports whether h and -h are related by the group's rotations.
func (a *ASU) IsCentric(h Index) bool {
	minus := h.Neg()
	for _, r := range a.ops {
		if a.apply(r, h) == minus {
			return true
		}
	}
	return false
}

// Map returns the asymmetric unit representative of h.
func (a *ASU) Map(h Index, anomalous bool) Index {
	if h.IsZero() {
		return h
	}
	rep := a.representative(h)
	if !anomalous {
		return rep
	}
	for _, r := range a.ops {
		if a.apply(r, h) == rep {
			return rep
		}
	}
	return rep.Neg()
}

// MapToASU rewrites every index in place with its asymmetric unit
// representative for space group type t. When anomalous is true, Friedel
// mates of acentric reflections are kept distinct.
func MapToASU(t symmetry.SpaceGroupType, anomalous bool, indices []Index) {
	asu := NewASU(t)
	for i, h := range indices {
		indices[i] = asu.Map(h, anomalous)
	}
}

// MapIndex reduces a single index.
func MapIndex(t symmetry.SpaceGroupType, anomalous bool, h Index) Index {
	return NewASU(t).Map(h, anomalous)
}
