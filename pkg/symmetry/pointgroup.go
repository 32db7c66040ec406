package symmetry

import "fmt"

// CrystalSystem names the metric family of a point group.
type CrystalSystem string

const (
	Triclinic    CrystalSystem = "triclinic"
	Monoclinic   CrystalSystem = "monoclinic"
	Orthorhombic CrystalSystem = "orthorhombic"
	Tetragonal   CrystalSystem = "tetragonal"
	Trigonal     CrystalSystem = "trigonal"
	Hexagonal    CrystalSystem = "hexagonal"
	Cubic        CrystalSystem = "cubic"
)

// Generators in the standard orientations (monoclinic unique axis b,
// trigonal and hexagonal groups on hexagonal axes).
var (
	rot2z   = Rot{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	rot2y   = Rot{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}
	rot2x   = Rot{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
	mirrorX = Rot{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	mirrorY = Rot{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	mirrorZ = Rot{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}}
	rot4z   = Rot{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	rotM4z  = Rot{{0, 1, 0}, {-1, 0, 0}, {0, 0, -1}}
	rot3z   = Rot{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}}
	rot6z   = Rot{{1, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	rot3xyz = Rot{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}

	// y,x,-z and -y,-x,-z: the twofold axes of 321 and 312
	rot2ab  = Rot{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}
	rot2amb = Rot{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}}
	// -y,-x,z and y,x,z: the mirrors of 3m1 and 31m
	mirrorAB  = Rot{{0, -1, 0}, {-1, 0, 0}, {0, 0, 1}}
	mirrorAMB = Rot{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}
)

// PointGroup is a crystallographic point group in a fixed orientation.
type PointGroup struct {
	name   string
	laue   string
	system CrystalSystem
	ops    []Rot
	laueOp []Rot
}

// Name returns the Hermann-Mauguin point group symbol, e.g. "422" or "-3m1".
func (p *PointGroup) Name() string { return p.name }

// LaueClass returns the symbol of the centrosymmetric supergroup, e.g. "4/mmm".
func (p *PointGroup) LaueClass() string { return p.laue }

// CrystalSystem returns the crystal system of the point group.
func (p *PointGroup) CrystalSystem() CrystalSystem { return p.system }

// Ops returns the rotation parts of the group. The slice must not be modified.
func (p *PointGroup) Ops() []Rot { return p.ops }

// LaueOps returns the operations of the point group extended by inversion.
// The slice must not be modified.
func (p *PointGroup) LaueOps() []Rot { return p.laueOp }

// Order returns the number of operations in the group.
func (p *PointGroup) Order() int { return len(p.ops) }

// IsCentric reports whether the group contains the inversion centre.
func (p *PointGroup) IsCentric() bool {
	for _, op := range p.ops {
		if op == Inversion {
			return true
		}
	}
	return false
}

type pointGroupDef struct {
	name   string
	laue   string
	system CrystalSystem
	gens   []Rot
}

var pointGroupDefs = []pointGroupDef{
	{"1", "-1", Triclinic, nil},
	{"-1", "-1", Triclinic, []Rot{Inversion}},

	{"2", "2/m", Monoclinic, []Rot{rot2y}},
	{"m", "2/m", Monoclinic, []Rot{mirrorY}},
	{"2/m", "2/m", Monoclinic, []Rot{rot2y, Inversion}},

	{"222", "mmm", Orthorhombic, []Rot{rot2z, rot2y}},
	{"mm2", "mmm", Orthorhombic, []Rot{rot2z, mirrorX}},
	{"mmm", "mmm", Orthorhombic, []Rot{rot2z, rot2y, Inversion}},

	{"4", "4/m", Tetragonal, []Rot{rot4z}},
	{"-4", "4/m", Tetragonal, []Rot{rotM4z}},
	{"4/m", "4/m", Tetragonal, []Rot{rot4z, Inversion}},
	{"422", "4/mmm", Tetragonal, []Rot{rot4z, rot2x}},
	{"4mm", "4/mmm", Tetragonal, []Rot{rot4z, mirrorX}},
	{"-42m", "4/mmm", Tetragonal, []Rot{rotM4z, rot2x}},
	{"-4m2", "4/mmm", Tetragonal, []Rot{rotM4z, mirrorX}},
	{"4/mmm", "4/mmm", Tetragonal, []Rot{rot4z, rot2x, Inversion}},

	{"3", "-3", Trigonal, []Rot{rot3z}},
	{"-3", "-3", Trigonal, []Rot{rot3z, Inversion}},
	{"312", "-31m", Trigonal, []Rot{rot3z, rot2amb}},
	{"321", "-3m1", Trigonal, []Rot{rot3z, rot2ab}},
	{"3m1", "-3m1", Trigonal, []Rot{rot3z, mirrorAB}},
	{"31m", "-31m", Trigonal, []Rot{rot3z, mirrorAMB}},
	{"-31m", "-31m", Trigonal, []Rot{rot3z, mirrorAMB, Inversion}},
	{"-3m1", "-3m1", Trigonal, []Rot{rot3z, mirrorAB, Inversion}},

	{"6", "6/m", Hexagonal, []Rot{rot6z}},
	{"-6", "6/m", Hexagonal, []Rot{rot3z, mirrorZ}},
	{"6/m", "6/m", Hexagonal, []Rot{rot6z, Inversion}},
	{"622", "6/mmm", Hexagonal, []Rot{rot6z, rot2ab}},
	{"6mm", "6/mmm", Hexagonal, []Rot{rot6z, mirrorAB}},
	{"-6m2", "6/mmm", Hexagonal, []Rot{rot3z, mirrorZ, mirrorAB}},
	{"-62m", "6/mmm", Hexagonal, []Rot{rot3z, mirrorZ, mirrorAMB}},
	{"6/mmm", "6/mmm", Hexagonal, []Rot{rot6z, rot2ab, Inversion}},

	{"23", "m-3", Cubic, []Rot{rot2z, rot2y, rot3xyz}},
	{"m-3", "m-3", Cubic, []Rot{rot2z, rot2y, rot3xyz, Inversion}},
	{"432", "m-3m", Cubic, []Rot{rot2z, rot2y, rot3xyz, rot4z}},
	{"-43m", "m-3m", Cubic, []Rot{rot2z, rot2y, rot3xyz, rotM4z}},
	{"m-3m", "m-3m", Cubic, []Rot{rot2z, rot2y, rot3xyz, rot4z, Inversion}},
}

var pointGroups = buildPointGroups()

func buildPointGroups() map[string]*PointGroup {
	out := make(map[string]*PointGroup, len(pointGroupDefs))
	for _, def := range pointGroupDefs {
		ops := closure(def.gens...)
		laueGens := append(append([]Rot(nil), def.gens...), Inversion)
		out[def.name] = &PointGroup{
			name:   def.name,
			laue:   def.laue,
			system: def.system,
			ops:    ops,
			laueOp: closure(laueGens...),
		}
	}
	return out
}

// LookupPointGroup returns the point group with the given symbol.
func LookupPointGroup(name string) (*PointGroup, error) {
	pg, ok := pointGroups[name]
	if !ok {
		return nil, fmt.Errorf("unknown point group %q", name)
	}
	return pg, nil
}
