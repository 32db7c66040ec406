package symmetry

import (
	"fmt"
	"math"

	errs "github.com/lexlapax/xmerge/pkg/errors"
)

// Default tolerances for unit cell compatibility checks.
const (
	DefaultRelativeLengthTolerance = 0.01
	DefaultAbsoluteAngleTolerance  = 1.0
)

// UnitCell holds the direct-space cell parameters: lengths in Angstrom and
// angles in degrees.
type UnitCell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// NewUnitCell builds a UnitCell from six parameters (a, b, c, alpha, beta, gamma)
// and validates it.
func NewUnitCell(params []float64) (*UnitCell, error) {
	if len(params) != 6 {
		return nil, fmt.Errorf("%w: unit cell needs 6 parameters, got %d", errs.ErrInvalidInput, len(params))
	}
	uc := &UnitCell{
		A: params[0], B: params[1], C: params[2],
		Alpha: params[3], Beta: params[4], Gamma: params[5],
	}
	if err := uc.Validate(); err != nil {
		return nil, err
	}
	return uc, nil
}

// Parameters returns (a, b, c, alpha, beta, gamma).
func (u UnitCell) Parameters() []float64 {
	return []float64{u.A, u.B, u.C, u.Alpha, u.Beta, u.Gamma}
}

// Volume returns the cell volume, or NaN for a geometrically impossible cell.
func (u UnitCell) Volume() float64 {
	ca := math.Cos(u.Alpha * math.Pi / 180)
	cb := math.Cos(u.Beta * math.Pi / 180)
	cg := math.Cos(u.Gamma * math.Pi / 180)
	d := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if d <= 0 {
		return math.NaN()
	}
	return u.A * u.B * u.C * math.Sqrt(d)
}

// Validate checks that the lengths are positive, the angles lie in (0, 180)
// and the cell has a positive volume.
func (u UnitCell) Validate() error {
	for _, l := range []float64{u.A, u.B, u.C} {
		if !(l > 0) {
			return fmt.Errorf("%w: non-positive cell length in %s", errs.ErrInvalidInput, u)
		}
	}
	for _, a := range []float64{u.Alpha, u.Beta, u.Gamma} {
		if !(a > 0 && a < 180) {
			return fmt.Errorf("%w: cell angle out of range in %s", errs.ErrInvalidInput, u)
		}
	}
	if math.IsNaN(u.Volume()) {
		return fmt.Errorf("%w: cell %s has no volume", errs.ErrInvalidInput, u)
	}
	return nil
}

// IsCompatible reports whether the cell satisfies the metric constraints of
// the crystal system within the given tolerances.
func (u UnitCell) IsCompatible(system CrystalSystem, relLength, absAngle float64) bool {
	eqL := func(x, y float64) bool {
		return math.Abs(x-y) <= relLength*math.Max(x, y)
	}
	eqA := func(x, want float64) bool {
		return math.Abs(x-want) <= absAngle
	}

	switch system {
	case Triclinic:
		return true
	case Monoclinic:
		return eqA(u.Alpha, 90) && eqA(u.Gamma, 90)
	case Orthorhombic:
		return eqA(u.Alpha, 90) && eqA(u.Beta, 90) && eqA(u.Gamma, 90)
	case Tetragonal:
		return eqL(u.A, u.B) && eqA(u.Alpha, 90) && eqA(u.Beta, 90) && eqA(u.Gamma, 90)
	case Trigonal, Hexagonal:
		return eqL(u.A, u.B) && eqA(u.Alpha, 90) && eqA(u.Beta, 90) && eqA(u.Gamma, 120)
	case Cubic:
		return eqL(u.A, u.B) && eqL(u.B, u.C) && eqL(u.A, u.C) &&
			eqA(u.Alpha, 90) && eqA(u.Beta, 90) && eqA(u.Gamma, 90)
	}
	return false
}

func (u UnitCell) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g, %g, %g)", u.A, u.B, u.C, u.Alpha, u.Beta, u.Gamma)
}
