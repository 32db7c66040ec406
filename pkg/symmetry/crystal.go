package symmetry

import (
	"fmt"

	errs "github.com/lexlapax/xmerge/pkg/errors"
)

// CrystalSymmetry pairs a unit cell with a space group.
type CrystalSymmetry struct {
	unitCell   *UnitCell
	spaceGroup SpaceGroup
}

// NewCrystalSymmetry combines cell and group. A nil cell is accepted and
// skips the compatibility check; otherwise the cell must be valid and fit
// the crystal system of the group.
func NewCrystalSymmetry(cell *UnitCell, group SpaceGroup) (*CrystalSymmetry, error) {
	if group.IsZero() {
		return nil, fmt.Errorf("%w: space group is required", errs.ErrInvalidInput)
	}
	if cell != nil {
		if err := cell.Validate(); err != nil {
			return nil, err
		}
		system := group.PointGroup().CrystalSystem()
		if !cell.IsCompatible(system, DefaultRelativeLengthTolerance, DefaultAbsoluteAngleTolerance) {
			return nil, fmt.Errorf("%w: %s is not %s as required by %s",
				errs.ErrIncompatibleUnitCell, cell, system, group)
		}
	}
	return &CrystalSymmetry{unitCell: cell, spaceGroup: group}, nil
}

// UnitCell returns the cell, which may be nil.
func (c *CrystalSymmetry) UnitCell() *UnitCell { return c.unitCell }

// SpaceGroup returns the space group.
func (c *CrystalSymmetry) SpaceGroup() SpaceGroup { return c.spaceGroup }

// PattersonIdentity returns the symbol and number of the derived Patterson group.
func (c *CrystalSymmetry) PattersonIdentity() string {
	return c.spaceGroup.BuildDerivedPattersonGroup().Info().SymbolAndNumber()
}
