// Package experiment describes the per-experiment records consumed by
// pipeline stages. Stages treat experiments as read-only.
package experiment

import (
	"fmt"
	"os"

	errs "github.com/lexlapax/xmerge/pkg/errors"
	"github.com/lexlapax/xmerge/pkg/symmetry"
	"gopkg.in/yaml.v3"
)

// Crystal holds the crystal model of an experiment.
type Crystal struct {
	// SpaceGroup is the space group symbol or number used to integrate the data
	SpaceGroup string `yaml:"space_group" json:"space_group"`

	// UnitCell is (a, b, c, alpha, beta, gamma), optional
	UnitCell []float64 `yaml:"unit_cell,omitempty" json:"unit_cell,omitempty"`
}

// GetSpaceGroup resolves the crystal's space group.
func (c Crystal) GetSpaceGroup() (symmetry.SpaceGroup, error) {
	return symmetry.LookupSpaceGroup(c.SpaceGroup)
}

// Experiment is one indexed and integrated diffraction experiment.
type Experiment struct {
	// Identifier is a unique identifier of the experiment
	Identifier string `yaml:"identifier" json:"identifier"`

	// ImagePath is the image the experiment was integrated from, informational only
	ImagePath string `yaml:"image,omitempty" json:"image,omitempty"`

	// Crystal is the crystal model
	Crystal Crystal `yaml:"crystal" json:"crystal"`
}

// List is an ordered collection of experiments.
type List []Experiment

// Identifiers returns the experiment identifiers in order.
func (l List) Identifiers() []string {
	ids := make([]string, len(l))
	for i, e := range l {
		ids[i] = e.Identifier
	}
	return ids
}

type listFile struct {
	Experiments List `yaml:"experiments"`
}

// LoadFromFile reads an experiment list from a YAML or JSON file with a
// top-level "experiments" sequence.
func LoadFromFile(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses an experiment list and checks every crystal's space group.
func LoadFromBytes(data []byte) (List, error) {
	var f listFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse experiments: %w", err)
	}
	for i, e := range f.Experiments {
		if _, err := e.Crystal.GetSpaceGroup(); err != nil {
			return nil, fmt.Errorf("experiment %d (%s): %w", i, e.Identifier, err)
		}
		if len(e.Crystal.UnitCell) != 0 && len(e.Crystal.UnitCell) != 6 {
			return nil, fmt.Errorf("%w: experiment %d (%s) unit cell needs 6 parameters",
				errs.ErrInvalidInput, i, e.Identifier)
		}
	}
	return f.Experiments, nil
}
