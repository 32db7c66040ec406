// Package edit implements the reflection table editing stage that runs before
// scaling and merging: it checks that every experiment shares the target
// Patterson group, adds the asymmetric-unit Miller index column and prunes the
// table down to the columns later stages need.
package edit

import (
	"context"
	"fmt"

	errs "github.com/lexlapax/xmerge/pkg/errors"
	"github.com/lexlapax/xmerge/pkg/experiment"
	"github.com/lexlapax/xmerge/pkg/log"
	"github.com/lexlapax/xmerge/pkg/miller"
	"github.com/lexlapax/xmerge/pkg/reflection"
	"github.com/lexlapax/xmerge/pkg/scripting"
	"github.com/lexlapax/xmerge/pkg/symmetry"
)

// Step names reported to the StepLogger.
const (
	StepAddASUColumn = "ADD_ASU_HKL_COLUMN"
	StepPruneColumns = "PRUNE_COLUMNS"
)

// DefaultKeepColumns are the columns retained by PruneReflectionColumns when
// Config.KeepColumns is empty.
var DefaultKeepColumns = []string{
	reflection.ColumnIntensitySumValue,
	reflection.ColumnIntensitySumVariance,
	reflection.ColumnMillerIndexAsymmetric,
	reflection.ColumnID,
}

// StepLogger receives start (done=false) and stop (done=true) events for
// each named step. *log.StepTimer satisfies it.
type StepLogger interface {
	LogStepTime(step string, done bool)
}

type noopStepLogger struct{}

func (noopStepLogger) LogStepTime(string, bool) {}

// Config contains the target symmetry and merge options for a TableEditor.
type Config struct {
	// TargetUnitCell is the unit cell used for scaling, optional
	TargetUnitCell *symmetry.UnitCell

	// TargetSpaceGroup is the space group symbol or number used for scaling
	TargetSpaceGroup string

	// MergeAnomalous merges Friedel mates into the same asymmetric unit index
	MergeAnomalous bool

	// KeepColumns overrides DefaultKeepColumns
	KeepColumns []string
}

// Option configures optional collaborators of a TableEditor.
type Option func(*TableEditor)

// WithStepLogger sets the collaborator receiving step timing events.
func WithStepLogger(l StepLogger) Option {
	return func(e *TableEditor) {
		if l != nil {
			e.steps = l
		}
	}
}

// WithScriptEngine enables the after_asu_mapping and after_prune Lua hooks.
func WithScriptEngine(engine scripting.Engine) Option {
	return func(e *TableEditor) {
		e.scriptEngine = engine
	}
}

// TableEditor is the pipeline worker that edits reflection tables in place.
// It holds no per-table state, so one editor may serve several partitions.
type TableEditor struct {
	config       Config
	target       *symmetry.CrystalSymmetry
	pattersonID  string
	keep         map[string]struct{}
	steps        StepLogger
	scriptEngine scripting.Engine
}

// NewTableEditor resolves the target symmetry and returns an editor.
func NewTableEditor(cfg Config, opts ...Option) (*TableEditor, error) {
	sg, err := symmetry.LookupSpaceGroup(cfg.TargetSpaceGroup)
	if err != nil {
		return nil, errs.Wrap(err, "target space group")
	}
	target, err := symmetry.NewCrystalSymmetry(cfg.TargetUnitCell, sg)
	if err != nil {
		return nil, errs.Wrap(err, "target symmetry")
	}

	if len(cfg.KeepColumns) == 0 {
		cfg.KeepColumns = DefaultKeepColumns
	}
	keep := make(map[string]struct{}, len(cfg.KeepColumns))
	for _, name := range cfg.KeepColumns {
		keep[name] = struct{}{}
	}

	e := &TableEditor{
		config:      cfg,
		target:      target,
		pattersonID: target.PattersonIdentity(),
		keep:        keep,
		steps:       noopStepLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}

	log.Debug("Table editor initialized",
		"space_group", sg.Info().SymbolAndNumber(),
		"patterson_group", e.pattersonID,
		"merge_anomalous", cfg.MergeAnomalous,
		"lua_hooks_enabled", e.scriptEngine != nil)

	return e, nil
}

// Name implements the pipeline worker interface.
func (e *TableEditor) Name() string {
	return "edit_reflection_tables"
}

// Target returns the resolved target symmetry.
func (e *TableEditor) Target() *symmetry.CrystalSymmetry {
	return e.target
}

// Run adds the asymmetric unit index column and prunes the table. The
// experiments are returned unchanged and the table is edited in place.
func (e *TableEditor) Run(ctx context.Context, experiments experiment.List, table *reflection.Table) (experiment.List, *reflection.Table, error) {
	e.steps.LogStepTime(StepAddASUColumn, false)
	if err := e.AddASUMillerIndicesColumn(ctx, experiments, table); err != nil {
		return experiments, table, err
	}
	e.steps.LogStepTime(StepAddASUColumn, true)

	e.steps.LogStepTime(StepPruneColumns, false)
	if err := e.PruneReflectionColumns(ctx, table); err != nil {
		return experiments, table, err
	}
	e.steps.LogStepTime(StepPruneColumns, true)

	return experiments, table, nil
}

// AddASUMillerIndicesColumn checks that every experiment has the target
// Patterson group and then stores the asymmetric unit index of each row in
// the miller_index_asymmetric column. Nothing is changed if the check fails.
// Empty tables are left untouched.
func (e *TableEditor) AddASUMillerIndicesColumn(ctx context.Context, experiments experiment.List, table *reflection.Table) error {
	if table.Size() == 0 {
		return nil
	}
	logger := log.FromContext(ctx)

	if err := e.checkPattersonGroups(experiments); err != nil {
		logger.Error("Experiment symmetry is incompatible with target", "error", err)
		return err
	}

	raw, err := table.MillerIndices(reflection.ColumnMillerIndex)
	if err != nil {
		return err
	}
	asym := raw.Clone().(reflection.MillerIndexColumn)
	miller.MapToASU(e.target.SpaceGroup().Type(), !e.config.MergeAnomalous, asym)

	if err := table.Set(reflection.ColumnMillerIndexAsymmetric, asym); err != nil {
		return err
	}

	logger.Debug("Mapped Miller indices to asymmetric unit",
		"rows", table.Size(),
		"experiments", len(experiments),
		"anomalous", !e.config.MergeAnomalous)

	e.callHook(ctx, afterASUMappingFuncName, table.Size(), e.pattersonID)
	return nil
}

func (e *TableEditor) checkPattersonGroups(experiments experiment.List) error {
	for i, exp := range experiments {
		sg, err := exp.Crystal.GetSpaceGroup()
		if err != nil {
			return fmt.Errorf("experiment %d (%s): %w", i, exp.Identifier, err)
		}
		identity := sg.BuildDerivedPattersonGroup().Info().SymbolAndNumber()
		if identity != e.pattersonID {
			return &errs.SymmetryMismatchError{
				Target:          e.pattersonID,
				Experiment:      identity,
				ExperimentIndex: i,
			}
		}
	}
	return nil
}

// PruneReflectionColumns deletes every column that is not in the keep set.
// Kept columns that are absent are not created. Empty tables are left untouched.
func (e *TableEditor) PruneReflectionColumns(ctx context.Context, table *reflection.Table) error {
	if table.Size() == 0 {
		return nil
	}

	removed := 0
	for _, name := range table.Keys() {
		if _, ok := e.keep[name]; ok {
			continue
		}
		if err := table.Delete(name); err != nil {
			return err
		}
		removed++
	}

	log.FromContext(ctx).Debug("Pruned reflection columns",
		"removed", removed,
		"remaining", table.Keys())

	e.callHook(ctx, afterPruneFuncName, table.Keys())
	return nil
}
