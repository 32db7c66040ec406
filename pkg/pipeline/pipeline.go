// Package pipeline sequences worker stages over reflection tables, either on
// a single table or on disjoint partitions in parallel.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	errs "github.com/lexlapax/xmerge/pkg/errors"
	"github.com/lexlapax/xmerge/pkg/experiment"
	"github.com/lexlapax/xmerge/pkg/log"
	"github.com/lexlapax/xmerge/pkg/reflection"
	"github.com/lexlapax/xmerge/pkg/store"
	"golang.org/x/sync/errgroup"
)

// Worker is one pipeline stage. Experiments are read-only; the table may be
// edited in place and is returned for uniformity between stages.
type Worker interface {
	Name() string
	Run(ctx context.Context, experiments experiment.List, table *reflection.Table) (experiment.List, *reflection.Table, error)
}

// WorkerFactory builds the worker chain for one run or partition. The logger
// already carries the run and partition attributes.
type WorkerFactory func(logger *slog.Logger) ([]Worker, error)

// Pipeline runs a chain of workers.
type Pipeline struct {
	factory    WorkerFactory
	store      store.TableStore
	partitions int
	closers    []func() error
}

// New creates a pipeline that runs the given workers. The same workers are
// used for every partition, so they must be safe for concurrent use.
func New(workers ...Worker) *Pipeline {
	return NewWithFactory(func(*slog.Logger) ([]Worker, error) {
		return workers, nil
	})
}

// NewWithFactory creates a pipeline that builds a fresh worker chain per
// run and per partition.
func NewWithFactory(factory WorkerFactory) *Pipeline {
	return &Pipeline{factory: factory, partitions: 1}
}

// WithStore sets the store used by RunStored.
func (p *Pipeline) WithStore(s store.TableStore) *Pipeline {
	p.store = s
	return p
}

// WithPartitions sets the number of partitions used by RunStored.
func (p *Pipeline) WithPartitions(n int) *Pipeline {
	if n > 0 {
		p.partitions = n
	}
	return p
}

// Store returns the configured table store, which may be nil.
func (p *Pipeline) Store() store.TableStore {
	return p.store
}

// Run runs the worker chain once over table.
func (p *Pipeline) Run(ctx context.Context, experiments experiment.List, table *reflection.Table) (experiment.List, *reflection.Table, error) {
	runID := uuid.NewString()
	return p.runChain(ctx, runID, "", experiments, table)
}

// RunPartitions runs the worker chain over each table concurrently. The
// tables must be disjoint; the experiments are shared read-only. The first
// failure cancels the context of the remaining partitions.
func (p *Pipeline) RunPartitions(ctx context.Context, experiments experiment.List, tables []*reflection.Table) error {
	runID := uuid.NewString()
	log.FromContext(ctx).Info("Starting partitioned run", "run_id", runID, "partitions", len(tables))

	g, gctx := errgroup.WithContext(ctx)
	for i, table := range tables {
		g.Go(func() error {
			_, _, err := p.runChain(gctx, runID, strconv.Itoa(i), experiments, table)
			if err != nil {
				return fmt.Errorf("partition %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// RunStored loads the input table from the store, runs the workers over its
// partitions and saves the concatenated result under output.
func (p *Pipeline) RunStored(ctx context.Context, experiments experiment.List, input, output string) (*reflection.Table, error) {
	if p.store == nil {
		return nil, fmt.Errorf("%w: pipeline has no table store", errs.ErrInvalidInput)
	}

	table, err := p.store.Load(ctx, input)
	if err != nil {
		return nil, err
	}

	parts, err := reflection.Split(table, p.partitions)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		// An empty table still runs through the workers once
		parts = []*reflection.Table{table}
	}
	if err := p.RunPartitions(ctx, experiments, parts); err != nil {
		return nil, err
	}

	result, err := reflection.Concat(parts...)
	if err != nil {
		return nil, err
	}
	if err := p.store.Save(ctx, output, result); err != nil {
		return nil, err
	}

	log.FromContext(ctx).Info("Saved reflection table", "name", output, "rows", result.Size(), "columns", result.Keys())
	return result, nil
}

func (p *Pipeline) runChain(ctx context.Context, runID, partition string, experiments experiment.List, table *reflection.Table) (experiment.List, *reflection.Table, error) {
	logger := log.WithRunContext(log.FromContext(ctx), runID, partition)
	ctx = log.WithLogger(ctx, logger)

	workers, err := p.factory(logger)
	if err != nil {
		return experiments, table, fmt.Errorf("failed to build workers: %w", err)
	}

	for _, w := range workers {
		if err := ctx.Err(); err != nil {
			return experiments, table, err
		}
		logger.Debug("Running worker", "worker", w.Name(), "rows", table.Size())
		experiments, table, err = w.Run(ctx, experiments, table)
		if err != nil {
			logger.Error("Worker failed", "worker", w.Name(), "error", err)
			return experiments, table, fmt.Errorf("%s: %w", w.Name(), err)
		}
	}

	logger.Info("Pipeline run completed", "workers", len(workers), "rows", table.Size())
	return experiments, table, nil
}

// Close releases the resources opened by NewFromConfig.
func (p *Pipeline) Close() error {
	var first error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	p.closers = nil
	return first
}
