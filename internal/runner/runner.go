package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vk/puzzlegrid/internal/config"
	"github.com/vk/puzzlegrid/internal/ctxlog"
	"github.com/vk/puzzlegrid/internal/registry"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 4

// Runner executes manifest entries against a solver registry.
type Runner struct {
	registry *registry.Registry
	workers  int
}

// New creates a runner. A worker count below 1 selects DefaultWorkers.
func New(reg *registry.Registry, workers int) *Runner {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Runner{registry: reg, workers: workers}
}

// job is one prepared puzzle part, ready to execute.
type job struct {
	entry  *config.Puzzle
	puzzle *registry.Puzzle
	part   int
	input  string
	params registry.Params
}

// Run prepares and executes every part of every puzzle in the model. A
// non-nil error means the run could not start or was cancelled; solver
// failures are reported through Result.Err instead.
func (r *Runner) Run(ctx context.Context, model *config.Model) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)

	jobs, err := r.prepare(model)
	if err != nil {
		return nil, err
	}
	logger.Info("Starting puzzle run.", "parts", len(jobs), "workers", r.workers)

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = r.execute(gctx, j)
			return nil
		})
	}

	// Workers never return errors, so Wait only signals completion.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		logger.Warn("Puzzle run cancelled.", "error", err)
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	logger.Info("Puzzle run finished.", "parts", len(results))
	return results, nil
}

func (r *Runner) prepare(model *config.Model) ([]*job, error) {
	var errs []string
	var jobs []*job

	for _, entry := range model.Puzzles {
		p, ok := r.registry.Lookup(entry.ID)
		if !ok {
			errs = append(errs, fmt.Sprintf("puzzle '%s': no solver registered for this id", entry.ID))
			continue
		}
		params, err := p.BindParams(entry.Params)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		input, err := entry.ReadInput()
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		for part := 1; part <= 2; part++ {
			jobs = append(jobs, &job{entry: entry, puzzle: p, part: part, input: input, params: params})
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("run preparation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return jobs, nil
}

func (r *Runner) execute(ctx context.Context, j *job) (res Result) {
	logger := ctxlog.FromContext(ctx).With("puzzle", j.entry.ID, "part", j.part)

	res = Result{
		ID:       j.entry.ID,
		Title:    j.entry.Title,
		Part:     j.part,
		Expected: j.entry.Expect.Part(j.part),
	}
	if res.Title == "" {
		res.Title = j.puzzle.Title
	}

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("solver panicked: %v", p)
		}
		res.Duration = time.Since(start)
		if res.Err != nil {
			logger.Error("Puzzle part failed.", "error", res.Err, "duration", res.Duration)
			return
		}
		logger.Debug("Puzzle part finished.", "answer", res.Answer, "status", res.Status().String(), "duration", res.Duration)
	}()

	logger.Debug("Puzzle part started.")
	res.Answer, res.Err = j.puzzle.Part(j.part)(ctx, j.input, j.params)
	return res
}
