// Package worker validates batches of independent data trees in parallel.
// Independent trees share no mutable state, so they can be walked
// concurrently by the same Validator; each job gets its own deferred
// queue.
package worker

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	yv "github.com/yangkit/validator"
	"github.com/yangkit/validator/data"
	"github.com/yangkit/validator/engine"
	"github.com/yangkit/validator/unres"
)

// Job is one tree to validate.
type Job struct {
	// ID correlates the result with the job.
	ID string

	// Root is the first top-level node of the tree.
	Root *data.Node

	// Resolver drains the job's deferred checks. Optional when the tree
	// enqueues nothing.
	Resolver unres.Resolver
}

// JobResult is the outcome of one job.
type JobResult struct {
	// ID matches the Job that produced this result.
	ID string

	// Result is the validation result; the caller releases it.
	Result *yv.Result

	// Err is the infrastructure error of the run, if any.
	Err error
}

// Batch runs jobs through one Validator with bounded parallelism.
type Batch struct {
	validator *engine.Validator
	workers   int

	jobsCompleted atomic.Uint64
}

// NewBatch creates a batch runner. If workers <= 0, it defaults to
// runtime.NumCPU().
func NewBatch(v *engine.Validator, workers int) *Batch {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Batch{validator: v, workers: workers}
}

// ValidateAll validates every job and returns the results in job order.
// Individual validation failures land in the per-job results; the error
// return is reserved for context cancellation.
func (b *Batch) ValidateAll(ctx context.Context, jobs []Job) ([]JobResult, error) {
	results := make([]JobResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := b.validator.Validate(ctx, job.Root, job.Resolver)
			if res != nil {
				res.JobID = job.ID
			}
			results[i] = JobResult{ID: job.ID, Result: res, Err: err}
			b.jobsCompleted.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Completed returns the number of jobs completed over the batch runner's
// lifetime.
func (b *Batch) Completed() uint64 {
	return b.jobsCompleted.Load()
}
