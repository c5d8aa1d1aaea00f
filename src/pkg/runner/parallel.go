// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package runner

import (
	"context"
	"fmt"

	"github.com/rnr-dev/rnr/src/types"
	"golang.org/x/sync/errgroup"
)

// runParallel starts every step of a group at once and waits for all of them.
// A failing step does not cancel its siblings; failures are reported in step order.
func (r *Runner) runParallel(ctx context.Context, steps []types.SimpleStep, pos string, scope Scope) error {
	if len(steps) == 0 {
		return nil
	}
	r.log.Debug("Starting parallel steps", "task", scope.task, "count", len(steps))

	// each worker owns its slot, Wait orders the writes before the reads below
	failures := make([]error, len(steps))

	var g errgroup.Group
	for i, step := range steps {
		g.Go(func() error {
			label := fmt.Sprintf("%s, parallel step %d", pos, i+1)
			if err := r.runSimpleStep(ctx, step, label, scope); err != nil {
				failures[i] = &StepError{Step: fmt.Sprintf("%s (%s)", label, step.Label()), Err: err}
			}
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, err := range failures {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &ParallelError{Failures: errs}
	}
	return nil
}
