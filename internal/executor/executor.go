// Package executor bounds asynchronous operations with a deadline and a
// caller-supplied safe default. Nothing above this boundary ever observes an
// error: a slow, failing, or absent backend always resolves to the fallback.
package executor

import (
	"context"
	"time"

	"mindwell/internal/logging"
)

// WithDeadline races op against the deadline and returns the first
// resolution. If the deadline elapses or op returns an error, the fallback is
// returned instead; op keeps running in the background and its late result is
// discarded. Only the first resolution is ever applied.
//
// op receives the caller's context, not a deadline-derived one: cancellation
// here is soft by design. The result channel is buffered so the losing branch
// can complete and exit without anyone reading it.
func WithDeadline[T any](ctx context.Context, name string, deadline time.Duration, fallback T, op func(context.Context) (T, error)) T {
	type outcome struct {
		value T
		err   error
	}

	results := make(chan outcome, 1)
	go func() {
		value, err := op(ctx)
		results <- outcome{value: value, err: err}
	}()

	timer := time.NewTimer(deadline)
	defer timer.Stop()

	select {
	case out := <-results:
		if out.err != nil {
			logging.OrchestratorWarn("%s failed, using fallback: %v", name, out.err)
			return fallback
		}
		return out.value
	case <-timer.C:
		logging.OrchestratorWarn("%s exceeded %v deadline, using fallback", name, deadline)
		return fallback
	case <-ctx.Done():
		logging.OrchestratorDebug("%s canceled, using fallback: %v", name, ctx.Err())
		return fallback
	}
}
