package nlmkit

import (
	"context"
	"time"
)

// sleepFunc suspends for d or until the context is done. Replaced in
// tests to avoid real waits.
type sleepFunc func(ctx context.Context, d time.Duration) error

// sleepContext is the production sleepFunc.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// pollBudget bounds a single remote wait so the poll loop stays
// responsive to the overall deadline: min(interval, max(1s, maxWait -
// elapsed)).
func pollBudget(interval, maxWait, elapsed time.Duration) time.Duration {
	remaining := maxWait - elapsed
	if remaining < time.Second {
		remaining = time.Second
	}
	if remaining < interval {
		return remaining
	}
	return interval
}

// seconds converts a duration to whole seconds for the wire, which is
// how the server expresses wait budgets.
func seconds(d time.Duration) int {
	return int(d / time.Second)
}
