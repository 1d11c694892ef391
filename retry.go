package nlmkit

import (
	"context"
	"strings"
	"time"
)

// noConfirmationPhrase marks the one known-transient failure mode of
// research_start: the API occasionally fails to acknowledge a start
// request that logically succeeded. Matching is case-insensitive.
const noConfirmationPhrase = "no confirmation from api"

// isNoConfirmation reports whether err is the transient
// research-start acknowledgement failure.
func isNoConfirmation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), noConfirmationPhrase)
}

// retryTransient runs attempt up to 1+retries times, retrying only
// "no confirmation from API" errors with an exponentially doubling
// delay. Any other error propagates on first occurrence; if all
// attempts fail transiently, the last error is returned. This is the
// only place an error is intentionally swallowed and replayed.
func retryTransient(ctx context.Context, retries int, delay time.Duration, sleep sleepFunc, attempt func() (*ResearchTask, error)) (*ResearchTask, error) {
	var lastErr error
	for i := 0; i <= retries; i++ {
		task, err := attempt()
		if err == nil {
			return task, nil
		}
		if !isNoConfirmation(err) {
			return nil, err
		}
		lastErr = err
		if i < retries {
			if sleepErr := sleep(ctx, delay); sleepErr != nil {
				return nil, sleepErr
			}
			delay *= 2
		}
	}
	return nil, lastErr
}
