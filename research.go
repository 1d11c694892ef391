package nlmkit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// Research defaults.
const (
	DefaultPollInterval    = 30 * time.Second
	DefaultMaxWait         = 5 * time.Minute
	DefaultStartRetryDelay = 10 * time.Second
)

// ResearchService runs deep/fast research: start a task, poll it to a
// terminal status, import the discovered sources.
type ResearchService struct {
	caller ToolCaller
	logger *slog.Logger

	pollInterval    time.Duration
	maxWait         time.Duration
	startRetries    int
	startRetryDelay time.Duration

	// Clock hooks, replaced in tests.
	now   func() time.Time
	sleep sleepFunc
}

func newResearchService(caller ToolCaller, logger *slog.Logger) *ResearchService {
	return &ResearchService{
		caller:          caller,
		logger:          logger,
		pollInterval:    DefaultPollInterval,
		maxWait:         DefaultMaxWait,
		startRetryDelay: DefaultStartRetryDelay,
		now:             time.Now,
		sleep:           sleepContext,
	}
}

// StartOption configures Start.
type StartOption func(*startOptions)

type startOptions struct {
	source     string
	mode       string
	notebookID string
	title      string
	retries    int
	retryDelay time.Duration
}

// WithResearchSource sets the search source (web or drive).
func WithResearchSource(source string) StartOption {
	return func(o *startOptions) { o.source = source }
}

// WithResearchMode sets the research mode (fast or deep).
func WithResearchMode(mode string) StartOption {
	return func(o *startOptions) { o.mode = mode }
}

// WithResearchNotebook attaches the research to an existing notebook.
func WithResearchNotebook(notebookID string) StartOption {
	return func(o *startOptions) { o.notebookID = notebookID }
}

// WithResearchTitle sets an optional research title.
func WithResearchTitle(title string) StartOption {
	return func(o *startOptions) { o.title = title }
}

// WithStartRetries sets how many times a transient "no confirmation
// from API" failure is retried. Total attempts = 1 + retries.
func WithStartRetries(retries int) StartOption {
	return func(o *startOptions) { o.retries = retries }
}

// WithStartRetryDelay sets the initial delay between start retries.
// The delay doubles after each attempt.
func WithStartRetryDelay(delay time.Duration) StartOption {
	return func(o *startOptions) { o.retryDelay = delay }
}

// Start begins research for a query. Google's API intermittently fails
// to acknowledge deep-research starts; those failures are retried per
// WithStartRetries while every other error propagates immediately.
func (r *ResearchService) Start(ctx context.Context, query string, opts ...StartOption) (*ResearchTask, error) {
	o := startOptions{
		source:     nlmcontract.ResearchSourceWeb,
		mode:       nlmcontract.ResearchModeFast,
		retries:    r.startRetries,
		retryDelay: r.startRetryDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	attempt := func() (*ResearchTask, error) {
		data, err := r.caller.CallTool(ctx, nlmcontract.ToolResearchStart, map[string]any{
			"query":       query,
			"source":      o.source,
			"mode":        o.mode,
			"notebook_id": nilIfEmpty(o.notebookID),
			"title":       nilIfEmpty(o.title),
		})
		if err != nil {
			return nil, err
		}
		var task ResearchTask
		if err := decodeInto(nlmcontract.ToolResearchStart, data, &task); err != nil {
			return nil, err
		}
		return &task, nil
	}

	return retryTransient(ctx, o.retries, o.retryDelay, r.sleep, attempt)
}

// StatusOption configures Status.
type StatusOption func(*statusOptions)

type statusOptions struct {
	pollInterval time.Duration
	maxWait      time.Duration
	compact      bool
	taskID       string
	query        string
}

// WithPollInterval sets the suspend time between polls.
func WithPollInterval(d time.Duration) StatusOption {
	return func(o *statusOptions) { o.pollInterval = d }
}

// WithMaxWait sets the wall-clock deadline after which Status fails
// with a timeout error.
func WithMaxWait(d time.Duration) StatusOption {
	return func(o *statusOptions) { o.maxWait = d }
}

// WithFullOutput disables the server's compact status output.
func WithFullOutput() StatusOption {
	return func(o *statusOptions) { o.compact = false }
}

// WithTaskID polls a specific task rather than the notebook's latest.
func WithTaskID(taskID string) StatusOption {
	return func(o *statusOptions) { o.taskID = taskID }
}

// WithQueryFilter filters the polled task by query text.
func WithQueryFilter(query string) StatusOption {
	return func(o *statusOptions) { o.query = query }
}

// Status polls research progress until a terminal status is observed,
// returning that snapshot. Each remote call is given a wait budget of
// at most the poll interval so the loop stays responsive to the
// overall deadline. Fails with a timeout error carrying the elapsed
// seconds and last observed status once the deadline passes.
func (r *ResearchService) Status(ctx context.Context, notebookID string, opts ...StatusOption) (*ResearchTask, error) {
	o := statusOptions{
		pollInterval: r.pollInterval,
		maxWait:      r.maxWait,
		compact:      true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	start := r.now()
	for {
		elapsed := r.now().Sub(start)
		data, err := r.caller.CallTool(ctx, nlmcontract.ToolResearchStatus, map[string]any{
			"notebook_id":   notebookID,
			"poll_interval": seconds(o.pollInterval),
			"max_wait":      seconds(pollBudget(o.pollInterval, o.maxWait, elapsed)),
			"compact":       o.compact,
			"task_id":       nilIfEmpty(o.taskID),
			"query":         nilIfEmpty(o.query),
		})
		if err != nil {
			return nil, err
		}
		var task ResearchTask
		if err := decodeInto(nlmcontract.ToolResearchStatus, data, &task); err != nil {
			return nil, err
		}
		if nlmcontract.IsTerminalResearchStatus(task.Status) {
			return &task, nil
		}

		elapsed = r.now().Sub(start)
		if elapsed >= o.maxWait {
			return nil, &Error{
				Kind: KindTimeout,
				Tool: nlmcontract.ToolResearchStatus,
				Message: fmt.Sprintf("research did not complete within %ds (status=%q, elapsed=%.0fs)",
					seconds(o.maxWait), task.Status, elapsed.Seconds()),
			}
		}

		r.logger.Debug("research still running", "notebook_id", notebookID, "status", task.Status, "elapsed", elapsed)
		if err := r.sleep(ctx, o.pollInterval); err != nil {
			return nil, err
		}
	}
}

// ImportSources imports discovered sources into the notebook. A nil
// sourceIndices imports everything the task found.
func (r *ResearchService) ImportSources(ctx context.Context, notebookID, taskID string, sourceIndices []int) (*ResearchImportResult, error) {
	data, err := r.caller.CallTool(ctx, nlmcontract.ToolResearchImport, map[string]any{
		"notebook_id":    notebookID,
		"task_id":        taskID,
		"source_indices": nilIfEmptySlice(sourceIndices),
	})
	if err != nil {
		return nil, err
	}
	var result ResearchImportResult
	if err := decodeInto(nlmcontract.ToolResearchImport, data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
