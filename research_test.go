package nlmkit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestResearch wires a ResearchService to a fake clock: sleeps are
// recorded and advance the clock instead of blocking.
func newTestResearch(caller ToolCaller) (*ResearchService, *[]time.Duration) {
	r := newResearchService(caller, slog.New(slog.NewTextHandler(io.Discard, nil)))
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sleeps := new([]time.Duration)
	r.now = func() time.Time { return clock }
	r.sleep = func(ctx context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)
		clock = clock.Add(d)
		return nil
	}
	return r, sleeps
}

func TestResearchStartDefaults(t *testing.T) {
	mock := NewMockCaller(map[string]any{
		"task_id": "task1",
		"status":  "pending",
	})
	r, _ := newTestResearch(mock)

	task, err := r.Start(context.Background(), "quantum computing")
	require.NoError(t, err)
	assert.Equal(t, "task1", task.TaskID)

	call := mock.LastCall()
	assert.Equal(t, "research_start", call.Tool)
	assert.Equal(t, "quantum computing", call.Args["query"])
	assert.Equal(t, "web", call.Args["source"])
	assert.Equal(t, "fast", call.Args["mode"])
	// Omitted optionals are stripped, not sent as null.
	assert.NotContains(t, call.Args, "notebook_id")
	assert.NotContains(t, call.Args, "title")
}

func TestResearchStartOptions(t *testing.T) {
	mock := NewMockCaller(map[string]any{"task_id": "task1"})
	r, _ := newTestResearch(mock)

	_, err := r.Start(context.Background(), "q",
		WithResearchSource("drive"),
		WithResearchMode("deep"),
		WithResearchNotebook("nb1"),
		WithResearchTitle("My Research"),
	)
	require.NoError(t, err)

	args := mock.LastCall().Args
	assert.Equal(t, "drive", args["source"])
	assert.Equal(t, "deep", args["mode"])
	assert.Equal(t, "nb1", args["notebook_id"])
	assert.Equal(t, "My Research", args["title"])
}

func TestResearchStartRetriesTransient(t *testing.T) {
	calls := 0
	mock := NewMockCaller().WithCallFunc(func(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
		calls++
		if calls <= 2 {
			return nil, classifyError(name, "No confirmation from API - research may not have started")
		}
		return map[string]any{"task_id": "task1", "status": "running"}, nil
	})
	r, sleeps := newTestResearch(mock)

	task, err := r.Start(context.Background(), "q",
		WithStartRetries(3),
		WithStartRetryDelay(10*time.Second),
	)
	require.NoError(t, err)
	assert.Equal(t, "task1", task.TaskID)
	assert.Equal(t, 3, calls)
	// Delay doubles between transient attempts.
	assert.Equal(t, []time.Duration{10 * time.Second, 20 * time.Second}, *sleeps)
}

func TestResearchStartNonTransientFailsFast(t *testing.T) {
	mock := NewMockCaller().WithError(classifyError("research_start", "Rate limit exceeded"))
	r, sleeps := newTestResearch(mock)

	_, err := r.Start(context.Background(), "q", WithStartRetries(5))
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
	assert.Equal(t, 1, mock.CallCount())
	assert.Empty(t, *sleeps)
}

func TestResearchStartExhaustsRetries(t *testing.T) {
	mock := NewMockCaller().WithError(classifyError("research_start", "no confirmation from api"))
	r, sleeps := newTestResearch(mock)

	_, err := r.Start(context.Background(), "q",
		WithStartRetries(3),
		WithStartRetryDelay(time.Second),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no confirmation from api")
	assert.Equal(t, 4, mock.CallCount())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, *sleeps)
}

func TestResearchStatusReturnsOnTerminal(t *testing.T) {
	mock := NewMockCaller(
		map[string]any{"status": "running"},
		map[string]any{"status": "completed", "report": "findings"},
	)
	r, sleeps := newTestResearch(mock)

	task, err := r.Status(context.Background(), "nb1",
		WithPollInterval(30*time.Second),
		WithMaxWait(5*time.Minute),
	)
	require.NoError(t, err)
	assert.Equal(t, "completed", task.Status)
	assert.Equal(t, "findings", task.Report)
	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, []time.Duration{30 * time.Second}, *sleeps)
}

func TestResearchStatusTerminalStatuses(t *testing.T) {
	for _, status := range []string{"completed", "success", "failed", "no_research"} {
		t.Run(status, func(t *testing.T) {
			mock := NewMockCaller(map[string]any{"status": status})
			r, sleeps := newTestResearch(mock)

			task, err := r.Status(context.Background(), "nb1")
			require.NoError(t, err)
			assert.Equal(t, status, task.Status)
			assert.Equal(t, 1, mock.CallCount())
			assert.Empty(t, *sleeps)
		})
	}
}

func TestResearchStatusTimeout(t *testing.T) {
	mock := NewMockCaller(map[string]any{"status": "running"})
	r, _ := newTestResearch(mock)

	_, err := r.Status(context.Background(), "nb1",
		WithPollInterval(30*time.Second),
		WithMaxWait(60*time.Second),
	)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.Contains(t, err.Error(), "60")
	assert.Contains(t, err.Error(), "running")
}

func TestResearchStatusWaitBudgetShrinks(t *testing.T) {
	mock := NewMockCaller(map[string]any{"status": "running"})
	r, _ := newTestResearch(mock)

	_, err := r.Status(context.Background(), "nb1",
		WithPollInterval(30*time.Second),
		WithMaxWait(60*time.Second),
	)
	require.Error(t, err)

	require.Len(t, mock.Calls, 3)
	// First two polls get the full interval; the final poll at the
	// deadline is clamped to the 1s floor.
	assert.Equal(t, 30, mock.Calls[0].Args["max_wait"])
	assert.Equal(t, 30, mock.Calls[1].Args["max_wait"])
	assert.Equal(t, 1, mock.Calls[2].Args["max_wait"])
}

func TestResearchStatusArgs(t *testing.T) {
	mock := NewMockCaller(map[string]any{"status": "completed"})
	r, _ := newTestResearch(mock)

	_, err := r.Status(context.Background(), "nb1",
		WithTaskID("task1"),
		WithQueryFilter("quantum"),
		WithFullOutput(),
	)
	require.NoError(t, err)

	args := mock.LastCall().Args
	assert.Equal(t, "nb1", args["notebook_id"])
	assert.Equal(t, "task1", args["task_id"])
	assert.Equal(t, "quantum", args["query"])
	assert.Equal(t, false, args["compact"])
}

func TestResearchStatusCompactByDefault(t *testing.T) {
	mock := NewMockCaller(map[string]any{"status": "completed"})
	r, _ := newTestResearch(mock)

	_, err := r.Status(context.Background(), "nb1")
	require.NoError(t, err)
	assert.Equal(t, true, mock.LastCall().Args["compact"])
}

func TestResearchImportSources(t *testing.T) {
	mock := NewMockCaller(map[string]any{"imported_count": float64(3)})
	r, _ := newTestResearch(mock)

	result, err := r.ImportSources(context.Background(), "nb1", "task1", []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, result.ImportedCount)

	args := mock.LastCall().Args
	assert.Equal(t, "nb1", args["notebook_id"])
	assert.Equal(t, "task1", args["task_id"])
	assert.Equal(t, []int{0, 2}, args["source_indices"])
}

func TestResearchImportAllSources(t *testing.T) {
	mock := NewMockCaller(map[string]any{})
	r, _ := newTestResearch(mock)

	_, err := r.ImportSources(context.Background(), "nb1", "task1", nil)
	require.NoError(t, err)
	assert.NotContains(t, mock.LastCall().Args, "source_indices")
}

func TestPollBudget(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		maxWait  time.Duration
		elapsed  time.Duration
		want     time.Duration
	}{
		{"plenty remaining", 30 * time.Second, 5 * time.Minute, 0, 30 * time.Second},
		{"remaining below interval", 30 * time.Second, time.Minute, 45 * time.Second, 15 * time.Second},
		{"deadline passed", 30 * time.Second, time.Minute, 2 * time.Minute, time.Second},
		{"sub-second remainder", 30 * time.Second, time.Minute, 59900 * time.Millisecond, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pollBudget(tt.interval, tt.maxWait, tt.elapsed))
		})
	}
}

func TestIsNoConfirmation(t *testing.T) {
	assert.True(t, isNoConfirmation(classifyError("t", "No Confirmation From API")))
	assert.False(t, isNoConfirmation(classifyError("t", "rate limit")))
}
