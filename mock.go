package nlmkit

import (
	"context"
	"sync"
)

// MockCall records one tool invocation for assertions.
type MockCall struct {
	Tool string
	Args map[string]any
}

// MockCaller is a test double for ToolCaller. It supports fixed
// results, sequential results, and custom handlers.
type MockCaller struct {
	mu        sync.Mutex
	results   []map[string]any
	resultIdx int
	err       error
	callFunc  func(ctx context.Context, name string, args map[string]any) (map[string]any, error)

	// Calls tracks all invocations for assertions.
	Calls []MockCall
}

// NewMockCaller creates a mock that returns the given results in
// sequence, cycling back to the beginning after exhausting them.
func NewMockCaller(results ...map[string]any) *MockCaller {
	return &MockCaller{results: results}
}

// WithError configures the mock to always return an error.
func (m *MockCaller) WithError(err error) *MockCaller {
	m.err = err
	return m
}

// WithCallFunc sets a custom handler. This takes precedence over fixed
// results.
func (m *MockCaller) WithCallFunc(fn func(ctx context.Context, name string, args map[string]any) (map[string]any, error)) *MockCaller {
	m.callFunc = fn
	return m
}

// CallTool implements ToolCaller.
func (m *MockCaller) CallTool(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Tool: name, Args: stripNullArgs(args)})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.callFunc != nil {
		return m.callFunc(ctx, name, args)
	}
	if m.err != nil {
		return nil, m.err
	}

	if len(m.results) == 0 {
		return map[string]any{}, nil
	}
	result := m.results[m.resultIdx%len(m.results)]
	m.resultIdx++
	return result, nil
}

// CallCount returns the number of recorded invocations.
func (m *MockCaller) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent invocation, or a zero MockCall.
func (m *MockCaller) LastCall() MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return MockCall{}
	}
	return m.Calls[len(m.Calls)-1]
}
