package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"concierge-router/internal/mode"
	"concierge-router/internal/router"
	"concierge-router/pkg/workflow"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type agentCall struct {
	prompt    string
	webSearch bool
}

type mockAgent struct {
	mu    sync.Mutex
	reply string
	err   error
	calls []agentCall
}

func (m *mockAgent) GenerateText(ctx context.Context, prompt string, webSearch bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, agentCall{prompt: prompt, webSearch: webSearch})
	return m.reply, m.err
}

type mockWorkflow struct {
	mu       sync.Mutex
	body     string
	err      error
	payloads []any
}

func (m *mockWorkflow) Trigger(ctx context.Context, payload any) (workflow.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads = append(m.payloads, payload)
	if m.err != nil {
		return workflow.Response{}, m.err
	}
	return workflow.Response{StatusCode: 200, Body: []byte(m.body)}, nil
}

func newTestUseCase(t *testing.T, agent *mockAgent, backend *mockWorkflow) *implUseCase {
	t.Helper()
	engine := router.New(nil, nil, nil, router.WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}))

	uc := New(&mockLogger{}, engine, mode.NewRegistry(nil), nil, nil, Config{
		MaxMessageLength: 200,
		SessionMaxTurns:  4,
	}, prometheus.NewRegistry())

	// Typed nil pointers would not compare equal to nil interfaces.
	if agent != nil {
		uc.agent = agent
	}
	if backend != nil {
		uc.workflow = backend
	}
	return uc
}
