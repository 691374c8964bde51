package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"concierge-router/pkg/log"
)

func TestLogger_RequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.New(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-123")
	l.Infof(ctx, "routed %s", "hybrid")
	l.Warn(context.Background(), "no id")

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Message != "routed hybrid" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()[log.FieldRequestID]; got != "req-123" {
		t.Errorf("expected request id field, got %v", got)
	}
	if _, ok := entries[1].ContextMap()[log.FieldRequestID]; ok {
		t.Errorf("did not expect request id field without context value")
	}
}

func TestRequestID(t *testing.T) {
	if _, ok := log.RequestID(context.Background()); ok {
		t.Errorf("expected no request id on empty context")
	}
	if _, ok := log.RequestID(log.WithRequestID(context.Background(), "")); ok {
		t.Errorf("expected empty request id to be treated as absent")
	}
	id, ok := log.RequestID(log.WithRequestID(context.Background(), "abc"))
	if !ok || id != "abc" {
		t.Errorf("expected abc, got %q", id)
	}
}

func TestInit_UnknownLevel(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "nonsense", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
	if l == nil {
		t.Fatal("expected logger")
	}
}
