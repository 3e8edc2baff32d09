package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogAuditEvent(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core).With(zap.String("requestId", "req-1")))

	LogAuditEvent(ctx, AuditEvent{
		Action:       "frame.button",
		UserID:       "3",
		ResourceType: "frame",
		ResourceID:   "7",
		Result:       AuditSuccess,
	})

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "Audit event" {
		t.Errorf("expected message 'Audit event', got %q", entry.Message)
	}
	if entry.Level != zapcore.InfoLevel {
		t.Errorf("expected info level, got %s", entry.Level)
	}
	fields := fieldMap(entry)
	for key, want := range map[string]string{
		"audit.action":        "frame.button",
		"audit.user_id":       "3",
		"audit.resource_type": "frame",
		"audit.resource_id":   "7",
		"audit.result":        "success",
		"requestId":           "req-1",
	} {
		if f, ok := fields[key]; !ok || f.String != want {
			t.Errorf("expected %s=%q, got %+v", key, want, f)
		}
	}
	if _, ok := fields["audit.details"]; ok {
		t.Error("expected no details field when details are empty")
	}
}

func TestLogAuditEventWithDetails(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	LogAuditEvent(ctx, AuditEvent{
		Action:       "frame.button",
		ResourceType: "frame",
		Result:       AuditFailure,
		Details:      map[string]any{"buttonIndex": 2},
	})

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	ctxMap := entries[0].ContextMap()
	details, ok := ctxMap["audit.details"].(map[string]any)
	if !ok {
		t.Fatalf("expected details map, got %#v", ctxMap["audit.details"])
	}
	if details["buttonIndex"] != 2 {
		t.Errorf("expected buttonIndex 2, got %v", details["buttonIndex"])
	}
	if ctxMap["audit.result"] != "failure" {
		t.Errorf("expected failure result, got %v", ctxMap["audit.result"])
	}
}

func TestWithLoggerNilContext(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	var nilCtx context.Context //nolint:revive // testing nil context handling
	ctx := WithLogger(nilCtx, zap.New(core))

	LogInfo(ctx, "hello")
	if recorded.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", recorded.Len())
	}
}
