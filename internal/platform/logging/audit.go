package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audit results.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
)

// AuditEvent records a user-initiated interaction.
//
// Fields:
//   - Action: what the user did (e.g., "frame.button")
//   - UserID: the acting user's fid as reported by the client; "" when anonymous
//   - ResourceType: the kind of thing acted on (e.g., "frame")
//   - ResourceID: which one; for frames, the fid the frame resolved to
//   - Result: AuditSuccess or AuditFailure
//   - Details: optional extra context
type AuditEvent struct {
	Action       string
	UserID       string
	ResourceType string
	ResourceID   string
	Result       string
	Details      map[string]any
}

// LogAuditEvent writes ev at info level using the request-aware logger, so
// audit entries carry the request ID and trace like every other request log.
func LogAuditEvent(ctx context.Context, ev AuditEvent) {
	fields := []zap.Field{
		zap.String("audit.action", ev.Action),
		zap.String("audit.user_id", ev.UserID),
		zap.String("audit.resource_type", ev.ResourceType),
		zap.String("audit.resource_id", ev.ResourceID),
		zap.String("audit.result", ev.Result),
	}
	if len(ev.Details) > 0 {
		fields = append(fields, zap.Any("audit.details", ev.Details))
	}
	LoggerFromContext(ctx).Info("Audit event", fields...)
}
