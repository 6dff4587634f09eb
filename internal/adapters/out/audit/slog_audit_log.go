// Package audit writes workflow audit entries to the application's
// structured log. The log stream is the system of record for who did what:
// every state-changing operation emits one entry after its transaction
// commits.
package audit

import (
	"context"
	"log/slog"

	"atelier/internal/core/ports"
)

var _ ports.AuditLog = SlogAuditLog{}

// SlogAuditLog records audit entries as structured log records at Info level.
type SlogAuditLog struct {
	logger *slog.Logger
}

// NewSlogAuditLog creates an audit log writing through the given logger.
func NewSlogAuditLog(logger *slog.Logger) SlogAuditLog {
	return SlogAuditLog{logger: logger.With("component", "audit")}
}

// Record emits one audit entry. Never fails.
func (l SlogAuditLog) Record(ctx context.Context, entry ports.AuditEntry) error {
	l.logger.InfoContext(ctx, entry.Operation,
		"order_id", entry.OrderID,
		"actor_id", entry.ActorID,
		"actor_role", entry.ActorRole,
		"detail", entry.Detail,
		"at", entry.At,
	)

	return nil
}
