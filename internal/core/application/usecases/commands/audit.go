package commands

import (
	"context"
	"log/slog"

	"atelier/internal/core/ports"
)

// recordAudit writes an audit entry after the primary transaction committed.
// Audit writes are best-effort: a failure is logged to the local diagnostic
// stream and never surfaced to the caller; the committed transition stands.
func recordAudit(ctx context.Context, auditLog ports.AuditLog, logger *slog.Logger, entry ports.AuditEntry) {
	if auditLog == nil {
		return
	}

	if err := auditLog.Record(ctx, entry); err != nil {
		logger.WarnContext(ctx, "audit log write failed",
			"operation", entry.Operation,
			"order_id", entry.OrderID,
			"error", err,
		)
	}
}
