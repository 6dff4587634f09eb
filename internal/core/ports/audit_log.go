package ports

import (
	"context"
	"time"
)

// AuditEntry is one structured record of a completed workflow operation.
type AuditEntry struct {
	Operation string
	OrderID   string
	ActorID   string
	ActorRole string
	Detail    string
	At        time.Time
}

// AuditLog accepts audit entries from the workflow engine. Writes are
// best-effort: they happen after the primary transaction commits, and a
// failing write never rolls back or fails the business operation: handlers
// log the failure locally and move on.
type AuditLog interface {
	Record(ctx context.Context, entry AuditEntry) error
}
