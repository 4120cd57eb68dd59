package store

import (
	"context"
	"fmt"

	"github.com/openlearn/coursepack/ent"
)

// AuditEventData describes one completed audit run.
type AuditEventData struct {
	RunID       string
	LessonCount int
	Passed      bool
	Detail      string
}

// AuditRepo appends audit-run records. Append-only: audit history is never
// rewritten.
type AuditRepo interface {
	AppendAuditEvent(ctx context.Context, data AuditEventData) error
}

type auditRepo struct {
	client *ent.Client
}

func (r *auditRepo) AppendAuditEvent(ctx context.Context, data AuditEventData) error {
	_, err := r.client.AuditEvent.Create().
		SetRunID(data.RunID).
		SetLessonCount(data.LessonCount).
		SetPassed(data.Passed).
		SetDetail(data.Detail).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save audit event: %w", err)
	}
	return nil
}
