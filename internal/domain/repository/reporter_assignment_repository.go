package repository

import (
	"context"

	"corruptx/internal/domain/entity"
)

type ReporterAssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.ReporterAssignment) error
	GetByID(ctx context.Context, id string) (*entity.ReporterAssignment, error)
	// ListByReporter returns the reporter's assignments newest first,
	// optionally restricted to a single status.
	ListByReporter(ctx context.Context, reporterID, status string) ([]*entity.ReporterAssignment, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
